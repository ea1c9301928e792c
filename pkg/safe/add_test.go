package safe

import (
	"math"
	"testing"
)

func TestAddUint64(t *testing.T) {
	tests := []struct {
		name   string
		a, b   uint64
		want   uint64
		wantOK bool
	}{
		{name: "small", a: 1, b: 2, want: 3, wantOK: true},
		{name: "boundary", a: math.MaxUint64 - 1, b: 1, want: math.MaxUint64, wantOK: true},
		{name: "overflow", a: math.MaxUint64, b: 1, want: 0, wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := AddUint64(tt.a, tt.b)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("AddUint64() = %d, %v, want %d, %v", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestAddUint64Saturating(t *testing.T) {
	if got := AddUint64Saturating(math.MaxUint64, 10); got != math.MaxUint64 {
		t.Errorf("AddUint64Saturating() = %d, want max", got)
	}
	if got := AddUint64Saturating(40, 2); got != 42 {
		t.Errorf("AddUint64Saturating() = %d, want 42", got)
	}
}

func TestSubUint64Saturating(t *testing.T) {
	if got := SubUint64Saturating(5, 10); got != 0 {
		t.Errorf("SubUint64Saturating() = %d, want 0", got)
	}
	if got := SubUint64Saturating(1060, 1000); got != 60 {
		t.Errorf("SubUint64Saturating() = %d, want 60", got)
	}
}
