package workerpool

import (
	"context"
	"errors"
	"strconv"
	"sync/atomic"
	"testing"
)

func TestProcess(t *testing.T) {
	boom := errors.New("boom")
	canceled, cancel := context.WithCancel(context.Background())
	cancel()

	tests := []struct {
		name        string
		ctx         context.Context
		workerCount int
		items       []int
		failOn      int
		wantErr     error
		wantSum     int32
	}{
		{
			name:        "success processes all items",
			ctx:         context.Background(),
			workerCount: 2,
			items:       []int{1, 2, 3, 4},
			wantSum:     10,
		},
		{
			name:        "zero workers still run",
			ctx:         context.Background(),
			workerCount: 0,
			items:       []int{5, 6},
			wantSum:     11,
		},
		{
			name:        "error cancels workers",
			ctx:         context.Background(),
			workerCount: 3,
			items:       []int{1, 2, 3},
			failOn:      2,
			wantErr:     boom,
		},
		{
			name:        "context canceled returns canceled error",
			ctx:         canceled,
			workerCount: 2,
			items:       []int{1, 2},
			wantErr:     context.Canceled,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var sum int32

			err := Process(tt.ctx, tt.workerCount, tt.items, func(_ context.Context, _ int, v int) error {
				if v == tt.failOn {
					return boom
				}
				atomic.AddInt32(&sum, int32(v))
				return nil
			})
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Process() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Process() error = %v", err)
			}
			if sum != tt.wantSum {
				t.Fatalf("processed sum = %d, want %d", sum, tt.wantSum)
			}
		})
	}
}

func TestMap_PreservesOrder(t *testing.T) {
	got, err := Map(context.Background(), 4, []int{3, 1, 2, 5, 4}, func(_ context.Context, v int) (string, error) {
		return strconv.Itoa(v * 10), nil
	})
	if err != nil {
		t.Fatalf("Map() error = %v", err)
	}
	want := []string{"30", "10", "20", "50", "40"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Map()[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestMap_Error(t *testing.T) {
	boom := errors.New("boom")
	got, err := Map(context.Background(), 2, []int{1, 2}, func(_ context.Context, v int) (int, error) {
		if v == 2 {
			return 0, boom
		}
		return v, nil
	})
	if !errors.Is(err, boom) || got != nil {
		t.Fatalf("Map() = %v, %v, want nil, boom", got, err)
	}
}
