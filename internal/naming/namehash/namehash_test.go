package namehash

import (
	"crypto/sha256"
	"errors"
	"strings"
	"testing"

	"github.com/goodnatureofminers/namesight7000-backend/internal/naming/model"
)

func TestNamehash_Empty(t *testing.T) {
	t.Parallel()

	got, err := Namehash()
	if err != nil {
		t.Fatalf("Namehash() error = %v", err)
	}
	if got != (model.Hash{}) {
		t.Fatalf("Namehash() got = %s, want zero", got)
	}
}

func TestNamehash_MatchesManualFold(t *testing.T) {
	t.Parallel()

	fold := func(parent [32]byte, label string) [32]byte {
		lh := sha256.Sum256([]byte(label))
		return sha256.Sum256(append(parent[:], lh[:]...))
	}
	want := fold(fold([32]byte{}, "stellar"), "alice")

	got, err := Namehash([]byte("stellar"), []byte("alice"))
	if err != nil {
		t.Fatalf("Namehash() error = %v", err)
	}
	if got != model.Hash(want) {
		t.Fatalf("Namehash() got = %s, want %x", got, want)
	}
}

func TestNamehash_OrderSensitiveAndDeterministic(t *testing.T) {
	t.Parallel()

	fooBar, err := Namehash([]byte("foo"), []byte("bar"))
	if err != nil {
		t.Fatalf("Namehash() error = %v", err)
	}
	barFoo, err := Namehash([]byte("bar"), []byte("foo"))
	if err != nil {
		t.Fatalf("Namehash() error = %v", err)
	}
	if fooBar == barFoo {
		t.Fatalf("expected order-sensitive hashes")
	}

	again, _ := Namehash([]byte("foo"), []byte("bar"))
	if again != fooBar {
		t.Fatalf("expected deterministic output")
	}
}

func TestNamehash_RejectsInvalidLabels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		labels [][]byte
	}{
		{name: "empty label", labels: [][]byte{[]byte("foo"), {}}},
		{name: "too long", labels: [][]byte{[]byte(strings.Repeat("a", 64))}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Namehash(tt.labels...)
			if !errors.Is(err, model.ErrInvalidLabel) {
				t.Fatalf("Namehash() error = %v, want ErrInvalidLabel", err)
			}
		})
	}

	if _, err := Namehash([]byte(strings.Repeat("a", 63))); err != nil {
		t.Fatalf("63 byte label should be accepted: %v", err)
	}
}

func TestName(t *testing.T) {
	t.Parallel()

	got, err := Name("alice.stellar")
	if err != nil {
		t.Fatalf("Name() error = %v", err)
	}
	want, _ := Namehash([]byte("stellar"), []byte("alice"))
	if got != want {
		t.Fatalf("Name() got = %s, want %s", got, want)
	}

	root, err := Name("")
	if err != nil || root != Root {
		t.Fatalf("Name(\"\") = %s, %v", root, err)
	}
}
