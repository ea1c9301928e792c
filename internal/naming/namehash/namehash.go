// Package namehash derives hierarchical node identifiers from labels.
package namehash

import (
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/goodnatureofminers/namesight7000-backend/internal/naming/model"
)

// Root is the namehash of the empty name.
var Root model.Hash

// LabelHash digests a single label.
func LabelHash(label []byte) model.Hash {
	return model.Hash(chainhash.HashH(label))
}

// Child folds a label into its parent node: H(parent ++ H(label)).
func Child(parent model.Hash, label []byte) model.Hash {
	labelHash := LabelHash(label)
	var buf [2 * model.HashSize]byte
	copy(buf[:model.HashSize], parent[:])
	copy(buf[model.HashSize:], labelHash[:])
	return model.Hash(chainhash.HashH(buf[:]))
}

// Namehash folds labels from the root outward; labels[0] is the top level.
func Namehash(labels ...[]byte) (model.Hash, error) {
	node := Root
	for i, label := range labels {
		if err := ValidateLabel(label); err != nil {
			return model.Hash{}, fmt.Errorf("label %d: %w", i, err)
		}
		node = Child(node, label)
	}
	return node, nil
}

// ValidateLabel rejects empty and over-length labels.
func ValidateLabel(label []byte) error {
	if len(label) == 0 {
		return fmt.Errorf("%w: empty label", model.ErrInvalidLabel)
	}
	if len(label) > model.MaxLabelLength {
		return fmt.Errorf("%w: label too long (%d bytes)", model.ErrInvalidLabel, len(label))
	}
	return nil
}

// Name hashes a dotted name such as "alice.stellar". The rightmost label is
// the top level.
func Name(name string) (model.Hash, error) {
	if name == "" {
		return Root, nil
	}
	parts := strings.Split(name, ".")
	labels := make([][]byte, 0, len(parts))
	for i := len(parts) - 1; i >= 0; i-- {
		labels = append(labels, []byte(parts[i]))
	}
	return Namehash(labels...)
}
