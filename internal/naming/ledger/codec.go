package ledger

import (
	"fmt"

	"github.com/ethereum/go-ethereum/rlp"
)

// Key joins a component prefix with its parts.
func Key(prefix string, parts ...[]byte) []byte {
	size := len(prefix)
	for _, p := range parts {
		size += len(p)
	}
	key := make([]byte, 0, size)
	key = append(key, prefix...)
	for _, p := range parts {
		key = append(key, p...)
	}
	return key
}

// GetValue loads and RLP-decodes the value stored at key into v.
func GetValue(s Store, key []byte, v any) (bool, error) {
	raw, ok, err := s.Get(key)
	if err != nil || !ok {
		return false, err
	}
	if err := rlp.DecodeBytes(raw, v); err != nil {
		return false, fmt.Errorf("decode %q: %w", key, err)
	}
	return true, nil
}

// DecodeValue RLP-decodes a raw stored value, e.g. one visited by Iterate.
func DecodeValue(raw []byte, v any) error {
	if err := rlp.DecodeBytes(raw, v); err != nil {
		return fmt.Errorf("decode value: %w", err)
	}
	return nil
}

// SetValue RLP-encodes v and stores it at key.
func SetValue(s Store, key []byte, v any) error {
	raw, err := rlp.EncodeToBytes(v)
	if err != nil {
		return fmt.Errorf("encode %q: %w", key, err)
	}
	return s.Set(key, raw)
}
