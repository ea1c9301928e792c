package ledger

import (
	"fmt"
	"sync"

	"github.com/goodnatureofminers/namesight7000-backend/internal/naming/model"
)

// Directory maps contract addresses to their implementations so contracts
// can invoke each other by address.
type Directory struct {
	mu        sync.RWMutex
	contracts map[model.Address]any
}

// NewDirectory returns an empty Directory.
func NewDirectory() *Directory {
	return &Directory{contracts: make(map[model.Address]any)}
}

// Register binds addr to contract, replacing any previous binding.
func (d *Directory) Register(addr model.Address, contract any) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.contracts[addr] = contract
}

func (d *Directory) lookup(addr model.Address) (any, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	c, ok := d.contracts[addr]
	return c, ok
}

// Lookup resolves addr to a contract implementing T.
func Lookup[T any](d *Directory, addr model.Address) (T, error) {
	var zero T
	c, ok := d.lookup(addr)
	if !ok {
		return zero, fmt.Errorf("%w: %s", model.ErrUnknownContract, addr)
	}
	typed, ok := c.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %s does not implement %T", model.ErrUnknownContract, addr, (*T)(nil))
	}
	return typed, nil
}
