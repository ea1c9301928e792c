// Package clock supplies ledger time and cancellable waits.
package clock

import (
	"context"
	"sync"
	"time"
)

// Clock supplies the ledger timestamp in unix seconds.
type Clock interface {
	Now() uint64
}

// System reads the wall clock.
type System struct{}

// Now returns the current unix time, or zero before the epoch.
func (System) Now() uint64 {
	sec := time.Now().Unix()
	if sec < 0 {
		return 0
	}
	return uint64(sec)
}

// Manual is a settable clock.
type Manual struct {
	mu  sync.Mutex
	now uint64
}

// NewManual returns a Manual clock set to now.
func NewManual(now uint64) *Manual {
	return &Manual{now: now}
}

// Now returns the configured time.
func (m *Manual) Now() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Set moves the clock to now.
func (m *Manual) Set(now uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = now
}

// Advance moves the clock forward by d seconds.
func (m *Manual) Advance(d uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now += d
}

// SleepWithContext waits for d unless ctx ends first. A non-positive d only
// reports ctx.Err().
func SleepWithContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
