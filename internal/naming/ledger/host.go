package ledger

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/namesight7000-backend/internal/clock"
	"github.com/goodnatureofminers/namesight7000-backend/internal/naming/model"
)

const sequenceKey = "host:sequence"

type (
	// EventSink receives events of committed invocations in order.
	EventSink interface {
		Publish(ctx context.Context, ev model.Event)
	}
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// Invocation describes one externally submitted call.
type Invocation struct {
	Operation string
	// Signers are addresses whose authorization was verified by the
	// transport before submission.
	Signers []model.Address
}

// Host runs invocations as atomic units against a LevelStore.
type Host struct {
	mu       sync.RWMutex
	store    *LevelStore
	clock    clock.Clock
	sink     EventSink
	metrics  Metrics
	logger   *zap.Logger
	sequence uint64
}

// NewHost builds a Host with its collaborators.
func NewHost(store *LevelStore, clk clock.Clock, sink EventSink, metrics Metrics, logger *zap.Logger) (*Host, error) {
	if store == nil {
		return nil, errors.New("ledger store is required")
	}
	if clk == nil {
		return nil, errors.New("ledger clock is required")
	}
	if metrics == nil {
		return nil, errors.New("ledger metrics is required")
	}
	if sink == nil {
		sink = DiscardSink{}
	}
	var sequence uint64
	if _, err := GetValue(store, []byte(sequenceKey), &sequence); err != nil {
		return nil, fmt.Errorf("load event sequence: %w", err)
	}
	return &Host{
		store:    store,
		clock:    clk,
		sink:     sink,
		metrics:  metrics,
		logger:   logger.Named("host"),
		sequence: sequence,
	}, nil
}

// Sequence returns the sequence number of the last published event.
func (h *Host) Sequence() uint64 {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.sequence
}

// Invoke runs fn as one atomic unit. Writes and events are committed only
// if fn returns nil; any error discards both.
func (h *Host) Invoke(ctx context.Context, inv Invocation, fn func(env *Env) error) (err error) {
	started := time.Now()
	defer func() {
		h.metrics.Observe(inv.Operation, err, started)
	}()

	h.mu.Lock()
	defer h.mu.Unlock()

	if err = ctx.Err(); err != nil {
		return err
	}

	tx := newOverlay(h.store)
	env := NewEnv(ctx, tx, h.clock.Now(), inv.Signers...)
	if err = fn(env); err != nil {
		h.logger.Debug("invocation aborted", zap.String("operation", inv.Operation), zap.Error(err))
		return err
	}
	events := *env.events
	next := h.sequence
	for i := range events {
		next++
		events[i].Sequence = next
	}
	if len(events) > 0 {
		if err = SetValue(tx, []byte(sequenceKey), next); err != nil {
			return err
		}
	}
	if err = h.store.apply(tx.changes()); err != nil {
		return fmt.Errorf("commit %s: %w", inv.Operation, err)
	}
	h.sequence = next

	// The writes are durable now; a caller hanging up must not lose events.
	published := context.WithoutCancel(ctx)
	for _, ev := range events {
		h.sink.Publish(published, ev)
	}
	return nil
}

// View runs fn against a read-only frame. Writes are discarded and no events
// are published.
func (h *Host) View(ctx context.Context, operation string, fn func(env *Env) error) (err error) {
	started := time.Now()
	defer func() {
		h.metrics.Observe(operation, err, started)
	}()

	h.mu.RLock()
	defer h.mu.RUnlock()

	if err = ctx.Err(); err != nil {
		return err
	}
	env := NewEnv(ctx, newOverlay(h.store), h.clock.Now())
	env.readOnly = true
	return fn(env)
}
