// Package batcher buffers items and hands them to a flush callback in
// rate-limited batches.
package batcher

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

var (
	// ErrStopped is returned by Add once the batcher has been stopped.
	ErrStopped = errors.New("batcher stopped")
	// ErrFull is returned by TryAdd when the buffer has no room.
	ErrFull = errors.New("batcher buffer full")
)

// Config controls when batches are flushed.
type Config struct {
	FlushSize     int
	FlushInterval time.Duration
	// RPS caps flush callbacks per second.
	RPS int
	// FlushTimeout bounds a single flush callback.
	FlushTimeout time.Duration
	// BufferSize is the channel capacity, 2*FlushSize when zero.
	BufferSize int
}

// FlushFunc persists one batch. The slice is reused after it returns.
type FlushFunc[T any] func(ctx context.Context, items []T) error

// Batcher buffers items and flushes them either by size or interval.
type Batcher[T any] struct {
	flush   FlushFunc[T]
	cfg     Config
	itemsCh chan T
	rl      ratelimit.Limiter
	logger  *zap.Logger

	wg sync.WaitGroup
	// mu orders enqueues against shutdown: nothing is accepted after stop
	// is closed, so everything accepted reaches the final drain.
	mu      sync.RWMutex
	stopped bool
	stop    chan struct{}
}

// New constructs a Batcher. Zero config values fall back to a batch of 100,
// a one second interval, 10 flushes per second and a 30 second flush timeout.
func New[T any](logger *zap.Logger, flush FlushFunc[T], cfg Config) *Batcher[T] {
	if cfg.FlushSize <= 0 {
		cfg.FlushSize = 100
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = time.Second
	}
	if cfg.RPS <= 0 {
		cfg.RPS = 10
	}
	if cfg.FlushTimeout <= 0 {
		cfg.FlushTimeout = 30 * time.Second
	}
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = cfg.FlushSize * 2
	}
	return &Batcher[T]{
		logger:  logger,
		flush:   flush,
		cfg:     cfg,
		itemsCh: make(chan T, cfg.BufferSize),
		rl:      ratelimit.New(cfg.RPS),
		stop:    make(chan struct{}),
	}
}

// Start begins the background flushing loop. Canceling ctx has the same
// effect as Stop without waiting; flushes never see the cancellation.
func (b *Batcher[T]) Start(ctx context.Context) {
	b.wg.Add(1)
	go b.run(context.WithoutCancel(ctx))
	go func() {
		select {
		case <-ctx.Done():
			b.shutdown()
		case <-b.stop:
		}
	}()
}

// Stop flushes what is buffered and waits for the loop to exit. It is safe
// to call more than once.
func (b *Batcher[T]) Stop() {
	b.shutdown()
	b.wg.Wait()
}

func (b *Batcher[T]) shutdown() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.stopped {
		b.stopped = true
		close(b.stop)
	}
}

// Add queues an item, blocking while the buffer is full.
func (b *Batcher[T]) Add(ctx context.Context, item T) error {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.stopped {
		return ErrStopped
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case b.itemsCh <- item:
		return nil
	}
}

// TryAdd queues an item without waiting. It fails with ErrFull when the
// buffer has no room.
func (b *Batcher[T]) TryAdd(item T) error {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.stopped {
		return ErrStopped
	}

	select {
	case b.itemsCh <- item:
		return nil
	default:
		return ErrFull
	}
}

func (b *Batcher[T]) run(ctx context.Context) {
	defer b.wg.Done()

	ticker := time.NewTicker(b.cfg.FlushInterval)
	defer ticker.Stop()

	buf := make([]T, 0, b.cfg.FlushSize)

	flush := func() {
		if len(buf) == 0 {
			return
		}

		b.rl.Take()
		fctx, cancel := context.WithTimeout(ctx, b.cfg.FlushTimeout)
		err := b.flush(fctx, buf)
		cancel()
		if err != nil {
			b.logger.Error("batch not flushed", zap.Int("size", len(buf)), zap.Error(err))
		} else {
			b.logger.Debug("batch flushed", zap.Int("size", len(buf)))
		}
		buf = buf[:0]
	}

	// stop is closed under mu, so no Add can race past the drain.
	drain := func() {
		for {
			select {
			case item := <-b.itemsCh:
				buf = append(buf, item)
				if len(buf) >= b.cfg.FlushSize {
					flush()
				}
			default:
				flush()
				return
			}
		}
	}

	for {
		select {
		case <-b.stop:
			drain()
			return

		case item := <-b.itemsCh:
			buf = append(buf, item)
			if len(buf) >= b.cfg.FlushSize {
				flush()
			}

		case <-ticker.C:
			flush()
		}
	}
}
