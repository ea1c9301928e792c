package batcher

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestBatcher_FlushOnSize(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var flushed atomic.Int32
	var batches [][]int
	var mu sync.Mutex

	b := New(zap.NewNop(), func(_ context.Context, items []int) error {
		mu.Lock()
		defer mu.Unlock()
		flushed.Add(int32(len(items)))
		cp := make([]int, len(items))
		copy(cp, items)
		batches = append(batches, cp)
		return nil
	}, Config{FlushSize: 3, FlushInterval: time.Second, RPS: 1000})

	b.Start(ctx)
	defer b.Stop()

	for i := 0; i < 5; i++ {
		if err := b.Add(ctx, i); err != nil {
			t.Fatalf("Add error: %v", err)
		}
	}
	time.Sleep(100 * time.Millisecond)

	if flushed.Load() != 3 {
		t.Fatalf("expected first flush of 3 items, got %d", flushed.Load())
	}
	mu.Lock()
	if len(batches) != 1 || len(batches[0]) != 3 {
		t.Fatalf("unexpected batches: %+v", batches)
	}
	mu.Unlock()
}

func TestBatcher_FlushOnInterval(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var flushed atomic.Int32

	b := New(zap.NewNop(), func(_ context.Context, items []int) error {
		flushed.Add(int32(len(items)))
		return nil
	}, Config{FlushSize: 5, FlushInterval: 50 * time.Millisecond, RPS: 1000})

	b.Start(ctx)
	defer b.Stop()

	if err := b.Add(ctx, 1); err != nil {
		t.Fatalf("Add error: %v", err)
	}

	time.Sleep(120 * time.Millisecond)

	if flushed.Load() != 1 {
		t.Fatalf("expected flush after interval, got %d", flushed.Load())
	}
}

func TestBatcher_StopDrainsBuffered(t *testing.T) {
	t.Parallel()

	var flushed atomic.Int32
	b := New(zap.NewNop(), func(_ context.Context, items []int) error {
		flushed.Add(int32(len(items)))
		return nil
	}, Config{FlushSize: 4, FlushInterval: time.Hour, RPS: 1000})

	for i := 0; i < 6; i++ {
		if err := b.Add(context.Background(), i); err != nil {
			t.Fatalf("Add error: %v", err)
		}
	}
	b.Start(context.Background())
	b.Stop()

	if flushed.Load() != 6 {
		t.Fatalf("expected all 6 items flushed on stop, got %d", flushed.Load())
	}
}

func TestBatcher_ContextCancelFlushesWithLiveContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())

	var flushErr atomic.Value
	b := New(zap.NewNop(), func(ctx context.Context, items []int) error {
		flushErr.Store(ctx.Err() == nil)
		return nil
	}, Config{FlushSize: 10, FlushInterval: time.Hour, RPS: 1000})

	b.Start(ctx)
	if err := b.Add(ctx, 1); err != nil {
		t.Fatalf("Add error: %v", err)
	}
	cancel()
	b.Stop()

	if live, _ := flushErr.Load().(bool); !live {
		t.Fatalf("expected final flush with a live context")
	}

	err := b.Add(context.Background(), 1)
	if !errors.Is(err, ErrStopped) {
		t.Fatalf("expected ErrStopped on stopped batcher, got %v", err)
	}
	b.Stop()
}

func TestBatcher_FlushErrorLoggedButContinues(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	b := New(zap.NewNop(), func(_ context.Context, items []int) error {
		if calls.Add(1) == 1 {
			return errors.New("flush failed")
		}
		return nil
	}, Config{FlushSize: 1, FlushInterval: time.Second, RPS: 1000})

	b.Start(ctx)
	defer b.Stop()

	if err := b.Add(ctx, 1); err != nil {
		t.Fatalf("Add error: %v", err)
	}
	if err := b.Add(ctx, 2); err != nil {
		t.Fatalf("Add error: %v", err)
	}

	time.Sleep(50 * time.Millisecond)

	if calls.Load() != 2 {
		t.Fatalf("expected two flush attempts, got %d", calls.Load())
	}
}

func TestBatcher_TryAddNeverBlocks(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	b := New(zap.NewNop(), func(ctx context.Context, _ []int) error {
		select {
		case <-release:
		case <-ctx.Done():
		}
		return nil
	}, Config{FlushSize: 1, FlushInterval: time.Hour, RPS: 1000, BufferSize: 2})
	b.Start(context.Background())
	defer func() {
		close(release)
		b.Stop()
	}()

	done := make(chan []error)
	go func() {
		var errs []error
		for i := 0; i < 10; i++ {
			errs = append(errs, b.TryAdd(i))
		}
		done <- errs
	}()

	select {
	case errs := <-done:
		full := 0
		for _, err := range errs {
			if errors.Is(err, ErrFull) {
				full++
			} else if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}
		if full == 0 {
			t.Fatalf("expected some items rejected with ErrFull while flush hangs")
		}
	case <-time.After(time.Second):
		t.Fatalf("TryAdd blocked behind a hanging flush")
	}
}

func TestBatcher_FlushTimeout(t *testing.T) {
	t.Parallel()

	var deadlineHit atomic.Bool
	b := New(zap.NewNop(), func(ctx context.Context, _ []int) error {
		<-ctx.Done()
		deadlineHit.Store(errors.Is(ctx.Err(), context.DeadlineExceeded))
		return ctx.Err()
	}, Config{FlushSize: 1, FlushInterval: time.Hour, RPS: 1000, FlushTimeout: 20 * time.Millisecond})
	b.Start(context.Background())

	if err := b.TryAdd(1); err != nil {
		t.Fatalf("TryAdd error: %v", err)
	}
	stopped := make(chan struct{})
	go func() {
		b.Stop()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatalf("Stop waited on a flush past its timeout")
	}
	if !deadlineHit.Load() {
		t.Fatalf("expected flush context to hit its deadline")
	}
}

func TestBatcher_CanceledContextRejectsLateItems(t *testing.T) {
	t.Parallel()

	var flushed atomic.Int32
	ctx, cancel := context.WithCancel(context.Background())
	b := New(zap.NewNop(), func(_ context.Context, items []int) error {
		flushed.Add(int32(len(items)))
		return nil
	}, Config{FlushSize: 10, FlushInterval: time.Hour, RPS: 1000})
	b.Start(ctx)
	cancel()

	var accepted int32
	deadline := time.Now().Add(time.Second)
	for {
		err := b.TryAdd(1)
		if errors.Is(err, ErrStopped) {
			break
		}
		if err == nil {
			accepted++
		} else if !errors.Is(err, ErrFull) {
			t.Fatalf("unexpected error: %v", err)
		}
		if time.Now().After(deadline) {
			t.Fatalf("batcher kept accepting items after its context was canceled")
		}
		time.Sleep(time.Millisecond)
	}
	b.Stop()

	if flushed.Load() != accepted {
		t.Fatalf("accepted %d items before shutdown, flushed %d", accepted, flushed.Load())
	}
}

func TestBatcher_EveryAcceptedItemIsFlushed(t *testing.T) {
	t.Parallel()

	for round := 0; round < 20; round++ {
		var flushed atomic.Int32
		b := New(zap.NewNop(), func(_ context.Context, items []int) error {
			flushed.Add(int32(len(items)))
			return nil
		}, Config{FlushSize: 4, FlushInterval: time.Hour, RPS: 100000})
		b.Start(context.Background())

		var accepted atomic.Int32
		var wg sync.WaitGroup
		for w := 0; w < 4; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := 0; i < 50; i++ {
					if b.Add(context.Background(), i) == nil {
						accepted.Add(1)
					}
				}
			}()
		}
		time.Sleep(time.Millisecond)
		b.Stop()
		wg.Wait()

		if flushed.Load() != accepted.Load() {
			t.Fatalf("round %d: accepted %d items, flushed %d", round, accepted.Load(), flushed.Load())
		}
	}
}

func TestNew_Defaults(t *testing.T) {
	b := New[int](zap.NewNop(), func(context.Context, []int) error { return nil }, Config{})
	if b.cfg.FlushSize != 100 || b.cfg.FlushInterval != time.Second || b.cfg.RPS != 10 {
		t.Fatalf("unexpected defaults: %+v", b.cfg)
	}
	if b.cfg.FlushTimeout != 30*time.Second || cap(b.itemsCh) != 200 {
		t.Fatalf("unexpected defaults: %+v", b.cfg)
	}
}
