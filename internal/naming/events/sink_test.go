package events

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/namesight7000-backend/internal/naming/ledger"
	"github.com/goodnatureofminers/namesight7000-backend/internal/naming/model"
	"github.com/goodnatureofminers/namesight7000-backend/pkg/batcher"
)

func TestSink_FlushesBatchesInOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := NewMockRepository(ctrl)
	metrics := NewMockMetrics(ctrl)
	ctx := context.Background()

	metrics.EXPECT().ObserveEnqueue(model.EventCommitMade, nil).Times(3)
	repo.EXPECT().
		InsertEvents(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, events []model.Event) error {
			if len(events) != 3 {
				t.Fatalf("expected 3 events, got %d", len(events))
			}
			for i, ev := range events {
				if ev.Sequence != uint64(i+1) {
					t.Fatalf("event %d has sequence %d", i, ev.Sequence)
				}
			}
			return nil
		})
	metrics.EXPECT().ObserveFlush(3, nil, gomock.AssignableToTypeOf(time.Time{}))

	sink := NewSink(repo, metrics, batcher.Config{FlushSize: 3, FlushInterval: time.Hour, RPS: 1000}, zap.NewNop())
	sink.Start(ctx)
	for i := 1; i <= 3; i++ {
		sink.Publish(ctx, model.Event{Kind: model.EventCommitMade, Sequence: uint64(i)})
	}
	sink.Stop()
}

func TestSink_FlushErrorIsObserved(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := NewMockRepository(ctrl)
	metrics := NewMockMetrics(ctrl)
	insertErr := errors.New("clickhouse down")

	metrics.EXPECT().ObserveEnqueue(model.EventTransfer, nil)
	repo.EXPECT().InsertEvents(gomock.Any(), gomock.Len(1)).Return(insertErr)
	metrics.EXPECT().
		ObserveFlush(1, gomock.Any(), gomock.Any()).
		Do(func(_ int, err error, _ time.Time) {
			if !errors.Is(err, insertErr) {
				t.Fatalf("unexpected error propagated to metrics: %v", err)
			}
		})

	sink := NewSink(repo, metrics, batcher.Config{FlushSize: 10, FlushInterval: time.Hour, RPS: 1000}, zap.NewNop())
	sink.Start(context.Background())
	sink.Publish(context.Background(), model.Event{Kind: model.EventTransfer})
	sink.Stop()
}

func TestSink_PublishAfterStopIsDropped(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := NewMockRepository(ctrl)
	metrics := NewMockMetrics(ctrl)

	metrics.EXPECT().
		ObserveEnqueue(model.EventRenew, gomock.Any()).
		Do(func(_ model.EventKind, err error) {
			if !errors.Is(err, batcher.ErrStopped) {
				t.Fatalf("expected ErrStopped, got %v", err)
			}
		})

	sink := NewSink(repo, metrics, batcher.Config{}, zap.NewNop())
	sink.Start(context.Background())
	sink.Stop()
	sink.Publish(context.Background(), model.Event{Kind: model.EventRenew})
}

func TestFanout(t *testing.T) {
	a, b := &ledger.MemorySink{}, &ledger.MemorySink{}
	fan := Fanout{a, NewLogSink(zap.NewNop()), b}

	fan.Publish(context.Background(), model.Event{Kind: model.EventRenew, Sequence: 7})

	if len(a.Events()) != 1 || len(b.Events()) != 1 {
		t.Fatalf("expected each sink to receive the event")
	}
	if b.Events()[0].Sequence != 7 {
		t.Fatalf("unexpected event: %+v", b.Events()[0])
	}
}

func TestSink_HangingArchiveNeverBlocksPublish(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := NewMockRepository(ctrl)
	metrics := NewMockMetrics(ctrl)
	release := make(chan struct{})

	repo.EXPECT().
		InsertEvents(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ []model.Event) error {
			select {
			case <-release:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		}).
		AnyTimes()
	metrics.EXPECT().ObserveFlush(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	var dropped atomic.Int32
	metrics.EXPECT().
		ObserveEnqueue(model.EventTransfer, gomock.Any()).
		Do(func(_ model.EventKind, err error) {
			if errors.Is(err, batcher.ErrFull) {
				dropped.Add(1)
			} else if err != nil {
				t.Errorf("unexpected enqueue error: %v", err)
			}
		}).
		Times(20)

	sink := NewSink(repo, metrics, batcher.Config{FlushSize: 1, FlushInterval: time.Hour, RPS: 1000}, zap.NewNop())
	sink.Start(context.Background())

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 1; i <= 20; i++ {
			sink.Publish(context.Background(), model.Event{Kind: model.EventTransfer, Sequence: uint64(i)})
		}
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("Publish blocked behind a hanging archive")
	}
	if dropped.Load() == 0 {
		t.Fatalf("expected overflow events to be counted as dropped")
	}

	close(release)
	sink.Stop()
}

func TestSink_CanceledCallerContextDoesNotDrop(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := NewMockRepository(ctrl)
	metrics := NewMockMetrics(ctrl)

	metrics.EXPECT().ObserveEnqueue(model.EventRenew, nil)
	repo.EXPECT().InsertEvents(gomock.Any(), gomock.Len(1)).Return(nil)
	metrics.EXPECT().ObserveFlush(1, nil, gomock.Any())

	sink := NewSink(repo, metrics, batcher.Config{FlushSize: 10, FlushInterval: time.Hour, RPS: 1000}, zap.NewNop())
	sink.Start(context.Background())

	canceled, cancel := context.WithCancel(context.Background())
	cancel()
	sink.Publish(canceled, model.Event{Kind: model.EventRenew})
	sink.Stop()
}

func TestSink_DetachedStartArchivesAfterShutdownSignal(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := NewMockRepository(ctrl)
	metrics := NewMockMetrics(ctrl)

	metrics.EXPECT().ObserveEnqueue(model.EventCommitMade, nil)
	repo.EXPECT().InsertEvents(gomock.Any(), gomock.Len(1)).Return(nil)
	metrics.EXPECT().ObserveFlush(1, nil, gomock.Any())

	signal, cancel := context.WithCancel(context.Background())
	sink := NewSink(repo, metrics, batcher.Config{FlushSize: 10, FlushInterval: time.Hour, RPS: 1000}, zap.NewNop())
	sink.Start(context.WithoutCancel(signal))

	cancel()
	time.Sleep(10 * time.Millisecond)
	sink.Publish(context.Background(), model.Event{Kind: model.EventCommitMade})
	sink.Stop()
}
