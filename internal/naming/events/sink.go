// Package events ships committed ledger events to their consumers.
package events

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/namesight7000-backend/internal/naming/model"
	"github.com/goodnatureofminers/namesight7000-backend/pkg/batcher"
)

// Sink batches events into a Repository. Publish never waits: when the
// buffer is full or the sink is stopped the event is logged and counted as
// dropped, and the ledger carries on.
type Sink struct {
	repo    Repository
	metrics Metrics
	batcher *batcher.Batcher[model.Event]
	logger  *zap.Logger
}

// NewSink creates a Sink. Call Start before publishing and Stop on shutdown.
func NewSink(repo Repository, metrics Metrics, cfg batcher.Config, logger *zap.Logger) *Sink {
	s := &Sink{
		repo:    repo,
		metrics: metrics,
		logger:  logger.Named("event_sink"),
	}
	s.batcher = batcher.New(s.logger, s.flush, cfg)
	return s
}

// Start launches the flush loop.
func (s *Sink) Start(ctx context.Context) {
	s.batcher.Start(ctx)
}

// Stop flushes pending events and stops the loop.
func (s *Sink) Stop() {
	s.batcher.Stop()
}

// Publish queues ev for the next batch.
func (s *Sink) Publish(_ context.Context, ev model.Event) {
	err := s.batcher.TryAdd(ev)
	s.metrics.ObserveEnqueue(ev.Kind, err)
	if err != nil {
		s.logger.Warn("event dropped",
			zap.Uint64("sequence", ev.Sequence),
			zap.String("kind", string(ev.Kind)),
			zap.Error(err),
		)
	}
}

func (s *Sink) flush(ctx context.Context, batch []model.Event) (err error) {
	started := time.Now()
	defer func() {
		s.metrics.ObserveFlush(len(batch), err, started)
	}()
	return s.repo.InsertEvents(ctx, batch)
}
