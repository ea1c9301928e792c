package events

import (
	"context"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/namesight7000-backend/internal/naming/ledger"
	"github.com/goodnatureofminers/namesight7000-backend/internal/naming/model"
)

// LogSink writes every event to a logger.
type LogSink struct {
	logger *zap.Logger
}

func NewLogSink(logger *zap.Logger) *LogSink {
	return &LogSink{logger: logger.Named("events")}
}

func (s *LogSink) Publish(_ context.Context, ev model.Event) {
	fields := []zap.Field{
		zap.Uint64("sequence", ev.Sequence),
		zap.String("contract", string(ev.Contract)),
		zap.String("kind", string(ev.Kind)),
		zap.Uint64("timestamp", ev.Timestamp),
	}
	if !ev.Namehash.IsZero() {
		fields = append(fields, zap.Stringer("namehash", ev.Namehash))
	}
	if !ev.Commitment.IsZero() {
		fields = append(fields, zap.Stringer("commitment", ev.Commitment))
	}
	s.logger.Info("event", fields...)
}

// Fanout publishes each event to every sink in order.
type Fanout []ledger.EventSink

func (f Fanout) Publish(ctx context.Context, ev model.Event) {
	for _, sink := range f {
		sink.Publish(ctx, ev)
	}
}
