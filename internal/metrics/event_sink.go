package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/goodnatureofminers/namesight7000-backend/internal/naming/model"
)

var (
	eventSinkEnqueuedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "namesight7000",
		Subsystem: "event_sink",
		Name:      "enqueued_total",
		Help:      "Count of events handed to the sink.",
	}, []string{"kind", "status"})

	eventSinkFlushTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "namesight7000",
		Subsystem: "event_sink",
		Name:      "flush_total",
		Help:      "Count of batch flushes.",
	}, []string{"status"})

	eventSinkFlushDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "namesight7000",
		Subsystem: "event_sink",
		Name:      "flush_duration_seconds",
		Help:      "Duration of batch flushes.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})

	eventSinkFlushSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "namesight7000",
		Subsystem: "event_sink",
		Name:      "flush_size",
		Help:      "Number of events per flushed batch.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12), // 1..2048
	})
)

type EventSink struct{}

func NewEventSink() *EventSink {
	return &EventSink{}
}

func (m EventSink) ObserveEnqueue(kind model.EventKind, err error) {
	k := string(kind)
	if k == "" {
		k = "unknown"
	}
	eventSinkEnqueuedTotal.WithLabelValues(k, status(err)).Inc()
}

func (m EventSink) ObserveFlush(size int, err error, started time.Time) {
	s := status(err)
	eventSinkFlushTotal.WithLabelValues(s).Inc()
	eventSinkFlushDuration.WithLabelValues(s).Observe(time.Since(started).Seconds())
	eventSinkFlushSize.Observe(float64(size))
}
