package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	reaperRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "namesight7000",
		Subsystem: "commitment_reaper",
		Name:      "runs_total",
		Help:      "Count of reap passes.",
	}, []string{"status"})

	reaperRunDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "namesight7000",
		Subsystem: "commitment_reaper",
		Name:      "run_duration_seconds",
		Help:      "Duration of a reap pass.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})

	reaperRemovedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "namesight7000",
		Subsystem: "commitment_reaper",
		Name:      "removed_total",
		Help:      "Count of stale commitments removed.",
	})
)

type Reaper struct{}

func NewReaper() *Reaper {
	return &Reaper{}
}

func (m Reaper) ObserveReap(removed int, err error, started time.Time) {
	s := status(err)
	reaperRunsTotal.WithLabelValues(s).Inc()
	reaperRunDuration.WithLabelValues(s).Observe(time.Since(started).Seconds())
	if removed > 0 {
		reaperRemovedTotal.Add(float64(removed))
	}
}
