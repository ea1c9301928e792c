package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/goodnatureofminers/namesight7000-backend/internal/naming/model"
)

var (
	hostInvocationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "namesight7000",
		Subsystem: "ledger_host",
		Name:      "invocations_total",
		Help:      "Count of ledger invocations.",
	}, []string{"operation", "network", "status"})
	hostInvocationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "namesight7000",
		Subsystem: "ledger_host",
		Name:      "invocation_duration_seconds",
		Help:      "Duration of ledger invocations including commit.",
		Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
	}, []string{"operation", "network", "status"})
	hostRejectionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "namesight7000",
		Subsystem: "ledger_host",
		Name:      "rejections_total",
		Help:      "Count of failed invocations by reason.",
	}, []string{"operation", "network", "reason"})
)

// Host tracks metrics for ledger invocations.
type Host struct {
	network string
}

// NewHost creates a Host metrics collector.
func NewHost(network model.Network) *Host {
	n := string(network)
	if n == "" {
		n = "unknown"
	}
	return &Host{network: n}
}

// Observe records duration and status of one invocation.
func (m Host) Observe(operation string, err error, started time.Time) {
	s := status(err)
	hostInvocationsTotal.WithLabelValues(operation, m.network, s).Inc()
	hostInvocationDuration.WithLabelValues(operation, m.network, s).Observe(time.Since(started).Seconds())
	if err != nil {
		hostRejectionsTotal.WithLabelValues(operation, m.network, reason(err)).Inc()
	}
}
