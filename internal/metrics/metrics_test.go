package metrics

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/goodnatureofminers/namesight7000-backend/internal/naming/model"
)

func delta(t *testing.T, collector prometheus.Collector, observe func()) float64 {
	t.Helper()

	before := testutil.ToFloat64(collector)
	observe()
	after := testutil.ToFloat64(collector)
	return after - before
}

func TestHostRecords(t *testing.T) {
	m := NewHost("")
	start := time.Now().Add(-time.Millisecond)

	if inc := delta(t, hostInvocationsTotal.WithLabelValues("register", "unknown", "success"), func() {
		m.Observe("register", nil, start)
	}); inc != 1 {
		t.Fatalf("expected invocation counter increment, got %v", inc)
	}

	rejected := fmt.Errorf("reveal: %w", model.ErrCommitmentTooFresh)
	if inc := delta(t, hostRejectionsTotal.WithLabelValues("register", "unknown", "commitment_too_fresh"), func() {
		m.Observe("register", rejected, start)
	}); inc != 1 {
		t.Fatalf("expected rejection counter increment, got %v", inc)
	}

	if inc := delta(t, hostRejectionsTotal.WithLabelValues("register", "unknown", "internal"), func() {
		m.Observe("register", errors.New("disk full"), start)
	}); inc != 1 {
		t.Fatalf("expected internal rejection increment, got %v", inc)
	}
}

func TestClickhouseRepositoryRecords(t *testing.T) {
	m := NewClickhouseRepository()
	start := time.Now()

	if inc := delta(t, clickhouseRepositoryRequestsTotal.WithLabelValues("insert_events", "error"), func() {
		m.Observe("insert_events", errors.New("oops"), start)
	}); inc != 1 {
		t.Fatalf("expected repository error increment, got %v", inc)
	}
	m.Observe("insert_events", nil, start)
}

func TestEventSinkRecords(t *testing.T) {
	m := NewEventSink()

	if inc := delta(t, eventSinkEnqueuedTotal.WithLabelValues("unknown", "success"), func() {
		m.ObserveEnqueue("", nil)
	}); inc != 1 {
		t.Fatalf("expected enqueue increment, got %v", inc)
	}

	if inc := delta(t, eventSinkFlushTotal.WithLabelValues("success"), func() {
		m.ObserveFlush(12, nil, time.Now())
	}); inc != 1 {
		t.Fatalf("expected flush increment, got %v", inc)
	}
}

func TestReaperRecords(t *testing.T) {
	m := NewReaper()

	if inc := delta(t, reaperRemovedTotal, func() {
		m.ObserveReap(3, nil, time.Now())
	}); inc != 3 {
		t.Fatalf("expected removed counter +3, got %v", inc)
	}
	if inc := delta(t, reaperRunsTotal.WithLabelValues("error"), func() {
		m.ObserveReap(0, errors.New("boom"), time.Now())
	}); inc != 1 {
		t.Fatalf("expected error run increment, got %v", inc)
	}
}
