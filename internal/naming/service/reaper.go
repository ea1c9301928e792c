// Package service contains the background loops of the naming node.
package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/namesight7000-backend/internal/clock"
	"github.com/goodnatureofminers/namesight7000-backend/internal/naming/ledger"
)

const (
	defaultReapInterval   = time.Minute
	defaultReapBatchLimit = 500
	defaultReapMaxBackoff = 10 * time.Minute
)

// ReaperConfig controls how often stale commitments are swept.
type ReaperConfig struct {
	Interval   time.Duration
	BatchLimit int
	MaxBackoff time.Duration
}

// Reaper periodically removes commitments that are too old to be revealed.
type Reaper struct {
	host      Host
	registrar CommitmentReaper
	metrics   ReaperMetrics
	cfg       ReaperConfig
	logger    *zap.Logger
}

func NewReaper(host Host, registrar CommitmentReaper, metrics ReaperMetrics, cfg ReaperConfig, logger *zap.Logger) (*Reaper, error) {
	if host == nil || registrar == nil {
		return nil, errors.New("reaper needs a host and a registrar")
	}
	if metrics == nil {
		return nil, errors.New("reaper metrics is required")
	}
	if cfg.Interval <= 0 {
		cfg.Interval = defaultReapInterval
	}
	if cfg.BatchLimit <= 0 {
		cfg.BatchLimit = defaultReapBatchLimit
	}
	if cfg.MaxBackoff < cfg.Interval {
		cfg.MaxBackoff = max(defaultReapMaxBackoff, cfg.Interval)
	}
	return &Reaper{
		host:      host,
		registrar: registrar,
		metrics:   metrics,
		cfg:       cfg,
		logger:    logger.Named("reaper"),
	}, nil
}

// Run sweeps until ctx is canceled. A full batch is followed immediately by
// another pass; failures back off exponentially up to MaxBackoff.
func (s *Reaper) Run(ctx context.Context) error {
	backoff := s.cfg.Interval
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		sleep := s.cfg.Interval
		removed, err := s.ReapOnce(ctx)
		switch {
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			return err
		case err != nil:
			backoff = min(backoff*2, s.cfg.MaxBackoff)
			sleep = backoff
			s.logger.Warn("reap failed", zap.Error(err), zap.Duration("retry_in", sleep))
		default:
			backoff = s.cfg.Interval
			if removed >= s.cfg.BatchLimit {
				sleep = 0
			}
			if removed > 0 {
				s.logger.Info("stale commitments removed", zap.Int("count", removed))
			}
		}

		if err := clock.SleepWithContext(ctx, sleep); err != nil {
			return err
		}
	}
}

// ReapOnce runs a single sweep as its own invocation.
func (s *Reaper) ReapOnce(ctx context.Context) (removed int, err error) {
	started := time.Now()
	defer func() {
		s.metrics.ObserveReap(removed, err, started)
	}()

	err = s.host.Invoke(ctx, ledger.Invocation{Operation: "reap_commitments"}, func(env *ledger.Env) error {
		n, err := s.registrar.Reap(env, s.cfg.BatchLimit)
		if err != nil {
			return err
		}
		removed = n
		return nil
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}
