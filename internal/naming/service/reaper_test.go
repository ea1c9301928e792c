package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/namesight7000-backend/internal/naming/ledger"
)

// runInline executes the invocation body against a throwaway store.
func runInline(t *testing.T) func(context.Context, ledger.Invocation, func(*ledger.Env) error) error {
	return func(ctx context.Context, _ ledger.Invocation, fn func(*ledger.Env) error) error {
		store, err := ledger.NewMemoryLevelStore()
		require.NoError(t, err)
		defer func() { _ = store.Close() }()
		return fn(ledger.NewEnv(ctx, store, 0))
	}
}

func TestReaper_ReapOnce(t *testing.T) {
	reapErr := errors.New("iterator failed")

	tests := []struct {
		name        string
		prepare     func(host *MockHost, reaper *MockCommitmentReaper, metrics *MockReaperMetrics)
		wantRemoved int
		wantErr     error
	}{
		{
			name: "removes stale commitments",
			prepare: func(host *MockHost, reaper *MockCommitmentReaper, metrics *MockReaperMetrics) {
				host.EXPECT().
					Invoke(gomock.Any(), ledger.Invocation{Operation: "reap_commitments"}, gomock.Any()).
					DoAndReturn(runInline(t))
				reaper.EXPECT().Reap(gomock.Any(), 10).Return(4, nil)
				metrics.EXPECT().ObserveReap(4, nil, gomock.AssignableToTypeOf(time.Time{}))
			},
			wantRemoved: 4,
		},
		{
			name: "reap error is reported",
			prepare: func(host *MockHost, reaper *MockCommitmentReaper, metrics *MockReaperMetrics) {
				host.EXPECT().Invoke(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(runInline(t))
				reaper.EXPECT().Reap(gomock.Any(), 10).Return(0, reapErr)
				metrics.EXPECT().
					ObserveReap(0, gomock.Any(), gomock.Any()).
					Do(func(_ int, err error, _ time.Time) {
						if !errors.Is(err, reapErr) {
							t.Fatalf("unexpected error propagated to metrics: %v", err)
						}
					})
			},
			wantErr: reapErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			t.Cleanup(ctrl.Finish)

			host := NewMockHost(ctrl)
			reaper := NewMockCommitmentReaper(ctrl)
			metrics := NewMockReaperMetrics(ctrl)
			tt.prepare(host, reaper, metrics)

			s, err := NewReaper(host, reaper, metrics, ReaperConfig{Interval: time.Millisecond, BatchLimit: 10}, zap.NewNop())
			require.NoError(t, err)

			removed, err := s.ReapOnce(context.Background())
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantRemoved, removed)
		})
	}
}

func TestReaper_RunStopsOnCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	host := NewMockHost(ctrl)
	reaper := NewMockCommitmentReaper(ctrl)
	metrics := NewMockReaperMetrics(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	host.EXPECT().Invoke(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(runInline(t)).MinTimes(3)
	metrics.EXPECT().ObserveReap(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	// A failure, a full batch, then an idle pass that cancels the loop.
	gomock.InOrder(
		reaper.EXPECT().Reap(gomock.Any(), 2).Return(0, errors.New("transient")),
		reaper.EXPECT().Reap(gomock.Any(), 2).Return(2, nil),
		reaper.EXPECT().Reap(gomock.Any(), 2).DoAndReturn(func(*ledger.Env, int) (int, error) {
			cancel()
			return 0, nil
		}),
	)

	s, err := NewReaper(host, reaper, metrics, ReaperConfig{
		Interval:   time.Millisecond,
		BatchLimit: 2,
		MaxBackoff: 5 * time.Millisecond,
	}, zap.NewNop())
	require.NoError(t, err)

	err = s.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestNewReaper_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	_, err := NewReaper(nil, NewMockCommitmentReaper(ctrl), NewMockReaperMetrics(ctrl), ReaperConfig{}, zap.NewNop())
	require.Error(t, err)

	s, err := NewReaper(NewMockHost(ctrl), NewMockCommitmentReaper(ctrl), NewMockReaperMetrics(ctrl), ReaperConfig{}, zap.NewNop())
	require.NoError(t, err)
	require.Equal(t, defaultReapInterval, s.cfg.Interval)
	require.Equal(t, defaultReapBatchLimit, s.cfg.BatchLimit)
	require.Equal(t, defaultReapMaxBackoff, s.cfg.MaxBackoff)
}
