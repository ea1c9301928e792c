package service

import (
	"context"
	"time"

	"github.com/goodnatureofminers/namesight7000-backend/internal/naming/ledger"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Host interface {
		Invoke(ctx context.Context, inv ledger.Invocation, fn func(env *ledger.Env) error) error
	}
	CommitmentReaper interface {
		Reap(env *ledger.Env, limit int) (int, error)
	}
	ReaperMetrics interface {
		ObserveReap(removed int, err error, started time.Time)
	}
)
