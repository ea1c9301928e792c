package transport

import (
	"context"

	"github.com/goodnatureofminers/namesight7000-backend/internal/naming/auth"
	"github.com/goodnatureofminers/namesight7000-backend/internal/naming/ledger"
	"github.com/goodnatureofminers/namesight7000-backend/internal/naming/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Host interface {
		Invoke(ctx context.Context, inv ledger.Invocation, fn func(env *ledger.Env) error) error
		View(ctx context.Context, operation string, fn func(env *ledger.Env) error) error
		Sequence() uint64
	}
	Verifier interface {
		Verify(payload []byte, sigs []auth.Signature) ([]model.Address, error)
	}
	History interface {
		EventsByNamehash(ctx context.Context, node model.Hash, limit uint64) ([]model.Event, error)
	}
)
