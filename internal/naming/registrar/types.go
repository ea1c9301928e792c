package registrar

import (
	"github.com/goodnatureofminers/namesight7000-backend/internal/naming/ledger"
	"github.com/goodnatureofminers/namesight7000-backend/internal/naming/model"
)

// Registry is the registry surface the registrar drives.
type Registry interface {
	SetOwner(env *ledger.Env, node model.Hash, owner model.Address) error
	SetResolver(env *ledger.Env, node model.Hash, resolver model.Address) error
	RenewFor(env *ledger.Env, node model.Hash, extension uint64) (uint64, error)
	SetRenewExtension(env *ledger.Env, extension uint64) error
	LookupOwner(env *ledger.Env, node model.Hash) (model.Address, bool, error)
	LookupExpiry(env *ledger.Env, node model.Hash) (uint64, bool, error)
}

// Config is the registrar singleton written by Init.
type Config struct {
	Registry model.Address
	TLD      string
	Admin    model.Address
}
