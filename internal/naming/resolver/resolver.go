// Package resolver stores per-name records: an address and text entries.
package resolver

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/namesight7000-backend/internal/naming/ledger"
	"github.com/goodnatureofminers/namesight7000-backend/internal/naming/model"
)

// MaxTextKeyLen bounds text record keys in bytes.
const MaxTextKeyLen = 256

const (
	addrPrefix  = "resolver:addr:"
	textPrefix  = "resolver:text:"
	registryKey = "resolver:registry"
)

// OwnerReader is the part of the registry the resolver consults.
type OwnerReader interface {
	Owner(env *ledger.Env, node model.Hash) (model.Address, error)
}

// Resolver implements the record store contract.
type Resolver struct {
	self      model.Address
	contracts *ledger.Directory
	logger    *zap.Logger
}

// New creates the resolver contract deployed at self. Registry calls are
// routed by address through contracts.
func New(self model.Address, contracts *ledger.Directory, logger *zap.Logger) *Resolver {
	return &Resolver{
		self:      self,
		contracts: contracts,
		logger:    logger.Named("resolver").With(zap.String("contract", string(self))),
	}
}

// Address returns the contract address.
func (r *Resolver) Address() model.Address {
	return r.self
}

// Version reports the contract interface version.
func (r *Resolver) Version() uint32 {
	return 1
}

// Init binds the resolver to a registry. It can run only once.
func (r *Resolver) Init(env *ledger.Env, registry model.Address) error {
	env = env.Enter(r.self)
	if registry.IsZero() {
		return fmt.Errorf("%w: empty registry address", model.ErrInvalidInput)
	}
	has, err := env.Store().Has([]byte(registryKey))
	if err != nil {
		return err
	}
	if has {
		return model.ErrAlreadyInitialized
	}
	return ledger.SetValue(env.Store(), []byte(registryKey), registry)
}

// Registry returns the bound registry address.
func (r *Resolver) Registry(env *ledger.Env) (model.Address, error) {
	var registry model.Address
	ok, err := ledger.GetValue(env.Store(), []byte(registryKey), &registry)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", model.ErrNotInitialized
	}
	return registry, nil
}

// Addr returns the address record of node.
func (r *Resolver) Addr(env *ledger.Env, node model.Hash) (model.Address, bool, error) {
	if _, err := r.Registry(env); err != nil {
		return "", false, err
	}
	var addr model.Address
	ok, err := ledger.GetValue(env.Store(), addrKey(node), &addr)
	return addr, ok, err
}

// Text returns the text record key of node.
func (r *Resolver) Text(env *ledger.Env, node model.Hash, key string) (string, bool, error) {
	if _, err := r.Registry(env); err != nil {
		return "", false, err
	}
	if err := validateTextKey(key); err != nil {
		return "", false, err
	}
	var value string
	ok, err := ledger.GetValue(env.Store(), textKey(node, key), &value)
	return value, ok, err
}

// SetAddr writes the address record of node on behalf of its current owner.
func (r *Resolver) SetAddr(env *ledger.Env, caller model.Address, node model.Hash, addr model.Address) error {
	env = env.Enter(r.self)
	if err := env.RequireAuth(caller); err != nil {
		return err
	}
	if err := r.requireOwner(env, caller, node); err != nil {
		return err
	}
	if err := ledger.SetValue(env.Store(), addrKey(node), addr); err != nil {
		return err
	}
	env.Emit(model.Event{Kind: model.EventAddressChanged, Namehash: node, Addr: addr})
	return nil
}

// SetText writes a text record of node on behalf of its current owner.
func (r *Resolver) SetText(env *ledger.Env, caller model.Address, node model.Hash, key, value string) error {
	env = env.Enter(r.self)
	if err := env.RequireAuth(caller); err != nil {
		return err
	}
	if err := validateTextKey(key); err != nil {
		return err
	}
	if err := r.requireOwner(env, caller, node); err != nil {
		return err
	}
	if err := ledger.SetValue(env.Store(), textKey(node, key), value); err != nil {
		return err
	}
	env.Emit(model.Event{Kind: model.EventTextChanged, Namehash: node, Key: key})
	return nil
}

// requireOwner asks the registry for the owner on every call; ownership is
// never cached here.
func (r *Resolver) requireOwner(env *ledger.Env, caller model.Address, node model.Hash) error {
	registryAddr, err := r.Registry(env)
	if err != nil {
		return err
	}
	registry, err := ledger.Lookup[OwnerReader](r.contracts, registryAddr)
	if err != nil {
		return err
	}
	owner, err := registry.Owner(env, node)
	if err != nil {
		return err
	}
	if owner != caller {
		r.logger.Debug("rejected write from non-owner",
			zap.Stringer("namehash", node),
			zap.String("caller", string(caller)),
		)
		return fmt.Errorf("%w: %s", model.ErrNotOwner, caller)
	}
	return nil
}

func validateTextKey(key string) error {
	if len(key) == 0 || len(key) > MaxTextKeyLen {
		return fmt.Errorf("%w: text key length %d", model.ErrInvalidInput, len(key))
	}
	return nil
}

func addrKey(node model.Hash) []byte {
	return ledger.Key(addrPrefix, node[:])
}

func textKey(node model.Hash, key string) []byte {
	return ledger.Key(textPrefix, node[:], []byte(key))
}
