// Package registry is the authoritative ownership and expiry ledger keyed by
// namehash.
package registry

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/namesight7000-backend/internal/naming/ledger"
	"github.com/goodnatureofminers/namesight7000-backend/internal/naming/model"
	"github.com/goodnatureofminers/namesight7000-backend/internal/naming/namehash"
	"github.com/goodnatureofminers/namesight7000-backend/pkg/safe"
)

// DefaultRenewExtension is used by Renew when the registry was not
// initialized with an explicit extension.
const DefaultRenewExtension uint64 = 31_536_000

const (
	ownerPrefix    = "registry:owner:"
	resolverPrefix = "registry:resolver:"
	expiresPrefix  = "registry:expires:"
	configKey      = "registry:config"
)

// Config is the registry singleton, set once by Init.
type Config struct {
	Admin model.Address
	// Controller may reassign names whose expiry has passed.
	Controller     model.Address
	RenewExtension uint64
}

// Registry implements the ownership ledger contract.
type Registry struct {
	self   model.Address
	logger *zap.Logger
}

// New creates the registry contract deployed at self.
func New(self model.Address, logger *zap.Logger) *Registry {
	return &Registry{
		self:   self,
		logger: logger.Named("registry").With(zap.String("contract", string(self))),
	}
}

// Address returns the contract address.
func (r *Registry) Address() model.Address {
	return r.self
}

// Version reports the contract interface version.
func (r *Registry) Version() uint32 {
	return 1
}

// Init stores the registry configuration. It can run only once and must be
// authorized by cfg.Admin.
func (r *Registry) Init(env *ledger.Env, cfg Config) error {
	env = env.Enter(r.self)
	if err := env.RequireAuth(cfg.Admin); err != nil {
		return err
	}
	has, err := env.Store().Has([]byte(configKey))
	if err != nil {
		return err
	}
	if has {
		return model.ErrAlreadyInitialized
	}
	if cfg.RenewExtension == 0 {
		cfg.RenewExtension = DefaultRenewExtension
	}
	return ledger.SetValue(env.Store(), []byte(configKey), cfg)
}

// Config returns the stored configuration, or defaults before Init.
func (r *Registry) Config(env *ledger.Env) (Config, error) {
	var cfg Config
	ok, err := ledger.GetValue(env.Store(), []byte(configKey), &cfg)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return Config{RenewExtension: DefaultRenewExtension}, nil
	}
	return cfg, nil
}

// SetOwner assigns newOwner. The current owner must authorize; on first
// assignment the new owner authorizes its own claim. The configured
// controller may also reassign a name whose expiry has passed.
func (r *Registry) SetOwner(env *ledger.Env, node model.Hash, newOwner model.Address) error {
	env = env.Enter(r.self)
	if newOwner.IsZero() {
		return fmt.Errorf("%w: empty owner", model.ErrInvalidInput)
	}
	current, ok, err := r.LookupOwner(env, node)
	if err != nil {
		return err
	}
	if ok {
		if err := r.authorizeChange(env, node, current); err != nil {
			return err
		}
	} else if err := env.RequireAuth(newOwner); err != nil {
		return err
	}

	if err := ledger.SetValue(env.Store(), ledger.Key(ownerPrefix, node[:]), newOwner); err != nil {
		return err
	}

	from := current
	if !ok {
		from = newOwner
	}
	env.Emit(model.Event{Kind: model.EventTransfer, Namehash: node, From: from, To: newOwner})
	r.logger.Debug("owner set",
		zap.Stringer("namehash", node),
		zap.String("from", string(from)),
		zap.String("to", string(newOwner)),
	)
	return nil
}

func (r *Registry) authorizeChange(env *ledger.Env, node model.Hash, current model.Address) error {
	if env.Authorized(current) {
		return nil
	}
	cfg, err := r.Config(env)
	if err != nil {
		return err
	}
	if !cfg.Controller.IsZero() && env.Authorized(cfg.Controller) {
		expiry, ok, err := r.LookupExpiry(env, node)
		if err != nil {
			return err
		}
		if ok && expiry < env.Now() {
			return nil
		}
	}
	return env.RequireAuth(current)
}

// Owner returns the owner of node.
func (r *Registry) Owner(env *ledger.Env, node model.Hash) (model.Address, error) {
	owner, ok, err := r.LookupOwner(env, node)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf("%w: %s", model.ErrOwnerNotSet, node)
	}
	return owner, nil
}

// LookupOwner returns the owner of node and whether one is set.
func (r *Registry) LookupOwner(env *ledger.Env, node model.Hash) (model.Address, bool, error) {
	var owner model.Address
	ok, err := ledger.GetValue(env.Store(), ledger.Key(ownerPrefix, node[:]), &owner)
	return owner, ok, err
}

// Transfer hands node to a new owner on behalf of the current owner.
func (r *Registry) Transfer(env *ledger.Env, node model.Hash, to model.Address) error {
	current, err := r.Owner(env, node)
	if err != nil {
		return err
	}
	if err := env.Enter(r.self).RequireAuth(current); err != nil {
		return err
	}
	return r.SetOwner(env, node, to)
}

// SetResolver points node at a resolver contract.
func (r *Registry) SetResolver(env *ledger.Env, node model.Hash, resolver model.Address) error {
	env = env.Enter(r.self)
	owner, err := r.Owner(env, node)
	if err != nil {
		return err
	}
	if err := env.RequireAuth(owner); err != nil {
		return err
	}
	if err := ledger.SetValue(env.Store(), ledger.Key(resolverPrefix, node[:]), resolver); err != nil {
		return err
	}
	env.Emit(model.Event{Kind: model.EventResolverChanged, Namehash: node, Resolver: resolver})
	return nil
}

// Resolver returns the resolver of node.
func (r *Registry) Resolver(env *ledger.Env, node model.Hash) (model.Address, error) {
	var resolver model.Address
	ok, err := ledger.GetValue(env.Store(), ledger.Key(resolverPrefix, node[:]), &resolver)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf("%w: %s", model.ErrResolverNotSet, node)
	}
	return resolver, nil
}

// Renew extends node by the configured renew extension on behalf of its
// owner.
func (r *Registry) Renew(env *ledger.Env, node model.Hash) (uint64, error) {
	env = env.Enter(r.self)
	cfg, err := r.Config(env)
	if err != nil {
		return 0, err
	}
	return r.extend(env, node, cfg.RenewExtension)
}

// RenewFor extends node by an explicit extension. Only the configured
// controller may pick the extension, and the owner must still authorize.
func (r *Registry) RenewFor(env *ledger.Env, node model.Hash, extension uint64) (uint64, error) {
	env = env.Enter(r.self)
	cfg, err := r.Config(env)
	if err != nil {
		return 0, err
	}
	if cfg.Controller.IsZero() {
		return 0, fmt.Errorf("%w: no controller configured", model.ErrUnauthorized)
	}
	if err := env.RequireAuth(cfg.Controller); err != nil {
		return 0, err
	}
	return r.extend(env, node, extension)
}

// SetRenewExtension replaces the extension Renew applies. The controller
// keeps it in step with its own parameters; the admin may also set it.
func (r *Registry) SetRenewExtension(env *ledger.Env, extension uint64) error {
	env = env.Enter(r.self)
	var cfg Config
	ok, err := ledger.GetValue(env.Store(), []byte(configKey), &cfg)
	if err != nil {
		return err
	}
	if !ok {
		return model.ErrNotInitialized
	}
	if !env.Authorized(cfg.Controller) && !env.Authorized(cfg.Admin) {
		return fmt.Errorf("%w: renew extension", model.ErrUnauthorized)
	}
	if extension == 0 {
		return fmt.Errorf("%w: zero renew extension", model.ErrInvalidInput)
	}
	if cfg.RenewExtension == extension {
		return nil
	}
	cfg.RenewExtension = extension
	r.logger.Info("renew extension updated", zap.Uint64("extension", extension))
	return ledger.SetValue(env.Store(), []byte(configKey), cfg)
}

// extend moves the expiry of node to max(expiry, now) + extension. A lapsed
// name restarts from now instead of compounding from its stale expiry.
func (r *Registry) extend(env *ledger.Env, node model.Hash, extension uint64) (uint64, error) {
	if extension == 0 {
		return 0, fmt.Errorf("%w: zero renew extension", model.ErrInvalidInput)
	}
	owner, err := r.Owner(env, node)
	if err != nil {
		return 0, err
	}
	if err := env.RequireAuth(owner); err != nil {
		return 0, err
	}

	now := env.Now()
	base := now
	current, ok, err := r.LookupExpiry(env, node)
	if err != nil {
		return 0, err
	}
	if ok && current > now {
		base = current
	}
	expiry, ok := safe.AddUint64(base, extension)
	if !ok {
		return 0, fmt.Errorf("%w: %d + %d", model.ErrExpiryOverflow, base, extension)
	}

	if err := ledger.SetValue(env.Store(), ledger.Key(expiresPrefix, node[:]), expiry); err != nil {
		return 0, err
	}
	env.Emit(model.Event{Kind: model.EventRenew, Namehash: node, ExpiresAt: expiry})
	return expiry, nil
}

// Expires returns the expiry timestamp of node.
func (r *Registry) Expires(env *ledger.Env, node model.Hash) (uint64, error) {
	expiry, ok, err := r.LookupExpiry(env, node)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, fmt.Errorf("%w: %s", model.ErrExpiryNotSet, node)
	}
	return expiry, nil
}

// LookupExpiry returns the expiry of node and whether one is recorded.
func (r *Registry) LookupExpiry(env *ledger.Env, node model.Hash) (uint64, bool, error) {
	var expiry uint64
	ok, err := ledger.GetValue(env.Store(), ledger.Key(expiresPrefix, node[:]), &expiry)
	return expiry, ok, err
}

// Namehash folds labels from the top level down.
func (r *Registry) Namehash(labels [][]byte) (model.Hash, error) {
	return namehash.Namehash(labels...)
}
