// Package registrar runs the commit-reveal registration and renewal workflow
// for a single top-level namespace.
package registrar

import (
	"errors"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/namesight7000-backend/internal/naming/ledger"
	"github.com/goodnatureofminers/namesight7000-backend/internal/naming/model"
	"github.com/goodnatureofminers/namesight7000-backend/internal/naming/namehash"
	"github.com/goodnatureofminers/namesight7000-backend/pkg/safe"
)

const (
	configKey        = "registrar:config"
	paramsKey        = "registrar:params"
	commitmentPrefix = "registrar:commit:"

	namehashCacheSize = 10_000
)

// Registrar implements the registrar contract.
type Registrar struct {
	self      model.Address
	contracts *ledger.Directory
	nodes     *lru.Cache[string, model.Hash]
	logger    *zap.Logger
}

// New creates the registrar contract deployed at self.
func New(self model.Address, contracts *ledger.Directory, logger *zap.Logger) (*Registrar, error) {
	if contracts == nil {
		return nil, errors.New("contract directory is required")
	}
	nodes, err := lru.New[string, model.Hash](namehashCacheSize)
	if err != nil {
		return nil, fmt.Errorf("init namehash cache: %w", err)
	}
	return &Registrar{
		self:      self,
		contracts: contracts,
		nodes:     nodes,
		logger:    logger.Named("registrar").With(zap.String("contract", string(self))),
	}, nil
}

// Address returns the contract address.
func (r *Registrar) Address() model.Address {
	return r.self
}

// Init configures the registrar once. The admin must authorize.
func (r *Registrar) Init(env *ledger.Env, cfg Config, params model.Params) error {
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
	if cfg.Registry.IsZero() {
		return fmt.Errorf("%w: empty registry address", model.ErrInvalidInput)
	}
	if err := namehash.ValidateLabel([]byte(cfg.TLD)); err != nil {
		return fmt.Errorf("top-level label: %w", err)
	}
	if err := params.Validate(); err != nil {
		return err
	}
	if err := ledger.SetValue(env.Store(), []byte(configKey), cfg); err != nil {
		return err
	}
	return ledger.SetValue(env.Store(), []byte(paramsKey), params)
}

// Config returns the registrar configuration.
func (r *Registrar) Config(env *ledger.Env) (Config, error) {
	var cfg Config
	ok, err := ledger.GetValue(env.Store(), []byte(configKey), &cfg)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return Config{}, model.ErrNotInitialized
	}
	return cfg, nil
}

// Registry returns the address of the registry this registrar drives.
func (r *Registrar) Registry(env *ledger.Env) (model.Address, error) {
	cfg, err := r.Config(env)
	if err != nil {
		return "", err
	}
	return cfg.Registry, nil
}

// Params returns the current registrar parameters.
func (r *Registrar) Params(env *ledger.Env) (model.Params, error) {
	var params model.Params
	ok, err := ledger.GetValue(env.Store(), []byte(paramsKey), &params)
	if err != nil {
		return model.Params{}, err
	}
	if !ok {
		return model.Params{}, model.ErrNotInitialized
	}
	return params, nil
}

// SetParams replaces the parameters after revalidating the whole tuple.
func (r *Registrar) SetParams(env *ledger.Env, caller model.Address, params model.Params) error {
	env = env.Enter(r.self)
	cfg, err := r.Config(env)
	if err != nil {
		return err
	}
	if err := env.RequireAuth(caller); err != nil {
		return err
	}
	if caller != cfg.Admin {
		return fmt.Errorf("%w: %s", model.ErrNotAdmin, caller)
	}
	if err := params.Validate(); err != nil {
		return err
	}
	if err := ledger.SetValue(env.Store(), []byte(paramsKey), params); err != nil {
		return err
	}
	registry, err := r.registry(cfg)
	if err != nil {
		return err
	}
	// Owner-driven registry renewals apply the same extension as ours.
	if err := registry.SetRenewExtension(env, params.RenewExtension); err != nil {
		return fmt.Errorf("sync renew extension: %w", err)
	}
	r.logger.Info("params updated", zap.Any("params", params))
	return nil
}

// Node returns the namehash of label under the registrar's top-level label.
func (r *Registrar) Node(env *ledger.Env, label string) (model.Hash, error) {
	cfg, err := r.Config(env)
	if err != nil {
		return model.Hash{}, err
	}
	return r.node(cfg.TLD, label)
}

func (r *Registrar) node(tld, label string) (model.Hash, error) {
	cacheKey := tld + "\x00" + label
	if node, ok := r.nodes.Get(cacheKey); ok {
		return node, nil
	}
	node, err := namehash.Namehash([]byte(tld), []byte(label))
	if err != nil {
		return model.Hash{}, err
	}
	r.nodes.Add(cacheKey, node)
	return node, nil
}

func (r *Registrar) registry(cfg Config) (Registry, error) {
	return ledger.Lookup[Registry](r.contracts, cfg.Registry)
}

// Commit records a hidden registration intent. Only the label length is
// revealed.
func (r *Registrar) Commit(env *ledger.Env, caller model.Address, commitment model.Hash, labelLen uint32) error {
	env = env.Enter(r.self)
	if err := env.RequireAuth(caller); err != nil {
		return err
	}
	params, err := r.Params(env)
	if err != nil {
		return err
	}
	key := ledger.Key(commitmentPrefix, commitment[:])
	has, err := env.Store().Has(key)
	if err != nil {
		return err
	}
	if has {
		return fmt.Errorf("%w: %s", model.ErrCommitmentExists, commitment)
	}
	if !params.LabelLenInRange(labelLen) {
		return fmt.Errorf("%w: length %d outside [%d, %d]", model.ErrInvalidLabel, labelLen, params.MinLabelLen, params.MaxLabelLen)
	}

	record := model.Commitment{CreatedAt: env.Now(), LabelLen: labelLen}
	if err := ledger.SetValue(env.Store(), key, record); err != nil {
		return err
	}
	env.Emit(model.Event{Kind: model.EventCommitMade, Commitment: commitment})
	return nil
}

// Commitment returns the stored commitment record.
func (r *Registrar) Commitment(env *ledger.Env, commitment model.Hash) (model.Commitment, bool, error) {
	var record model.Commitment
	ok, err := ledger.GetValue(env.Store(), ledger.Key(commitmentPrefix, commitment[:]), &record)
	return record, ok, err
}

// Register reveals a commitment and registers label for owner. The
// commitment is consumed only when every registry call succeeded.
func (r *Registrar) Register(
	env *ledger.Env,
	caller model.Address,
	label string,
	owner model.Address,
	secret []byte,
	resolver *model.Address,
) (model.Hash, error) {
	env = env.Enter(r.self)
	if err := env.RequireAuth(caller); err != nil {
		return model.Hash{}, err
	}
	cfg, err := r.Config(env)
	if err != nil {
		return model.Hash{}, err
	}
	params, err := r.Params(env)
	if err != nil {
		return model.Hash{}, err
	}
	if err := ValidateLabel(label, params); err != nil {
		return model.Hash{}, err
	}
	if owner.IsZero() {
		return model.Hash{}, fmt.Errorf("%w: empty owner", model.ErrInvalidInput)
	}

	commitment := CommitmentFor(label, owner, secret)
	stored, ok, err := r.Commitment(env, commitment)
	if err != nil {
		return model.Hash{}, err
	}
	if !ok {
		return model.Hash{}, fmt.Errorf("%w: %s", model.ErrCommitmentMissing, commitment)
	}
	age := safe.SubUint64Saturating(env.Now(), stored.CreatedAt)
	if age < params.CommitMinAge {
		return model.Hash{}, fmt.Errorf("%w: age %ds, minimum %ds", model.ErrCommitmentTooFresh, age, params.CommitMinAge)
	}
	if age > params.CommitMaxAge {
		return model.Hash{}, fmt.Errorf("%w: age %ds, maximum %ds", model.ErrCommitmentTooOld, age, params.CommitMaxAge)
	}
	if uint64(len(label)) != uint64(stored.LabelLen) {
		return model.Hash{}, fmt.Errorf("%w: committed length %d, revealed %d", model.ErrInvalidLabel, stored.LabelLen, len(label))
	}

	available, err := r.available(env, cfg, params, label)
	if err != nil {
		return model.Hash{}, err
	}
	if !available {
		return model.Hash{}, fmt.Errorf("%w: %s.%s", model.ErrNameNotAvailable, label, cfg.TLD)
	}

	node, err := r.node(cfg.TLD, label)
	if err != nil {
		return model.Hash{}, err
	}
	registry, err := r.registry(cfg)
	if err != nil {
		return model.Hash{}, err
	}

	// The registrar owns the node while it configures it, so the registry
	// calls below are authorized by the registrar itself. The final
	// transfer hands it to owner within the same invocation.
	if err := registry.SetOwner(env, node, r.self); err != nil {
		return model.Hash{}, fmt.Errorf("claim %s: %w", node, err)
	}
	if resolver != nil {
		if err := registry.SetResolver(env, node, *resolver); err != nil {
			return model.Hash{}, fmt.Errorf("set resolver: %w", err)
		}
	}
	if _, err := registry.RenewFor(env, node, params.RenewExtension); err != nil {
		return model.Hash{}, fmt.Errorf("renew: %w", err)
	}
	expiry, ok, err := registry.LookupExpiry(env, node)
	if err != nil {
		return model.Hash{}, err
	}
	if !ok {
		return model.Hash{}, fmt.Errorf("%w: %s", model.ErrExpiryUnavailable, node)
	}
	if err := registry.SetOwner(env, node, owner); err != nil {
		return model.Hash{}, fmt.Errorf("hand over %s: %w", node, err)
	}

	if err := env.Store().Remove(ledger.Key(commitmentPrefix, commitment[:])); err != nil {
		return model.Hash{}, err
	}
	env.Emit(model.Event{Kind: model.EventNameRegistered, Namehash: node, Owner: owner, ExpiresAt: expiry})
	r.logger.Info("name registered",
		zap.String("label", label),
		zap.Stringer("namehash", node),
		zap.String("owner", string(owner)),
		zap.Uint64("expires_at", expiry),
	)
	return node, nil
}

// Renew extends label on behalf of its registry owner and returns the new
// expiry.
func (r *Registrar) Renew(env *ledger.Env, caller model.Address, label string) (uint64, error) {
	env = env.Enter(r.self)
	if err := env.RequireAuth(caller); err != nil {
		return 0, err
	}
	cfg, err := r.Config(env)
	if err != nil {
		return 0, err
	}
	params, err := r.Params(env)
	if err != nil {
		return 0, err
	}
	node, err := r.node(cfg.TLD, label)
	if err != nil {
		return 0, err
	}
	registry, err := r.registry(cfg)
	if err != nil {
		return 0, err
	}
	owner, ok, err := registry.LookupOwner(env, node)
	if err != nil {
		return 0, err
	}
	if !ok || owner != caller {
		return 0, fmt.Errorf("%w: %s", model.ErrNotOwner, caller)
	}
	if _, err := registry.RenewFor(env, node, params.RenewExtension); err != nil {
		return 0, err
	}
	expiry, ok, err := registry.LookupExpiry(env, node)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, fmt.Errorf("%w: %s", model.ErrExpiryUnavailable, node)
	}
	env.Emit(model.Event{Kind: model.EventNameRenewed, Namehash: node, ExpiresAt: expiry})
	return expiry, nil
}

// Available reports whether label can be registered now. It never fails on
// policy grounds; errors signal storage or wiring problems.
func (r *Registrar) Available(env *ledger.Env, label string) (bool, error) {
	if label == "" {
		return false, nil
	}
	cfg, err := r.Config(env)
	if errors.Is(err, model.ErrNotInitialized) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	params, err := r.Params(env)
	if errors.Is(err, model.ErrNotInitialized) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return r.available(env, cfg, params, label)
}

func (r *Registrar) available(env *ledger.Env, cfg Config, params model.Params, label string) (bool, error) {
	n, err := safe.Uint32(len(label))
	if err != nil || !params.LabelLenInRange(n) {
		return false, nil
	}
	node, err := r.node(cfg.TLD, label)
	if err != nil {
		return false, nil
	}
	registry, err := r.registry(cfg)
	if err != nil {
		return false, err
	}
	_, owned, err := registry.LookupOwner(env, node)
	if err != nil {
		return false, err
	}
	if !owned {
		return true, nil
	}
	expiry, ok, err := registry.LookupExpiry(env, node)
	if err != nil {
		return false, err
	}
	if !ok {
		// An owned name without an expiry is never released.
		return false, nil
	}
	return env.Now() > safe.AddUint64Saturating(expiry, params.GracePeriod), nil
}

// Reap deletes up to limit commitments older than the maximum commitment
// age and returns how many were removed. Stale commitments can no longer be
// revealed, so anyone may reap them.
func (r *Registrar) Reap(env *ledger.Env, limit int) (int, error) {
	env = env.Enter(r.self)
	params, err := r.Params(env)
	if err != nil {
		return 0, err
	}
	now := env.Now()
	var stale [][]byte
	err = env.Store().Iterate([]byte(commitmentPrefix), func(key, value []byte) (bool, error) {
		var record model.Commitment
		if err := ledger.DecodeValue(value, &record); err != nil {
			return false, err
		}
		if safe.SubUint64Saturating(now, record.CreatedAt) > params.CommitMaxAge {
			stale = append(stale, key)
		}
		return limit <= 0 || len(stale) < limit, nil
	})
	if err != nil {
		return 0, err
	}
	for _, key := range stale {
		if err := env.Store().Remove(key); err != nil {
			return 0, err
		}
	}
	return len(stale), nil
}
