package transport

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/protobuf/proto"

	"github.com/goodnatureofminers/namesight7000-backend/internal/clock"
	"github.com/goodnatureofminers/namesight7000-backend/internal/naming/auth"
	"github.com/goodnatureofminers/namesight7000-backend/internal/naming/ledger"
	"github.com/goodnatureofminers/namesight7000-backend/internal/naming/model"
	"github.com/goodnatureofminers/namesight7000-backend/internal/naming/registrar"
	"github.com/goodnatureofminers/namesight7000-backend/internal/naming/registry"
	"github.com/goodnatureofminers/namesight7000-backend/internal/naming/resolver"
	namesight7000v1 "github.com/goodnatureofminers/namesight7000-backend/pkg/namesight7000/v1"
)

var (
	registryAddr  = model.ContractAddress("registry")
	resolverAddr  = model.ContractAddress("resolver")
	registrarAddr = model.ContractAddress("registrar")
)

type nopMetrics struct{}

func (nopMetrics) Observe(string, error, time.Time) {}

type fixture struct {
	t       *testing.T
	clock   *clock.Manual
	host    *ledger.Host
	handler *Handler
	admin   *auth.Signer
	alice   *auth.Signer
	bob     *auth.Signer
}

func newFixture(t *testing.T, history History) *fixture {
	t.Helper()

	store, err := ledger.NewMemoryLevelStore()
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	clk := clock.NewManual(1000)
	host, err := ledger.NewHost(store, clk, ledger.DiscardSink{}, nopMetrics{}, zap.NewNop())
	require.NoError(t, err)

	dir := ledger.NewDirectory()
	reg := registry.New(registryAddr, zap.NewNop())
	res := resolver.New(resolverAddr, dir, zap.NewNop())
	rar, err := registrar.New(registrarAddr, dir, zap.NewNop())
	require.NoError(t, err)
	dir.Register(registryAddr, reg)
	dir.Register(resolverAddr, res)
	dir.Register(registrarAddr, rar)

	f := &fixture{t: t, clock: clk, host: host}
	for _, s := range []**auth.Signer{&f.admin, &f.alice, &f.bob} {
		*s, err = auth.GenerateSigner(model.Regtest)
		require.NoError(t, err)
	}

	err = host.Invoke(context.Background(), ledger.Invocation{Operation: "bootstrap", Signers: []model.Address{f.admin.Address()}}, func(env *ledger.Env) error {
		if err := reg.Init(env, registry.Config{Admin: f.admin.Address(), Controller: registrarAddr}); err != nil {
			return err
		}
		if err := res.Init(env, registryAddr); err != nil {
			return err
		}
		return rar.Init(env, registrar.Config{Registry: registryAddr, TLD: "stellar", Admin: f.admin.Address()}, model.DefaultParams())
	})
	require.NoError(t, err)

	verifier, err := auth.NewVerifier(model.Regtest)
	require.NoError(t, err)
	f.handler, err = NewHandler(host, Contracts{Directory: dir, Registry: reg, Resolver: res, Registrar: rar}, verifier, history, zap.NewNop())
	require.NoError(t, err)
	return f
}

func (f *fixture) signed(method string, body proto.Message, signers ...*auth.Signer) *namesight7000v1.SignedRequest {
	f.t.Helper()
	req, err := NewSignedRequest(method, body, signers...)
	require.NoError(f.t, err)
	return req
}

func (f *fixture) commitBody(label string, s *auth.Signer, secret string) *namesight7000v1.CommitBody {
	return &namesight7000v1.CommitBody{
		Caller:     string(s.Address()),
		Commitment: registrar.CommitmentFor(label, s.Address(), []byte(secret)).String(),
		LabelLen:   uint32(len(label)),
	}
}

func (f *fixture) registerBody(label string, s *auth.Signer, secret string) *namesight7000v1.RegisterBody {
	return &namesight7000v1.RegisterBody{
		Caller: string(s.Address()),
		Label:  label,
		Owner:  string(s.Address()),
		Secret: []byte(secret),
	}
}

// registerName runs the full commit-reveal flow for label owned by s.
func (f *fixture) registerName(label string, s *auth.Signer) *namesight7000v1.RegisterResponse {
	f.t.Helper()
	ctx := context.Background()
	secret := "secret-" + label

	_, err := f.handler.Commit(ctx, f.signed(MethodCommit, f.commitBody(label, s, secret), s))
	require.NoError(f.t, err)

	f.clock.Advance(model.DefaultParams().CommitMinAge)
	resp, err := f.handler.Register(ctx, f.signed(MethodRegister, f.registerBody(label, s, secret), s))
	require.NoError(f.t, err)
	return resp
}
