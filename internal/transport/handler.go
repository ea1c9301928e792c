// Package transport exposes the naming contracts over gRPC and HTTP.
package transport

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"

	"github.com/goodnatureofminers/namesight7000-backend/internal/naming/ledger"
	"github.com/goodnatureofminers/namesight7000-backend/internal/naming/model"
	"github.com/goodnatureofminers/namesight7000-backend/internal/naming/registrar"
	"github.com/goodnatureofminers/namesight7000-backend/internal/naming/registry"
	"github.com/goodnatureofminers/namesight7000-backend/internal/naming/resolver"
	namesight7000v1 "github.com/goodnatureofminers/namesight7000-backend/pkg/namesight7000/v1"
	"github.com/goodnatureofminers/namesight7000-backend/pkg/workerpool"
)

const (
	maxAvailableLabels   = 256
	defaultHistoryLimit  = 100
	maxHistoryLimit      = 1000
	defaultLookupWorkers = 8
)

// Contracts are the deployed naming contracts the handler talks to.
type Contracts struct {
	Directory *ledger.Directory
	Registry  *registry.Registry
	Resolver  *resolver.Resolver
	Registrar *registrar.Registrar
}

type addrReader interface {
	Addr(env *ledger.Env, node model.Hash) (model.Address, bool, error)
}

// Handler implements namesight7000v1.NamingServiceServer.
type Handler struct {
	namesight7000v1.UnimplementedNamingServiceServer

	host      Host
	contracts Contracts
	verifier  Verifier
	history   History
	workers   int
	logger    *zap.Logger
}

// NewHandler returns a Handler. history may be nil when no event archive is
// configured.
func NewHandler(host Host, contracts Contracts, verifier Verifier, history History, logger *zap.Logger) (*Handler, error) {
	if host == nil || verifier == nil {
		return nil, errors.New("handler needs a host and a verifier")
	}
	if contracts.Directory == nil || contracts.Registry == nil || contracts.Resolver == nil || contracts.Registrar == nil {
		return nil, errors.New("handler needs every naming contract")
	}
	return &Handler{
		host:      host,
		contracts: contracts,
		verifier:  verifier,
		history:   history,
		workers:   defaultLookupWorkers,
		logger:    logger.Named("naming_handler"),
	}, nil
}

// open verifies req for method and decodes its body into dst. Bodies with
// fields unknown to dst are rejected.
func (h *Handler) open(method string, req *namesight7000v1.SignedRequest, dst proto.Message) ([]model.Address, error) {
	if len(req.GetBody()) == 0 {
		return nil, fmt.Errorf("%w: empty body", model.ErrInvalidInput)
	}
	signers, err := h.verifier.Verify(SigningPayload(method, req.GetBody()), signatures(req.GetSignatures()))
	if err != nil {
		return nil, err
	}
	if err := proto.Unmarshal(req.GetBody(), dst); err != nil {
		return nil, fmt.Errorf("%w: decode body: %v", model.ErrInvalidInput, err)
	}
	if len(dst.ProtoReflect().GetUnknown()) > 0 {
		return nil, fmt.Errorf("%w: unknown fields in %s body", model.ErrInvalidInput, method)
	}
	return signers, nil
}

func (h *Handler) invoke(ctx context.Context, method string, signers []model.Address, fn func(env *ledger.Env) error) error {
	return h.host.Invoke(ctx, ledger.Invocation{Operation: method, Signers: signers}, fn)
}

func (h *Handler) fail(method string, err error) error {
	if code(err) == codes.Internal {
		h.logger.Error("call failed", zap.String("method", method), zap.Error(err))
	} else {
		h.logger.Debug("call rejected", zap.String("method", method), zap.Error(err))
	}
	return toStatus(err)
}

func (h *Handler) Commit(ctx context.Context, req *namesight7000v1.SignedRequest) (*namesight7000v1.Empty, error) {
	var body namesight7000v1.CommitBody
	signers, err := h.open(MethodCommit, req, &body)
	if err != nil {
		return nil, h.fail(MethodCommit, err)
	}
	commitment, err := parseHash("commitment", body.GetCommitment())
	if err != nil {
		return nil, h.fail(MethodCommit, err)
	}
	err = h.invoke(ctx, MethodCommit, signers, func(env *ledger.Env) error {
		return h.contracts.Registrar.Commit(env, model.Address(body.GetCaller()), commitment, body.GetLabelLen())
	})
	if err != nil {
		return nil, h.fail(MethodCommit, err)
	}
	return &namesight7000v1.Empty{}, nil
}

func (h *Handler) Register(ctx context.Context, req *namesight7000v1.SignedRequest) (*namesight7000v1.RegisterResponse, error) {
	var body namesight7000v1.RegisterBody
	signers, err := h.open(MethodRegister, req, &body)
	if err != nil {
		return nil, h.fail(MethodRegister, err)
	}
	var resolverRef *model.Address
	if body.GetResolver() != "" {
		addr := model.Address(body.GetResolver())
		resolverRef = &addr
	}
	resp := &namesight7000v1.RegisterResponse{}
	err = h.invoke(ctx, MethodRegister, signers, func(env *ledger.Env) error {
		node, err := h.contracts.Registrar.Register(env,
			model.Address(body.GetCaller()),
			body.GetLabel(),
			model.Address(body.GetOwner()),
			body.GetSecret(),
			resolverRef,
		)
		if err != nil {
			return err
		}
		expiry, err := h.contracts.Registry.Expires(env, node)
		if err != nil {
			return err
		}
		resp.Namehash, resp.ExpiresAt = node.String(), expiry
		return nil
	})
	if err != nil {
		return nil, h.fail(MethodRegister, err)
	}
	return resp, nil
}

func (h *Handler) Renew(ctx context.Context, req *namesight7000v1.SignedRequest) (*namesight7000v1.RenewResponse, error) {
	var body namesight7000v1.RenewBody
	signers, err := h.open(MethodRenew, req, &body)
	if err != nil {
		return nil, h.fail(MethodRenew, err)
	}
	resp := &namesight7000v1.RenewResponse{}
	err = h.invoke(ctx, MethodRenew, signers, func(env *ledger.Env) error {
		expiry, err := h.contracts.Registrar.Renew(env, model.Address(body.GetCaller()), body.GetLabel())
		resp.ExpiresAt = expiry
		return err
	})
	if err != nil {
		return nil, h.fail(MethodRenew, err)
	}
	return resp, nil
}

func (h *Handler) SetParams(ctx context.Context, req *namesight7000v1.SignedRequest) (*namesight7000v1.Empty, error) {
	var body namesight7000v1.SetParamsBody
	signers, err := h.open(MethodSetParams, req, &body)
	if err != nil {
		return nil, h.fail(MethodSetParams, err)
	}
	params, err := paramsFromProto(body.GetParams())
	if err != nil {
		return nil, h.fail(MethodSetParams, err)
	}
	err = h.invoke(ctx, MethodSetParams, signers, func(env *ledger.Env) error {
		return h.contracts.Registrar.SetParams(env, model.Address(body.GetCaller()), params)
	})
	if err != nil {
		return nil, h.fail(MethodSetParams, err)
	}
	return &namesight7000v1.Empty{}, nil
}

func (h *Handler) Transfer(ctx context.Context, req *namesight7000v1.SignedRequest) (*namesight7000v1.Empty, error) {
	var body namesight7000v1.TransferBody
	signers, err := h.open(MethodTransfer, req, &body)
	if err != nil {
		return nil, h.fail(MethodTransfer, err)
	}
	node, err := nodeOfRef(body.GetNode())
	if err != nil {
		return nil, h.fail(MethodTransfer, err)
	}
	err = h.invoke(ctx, MethodTransfer, signers, func(env *ledger.Env) error {
		return h.contracts.Registry.Transfer(env, node, model.Address(body.GetTo()))
	})
	if err != nil {
		return nil, h.fail(MethodTransfer, err)
	}
	return &namesight7000v1.Empty{}, nil
}

func (h *Handler) SetResolver(ctx context.Context, req *namesight7000v1.SignedRequest) (*namesight7000v1.Empty, error) {
	var body namesight7000v1.SetResolverBody
	signers, err := h.open(MethodSetResolver, req, &body)
	if err != nil {
		return nil, h.fail(MethodSetResolver, err)
	}
	node, err := nodeOfRef(body.GetNode())
	if err != nil {
		return nil, h.fail(MethodSetResolver, err)
	}
	err = h.invoke(ctx, MethodSetResolver, signers, func(env *ledger.Env) error {
		return h.contracts.Registry.SetResolver(env, node, model.Address(body.GetResolver()))
	})
	if err != nil {
		return nil, h.fail(MethodSetResolver, err)
	}
	return &namesight7000v1.Empty{}, nil
}

func (h *Handler) SetAddr(ctx context.Context, req *namesight7000v1.SignedRequest) (*namesight7000v1.Empty, error) {
	var body namesight7000v1.SetAddrBody
	signers, err := h.open(MethodSetAddr, req, &body)
	if err != nil {
		return nil, h.fail(MethodSetAddr, err)
	}
	node, err := nodeOfRef(body.GetNode())
	if err != nil {
		return nil, h.fail(MethodSetAddr, err)
	}
	err = h.invoke(ctx, MethodSetAddr, signers, func(env *ledger.Env) error {
		return h.contracts.Resolver.SetAddr(env, model.Address(body.GetCaller()), node, model.Address(body.GetAddr()))
	})
	if err != nil {
		return nil, h.fail(MethodSetAddr, err)
	}
	return &namesight7000v1.Empty{}, nil
}

func (h *Handler) SetText(ctx context.Context, req *namesight7000v1.SignedRequest) (*namesight7000v1.Empty, error) {
	var body namesight7000v1.SetTextBody
	signers, err := h.open(MethodSetText, req, &body)
	if err != nil {
		return nil, h.fail(MethodSetText, err)
	}
	node, err := nodeOfRef(body.GetNode())
	if err != nil {
		return nil, h.fail(MethodSetText, err)
	}
	err = h.invoke(ctx, MethodSetText, signers, func(env *ledger.Env) error {
		return h.contracts.Resolver.SetText(env, model.Address(body.GetCaller()), node, body.GetKey(), body.GetValue())
	})
	if err != nil {
		return nil, h.fail(MethodSetText, err)
	}
	return &namesight7000v1.Empty{}, nil
}

// Available checks labels concurrently; each label is read in its own view.
func (h *Handler) Available(ctx context.Context, req *namesight7000v1.AvailableRequest) (*namesight7000v1.AvailableResponse, error) {
	labels := req.GetLabels()
	if len(labels) > maxAvailableLabels {
		return nil, status.Errorf(codes.InvalidArgument, "at most %d labels per call", maxAvailableLabels)
	}
	results, err := workerpool.Map(ctx, h.workers, labels, func(ctx context.Context, label string) (*namesight7000v1.Availability, error) {
		var ok bool
		err := h.host.View(ctx, MethodAvailable, func(env *ledger.Env) error {
			var err error
			ok, err = h.contracts.Registrar.Available(env, label)
			return err
		})
		return &namesight7000v1.Availability{Label: label, Available: ok}, err
	})
	if err != nil {
		return nil, h.fail(MethodAvailable, err)
	}
	return &namesight7000v1.AvailableResponse{Results: results}, nil
}

func (h *Handler) Owner(ctx context.Context, req *namesight7000v1.NodeRef) (*namesight7000v1.OwnerResponse, error) {
	node, err := nodeOfRef(req)
	if err != nil {
		return nil, h.fail(MethodOwner, err)
	}
	resp := &namesight7000v1.OwnerResponse{}
	err = h.host.View(ctx, MethodOwner, func(env *ledger.Env) error {
		owner, err := h.contracts.Registry.Owner(env, node)
		resp.Owner = string(owner)
		return err
	})
	if err != nil {
		return nil, h.fail(MethodOwner, err)
	}
	return resp, nil
}

func (h *Handler) Expires(ctx context.Context, req *namesight7000v1.NodeRef) (*namesight7000v1.ExpiresResponse, error) {
	node, err := nodeOfRef(req)
	if err != nil {
		return nil, h.fail(MethodExpires, err)
	}
	resp := &namesight7000v1.ExpiresResponse{}
	err = h.host.View(ctx, MethodExpires, func(env *ledger.Env) error {
		expiry, err := h.contracts.Registry.Expires(env, node)
		resp.ExpiresAt = expiry
		return err
	})
	if err != nil {
		return nil, h.fail(MethodExpires, err)
	}
	return resp, nil
}

// Resolve gathers everything known about a node. Missing records are left
// empty rather than failing the call.
func (h *Handler) Resolve(ctx context.Context, req *namesight7000v1.NodeRef) (*namesight7000v1.ResolveResponse, error) {
	node, err := nodeOfRef(req)
	if err != nil {
		return nil, h.fail(MethodResolve, err)
	}
	resp := &namesight7000v1.ResolveResponse{Namehash: node.String()}
	err = h.host.View(ctx, MethodResolve, func(env *ledger.Env) error {
		owner, _, err := h.contracts.Registry.LookupOwner(env, node)
		if err != nil {
			return err
		}
		resp.Owner = string(owner)
		if resp.ExpiresAt, _, err = h.contracts.Registry.LookupExpiry(env, node); err != nil {
			return err
		}
		res, err := h.contracts.Registry.Resolver(env, node)
		if errors.Is(err, model.ErrResolverNotSet) {
			return nil
		}
		if err != nil {
			return err
		}
		resp.Resolver = string(res)
		reader, err := ledger.Lookup[addrReader](h.contracts.Directory, res)
		if errors.Is(err, model.ErrUnknownContract) {
			return nil
		}
		if err != nil {
			return err
		}
		addr, _, err := reader.Addr(env, node)
		resp.Addr = string(addr)
		return err
	})
	if err != nil {
		return nil, h.fail(MethodResolve, err)
	}
	return resp, nil
}

func (h *Handler) Addr(ctx context.Context, req *namesight7000v1.NodeRef) (*namesight7000v1.AddrResponse, error) {
	node, err := nodeOfRef(req)
	if err != nil {
		return nil, h.fail(MethodAddr, err)
	}
	resp := &namesight7000v1.AddrResponse{}
	err = h.host.View(ctx, MethodAddr, func(env *ledger.Env) error {
		addr, found, err := h.contracts.Resolver.Addr(env, node)
		resp.Addr, resp.Found = string(addr), found
		return err
	})
	if err != nil {
		return nil, h.fail(MethodAddr, err)
	}
	return resp, nil
}

func (h *Handler) Text(ctx context.Context, req *namesight7000v1.TextRequest) (*namesight7000v1.TextResponse, error) {
	node, err := nodeOf(req.GetName(), req.GetNamehash())
	if err != nil {
		return nil, h.fail(MethodText, err)
	}
	resp := &namesight7000v1.TextResponse{}
	err = h.host.View(ctx, MethodText, func(env *ledger.Env) error {
		var err error
		resp.Value, resp.Found, err = h.contracts.Resolver.Text(env, node, req.GetKey())
		return err
	})
	if err != nil {
		return nil, h.fail(MethodText, err)
	}
	return resp, nil
}

func (h *Handler) Params(ctx context.Context, _ *namesight7000v1.Empty) (*namesight7000v1.Params, error) {
	var params model.Params
	err := h.host.View(ctx, MethodParams, func(env *ledger.Env) error {
		var err error
		params, err = h.contracts.Registrar.Params(env)
		return err
	})
	if err != nil {
		return nil, h.fail(MethodParams, err)
	}
	return paramsToProto(params), nil
}

func (h *Handler) Commitment(ctx context.Context, req *namesight7000v1.CommitmentRequest) (*namesight7000v1.CommitmentResponse, error) {
	commitment, err := parseHash("commitment", req.GetCommitment())
	if err != nil {
		return nil, h.fail(MethodCommitment, err)
	}
	resp := &namesight7000v1.CommitmentResponse{}
	err = h.host.View(ctx, MethodCommitment, func(env *ledger.Env) error {
		record, ok, err := h.contracts.Registrar.Commitment(env, commitment)
		resp.Found, resp.CreatedAt, resp.LabelLen = ok, record.CreatedAt, record.LabelLen
		return err
	})
	if err != nil {
		return nil, h.fail(MethodCommitment, err)
	}
	return resp, nil
}

func (h *Handler) History(ctx context.Context, req *namesight7000v1.HistoryRequest) (*namesight7000v1.HistoryResponse, error) {
	if h.history == nil {
		return nil, status.Error(codes.Unimplemented, "event archive is not configured")
	}
	node, err := nodeOf(req.GetName(), req.GetNamehash())
	if err != nil {
		return nil, h.fail(MethodHistory, err)
	}
	limit := req.GetLimit()
	if limit == 0 {
		limit = defaultHistoryLimit
	}
	limit = min(limit, maxHistoryLimit)
	events, err := h.history.EventsByNamehash(ctx, node, limit)
	if err != nil {
		return nil, h.fail(MethodHistory, err)
	}
	resp := &namesight7000v1.HistoryResponse{Events: make([]*namesight7000v1.Event, 0, len(events))}
	for _, ev := range events {
		resp.Events = append(resp.Events, eventToProto(ev))
	}
	return resp, nil
}

func (h *Handler) Health(_ context.Context, _ *namesight7000v1.Empty) (*namesight7000v1.HealthResponse, error) {
	return &namesight7000v1.HealthResponse{Status: "serving", Sequence: h.host.Sequence()}, nil
}
