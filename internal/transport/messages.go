package transport

import (
	"fmt"

	"google.golang.org/protobuf/proto"

	"github.com/goodnatureofminers/namesight7000-backend/internal/naming/auth"
	"github.com/goodnatureofminers/namesight7000-backend/internal/naming/model"
	"github.com/goodnatureofminers/namesight7000-backend/internal/naming/namehash"
	namesight7000v1 "github.com/goodnatureofminers/namesight7000-backend/pkg/namesight7000/v1"
)

// Operation names. They prefix the signing payload and label host metrics.
const (
	MethodCommit      = "Commit"
	MethodRegister    = "Register"
	MethodRenew       = "Renew"
	MethodSetParams   = "SetParams"
	MethodTransfer    = "Transfer"
	MethodSetResolver = "SetResolver"
	MethodSetAddr     = "SetAddr"
	MethodSetText     = "SetText"
	MethodAvailable   = "Available"
	MethodOwner       = "Owner"
	MethodExpires     = "Expires"
	MethodResolve     = "Resolve"
	MethodAddr        = "Addr"
	MethodText        = "Text"
	MethodParams      = "Params"
	MethodCommitment  = "Commitment"
	MethodHistory     = "History"
	MethodHealth      = "Health"
)

// SigningPayload binds a body to the method it is submitted to, so a
// signature for one call cannot be replayed against another.
func SigningPayload(method string, body []byte) []byte {
	payload := make([]byte, 0, len(method)+1+len(body))
	payload = append(payload, method...)
	payload = append(payload, '\n')
	return append(payload, body...)
}

// NewSignedRequest serializes body and signs it for method. The signatures
// cover the exact bytes carried in the request.
func NewSignedRequest(method string, body proto.Message, signers ...*auth.Signer) (*namesight7000v1.SignedRequest, error) {
	raw, err := proto.MarshalOptions{Deterministic: true}.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal %s body: %w", method, err)
	}
	payload := SigningPayload(method, raw)
	req := &namesight7000v1.SignedRequest{Body: raw}
	for _, s := range signers {
		sig := s.Sign(payload)
		req.Signatures = append(req.Signatures, &namesight7000v1.Signature{PubKey: sig.PubKey, Sig: sig.Sig})
	}
	return req, nil
}

func signatures(in []*namesight7000v1.Signature) []auth.Signature {
	out := make([]auth.Signature, 0, len(in))
	for _, s := range in {
		out = append(out, auth.Signature{PubKey: s.GetPubKey(), Sig: s.GetSig()})
	}
	return out
}

func parseHash(field, s string) (model.Hash, error) {
	h, err := model.HashFromHex(s)
	if err != nil {
		return model.Hash{}, fmt.Errorf("%w: %s: %v", model.ErrInvalidInput, field, err)
	}
	return h, nil
}

// nodeOf resolves a node named either by dotted name or by hex namehash.
func nodeOf(name, hash string) (model.Hash, error) {
	if hash != "" {
		return parseHash("namehash", hash)
	}
	if name == "" {
		return model.Hash{}, fmt.Errorf("%w: name or namehash required", model.ErrInvalidInput)
	}
	return namehash.Name(name)
}

func nodeOfRef(ref *namesight7000v1.NodeRef) (model.Hash, error) {
	return nodeOf(ref.GetName(), ref.GetNamehash())
}

func paramsFromProto(p *namesight7000v1.Params) (model.Params, error) {
	if p == nil {
		return model.Params{}, fmt.Errorf("%w: params required", model.ErrInvalidInput)
	}
	return model.Params{
		MinLabelLen:    p.GetMinLabelLen(),
		MaxLabelLen:    p.GetMaxLabelLen(),
		CommitMinAge:   p.GetCommitMinAge(),
		CommitMaxAge:   p.GetCommitMaxAge(),
		RenewExtension: p.GetRenewExtension(),
		GracePeriod:    p.GetGracePeriod(),
	}, nil
}

func paramsToProto(p model.Params) *namesight7000v1.Params {
	return &namesight7000v1.Params{
		MinLabelLen:    p.MinLabelLen,
		MaxLabelLen:    p.MaxLabelLen,
		CommitMinAge:   p.CommitMinAge,
		CommitMaxAge:   p.CommitMaxAge,
		RenewExtension: p.RenewExtension,
		GracePeriod:    p.GracePeriod,
	}
}

func eventToProto(ev model.Event) *namesight7000v1.Event {
	out := &namesight7000v1.Event{
		Contract:  string(ev.Contract),
		Kind:      string(ev.Kind),
		Sequence:  ev.Sequence,
		Timestamp: ev.Timestamp,
		From:      string(ev.From),
		To:        string(ev.To),
		Owner:     string(ev.Owner),
		Resolver:  string(ev.Resolver),
		Addr:      string(ev.Addr),
		Key:       ev.Key,
		ExpiresAt: ev.ExpiresAt,
	}
	if !ev.Namehash.IsZero() {
		out.Namehash = ev.Namehash.String()
	}
	if !ev.Commitment.IsZero() {
		out.Commitment = ev.Commitment.String()
	}
	return out
}
