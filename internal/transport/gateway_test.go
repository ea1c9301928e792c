package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/cors"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"

	"github.com/goodnatureofminers/namesight7000-backend/internal/naming/model"
	namesight7000v1 "github.com/goodnatureofminers/namesight7000-backend/pkg/namesight7000/v1"
)

func newGateway(t *testing.T, srv namesight7000v1.NamingServiceServer) http.Handler {
	t.Helper()
	gw := NewGatewayMux()
	require.NoError(t, namesight7000v1.RegisterNamingServiceHandlerServer(context.Background(), gw, srv))
	mux := http.NewServeMux()
	mux.Handle("/", gw)
	return cors.Default().Handler(mux)
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var raw []byte
	switch b := body.(type) {
	case nil:
	case []byte:
		raw = b
	case proto.Message:
		var err error
		raw, err = protojson.Marshal(b)
		require.NoError(t, err)
	default:
		t.Fatalf("unsupported body %T", body)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(raw))
	req.Header.Set("Origin", "https://example.org")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, dst proto.Message) {
	t.Helper()
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.NoError(t, protojson.Unmarshal(rec.Body.Bytes(), dst))
}

type errorBody struct {
	Code    codes.Code `json:"code"`
	Message string     `json:"message"`
}

func requireHTTPError(t *testing.T, rec *httptest.ResponseRecorder, status int, code codes.Code) {
	t.Helper()
	require.Equal(t, status, rec.Code, rec.Body.String())
	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, code, body.Code)
}

func TestGateway(t *testing.T) {
	f := newFixture(t, nil)
	gw := newGateway(t, f.handler)

	rec := doJSON(t, gw, http.MethodGet, "/v1/health", nil)
	require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	var health namesight7000v1.HealthResponse
	decode(t, rec, &health)
	require.Equal(t, "serving", health.GetStatus())

	commit := f.signed(MethodCommit, f.commitBody("alice", f.alice, "s"), f.alice)
	rec = doJSON(t, gw, http.MethodPost, "/v1/naming/commit", commit)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doJSON(t, gw, http.MethodPost, "/v1/naming/commit", commit)
	requireHTTPError(t, rec, http.StatusConflict, codes.AlreadyExists)

	f.clock.Advance(60)
	rec = doJSON(t, gw, http.MethodPost, "/v1/naming/register", f.signed(MethodRegister, f.registerBody("alice", f.alice, "s"), f.alice))
	require.Contains(t, rec.Body.String(), `"expires_at"`)
	var reg namesight7000v1.RegisterResponse
	decode(t, rec, &reg)
	require.Equal(t, 1060+model.DefaultParams().RenewExtension, reg.GetExpiresAt())

	rec = doJSON(t, gw, http.MethodGet, "/v1/available?labels=alice&labels=bobby", nil)
	var avail namesight7000v1.AvailableResponse
	decode(t, rec, &avail)
	requireProto(t, &namesight7000v1.AvailableResponse{Results: []*namesight7000v1.Availability{
		{Label: "alice"},
		{Label: "bobby", Available: true},
	}}, &avail)

	rec = doJSON(t, gw, http.MethodGet, "/v1/resolve/alice.stellar", nil)
	var resolved namesight7000v1.ResolveResponse
	decode(t, rec, &resolved)
	require.Equal(t, string(f.alice.Address()), resolved.GetOwner())
	require.Equal(t, reg.GetNamehash(), resolved.GetNamehash())

	rec = doJSON(t, gw, http.MethodGet, "/v1/owner/alice.stellar", nil)
	var owner namesight7000v1.OwnerResponse
	decode(t, rec, &owner)
	require.Equal(t, string(f.alice.Address()), owner.GetOwner())

	rec = doJSON(t, gw, http.MethodGet, "/v1/commitments/"+f.commitBody("alice", f.alice, "s").GetCommitment(), nil)
	var consumed namesight7000v1.CommitmentResponse
	decode(t, rec, &consumed)
	require.False(t, consumed.GetFound())

	rec = doJSON(t, gw, http.MethodGet, "/v1/owner/nobody.stellar", nil)
	requireHTTPError(t, rec, http.StatusNotFound, codes.NotFound)

	rec = doJSON(t, gw, http.MethodPost, "/v1/naming/commit", []byte("{not json"))
	requireHTTPError(t, rec, http.StatusBadRequest, codes.InvalidArgument)

	rec = doJSON(t, gw, http.MethodPost, "/v1/naming/commit", []byte(`{"bogus":1}`))
	requireHTTPError(t, rec, http.StatusBadRequest, codes.InvalidArgument)

	rec = doJSON(t, gw, http.MethodGet, "/v1/history/alice.stellar?limit=abc", nil)
	requireHTTPError(t, rec, http.StatusBadRequest, codes.InvalidArgument)

	rec = doJSON(t, gw, http.MethodGet, "/v1/history/alice.stellar", nil)
	requireHTTPError(t, rec, http.StatusNotImplemented, codes.Unimplemented)

	rec = doJSON(t, gw, http.MethodGet, "/v1/unknown", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGateway_Params(t *testing.T) {
	f := newFixture(t, nil)
	gw := newGateway(t, f.handler)

	rec := doJSON(t, gw, http.MethodGet, "/v1/params", nil)
	var params namesight7000v1.Params
	decode(t, rec, &params)
	require.Equal(t, model.DefaultParams().MinLabelLen, params.GetMinLabelLen())

	next := proto.Clone(&params).(*namesight7000v1.Params)
	next.MinLabelLen = 5
	set := f.signed(MethodSetParams, &namesight7000v1.SetParamsBody{Caller: string(f.admin.Address()), Params: next}, f.admin)
	rec = doJSON(t, gw, http.MethodPost, "/v1/naming/set_params", set)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doJSON(t, gw, http.MethodGet, "/v1/params", nil)
	decode(t, rec, &params)
	require.Equal(t, uint32(5), params.GetMinLabelLen())
}
