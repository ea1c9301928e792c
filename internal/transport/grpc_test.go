package transport

import (
	"context"
	"net"
	"testing"

	grpcMiddleware "github.com/grpc-ecosystem/go-grpc-middleware"
	grpcRecovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	grpcCtxTags "github.com/grpc-ecosystem/go-grpc-middleware/tags"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"

	namesight7000v1 "github.com/goodnatureofminers/namesight7000-backend/pkg/namesight7000/v1"
)

func dialBufconn(t *testing.T, srv namesight7000v1.NamingServiceServer) namesight7000v1.NamingServiceClient {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	server := grpc.NewServer(grpc.UnaryInterceptor(grpcMiddleware.ChainUnaryServer(
		grpcRecovery.UnaryServerInterceptor(),
		grpcCtxTags.UnaryServerInterceptor(),
	)))
	namesight7000v1.RegisterNamingServiceServer(server, srv)
	go func() { _ = server.Serve(lis) }()
	t.Cleanup(server.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return namesight7000v1.NewNamingServiceClient(conn)
}

func TestGRPC_RoundTrip(t *testing.T) {
	f := newFixture(t, nil)
	client := dialBufconn(t, f.handler)
	ctx := context.Background()

	health, err := client.Health(ctx, &namesight7000v1.Empty{})
	require.NoError(t, err)
	require.Equal(t, "serving", health.GetStatus())

	_, err = client.Commit(ctx, f.signed(MethodCommit, f.commitBody("alice", f.alice, "s"), f.alice))
	require.NoError(t, err)

	f.clock.Advance(60)
	register := f.signed(MethodRegister, f.registerBody("alice", f.alice, "s"), f.alice)
	reg, err := client.Register(ctx, register)
	require.NoError(t, err)

	owner, err := client.Owner(ctx, &namesight7000v1.NodeRef{Namehash: reg.GetNamehash()})
	require.NoError(t, err)
	require.Equal(t, string(f.alice.Address()), owner.GetOwner())

	avail, err := client.Available(ctx, &namesight7000v1.AvailableRequest{Labels: []string{"alice", "bobby"}})
	require.NoError(t, err)
	requireProto(t, &namesight7000v1.AvailableResponse{Results: []*namesight7000v1.Availability{
		{Label: "alice"},
		{Label: "bobby", Available: true},
	}}, avail)

	_, err = client.Register(ctx, register)
	requireCode(t, err, codes.NotFound)
}

type panicServer struct {
	namesight7000v1.UnimplementedNamingServiceServer
}

func (panicServer) Health(context.Context, *namesight7000v1.Empty) (*namesight7000v1.HealthResponse, error) {
	panic("boom")
}

func TestGRPC_RecoversFromPanics(t *testing.T) {
	client := dialBufconn(t, panicServer{})

	_, err := client.Health(context.Background(), &namesight7000v1.Empty{})
	requireCode(t, err, codes.Internal)

	_, err = client.Params(context.Background(), &namesight7000v1.Empty{})
	requireCode(t, err, codes.Unimplemented)
}
