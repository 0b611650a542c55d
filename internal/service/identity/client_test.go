package identity

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/vladislavdragonenkov/restock/internal/domain"
	restockv1 "github.com/vladislavdragonenkov/restock/proto/restock/v1"
)

type fakeAuthServer struct {
	restockv1.UnimplementedAuthServiceServer

	err error
}

func (s *fakeAuthServer) GetUser(_ context.Context, req *restockv1.GetUserRequest) (*restockv1.GetUserResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	if req.UserId != 7 {
		return nil, status.Error(codes.NotFound, "no such user")
	}
	return &restockv1.GetUserResponse{User: &restockv1.User{Id: 7, Email: "ana@example.com", Name: "Ana"}}, nil
}

func dialAuth(t *testing.T, srv restockv1.AuthServiceServer) *Client {
	t.Helper()

	listener := bufconn.Listen(1024 * 1024)
	server := grpc.NewServer()
	restockv1.RegisterAuthServiceServer(server, srv)
	go func() { _ = server.Serve(listener) }()

	//nolint:staticcheck // grpc.Dial is required for bufconn testing
	conn, err := grpc.Dial("bufnet",
		grpc.WithContextDialer(func(context.Context, string) (net.Conn, error) { return listener.Dial() }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = conn.Close()
		server.Stop()
	})

	return NewClient(conn, time.Second, nil)
}

func TestClientGetUser(t *testing.T) {
	client := dialAuth(t, &fakeAuthServer{})

	user, err := client.GetUser(context.Background(), 7)
	require.NoError(t, err)
	require.Equal(t, domain.User{ID: 7, Email: "ana@example.com", Name: "Ana"}, user)

	_, err = client.GetUser(context.Background(), 8)
	require.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestClientGetUserUpstream(t *testing.T) {
	client := dialAuth(t, &fakeAuthServer{err: status.Error(codes.Unavailable, "down")})

	_, err := client.GetUser(context.Background(), 7)
	require.ErrorIs(t, err, domain.ErrUpstreamFailure)
}

func TestMockService(t *testing.T) {
	mock := NewMockService(domain.User{ID: 1, Name: "Bo"})

	user, err := mock.GetUser(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, "Bo", user.Name)

	mock.Remove(1)
	_, err = mock.GetUser(context.Background(), 1)
	require.ErrorIs(t, err, domain.ErrUserNotFound)
	require.Equal(t, 2, mock.GetCalls)
}
