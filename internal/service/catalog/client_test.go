package catalog

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/vladislavdragonenkov/restock/internal/domain"
	restockv1 "github.com/vladislavdragonenkov/restock/proto/restock/v1"
)

type fakeProductServer struct {
	restockv1.UnimplementedProductServiceServer

	products  map[int64]*restockv1.Product
	updateErr error
	updates   []*restockv1.UpdateProductRequest
}

func (s *fakeProductServer) FindOne(_ context.Context, req *restockv1.FindOneProductRequest) (*restockv1.Product, error) {
	p, ok := s.products[req.Id]
	if !ok {
		return nil, status.Error(codes.NotFound, "product not found")
	}
	return p, nil
}

func (s *fakeProductServer) UpdateProduct(_ context.Context, req *restockv1.UpdateProductRequest) (*restockv1.UpdateProductResponse, error) {
	s.updates = append(s.updates, req)
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	return &restockv1.UpdateProductResponse{}, nil
}

func newCatalogClient(t *testing.T, srv restockv1.ProductServiceServer) *Client {
	t.Helper()

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return NewClient(dialProductServer(t, srv), time.Second, logger.WithField("component", "test"))
}

func dialProductServer(t *testing.T, srv restockv1.ProductServiceServer) *grpc.ClientConn {
	t.Helper()

	listener := bufconn.Listen(1024 * 1024)
	server := grpc.NewServer()
	restockv1.RegisterProductServiceServer(server, srv)
	go func() { _ = server.Serve(listener) }()

	dialer := func(context.Context, string) (net.Conn, error) { return listener.Dial() }
	//nolint:staticcheck // grpc.Dial is required for bufconn testing
	conn, err := grpc.Dial("bufnet", grpc.WithContextDialer(dialer), grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = conn.Close()
		server.Stop()
	})
	return conn
}

func TestClientFindOne(t *testing.T) {
	client := newCatalogClient(t, &fakeProductServer{
		products: map[int64]*restockv1.Product{
			3: {Id: 3, Name: "Burger", Sku: "BRG", Price: 1250, Stock: 9},
		},
	})

	product, err := client.FindOne(context.Background(), 3)
	require.NoError(t, err)
	require.Equal(t, domain.Product{ID: 3, Name: "Burger", SKU: "BRG", Price: 1250, Stock: 9}, product)

	_, err = client.FindOne(context.Background(), 4)
	require.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestClientAdjustStockSendsWholeProduct(t *testing.T) {
	srv := &fakeProductServer{}
	client := newCatalogClient(t, srv)

	burger := domain.Product{ID: 3, Name: "Burger", SKU: "BRG", Category: "mains", Description: "beef", Price: 1250, Stock: 9}
	require.NoError(t, client.AdjustStock(context.Background(), burger, 11))

	require.Len(t, srv.updates, 1)
	update := srv.updates[0]
	require.Equal(t, int64(3), update.GetId())
	require.Equal(t, int64(3), update.GetProduct().GetId())
	require.Equal(t, "Burger", update.GetProduct().GetName())
	require.Equal(t, "BRG", update.GetProduct().GetSku())
	require.Equal(t, "mains", update.GetProduct().GetCategory())
	require.Equal(t, "beef", update.GetProduct().GetDescription())
	require.Equal(t, int64(1250), update.GetProduct().GetPrice())
	require.Equal(t, int64(11), update.GetProduct().GetStock())
}

func TestClientAdjustStockUpstreamFailure(t *testing.T) {
	client := newCatalogClient(t, &fakeProductServer{updateErr: status.Error(codes.FailedPrecondition, "stock locked")})

	err := client.AdjustStock(context.Background(), domain.Product{ID: 3, Name: "Burger", Price: 1250}, 12)
	require.ErrorIs(t, err, domain.ErrUpstreamFailure)

	var upstream *domain.UpstreamError
	require.True(t, errors.As(err, &upstream))
	require.Equal(t, "catalog", upstream.Service)
	require.Equal(t, codes.FailedPrecondition.String(), upstream.Status)
}

func TestMockServiceAdjustStock(t *testing.T) {
	mock := NewMockService(domain.Product{ID: 1, Name: "Tea", Price: 300, Stock: 5})

	tea, err := mock.FindOne(context.Background(), 1)
	require.NoError(t, err)
	require.NoError(t, mock.AdjustStock(context.Background(), tea, 8))
	require.Equal(t, int64(8), mock.Stock(1))
	stored, ok := mock.Product(1)
	require.True(t, ok)
	require.Equal(t, "Tea", stored.Name)
	require.Equal(t, int64(300), stored.Price)

	mock.AdjustErr = &domain.UpstreamError{Service: "catalog", Status: "Unavailable"}
	require.ErrorIs(t, mock.AdjustStock(context.Background(), tea, 10), domain.ErrUpstreamFailure)
	require.Equal(t, int64(8), mock.Stock(1))
	require.Len(t, mock.Adjustments, 2)

	_, err = mock.FindOne(context.Background(), 2)
	require.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestProductServerAcceptsForeignProtobufPeer(t *testing.T) {
	conn := dialProductServer(t, &fakeProductServer{
		products: map[int64]*restockv1.Product{
			3: {Id: 3, Name: "Burger", Price: 1250, Stock: 9},
		},
	})

	// Каталог на другой стороне знает только wire-формат: поле 1 типа int64.
	reply := &restockv1.Product{}
	err := conn.Invoke(context.Background(), restockv1.ProductService_FindOne_FullMethodName, wrapperspb.Int64(3), reply)
	require.NoError(t, err)
	require.Equal(t, int64(3), reply.GetId())
	require.Equal(t, "Burger", reply.GetName())
	require.Equal(t, int64(9), reply.GetStock())
}
