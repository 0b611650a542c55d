package grpcsvc_test

import (
	"context"
	"io"
	"net"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/vladislavdragonenkov/restock/internal/domain"
	grpcsvc "github.com/vladislavdragonenkov/restock/internal/service/grpc"
	"github.com/vladislavdragonenkov/restock/internal/service/catalog"
	"github.com/vladislavdragonenkov/restock/internal/service/identity"
	"github.com/vladislavdragonenkov/restock/internal/service/notify"
	"github.com/vladislavdragonenkov/restock/internal/service/orders"
	"github.com/vladislavdragonenkov/restock/internal/service/outbox"
	"github.com/vladislavdragonenkov/restock/internal/service/sales"
	"github.com/vladislavdragonenkov/restock/internal/service/tables"
	"github.com/vladislavdragonenkov/restock/internal/storage/memory"
	restockv1 "github.com/vladislavdragonenkov/restock/proto/restock/v1"
)

const bufSize = 1024 * 1024

type harness struct {
	client   restockv1.OrderServiceClient
	catalog  *catalog.MockService
	identity *identity.MockService
	notifier *notify.MockNotifier
	outbox   *memory.OutboxRepository
}

func loggerForTests() *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	logger.SetLevel(logrus.DebugLevel)
	return logger.WithField("component", "test")
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	logger := loggerForTests()
	h := &harness{
		catalog: catalog.NewMockService(
			domain.Product{ID: 7, Name: "Pasta", Price: 10, Stock: 5},
			domain.Product{ID: 8, Name: "Lemonade", Price: 25, Stock: 3},
		),
		identity: identity.NewMockService(domain.User{ID: 1, Email: "alice@example.com", Name: "Alice"}),
		notifier: notify.NewMockNotifier(),
		outbox:   memory.NewOutboxRepository(),
	}

	events := outbox.NewEmitter(h.outbox, logger, nil)
	tableRepo := memory.NewTableRepository()
	service := grpcsvc.NewOrderService(
		tables.NewRegistry(tableRepo, events, nil, logger),
		orders.NewOrchestrator(memory.NewOrderRepository(), tableRepo, h.catalog, h.identity,
			orders.WithLogger(logger), orders.WithEvents(events)),
		sales.NewLedger(memory.NewSaleRepository(), h.notifier, events, nil, logger),
		grpcsvc.WithLogger(logger),
		grpcsvc.WithIdempotency(memory.NewIdempotencyRepository(), 0),
	)

	listener := bufconn.Listen(bufSize)
	server := grpc.NewServer()
	restockv1.RegisterOrderServiceServer(server, service)
	go func() {
		_ = server.Serve(listener)
	}()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(context.Context, string) (net.Conn, error) { return listener.Dial() }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = conn.Close()
		server.Stop()
	})

	h.client = restockv1.NewOrderServiceClient(conn)
	return h
}

func (h *harness) createTable(t *testing.T, name string) int64 {
	t.Helper()
	resp, err := h.client.CreateTable(context.Background(), &restockv1.CreateTableRequest{Name: name, Quantity: 4, State: "available"})
	require.NoError(t, err)
	return resp.Id
}

func (h *harness) createOrder(t *testing.T, products ...*restockv1.OrderItem) int64 {
	t.Helper()
	resp, err := h.client.CreateOrder(context.Background(), &restockv1.CreateOrderRequest{
		UserId:    1,
		NameTable: "T1",
		Email:     "alice@example.com",
		Products:  products,
	})
	require.NoError(t, err)
	return resp.Id
}

func requireStatus(t *testing.T, err error, code codes.Code, reason domain.ErrorKind) {
	t.Helper()
	require.Error(t, err)
	st, ok := status.FromError(err)
	require.True(t, ok)
	require.Equal(t, code, st.Code(), st.Message())

	var info *errdetails.ErrorInfo
	for _, d := range st.Details() {
		if v, ok := d.(*errdetails.ErrorInfo); ok {
			info = v
		}
	}
	require.NotNil(t, info, "ErrorInfo detail is missing")
	require.Equal(t, string(reason), info.GetReason())
}

func TestOrderScenario_CreateAndRead(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	tableID := h.createTable(t, "T1")

	orderID := h.createOrder(t, &restockv1.OrderItem{ProductId: 7, Quantity: 2})

	resp, err := h.client.GetOrder(ctx, &restockv1.GetOrderRequest{OrderId: orderID})
	require.NoError(t, err)
	order := resp.Order
	require.Equal(t, int64(20), order.TotalPrice)
	require.Len(t, order.Products, 1)
	require.Equal(t, "Pasta", order.Products[0].ProductName)
	require.Equal(t, int64(10), order.Products[0].PricePerUnit)
	require.Equal(t, int64(20), order.Products[0].TotalPrice)
	require.NotNil(t, order.Table)
	require.Equal(t, tableID, order.Table.Id)
	require.NotNil(t, order.User)
	require.Equal(t, "Alice", order.User.Name)

	all, err := h.client.GetAllOrders(ctx, &restockv1.GetAllOrdersRequest{})
	require.NoError(t, err)
	require.Len(t, all.Orders, 1)
}

func TestGetOrder_RepricesAgainstCatalog(t *testing.T) {
	h := newHarness(t)
	h.createTable(t, "T1")
	orderID := h.createOrder(t, &restockv1.OrderItem{ProductId: 7, Quantity: 2})

	h.catalog.Put(domain.Product{ID: 7, Name: "Pasta", Price: 12, Stock: 5})

	resp, err := h.client.GetOrder(context.Background(), &restockv1.GetOrderRequest{OrderId: orderID})
	require.NoError(t, err)
	require.Equal(t, int64(12), resp.Order.Products[0].PricePerUnit)
	require.Equal(t, int64(24), resp.Order.Products[0].TotalPrice)
}

func TestCreateOrder_Failures(t *testing.T) {
	h := newHarness(t)
	h.createTable(t, "T1")

	tests := []struct {
		name   string
		req    *restockv1.CreateOrderRequest
		code   codes.Code
		reason domain.ErrorKind
	}{
		{
			name:   "unknown user",
			req:    &restockv1.CreateOrderRequest{UserId: 99, NameTable: "T1", Email: "a@example.com"},
			code:   codes.InvalidArgument,
			reason: domain.KindInvalidReference,
		},
		{
			name:   "unknown table",
			req:    &restockv1.CreateOrderRequest{UserId: 1, NameTable: "T9", Email: "a@example.com"},
			code:   codes.InvalidArgument,
			reason: domain.KindInvalidReference,
		},
		{
			name: "unknown product",
			req: &restockv1.CreateOrderRequest{UserId: 1, NameTable: "T1", Email: "a@example.com", Products: []*restockv1.OrderItem{
				{ProductId: 7, Quantity: 1},
				{ProductId: 404, Quantity: 1},
			}},
			code:   codes.InvalidArgument,
			reason: domain.KindInvalidReference,
		},
		{
			name:   "malformed email",
			req:    &restockv1.CreateOrderRequest{UserId: 1, NameTable: "T1", Email: "not-an-email"},
			code:   codes.InvalidArgument,
			reason: domain.KindInvalidInput,
		},
		{
			name: "zero quantity",
			req: &restockv1.CreateOrderRequest{UserId: 1, NameTable: "T1", Email: "a@example.com", Products: []*restockv1.OrderItem{
				{ProductId: 7, Quantity: 0},
			}},
			code:   codes.InvalidArgument,
			reason: domain.KindInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := h.client.CreateOrder(context.Background(), tt.req)
			requireStatus(t, err, tt.code, tt.reason)
		})
	}

	all, err := h.client.GetAllOrders(context.Background(), &restockv1.GetAllOrdersRequest{})
	require.NoError(t, err)
	require.Empty(t, all.Orders)
}

func TestTables_CRUD(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	id := h.createTable(t, "T1")

	_, err := h.client.CreateTable(ctx, &restockv1.CreateTableRequest{Name: "T1", Quantity: 2, State: "available"})
	requireStatus(t, err, codes.AlreadyExists, domain.KindConflict)

	_, err = h.client.UpdateTableState(ctx, &restockv1.UpdateTableStateRequest{Id: id, Quantity: 6, State: "occupied", ActiveOrderId: 5})
	require.NoError(t, err)

	got, err := h.client.GetTablesByName(ctx, &restockv1.GetTablesByNameRequest{Name: "T1"})
	require.NoError(t, err)
	require.Equal(t, int32(6), got.Table.Quantity)
	require.Equal(t, "occupied", got.Table.State)
	require.Equal(t, int64(5), got.Table.ActiveOrderId)

	_, err = h.client.GetTablesByName(ctx, &restockv1.GetTablesByNameRequest{Name: "T2"})
	requireStatus(t, err, codes.NotFound, domain.KindNotFound)

	_, err = h.client.UpdateTableState(ctx, &restockv1.UpdateTableStateRequest{Id: 999, State: "available"})
	requireStatus(t, err, codes.NotFound, domain.KindNotFound)

	list, err := h.client.GetAllTables(ctx, &restockv1.GetAllTablesRequest{})
	require.NoError(t, err)
	require.Len(t, list.Tables, 1)
}

func TestUpdateOrder(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	h.createTable(t, "T1")
	orderID := h.createOrder(t, &restockv1.OrderItem{ProductId: 7, Quantity: 2})

	_, err := h.client.UpdateOrder(ctx, &restockv1.UpdateOrderRequest{
		OrderId:   orderID,
		UserId:    1,
		NameTable: "T1",
		Email:     "alice@example.com",
		Products:  []*restockv1.OrderItem{{ProductId: 8, Quantity: 1}},
	})
	require.NoError(t, err)

	resp, err := h.client.GetOrder(ctx, &restockv1.GetOrderRequest{OrderId: orderID})
	require.NoError(t, err)
	require.Equal(t, int64(25), resp.Order.TotalPrice)
	require.Len(t, resp.Order.Products, 1)
	require.Equal(t, int64(8), resp.Order.Products[0].ProductId)

	_, err = h.client.UpdateOrder(ctx, &restockv1.UpdateOrderRequest{
		OrderId: 404, UserId: 1, NameTable: "T1", Email: "alice@example.com",
	})
	requireStatus(t, err, codes.NotFound, domain.KindNotFound)
}

func TestDeleteOrderItem(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	h.createTable(t, "T1")
	orderID := h.createOrder(t, &restockv1.OrderItem{ProductId: 7, Quantity: 2})

	_, err := h.client.DeleteOrderItem(ctx, &restockv1.DeleteOrderItemRequest{OrderId: orderID, ProductId: 7})
	require.NoError(t, err)
	require.Equal(t, int64(7), h.catalog.Stock(7))

	resp, err := h.client.GetOrder(ctx, &restockv1.GetOrderRequest{OrderId: orderID})
	require.NoError(t, err)
	require.Empty(t, resp.Order.Products)
	require.Zero(t, resp.Order.TotalPrice)

	_, err = h.client.DeleteOrderItem(ctx, &restockv1.DeleteOrderItemRequest{OrderId: orderID, ProductId: 7})
	requireStatus(t, err, codes.NotFound, domain.KindNotFound)
}

func TestDeleteOrderItem_StockRestoreFails(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	h.createTable(t, "T1")
	orderID := h.createOrder(t, &restockv1.OrderItem{ProductId: 7, Quantity: 2})

	h.catalog.AdjustErr = &domain.UpstreamError{Service: "catalog", Status: "unavailable"}

	_, err := h.client.DeleteOrderItem(ctx, &restockv1.DeleteOrderItemRequest{OrderId: orderID, ProductId: 7})
	requireStatus(t, err, codes.Unavailable, domain.KindUpstreamFailure)

	resp, err := h.client.GetOrder(ctx, &restockv1.GetOrderRequest{OrderId: orderID})
	require.NoError(t, err)
	require.Empty(t, resp.Order.Products)
	require.Zero(t, resp.Order.TotalPrice)
}

func TestGetUser(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	resp, err := h.client.GetUser(ctx, &restockv1.GetUserRequest{UserId: 1})
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", resp.User.Email)

	_, err = h.client.GetUser(ctx, &restockv1.GetUserRequest{UserId: 2})
	requireStatus(t, err, codes.InvalidArgument, domain.KindInvalidReference)
}

func saleRequest(user string) *restockv1.CreateSaleRequest {
	return &restockv1.CreateSaleRequest{
		UserName:   user,
		TableName:  "T1",
		Date:       "2024-05-01",
		Tip:        5,
		TotalPrice: 25,
		Email:      "guest@example.com",
		Products: []*restockv1.OrderItem{
			{ProductId: 7, Quantity: 2, ProductName: "Pasta", PricePerUnit: 10, TotalPrice: 20},
		},
	}
}

func TestSales(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	_, err := h.client.CreateSale(ctx, saleRequest("Alice"))
	require.NoError(t, err)
	_, err = h.client.CreateSale(ctx, saleRequest("Bob"))
	require.NoError(t, err)
	require.Len(t, h.notifier.Sent(), 2)

	byUser, err := h.client.GetSalesByUser(ctx, &restockv1.GetSalesByUserRequest{UserName: "ali"})
	require.NoError(t, err)
	require.Len(t, byUser.Sales, 1)
	require.Equal(t, "Alice", byUser.Sales[0].UserName)
	require.Len(t, byUser.Sales[0].Products, 1)

	byDate, err := h.client.GetSalesByDate(ctx, &restockv1.GetSalesByDateRequest{Date: "2024-05"})
	require.NoError(t, err)
	require.Len(t, byDate.Sales, 2)

	all, err := h.client.GetAllSales(ctx, &restockv1.GetAllSalesRequest{})
	require.NoError(t, err)
	require.Len(t, all.Sales, 2)
}

func TestCreateSale_NotificationFailureStillRecords(t *testing.T) {
	h := newHarness(t)
	h.notifier.Err = io.ErrUnexpectedEOF

	_, err := h.client.CreateSale(context.Background(), saleRequest("Alice"))
	require.NoError(t, err)

	all, err := h.client.GetAllSales(context.Background(), &restockv1.GetAllSalesRequest{})
	require.NoError(t, err)
	require.Len(t, all.Sales, 1)
}

func TestCreateSale_Idempotency(t *testing.T) {
	h := newHarness(t)
	ctx := metadata.AppendToOutgoingContext(context.Background(), "idempotency-key", "sale-1")

	first, err := h.client.CreateSale(ctx, saleRequest("Alice"))
	require.NoError(t, err)
	second, err := h.client.CreateSale(ctx, saleRequest("Alice"))
	require.NoError(t, err)
	require.Equal(t, first.Id, second.Id)

	_, err = h.client.CreateSale(ctx, saleRequest("Bob"))
	requireStatus(t, err, codes.AlreadyExists, domain.KindConflict)

	all, err := h.client.GetAllSales(context.Background(), &restockv1.GetAllSalesRequest{})
	require.NoError(t, err)
	require.Len(t, all.Sales, 1)
	require.Len(t, h.notifier.Sent(), 1)
}

func TestCreateOrder_IdempotencyReplaysFailure(t *testing.T) {
	h := newHarness(t)
	ctx := metadata.AppendToOutgoingContext(context.Background(), "idempotency-key", "order-1")
	req := &restockv1.CreateOrderRequest{UserId: 1, NameTable: "T1", Email: "alice@example.com"}

	_, err := h.client.CreateOrder(ctx, req)
	requireStatus(t, err, codes.InvalidArgument, domain.KindInvalidReference)

	h.createTable(t, "T1")
	_, err = h.client.CreateOrder(ctx, req)
	requireStatus(t, err, codes.InvalidArgument, domain.KindInvalidReference)

	resp, err := h.client.CreateOrder(context.Background(), req)
	require.NoError(t, err)
	require.NotZero(t, resp.Id)
}

func TestWrites_EnqueueDomainEvents(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	h.createTable(t, "T1")
	orderID := h.createOrder(t, &restockv1.OrderItem{ProductId: 7, Quantity: 1})
	_, err := h.client.DeleteOrderItem(ctx, &restockv1.DeleteOrderItemRequest{OrderId: orderID, ProductId: 7})
	require.NoError(t, err)
	_, err = h.client.CreateSale(ctx, saleRequest("Alice"))
	require.NoError(t, err)

	var types []string
	for _, msg := range h.outbox.AllPending() {
		types = append(types, msg.EventType)
	}
	require.Equal(t, []string{domain.EventTableProvisioned, domain.EventOrderCreated, domain.EventOrderItemRemoved, domain.EventSaleRecorded}, types)
}
