package orders

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/restock/internal/domain"
	"github.com/vladislavdragonenkov/restock/internal/service/catalog"
	"github.com/vladislavdragonenkov/restock/internal/service/identity"
	"github.com/vladislavdragonenkov/restock/internal/service/outbox"
	"github.com/vladislavdragonenkov/restock/internal/storage/memory"
)

type fixture struct {
	orders   domain.OrderRepository
	tables   domain.TableRepository
	catalog  *catalog.MockService
	identity *identity.MockService
	outbox   *memory.OutboxRepository
	orch     Orchestrator
	table    domain.Table
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		orders: memory.NewOrderRepository(),
		tables: memory.NewTableRepository(),
		catalog: catalog.NewMockService(
			domain.Product{ID: 7, Name: "Pasta", Price: 10, Stock: 5},
			domain.Product{ID: 8, Name: "Lemonade", Price: 25, Stock: 3},
		),
		identity: identity.NewMockService(domain.User{ID: 1, Email: "alice@example.com", Name: "Alice"}),
		outbox:   memory.NewOutboxRepository(),
	}

	table, err := f.tables.Create(context.Background(), domain.Table{Name: "T1", Quantity: 4, State: domain.TableStateAvailable})
	require.NoError(t, err)
	f.table = table

	logger := log.New()
	logger.SetOutput(io.Discard)
	entry := log.NewEntry(logger)

	f.orch = NewOrchestrator(f.orders, f.tables, f.catalog, f.identity,
		WithLogger(entry),
		WithEvents(outbox.NewEmitter(f.outbox, entry, nil)),
		WithRepriceConcurrency(2),
	)
	return f
}

func (f *fixture) storedOrders(t *testing.T) []domain.Order {
	t.Helper()
	list, err := f.orders.List(context.Background())
	require.NoError(t, err)
	return list
}

func (f *fixture) eventTypes() []string {
	var types []string
	for _, msg := range f.outbox.AllPending() {
		types = append(types, msg.EventType)
	}
	return types
}

func basicInput(lines ...domain.LineRequest) OrderInput {
	return OrderInput{UserID: 1, TableName: "T1", Email: "alice@example.com", Lines: lines}
}

func TestCreateOrder_ComputesTotalsFromCatalog(t *testing.T) {
	f := newFixture(t)

	order, err := f.orch.CreateOrder(context.Background(), basicInput(domain.LineRequest{ProductID: 7, Quantity: 2}))
	require.NoError(t, err)
	require.NotZero(t, order.ID)
	require.Equal(t, f.table.ID, order.TableID)
	require.Len(t, order.Items, 1)
	require.Equal(t, "Pasta", order.Items[0].ProductName)
	require.Equal(t, int64(10), order.Items[0].UnitPrice)
	require.Equal(t, int64(20), order.Items[0].TotalPrice)
	require.Equal(t, int64(20), order.TotalPrice)

	stored, err := f.orders.Get(context.Background(), order.ID)
	require.NoError(t, err)
	require.Equal(t, int64(20), stored.TotalPrice)
	require.Equal(t, []string{domain.EventOrderCreated}, f.eventTypes())
}

func TestCreateOrder_MultipleLines(t *testing.T) {
	f := newFixture(t)

	order, err := f.orch.CreateOrder(context.Background(), basicInput(
		domain.LineRequest{ProductID: 7, Quantity: 3, Modifications: "no cheese"},
		domain.LineRequest{ProductID: 8, Quantity: 2},
	))
	require.NoError(t, err)
	require.Len(t, order.Items, 2)
	require.Equal(t, "no cheese", order.Items[0].Modifications)
	require.Equal(t, int64(3*10+2*25), order.TotalPrice)
	require.Empty(t, order.ValidateInvariants())
}

func TestCreateOrder_UnknownUserPersistsNothing(t *testing.T) {
	f := newFixture(t)

	_, err := f.orch.CreateOrder(context.Background(), OrderInput{
		UserID:    42,
		TableName: "T1",
		Lines:     []domain.LineRequest{{ProductID: 7, Quantity: 1}},
	})
	require.ErrorIs(t, err, domain.ErrInvalidReference)
	require.Contains(t, err.Error(), "user with id 42 not found")
	require.Equal(t, domain.KindInvalidReference, domain.KindOf(err))

	require.Empty(t, f.storedOrders(t))
	require.Zero(t, f.catalog.FindCalls)
	require.Empty(t, f.eventTypes())
}

func TestCreateOrder_IdentityOutageIsInvalidReference(t *testing.T) {
	f := newFixture(t)
	f.identity.GetErr = &domain.UpstreamError{Service: "identity", Status: "Unavailable"}

	_, err := f.orch.CreateOrder(context.Background(), basicInput(domain.LineRequest{ProductID: 7, Quantity: 1}))
	require.ErrorIs(t, err, domain.ErrInvalidReference)
	require.Empty(t, f.storedOrders(t))
}

func TestCreateOrder_UnknownTable(t *testing.T) {
	f := newFixture(t)

	in := basicInput(domain.LineRequest{ProductID: 7, Quantity: 1})
	in.TableName = "T9"

	_, err := f.orch.CreateOrder(context.Background(), in)
	require.ErrorIs(t, err, domain.ErrInvalidReference)
	require.Contains(t, err.Error(), `"T9"`)
	require.Empty(t, f.storedOrders(t))
	require.Zero(t, f.catalog.FindCalls)
}

func TestCreateOrder_OneUnknownProductAbortsWholeOrder(t *testing.T) {
	f := newFixture(t)

	_, err := f.orch.CreateOrder(context.Background(), basicInput(
		domain.LineRequest{ProductID: 7, Quantity: 1},
		domain.LineRequest{ProductID: 99, Quantity: 1},
		domain.LineRequest{ProductID: 8, Quantity: 1},
	))
	require.ErrorIs(t, err, domain.ErrInvalidReference)
	require.Contains(t, err.Error(), "product with id 99 not found")

	require.Empty(t, f.storedOrders(t))
	require.Equal(t, 2, f.catalog.FindCalls, "resolution stops at the first missing product")
	require.Empty(t, f.eventTypes())
}

func TestCreateOrder_EmptyLines(t *testing.T) {
	f := newFixture(t)

	order, err := f.orch.CreateOrder(context.Background(), basicInput())
	require.NoError(t, err)
	require.Empty(t, order.Items)
	require.Zero(t, order.TotalPrice)
}

func TestUpdateOrder_ReplacesEverything(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.orch.CreateOrder(ctx, basicInput(domain.LineRequest{ProductID: 7, Quantity: 2}))
	require.NoError(t, err)

	t2, err := f.tables.Create(ctx, domain.Table{Name: "T2", Quantity: 2, State: domain.TableStateAvailable})
	require.NoError(t, err)

	updated, err := f.orch.UpdateOrder(ctx, created.ID, OrderInput{
		UserID:    1,
		TableName: "T2",
		Email:     "bob@example.com",
		Lines:     []domain.LineRequest{{ProductID: 8, Quantity: 1}},
	})
	require.NoError(t, err)
	require.Equal(t, created.ID, updated.ID)
	require.Equal(t, t2.ID, updated.TableID)
	require.Equal(t, "bob@example.com", updated.Email)
	require.Len(t, updated.Items, 1)
	require.Equal(t, int64(8), updated.Items[0].ProductID)
	require.Equal(t, int64(25), updated.TotalPrice)
	require.Greater(t, updated.Version, created.Version)

	require.Equal(t, []string{domain.EventOrderCreated, domain.EventOrderUpdated}, f.eventTypes())
}

func TestUpdateOrder_NotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.orch.UpdateOrder(context.Background(), 404, basicInput())
	require.ErrorIs(t, err, domain.ErrOrderNotFound)
	require.Equal(t, domain.KindNotFound, domain.KindOf(err))
}

func TestUpdateOrder_InvalidProductKeepsStoredOrder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.orch.CreateOrder(ctx, basicInput(domain.LineRequest{ProductID: 7, Quantity: 2}))
	require.NoError(t, err)

	_, err = f.orch.UpdateOrder(ctx, created.ID, basicInput(domain.LineRequest{ProductID: 55, Quantity: 1}))
	require.ErrorIs(t, err, domain.ErrInvalidReference)

	stored, err := f.orders.Get(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created.Items, stored.Items)
	require.Equal(t, created.TotalPrice, stored.TotalPrice)
}

func TestGetOrder_RepricesAgainstCurrentCatalog(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.orch.CreateOrder(ctx, basicInput(domain.LineRequest{ProductID: 7, Quantity: 2}))
	require.NoError(t, err)

	f.catalog.Put(domain.Product{ID: 7, Name: "Pasta al pesto", Price: 15, Stock: 5})

	details, err := f.orch.GetOrder(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "Pasta al pesto", details.Order.Items[0].ProductName)
	require.Equal(t, int64(15), details.Order.Items[0].UnitPrice)
	require.Equal(t, int64(30), details.Order.Items[0].TotalPrice)
	require.Equal(t, int64(30), details.Order.TotalPrice)

	require.NotNil(t, details.User)
	require.Equal(t, "Alice", details.User.Name)
	require.NotNil(t, details.Table)
	require.Equal(t, "T1", details.Table.Name)

	stored, err := f.orders.Get(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, int64(20), stored.TotalPrice, "reads never write the repriced snapshot back")
}

func TestGetOrder_DegradesWhenCollaboratorsFail(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.orch.CreateOrder(ctx, basicInput(domain.LineRequest{ProductID: 7, Quantity: 2}))
	require.NoError(t, err)

	f.identity.Remove(1)
	f.catalog.SetFindErr(&domain.UpstreamError{Service: "catalog", Status: "Unavailable"})

	details, err := f.orch.GetOrder(ctx, created.ID)
	require.NoError(t, err)
	require.Nil(t, details.User)
	require.Equal(t, int64(10), details.Order.Items[0].UnitPrice)
	require.Equal(t, int64(20), details.Order.TotalPrice)
}

func TestGetOrder_NotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.orch.GetOrder(context.Background(), 1)
	require.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestListOrders_RepricesEveryOrder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.orch.CreateOrder(ctx, basicInput(domain.LineRequest{ProductID: 7, Quantity: 1}))
	require.NoError(t, err)
	_, err = f.orch.CreateOrder(ctx, basicInput(
		domain.LineRequest{ProductID: 7, Quantity: 1},
		domain.LineRequest{ProductID: 8, Quantity: 2},
	))
	require.NoError(t, err)

	f.catalog.Put(domain.Product{ID: 7, Name: "Pasta", Price: 12, Stock: 5})

	views, err := f.orch.ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, views, 2)
	require.Equal(t, int64(12), views[0].Order.TotalPrice)
	require.Equal(t, int64(12+50), views[1].Order.TotalPrice)
}

func TestListOrders_Empty(t *testing.T) {
	f := newFixture(t)

	views, err := f.orch.ListOrders(context.Background())
	require.NoError(t, err)
	require.Empty(t, views)
}

func TestDeleteOrderItem_RestoresStock(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.orch.CreateOrder(ctx, basicInput(
		domain.LineRequest{ProductID: 7, Quantity: 2},
		domain.LineRequest{ProductID: 8, Quantity: 1},
	))
	require.NoError(t, err)

	require.NoError(t, f.orch.DeleteOrderItem(ctx, created.ID, 7))

	require.Equal(t, int64(7), f.catalog.Stock(7))
	product, ok := f.catalog.Product(7)
	require.True(t, ok)
	require.Equal(t, domain.Product{ID: 7, Name: "Pasta", Price: 10, Stock: 7}, product)

	stored, err := f.orders.Get(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, stored.Items, 1)
	require.Equal(t, int64(8), stored.Items[0].ProductID)
	require.Equal(t, int64(25), stored.TotalPrice)

	events := f.outbox.AllPending()
	require.Len(t, events, 2)
	require.Equal(t, domain.EventOrderItemRemoved, events[1].EventType)

	var payload domain.OrderEventPayload
	require.NoError(t, json.Unmarshal(events[1].Payload, &payload))
	require.Equal(t, int64(7), payload.ProductID)
	require.Equal(t, int64(25), payload.TotalPrice)
}

func TestDeleteOrderItem_PersistsWhenStockRestoreFails(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.orch.CreateOrder(ctx, basicInput(domain.LineRequest{ProductID: 7, Quantity: 2}))
	require.NoError(t, err)
	original := created.TotalPrice
	removed := created.Items[0].TotalPrice

	f.catalog.AdjustErr = errors.New("catalog write rejected")

	err = f.orch.DeleteOrderItem(ctx, created.ID, 7)
	require.ErrorIs(t, err, domain.ErrUpstreamFailure)
	require.Equal(t, domain.KindUpstreamFailure, domain.KindOf(err))

	var upstream *domain.UpstreamError
	require.ErrorAs(t, err, &upstream)
	require.Equal(t, "catalog", upstream.Service)

	stored, err := f.orders.Get(ctx, created.ID)
	require.NoError(t, err)
	require.Empty(t, stored.Items)
	require.Equal(t, original-removed, stored.TotalPrice)
	require.Equal(t, int64(5), f.catalog.Stock(7))
	require.Equal(t, []catalog.StockAdjustment{{ProductID: 7, NewStock: 7}}, f.catalog.Adjustments)
}

func TestDeleteOrderItem_Failures(t *testing.T) {
	tests := []struct {
		name      string
		orderID   func(created domain.Order) int64
		productID int64
		want      error
	}{
		{
			name:      "unknown order",
			orderID:   func(domain.Order) int64 { return 999 },
			productID: 7,
			want:      domain.ErrOrderNotFound,
		},
		{
			name:      "unknown product",
			orderID:   func(o domain.Order) int64 { return o.ID },
			productID: 77,
			want:      domain.ErrInvalidReference,
		},
		{
			name:      "product not in order",
			orderID:   func(o domain.Order) int64 { return o.ID },
			productID: 8,
			want:      domain.ErrOrderItemNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			ctx := context.Background()

			created, err := f.orch.CreateOrder(ctx, basicInput(domain.LineRequest{ProductID: 7, Quantity: 2}))
			require.NoError(t, err)

			err = f.orch.DeleteOrderItem(ctx, tt.orderID(created), tt.productID)
			require.ErrorIs(t, err, tt.want)

			stored, err := f.orders.Get(ctx, created.ID)
			require.NoError(t, err)
			require.Len(t, stored.Items, 1)
			require.Empty(t, f.catalog.Adjustments)
		})
	}
}

func TestGetUser(t *testing.T) {
	f := newFixture(t)

	user, err := f.orch.GetUser(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", user.Email)

	_, err = f.orch.GetUser(context.Background(), 2)
	require.ErrorIs(t, err, domain.ErrInvalidReference)
}
