//go:build integration

package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/vladislavdragonenkov/restock/internal/domain"
)

// TestContainer_OrderLifecycle поднимает одноразовый PostgreSQL и прогоняет
// миграции и основные репозитории на чистой базе.
func TestContainer_OrderLifecycle(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("restock"),
		tcpostgres.WithUsername("restock"),
		tcpostgres.WithPassword("restock"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = testcontainers.TerminateContainer(container)
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	store, err := Open(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, store.MigrateUp(ctx, 0))
	state, err := store.MigrationStatus(ctx)
	require.NoError(t, err)
	require.Zero(t, state.Pending)

	tables := NewTableRepository(store)
	orders := NewOrderRepository(store)
	sales := NewSaleRepository(store)

	table, err := tables.Create(ctx, domain.Table{Name: "T1", Quantity: 4, State: domain.TableStateAvailable})
	require.NoError(t, err)

	order := domain.Order{
		UserID:  1,
		TableID: table.ID,
		Email:   "alice@example.com",
		Items:   []domain.OrderItem{{ProductID: 7, Quantity: 2, ProductName: "Pasta", UnitPrice: 10, TotalPrice: 20}},
	}
	order.Recalculate()

	created, err := orders.Create(ctx, order)
	require.NoError(t, err)
	require.Equal(t, int64(20), created.TotalPrice)

	require.NoError(t, orders.RemoveItem(ctx, created.ID, created.Items[0].ID))
	created.RemoveItemAt(0)
	saved, err := orders.Save(ctx, created)
	require.NoError(t, err)
	require.Zero(t, saved.TotalPrice)
	require.Empty(t, saved.Items)

	_, err = sales.Create(ctx, domain.Sale{UserName: "Alice", TableName: "T1", Date: "2024-05-01", TotalPrice: 20})
	require.NoError(t, err)
	found, err := sales.FindByUserName(ctx, "ali")
	require.NoError(t, err)
	require.Len(t, found, 1)
}
