package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/restock/internal/domain"
)

func seedTable(t *testing.T, store *Store, name string) domain.Table {
	t.Helper()

	table, err := NewTableRepository(store).Create(context.Background(), domain.Table{
		Name:     name,
		Quantity: 4,
		State:    domain.TableStateAvailable,
	})
	require.NoError(t, err)
	return table
}

func sampleOrder(tableID int64) domain.Order {
	order := domain.Order{
		UserID:  1,
		TableID: tableID,
		Email:   "alice@example.com",
		Items: []domain.OrderItem{
			{ProductID: 7, Quantity: 2, ProductName: "Pasta", UnitPrice: 10, TotalPrice: 20},
			{ProductID: 8, Quantity: 1, Modifications: "no ice", ProductName: "Lemonade", UnitPrice: 25, TotalPrice: 25},
		},
	}
	order.Recalculate()
	return order
}

func TestOrderRepository_PostgresCreateGetList(t *testing.T) {
	store := openMigratedStore(t)
	repo := NewOrderRepository(store)
	ctx := context.Background()
	table := seedTable(t, store, "T1")

	created, err := repo.Create(ctx, sampleOrder(table.ID))
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	require.Equal(t, int64(1), created.Version)
	require.Len(t, created.Items, 2)
	require.NotZero(t, created.Items[0].ID)
	require.Equal(t, int64(45), created.TotalPrice)

	got, err := repo.Get(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created.Items, got.Items)
	require.Equal(t, "no ice", got.Items[1].Modifications)

	_, err = repo.Create(ctx, sampleOrder(table.ID))
	require.NoError(t, err)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Len(t, all[1].Items, 2)

	_, err = repo.Get(ctx, 404)
	require.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestOrderRepository_PostgresSaveAndRemoveItem(t *testing.T) {
	store := openMigratedStore(t)
	repo := NewOrderRepository(store)
	ctx := context.Background()
	table := seedTable(t, store, "T1")

	created, err := repo.Create(ctx, sampleOrder(table.ID))
	require.NoError(t, err)
	keptID := created.Items[1].ID

	require.NoError(t, repo.RemoveItem(ctx, created.ID, created.Items[0].ID))

	afterRemove, err := repo.Get(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, afterRemove.Items, 1)
	require.Equal(t, int64(45), afterRemove.TotalPrice)
	require.Equal(t, created.Version, afterRemove.Version)

	afterRemove.TotalPrice = 25
	saved, err := repo.Save(ctx, afterRemove)
	require.NoError(t, err)
	require.Equal(t, created.Version+1, saved.Version)
	require.Equal(t, keptID, saved.Items[0].ID)
	require.Equal(t, int64(25), saved.TotalPrice)

	_, err = repo.Save(ctx, afterRemove)
	require.ErrorIs(t, err, domain.ErrOrderVersionConflict)

	_, err = repo.Save(ctx, domain.Order{ID: 999, Version: 1, TableID: table.ID})
	require.ErrorIs(t, err, domain.ErrOrderNotFound)

	require.ErrorIs(t, repo.RemoveItem(ctx, created.ID, 12345), domain.ErrOrderItemNotFound)
	require.ErrorIs(t, repo.RemoveItem(ctx, 999, 1), domain.ErrOrderNotFound)
}
