package memory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/restock/internal/domain"
	"github.com/vladislavdragonenkov/restock/internal/storage/memory"
)

func TestTableRepository_CreateAndLookup(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewTableRepository()

	created, err := repo.Create(ctx, domain.Table{Name: "T1", Quantity: 4, State: domain.TableStateAvailable})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	byName, err := repo.GetByName(ctx, "T1")
	require.NoError(t, err)
	require.Equal(t, created.ID, byName.ID)

	byID, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "T1", byID.Name)

	_, err = repo.GetByName(ctx, "t1")
	require.ErrorIs(t, err, domain.ErrTableNotFound)
}

func TestTableRepository_UniqueName(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewTableRepository()

	_, err := repo.Create(ctx, domain.Table{Name: "Patio", Quantity: 2, State: domain.TableStateAvailable})
	require.NoError(t, err)

	_, err = repo.Create(ctx, domain.Table{Name: "Patio", Quantity: 8, State: domain.TableStateReserved})
	require.ErrorIs(t, err, domain.ErrTableNameTaken)
	require.True(t, errors.Is(err, domain.ErrConflict))

	tables, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, tables, 1)
}

func TestTableRepository_UpdateKeepsName(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewTableRepository()

	created, err := repo.Create(ctx, domain.Table{Name: "Window", Quantity: 2, State: domain.TableStateAvailable})
	require.NoError(t, err)

	orderID := int64(42)
	created.Name = "ignored"
	created.Quantity = 3
	created.State = domain.TableStateOccupied
	created.ActiveOrderID = &orderID
	require.NoError(t, repo.Update(ctx, created))

	stored, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "Window", stored.Name)
	require.Equal(t, int32(3), stored.Quantity)
	require.Equal(t, domain.TableStateOccupied, stored.State)
	require.NotNil(t, stored.ActiveOrderID)
	require.Equal(t, int64(42), *stored.ActiveOrderID)

	err = repo.Update(ctx, domain.Table{ID: 77})
	require.ErrorIs(t, err, domain.ErrTableNotFound)
}
