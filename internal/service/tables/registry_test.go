package tables

import (
	"context"
	"encoding/json"
	"io"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/restock/internal/domain"
	"github.com/vladislavdragonenkov/restock/internal/metrics"
	"github.com/vladislavdragonenkov/restock/internal/service/outbox"
	"github.com/vladislavdragonenkov/restock/internal/storage/memory"
)

func newRegistry(t *testing.T) (Registry, *memory.OutboxRepository) {
	t.Helper()

	logger := log.New()
	logger.SetOutput(io.Discard)
	entry := log.NewEntry(logger)

	box := memory.NewOutboxRepository()
	m := metrics.NewOrderMetricsWithRegisterer(prometheus.NewRegistry())
	return NewRegistry(memory.NewTableRepository(), outbox.NewEmitter(box, entry, m), m, entry), box
}

func TestProvision(t *testing.T) {
	reg, box := newRegistry(t)
	ctx := context.Background()

	table, err := reg.Provision(ctx, "T1", 4, domain.TableStateAvailable)
	require.NoError(t, err)
	require.NotZero(t, table.ID)
	require.Equal(t, "T1", table.Name)
	require.Equal(t, int32(4), table.Quantity)
	require.Nil(t, table.ActiveOrderID)

	found, err := reg.FindByName(ctx, "T1")
	require.NoError(t, err)
	require.Equal(t, table.ID, found.ID)

	events := box.AllPending()
	require.Len(t, events, 1)
	require.Equal(t, domain.EventTableProvisioned, events[0].EventType)
	require.Equal(t, domain.AggregateTypeTable, events[0].AggregateType)
}

func TestProvision_DuplicateName(t *testing.T) {
	reg, box := newRegistry(t)
	ctx := context.Background()

	_, err := reg.Provision(ctx, "T1", 4, domain.TableStateAvailable)
	require.NoError(t, err)

	_, err = reg.Provision(ctx, "T1", 2, domain.TableStateReserved)
	require.ErrorIs(t, err, domain.ErrTableNameTaken)
	require.Equal(t, domain.KindConflict, domain.KindOf(err))

	tables, err := reg.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, tables, 1)
	require.Equal(t, int32(4), tables[0].Quantity)
	require.Len(t, box.AllPending(), 1)
}

func TestProvision_InvalidInput(t *testing.T) {
	reg, _ := newRegistry(t)

	_, err := reg.Provision(context.Background(), "", -1, "")
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	require.ErrorIs(t, err, domain.ErrTableNameRequired)
	require.ErrorIs(t, err, domain.ErrTableQuantityInvalid)
	require.ErrorIs(t, err, domain.ErrTableStateRequired)
}

func TestFindByName_NotFound(t *testing.T) {
	reg, _ := newRegistry(t)

	_, err := reg.FindByName(context.Background(), "missing")
	require.ErrorIs(t, err, domain.ErrTableNotFound)
	require.Equal(t, domain.KindNotFound, domain.KindOf(err))
}

func TestListAll_Empty(t *testing.T) {
	reg, _ := newRegistry(t)

	tables, err := reg.ListAll(context.Background())
	require.NoError(t, err)
	require.Empty(t, tables)
}

func TestUpdateState(t *testing.T) {
	reg, box := newRegistry(t)
	ctx := context.Background()

	table, err := reg.Provision(ctx, "T1", 4, domain.TableStateAvailable)
	require.NoError(t, err)

	orderID := int64(12)
	updated, err := reg.UpdateState(ctx, table.ID, domain.TableStateUpdate{
		Quantity:      6,
		State:         domain.TableStateOccupied,
		ActiveOrderID: &orderID,
	})
	require.NoError(t, err)
	require.Equal(t, int32(6), updated.Quantity)
	require.Equal(t, domain.TableStateOccupied, updated.State)
	require.NotNil(t, updated.ActiveOrderID)
	require.Equal(t, orderID, *updated.ActiveOrderID)

	found, err := reg.FindByName(ctx, "T1")
	require.NoError(t, err)
	require.Equal(t, domain.TableStateOccupied, found.State)
	require.Equal(t, orderID, *found.ActiveOrderID)

	events := box.AllPending()
	require.Len(t, events, 2)
	require.Equal(t, domain.EventTableStateUpdated, events[1].EventType)

	var payload domain.TableEventPayload
	require.NoError(t, json.Unmarshal(events[1].Payload, &payload))
	require.Equal(t, "occupied", payload.State)
	require.Equal(t, orderID, *payload.ActiveOrderID)

	cleared, err := reg.UpdateState(ctx, table.ID, domain.TableStateUpdate{Quantity: 6, State: domain.TableStateAvailable})
	require.NoError(t, err)
	require.Nil(t, cleared.ActiveOrderID)
}

func TestUpdateState_UnknownTable(t *testing.T) {
	reg, box := newRegistry(t)

	_, err := reg.UpdateState(context.Background(), 77, domain.TableStateUpdate{Quantity: 2, State: domain.TableStateAvailable})
	require.ErrorIs(t, err, domain.ErrTableNotFound)
	require.Empty(t, box.AllPending())
}
