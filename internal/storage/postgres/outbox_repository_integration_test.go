package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/restock/internal/domain"
)

func TestOutboxRepository_Postgres(t *testing.T) {
	store := openMigratedStore(t)
	repo := NewOutboxRepository(store)
	ctx := context.Background()

	first, err := repo.Enqueue(ctx, domain.OutboxMessage{
		AggregateType: domain.AggregateTypeOrder,
		AggregateID:   "1",
		EventType:     domain.EventOrderCreated,
		Payload:       []byte(`{"order_id":1}`),
	})
	require.NoError(t, err)
	require.NotEmpty(t, first.ID)
	require.False(t, first.CreatedAt.IsZero())

	_, err = repo.Enqueue(ctx, domain.OutboxMessage{
		AggregateType: domain.AggregateTypeSale,
		AggregateID:   "1",
		EventType:     domain.EventSaleRecorded,
		Payload:       []byte(`{"sale_id":1}`),
	})
	require.NoError(t, err)

	stats, err := repo.Stats(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, stats.PendingCount)
	require.WithinDuration(t, first.CreatedAt, stats.OldestPendingAt, time.Second)

	pending, err := repo.PullPending(ctx, 10)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	require.Equal(t, first.ID, pending[0].ID)
	require.JSONEq(t, `{"order_id":1}`, string(pending[0].Payload))

	require.NoError(t, repo.MarkSent(ctx, pending[0].ID))
	require.NoError(t, repo.MarkFailed(ctx, pending[1].ID))
	require.ErrorIs(t, repo.MarkSent(ctx, "missing"), domain.ErrOutboxPublish)

	pending, err = repo.PullPending(ctx, 0)
	require.NoError(t, err)
	require.Empty(t, pending)
}

func TestIdempotencyRepository_Postgres(t *testing.T) {
	store := openMigratedStore(t)
	repo := NewIdempotencyRepository(store)
	ctx := context.Background()

	record, err := repo.CreateProcessing(ctx, "key-1", "hash-1", time.Now().Add(time.Hour))
	require.NoError(t, err)
	require.Equal(t, domain.IdempotencyStatusProcessing, record.Status)

	_, err = repo.CreateProcessing(ctx, "key-1", "hash-1", time.Now().Add(time.Hour))
	require.ErrorIs(t, err, domain.ErrIdempotencyKeyAlreadyExists)

	_, err = repo.CreateProcessing(ctx, "key-1", "hash-2", time.Now().Add(time.Hour))
	require.ErrorIs(t, err, domain.ErrIdempotencyHashMismatch)

	require.NoError(t, repo.MarkDone(ctx, "key-1", []byte(`{"id":1}`), 0))
	done, err := repo.Get(ctx, "key-1")
	require.NoError(t, err)
	require.Equal(t, domain.IdempotencyStatusDone, done.Status)
	require.Equal(t, []byte(`{"id":1}`), done.ResponseBody)

	require.ErrorIs(t, repo.MarkFailed(ctx, "missing", nil, 13), domain.ErrIdempotencyKeyNotFound)

	_, err = repo.CreateProcessing(ctx, "key-old", "hash", time.Now().Add(-time.Minute))
	require.NoError(t, err)
	_, err = repo.Get(ctx, "key-old")
	require.ErrorIs(t, err, domain.ErrIdempotencyKeyNotFound)

	reused, err := repo.CreateProcessing(ctx, "key-old", "hash-new", time.Now().Add(time.Hour))
	require.NoError(t, err)
	require.Equal(t, "hash-new", reused.RequestHash)

	_, err = repo.CreateProcessing(ctx, "key-stale", "hash", time.Now().Add(-time.Minute))
	require.NoError(t, err)
	removed, err := repo.DeleteExpired(ctx, time.Now(), 10)
	require.NoError(t, err)
	require.Equal(t, 1, removed)
}
