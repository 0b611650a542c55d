package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vladislavdragonenkov/restock/internal/domain"
)

const (
	outboxStatusPending = "pending"
	outboxStatusSent    = "sent"
	outboxStatusFailed  = "failed"
)

// outboxRecord хранит сообщение и служебные поля для in-memory реализации.
type outboxRecord struct {
	msg      domain.OutboxMessage
	seq      int64
	status   string
	attempts int
}

// OutboxRepository: in-memory хранилище для transactional outbox.
type OutboxRepository struct {
	mu      sync.RWMutex
	seq     int64
	records map[string]*outboxRecord
}

// NewOutboxRepository создаёт in-memory реализацию outbox.
func NewOutboxRepository() *OutboxRepository {
	return &OutboxRepository{records: make(map[string]*outboxRecord)}
}

// Enqueue сохраняет событие со статусом pending и возвращает его с назначенным ID.
func (r *OutboxRepository) Enqueue(_ context.Context, msg domain.OutboxMessage) (domain.OutboxMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now().UTC()
	}
	r.seq++
	r.records[msg.ID] = &outboxRecord{msg: msg, seq: r.seq, status: outboxStatusPending}
	return msg, nil
}

// PullPending возвращает до limit сообщений со статусом pending в порядке постановки.
func (r *OutboxRepository) PullPending(_ context.Context, limit int) ([]domain.OutboxMessage, error) {
	if limit <= 0 {
		limit = 100
	}
	pending := r.pending()
	if len(pending) > limit {
		pending = pending[:limit]
	}
	return pending, nil
}

func (r *OutboxRepository) Stats(_ context.Context) (domain.OutboxStats, error) {
	pending := r.pending()
	stats := domain.OutboxStats{PendingCount: len(pending)}
	if len(pending) > 0 {
		stats.OldestPendingAt = pending[0].CreatedAt
	}
	return stats, nil
}

// MarkSent обновляет статус события после успешной публикации.
func (r *OutboxRepository) MarkSent(_ context.Context, id string) error {
	return r.mark(id, outboxStatusSent)
}

// MarkFailed фиксирует ошибку публикации.
func (r *OutboxRepository) MarkFailed(_ context.Context, id string) error {
	return r.mark(id, outboxStatusFailed)
}

// AllPending возвращает копию всех сообщений со статусом pending (используется в тестах).
func (r *OutboxRepository) AllPending() []domain.OutboxMessage {
	return r.pending()
}

func (r *OutboxRepository) mark(id, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, ok := r.records[id]
	if !ok {
		return domain.ErrOutboxPublish
	}
	record.status = status
	record.attempts++
	return nil
}

func (r *OutboxRepository) pending() []domain.OutboxMessage {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := make([]*outboxRecord, 0, len(r.records))
	for _, rec := range r.records {
		if rec.status == outboxStatusPending {
			records = append(records, rec)
		}
	}
	sort.Slice(records, func(i, j int) bool { return records[i].seq < records[j].seq })

	result := make([]domain.OutboxMessage, len(records))
	for i, rec := range records {
		result[i] = rec.msg
	}
	return result
}

var _ domain.OutboxRepository = (*OutboxRepository)(nil)
