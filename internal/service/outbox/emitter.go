package outbox

import (
	"context"
	"encoding/json"
	"strconv"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/restock/internal/domain"
	"github.com/vladislavdragonenkov/restock/internal/metrics"
)

// Emitter кладёт доменные события в outbox после успешной записи.
// Ошибки постановки в очередь только логируются: запрос клиента от них не падает.
// Нулевой *Emitter ничего не делает.
type Emitter struct {
	repo    domain.OutboxRepository
	logger  *log.Entry
	metrics *metrics.OrderMetrics
}

// NewEmitter создаёт Emitter. repo == nil отключает события.
func NewEmitter(repo domain.OutboxRepository, logger *log.Entry, m *metrics.OrderMetrics) *Emitter {
	if repo == nil {
		return nil
	}
	if logger == nil {
		logger = log.New().WithField("component", "outbox-emitter")
	}
	return &Emitter{repo: repo, logger: logger, metrics: m}
}

// Emit сериализует payload и сохраняет событие.
func (e *Emitter) Emit(ctx context.Context, aggregateType string, aggregateID int64, eventType string, payload any) {
	if e == nil {
		return
	}

	fields := log.Fields{
		"aggregate_type": aggregateType,
		"aggregate_id":   aggregateID,
		"event_type":     eventType,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		e.logger.WithError(err).WithFields(fields).Error("failed to encode outbox payload")
		return
	}

	msg, err := e.repo.Enqueue(ctx, domain.OutboxMessage{
		AggregateType: aggregateType,
		AggregateID:   strconv.FormatInt(aggregateID, 10),
		EventType:     eventType,
		Payload:       body,
	})
	if err != nil {
		e.logger.WithError(err).WithFields(fields).Error("failed to enqueue outbox message")
		return
	}

	e.metrics.RecordOutboxEvent()
	e.logger.WithFields(fields).WithField("message_id", msg.ID).Debug("outbox message enqueued")
}
