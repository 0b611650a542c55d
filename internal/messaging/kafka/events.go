package kafka

import (
	"encoding/json"
	"time"

	"github.com/vladislavdragonenkov/restock/internal/domain"
)

// Topics для доменных событий сервиса.
const (
	TopicOrderEvents     = "restock.order.events"
	TopicTableEvents     = "restock.table.events"
	TopicSaleEvents      = "restock.sale.events"
	TopicDeadLetterQueue = "restock.dlq"
)

// Kafka headers, которые выставляются на каждое событие.
const (
	HeaderEventType     = "x-event-type"
	HeaderAggregateType = "x-aggregate-type"
	HeaderOutboxID      = "x-outbox-id"
)

// TopicFor выбирает topic по типу агрегата; неизвестные типы уходят в topic заказов.
func TopicFor(aggregateType string) string {
	switch aggregateType {
	case domain.AggregateTypeTable:
		return TopicTableEvents
	case domain.AggregateTypeSale:
		return TopicSaleEvents
	default:
		return TopicOrderEvents
	}
}

// Envelope описывает сообщение в Kafka: метаданные outbox плюс исходный payload.
type Envelope struct {
	ID            string          `json:"id"`
	AggregateType string          `json:"aggregate_type"`
	AggregateID   string          `json:"aggregate_id"`
	EventType     string          `json:"event_type"`
	Payload       json.RawMessage `json:"payload"`
	OccurredAt    time.Time       `json:"occurred_at"`
	PublishedAt   time.Time       `json:"published_at"`
}

// NewEnvelope упаковывает outbox-сообщение.
func NewEnvelope(msg domain.OutboxMessage, now time.Time) Envelope {
	payload := json.RawMessage(msg.Payload)
	if len(payload) == 0 {
		payload = json.RawMessage("null")
	}
	return Envelope{
		ID:            msg.ID,
		AggregateType: msg.AggregateType,
		AggregateID:   msg.AggregateID,
		EventType:     msg.EventType,
		Payload:       payload,
		OccurredAt:    msg.CreatedAt,
		PublishedAt:   now.UTC(),
	}
}
