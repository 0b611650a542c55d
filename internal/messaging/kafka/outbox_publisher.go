package kafka

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/vladislavdragonenkov/restock/internal/domain"
)

var errPublisherNotInitialized = errors.New("kafka outbox publisher is not initialized")

// OutboxPublisher публикует outbox-сообщения в Kafka.
// Пустой topic означает маршрутизацию по типу агрегата.
type OutboxPublisher struct {
	producer *Producer
	topic    string
	now      func() time.Time
}

// NewOutboxPublisher создаёт publisher, раскладывающий события по topic агрегата.
func NewOutboxPublisher(producer *Producer) *OutboxPublisher {
	return &OutboxPublisher{producer: producer, now: time.Now}
}

// NewTopicPublisher создаёт publisher с фиксированным topic, например для DLQ.
func NewTopicPublisher(producer *Producer, topic string) *OutboxPublisher {
	return &OutboxPublisher{producer: producer, topic: topic, now: time.Now}
}

// Publish отправляет событие; ключом служит идентификатор агрегата,
// поэтому события одного заказа попадают в одну партицию.
func (p *OutboxPublisher) Publish(msg domain.OutboxMessage) error {
	if p == nil || p.producer == nil {
		return errPublisherNotInitialized
	}

	topic := p.topic
	if topic == "" {
		topic = TopicFor(msg.AggregateType)
	}
	key := msg.AggregateID
	if key == "" {
		key = msg.ID
	}

	body, err := json.Marshal(NewEnvelope(msg, p.now()))
	if err != nil {
		return fmt.Errorf("marshal envelope: %w", err)
	}

	return p.producer.Send(topic, key, body, map[string]string{
		HeaderEventType:     msg.EventType,
		HeaderAggregateType: msg.AggregateType,
		HeaderOutboxID:      msg.ID,
	})
}

var _ domain.OutboxPublisher = (*OutboxPublisher)(nil)
