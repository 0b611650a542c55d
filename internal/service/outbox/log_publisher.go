package outbox

import (
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/restock/internal/domain"
)

// LogPublisher пишет события в лог. Используется, когда брокер не настроен,
// чтобы outbox не копил неопубликованные сообщения.
type LogPublisher struct {
	logger *log.Entry
}

// NewLogPublisher создаёт publisher, пишущий в logger.
func NewLogPublisher(logger *log.Entry) *LogPublisher {
	if logger == nil {
		logger = log.WithField("component", "outbox-log-publisher")
	}
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(msg domain.OutboxMessage) error {
	p.logger.WithFields(log.Fields{
		"outbox_id":      msg.ID,
		"aggregate_type": msg.AggregateType,
		"aggregate_id":   msg.AggregateID,
		"event_type":     msg.EventType,
	}).Info("domain event")
	return nil
}

var _ domain.OutboxPublisher = (*LogPublisher)(nil)
