package app

import (
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/restock/internal/domain"
	"github.com/vladislavdragonenkov/restock/internal/messaging/kafka"
	"github.com/vladislavdragonenkov/restock/internal/service/outbox"
)

// eventPublishers: куда outbox worker отправляет события и DLQ.
type eventPublishers struct {
	events   domain.OutboxPublisher
	dlq      domain.OutboxPublisher
	producer *kafka.Producer
}

// initPublishers подключает Kafka; без брокеров или при ошибке подключения
// события пишутся в лог.
func initPublishers(brokers []string, logger *log.Entry) eventPublishers {
	fallback := eventPublishers{events: outbox.NewLogPublisher(logger.WithField("component", "outbox-log-publisher"))}
	if len(brokers) == 0 {
		return fallback
	}

	producer, err := kafka.NewProducer(kafka.ProducerConfig{Brokers: brokers}, logger.WithField("component", "kafka-producer"))
	if err != nil {
		logger.WithError(err).Warn("failed to create kafka producer, continuing with log publisher")
		return fallback
	}

	logger.WithField("brokers", brokers).Info("kafka producer initialized")
	return eventPublishers{
		events:   kafka.NewOutboxPublisher(producer),
		dlq:      kafka.NewTopicPublisher(producer, kafka.TopicDeadLetterQueue),
		producer: producer,
	}
}

// closeKafkaProducer закрывает producer, если он был создан.
func closeKafkaProducer(producer *kafka.Producer, logger *log.Entry) {
	if producer == nil {
		return
	}
	if err := producer.Close(); err != nil {
		logger.WithError(err).Warn("failed to close kafka producer")
		return
	}
	logger.Info("kafka producer closed")
}
