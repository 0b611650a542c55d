// Command dlq-reprocess перечитывает restock.dlq и возвращает события
// в topic их агрегата. По умолчанию работает в режиме dry-run.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/IBM/sarama"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/restock/internal/domain"
	"github.com/vladislavdragonenkov/restock/internal/messaging/kafka"
)

const (
	defaultReplayLimit = 100
	defaultIdleTimeout = 2 * time.Second

	envKafkaBrokers = "RESTOCK_KAFKA_BROKERS"
)

type config struct {
	brokers     []string
	sourceTopic string
	// targetTopic пуст: topic выбирается по типу агрегата.
	targetTopic string
	limit       int
	execute     bool
	fromNewest  bool
	idleTimeout time.Duration
}

// deadLetter: тело DLQ-сообщения, которое пишет outbox worker.
type deadLetter struct {
	OutboxID      string          `json:"outbox_id"`
	AggregateType string          `json:"aggregate_type"`
	AggregateID   string          `json:"aggregate_id"`
	EventType     string          `json:"event_type"`
	Payload       json.RawMessage `json:"payload"`
	PublishError  string          `json:"publish_error"`
}

type offsetClient interface {
	GetOffset(topic string, partition int32, time int64) (int64, error)
	Partitions(topic string) ([]int32, error)
	Close() error
}

type partitionConsumer interface {
	Messages() <-chan *sarama.ConsumerMessage
	Errors() <-chan *sarama.ConsumerError
	Close() error
}

type partitionConsumerSource interface {
	ConsumePartition(topic string, partition int32, offset int64) (partitionConsumer, error)
	Close() error
}

type saramaConsumerAdapter struct {
	consumer sarama.Consumer
}

func (a saramaConsumerAdapter) ConsumePartition(topic string, partition int32, offset int64) (partitionConsumer, error) {
	pc, err := a.consumer.ConsumePartition(topic, partition, offset)
	if err != nil {
		return nil, err
	}
	return pc, nil
}

func (a saramaConsumerAdapter) Close() error {
	if a.consumer == nil {
		return nil
	}
	return a.consumer.Close()
}

// replayDependencies: подключения к Kafka; publisher равен nil в режиме dry-run.
type replayDependencies struct {
	client    offsetClient
	consumer  partitionConsumerSource
	publisher domain.OutboxPublisher
	closers   []io.Closer
}

func (d replayDependencies) Close() {
	for i := len(d.closers) - 1; i >= 0; i-- {
		_ = d.closers[i].Close()
	}
}

var newReplayDependencies = func(cfg config) (replayDependencies, error) {
	consumerConfig := sarama.NewConfig()
	consumerConfig.Consumer.Return.Errors = true

	client, err := sarama.NewClient(cfg.brokers, consumerConfig)
	if err != nil {
		return replayDependencies{}, fmt.Errorf("create kafka client: %w", err)
	}
	deps := replayDependencies{client: client, closers: []io.Closer{client}}

	rawConsumer, err := sarama.NewConsumerFromClient(client)
	if err != nil {
		deps.Close()
		return replayDependencies{}, fmt.Errorf("create kafka consumer: %w", err)
	}
	consumer := saramaConsumerAdapter{consumer: rawConsumer}
	deps.consumer = consumer
	deps.closers = append(deps.closers, consumer)

	if !cfg.execute {
		return deps, nil
	}

	producer, err := kafka.NewProducer(kafka.ProducerConfig{Brokers: cfg.brokers, ClientID: "restock-dlq-reprocess"}, log.WithField("component", "dlq-producer"))
	if err != nil {
		deps.Close()
		return replayDependencies{}, err
	}
	deps.closers = append(deps.closers, producer)
	if cfg.targetTopic != "" {
		deps.publisher = kafka.NewTopicPublisher(producer, cfg.targetTopic)
	} else {
		deps.publisher = kafka.NewOutboxPublisher(producer)
	}
	return deps, nil
}

func main() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.SetLevel(log.InfoLevel)

	cfg, err := readConfig(os.Args[1:], os.LookupEnv)
	if err != nil {
		fail("%v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		fail("dlq replay failed: %v", err)
	}
}

func readConfig(args []string, lookup func(string) (string, bool)) (config, error) {
	var (
		brokersRaw string
		cfg        config
	)

	fs := flag.NewFlagSet("dlq-reprocess", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&brokersRaw, "brokers", "", "Kafka brokers as comma-separated list (fallback: "+envKafkaBrokers+")")
	fs.StringVar(&cfg.sourceTopic, "source-topic", kafka.TopicDeadLetterQueue, "DLQ source topic")
	fs.StringVar(&cfg.targetTopic, "target-topic", "", "override target topic; empty routes by aggregate type")
	fs.IntVar(&cfg.limit, "limit", defaultReplayLimit, "max number of messages to scan/replay")
	fs.BoolVar(&cfg.execute, "execute", false, "execute replay; default is dry-run")
	fs.BoolVar(&cfg.fromNewest, "from-newest", false, "scan latest messages first (bounded by limit)")
	fs.DurationVar(&cfg.idleTimeout, "idle-timeout", defaultIdleTimeout, "idle timeout per partition")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}

	if strings.TrimSpace(brokersRaw) == "" && lookup != nil {
		brokersRaw, _ = lookup(envKafkaBrokers)
	}

	cfg.brokers = parseBrokers(brokersRaw)
	cfg.sourceTopic = strings.TrimSpace(cfg.sourceTopic)
	cfg.targetTopic = strings.TrimSpace(cfg.targetTopic)
	switch {
	case len(cfg.brokers) == 0:
		return config{}, fmt.Errorf("kafka brokers are required (-brokers or %s)", envKafkaBrokers)
	case cfg.sourceTopic == "":
		return config{}, errors.New("source-topic is required")
	case cfg.limit <= 0:
		return config{}, errors.New("limit must be > 0")
	case cfg.idleTimeout <= 0:
		return config{}, errors.New("idle-timeout must be > 0")
	}
	return cfg, nil
}

func parseBrokers(raw string) []string {
	chunks := strings.Split(raw, ",")
	brokers := make([]string, 0, len(chunks))
	for _, chunk := range chunks {
		if broker := strings.TrimSpace(chunk); broker != "" {
			brokers = append(brokers, broker)
		}
	}
	return brokers
}

func run(ctx context.Context, cfg config) error {
	log.WithFields(log.Fields{
		"source_topic": cfg.sourceTopic,
		"target_topic": cfg.targetTopic,
		"limit":        cfg.limit,
		"execute":      cfg.execute,
		"from_newest":  cfg.fromNewest,
	}).Info("starting dlq replay")

	deps, err := newReplayDependencies(cfg)
	if err != nil {
		return err
	}
	defer deps.Close()

	_, err = runReplay(ctx, cfg, deps)
	return err
}

type replayStats struct {
	processed int
	replayed  int
	skipped   int
}

func (s *replayStats) add(other replayStats) {
	s.processed += other.processed
	s.replayed += other.replayed
	s.skipped += other.skipped
}

func runReplay(ctx context.Context, cfg config, deps replayDependencies) (replayStats, error) {
	var total replayStats
	if deps.client == nil || deps.consumer == nil {
		return total, errors.New("kafka client and consumer are required")
	}
	if cfg.execute && deps.publisher == nil {
		return total, errors.New("publisher is required in execute mode")
	}

	partitions, err := deps.client.Partitions(cfg.sourceTopic)
	if err != nil {
		return total, fmt.Errorf("get partitions for topic %s: %w", cfg.sourceTopic, err)
	}
	if len(partitions) == 0 {
		log.WithField("topic", cfg.sourceTopic).Warn("source topic has no partitions")
		return total, nil
	}
	sort.Slice(partitions, func(i, j int) bool { return partitions[i] < partitions[j] })

	for _, partition := range partitions {
		if total.processed >= cfg.limit {
			break
		}
		stats, err := processPartition(ctx, cfg, deps, partition, cfg.limit-total.processed)
		total.add(stats)
		if err != nil {
			return total, err
		}
	}

	mode := "dry-run"
	if cfg.execute {
		mode = "execute"
	}
	log.WithFields(log.Fields{
		"mode":      mode,
		"processed": total.processed,
		"replayed":  total.replayed,
		"skipped":   total.skipped,
	}).Info("dlq replay finished")
	return total, nil
}

func processPartition(ctx context.Context, cfg config, deps replayDependencies, partition int32, limit int) (replayStats, error) {
	var stats replayStats
	if limit <= 0 {
		return stats, nil
	}

	oldest, err := deps.client.GetOffset(cfg.sourceTopic, partition, sarama.OffsetOldest)
	if err != nil {
		return stats, fmt.Errorf("get oldest offset for partition %d: %w", partition, err)
	}
	newest, err := deps.client.GetOffset(cfg.sourceTopic, partition, sarama.OffsetNewest)
	if err != nil {
		return stats, fmt.Errorf("get newest offset for partition %d: %w", partition, err)
	}
	if newest <= oldest {
		return stats, nil
	}

	startOffset := oldest
	if cfg.fromNewest {
		startOffset = max(newest-int64(limit), oldest)
	}

	pc, err := deps.consumer.ConsumePartition(cfg.sourceTopic, partition, startOffset)
	if err != nil {
		return stats, fmt.Errorf("consume partition %d: %w", partition, err)
	}
	defer func() { _ = pc.Close() }()

	idleTimer := time.NewTimer(cfg.idleTimeout)
	defer idleTimer.Stop()

	for stats.processed < limit {
		select {
		case <-ctx.Done():
			return stats, ctx.Err()
		case err := <-pc.Errors():
			if err != nil {
				return stats, fmt.Errorf("partition %d consumer error: %w", partition, err)
			}
		case msg, ok := <-pc.Messages():
			if !ok || msg == nil || msg.Offset >= newest {
				return stats, nil
			}
			idleTimer.Reset(cfg.idleTimeout)
			stats.processed++

			event, ok, err := extractReplayMessage(msg)
			if err != nil || !ok {
				stats.skipped++
				entry := log.WithFields(log.Fields{"partition": msg.Partition, "offset": msg.Offset})
				if err != nil {
					entry.WithError(err).Warn("skip unsupported dlq message")
				}
				continue
			}

			target := cfg.targetTopic
			if target == "" {
				target = kafka.TopicFor(event.AggregateType)
			}
			if cfg.execute {
				if err := deps.publisher.Publish(event); err != nil {
					return stats, fmt.Errorf("publish replay message %s: %w", event.ID, err)
				}
			} else {
				log.WithFields(log.Fields{
					"partition":    msg.Partition,
					"offset":       msg.Offset,
					"target_topic": target,
					"outbox_id":    event.ID,
					"event_type":   event.EventType,
				}).Info("dlq replay candidate")
			}
			stats.replayed++

			if msg.Offset+1 >= newest {
				return stats, nil
			}
		case <-idleTimer.C:
			return stats, nil
		}
	}
	return stats, nil
}

// extractReplayMessage восстанавливает исходное outbox-событие из DLQ-сообщения.
// ok=false означает, что сообщение не похоже на DLQ-запись outbox.
func extractReplayMessage(msg *sarama.ConsumerMessage) (domain.OutboxMessage, bool, error) {
	var envelope kafka.Envelope
	if err := json.Unmarshal(msg.Value, &envelope); err != nil {
		return domain.OutboxMessage{}, false, nil
	}
	if len(envelope.Payload) == 0 || string(envelope.Payload) == "null" {
		return domain.OutboxMessage{}, false, nil
	}

	var dl deadLetter
	if err := json.Unmarshal(envelope.Payload, &dl); err != nil {
		return domain.OutboxMessage{}, false, fmt.Errorf("decode dead letter: %w", err)
	}
	if len(dl.Payload) == 0 {
		return domain.OutboxMessage{}, false, errors.New("dead letter does not contain original event payload")
	}

	return domain.OutboxMessage{
		ID:            firstNonEmpty(dl.OutboxID, envelope.ID),
		AggregateType: firstNonEmpty(dl.AggregateType, envelope.AggregateType),
		AggregateID:   firstNonEmpty(dl.AggregateID, envelope.AggregateID),
		EventType:     firstNonEmpty(dl.EventType, envelope.EventType),
		Payload:       []byte(dl.Payload),
		CreatedAt:     envelope.OccurredAt,
	}, true, nil
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}

func fail(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
