// Package outbox публикует события заказов, столов и продаж из transactional outbox.
package outbox

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/restock/internal/domain"
	"github.com/vladislavdragonenkov/restock/internal/metrics"
)

const (
	defaultPollInterval   = 1 * time.Second
	defaultBatchSize      = 100
	defaultMaxAttempts    = 3
	defaultRetryBaseDelay = 50 * time.Millisecond
	maxRetryDelay         = 30 * time.Second
)

// Результаты попыток публикации для метрик.
const (
	attemptSent       = "sent"
	attemptRetryError = "retry_error"
	attemptFailed     = "failed"
	attemptDLQFailed  = "dlq_failed"
)

type settings struct {
	logger         *log.Entry
	dlq            domain.OutboxPublisher
	metrics        *metrics.OutboxMetrics
	pollInterval   time.Duration
	batchSize      int
	maxAttempts    int
	retryBaseDelay time.Duration
}

// Option настраивает Worker.
type Option func(*settings)

// WithLogger задаёт logger для воркера.
func WithLogger(logger *log.Entry) Option {
	return func(s *settings) { s.logger = logger }
}

// WithDLQPublisher задаёт publisher для отправки в DLQ после исчерпания retry.
func WithDLQPublisher(publisher domain.OutboxPublisher) Option {
	return func(s *settings) { s.dlq = publisher }
}

// WithMetrics включает метрики публикации и backlog.
func WithMetrics(m *metrics.OutboxMetrics) Option {
	return func(s *settings) { s.metrics = m }
}

// WithPollInterval задаёт частоту опроса outbox.
func WithPollInterval(interval time.Duration) Option {
	return func(s *settings) { s.pollInterval = interval }
}

// WithBatchSize задаёт размер батча из outbox.
func WithBatchSize(batchSize int) Option {
	return func(s *settings) { s.batchSize = batchSize }
}

// WithMaxAttempts задаёт число попыток публикации перед failed/DLQ.
func WithMaxAttempts(maxAttempts int) Option {
	return func(s *settings) { s.maxAttempts = maxAttempts }
}

// WithRetryBaseDelay задаёт базовую задержку экспоненциального backoff.
func WithRetryBaseDelay(delay time.Duration) Option {
	return func(s *settings) { s.retryBaseDelay = delay }
}

// Worker публикует pending-сообщения из outbox в брокер.
type Worker struct {
	repo      domain.OutboxRepository
	publisher domain.OutboxPublisher
	settings
}

// NewWorker создаёт outbox worker.
func NewWorker(repo domain.OutboxRepository, publisher domain.OutboxPublisher, options ...Option) *Worker {
	s := settings{
		pollInterval:   defaultPollInterval,
		batchSize:      defaultBatchSize,
		maxAttempts:    defaultMaxAttempts,
		retryBaseDelay: defaultRetryBaseDelay,
	}
	for _, option := range options {
		option(&s)
	}

	if s.logger == nil {
		s.logger = log.WithField("component", "outbox-worker")
	}
	if s.pollInterval <= 0 {
		s.pollInterval = defaultPollInterval
	}
	if s.batchSize <= 0 {
		s.batchSize = defaultBatchSize
	}
	if s.maxAttempts <= 0 {
		s.maxAttempts = defaultMaxAttempts
	}
	if s.retryBaseDelay < 0 {
		s.retryBaseDelay = 0
	}

	return &Worker{repo: repo, publisher: publisher, settings: s}
}

// Run опрашивает outbox до отмены ctx.
func (w *Worker) Run(ctx context.Context) {
	if w.repo == nil || w.publisher == nil {
		w.logger.Warn("outbox worker is disabled: repo or publisher is nil")
		return
	}

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		w.ProcessOnce(ctx)
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// ProcessOnce выполняет один цикл: забирает батч и публикует его по порядку.
func (w *Worker) ProcessOnce(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	defer w.refreshBacklog(ctx)

	events, err := w.repo.PullPending(ctx, w.batchSize)
	if err != nil {
		w.logger.WithError(err).Warn("failed to pull pending outbox messages")
		return
	}

	for _, event := range events {
		if ctx.Err() != nil {
			return
		}
		w.deliver(ctx, event)
	}
}

func (w *Worker) deliver(ctx context.Context, event domain.OutboxMessage) {
	entry := w.logger.WithFields(log.Fields{
		"outbox_id":    event.ID,
		"event_type":   event.EventType,
		"aggregate_id": event.AggregateID,
	})

	if err := w.publishWithRetry(ctx, event); err != nil {
		if ctx.Err() != nil {
			// Сообщение остаётся pending и уйдёт в следующем запуске.
			return
		}
		entry.WithError(err).Error("outbox publish failed after retries")
		w.metrics.RecordAttempt(attemptFailed)

		if dlqErr := w.publishToDLQ(event, err); dlqErr != nil {
			entry.WithError(dlqErr).Warn("failed to publish to DLQ")
			w.metrics.RecordAttempt(attemptDLQFailed)
		}
		if markErr := w.repo.MarkFailed(ctx, event.ID); markErr != nil {
			entry.WithError(markErr).Warn("failed to mark outbox as failed")
		}
		return
	}

	if err := w.repo.MarkSent(ctx, event.ID); err != nil {
		entry.WithError(err).Warn("failed to mark outbox as sent")
	}
}

func (w *Worker) publishWithRetry(ctx context.Context, event domain.OutboxMessage) error {
	var lastErr error

	for attempt := 1; attempt <= w.maxAttempts; attempt++ {
		if lastErr = w.publisher.Publish(event); lastErr == nil {
			w.metrics.RecordAttempt(attemptSent)
			return nil
		}
		w.metrics.RecordAttempt(attemptRetryError)

		if attempt == w.maxAttempts {
			break
		}
		if delay := w.backoff(attempt); delay > 0 {
			timer := time.NewTimer(delay)
			select {
			case <-ctx.Done():
				timer.Stop()
				return ctx.Err()
			case <-timer.C:
			}
		}
	}

	return fmt.Errorf("%w: %d attempts: %v", domain.ErrOutboxPublish, w.maxAttempts, lastErr)
}

// backoff удваивает задержку на каждую попытку, не превышая maxRetryDelay.
func (w *Worker) backoff(attempt int) time.Duration {
	delay := w.retryBaseDelay
	for i := 1; i < attempt && delay > 0; i++ {
		delay *= 2
		if delay >= maxRetryDelay {
			return maxRetryDelay
		}
	}
	return delay
}

func (w *Worker) refreshBacklog(ctx context.Context) {
	if w.metrics == nil {
		return
	}
	stats, err := w.repo.Stats(ctx)
	if err != nil {
		w.logger.WithError(err).Warn("failed to collect outbox backlog stats")
		return
	}
	w.metrics.SetBacklog(stats.PendingCount, stats.OldestPendingAt, time.Now())
}

// dlqEnvelope: тело сообщения в DLQ.
type dlqEnvelope struct {
	OutboxID      string          `json:"outbox_id"`
	AggregateType string          `json:"aggregate_type"`
	AggregateID   string          `json:"aggregate_id"`
	EventType     string          `json:"event_type"`
	Payload       json.RawMessage `json:"payload"`
	PublishError  string          `json:"publish_error"`
	FailedAt      time.Time       `json:"failed_at"`
}

func (w *Worker) publishToDLQ(event domain.OutboxMessage, publishErr error) error {
	if w.dlq == nil {
		return nil
	}

	body, err := json.Marshal(dlqEnvelope{
		OutboxID:      event.ID,
		AggregateType: event.AggregateType,
		AggregateID:   event.AggregateID,
		EventType:     event.EventType,
		Payload:       json.RawMessage(event.Payload),
		PublishError:  publishErr.Error(),
		FailedAt:      time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("marshal dlq payload: %w", err)
	}

	dlqEvent := event
	dlqEvent.Payload = body
	if err := w.dlq.Publish(dlqEvent); err != nil {
		return fmt.Errorf("publish to dlq: %w", err)
	}
	return nil
}
