package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// OutboxMetrics описывает публикацию событий из outbox и размер backlog.
type OutboxMetrics struct {
	attempts    *prometheus.CounterVec
	pending     prometheus.Gauge
	oldestAge   prometheus.Gauge
	cleanedKeys prometheus.Counter
}

func NewOutboxMetrics() *OutboxMetrics {
	return NewOutboxMetricsWithRegisterer(prometheus.DefaultRegisterer)
}

func NewOutboxMetricsWithRegisterer(registerer prometheus.Registerer) *OutboxMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	return &OutboxMetrics{
		attempts: register(registerer, "restock_outbox_publish_attempts_total", prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "restock_outbox_publish_attempts_total",
			Help: "Total number of outbox publish attempts grouped by result.",
		}, []string{"result"})),
		pending: register(registerer, "restock_outbox_pending_records", prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "restock_outbox_pending_records",
			Help: "Current number of pending records in transactional outbox.",
		})),
		oldestAge: register(registerer, "restock_outbox_oldest_pending_age_seconds", prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "restock_outbox_oldest_pending_age_seconds",
			Help: "Age in seconds of the oldest pending outbox record.",
		})),
		cleanedKeys: register(registerer, "restock_idempotency_keys_deleted_total", prometheus.NewCounter(prometheus.CounterOpts{
			Name: "restock_idempotency_keys_deleted_total",
			Help: "Expired idempotency keys removed by the cleanup worker.",
		})),
	}
}

// RecordAttempt учитывает попытку публикации: sent, retry_error, failed, dlq_failed.
func (m *OutboxMetrics) RecordAttempt(result string) {
	if m == nil {
		return
	}
	m.attempts.WithLabelValues(result).Inc()
}

// SetBacklog выставляет размер backlog и возраст самой старой записи.
func (m *OutboxMetrics) SetBacklog(pending int, oldest time.Time, now time.Time) {
	if m == nil {
		return
	}
	m.pending.Set(float64(pending))
	if pending == 0 || oldest.IsZero() {
		m.oldestAge.Set(0)
		return
	}
	age := now.Sub(oldest).Seconds()
	if age < 0 {
		age = 0
	}
	m.oldestAge.Set(age)
}

// RecordIdempotencyCleanup учитывает удалённые ключи идемпотентности.
func (m *OutboxMetrics) RecordIdempotencyCleanup(removed int) {
	if m == nil || removed <= 0 {
		return
	}
	m.cleanedKeys.Add(float64(removed))
}

// PendingGauge возвращает gauge размера backlog.
func (m *OutboxMetrics) PendingGauge() prometheus.Gauge {
	return m.pending
}
