package metrics

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Результаты операций для label result.
const (
	ResultSuccess = "success"
	ResultError   = "error"
)

// OrderMetrics содержит метрики операций со столами, заказами и продажами.
// Все методы допускают nil-получатель.
type OrderMetrics struct {
	operations        *prometheus.CounterVec
	operationDuration *prometheus.HistogramVec
	inFlight          prometheus.Gauge

	upstreamCalls  *prometheus.CounterVec
	priceFallbacks prometheus.Counter
	stockRestores  *prometheus.CounterVec
	receipts       *prometheus.CounterVec
	outboxEnqueued prometheus.Counter
}

// NewOrderMetrics создаёт метрики в DefaultRegisterer.
func NewOrderMetrics() *OrderMetrics {
	return NewOrderMetricsWithRegisterer(prometheus.DefaultRegisterer)
}

// NewOrderMetricsWithRegisterer создаёт метрики в указанном registerer;
// повторная регистрация переиспользует уже зарегистрированные коллекторы.
func NewOrderMetricsWithRegisterer(registerer prometheus.Registerer) *OrderMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &OrderMetrics{
		operations: register(registerer, "restock_operations_total", prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "restock_operations_total",
			Help: "Total number of order service operations by result",
		}, []string{"operation", "result"})),
		operationDuration: register(registerer, "restock_operation_duration_seconds", prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "restock_operation_duration_seconds",
			Help:    "Duration of order service operations in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0},
		}, []string{"operation"})),
		inFlight: register(registerer, "restock_operations_in_flight", prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "restock_operations_in_flight",
			Help: "Number of order service operations currently running",
		})),
		upstreamCalls: register(registerer, "restock_upstream_calls_total", prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "restock_upstream_calls_total",
			Help: "Calls to catalog and identity services by result",
		}, []string{"service", "result"})),
		priceFallbacks: register(registerer, "restock_price_fallbacks_total", prometheus.NewCounter(prometheus.CounterOpts{
			Name: "restock_price_fallbacks_total",
			Help: "Order items served with the stored price because the catalog lookup failed",
		})),
		stockRestores: register(registerer, "restock_stock_restores_total", prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "restock_stock_restores_total",
			Help: "Stock restorations after order item removal by result",
		}, []string{"result"})),
		receipts: register(registerer, "restock_receipts_total", prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "restock_receipts_total",
			Help: "Sale receipts delivered by result",
		}, []string{"result"})),
		outboxEnqueued: register(registerer, "restock_outbox_enqueued_total", prometheus.NewCounter(prometheus.CounterOpts{
			Name: "restock_outbox_enqueued_total",
			Help: "Domain events written to the outbox",
		})),
	}
}

func register[T prometheus.Collector](registerer prometheus.Registerer, name string, collector T) T {
	if err := registerer.Register(collector); err != nil {
		var alreadyRegistered prometheus.AlreadyRegisteredError
		if errors.As(err, &alreadyRegistered) {
			existing, ok := alreadyRegistered.ExistingCollector.(T)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", name))
			}
			return existing
		}
		panic(fmt.Sprintf("register collector %q: %v", name, err))
	}
	return collector
}

// Track отмечает начало операции и возвращает функцию для её завершения.
func (m *OrderMetrics) Track(operation string) func(err error) {
	if m == nil {
		return func(error) {}
	}
	start := time.Now()
	m.inFlight.Inc()
	return func(err error) {
		m.inFlight.Dec()
		m.operationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
		m.operations.WithLabelValues(operation, resultOf(err)).Inc()
	}
}

// RecordUpstreamCall учитывает вызов внешнего сервиса.
func (m *OrderMetrics) RecordUpstreamCall(service string, err error) {
	if m == nil {
		return
	}
	m.upstreamCalls.WithLabelValues(service, resultOf(err)).Inc()
}

// RecordPriceFallback учитывает позицию, отданную по сохранённой цене.
func (m *OrderMetrics) RecordPriceFallback() {
	if m == nil {
		return
	}
	m.priceFallbacks.Inc()
}

// RecordStockRestore учитывает возврат остатка на склад.
func (m *OrderMetrics) RecordStockRestore(err error) {
	if m == nil {
		return
	}
	m.stockRestores.WithLabelValues(resultOf(err)).Inc()
}

// RecordReceipt учитывает отправку чека.
func (m *OrderMetrics) RecordReceipt(err error) {
	if m == nil {
		return
	}
	m.receipts.WithLabelValues(resultOf(err)).Inc()
}

// RecordOutboxEvent увеличивает счётчик событий outbox.
func (m *OrderMetrics) RecordOutboxEvent() {
	if m == nil {
		return
	}
	m.outboxEnqueued.Inc()
}

func resultOf(err error) string {
	if err != nil {
		return ResultError
	}
	return ResultSuccess
}
