package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
)

func TestTrackRecordsResultAndDuration(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewOrderMetricsWithRegisterer(reg)

	done := m.Track("create_order")
	if got := testutil.ToFloat64(m.inFlight); got != 1 {
		t.Fatalf("expected 1 in-flight operation, got %f", got)
	}
	done(nil)
	m.Track("create_order")(errors.New("boom"))

	if got := testutil.ToFloat64(m.operations.WithLabelValues("create_order", ResultSuccess)); got != 1 {
		t.Errorf("expected 1 success, got %f", got)
	}
	if got := testutil.ToFloat64(m.operations.WithLabelValues("create_order", ResultError)); got != 1 {
		t.Errorf("expected 1 error, got %f", got)
	}
	if got := testutil.ToFloat64(m.inFlight); got != 0 {
		t.Errorf("expected no in-flight operations, got %f", got)
	}

	metric := &dto.Metric{}
	observer := m.operationDuration.WithLabelValues("create_order").(prometheus.Histogram)
	if err := observer.Write(metric); err != nil {
		t.Fatalf("failed to write histogram: %v", err)
	}
	if metric.Histogram.GetSampleCount() != 2 {
		t.Errorf("expected 2 samples, got %d", metric.Histogram.GetSampleCount())
	}
}

func TestCountersRecord(t *testing.T) {
	m := NewOrderMetricsWithRegisterer(prometheus.NewRegistry())

	m.RecordUpstreamCall("catalog", nil)
	m.RecordUpstreamCall("catalog", errors.New("down"))
	m.RecordPriceFallback()
	m.RecordStockRestore(errors.New("locked"))
	m.RecordReceipt(nil)
	m.RecordOutboxEvent()

	if got := testutil.ToFloat64(m.upstreamCalls.WithLabelValues("catalog", ResultError)); got != 1 {
		t.Errorf("expected 1 failed catalog call, got %f", got)
	}
	if got := testutil.ToFloat64(m.priceFallbacks); got != 1 {
		t.Errorf("expected 1 price fallback, got %f", got)
	}
	if got := testutil.ToFloat64(m.stockRestores.WithLabelValues(ResultError)); got != 1 {
		t.Errorf("expected 1 failed stock restore, got %f", got)
	}
	if got := testutil.ToFloat64(m.receipts.WithLabelValues(ResultSuccess)); got != 1 {
		t.Errorf("expected 1 receipt, got %f", got)
	}
	if got := testutil.ToFloat64(m.outboxEnqueued); got != 1 {
		t.Errorf("expected 1 outbox event, got %f", got)
	}
}

func TestRegisterReusesExistingCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	first := NewOrderMetricsWithRegisterer(reg)
	second := NewOrderMetricsWithRegisterer(reg)

	first.RecordPriceFallback()
	if got := testutil.ToFloat64(second.priceFallbacks); got != 1 {
		t.Fatalf("expected shared counter, got %f", got)
	}
}

func TestNilMetricsAreNoop(t *testing.T) {
	var m *OrderMetrics
	m.Track("get_order")(nil)
	m.RecordUpstreamCall("identity", nil)
	m.RecordPriceFallback()
	m.RecordStockRestore(nil)
	m.RecordReceipt(nil)
	m.RecordOutboxEvent()
}
