package app

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/vladislavdragonenkov/restock/internal/version"
)

const serviceName = "restock-order-service"

// initTracing ставит глобальный TracerProvider с выбранным экспортёром.
// Возвращаемая функция сбрасывает буферы спанов при остановке.
func initTracing(ctx context.Context, cfg Config, logger *log.Entry) (func(context.Context) error, error) {
	var (
		exporter sdktrace.SpanExporter
		err      error
	)
	switch cfg.TracesExporter {
	case "", TracesExporterNone:
		return func(context.Context) error { return nil }, nil
	case TracesExporterStdout:
		exporter, err = stdouttrace.New(stdouttrace.WithPrettyPrint())
	case TracesExporterOTLP:
		var opts []otlptracehttp.Option
		if cfg.OTLPEndpoint != "" {
			opts = append(opts, otlptracehttp.WithEndpoint(cfg.OTLPEndpoint), otlptracehttp.WithInsecure())
		}
		exporter, err = otlptracehttp.New(ctx, opts...)
	default:
		return nil, fmt.Errorf("unsupported traces exporter %q", cfg.TracesExporter)
	}
	if err != nil {
		return nil, fmt.Errorf("create %s trace exporter: %w", cfg.TracesExporter, err)
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewSchemaless(
			attribute.String("service.name", serviceName),
			attribute.String("service.version", version.GetVersion()),
		)),
	)
	otel.SetTracerProvider(provider)

	logger.WithField("exporter", cfg.TracesExporter).Info("tracing enabled")
	return provider.Shutdown, nil
}
