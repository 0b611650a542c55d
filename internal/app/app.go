// Package app собирает зависимости сервиса и управляет его жизненным циклом.
package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	promgrpc "github.com/grpc-ecosystem/go-grpc-prometheus"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	healthcheck "github.com/vladislavdragonenkov/restock/internal/health"
	"github.com/vladislavdragonenkov/restock/internal/metrics"
	grpcsvc "github.com/vladislavdragonenkov/restock/internal/service/grpc"
	"github.com/vladislavdragonenkov/restock/internal/service/idempotency"
	"github.com/vladislavdragonenkov/restock/internal/service/orders"
	"github.com/vladislavdragonenkov/restock/internal/service/outbox"
	"github.com/vladislavdragonenkov/restock/internal/service/sales"
	"github.com/vladislavdragonenkov/restock/internal/service/tables"
	"github.com/vladislavdragonenkov/restock/internal/version"
	restockv1 "github.com/vladislavdragonenkov/restock/proto/restock/v1"
)

const shutdownTimeout = 5 * time.Second

// Run поднимает gRPC-сервер, HTTP-метрики и фоновые воркеры и блокируется
// до отмены ctx или падения gRPC-сервера.
func Run(ctx context.Context, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	logger := log.WithField("component", "app")

	shutdownTracing, err := initTracing(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			logger.WithError(err).Warn("failed to flush traces")
		}
	}()

	storage, err := initStorage(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if storage.closeFn == nil {
			return
		}
		if err := storage.closeFn(); err != nil {
			logger.WithError(err).Warn("failed to close storage")
		}
	}()

	upstreams, err := initCollaborators(cfg, logger)
	if err != nil {
		return err
	}
	defer upstreams.close(logger)

	orderMetrics := metrics.NewOrderMetrics()
	outboxMetrics := metrics.NewOutboxMetrics()
	events := outbox.NewEmitter(storage.outboxRepo, logger.WithField("component", "outbox-emitter"), orderMetrics)

	registry := tables.NewRegistry(storage.tables, events, orderMetrics, logger.WithField("component", "tables"))
	orchestrator := orders.NewOrchestrator(
		storage.orders,
		storage.tables,
		upstreams.catalog,
		upstreams.identity,
		orders.WithLogger(logger.WithField("component", "orders")),
		orders.WithMetrics(orderMetrics),
		orders.WithEvents(events),
		orders.WithRepriceConcurrency(cfg.RepriceConcurrency),
	)
	ledger := sales.NewLedger(storage.sales, upstreams.notifier, events, orderMetrics, logger.WithField("component", "sales"))

	orderService := grpcsvc.NewOrderService(registry, orchestrator, ledger,
		grpcsvc.WithLogger(logger.WithField("layer", "grpc")),
		grpcsvc.WithIdempotency(storage.idempotencyRepo, cfg.IdempotencyTTL),
	)

	publishers := initPublishers(cfg.KafkaBrokers, logger)
	defer closeKafkaProducer(publishers.producer, logger)

	workerOpts := []outbox.Option{
		outbox.WithLogger(logger.WithField("component", "outbox-worker")),
		outbox.WithMetrics(outboxMetrics),
		outbox.WithPollInterval(cfg.OutboxPollInterval),
		outbox.WithBatchSize(cfg.OutboxBatchSize),
		outbox.WithMaxAttempts(cfg.OutboxMaxAttempts),
		outbox.WithRetryBaseDelay(cfg.OutboxRetryDelay),
	}
	if publishers.dlq != nil {
		workerOpts = append(workerOpts, outbox.WithDLQPublisher(publishers.dlq))
	}
	outboxWorker := outbox.NewWorker(storage.outboxRepo, publishers.events, workerOpts...)
	cleanupWorker := idempotency.NewCleanupWorker(storage.idempotencyRepo,
		idempotency.WithLogger(logger.WithField("component", "idempotency-cleanup")),
		idempotency.WithInterval(cfg.IdempotencyCleanupInterval),
		idempotency.WithBatchSize(cfg.IdempotencyCleanupBatchSize),
		idempotency.WithMetrics(outboxMetrics),
	)

	workersCtx, stopWorkers := context.WithCancel(ctx)
	var workers sync.WaitGroup
	workers.Add(2)
	go func() {
		defer workers.Done()
		outboxWorker.Run(workersCtx)
	}()
	go func() {
		defer workers.Done()
		cleanupWorker.Run(workersCtx)
	}()
	// Воркеры останавливаются раньше закрытия хранилища и producer.
	defer func() {
		stopWorkers()
		workers.Wait()
	}()

	grpcMetrics := registerGRPCMetrics(logger)
	grpcServer := grpc.NewServer(grpc.ChainUnaryInterceptor(grpcMetrics.UnaryServerInterceptor()))
	restockv1.RegisterOrderServiceServer(grpcServer, orderService)
	grpcMetrics.InitializeMetrics(grpcServer)
	reflection.Register(grpcServer)

	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(restockv1.OrderService_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)

	healthHandler := healthcheck.NewHandler(version.GetVersion())
	if storage.storageChecker != nil {
		healthHandler.RegisterChecker("storage", storage.storageChecker)
	}
	healthHandler.RegisterChecker("outbox", healthcheck.NewOutboxChecker(storage.outboxRepo, cfg.OutboxMaxLag))

	metricsSrv := startMetricsServer(ctx, cfg.MetricsAddr, logger, healthHandler)
	defer shutdownHTTP(metricsSrv, logger)

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", cfg.GRPCAddr, err)
	}

	errCh := make(chan error, 1)
	go func() {
		logger.WithField("addr", lis.Addr().String()).Info("grpc server listening")
		errCh <- grpcServer.Serve(lis)
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received, stopping grpc server")
		healthServer.Shutdown()
		stopGRPC(grpcServer, logger)
		return ctx.Err()
	case err := <-errCh:
		healthServer.Shutdown()
		if errors.Is(err, grpc.ErrServerStopped) {
			return nil
		}
		return err
	}
}

// registerGRPCMetrics регистрирует метрики gRPC-сервера; при повторной регистрации
// переиспользует уже зарегистрированный коллектор.
func registerGRPCMetrics(logger *log.Entry) *promgrpc.ServerMetrics {
	grpcMetrics := promgrpc.NewServerMetrics()
	if err := prometheus.Register(grpcMetrics); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(*promgrpc.ServerMetrics); ok {
				return existing
			}
		}
		logger.WithError(err).Warn("failed to register grpc metrics")
	}
	return grpcMetrics
}

// stopGRPC дожидается завершения активных вызовов не дольше shutdownTimeout.
func stopGRPC(srv *grpc.Server, logger *log.Entry) {
	stopped := make(chan struct{})
	go func() {
		srv.GracefulStop()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-time.After(shutdownTimeout):
		logger.Warn("graceful stop timed out, forcing grpc server stop")
		srv.Stop()
	}
}

// startMetricsServer запускает HTTP-сервер с /metrics и health-эндпоинтами.
func startMetricsServer(ctx context.Context, addr string, logger *log.Entry, healthHandler *healthcheck.Handler) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/healthz", healthHandler)
	mux.HandleFunc("/livez", healthcheck.LivenessHandler)
	mux.HandleFunc("/readyz", healthHandler.ReadinessHandler)

	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		logger.WithField("addr", addr).Info("metrics server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Warn("metrics server failed")
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownHTTP(srv, logger)
	}()

	return srv
}

// shutdownHTTP аккуратно останавливает HTTP-сервер.
func shutdownHTTP(srv *http.Server, logger *log.Entry) {
	if srv == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.WithError(err).Warn("metrics shutdown with error")
	}
}
