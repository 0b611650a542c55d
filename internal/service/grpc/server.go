// Package grpcsvc реализует gRPC API OrderService поверх реестра столов,
// оркестратора заказов и журнала продаж.
package grpcsvc

import (
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/restock/internal/domain"
	"github.com/vladislavdragonenkov/restock/internal/service/orders"
	"github.com/vladislavdragonenkov/restock/internal/service/sales"
	"github.com/vladislavdragonenkov/restock/internal/service/tables"
	"github.com/vladislavdragonenkov/restock/internal/validation"
	restockv1 "github.com/vladislavdragonenkov/restock/proto/restock/v1"
)

// OrderService реализует транспортный слой: валидирует запросы, вызывает сервисы
// и переводит доменные ошибки в gRPC-статусы.
type OrderService struct {
	restockv1.UnimplementedOrderServiceServer

	tables    tables.Registry
	orders    orders.Orchestrator
	sales     sales.Ledger
	validator *validation.Validator

	idemRepo domain.IdempotencyRepository
	idemTTL  time.Duration
	logger   *log.Entry
}

// Option настраивает OrderService.
type Option func(*OrderService)

// WithLogger задаёт логгер сервиса.
func WithLogger(logger *log.Entry) Option {
	return func(s *OrderService) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithIdempotency включает обработку заголовка idempotency-key для CreateOrder и CreateSale.
func WithIdempotency(repo domain.IdempotencyRepository, ttl time.Duration) Option {
	return func(s *OrderService) {
		s.idemRepo = repo
		if ttl > 0 {
			s.idemTTL = ttl
		}
	}
}

// NewOrderService конструирует сервис с зависимостями.
func NewOrderService(registry tables.Registry, orchestrator orders.Orchestrator, ledger sales.Ledger, opts ...Option) *OrderService {
	s := &OrderService{
		tables:    registry,
		orders:    orchestrator,
		sales:     ledger,
		validator: validation.New(),
		idemTTL:   defaultIdempotencyTTL,
		logger:    log.New().WithField("component", "order-service"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ restockv1.OrderServiceServer = (*OrderService)(nil)
