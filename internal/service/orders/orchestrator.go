// Package orders собирает и изменяет заказы, сверяясь с каталогом, сервисом
// пользователей и реестром столов.
package orders

import (
	"context"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vladislavdragonenkov/restock/internal/domain"
	"github.com/vladislavdragonenkov/restock/internal/metrics"
	"github.com/vladislavdragonenkov/restock/internal/service/outbox"
)

const (
	tracerName = "github.com/vladislavdragonenkov/restock/internal/service/orders"

	defaultRepriceConcurrency = 8
)

// Имена операций для метрик и спанов.
const (
	opCreateOrder     = "create_order"
	opUpdateOrder     = "update_order"
	opGetOrder        = "get_order"
	opListOrders      = "list_orders"
	opDeleteOrderItem = "delete_order_item"
	opGetUser         = "get_user"
)

// OrderInput: данные для создания или полной замены заказа.
type OrderInput struct {
	UserID    int64
	TableName string
	Email     string
	Lines     []domain.LineRequest
}

// Orchestrator описывает операции над заказами.
type Orchestrator interface {
	// CreateOrder проверяет пользователя, стол и все товары и только потом сохраняет заказ.
	CreateOrder(ctx context.Context, in OrderInput) (domain.Order, error)
	// UpdateOrder полностью заменяет стол, пользователя, e-mail и позиции заказа.
	UpdateOrder(ctx context.Context, orderID int64, in OrderInput) (domain.Order, error)
	// GetOrder возвращает заказ с позициями, переоценёнными по текущему каталогу.
	GetOrder(ctx context.Context, orderID int64) (domain.OrderDetails, error)
	// ListOrders возвращает все заказы, переоценённые так же, как в GetOrder.
	ListOrders(ctx context.Context) ([]domain.OrderDetails, error)
	// DeleteOrderItem удаляет позицию с товаром productID и возвращает её количество на склад.
	DeleteOrderItem(ctx context.Context, orderID, productID int64) error
	// GetUser проксирует запрос в сервис пользователей.
	GetUser(ctx context.Context, userID int64) (domain.User, error)
}

type settings struct {
	logger             *log.Entry
	metrics            *metrics.OrderMetrics
	events             *outbox.Emitter
	tracer             trace.Tracer
	repriceConcurrency int
}

// Option настраивает оркестратор.
type Option func(*settings)

// WithLogger задаёт logger.
func WithLogger(logger *log.Entry) Option {
	return func(s *settings) { s.logger = logger }
}

// WithMetrics включает метрики операций.
func WithMetrics(m *metrics.OrderMetrics) Option {
	return func(s *settings) { s.metrics = m }
}

// WithEvents включает публикацию доменных событий через outbox.
func WithEvents(e *outbox.Emitter) Option {
	return func(s *settings) { s.events = e }
}

// WithTracer задаёт tracer; по умолчанию берётся глобальный провайдер otel.
func WithTracer(t trace.Tracer) Option {
	return func(s *settings) { s.tracer = t }
}

// WithRepriceConcurrency ограничивает число одновременных запросов в каталог при чтении.
func WithRepriceConcurrency(n int) Option {
	return func(s *settings) {
		if n > 0 {
			s.repriceConcurrency = n
		}
	}
}

type orchestrator struct {
	settings

	orders   domain.OrderRepository
	tables   domain.TableRepository
	catalog  domain.CatalogService
	identity domain.IdentityService
}

// NewOrchestrator создаёт оркестратор заказов.
func NewOrchestrator(
	orders domain.OrderRepository,
	tables domain.TableRepository,
	catalog domain.CatalogService,
	identity domain.IdentityService,
	opts ...Option,
) Orchestrator {
	s := settings{repriceConcurrency: defaultRepriceConcurrency}
	for _, opt := range opts {
		opt(&s)
	}
	if s.logger == nil {
		s.logger = log.New().WithField("component", "orders")
	}
	if s.tracer == nil {
		s.tracer = otel.Tracer(tracerName)
	}

	return &orchestrator{
		settings: s,
		orders:   orders,
		tables:   tables,
		catalog:  catalog,
		identity: identity,
	}
}

// begin открывает спан и замер операции. Возвращённую функцию вызывают через defer
// с указателем на именованную ошибку.
func (o *orchestrator) begin(ctx context.Context, op string, attrs ...attribute.KeyValue) (context.Context, func(*error)) {
	ctx, span := o.tracer.Start(ctx, "orders."+op, trace.WithAttributes(attrs...))
	done := o.metrics.Track(op)

	return ctx, func(errp *error) {
		err := *errp
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			span.SetAttributes(attribute.String("error.kind", string(domain.KindOf(err))))
		}
		done(err)
		span.End()
	}
}

var _ Orchestrator = (*orchestrator)(nil)
