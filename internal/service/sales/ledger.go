// Package sales записывает закрытые чеки и отправляет клиенту квитанцию.
package sales

import (
	"context"
	"errors"
	"fmt"

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
	tracerName = "github.com/vladislavdragonenkov/restock/internal/service/sales"

	opCreateSale      = "create_sale"
	opListSales       = "list_sales"
	opListSalesByUser = "list_sales_by_user"
	opListSalesByDate = "list_sales_by_date"
)

// SaleInput: значения продажи в том виде, в каком их прислал клиент.
type SaleInput struct {
	UserName   string
	TableName  string
	Date       string
	Tip        int64
	TotalPrice int64
	Items      []domain.OrderItem
	// Email: адрес для квитанции; пустой адрес отключает отправку.
	Email string
}

// Ledger: журнал продаж.
type Ledger interface {
	// CreateSale отправляет квитанцию и сохраняет продажу. Ошибка отправки не мешает записи.
	CreateSale(ctx context.Context, in SaleInput) (domain.Sale, error)
	ListSales(ctx context.Context) ([]domain.Sale, error)
	// ListSalesByUser ищет продажи по подстроке имени без учёта регистра.
	ListSalesByUser(ctx context.Context, substr string) ([]domain.Sale, error)
	// ListSalesByDate ищет продажи по подстроке даты без учёта регистра.
	ListSalesByDate(ctx context.Context, substr string) ([]domain.Sale, error)
}

type ledger struct {
	repo     domain.SaleRepository
	notifier domain.Notifier
	events   *outbox.Emitter
	metrics  *metrics.OrderMetrics
	tracer   trace.Tracer
	logger   *log.Entry
}

// NewLedger создаёт журнал продаж. events и m могут быть nil.
func NewLedger(repo domain.SaleRepository, notifier domain.Notifier, events *outbox.Emitter, m *metrics.OrderMetrics, logger *log.Entry) Ledger {
	if logger == nil {
		logger = log.New().WithField("component", "sales")
	}
	return &ledger{
		repo:     repo,
		notifier: notifier,
		events:   events,
		metrics:  m,
		tracer:   otel.Tracer(tracerName),
		logger:   logger,
	}
}

func (l *ledger) CreateSale(ctx context.Context, in SaleInput) (sale domain.Sale, err error) {
	ctx, span := l.tracer.Start(ctx, "sales."+opCreateSale, trace.WithAttributes(
		attribute.String("sale.table", in.TableName),
		attribute.Int("sale.items", len(in.Items)),
	))
	done := l.metrics.Track(opCreateSale)
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		done(err)
		span.End()
	}()

	record := domain.Sale{
		UserName:   in.UserName,
		TableName:  in.TableName,
		Date:       in.Date,
		Tip:        in.Tip,
		TotalPrice: in.TotalPrice,
		Items:      append([]domain.OrderItem(nil), in.Items...),
	}
	if errs := record.Validate(); len(errs) > 0 {
		return domain.Sale{}, fmt.Errorf("%w: %w", domain.ErrInvalidInput, errors.Join(errs...))
	}

	l.sendReceipt(ctx, in.Email, record)

	sale, err = l.repo.Create(ctx, record)
	if err != nil {
		return domain.Sale{}, fmt.Errorf("persist sale: %w", err)
	}

	l.logger.WithFields(log.Fields{
		"sale_id":    sale.ID,
		"user_name":  sale.UserName,
		"table_name": sale.TableName,
		"total":      sale.TotalPrice,
	}).Info("sale recorded")
	l.events.Emit(ctx, domain.AggregateTypeSale, sale.ID, domain.EventSaleRecorded, domain.SaleEventPayload{
		SaleID:     sale.ID,
		UserName:   sale.UserName,
		TableName:  sale.TableName,
		Date:       sale.Date,
		Tip:        sale.Tip,
		TotalPrice: sale.TotalPrice,
	})

	return sale, nil
}

// sendReceipt рендерит и отправляет квитанцию. Ошибки только логируются.
func (l *ledger) sendReceipt(ctx context.Context, to string, sale domain.Sale) {
	fields := log.Fields{"table_name": sale.TableName, "email": to}
	if to == "" || l.notifier == nil {
		l.logger.WithFields(fields).Debug("receipt skipped: no recipient")
		return
	}

	body, err := RenderReceipt(sale)
	if err == nil {
		err = l.notifier.Send(ctx, to, receiptSubject, body)
	}
	l.metrics.RecordReceipt(err)
	if err != nil {
		l.logger.WithError(err).WithFields(fields).Warn("receipt delivery failed")
		return
	}
	l.logger.WithFields(fields).Debug("receipt sent")
}

func (l *ledger) ListSales(ctx context.Context) (sales []domain.Sale, err error) {
	done := l.metrics.Track(opListSales)
	defer func() { done(err) }()

	sales, err = l.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	return sales, nil
}

func (l *ledger) ListSalesByUser(ctx context.Context, substr string) (sales []domain.Sale, err error) {
	done := l.metrics.Track(opListSalesByUser)
	defer func() { done(err) }()

	sales, err = l.repo.FindByUserName(ctx, substr)
	if err != nil {
		return nil, fmt.Errorf("find sales by user %q: %w", substr, err)
	}
	return sales, nil
}

func (l *ledger) ListSalesByDate(ctx context.Context, substr string) (sales []domain.Sale, err error) {
	done := l.metrics.Track(opListSalesByDate)
	defer func() { done(err) }()

	sales, err = l.repo.FindByDate(ctx, substr)
	if err != nil {
		return nil, fmt.Errorf("find sales by date %q: %w", substr, err)
	}
	return sales, nil
}
