package orders

import (
	"context"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"github.com/vladislavdragonenkov/restock/internal/domain"
)

// GetOrder возвращает заказ, переоценённый по текущему каталогу.
func (o *orchestrator) GetOrder(ctx context.Context, orderID int64) (details domain.OrderDetails, err error) {
	ctx, finish := o.begin(ctx, opGetOrder, attribute.Int64("order.id", orderID))
	defer finish(&err)

	order, err := o.orders.Get(ctx, orderID)
	if err != nil {
		return domain.OrderDetails{}, err
	}
	return o.describe(ctx, order)
}

// ListOrders возвращает все заказы в порядке создания.
func (o *orchestrator) ListOrders(ctx context.Context) (views []domain.OrderDetails, err error) {
	ctx, finish := o.begin(ctx, opListOrders)
	defer finish(&err)

	stored, err := o.orders.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	views = make([]domain.OrderDetails, 0, len(stored))
	for _, order := range stored {
		view, err := o.describe(ctx, order)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

// GetUser возвращает профиль пользователя или ErrInvalidReference.
func (o *orchestrator) GetUser(ctx context.Context, userID int64) (user domain.User, err error) {
	ctx, finish := o.begin(ctx, opGetUser, attribute.Int64("user.id", userID))
	defer finish(&err)

	return o.resolveUser(ctx, userID)
}

// describe подставляет стол и пользователя и переоценивает позиции.
// Недоступный пользователь даёт nil в User; недоступная цена оставляет сохранённый снимок позиции.
func (o *orchestrator) describe(ctx context.Context, order domain.Order) (domain.OrderDetails, error) {
	details := domain.OrderDetails{Order: order}
	items := details.Order.Items

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.repriceConcurrency)

	g.Go(func() error {
		user, err := o.identity.GetUser(gctx, order.UserID)
		o.metrics.RecordUpstreamCall(serviceIdentity, upstreamOnly(err))
		if err != nil {
			o.logger.WithError(err).WithFields(log.Fields{
				"order_id": order.ID,
				"user_id":  order.UserID,
			}).Warn("order owner unavailable, returning order without user")
			return nil
		}
		details.User = &user
		return nil
	})

	g.Go(func() error {
		table, err := o.tables.GetByID(gctx, order.TableID)
		switch {
		case err == nil:
			details.Table = &table
		case errors.Is(err, domain.ErrTableNotFound):
		default:
			return fmt.Errorf("load table %d for order %d: %w", order.TableID, order.ID, err)
		}
		return nil
	})

	for i := range items {
		g.Go(func() error {
			o.reprice(gctx, order.ID, &items[i])
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return domain.OrderDetails{}, err
	}

	details.Order.Recalculate()
	return details, nil
}

func (o *orchestrator) reprice(ctx context.Context, orderID int64, item *domain.OrderItem) {
	product, err := o.catalog.FindOne(ctx, item.ProductID)
	o.metrics.RecordUpstreamCall(serviceCatalog, upstreamOnly(err))
	if err != nil {
		o.metrics.RecordPriceFallback()
		o.logger.WithError(err).WithFields(log.Fields{
			"order_id":   orderID,
			"product_id": item.ProductID,
		}).Warn("catalog price unavailable, serving stored snapshot")
		return
	}
	item.ProductName = product.Name
	item.Reprice(product.Price)
}
