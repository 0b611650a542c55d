package orders

import (
	"context"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/vladislavdragonenkov/restock/internal/domain"
)

// CreateOrder собирает новый заказ и сохраняет его одной записью.
func (o *orchestrator) CreateOrder(ctx context.Context, in OrderInput) (order domain.Order, err error) {
	ctx, finish := o.begin(ctx, opCreateOrder,
		attribute.Int64("user.id", in.UserID),
		attribute.String("table.name", in.TableName),
		attribute.Int("order.lines", len(in.Lines)),
	)
	defer finish(&err)

	assembled, err := o.assemble(ctx, domain.Order{}, in)
	if err != nil {
		return domain.Order{}, err
	}

	order, err = o.orders.Create(ctx, assembled)
	if err != nil {
		return domain.Order{}, fmt.Errorf("persist order: %w", err)
	}

	o.logger.WithFields(log.Fields{
		"order_id": order.ID,
		"user_id":  order.UserID,
		"table_id": order.TableID,
		"total":    order.TotalPrice,
	}).Info("order created")
	o.events.Emit(ctx, domain.AggregateTypeOrder, order.ID, domain.EventOrderCreated, orderPayload(order, 0))

	return order, nil
}

// UpdateOrder заменяет заказ целиком: стол, пользователя, e-mail и все позиции.
func (o *orchestrator) UpdateOrder(ctx context.Context, orderID int64, in OrderInput) (order domain.Order, err error) {
	ctx, finish := o.begin(ctx, opUpdateOrder,
		attribute.Int64("order.id", orderID),
		attribute.Int64("user.id", in.UserID),
		attribute.Int("order.lines", len(in.Lines)),
	)
	defer finish(&err)

	current, err := o.orders.Get(ctx, orderID)
	if err != nil {
		return domain.Order{}, err
	}

	assembled, err := o.assemble(ctx, current, in)
	if err != nil {
		return domain.Order{}, err
	}

	order, err = o.orders.Save(ctx, assembled)
	if err != nil {
		return domain.Order{}, fmt.Errorf("persist order %d: %w", orderID, err)
	}

	o.logger.WithFields(log.Fields{
		"order_id": order.ID,
		"version":  order.Version,
		"total":    order.TotalPrice,
	}).Info("order updated")
	o.events.Emit(ctx, domain.AggregateTypeOrder, order.ID, domain.EventOrderUpdated, orderPayload(order, 0))

	return order, nil
}

// DeleteOrderItem удаляет позицию и возвращает её количество на склад.
// Если каталог не принял новый остаток, позиция всё равно остаётся удалённой,
// итог заказа сохраняется, а вызывающему возвращается ErrUpstreamFailure.
func (o *orchestrator) DeleteOrderItem(ctx context.Context, orderID, productID int64) (err error) {
	ctx, finish := o.begin(ctx, opDeleteOrderItem,
		attribute.Int64("order.id", orderID),
		attribute.Int64("product.id", productID),
	)
	defer finish(&err)

	order, err := o.orders.Get(ctx, orderID)
	if err != nil {
		return err
	}

	product, err := o.resolveProduct(ctx, productID)
	if err != nil {
		return err
	}

	idx := order.ItemIndexByProduct(productID)
	if idx < 0 {
		return fmt.Errorf("%w: product %d in order %d", domain.ErrOrderItemNotFound, productID, orderID)
	}
	item := order.Items[idx]

	if err := o.orders.RemoveItem(ctx, order.ID, item.ID); err != nil {
		return fmt.Errorf("remove item %d from order %d: %w", item.ID, order.ID, err)
	}

	newStock := product.Stock + int64(item.Quantity)
	restoreErr := o.catalog.AdjustStock(ctx, product, newStock)
	o.metrics.RecordUpstreamCall(serviceCatalog, restoreErr)
	o.metrics.RecordStockRestore(restoreErr)
	if restoreErr != nil {
		o.logger.WithError(restoreErr).WithFields(log.Fields{
			"order_id":   order.ID,
			"product_id": productID,
			"new_stock":  newStock,
		}).Error("stock restore failed after item removal")
	}

	order.RemoveItemAt(idx)
	saved, err := o.orders.Save(ctx, order)
	if err != nil {
		return fmt.Errorf("persist order %d: %w", order.ID, err)
	}

	o.logger.WithFields(log.Fields{
		"order_id":   saved.ID,
		"product_id": productID,
		"quantity":   item.Quantity,
		"total":      saved.TotalPrice,
	}).Info("order item removed")
	o.events.Emit(ctx, domain.AggregateTypeOrder, saved.ID, domain.EventOrderItemRemoved, orderPayload(saved, productID))

	if restoreErr != nil {
		if !errors.Is(restoreErr, domain.ErrUpstreamFailure) {
			restoreErr = &domain.UpstreamError{Service: serviceCatalog, Status: "error", Err: restoreErr}
		}
		return fmt.Errorf("restore stock for product %d: %w", productID, restoreErr)
	}
	return nil
}

func orderPayload(order domain.Order, productID int64) domain.OrderEventPayload {
	return domain.OrderEventPayload{
		OrderID:    order.ID,
		UserID:     order.UserID,
		TableID:    order.TableID,
		TotalPrice: order.TotalPrice,
		ItemCount:  len(order.Items),
		ProductID:  productID,
		Email:      order.Email,
	}
}
