package orders

import (
	"context"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/restock/internal/domain"
)

const (
	serviceIdentity = "identity"
	serviceCatalog  = "catalog"
)

// resolveUser подтверждает, что пользователь существует. Любой отказ сервиса
// пользователей означает невалидную ссылку.
func (o *orchestrator) resolveUser(ctx context.Context, userID int64) (domain.User, error) {
	user, err := o.identity.GetUser(ctx, userID)
	o.metrics.RecordUpstreamCall(serviceIdentity, upstreamOnly(err))
	if err != nil {
		o.logger.WithError(err).WithField("user_id", userID).Warn("user resolution failed")
		return domain.User{}, fmt.Errorf("%w: user with id %d not found", domain.ErrInvalidReference, userID)
	}
	return user, nil
}

func (o *orchestrator) resolveTable(ctx context.Context, name string) (domain.Table, error) {
	table, err := o.tables.GetByName(ctx, name)
	if errors.Is(err, domain.ErrTableNotFound) {
		return domain.Table{}, fmt.Errorf("%w: table %q not found", domain.ErrInvalidReference, name)
	}
	if err != nil {
		return domain.Table{}, fmt.Errorf("load table %q: %w", name, err)
	}
	return table, nil
}

func (o *orchestrator) resolveProduct(ctx context.Context, productID int64) (domain.Product, error) {
	product, err := o.catalog.FindOne(ctx, productID)
	o.metrics.RecordUpstreamCall(serviceCatalog, upstreamOnly(err))
	if err != nil {
		o.logger.WithError(err).WithField("product_id", productID).Warn("product resolution failed")
		return domain.Product{}, fmt.Errorf("%w: product with id %d not found", domain.ErrInvalidReference, productID)
	}
	return product, nil
}

// assemble проверяет все ссылки по порядку и собирает заказ поверх base.
// Ничего не пишет: первая же неудача прерывает сборку.
func (o *orchestrator) assemble(ctx context.Context, base domain.Order, in OrderInput) (domain.Order, error) {
	if _, err := o.resolveUser(ctx, in.UserID); err != nil {
		return domain.Order{}, err
	}

	table, err := o.resolveTable(ctx, in.TableName)
	if err != nil {
		return domain.Order{}, err
	}

	items := make([]domain.OrderItem, 0, len(in.Lines))
	for _, line := range in.Lines {
		product, err := o.resolveProduct(ctx, line.ProductID)
		if err != nil {
			return domain.Order{}, err
		}
		items = append(items, domain.NewOrderItem(line, product))
	}

	order := base
	order.UserID = in.UserID
	order.TableID = table.ID
	order.Email = in.Email
	order.Items = items
	order.Recalculate()

	if errs := order.ValidateInvariants(); len(errs) > 0 {
		return domain.Order{}, fmt.Errorf("%w: order invariants violated: %w", domain.ErrInvalidInput, errors.Join(errs...))
	}

	o.logger.WithFields(log.Fields{
		"user_id":  order.UserID,
		"table_id": order.TableID,
		"items":    len(order.Items),
		"total":    order.TotalPrice,
	}).Debug("order assembled")

	return order, nil
}

// upstreamOnly оставляет только сбои внешнего сервиса: "не найдено" ответом считается успешным.
func upstreamOnly(err error) error {
	if errors.Is(err, domain.ErrUpstreamFailure) {
		return err
	}
	return nil
}
