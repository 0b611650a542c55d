// Package catalog: адаптеры каталога товаров.
package catalog

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/vladislavdragonenkov/restock/internal/domain"
	restockv1 "github.com/vladislavdragonenkov/restock/proto/restock/v1"
)

const serviceName = "catalog"

// Client вызывает внешний ProductService по gRPC.
type Client struct {
	api     restockv1.ProductServiceClient
	timeout time.Duration
	logger  *log.Entry
}

// NewClient создаёт клиента каталога поверх готового соединения.
func NewClient(conn grpc.ClientConnInterface, timeout time.Duration, logger *log.Entry) *Client {
	if logger == nil {
		logger = log.WithField("component", "catalog-client")
	}
	return &Client{
		api:     restockv1.NewProductServiceClient(conn),
		timeout: timeout,
		logger:  logger,
	}
}

// FindOne возвращает снимок товара. NotFound и пустой ответ: ErrProductNotFound.
func (c *Client) FindOne(ctx context.Context, productID int64) (domain.Product, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	resp, err := c.api.FindOne(ctx, &restockv1.FindOneProductRequest{Id: productID})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return domain.Product{}, fmt.Errorf("%w: id %d", domain.ErrProductNotFound, productID)
		}
		c.logger.WithError(err).WithField("product_id", productID).Warn("catalog lookup failed")
		return domain.Product{}, &domain.UpstreamError{Service: serviceName, Status: status.Code(err).String(), Err: err}
	}
	if resp == nil || resp.Id == 0 {
		return domain.Product{}, fmt.Errorf("%w: id %d", domain.ErrProductNotFound, productID)
	}

	return domain.Product{
		ID:          resp.Id,
		Name:        resp.Name,
		SKU:         resp.Sku,
		Category:    resp.Category,
		Description: resp.Description,
		Price:       resp.Price,
		Stock:       resp.Stock,
	}, nil
}

// AdjustStock отправляет товар целиком с новым остатком: UpdateProduct
// перезаписывает все поля. Любая ошибка вызова: *domain.UpstreamError.
func (c *Client) AdjustStock(ctx context.Context, product domain.Product, newStock int64) error {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	_, err := c.api.UpdateProduct(ctx, &restockv1.UpdateProductRequest{
		Id: product.ID,
		Product: &restockv1.Product{
			Id:          product.ID,
			Name:        product.Name,
			Sku:         product.SKU,
			Category:    product.Category,
			Description: product.Description,
			Price:       product.Price,
			Stock:       newStock,
		},
	})
	if err != nil {
		c.logger.WithError(err).WithFields(log.Fields{
			"product_id": product.ID,
			"new_stock":  newStock,
		}).Warn("catalog stock update failed")
		return &domain.UpstreamError{Service: serviceName, Status: status.Code(err).String(), Err: err}
	}
	return nil
}

func (c *Client) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.timeout)
}

var _ domain.CatalogService = (*Client)(nil)
