package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/vladislavdragonenkov/restock/internal/domain"
)

// saleRepositoryInMemory хранит продажи в порядке записи.
type saleRepositoryInMemory struct {
	mu         sync.RWMutex
	nextID     int64
	nextItemID int64
	sales      []domain.Sale
}

// NewSaleRepository создаёт in-memory журнал продаж.
func NewSaleRepository() domain.SaleRepository {
	return &saleRepositoryInMemory{}
}

func (r *saleRepositoryInMemory) Create(_ context.Context, sale domain.Sale) (domain.Sale, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	sale.ID = r.nextID
	sale.CreatedAt = time.Now().UTC()
	items := make([]domain.OrderItem, len(sale.Items))
	for i, item := range sale.Items {
		r.nextItemID++
		item.ID = r.nextItemID
		items[i] = item
	}
	sale.Items = items

	r.sales = append(r.sales, cloneSale(sale))
	return cloneSale(sale), nil
}

func (r *saleRepositoryInMemory) List(_ context.Context) ([]domain.Sale, error) {
	return r.filter(func(domain.Sale) bool { return true }), nil
}

// FindByUserName ищет продажи по подстроке имени без учёта регистра.
func (r *saleRepositoryInMemory) FindByUserName(_ context.Context, substr string) ([]domain.Sale, error) {
	return r.filter(func(s domain.Sale) bool { return containsFold(s.UserName, substr) }), nil
}

// FindByDate ищет продажи по подстроке даты без учёта регистра.
func (r *saleRepositoryInMemory) FindByDate(_ context.Context, substr string) ([]domain.Sale, error) {
	return r.filter(func(s domain.Sale) bool { return containsFold(s.Date, substr) }), nil
}

func (r *saleRepositoryInMemory) filter(match func(domain.Sale) bool) []domain.Sale {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.Sale, 0, len(r.sales))
	for _, sale := range r.sales {
		if match(sale) {
			result = append(result, cloneSale(sale))
		}
	}
	return result
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func cloneSale(src domain.Sale) domain.Sale {
	dst := src
	dst.Items = append([]domain.OrderItem(nil), src.Items...)
	return dst
}

var _ domain.SaleRepository = (*saleRepositoryInMemory)(nil)
