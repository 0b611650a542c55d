package catalog

import (
	"context"
	"fmt"
	"sync"

	"github.com/vladislavdragonenkov/restock/internal/domain"
)

// StockAdjustment фиксирует вызов AdjustStock.
type StockAdjustment struct {
	ProductID int64
	NewStock  int64
}

// MockService: конфигурируемая заглушка CatalogService для тестов и локального запуска.
type MockService struct {
	mu       sync.Mutex
	products map[int64]domain.Product

	// FindErr, если задан, возвращается из FindOne для любого товара.
	FindErr error
	// AdjustErr возвращается из AdjustStock; остаток при этом не меняется.
	AdjustErr error

	FindCalls   int
	Adjustments []StockAdjustment
}

// NewMockService возвращает mock с заданным набором товаров.
func NewMockService(products ...domain.Product) *MockService {
	m := &MockService{products: make(map[int64]domain.Product, len(products))}
	for _, p := range products {
		m.products[p.ID] = p
	}
	return m
}

// Put добавляет или заменяет товар.
func (m *MockService) Put(p domain.Product) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.products[p.ID] = p
}

// Remove убирает товар из каталога.
func (m *MockService) Remove(productID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.products, productID)
}

// SetFindErr меняет ошибку FindOne под блокировкой.
func (m *MockService) SetFindErr(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FindErr = err
}

// Stock возвращает текущий остаток товара.
func (m *MockService) Stock(productID int64) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.products[productID].Stock
}

// FindOne возвращает товар из набора и считает вызовы.
func (m *MockService) FindOne(_ context.Context, productID int64) (domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.FindCalls++
	if m.FindErr != nil {
		return domain.Product{}, m.FindErr
	}
	p, ok := m.products[productID]
	if !ok {
		return domain.Product{}, fmt.Errorf("%w: id %d", domain.ErrProductNotFound, productID)
	}
	return p, nil
}

// AdjustStock заменяет запись товара переданной с новым остатком,
// как это делает UpdateProduct каталога. При AdjustErr запись не меняется.
func (m *MockService) AdjustStock(_ context.Context, product domain.Product, newStock int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Adjustments = append(m.Adjustments, StockAdjustment{ProductID: product.ID, NewStock: newStock})
	if m.AdjustErr != nil {
		return m.AdjustErr
	}
	product.Stock = newStock
	m.products[product.ID] = product
	return nil
}

// Product возвращает текущую запись товара.
func (m *MockService) Product(productID int64) (domain.Product, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.products[productID]
	return p, ok
}

var _ domain.CatalogService = (*MockService)(nil)
