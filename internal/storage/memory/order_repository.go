package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/vladislavdragonenkov/restock/internal/domain"
)

// orderRepositoryInMemory: простая in-memory реализация OrderRepository.
type orderRepositoryInMemory struct {
	mu         sync.RWMutex
	nextID     int64
	nextItemID int64
	items      map[int64]domain.Order
}

// NewOrderRepository возвращает in-memory репозиторий для локальной разработки и тестов.
func NewOrderRepository() domain.OrderRepository {
	return &orderRepositoryInMemory{
		items: make(map[int64]domain.Order),
	}
}

// Create назначает заказу и его позициям идентификаторы и сохраняет копию.
func (r *orderRepositoryInMemory) Create(_ context.Context, order domain.Order) (domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	now := time.Now().UTC()
	order.ID = r.nextID
	order.Version = 1
	order.CreatedAt = now
	order.UpdatedAt = now
	order.Items = r.assignItemIDs(order.Items)

	r.items[order.ID] = cloneOrder(order)
	return cloneOrder(order), nil
}

// Get возвращает заказ или ErrOrderNotFound, если его нет.
func (r *orderRepositoryInMemory) Get(_ context.Context, id int64) (domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.items[id]
	if !ok {
		return domain.Order{}, domain.ErrOrderNotFound
	}
	return cloneOrder(order), nil
}

func (r *orderRepositoryInMemory) List(_ context.Context) ([]domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.Order, 0, len(r.items))
	for _, order := range r.items {
		result = append(result, cloneOrder(order))
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// Save перезаписывает заказ, проверяя версию (optimistic locking).
func (r *orderRepositoryInMemory) Save(_ context.Context, order domain.Order) (domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.items[order.ID]
	if !ok {
		return domain.Order{}, domain.ErrOrderNotFound
	}
	if current.Version != order.Version {
		return domain.Order{}, domain.ErrOrderVersionConflict
	}

	order.Version++
	order.CreatedAt = current.CreatedAt
	order.UpdatedAt = time.Now().UTC()
	order.Items = r.assignItemIDs(order.Items)

	r.items[order.ID] = cloneOrder(order)
	return cloneOrder(order), nil
}

// RemoveItem удаляет позицию, не пересчитывая итог и не меняя версию заказа.
func (r *orderRepositoryInMemory) RemoveItem(_ context.Context, orderID, itemID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.items[orderID]
	if !ok {
		return domain.ErrOrderNotFound
	}
	for i, item := range order.Items {
		if item.ID != itemID {
			continue
		}
		order.Items = append(order.Items[:i:i], order.Items[i+1:]...)
		r.items[orderID] = order
		return nil
	}
	return domain.ErrOrderItemNotFound
}

func (r *orderRepositoryInMemory) assignItemIDs(items []domain.OrderItem) []domain.OrderItem {
	out := make([]domain.OrderItem, len(items))
	for i, item := range items {
		if item.ID == 0 {
			r.nextItemID++
			item.ID = r.nextItemID
		}
		out[i] = item
	}
	return out
}

func cloneOrder(src domain.Order) domain.Order {
	dst := src
	dst.Items = append([]domain.OrderItem(nil), src.Items...)
	return dst
}

var _ domain.OrderRepository = (*orderRepositoryInMemory)(nil)
