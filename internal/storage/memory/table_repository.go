package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/vladislavdragonenkov/restock/internal/domain"
)

// tableRepositoryInMemory хранит столы в памяти; индекс по имени обеспечивает уникальность.
type tableRepositoryInMemory struct {
	mu     sync.RWMutex
	nextID int64
	items  map[int64]domain.Table
	byName map[string]int64
}

// NewTableRepository возвращает in-memory реестр столов.
func NewTableRepository() domain.TableRepository {
	return &tableRepositoryInMemory{
		items:  make(map[int64]domain.Table),
		byName: make(map[string]int64),
	}
}

func (r *tableRepositoryInMemory) Create(_ context.Context, table domain.Table) (domain.Table, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byName[table.Name]; taken {
		return domain.Table{}, domain.ErrTableNameTaken
	}

	r.nextID++
	now := time.Now().UTC()
	table.ID = r.nextID
	table.CreatedAt = now
	table.UpdatedAt = now
	table.ActiveOrderID = cloneID(table.ActiveOrderID)

	r.items[table.ID] = table
	r.byName[table.Name] = table.ID
	return cloneTable(table), nil
}

func (r *tableRepositoryInMemory) GetByID(_ context.Context, id int64) (domain.Table, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	table, ok := r.items[id]
	if !ok {
		return domain.Table{}, domain.ErrTableNotFound
	}
	return cloneTable(table), nil
}

func (r *tableRepositoryInMemory) GetByName(_ context.Context, name string) (domain.Table, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byName[name]
	if !ok {
		return domain.Table{}, domain.ErrTableNotFound
	}
	return cloneTable(r.items[id]), nil
}

func (r *tableRepositoryInMemory) List(_ context.Context) ([]domain.Table, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.Table, 0, len(r.items))
	for _, table := range r.items {
		result = append(result, cloneTable(table))
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// Update перезаписывает вместимость, состояние и активный заказ; имя не меняется.
func (r *tableRepositoryInMemory) Update(_ context.Context, table domain.Table) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.items[table.ID]
	if !ok {
		return domain.ErrTableNotFound
	}
	current.Quantity = table.Quantity
	current.State = table.State
	current.ActiveOrderID = cloneID(table.ActiveOrderID)
	current.UpdatedAt = time.Now().UTC()
	r.items[table.ID] = current
	return nil
}

func cloneTable(src domain.Table) domain.Table {
	dst := src
	dst.ActiveOrderID = cloneID(src.ActiveOrderID)
	return dst
}

func cloneID(id *int64) *int64 {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}

var _ domain.TableRepository = (*tableRepositoryInMemory)(nil)
