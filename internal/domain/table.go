package domain

import "time"

// TableState описывает состояние стола в зале. Набор значений открытый.
type TableState string

const (
	TableStateAvailable TableState = "available"
	TableStateOccupied  TableState = "occupied"
	TableStateReserved  TableState = "reserved"
)

// Table: стол ресторана. Имя уникально в пределах реестра.
type Table struct {
	ID       int64
	Name     string
	Quantity int32
	State    TableState
	// ActiveOrderID указывает на текущий заказ стола; nil, если заказа нет.
	ActiveOrderID *int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Validate проверяет поля стола перед сохранением.
func (t *Table) Validate() []error {
	var errs []error
	if t.Name == "" {
		errs = append(errs, ErrTableNameRequired)
	}
	if t.Quantity < 0 {
		errs = append(errs, ErrTableQuantityInvalid)
	}
	if t.State == "" {
		errs = append(errs, ErrTableStateRequired)
	}
	return errs
}

// TableStateUpdate описывает изменяемую часть стола: вместимость, состояние и активный заказ.
type TableStateUpdate struct {
	Quantity      int32
	State         TableState
	ActiveOrderID *int64
}

// Apply переносит изменения на стол.
func (u TableStateUpdate) Apply(t *Table) {
	t.Quantity = u.Quantity
	t.State = u.State
	t.ActiveOrderID = u.ActiveOrderID
}
