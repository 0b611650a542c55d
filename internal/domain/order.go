package domain

import "time"

// Product: снимок товара из каталога. Каталогом владеет внешний сервис.
type Product struct {
	ID          int64
	Name        string
	SKU         string
	Category    string
	Description string
	// Price: цена за единицу в минимальных денежных единицах.
	Price int64
	Stock int64
}

// User: пользователь из сервиса идентификации.
type User struct {
	ID    int64
	Email string
	Name  string
}

// LineRequest: позиция, которую клиент просит положить в заказ.
type LineRequest struct {
	ProductID     int64
	Quantity      int32
	Modifications string
}

// OrderItem представляет одну позицию заказа.
type OrderItem struct {
	// ID назначает хранилище; ноль означает ещё не сохранённую позицию.
	ID            int64
	ProductID     int64
	Quantity      int32
	Modifications string
	// ProductName и UnitPrice: снимок каталога на момент добавления позиции.
	ProductName string
	UnitPrice   int64
	TotalPrice  int64
}

// NewOrderItem строит позицию по запросу и снимку товара.
func NewOrderItem(line LineRequest, product Product) OrderItem {
	item := OrderItem{
		ProductID:     line.ProductID,
		Quantity:      line.Quantity,
		Modifications: line.Modifications,
		ProductName:   product.Name,
	}
	item.Reprice(product.Price)
	return item
}

// Reprice пересчитывает позицию по новой цене за единицу.
func (i *OrderItem) Reprice(unitPrice int64) {
	i.UnitPrice = unitPrice
	i.TotalPrice = int64(i.Quantity) * unitPrice
}

// Order агрегирует состояние заказа и его позиции.
type Order struct {
	ID      int64
	UserID  int64
	TableID int64
	// Email: адрес для уведомлений по заказу.
	Email      string
	Items      []OrderItem
	TotalPrice int64
	Version    int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Recalculate выставляет итог заказа как сумму итогов позиций.
func (o *Order) Recalculate() {
	var total int64
	for _, item := range o.Items {
		total += item.TotalPrice
	}
	o.TotalPrice = total
}

// ItemIndexByProduct возвращает индекс первой позиции с товаром productID или -1.
func (o *Order) ItemIndexByProduct(productID int64) int {
	for i, item := range o.Items {
		if item.ProductID == productID {
			return i
		}
	}
	return -1
}

// RemoveItemAt убирает позицию из заказа и уменьшает итог на её сумму.
func (o *Order) RemoveItemAt(idx int) OrderItem {
	item := o.Items[idx]
	o.Items = append(o.Items[:idx:idx], o.Items[idx+1:]...)
	o.TotalPrice -= item.TotalPrice
	return item
}

// ValidateInvariants проверяет базовые инварианты заказа и возвращает список замечаний.
func (o *Order) ValidateInvariants() []error {
	var errs []error

	if o.UserID == 0 {
		errs = append(errs, ErrUserIDRequired)
	}
	if o.TableID == 0 {
		errs = append(errs, ErrTableIDRequired)
	}

	// Сверяем итог заказа с суммой позиций: quantity * unit price.
	var calc int64
	for _, item := range o.Items {
		if item.Quantity <= 0 {
			errs = append(errs, ErrItemQtyInvalid)
		}
		if item.UnitPrice < 0 {
			errs = append(errs, ErrItemPriceInvalid)
		}
		if item.TotalPrice != int64(item.Quantity)*item.UnitPrice {
			errs = append(errs, ErrItemTotalMismatch)
		}
		calc += item.TotalPrice
	}
	if calc != o.TotalPrice {
		errs = append(errs, ErrAmountMismatch)
	}

	return errs
}

// OrderDetails описывает заказ для чтения: позиции переоценены по текущему каталогу,
// стол и пользователь подставлены, если удалось их найти.
type OrderDetails struct {
	Order Order
	Table *Table
	User  *User
}
