package domain

import "time"

// Sale описывает закрытый чек. Поля денормализованы: продажа не ссылается на заказ,
// стол или пользователя и не меняется после записи.
type Sale struct {
	ID        int64
	UserName  string
	TableName string
	// Date хранится строкой в том виде, в каком её прислал клиент.
	Date       string
	Tip        int64
	TotalPrice int64
	Items      []OrderItem
	CreatedAt  time.Time
}

// Validate проверяет денежные поля продажи.
func (s *Sale) Validate() []error {
	var errs []error
	if s.Tip < 0 {
		errs = append(errs, ErrTipNegative)
	}
	for _, item := range s.Items {
		if item.Quantity <= 0 {
			errs = append(errs, ErrItemQtyInvalid)
		}
		if item.UnitPrice < 0 {
			errs = append(errs, ErrItemPriceInvalid)
		}
	}
	return errs
}
