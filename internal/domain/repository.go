package domain

import "context"

// TableRepository описывает требования к реестру столов.
type TableRepository interface {
	// Create сохраняет стол и назначает ему ID. Занятое имя: ErrTableNameTaken.
	Create(ctx context.Context, table Table) (Table, error)
	// GetByID возвращает стол или ErrTableNotFound.
	GetByID(ctx context.Context, id int64) (Table, error)
	// GetByName ищет стол по точному имени, иначе ErrTableNotFound.
	GetByName(ctx context.Context, name string) (Table, error)
	// List возвращает все столы в порядке создания.
	List(ctx context.Context) ([]Table, error)
	// Update перезаписывает изменяемые поля стола.
	Update(ctx context.Context, table Table) error
}

// OrderRepository описывает требования к хранилищу заказов.
type OrderRepository interface {
	// Create сохраняет новый заказ и возвращает его с назначенными ID заказа и позиций.
	Create(ctx context.Context, order Order) (Order, error)
	// Get возвращает заказ по идентификатору или ErrOrderNotFound, если его нет.
	Get(ctx context.Context, id int64) (Order, error)
	// List возвращает все заказы в порядке создания.
	List(ctx context.Context) ([]Order, error)
	// Save заменяет заказ вместе с позициями с учётом optimistic locking.
	// Позициям без ID назначаются новые идентификаторы.
	Save(ctx context.Context, order Order) (Order, error)
	// RemoveItem удаляет одну позицию заказа, итог заказа не трогает.
	RemoveItem(ctx context.Context, orderID, itemID int64) error
}

// SaleRepository описывает требования к журналу продаж.
type SaleRepository interface {
	Create(ctx context.Context, sale Sale) (Sale, error)
	List(ctx context.Context) ([]Sale, error)
	// FindByUserName возвращает продажи, где имя пользователя содержит подстроку без учёта регистра.
	FindByUserName(ctx context.Context, substr string) ([]Sale, error)
	// FindByDate возвращает продажи, где дата содержит подстроку без учёта регистра.
	FindByDate(ctx context.Context, substr string) ([]Sale, error)
}
