package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vladislavdragonenkov/restock/internal/domain"
)

const orderColumns = `id, user_id, table_id, email, total_price, version, created_at, updated_at`

type orderRepository struct {
	db *sql.DB
}

// NewOrderRepository создаёт PostgreSQL-реализацию OrderRepository.
// Строка заказа и строки позиций пишутся одной транзакцией.
func NewOrderRepository(store *Store) domain.OrderRepository {
	return &orderRepository{db: store.DB()}
}

func (r *orderRepository) Create(ctx context.Context, order domain.Order) (domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var created domain.Order
	err := inTx(ctx, r.db, func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx, `
			INSERT INTO orders (user_id, table_id, email, total_price, version)
			VALUES ($1, $2, $3, $4, 1)
			RETURNING `+orderColumns,
			order.UserID, order.TableID, order.Email, order.TotalPrice,
		)
		var err error
		if created, err = scanOrder(row); err != nil {
			return fmt.Errorf("insert order: %w", err)
		}

		created.Items, err = insertItems(ctx, tx, orderItemsTable, created.ID, order.Items)
		return err
	})
	if err != nil {
		return domain.Order{}, err
	}
	return created, nil
}

func (r *orderRepository) Get(ctx context.Context, id int64) (domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	order, err := scanOrder(r.db.QueryRowContext(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Order{}, domain.ErrOrderNotFound
		}
		return domain.Order{}, fmt.Errorf("select order: %w", err)
	}

	byOrder, err := loadItems(ctx, r.db, orderItemsTable, []int64{order.ID})
	if err != nil {
		return domain.Order{}, err
	}
	order.Items = byOrder[order.ID]
	return order, nil
}

func (r *orderRepository) List(ctx context.Context) ([]domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `SELECT `+orderColumns+` FROM orders ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	orders := make([]domain.Order, 0)
	ids := make([]int64, 0)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order row: %w", err)
		}
		orders = append(orders, order)
		ids = append(ids, order.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order rows: %w", err)
	}

	byOrder, err := loadItems(ctx, r.db, orderItemsTable, ids)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		orders[i].Items = byOrder[orders[i].ID]
	}
	return orders, nil
}

// Save обновляет строку заказа с проверкой версии и переписывает его позиции.
// Позиции с ID сохраняют свой идентификатор, новым он назначается.
func (r *orderRepository) Save(ctx context.Context, order domain.Order) (domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var saved domain.Order
	err := inTx(ctx, r.db, func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx, `
			UPDATE orders
			SET user_id = $1,
			    table_id = $2,
			    email = $3,
			    total_price = $4,
			    version = version + 1,
			    updated_at = NOW()
			WHERE id = $5
			  AND version = $6
			RETURNING `+orderColumns,
			order.UserID, order.TableID, order.Email, order.TotalPrice, order.ID, order.Version,
		)
		var err error
		saved, err = scanOrder(row)
		if errors.Is(err, sql.ErrNoRows) {
			return r.missingOrConflict(ctx, tx, order.ID)
		}
		if err != nil {
			return fmt.Errorf("update order: %w", err)
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM order_items WHERE order_id = $1`, order.ID); err != nil {
			return fmt.Errorf("clear order items: %w", err)
		}
		saved.Items, err = insertItems(ctx, tx, orderItemsTable, order.ID, order.Items)
		return err
	})
	if err != nil {
		return domain.Order{}, err
	}
	return saved, nil
}

// RemoveItem удаляет одну строку позиции; заказ и его итог не меняются.
func (r *orderRepository) RemoveItem(ctx context.Context, orderID, itemID int64) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `DELETE FROM order_items WHERE id = $1 AND order_id = $2`, itemID, orderID)
	if err != nil {
		return fmt.Errorf("delete order item: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected > 0 {
		return nil
	}

	var exists bool
	if err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM orders WHERE id = $1)`, orderID).Scan(&exists); err != nil {
		return fmt.Errorf("check order exists: %w", err)
	}
	if !exists {
		return domain.ErrOrderNotFound
	}
	return domain.ErrOrderItemNotFound
}

func (r *orderRepository) missingOrConflict(ctx context.Context, tx *sql.Tx, orderID int64) error {
	var exists bool
	if err := tx.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM orders WHERE id = $1)`, orderID).Scan(&exists); err != nil {
		return fmt.Errorf("check order exists: %w", err)
	}
	if !exists {
		return domain.ErrOrderNotFound
	}
	return domain.ErrOrderVersionConflict
}

func scanOrder(row rowScanner) (domain.Order, error) {
	var order domain.Order
	err := row.Scan(
		&order.ID, &order.UserID, &order.TableID, &order.Email,
		&order.TotalPrice, &order.Version, &order.CreatedAt, &order.UpdatedAt,
	)
	return order, err
}

var _ domain.OrderRepository = (*orderRepository)(nil)
