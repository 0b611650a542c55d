package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vladislavdragonenkov/restock/internal/domain"
)

// itemsTable описывает таблицу позиций и колонку ссылки на владельца.
type itemsTable struct {
	name   string
	parent string
}

var (
	orderItemsTable = itemsTable{name: "order_items", parent: "order_id"}
	saleItemsTable  = itemsTable{name: "sale_items", parent: "sale_id"}
)

const itemColumns = `id, product_id, quantity, modifications, product_name, unit_price, total_price`

// insertItems пишет позиции в порядке следования и возвращает их с идентификаторами.
func insertItems(ctx context.Context, tx *sql.Tx, table itemsTable, parentID int64, items []domain.OrderItem) ([]domain.OrderItem, error) {
	out := make([]domain.OrderItem, 0, len(items))
	for i, item := range items {
		var (
			query string
			args  = []any{parentID, i, item.ProductID, item.Quantity, item.Modifications, item.ProductName, item.UnitPrice, item.TotalPrice}
		)
		if item.ID == 0 {
			query = fmt.Sprintf(`
				INSERT INTO %s (%s, line_no, product_id, quantity, modifications, product_name, unit_price, total_price)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
				RETURNING id`, table.name, table.parent)
		} else {
			query = fmt.Sprintf(`
				INSERT INTO %s (%s, line_no, product_id, quantity, modifications, product_name, unit_price, total_price, id)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
				RETURNING id`, table.name, table.parent)
			args = append(args, item.ID)
		}

		if err := tx.QueryRowContext(ctx, query, args...).Scan(&item.ID); err != nil {
			return nil, fmt.Errorf("insert %s row: %w", table.name, err)
		}
		out = append(out, item)
	}
	return out, nil
}

// loadItems загружает позиции всех владельцев из parentIDs одним запросом.
func loadItems(ctx context.Context, db *sql.DB, table itemsTable, parentIDs []int64) (map[int64][]domain.OrderItem, error) {
	result := make(map[int64][]domain.OrderItem, len(parentIDs))
	if len(parentIDs) == 0 {
		return result, nil
	}

	rows, err := db.QueryContext(ctx, fmt.Sprintf(`
		SELECT %s, %s
		FROM %s
		WHERE %s = ANY($1)
		ORDER BY %s, line_no`, table.parent, itemColumns, table.name, table.parent, table.parent), parentIDs)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", table.name, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			parentID int64
			item     domain.OrderItem
		)
		if err := rows.Scan(
			&parentID, &item.ID, &item.ProductID, &item.Quantity,
			&item.Modifications, &item.ProductName, &item.UnitPrice, &item.TotalPrice,
		); err != nil {
			return nil, fmt.Errorf("scan %s row: %w", table.name, err)
		}
		result[parentID] = append(result[parentID], item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s rows: %w", table.name, err)
	}
	return result, nil
}
