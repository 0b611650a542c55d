package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vladislavdragonenkov/restock/internal/domain"
)

const saleColumns = `id, user_name, table_name, sale_date, tip, total_price, created_at`

type saleRepository struct {
	db *sql.DB
}

// NewSaleRepository создаёт PostgreSQL-реализацию SaleRepository.
func NewSaleRepository(store *Store) domain.SaleRepository {
	return &saleRepository{db: store.DB()}
}

func (r *saleRepository) Create(ctx context.Context, sale domain.Sale) (domain.Sale, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var created domain.Sale
	err := inTx(ctx, r.db, func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx, `
			INSERT INTO sales (user_name, table_name, sale_date, tip, total_price)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING `+saleColumns,
			sale.UserName, sale.TableName, sale.Date, sale.Tip, sale.TotalPrice,
		)
		var err error
		if created, err = scanSale(row); err != nil {
			return fmt.Errorf("insert sale: %w", err)
		}

		// Позиции продажи независимы от заказа, поэтому идентификаторы позиций заказа не переносятся.
		items := make([]domain.OrderItem, len(sale.Items))
		for i, item := range sale.Items {
			item.ID = 0
			items[i] = item
		}
		created.Items, err = insertItems(ctx, tx, saleItemsTable, created.ID, items)
		return err
	})
	if err != nil {
		return domain.Sale{}, err
	}
	return created, nil
}

func (r *saleRepository) List(ctx context.Context) ([]domain.Sale, error) {
	return r.query(ctx, `SELECT `+saleColumns+` FROM sales ORDER BY id`)
}

// FindByUserName ищет продажи по подстроке имени без учёта регистра.
func (r *saleRepository) FindByUserName(ctx context.Context, substr string) ([]domain.Sale, error) {
	return r.query(ctx, `
		SELECT `+saleColumns+`
		FROM sales
		WHERE strpos(lower(user_name), lower($1)) > 0
		ORDER BY id`, substr)
}

// FindByDate ищет продажи по подстроке даты без учёта регистра.
func (r *saleRepository) FindByDate(ctx context.Context, substr string) ([]domain.Sale, error) {
	return r.query(ctx, `
		SELECT `+saleColumns+`
		FROM sales
		WHERE strpos(lower(sale_date), lower($1)) > 0
		ORDER BY id`, substr)
}

func (r *saleRepository) query(ctx context.Context, query string, args ...any) ([]domain.Sale, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query sales: %w", err)
	}
	defer rows.Close()

	sales := make([]domain.Sale, 0)
	ids := make([]int64, 0)
	for rows.Next() {
		sale, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sale row: %w", err)
		}
		sales = append(sales, sale)
		ids = append(ids, sale.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sale rows: %w", err)
	}

	bySale, err := loadItems(ctx, r.db, saleItemsTable, ids)
	if err != nil {
		return nil, err
	}
	for i := range sales {
		sales[i].Items = bySale[sales[i].ID]
	}
	return sales, nil
}

func scanSale(row rowScanner) (domain.Sale, error) {
	var sale domain.Sale
	err := row.Scan(&sale.ID, &sale.UserName, &sale.TableName, &sale.Date, &sale.Tip, &sale.TotalPrice, &sale.CreatedAt)
	return sale, err
}

var _ domain.SaleRepository = (*saleRepository)(nil)
