package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vladislavdragonenkov/restock/internal/domain"
)

const tableColumns = `id, name, quantity, state, active_order_id, created_at, updated_at`

type tableRepository struct {
	db *sql.DB
}

// NewTableRepository создаёт PostgreSQL-реализацию TableRepository.
func NewTableRepository(store *Store) domain.TableRepository {
	return &tableRepository{db: store.DB()}
}

func (r *tableRepository) Create(ctx context.Context, table domain.Table) (domain.Table, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	row := r.db.QueryRowContext(ctx, `
		INSERT INTO dining_tables (name, quantity, state, active_order_id)
		VALUES ($1, $2, $3, $4)
		RETURNING `+tableColumns,
		table.Name, table.Quantity, string(table.State), nullableID(table.ActiveOrderID),
	)
	created, err := scanTable(row)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Table{}, domain.ErrTableNameTaken
		}
		return domain.Table{}, fmt.Errorf("insert table: %w", err)
	}
	return created, nil
}

func (r *tableRepository) GetByID(ctx context.Context, id int64) (domain.Table, error) {
	return r.getOne(ctx, `SELECT `+tableColumns+` FROM dining_tables WHERE id = $1`, id)
}

func (r *tableRepository) GetByName(ctx context.Context, name string) (domain.Table, error) {
	return r.getOne(ctx, `SELECT `+tableColumns+` FROM dining_tables WHERE name = $1`, name)
}

func (r *tableRepository) getOne(ctx context.Context, query string, arg any) (domain.Table, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	table, err := scanTable(r.db.QueryRowContext(ctx, query, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Table{}, domain.ErrTableNotFound
		}
		return domain.Table{}, fmt.Errorf("select table: %w", err)
	}
	return table, nil
}

func (r *tableRepository) List(ctx context.Context) ([]domain.Table, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `SELECT `+tableColumns+` FROM dining_tables ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}
	defer rows.Close()

	tables := make([]domain.Table, 0)
	for rows.Next() {
		table, err := scanTable(rows)
		if err != nil {
			return nil, fmt.Errorf("scan table row: %w", err)
		}
		tables = append(tables, table)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate table rows: %w", err)
	}
	return tables, nil
}

func (r *tableRepository) Update(ctx context.Context, table domain.Table) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `
		UPDATE dining_tables
		SET quantity = $1,
		    state = $2,
		    active_order_id = $3,
		    updated_at = NOW()
		WHERE id = $4
	`, table.Quantity, string(table.State), nullableID(table.ActiveOrderID), table.ID)
	if err != nil {
		return fmt.Errorf("update table: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrTableNotFound
	}
	return nil
}

func scanTable(row rowScanner) (domain.Table, error) {
	var (
		table    domain.Table
		state    string
		activeID sql.NullInt64
	)
	if err := row.Scan(&table.ID, &table.Name, &table.Quantity, &state, &activeID, &table.CreatedAt, &table.UpdatedAt); err != nil {
		return domain.Table{}, err
	}
	table.State = domain.TableState(state)
	if activeID.Valid {
		id := activeID.Int64
		table.ActiveOrderID = &id
	}
	return table, nil
}

func nullableID(id *int64) sql.NullInt64 {
	if id == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *id, Valid: true}
}

var _ domain.TableRepository = (*tableRepository)(nil)
