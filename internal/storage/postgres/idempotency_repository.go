package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vladislavdragonenkov/restock/internal/domain"
)

const (
	defaultIdempotencyTTL = 24 * time.Hour

	idempotencyColumns = `key, request_hash, response_body, response_code, status, ttl_at, created_at, updated_at`
)

type idempotencyRepository struct {
	db *sql.DB
}

// NewIdempotencyRepository создаёт PostgreSQL-реализацию IdempotencyRepository.
func NewIdempotencyRepository(store *Store) domain.IdempotencyRepository {
	return &idempotencyRepository{db: store.DB()}
}

// CreateProcessing занимает ключ. Истёкшая запись с тем же ключом перезаписывается.
func (r *idempotencyRepository) CreateProcessing(ctx context.Context, key, requestHash string, ttlAt time.Time) (domain.IdempotencyRecord, error) {
	key = strings.TrimSpace(key)
	requestHash = strings.TrimSpace(requestHash)
	if key == "" {
		return domain.IdempotencyRecord{}, domain.ErrIdempotencyKeyRequired
	}
	if requestHash == "" {
		return domain.IdempotencyRecord{}, domain.ErrIdempotencyRequestHashRequired
	}
	if ttlAt.IsZero() {
		ttlAt = time.Now().UTC().Add(defaultIdempotencyTTL)
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	record, err := scanIdempotency(r.db.QueryRowContext(ctx, `
		INSERT INTO idempotency_keys (key, request_hash, response_body, response_code, status, ttl_at, created_at, updated_at)
		VALUES ($1, $2, NULL, NULL, $3, $4, NOW(), NOW())
		ON CONFLICT (key) DO UPDATE
		SET request_hash = EXCLUDED.request_hash,
		    response_body = NULL,
		    response_code = NULL,
		    status = EXCLUDED.status,
		    ttl_at = EXCLUDED.ttl_at,
		    created_at = NOW(),
		    updated_at = NOW()
		WHERE idempotency_keys.ttl_at <= NOW()
		RETURNING `+idempotencyColumns,
		key, requestHash, string(domain.IdempotencyStatusProcessing), ttlAt,
	))
	if err == nil {
		return record, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return domain.IdempotencyRecord{}, fmt.Errorf("create idempotency record: %w", err)
	}

	// Конфликт с живой записью: возвращаем её вместе с причиной.
	existing, err := r.Get(ctx, key)
	if err != nil {
		return domain.IdempotencyRecord{}, domain.ErrIdempotencyKeyAlreadyExists
	}
	if existing.RequestHash != requestHash {
		return existing, domain.ErrIdempotencyHashMismatch
	}
	return existing, domain.ErrIdempotencyKeyAlreadyExists
}

func (r *idempotencyRepository) Get(ctx context.Context, key string) (domain.IdempotencyRecord, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return domain.IdempotencyRecord{}, domain.ErrIdempotencyKeyRequired
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	record, err := scanIdempotency(r.db.QueryRowContext(ctx, `
		SELECT `+idempotencyColumns+`
		FROM idempotency_keys
		WHERE key = $1
		  AND ttl_at > NOW()
	`, key))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.IdempotencyRecord{}, domain.ErrIdempotencyKeyNotFound
		}
		return domain.IdempotencyRecord{}, fmt.Errorf("get idempotency record: %w", err)
	}
	return record, nil
}

func (r *idempotencyRepository) MarkDone(ctx context.Context, key string, responseBody []byte, responseCode int) error {
	return r.finish(ctx, key, domain.IdempotencyStatusDone, responseBody, responseCode)
}

func (r *idempotencyRepository) MarkFailed(ctx context.Context, key string, responseBody []byte, responseCode int) error {
	return r.finish(ctx, key, domain.IdempotencyStatusFailed, responseBody, responseCode)
}

// DeleteExpired удаляет до limit записей с ttl_at <= before; limit <= 0 снимает ограничение.
func (r *idempotencyRepository) DeleteExpired(ctx context.Context, before time.Time, limit int) (int, error) {
	if before.IsZero() {
		before = time.Now().UTC()
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var limitArg sql.NullInt64
	if limit > 0 {
		limitArg = sql.NullInt64{Int64: int64(limit), Valid: true}
	}

	res, err := r.db.ExecContext(ctx, `
		DELETE FROM idempotency_keys
		WHERE key IN (
			SELECT key
			FROM idempotency_keys
			WHERE ttl_at <= $1
			ORDER BY ttl_at
			LIMIT $2
		)
	`, before, limitArg)
	if err != nil {
		return 0, fmt.Errorf("delete expired idempotency records: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return int(affected), nil
}

func (r *idempotencyRepository) finish(ctx context.Context, key string, status domain.IdempotencyStatus, responseBody []byte, responseCode int) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return domain.ErrIdempotencyKeyRequired
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `
		UPDATE idempotency_keys
		SET response_body = $1,
		    response_code = $2,
		    status = $3,
		    updated_at = NOW()
		WHERE key = $4
	`, responseBody, responseCode, string(status), key)
	if err != nil {
		return fmt.Errorf("mark idempotency key %s: %w", status, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrIdempotencyKeyNotFound
	}
	return nil
}

func scanIdempotency(row rowScanner) (domain.IdempotencyRecord, error) {
	var (
		record       domain.IdempotencyRecord
		status       string
		responseBody []byte
		responseCode sql.NullInt64
	)
	if err := row.Scan(
		&record.Key, &record.RequestHash, &responseBody, &responseCode,
		&status, &record.TTLAt, &record.CreatedAt, &record.UpdatedAt,
	); err != nil {
		return domain.IdempotencyRecord{}, err
	}

	record.Status = domain.IdempotencyStatus(status)
	if !record.Status.Valid() {
		return domain.IdempotencyRecord{}, fmt.Errorf("invalid idempotency status %q for key %s", status, record.Key)
	}
	record.ResponseBody = append([]byte(nil), responseBody...)
	if responseCode.Valid {
		record.ResponseCode = int(responseCode.Int64)
	}
	return record, nil
}

var _ domain.IdempotencyRepository = (*idempotencyRepository)(nil)
