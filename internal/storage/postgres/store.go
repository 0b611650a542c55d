// Package postgres хранит столы, заказы, продажи, outbox и ключи идемпотентности в PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
)

const (
	opTimeout = 5 * time.Second

	defaultConnTimeout     = 5 * time.Second
	defaultMaxOpenConns    = 25
	defaultMaxIdleConns    = 25
	defaultConnMaxLifetime = 30 * time.Minute
	defaultConnMaxIdleTime = 5 * time.Minute
)

var errStoreNotInitialized = errors.New("postgres store is not initialized")

type poolSettings struct {
	maxOpenConns    int
	maxIdleConns    int
	connMaxLifetime time.Duration
	connMaxIdleTime time.Duration
}

// Option настраивает пул соединений.
type Option func(*poolSettings)

// WithMaxOpenConns ограничивает число открытых соединений.
func WithMaxOpenConns(n int) Option {
	return func(p *poolSettings) {
		if n > 0 {
			p.maxOpenConns = n
			p.maxIdleConns = n
		}
	}
}

// WithConnMaxLifetime задаёт время жизни соединения.
func WithConnMaxLifetime(d time.Duration) Option {
	return func(p *poolSettings) {
		if d > 0 {
			p.connMaxLifetime = d
		}
	}
}

// Store оборачивает пул соединений к PostgreSQL.
type Store struct {
	db *sql.DB
}

// Open открывает пул через драйвер pgx и проверяет доступность базы.
func Open(ctx context.Context, dsn string, opts ...Option) (*Store, error) {
	pool := poolSettings{
		maxOpenConns:    defaultMaxOpenConns,
		maxIdleConns:    defaultMaxIdleConns,
		connMaxLifetime: defaultConnMaxLifetime,
		connMaxIdleTime: defaultConnMaxIdleTime,
	}
	for _, opt := range opts {
		opt(&pool)
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres connection: %w", err)
	}
	db.SetMaxOpenConns(pool.maxOpenConns)
	db.SetMaxIdleConns(pool.maxIdleConns)
	db.SetConnMaxLifetime(pool.connMaxLifetime)
	db.SetConnMaxIdleTime(pool.connMaxIdleTime)

	store := &Store{db: db}
	if err := store.Ping(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return store, nil
}

// DB возвращает пул для низкоуровневого доступа.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Ping проверяет соединение; используется health-проверкой готовности.
func (s *Store) Ping(ctx context.Context) error {
	if s == nil || s.db == nil {
		return errStoreNotInitialized
	}

	pingCtx, cancel := context.WithTimeout(ctx, defaultConnTimeout)
	defer cancel()
	return s.db.PingContext(pingCtx)
}

// Close закрывает пул.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// inTx выполняет fn в транзакции: коммит при nil, откат при ошибке.
func inTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

// rowScanner: общий интерфейс *sql.Row и *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}
