package domain

import (
	"context"
	"time"
)

// CatalogService описывает взаимодействие с каталогом товаров.
type CatalogService interface {
	// FindOne возвращает снимок товара или ErrProductNotFound.
	FindOne(ctx context.Context, productID int64) (Product, error)
	// AdjustStock сохраняет товар с новым складским остатком. Каталог заменяет
	// запись целиком, поэтому product должен быть полным снимком из FindOne.
	// Ошибка внешнего сервиса возвращается как *UpstreamError.
	AdjustStock(ctx context.Context, product Product, newStock int64) error
}

// IdentityService описывает взаимодействие с сервисом пользователей.
type IdentityService interface {
	// GetUser возвращает пользователя или ErrUserNotFound.
	GetUser(ctx context.Context, userID int64) (User, error)
}

// Notifier отправляет письма клиентам.
type Notifier interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

// OutboxPublisher публикует события из transactional outbox.
type OutboxPublisher interface {
	// Publish передаёт событие наружу; должен быть идемпотентным.
	Publish(event OutboxMessage) error
}

// OutboxRepository позволяет сохранять события для последующей публикации.
type OutboxRepository interface {
	Enqueue(ctx context.Context, msg OutboxMessage) (OutboxMessage, error)
	PullPending(ctx context.Context, limit int) ([]OutboxMessage, error)
	Stats(ctx context.Context) (OutboxStats, error)
	MarkSent(ctx context.Context, id string) error
	MarkFailed(ctx context.Context, id string) error
}

// IdempotencyRepository хранит состояние обработки запросов по idempotency-key.
type IdempotencyRepository interface {
	CreateProcessing(ctx context.Context, key, requestHash string, ttlAt time.Time) (IdempotencyRecord, error)
	Get(ctx context.Context, key string) (IdempotencyRecord, error)
	MarkDone(ctx context.Context, key string, responseBody []byte, responseCode int) error
	MarkFailed(ctx context.Context, key string, responseBody []byte, responseCode int) error
	DeleteExpired(ctx context.Context, before time.Time, limit int) (int, error)
}

// OutboxMessage хранит данные для публикуемого события.
type OutboxMessage struct {
	ID            string
	AggregateType string
	AggregateID   string
	EventType     string
	Payload       []byte
	CreatedAt     time.Time
}

// OutboxStats описывает текущее состояние backlog transactional outbox.
type OutboxStats struct {
	PendingCount    int
	OldestPendingAt time.Time
}
