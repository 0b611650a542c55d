package domain

import (
	"errors"
	"fmt"
)

// Базовые категории ошибок. Все прикладные ошибки сервиса оборачивают одну из них,
// транспортный слой сопоставляет категорию с кодом ответа.
var (
	// ErrNotFound: запрошенная сущность отсутствует.
	ErrNotFound = errors.New("not found")
	// ErrInvalidReference: запрос ссылается на пользователя, стол или товар, которых нет.
	ErrInvalidReference = errors.New("invalid reference")
	// ErrConflict: нарушено ограничение уникальности или конкурентной записи.
	ErrConflict = errors.New("conflict")
	// ErrUpstreamFailure: внешний сервис ответил ошибкой.
	ErrUpstreamFailure = errors.New("upstream failure")
	// ErrInvalidInput: значения полей не прошли проверку домена.
	ErrInvalidInput = errors.New("invalid input")
)

var (
	// ErrTableNotFound возвращается, если стол не найден в реестре.
	ErrTableNotFound = fmt.Errorf("table %w", ErrNotFound)
	// ErrTableNameTaken возвращается при попытке завести второй стол с тем же именем.
	ErrTableNameTaken = fmt.Errorf("%w: table name already exists", ErrConflict)
	// ErrOrderNotFound возвращается, если заказ не найден в репозитории.
	ErrOrderNotFound = fmt.Errorf("order %w", ErrNotFound)
	// ErrOrderItemNotFound возвращается, если в заказе нет позиции с указанным товаром.
	ErrOrderItemNotFound = fmt.Errorf("order item %w", ErrNotFound)
	// ErrOrderVersionConflict сигнализирует о конфликте версий при сохранении.
	ErrOrderVersionConflict = fmt.Errorf("%w: order version mismatch", ErrConflict)
)

// Ошибки адаптеров внешних сервисов. Оркестратор переводит их в ErrInvalidReference.
var (
	ErrProductNotFound = errors.New("product not found")
	ErrUserNotFound    = errors.New("user not found")
)

var (
	// Ошибка пустого имени стола.
	ErrTableNameRequired = errors.New("table name is required")
	// Ошибка отрицательной вместимости стола.
	ErrTableQuantityInvalid = errors.New("table quantity must be non-negative")
	// Ошибка пустого состояния стола.
	ErrTableStateRequired = errors.New("table state is required")
	// Ошибка отсутствующего идентификатора пользователя.
	ErrUserIDRequired = errors.New("user_id is required")
	// Ошибка отсутствующего идентификатора стола.
	ErrTableIDRequired = errors.New("table_id is required")
	// Ошибка при некорректном количестве товара (<= 0).
	ErrItemQtyInvalid = errors.New("item quantity must be greater than zero")
	// Ошибка, если цена позиции отрицательная.
	ErrItemPriceInvalid = errors.New("item price must be non-negative")
	// Ошибка, если итог позиции не равен quantity * unit price.
	ErrItemTotalMismatch = errors.New("item total does not match quantity times unit price")
	// Ошибка несоответствия суммы заказа и сумм позиций.
	ErrAmountMismatch = errors.New("order total does not match items sum")
	// Ошибка отрицательных чаевых.
	ErrTipNegative = errors.New("tip must be non-negative")
)

var (
	ErrIdempotencyKeyRequired         = errors.New("idempotency key is required")
	ErrIdempotencyRequestHashRequired = errors.New("idempotency request hash is required")
	ErrIdempotencyKeyAlreadyExists    = errors.New("idempotency key already exists")
	ErrIdempotencyHashMismatch        = errors.New("idempotency key reused with different request")
	ErrIdempotencyKeyNotFound         = errors.New("idempotency key not found")
	// ErrOutboxPublish: ошибка при публикации сообщения из outbox.
	ErrOutboxPublish = errors.New("outbox publish failed")
)

// ErrorKind: машиночитаемое имя категории ошибки.
type ErrorKind string

const (
	KindNotFound         ErrorKind = "NOT_FOUND"
	KindInvalidReference ErrorKind = "INVALID_REFERENCE"
	KindConflict         ErrorKind = "CONFLICT"
	KindUpstreamFailure  ErrorKind = "UPSTREAM_FAILURE"
	KindInvalidInput     ErrorKind = "INVALID_INPUT"
	KindInternal         ErrorKind = "INTERNAL"
)

// KindOf определяет категорию ошибки. Для nil возвращает пустую строку.
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidReference):
		return KindInvalidReference
	case errors.Is(err, ErrUpstreamFailure):
		return KindUpstreamFailure
	case errors.Is(err, ErrConflict):
		return KindConflict
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrInvalidInput):
		return KindInvalidInput
	default:
		return KindInternal
	}
}

// IsVersionConflict проверяет, является ли ошибка конфликтом версий.
func IsVersionConflict(err error) bool {
	return errors.Is(err, ErrOrderVersionConflict)
}

// UpstreamError оборачивает ответ внешнего сервиса вместе с его кодом.
type UpstreamError struct {
	Service string
	Status  string
	Err     error
}

func (e *UpstreamError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s responded with %s", ErrUpstreamFailure, e.Service, e.Status)
	}
	return fmt.Sprintf("%s: %s responded with %s: %v", ErrUpstreamFailure, e.Service, e.Status, e.Err)
}

func (e *UpstreamError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrUpstreamFailure}
	}
	return []error{ErrUpstreamFailure, e.Err}
}

// IsIdempotencyConflict сообщает, что ключ идемпотентности уже занят или переиспользован.
func IsIdempotencyConflict(err error) bool {
	return errors.Is(err, ErrIdempotencyKeyAlreadyExists) || errors.Is(err, ErrIdempotencyHashMismatch)
}
