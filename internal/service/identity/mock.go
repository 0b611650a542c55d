package identity

import (
	"context"
	"fmt"
	"sync"

	"github.com/vladislavdragonenkov/restock/internal/domain"
)

// MockService: конфигурируемая заглушка IdentityService для тестов.
type MockService struct {
	mu    sync.Mutex
	users map[int64]domain.User

	GetErr   error
	GetCalls int
}

// NewMockService возвращает mock с заданными пользователями.
func NewMockService(users ...domain.User) *MockService {
	m := &MockService{users: make(map[int64]domain.User, len(users))}
	for _, u := range users {
		m.users[u.ID] = u
	}
	return m
}

// Remove удаляет пользователя, имитируя его исчезновение во внешнем сервисе.
func (m *MockService) Remove(userID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.users, userID)
}

// GetUser возвращает пользователя из набора и считает вызовы.
func (m *MockService) GetUser(_ context.Context, userID int64) (domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.GetCalls++
	if m.GetErr != nil {
		return domain.User{}, m.GetErr
	}
	u, ok := m.users[userID]
	if !ok {
		return domain.User{}, fmt.Errorf("%w: id %d", domain.ErrUserNotFound, userID)
	}
	return u, nil
}

var _ domain.IdentityService = (*MockService)(nil)
