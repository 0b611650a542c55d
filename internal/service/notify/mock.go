package notify

import (
	"context"
	"sync"

	"github.com/vladislavdragonenkov/restock/internal/domain"
)

// Mail: письмо, принятое MockNotifier.
type Mail struct {
	To      string
	Subject string
	Body    string
}

// MockNotifier запоминает письма и может возвращать заданную ошибку.
type MockNotifier struct {
	mu   sync.Mutex
	Err  error
	sent []Mail
}

func NewMockNotifier() *MockNotifier {
	return &MockNotifier{}
}

func (m *MockNotifier) Send(_ context.Context, to, subject, htmlBody string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sent = append(m.sent, Mail{To: to, Subject: subject, Body: htmlBody})
	return m.Err
}

// Sent возвращает копию принятых писем.
func (m *MockNotifier) Sent() []Mail {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Mail(nil), m.sent...)
}

var _ domain.Notifier = (*MockNotifier)(nil)
