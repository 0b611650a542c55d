package notify

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/restock/internal/domain"
)

// LogNotifier пишет письма в лог вместо отправки; используется без SMTP.
type LogNotifier struct {
	logger *log.Entry
}

func NewLogNotifier(logger *log.Entry) *LogNotifier {
	if logger == nil {
		logger = log.WithField("component", "log-notifier")
	}
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Send(_ context.Context, to, subject, htmlBody string) error {
	n.logger.WithFields(log.Fields{
		"to":         to,
		"subject":    subject,
		"body_bytes": len(htmlBody),
	}).Info("mail delivery skipped: smtp is not configured")
	return nil
}

var _ domain.Notifier = (*LogNotifier)(nil)
