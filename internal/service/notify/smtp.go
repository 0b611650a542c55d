// Package notify отправляет письма с чеками.
package notify

import (
	"bytes"
	"context"
	"fmt"
	"mime"
	"net/smtp"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/restock/internal/domain"
)

// SMTPConfig описывает подключение к почтовому серверу.
type SMTPConfig struct {
	Addr     string
	Username string
	Password string
	From     string
}

// sendFunc совпадает с сигнатурой smtp.SendMail; подменяется в тестах.
type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPNotifier отправляет HTML-письма через SMTP.
type SMTPNotifier struct {
	cfg    SMTPConfig
	send   sendFunc
	now    func() time.Time
	logger *log.Entry
}

// NewSMTPNotifier создаёт отправителя писем.
func NewSMTPNotifier(cfg SMTPConfig, logger *log.Entry) *SMTPNotifier {
	if logger == nil {
		logger = log.WithField("component", "smtp-notifier")
	}
	return &SMTPNotifier{cfg: cfg, send: smtp.SendMail, now: time.Now, logger: logger}
}

// Send отправляет письмо. net/smtp не принимает контекст, поэтому отменённый
// контекст проверяется до отправки.
func (n *SMTPNotifier) Send(ctx context.Context, to, subject, htmlBody string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var auth smtp.Auth
	if n.cfg.Username != "" {
		host := n.cfg.Addr
		if idx := strings.LastIndex(host, ":"); idx >= 0 {
			host = host[:idx]
		}
		auth = smtp.PlainAuth("", n.cfg.Username, n.cfg.Password, host)
	}

	msg := buildMessage(n.cfg.From, to, subject, htmlBody, n.now())
	if err := n.send(n.cfg.Addr, auth, n.cfg.From, []string{to}, msg); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}

	n.logger.WithFields(log.Fields{"to": to, "subject": subject}).Debug("mail sent")
	return nil
}

func buildMessage(from, to, subject, htmlBody string, now time.Time) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "From: %s\r\n", from)
	fmt.Fprintf(&buf, "To: %s\r\n", to)
	fmt.Fprintf(&buf, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", subject))
	fmt.Fprintf(&buf, "Date: %s\r\n", now.UTC().Format(time.RFC1123Z))
	buf.WriteString("MIME-Version: 1.0\r\n")
	buf.WriteString("Content-Type: text/html; charset=\"utf-8\"\r\n")
	buf.WriteString("\r\n")
	buf.WriteString(htmlBody)
	return buf.Bytes()
}

var _ domain.Notifier = (*SMTPNotifier)(nil)
