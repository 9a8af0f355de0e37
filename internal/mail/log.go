package mail

import (
	"context"

	"github.com/dtroode/gocalendar/internal/logger"
	"github.com/dtroode/gocalendar/internal/model"
)

var _ model.Sender = (*LogSender)(nil)

// LogSender only logs messages. Used when no SMTP host is configured.
type LogSender struct {
	logger *logger.Logger
}

func NewLogSender(logger *logger.Logger) *LogSender {
	return &LogSender{logger: logger}
}

func (s *LogSender) Send(_ context.Context, msg model.MailMessage) error {
	s.logger.Info("Mail: delivery disabled, message not sent",
		"from", msg.From,
		"to", msg.To,
		"subject", msg.Subject,
		"body_bytes", len(msg.HTMLBody))
	return nil
}
