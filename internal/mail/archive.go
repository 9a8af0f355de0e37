package mail

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/gocalendar/internal/logger"
	"github.com/dtroode/gocalendar/internal/model"
)

var _ model.Sender = (*ArchivingSender)(nil)

// ArchivingSender stores a copy of every message body in object storage
// before passing it on. Archive failures are logged and do not stop delivery.
type ArchivingSender struct {
	next    model.Sender
	storage model.Storage
	logger  *logger.Logger
	now     func() time.Time
}

func NewArchivingSender(next model.Sender, storage model.Storage, logger *logger.Logger) *ArchivingSender {
	return &ArchivingSender{
		next:    next,
		storage: storage,
		logger:  logger,
		now:     time.Now,
	}
}

func (s *ArchivingSender) Send(ctx context.Context, msg model.MailMessage) error {
	key := archiveKey(s.now(), uuid.New())
	err := s.storage.Upload(ctx, key, strings.NewReader(msg.HTMLBody), int64(len(msg.HTMLBody)), "text/html; charset=utf-8")
	if err != nil {
		s.logger.Error("Mail: failed to archive message",
			"key", key,
			"to", msg.To,
			"error", err.Error())
	}

	return s.next.Send(ctx, msg)
}

func archiveKey(at time.Time, id uuid.UUID) string {
	return fmt.Sprintf("notifications/%s/%s.html", at.UTC().Format("2006/01/02"), id)
}
