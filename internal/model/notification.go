package model

import (
	"context"
	"time"
)

// Notification describes a newly created entry to be announced by email.
type Notification struct {
	Email       string
	Date        time.Time
	Description string
}

// Notifier accepts notifications without blocking the caller.
type Notifier interface {
	Notify(n Notification)
}

// MailMessage is a rendered email ready for delivery.
type MailMessage struct {
	From     string
	To       string
	Subject  string
	HTMLBody string
}

// Sender delivers a single email.
type Sender interface {
	Send(ctx context.Context, msg MailMessage) error
}
