// Package notification announces new calendar entries by email without
// holding up the request that created them.
package notification

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dtroode/gocalendar/internal/logger"
	"github.com/dtroode/gocalendar/internal/model"
)

var _ model.Notifier = (*Dispatcher)(nil)

// Options configures a Dispatcher.
type Options struct {
	From        string
	Subject     string
	Workers     int
	QueueSize   int
	SendTimeout time.Duration
}

// Dispatcher queues notifications and delivers them on a worker pool.
// Delivery is best effort: a full queue or a failed send drops the message.
type Dispatcher struct {
	sender model.Sender
	opts   Options
	logger *logger.Logger

	mu     sync.RWMutex
	queue  chan model.Notification
	closed bool
	group  errgroup.Group
}

func NewDispatcher(sender model.Sender, opts Options, logger *logger.Logger) *Dispatcher {
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	if opts.QueueSize < 0 {
		opts.QueueSize = 0
	}
	return &Dispatcher{
		sender: sender,
		opts:   opts,
		logger: logger,
		queue:  make(chan model.Notification, opts.QueueSize),
	}
}

// Start launches the workers. They run until Stop is called.
func (d *Dispatcher) Start() {
	for i := 0; i < d.opts.Workers; i++ {
		d.group.Go(func() error {
			for n := range d.queue {
				d.deliver(n)
			}
			return nil
		})
	}
}

// Notify enqueues n and returns immediately.
func (d *Dispatcher) Notify(n model.Notification) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.logger.Warn("Notification dispatcher: stopped, dropping notification",
			"email", n.Email)
		return
	}

	select {
	case d.queue <- n:
	default:
		d.logger.Warn("Notification dispatcher: queue full, dropping notification",
			"email", n.Email)
	}
}

// Stop closes the queue and waits for queued notifications to be delivered
// or for ctx to expire.
func (d *Dispatcher) Stop(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	done := make(chan error, 1)
	go func() { done <- d.group.Wait() }()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *Dispatcher) deliver(n model.Notification) {
	body, err := Render(n)
	if err != nil {
		d.logger.Error("Notification dispatcher: failed to render",
			"email", n.Email,
			"error", err.Error())
		return
	}

	ctx := context.Background()
	if d.opts.SendTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.opts.SendTimeout)
		defer cancel()
	}

	err = d.sender.Send(ctx, model.MailMessage{
		From:     d.opts.From,
		To:       n.Email,
		Subject:  d.opts.Subject,
		HTMLBody: body,
	})
	if err != nil {
		d.logger.Error("Notification dispatcher: failed to send",
			"email", n.Email,
			"error", err.Error())
		return
	}

	d.logger.Info("Notification dispatcher: notification sent",
		"email", n.Email)
}
