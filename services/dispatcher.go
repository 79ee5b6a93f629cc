package services

import (
	"sync"
	"time"

	"circuithouse-backend/models"

	"github.com/rs/zerolog"
)

const (
	noteBookingConfirmation  = "booking_confirmation"
	noteCheckoutConfirmation = "checkout_confirmation"
)

type notification struct {
	kind  string
	guest models.Guest
}

// NotificationDispatcher decouples email delivery from the request path.
// Enqueueing never blocks: when the queue is full the message is dropped and
// logged. Delivery is at-most-once best effort with capped backoff retries.
type NotificationDispatcher struct {
	notifier Notifier
	policy   RetryPolicy
	queue    chan notification
	logger   zerolog.Logger

	mu        sync.RWMutex
	stopped   bool
	startOnce sync.Once
	stopOnce  sync.Once
	wg        sync.WaitGroup
}

func NewNotificationDispatcher(notifier Notifier, policy RetryPolicy, logger zerolog.Logger) *NotificationDispatcher {
	if policy.MaxAttempts <= 0 {
		policy.MaxAttempts = 3
	}
	if policy.InitialDelay <= 0 {
		policy.InitialDelay = 2 * time.Second
	}
	if policy.MaxDelay <= 0 {
		policy.MaxDelay = time.Minute
	}
	if policy.BackoffFactor <= 0 {
		policy.BackoffFactor = 2
	}

	return &NotificationDispatcher{
		notifier: notifier,
		policy:   policy,
		queue:    make(chan notification, 64),
		logger:   logger,
	}
}

// Start launches the delivery worker.
func (d *NotificationDispatcher) Start() {
	d.startOnce.Do(func() {
		d.wg.Add(1)
		go d.run()
	})
}

// Stop drains queued notifications and waits for the worker to finish.
func (d *NotificationDispatcher) Stop() {
	d.stopOnce.Do(func() {
		d.mu.Lock()
		d.stopped = true
		d.mu.Unlock()
		close(d.queue)
	})
	d.wg.Wait()
}

// SendBookingConfirmation queues a booking confirmation. The returned error
// is always nil; delivery failures surface in the logs only.
func (d *NotificationDispatcher) SendBookingConfirmation(guest models.Guest) error {
	d.enqueue(noteBookingConfirmation, guest)
	return nil
}

// SendCheckoutConfirmation queues a checkout confirmation.
func (d *NotificationDispatcher) SendCheckoutConfirmation(guest models.Guest) error {
	d.enqueue(noteCheckoutConfirmation, guest)
	return nil
}

func (d *NotificationDispatcher) enqueue(kind string, guest models.Guest) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.stopped {
		d.logger.Warn().Str("kind", kind).Str("email", guest.Email).
			Msg("notification dropped: dispatcher stopped")
		return
	}

	select {
	case d.queue <- notification{kind: kind, guest: guest}:
	default:
		d.logger.Warn().Str("kind", kind).Str("email", guest.Email).
			Msg("notification queue full, message dropped")
	}
}

func (d *NotificationDispatcher) run() {
	defer d.wg.Done()
	for note := range d.queue {
		d.deliver(note)
	}
}

func (d *NotificationDispatcher) deliver(note notification) {
	for attempt := 1; attempt <= d.policy.MaxAttempts; attempt++ {
		err := d.send(note)
		if err == nil {
			if attempt > 1 {
				d.logger.Info().Str("kind", note.kind).Str("email", note.guest.Email).
					Int("attempt", attempt).Msg("notification delivered after retry")
			}
			return
		}

		d.logger.Error().Err(err).Str("kind", note.kind).Str("email", note.guest.Email).
			Int("attempt", attempt).Msg("notification delivery failed")

		if attempt < d.policy.MaxAttempts {
			time.Sleep(d.policy.Delay(attempt))
		}
	}

	d.logger.Error().Str("kind", note.kind).Str("email", note.guest.Email).
		Int("attempts", d.policy.MaxAttempts).Msg("notification dropped after retries")
}

func (d *NotificationDispatcher) send(note notification) error {
	switch note.kind {
	case noteCheckoutConfirmation:
		return d.notifier.SendCheckoutConfirmation(note.guest)
	default:
		return d.notifier.SendBookingConfirmation(note.guest)
	}
}
