package service

import (
	"context"
	"sync"
	"time"

	"github.com/sandy191020/LexConnect/internal/domain/entity"
	"github.com/sandy191020/LexConnect/internal/domain/repository"
	"github.com/sandy191020/LexConnect/internal/infrastructure/mailer"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const dispatchBatchSize = 50

// NotificationDispatcher drains the notification outbox. Booking transitions
// commit their outbox row synchronously; this worker performs the actual
// delivery with its own retry policy so a mailer outage never blocks or rolls
// back a transition. After the first delivery attempt for a booking the
// booking's notification_sent flag is latched true, recording that dispatch
// was attempted, not that it was delivered.
type NotificationDispatcher struct {
	db           *gorm.DB
	log          *logrus.Logger
	outboxRepo   repository.OutboxRepository
	bookingRepo  repository.BookingRepository
	notifier     mailer.Notifier
	pollInterval time.Duration
	maxAttempts  int

	stopOnce sync.Once
	stopCh   chan struct{}
	doneCh   chan struct{}
}

func NewNotificationDispatcher(
	db *gorm.DB,
	log *logrus.Logger,
	outboxRepo repository.OutboxRepository,
	bookingRepo repository.BookingRepository,
	notifier mailer.Notifier,
	pollInterval time.Duration,
	maxAttempts int,
) *NotificationDispatcher {
	return &NotificationDispatcher{
		db:           db,
		log:          log,
		outboxRepo:   outboxRepo,
		bookingRepo:  bookingRepo,
		notifier:     notifier,
		pollInterval: pollInterval,
		maxAttempts:  maxAttempts,
		stopCh:       make(chan struct{}),
		doneCh:       make(chan struct{}),
	}
}

// Start launches the polling loop in a goroutine.
func (d *NotificationDispatcher) Start() {
	go d.run()
}

// Stop signals the loop to exit and waits for the in-flight batch to finish.
func (d *NotificationDispatcher) Stop() {
	d.stopOnce.Do(func() {
		close(d.stopCh)
	})
	<-d.doneCh
}

func (d *NotificationDispatcher) run() {
	defer close(d.doneCh)

	ticker := time.NewTicker(d.pollInterval)
	defer ticker.Stop()

	d.log.Infof("Notification dispatcher started (interval %s)", d.pollInterval)

	for {
		select {
		case <-d.stopCh:
			d.log.Info("Notification dispatcher stopped")
			return
		case <-ticker.C:
			d.DispatchPending(context.Background())
		}
	}
}

// DispatchPending processes one batch of pending outbox entries.
func (d *NotificationDispatcher) DispatchPending(ctx context.Context) {
	entries, err := d.outboxRepo.FindPending(d.db.WithContext(ctx), dispatchBatchSize)
	if err != nil {
		d.log.Warnf("Failed to load pending notifications: %+v", err)
		return
	}

	for i := range entries {
		d.dispatch(ctx, &entries[i])
	}
}

func (d *NotificationDispatcher) dispatch(ctx context.Context, entry *entity.NotificationOutbox) {
	msg := messageFromPayload(entry)

	var sendErr error
	switch entry.Kind {
	case entity.NotificationBookingAccepted:
		sendErr = d.notifier.SendBookingAccepted(ctx, msg)
	case entity.NotificationBookingRejected:
		sendErr = d.notifier.SendBookingRejected(ctx, msg)
	default:
		d.log.Warnf("Unknown notification kind %q for outbox entry %d", entry.Kind, entry.ID)
		sendErr = nil
	}

	db := d.db.WithContext(ctx)

	// Latch the attempt on the booking whatever the delivery outcome.
	if err := d.bookingRepo.MarkNotificationSent(db, entry.BookingID); err != nil {
		d.log.Warnf("Failed to mark notification attempt on booking %s: %+v", entry.BookingID, err)
	}

	if sendErr != nil {
		final := entry.Attempts+1 >= d.maxAttempts
		if final {
			d.log.Warnf("Giving up on outbox entry %d after %d attempts: %+v", entry.ID, entry.Attempts+1, sendErr)
		}
		if err := d.outboxRepo.MarkAttemptFailed(db, entry.ID, sendErr.Error(), final); err != nil {
			d.log.Warnf("Failed to record delivery failure for outbox entry %d: %+v", entry.ID, err)
		}
		return
	}

	if err := d.outboxRepo.MarkSent(db, entry.ID, time.Now()); err != nil {
		d.log.Warnf("Failed to mark outbox entry %d sent: %+v", entry.ID, err)
	}
}

func messageFromPayload(entry *entity.NotificationOutbox) *mailer.BookingMessage {
	msg := &mailer.BookingMessage{
		RecipientEmail: entry.Recipient,
	}
	if entry.Payload == nil {
		return msg
	}

	msg.RecipientName = payloadString(entry.Payload, "recipient_name")
	msg.LawyerName = payloadString(entry.Payload, "lawyer_name")
	msg.LawyerEmail = payloadString(entry.Payload, "lawyer_email")
	msg.LawyerPhone = payloadString(entry.Payload, "lawyer_phone")
	msg.HearingDate = payloadString(entry.Payload, "hearing_date")
	msg.HearingTime = payloadString(entry.Payload, "hearing_time")
	if v, ok := entry.Payload["charges_per_hearing"].(float64); ok {
		msg.ChargesPerHearing = int(v)
	}
	return msg
}

func payloadString(payload entity.JSON, key string) string {
	if v, ok := payload[key].(string); ok {
		return v
	}
	return ""
}
