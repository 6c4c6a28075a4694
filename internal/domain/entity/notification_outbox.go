package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationKind identifies the message template for an outbox entry
type NotificationKind string

const (
	NotificationBookingAccepted NotificationKind = "booking.accepted"
	NotificationBookingRejected NotificationKind = "booking.rejected"
)

// OutboxStatus represents the delivery state of an outbox entry
type OutboxStatus string

const (
	OutboxStatusPending OutboxStatus = "pending"
	OutboxStatusSent    OutboxStatus = "sent"
	OutboxStatusFailed  OutboxStatus = "failed"
)

// NotificationOutbox is a best-effort side effect queued alongside a booking
// state transition. The row commits in the same transaction as the transition;
// a separate dispatcher drains pending rows, so a mailer outage can never roll
// back or block the transition itself.
type NotificationOutbox struct {
	ID        int64            `gorm:"primaryKey;autoIncrement" json:"id"`
	BookingID uuid.UUID        `gorm:"type:uuid;not null;index" json:"booking_id"`
	Kind      NotificationKind `gorm:"type:varchar(50);not null" json:"kind"`
	Recipient string           `gorm:"type:varchar(255);not null" json:"recipient"`
	Payload   JSON             `gorm:"type:jsonb" json:"payload,omitempty"`
	Status    OutboxStatus     `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	Attempts  int              `gorm:"not null;default:0" json:"attempts"`
	LastError string           `gorm:"type:text" json:"last_error,omitempty"`
	SentAt    *time.Time       `json:"sent_at,omitempty"`
	CreatedAt time.Time        `gorm:"autoCreateTime;index" json:"created_at"`
}

func (NotificationOutbox) TableName() string {
	return "notification_outbox"
}
