package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusAccepted  BookingStatus = "accepted"
	BookingStatusRejected  BookingStatus = "rejected"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Booking represents a client's consultation request against a lawyer.
//
// Invariant: at most one of AcceptedAt/RejectedAt is set, and only when the
// status is accepted/rejected respectively. Both stay null while the booking
// is pending or cancelled.
type Booking struct {
	ID               uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	ClientID         uuid.UUID     `gorm:"type:uuid;not null;index" json:"client_id"`
	LawyerID         uuid.UUID     `gorm:"type:uuid;not null;index" json:"lawyer_id"`
	Status           BookingStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	HearingDate      *time.Time    `gorm:"type:date" json:"hearing_date,omitempty"`
	HearingTime      string        `gorm:"type:varchar(10)" json:"hearing_time,omitempty"`
	CaseDescription  string        `gorm:"type:varchar(2000)" json:"case_description,omitempty"`
	AcceptedAt       *time.Time    `json:"accepted_at,omitempty"`
	RejectedAt       *time.Time    `json:"rejected_at,omitempty"`
	NotificationSent bool          `gorm:"not null;default:false" json:"notification_sent"`
	CreatedAt        time.Time     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time     `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Client User          `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Lawyer LawyerProfile `gorm:"foreignKey:LawyerID" json:"lawyer,omitempty"`
}

func (Booking) TableName() string {
	return "bookings"
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// IsPending checks if booking is in pending status
func (b *Booking) IsPending() bool {
	return b.Status == BookingStatusPending
}

// IsTerminal reports whether the booking can no longer be resolved by the lawyer.
// Accepted bookings may still move to completed or cancelled.
func (b *Booking) IsTerminal() bool {
	switch b.Status {
	case BookingStatusRejected, BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}
