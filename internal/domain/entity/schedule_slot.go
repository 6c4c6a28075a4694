package entity

import (
	"time"

	"github.com/google/uuid"
)

// ScheduleSlot represents a lawyer availability window on a given date.
// Start/end times are zero-padded "HH:MM" strings compared lexicographically;
// the window is half-open [start, end).
//
// Invariant: for one lawyer and date, slots still marked available never overlap.
type ScheduleSlot struct {
	ID           int        `gorm:"primaryKey;autoIncrement" json:"id"`
	LawyerID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"lawyer_id"`
	SlotDate     time.Time  `gorm:"type:date;not null;index" json:"slot_date"`
	StartTime    string     `gorm:"type:varchar(10);not null" json:"start_time"`
	EndTime      string     `gorm:"type:varchar(10);not null" json:"end_time"`
	// No gorm default here: a default tag would make gorm omit the zero
	// value on insert, turning a consumed (false) slot available. The schema
	// default lives in the migrations.
	IsAvailable  bool       `gorm:"not null;index" json:"is_available"`
	BookingID    *uuid.UUID `gorm:"type:uuid" json:"booking_id,omitempty"`
	ReminderSent bool       `gorm:"not null;default:false" json:"reminder_sent"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Lawyer  LawyerProfile `gorm:"foreignKey:LawyerID" json:"lawyer,omitempty"`
	Booking *Booking      `gorm:"foreignKey:BookingID" json:"booking,omitempty"`
}

func (ScheduleSlot) TableName() string {
	return "schedule_slots"
}

// Overlaps reports whether the slot's window intersects [start, end).
func (s *ScheduleSlot) Overlaps(start, end string) bool {
	return s.StartTime < end && s.EndTime > start
}
