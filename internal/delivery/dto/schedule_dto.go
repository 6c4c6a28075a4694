package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateSlotRequest struct {
	SlotDate  string `json:"slot_date" validate:"required"`
	StartTime string `json:"start_time" validate:"required"`
	EndTime   string `json:"end_time" validate:"required"`
}

// Response DTOs

type SlotResponse struct {
	ID           int        `json:"id"`
	LawyerID     uuid.UUID  `json:"lawyer_id"`
	SlotDate     string     `json:"slot_date"`
	StartTime    string     `json:"start_time"`
	EndTime      string     `json:"end_time"`
	IsAvailable  bool       `json:"is_available"`
	BookingID    *uuid.UUID `json:"booking_id,omitempty"`
	ReminderSent bool       `json:"reminder_sent"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type SlotListResponse struct {
	Slots []SlotResponse `json:"slots"`
	Total int            `json:"total"`
}
