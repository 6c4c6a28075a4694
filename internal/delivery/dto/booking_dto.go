package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateBookingRequest struct {
	LawyerID        uuid.UUID `json:"lawyer_id" validate:"required"`
	CaseDescription string    `json:"case_description,omitempty" validate:"omitempty,max=2000"`
	HearingDate     string    `json:"hearing_date,omitempty"`
	HearingTime     string    `json:"hearing_time,omitempty"`
}

// Response DTOs

type BookingResponse struct {
	ID               uuid.UUID       `json:"id"`
	ClientID         uuid.UUID       `json:"client_id"`
	LawyerID         uuid.UUID       `json:"lawyer_id"`
	Status           string          `json:"status"`
	CaseDescription  string          `json:"case_description,omitempty"`
	HearingDate      string          `json:"hearing_date,omitempty"`
	HearingTime      string          `json:"hearing_time,omitempty"`
	AcceptedAt       *time.Time      `json:"accepted_at,omitempty"`
	RejectedAt       *time.Time      `json:"rejected_at,omitempty"`
	NotificationSent bool            `json:"notification_sent"`
	Client           *UserResponse   `json:"client,omitempty"`
	Lawyer           *LawyerResponse `json:"lawyer,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}
