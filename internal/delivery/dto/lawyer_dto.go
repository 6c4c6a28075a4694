package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type ApproveLawyerRequest struct {
	Approve *bool `json:"approve" validate:"required"`
}

// Response DTOs

type LawyerResponse struct {
	UserID            uuid.UUID             `json:"user_id"`
	FullName          string                `json:"full_name"`
	Email             string                `json:"email"`
	Phone             string                `json:"phone,omitempty"`
	BarCouncilNumber  string                `json:"bar_council_number"`
	Specialization    string                `json:"specialization"`
	ExperienceYears   int                   `json:"experience_years"`
	ChargesPerHearing int                   `json:"charges_per_hearing"`
	Bio               string                `json:"bio,omitempty"`
	IsApproved        bool                  `json:"is_approved"`
	VerificationBadge bool                  `json:"verification_badge"`
	ApprovedAt        *time.Time            `json:"approved_at,omitempty"`
	Rating            float64               `json:"rating"`
	TotalBookings     int                   `json:"total_bookings"`
	Certificates      []CertificateResponse `json:"certificates,omitempty"`
	CreatedAt         time.Time             `json:"created_at"`
}

type LawyerListResponse struct {
	Lawyers []LawyerResponse `json:"lawyers"`
	Total   int              `json:"total"`
}
