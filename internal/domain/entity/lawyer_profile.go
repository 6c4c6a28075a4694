package entity

import (
	"time"

	"github.com/google/uuid"
)

// LawyerProfile represents lawyer-specific profile data. A profile starts
// unapproved and invisible to clients; admin approval flips IsApproved and
// VerificationBadge together and stamps the approver.
type LawyerProfile struct {
	UserID            uuid.UUID  `gorm:"type:uuid;primaryKey" json:"user_id"`
	BarCouncilNumber  string     `gorm:"column:bar_council_number;type:varchar(50);uniqueIndex;not null" json:"bar_council_number"`
	Specialization    string     `gorm:"type:varchar(255);not null;index" json:"specialization"`
	ExperienceYears   int        `gorm:"not null" json:"experience_years"`
	ChargesPerHearing int        `gorm:"not null" json:"charges_per_hearing"`
	Bio               string     `gorm:"type:varchar(1000)" json:"bio,omitempty"`
	IsApproved        bool       `gorm:"not null;default:false;index" json:"is_approved"`
	VerificationBadge bool       `gorm:"not null;default:false" json:"verification_badge"`
	ApprovedBy        *uuid.UUID `gorm:"type:uuid" json:"approved_by,omitempty"`
	ApprovedAt        *time.Time `json:"approved_at,omitempty"`
	Rating            float64    `gorm:"not null;default:0" json:"rating"`
	TotalBookings     int        `gorm:"not null;default:0" json:"total_bookings"`
	CreatedAt         time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User         User           `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Certificates []Certificate  `gorm:"foreignKey:LawyerID" json:"certificates,omitempty"`
	Slots        []ScheduleSlot `gorm:"foreignKey:LawyerID" json:"slots,omitempty"`
}

func (LawyerProfile) TableName() string {
	return "lawyer_profiles"
}
