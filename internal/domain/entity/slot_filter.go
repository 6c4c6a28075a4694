package entity

import "github.com/google/uuid"

// SlotFilter carries optional filters for schedule slot listing
type SlotFilter struct {
	LawyerID  uuid.UUID
	StartDate string
	EndDate   string
}
