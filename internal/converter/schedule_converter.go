package converter

import (
	"github.com/sandy191020/LexConnect/internal/delivery/dto"
	"github.com/sandy191020/LexConnect/internal/domain/entity"
)

// SlotToResponse converts a ScheduleSlot entity to SlotResponse DTO
func SlotToResponse(slot *entity.ScheduleSlot) *dto.SlotResponse {
	if slot == nil {
		return nil
	}

	return &dto.SlotResponse{
		ID:           slot.ID,
		LawyerID:     slot.LawyerID,
		SlotDate:     slot.SlotDate.Format("2006-01-02"),
		StartTime:    slot.StartTime,
		EndTime:      slot.EndTime,
		IsAvailable:  slot.IsAvailable,
		BookingID:    slot.BookingID,
		ReminderSent: slot.ReminderSent,
		CreatedAt:    slot.CreatedAt,
		UpdatedAt:    slot.UpdatedAt,
	}
}

// SlotsToResponses converts a slice of ScheduleSlot entities
func SlotsToResponses(slots []entity.ScheduleSlot) []dto.SlotResponse {
	responses := make([]dto.SlotResponse, len(slots))
	for i, slot := range slots {
		resp := SlotToResponse(&slot)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
