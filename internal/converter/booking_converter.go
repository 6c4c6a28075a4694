package converter

import (
	"github.com/sandy191020/LexConnect/internal/delivery/dto"
	"github.com/sandy191020/LexConnect/internal/domain/entity"

	"github.com/google/uuid"
)

// BookingToResponse converts a Booking entity to BookingResponse DTO
func BookingToResponse(booking *entity.Booking) *dto.BookingResponse {
	if booking == nil {
		return nil
	}

	response := &dto.BookingResponse{
		ID:               booking.ID,
		ClientID:         booking.ClientID,
		LawyerID:         booking.LawyerID,
		Status:           string(booking.Status),
		CaseDescription:  booking.CaseDescription,
		HearingTime:      booking.HearingTime,
		AcceptedAt:       booking.AcceptedAt,
		RejectedAt:       booking.RejectedAt,
		NotificationSent: booking.NotificationSent,
		CreatedAt:        booking.CreatedAt,
		UpdatedAt:        booking.UpdatedAt,
	}

	if booking.HearingDate != nil {
		response.HearingDate = booking.HearingDate.Format("2006-01-02")
	}

	// Include counterparty info if preloaded
	if booking.Client.ID != uuid.Nil {
		response.Client = UserToResponse(&booking.Client)
	}
	if booking.Lawyer.UserID != uuid.Nil {
		response.Lawyer = LawyerProfileToResponse(&booking.Lawyer)
	}

	return response
}

// BookingsToResponses converts a slice of Booking entities to slice of BookingResponse DTOs
func BookingsToResponses(bookings []entity.Booking) []dto.BookingResponse {
	responses := make([]dto.BookingResponse, len(bookings))
	for i, booking := range bookings {
		resp := BookingToResponse(&booking)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
