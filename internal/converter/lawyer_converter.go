package converter

import (
	"github.com/sandy191020/LexConnect/internal/delivery/dto"
	"github.com/sandy191020/LexConnect/internal/domain/entity"

	"github.com/google/uuid"
)

// LawyerProfileToResponse converts a LawyerProfile entity to LawyerResponse DTO
func LawyerProfileToResponse(profile *entity.LawyerProfile) *dto.LawyerResponse {
	if profile == nil {
		return nil
	}

	response := &dto.LawyerResponse{
		UserID:            profile.UserID,
		BarCouncilNumber:  profile.BarCouncilNumber,
		Specialization:    profile.Specialization,
		ExperienceYears:   profile.ExperienceYears,
		ChargesPerHearing: profile.ChargesPerHearing,
		Bio:               profile.Bio,
		IsApproved:        profile.IsApproved,
		VerificationBadge: profile.VerificationBadge,
		ApprovedAt:        profile.ApprovedAt,
		Rating:            profile.Rating,
		TotalBookings:     profile.TotalBookings,
		CreatedAt:         profile.CreatedAt,
	}

	if profile.User.ID != uuid.Nil {
		response.FullName = profile.User.FullName
		response.Email = profile.User.Email
		response.Phone = profile.User.Phone
	}

	if len(profile.Certificates) > 0 {
		response.Certificates = CertificatesToResponses(profile.Certificates)
	}

	return response
}

// LawyerProfilesToResponses converts a slice of LawyerProfile entities
func LawyerProfilesToResponses(profiles []entity.LawyerProfile) []dto.LawyerResponse {
	responses := make([]dto.LawyerResponse, len(profiles))
	for i, profile := range profiles {
		resp := LawyerProfileToResponse(&profile)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
