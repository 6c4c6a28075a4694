package converter

import (
	"github.com/sandy191020/LexConnect/internal/delivery/dto"
	"github.com/sandy191020/LexConnect/internal/domain/entity"
)

// CertificateToResponse converts a Certificate entity to CertificateResponse DTO
func CertificateToResponse(certificate *entity.Certificate) *dto.CertificateResponse {
	if certificate == nil {
		return nil
	}

	return &dto.CertificateResponse{
		ID:          certificate.ID,
		LawyerID:    certificate.LawyerID,
		FileName:    certificate.FileName,
		FileType:    certificate.FileType,
		FileSize:    certificate.FileSize,
		ContentHash: certificate.ContentHash,
		LedgerTxRef: certificate.LedgerTxRef,
		UploadedAt:  certificate.UploadedAt,
	}
}

// CertificatesToResponses converts a slice of Certificate entities
func CertificatesToResponses(certificates []entity.Certificate) []dto.CertificateResponse {
	responses := make([]dto.CertificateResponse, len(certificates))
	for i, certificate := range certificates {
		resp := CertificateToResponse(&certificate)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
