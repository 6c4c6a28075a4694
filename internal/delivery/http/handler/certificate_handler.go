package handler

import (
	"net/http"

	"github.com/sandy191020/LexConnect/internal/delivery/http/middleware"
	"github.com/sandy191020/LexConnect/internal/usecase"
	"github.com/sandy191020/LexConnect/pkg/response"
)

type CertificateHandler struct {
	certificateUsecase usecase.CertificateUsecase
	maxFileSize        int64
}

func NewCertificateHandler(certificateUsecase usecase.CertificateUsecase, maxFileSize int64) *CertificateHandler {
	return &CertificateHandler{
		certificateUsecase: certificateUsecase,
		maxFileSize:        maxFileSize,
	}
}

// UploadCertificate accepts a multipart upload under the "certificate" field.
func (h *CertificateHandler) UploadCertificate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxFileSize)
	if err := r.ParseMultipartForm(h.maxFileSize); err != nil {
		response.BadRequest(w, "FILE_TOO_LARGE", "File exceeds the maximum allowed size")
		return
	}

	file, header, err := r.FormFile("certificate")
	if err != nil {
		response.BadRequest(w, "MISSING_FILE", "Certificate file is required")
		return
	}
	defer file.Close()

	fileType := header.Header.Get("Content-Type")
	certificate, err := h.certificateUsecase.UploadCertificate(r.Context(), userID, header.Filename, fileType, header.Size, file)
	if err != nil {
		switch err {
		case usecase.ErrLawyerProfileNotFound:
			response.NotFound(w, "LAWYER_NOT_FOUND", "Lawyer profile not found")
		case usecase.ErrCertificateAlreadyUploaded:
			response.Conflict(w, "DUPLICATE_CERTIFICATE", "You have already uploaded this certificate")
		case usecase.ErrDuplicateCertificate:
			response.Conflict(w, "DUPLICATE_CERTIFICATE", "Certificate is already registered")
		default:
			response.InternalServerError(w, "Failed to upload certificate")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Certificate uploaded successfully", certificate)
}

func (h *CertificateHandler) GetMyCertificates(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	certificates, err := h.certificateUsecase.GetMyCertificates(r.Context(), userID)
	if err != nil {
		response.InternalServerError(w, "Failed to get certificates")
		return
	}

	response.Success(w, http.StatusOK, "Certificates retrieved successfully", certificates)
}
