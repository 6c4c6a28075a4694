package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sandy191020/LexConnect/internal/delivery/dto"
	"github.com/sandy191020/LexConnect/internal/delivery/http/middleware"
	"github.com/sandy191020/LexConnect/internal/usecase"
	"github.com/sandy191020/LexConnect/pkg/response"
	"github.com/sandy191020/LexConnect/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type LawyerHandler struct {
	lawyerUsecase usecase.LawyerUsecase
	validator     *validator.CustomValidator
}

func NewLawyerHandler(lawyerUsecase usecase.LawyerUsecase, validator *validator.CustomValidator) *LawyerHandler {
	return &LawyerHandler{
		lawyerUsecase: lawyerUsecase,
		validator:     validator,
	}
}

// GetApprovedLawyers serves the public directory.
func (h *LawyerHandler) GetApprovedLawyers(w http.ResponseWriter, r *http.Request) {
	lawyers, err := h.lawyerUsecase.GetApprovedLawyers(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get lawyers")
		return
	}

	response.Success(w, http.StatusOK, "Lawyers retrieved successfully", lawyers)
}

func (h *LawyerHandler) GetPendingLawyers(w http.ResponseWriter, r *http.Request) {
	lawyers, err := h.lawyerUsecase.GetPendingLawyers(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get pending lawyers")
		return
	}

	response.Success(w, http.StatusOK, "Pending lawyers retrieved successfully", lawyers)
}

func (h *LawyerHandler) ApproveLawyer(w http.ResponseWriter, r *http.Request) {
	adminID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	vars := mux.Vars(r)
	lawyerID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.BadRequest(w, "INVALID_ID", "Invalid lawyer ID")
		return
	}

	var req dto.ApproveLawyerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "INVALID_BODY", "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	lawyer, err := h.lawyerUsecase.ApproveLawyer(r.Context(), adminID, lawyerID, *req.Approve)
	if err != nil {
		switch err {
		case usecase.ErrLawyerProfileNotFound:
			response.NotFound(w, "LAWYER_NOT_FOUND", "Lawyer profile not found")
		case usecase.ErrLawyerAlreadyApproved:
			response.Conflict(w, "LAWYER_ALREADY_APPROVED", "Lawyer is already approved")
		case usecase.ErrUserNotFound:
			response.NotFound(w, "USER_NOT_FOUND", "User not found")
		default:
			response.InternalServerError(w, "Failed to resolve lawyer review")
		}
		return
	}

	message := "Lawyer approved successfully"
	if !*req.Approve {
		message = "Lawyer rejected"
	}
	response.Success(w, http.StatusOK, message, lawyer)
}

func (h *LawyerHandler) CreateAdmin(w http.ResponseWriter, r *http.Request) {
	adminID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	var req dto.CreateAdminRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "INVALID_BODY", "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	user, err := h.lawyerUsecase.CreateAdmin(r.Context(), adminID, &req)
	if err != nil {
		switch err {
		case usecase.ErrEmailAlreadyExists:
			response.Conflict(w, "EMAIL_ALREADY_EXISTS", "Email already exists")
		default:
			response.InternalServerError(w, "Failed to create admin")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Admin created successfully", user)
}
