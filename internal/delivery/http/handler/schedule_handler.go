package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sandy191020/LexConnect/internal/delivery/dto"
	"github.com/sandy191020/LexConnect/internal/delivery/http/middleware"
	"github.com/sandy191020/LexConnect/internal/domain/entity"
	"github.com/sandy191020/LexConnect/internal/usecase"
	"github.com/sandy191020/LexConnect/pkg/response"
	"github.com/sandy191020/LexConnect/pkg/validator"

	"github.com/google/uuid"
)

type ScheduleHandler struct {
	scheduleUsecase usecase.ScheduleUsecase
	validator       *validator.CustomValidator
}

func NewScheduleHandler(scheduleUsecase usecase.ScheduleUsecase, validator *validator.CustomValidator) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleUsecase: scheduleUsecase,
		validator:       validator,
	}
}

func (h *ScheduleHandler) CreateSlot(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	var req dto.CreateSlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "INVALID_BODY", "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	slot, err := h.scheduleUsecase.CreateSlot(r.Context(), userID, &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidDateFormat:
			response.BadRequest(w, "INVALID_DATE", "Invalid slot date, use YYYY-MM-DD")
		case usecase.ErrInvalidTimeFormat:
			response.BadRequest(w, "INVALID_TIME", "Invalid time, use HH:MM")
		case usecase.ErrInvalidTimeRange:
			response.BadRequest(w, "INVALID_TIME_RANGE", "Start time must be before end time")
		case usecase.ErrLawyerProfileNotFound:
			response.NotFound(w, "LAWYER_NOT_FOUND", "Lawyer profile not found")
		case usecase.ErrSlotConflict:
			response.Conflict(w, "SLOT_CONFLICT", "Slot overlaps an existing available slot")
		default:
			response.InternalServerError(w, "Failed to create slot")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Slot created successfully", slot)
}

// GetSlots lists slots. Lawyers see their own calendar; clients must name a
// lawyer via the lawyer_id query parameter.
func (h *ScheduleHandler) GetSlots(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}
	roleID, _ := middleware.GetRoleIDFromContext(r.Context())

	filter := &entity.SlotFilter{
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}

	if roleID == entity.RoleIDLawyer {
		filter.LawyerID = userID
	} else {
		lawyerID, err := uuid.Parse(r.URL.Query().Get("lawyer_id"))
		if err != nil {
			response.BadRequest(w, "INVALID_ID", "lawyer_id query parameter is required")
			return
		}
		filter.LawyerID = lawyerID
	}

	slots, err := h.scheduleUsecase.GetSlots(r.Context(), filter)
	if err != nil {
		response.InternalServerError(w, "Failed to get slots")
		return
	}

	response.Success(w, http.StatusOK, "Slots retrieved successfully", slots)
}
