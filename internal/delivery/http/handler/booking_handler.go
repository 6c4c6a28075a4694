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

type BookingHandler struct {
	bookingUsecase usecase.BookingUsecase
	validator      *validator.CustomValidator
}

func NewBookingHandler(bookingUsecase usecase.BookingUsecase, validator *validator.CustomValidator) *BookingHandler {
	return &BookingHandler{
		bookingUsecase: bookingUsecase,
		validator:      validator,
	}
}

func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	var req dto.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "INVALID_BODY", "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	booking, err := h.bookingUsecase.CreateBooking(r.Context(), userID, &req)
	if err != nil {
		switch err {
		case usecase.ErrLawyerNotFound:
			response.NotFound(w, "LAWYER_NOT_FOUND", "Lawyer not found or not approved")
		case usecase.ErrDuplicatePendingBooking:
			response.Conflict(w, "DUPLICATE_PENDING_BOOKING", "You already have a pending booking with this lawyer")
		case usecase.ErrInvalidDateFormat:
			response.BadRequest(w, "INVALID_DATE", "Invalid hearing date, use YYYY-MM-DD")
		default:
			response.InternalServerError(w, "Failed to create booking")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Booking created successfully", booking)
}

func (h *BookingHandler) GetMyBookings(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}
	roleID, _ := middleware.GetRoleIDFromContext(r.Context())

	bookings, err := h.bookingUsecase.GetMyBookings(r.Context(), userID, roleID)
	if err != nil {
		if err == usecase.ErrUnsupportedRole {
			response.Forbidden(w, "You don't have permission to access this resource")
			return
		}
		response.InternalServerError(w, "Failed to get bookings")
		return
	}

	response.Success(w, http.StatusOK, "Bookings retrieved successfully", bookings)
}

func (h *BookingHandler) AcceptBooking(w http.ResponseWriter, r *http.Request) {
	h.resolveBooking(w, r, true)
}

func (h *BookingHandler) RejectBooking(w http.ResponseWriter, r *http.Request) {
	h.resolveBooking(w, r, false)
}

func (h *BookingHandler) resolveBooking(w http.ResponseWriter, r *http.Request, accept bool) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	vars := mux.Vars(r)
	bookingID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.BadRequest(w, "INVALID_ID", "Invalid booking ID")
		return
	}

	var booking *dto.BookingResponse
	if accept {
		booking, err = h.bookingUsecase.AcceptBooking(r.Context(), userID, bookingID)
	} else {
		booking, err = h.bookingUsecase.RejectBooking(r.Context(), userID, bookingID)
	}
	if err != nil {
		switch err {
		case usecase.ErrBookingNotFound:
			response.NotFound(w, "BOOKING_NOT_FOUND", "Booking not found")
		case usecase.ErrBookingNotOwned:
			response.Forbidden(w, "Booking does not belong to you")
		case usecase.ErrBookingNotPending:
			response.Conflict(w, "BOOKING_NOT_PENDING", "Booking is not pending")
		default:
			response.InternalServerError(w, "Failed to resolve booking")
		}
		return
	}

	message := "Booking accepted successfully"
	if !accept {
		message = "Booking rejected successfully"
	}
	response.Success(w, http.StatusOK, message, booking)
}
