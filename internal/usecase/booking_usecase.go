package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/sandy191020/LexConnect/internal/converter"
	"github.com/sandy191020/LexConnect/internal/delivery/dto"
	"github.com/sandy191020/LexConnect/internal/domain/entity"
	"github.com/sandy191020/LexConnect/internal/domain/repository"
	"github.com/sandy191020/LexConnect/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrBookingNotFound         = errors.New("booking not found")
	ErrBookingNotOwned         = errors.New("booking does not belong to this lawyer")
	ErrBookingNotPending       = errors.New("booking is not pending")
	ErrDuplicatePendingBooking = errors.New("a pending booking with this lawyer already exists")
	ErrLawyerNotFound          = errors.New("lawyer not found or not approved")
	ErrInvalidDateFormat       = errors.New("invalid date format, use YYYY-MM-DD")
	ErrUnsupportedRole         = errors.New("role cannot access bookings")
)

const maxBookingListSize = 100

type BookingUsecase interface {
	CreateBooking(ctx context.Context, clientID uuid.UUID, req *dto.CreateBookingRequest) (*dto.BookingResponse, error)
	AcceptBooking(ctx context.Context, lawyerID, bookingID uuid.UUID) (*dto.BookingResponse, error)
	RejectBooking(ctx context.Context, lawyerID, bookingID uuid.UUID) (*dto.BookingResponse, error)
	GetMyBookings(ctx context.Context, userID uuid.UUID, roleID int) (*dto.BookingListResponse, error)
}

type bookingUsecase struct {
	db                *gorm.DB
	log               *logrus.Logger
	bookingRepo       repository.BookingRepository
	lawyerProfileRepo repository.LawyerProfileRepository
	outboxRepo        repository.OutboxRepository
	auditService      service.AuditService
}

func NewBookingUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	bookingRepo repository.BookingRepository,
	lawyerProfileRepo repository.LawyerProfileRepository,
	outboxRepo repository.OutboxRepository,
	auditService service.AuditService,
) BookingUsecase {
	return &bookingUsecase{
		db:                db,
		log:               log,
		bookingRepo:       bookingRepo,
		lawyerProfileRepo: lawyerProfileRepo,
		outboxRepo:        outboxRepo,
		auditService:      auditService,
	}
}

func (u *bookingUsecase) CreateBooking(ctx context.Context, clientID uuid.UUID, req *dto.CreateBookingRequest) (*dto.BookingResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	// Only approved lawyers are bookable; an unapproved profile is
	// indistinguishable from a missing one.
	profile, err := u.lawyerProfileRepo.FindByUserID(tx, req.LawyerID)
	if err != nil {
		u.log.Warnf("Failed to find lawyer profile: %+v", err)
		return nil, err
	}
	if profile == nil || !profile.IsApproved {
		return nil, ErrLawyerNotFound
	}

	existing, err := u.bookingRepo.FindPendingByClientAndLawyer(tx, clientID, req.LawyerID)
	if err != nil {
		u.log.Warnf("Failed to check pending booking: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicatePendingBooking
	}

	booking := &entity.Booking{
		ClientID:        clientID,
		LawyerID:        req.LawyerID,
		Status:          entity.BookingStatusPending,
		CaseDescription: req.CaseDescription,
		HearingTime:     req.HearingTime,
	}

	if req.HearingDate != "" {
		hearingDate, err := time.Parse("2006-01-02", req.HearingDate)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		booking.HearingDate = &hearingDate
	}

	if err := u.bookingRepo.Create(tx, booking); err != nil {
		// Loser of a concurrent create trips the partial unique index on
		// pending (client, lawyer) pairs.
		if isDuplicateKeyError(err, "pending_pair") {
			return nil, ErrDuplicatePendingBooking
		}
		u.log.Warnf("Failed to create booking: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogAction(ctx, tx, &clientID, entity.AuditActionBookingCreate, "booking", booking.ID.String(), nil); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	booking.Lawyer = *profile
	return converter.BookingToResponse(booking), nil
}

func (u *bookingUsecase) AcceptBooking(ctx context.Context, lawyerID, bookingID uuid.UUID) (*dto.BookingResponse, error) {
	return u.resolveBooking(ctx, lawyerID, bookingID, entity.BookingStatusAccepted)
}

func (u *bookingUsecase) RejectBooking(ctx context.Context, lawyerID, bookingID uuid.UUID) (*dto.BookingResponse, error) {
	return u.resolveBooking(ctx, lawyerID, bookingID, entity.BookingStatusRejected)
}

// resolveBooking moves a pending booking to accepted or rejected. The
// precheck produces precise errors; the conditional update is the actual
// guard, so a concurrent resolver that slips between the two still loses.
// The client notification is queued in the same transaction and delivered
// later by the outbox dispatcher.
func (u *bookingUsecase) resolveBooking(ctx context.Context, lawyerID, bookingID uuid.UUID, status entity.BookingStatus) (*dto.BookingResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	booking, err := u.bookingRepo.FindByID(tx, bookingID)
	if err != nil {
		u.log.Warnf("Failed to find booking: %+v", err)
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}
	if booking.LawyerID != lawyerID {
		return nil, ErrBookingNotOwned
	}
	if !booking.IsPending() {
		return nil, ErrBookingNotPending
	}

	resolvedAt := time.Now()
	rows, err := u.bookingRepo.ResolveFromPending(tx, bookingID, status, resolvedAt)
	if err != nil {
		u.log.Warnf("Failed to resolve booking: %+v", err)
		return nil, err
	}
	if rows == 0 {
		return nil, ErrBookingNotPending
	}

	if err := u.enqueueNotification(tx, booking, status); err != nil {
		return nil, err
	}

	action := entity.AuditActionBookingAccept
	if status == entity.BookingStatusRejected {
		action = entity.AuditActionBookingReject
	}
	if err := u.auditService.LogAction(ctx, tx, &lawyerID, action, "booking", booking.ID.String(), nil); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	booking.Status = status
	if status == entity.BookingStatusAccepted {
		booking.AcceptedAt = &resolvedAt
	} else {
		booking.RejectedAt = &resolvedAt
	}

	return converter.BookingToResponse(booking), nil
}

func (u *bookingUsecase) enqueueNotification(tx *gorm.DB, booking *entity.Booking, status entity.BookingStatus) error {
	kind := entity.NotificationBookingAccepted
	if status == entity.BookingStatusRejected {
		kind = entity.NotificationBookingRejected
	}

	payload := entity.JSON{
		"recipient_name":      booking.Client.FullName,
		"lawyer_name":         booking.Lawyer.User.FullName,
		"lawyer_email":        booking.Lawyer.User.Email,
		"lawyer_phone":        booking.Lawyer.User.Phone,
		"charges_per_hearing": booking.Lawyer.ChargesPerHearing,
		"hearing_time":        booking.HearingTime,
	}
	if booking.HearingDate != nil {
		payload["hearing_date"] = booking.HearingDate.Format("2006-01-02")
	}

	entry := &entity.NotificationOutbox{
		BookingID: booking.ID,
		Kind:      kind,
		Recipient: booking.Client.Email,
		Payload:   payload,
		Status:    entity.OutboxStatusPending,
	}

	if err := u.outboxRepo.Create(tx, entry); err != nil {
		u.log.Warnf("Failed to enqueue notification: %+v", err)
		return err
	}
	return nil
}

func (u *bookingUsecase) GetMyBookings(ctx context.Context, userID uuid.UUID, roleID int) (*dto.BookingListResponse, error) {
	db := u.db.WithContext(ctx)

	var (
		bookings []entity.Booking
		err      error
	)
	switch roleID {
	case entity.RoleIDLawyer:
		bookings, err = u.bookingRepo.FindByLawyerID(db, userID, maxBookingListSize)
	case entity.RoleIDClient:
		bookings, err = u.bookingRepo.FindByClientID(db, userID, maxBookingListSize)
	default:
		return nil, ErrUnsupportedRole
	}
	if err != nil {
		u.log.Warnf("Failed to list bookings: %+v", err)
		return nil, err
	}

	return &dto.BookingListResponse{
		Bookings: converter.BookingsToResponses(bookings),
		Total:    len(bookings),
	}, nil
}
