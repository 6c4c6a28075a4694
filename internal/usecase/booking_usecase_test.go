package usecase_test

import (
	"context"
	"testing"

	"github.com/sandy191020/LexConnect/internal/delivery/dto"
	"github.com/sandy191020/LexConnect/internal/domain/entity"
	"github.com/sandy191020/LexConnect/internal/repository"
	"github.com/sandy191020/LexConnect/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newBookingUsecase(db *gorm.DB) usecase.BookingUsecase {
	log := newTestLogger()
	return usecase.NewBookingUsecase(
		db,
		log,
		repository.NewBookingRepository(),
		repository.NewLawyerProfileRepository(),
		repository.NewOutboxRepository(),
		newTestAuditService(log),
	)
}

func TestCreateBooking(t *testing.T) {
	db := newTestDB(t)
	uc := newBookingUsecase(db)

	client := createUser(t, db, entity.RoleIDClient)
	lawyer, _ := createLawyer(t, db, true)

	booking, err := uc.CreateBooking(context.Background(), client.ID, &dto.CreateBookingRequest{
		LawyerID:        lawyer.ID,
		CaseDescription: "Contract review dispute",
		HearingDate:     "2026-10-01",
		HearingTime:     "11:00",
	})
	require.NoError(t, err)

	assert.Equal(t, string(entity.BookingStatusPending), booking.Status)
	assert.Equal(t, client.ID, booking.ClientID)
	assert.Equal(t, lawyer.ID, booking.LawyerID)
	assert.Equal(t, "2026-10-01", booking.HearingDate)
	assert.Nil(t, booking.AcceptedAt)
	assert.Nil(t, booking.RejectedAt)

	assert.EqualValues(t, 1, countAuditLogs(t, db, entity.AuditActionBookingCreate))
}

func TestCreateBookingLawyerNotApproved(t *testing.T) {
	db := newTestDB(t)
	uc := newBookingUsecase(db)

	client := createUser(t, db, entity.RoleIDClient)
	lawyer, _ := createLawyer(t, db, false)

	_, err := uc.CreateBooking(context.Background(), client.ID, &dto.CreateBookingRequest{
		LawyerID: lawyer.ID,
	})
	assert.ErrorIs(t, err, usecase.ErrLawyerNotFound)
}

func TestCreateBookingLawyerMissing(t *testing.T) {
	db := newTestDB(t)
	uc := newBookingUsecase(db)

	client := createUser(t, db, entity.RoleIDClient)

	_, err := uc.CreateBooking(context.Background(), client.ID, &dto.CreateBookingRequest{
		LawyerID: uuid.New(),
	})
	assert.ErrorIs(t, err, usecase.ErrLawyerNotFound)
}

func TestCreateBookingDuplicatePending(t *testing.T) {
	db := newTestDB(t)
	uc := newBookingUsecase(db)

	client := createUser(t, db, entity.RoleIDClient)
	lawyer, _ := createLawyer(t, db, true)

	_, err := uc.CreateBooking(context.Background(), client.ID, &dto.CreateBookingRequest{LawyerID: lawyer.ID})
	require.NoError(t, err)

	_, err = uc.CreateBooking(context.Background(), client.ID, &dto.CreateBookingRequest{LawyerID: lawyer.ID})
	assert.ErrorIs(t, err, usecase.ErrDuplicatePendingBooking)
}

func TestCreateBookingAfterResolutionAllowed(t *testing.T) {
	db := newTestDB(t)
	uc := newBookingUsecase(db)

	client := createUser(t, db, entity.RoleIDClient)
	lawyer, _ := createLawyer(t, db, true)

	// A resolved booking does not block a new request to the same lawyer.
	createBooking(t, db, client.ID, lawyer.ID, entity.BookingStatusRejected)

	_, err := uc.CreateBooking(context.Background(), client.ID, &dto.CreateBookingRequest{LawyerID: lawyer.ID})
	assert.NoError(t, err)
}

func TestCreateBookingInvalidHearingDate(t *testing.T) {
	db := newTestDB(t)
	uc := newBookingUsecase(db)

	client := createUser(t, db, entity.RoleIDClient)
	lawyer, _ := createLawyer(t, db, true)

	_, err := uc.CreateBooking(context.Background(), client.ID, &dto.CreateBookingRequest{
		LawyerID:    lawyer.ID,
		HearingDate: "01-10-2026",
	})
	assert.ErrorIs(t, err, usecase.ErrInvalidDateFormat)
}

func TestAcceptBooking(t *testing.T) {
	db := newTestDB(t)
	uc := newBookingUsecase(db)

	client := createUser(t, db, entity.RoleIDClient)
	lawyer, _ := createLawyer(t, db, true)
	booking := createBooking(t, db, client.ID, lawyer.ID, entity.BookingStatusPending)

	resp, err := uc.AcceptBooking(context.Background(), lawyer.ID, booking.ID)
	require.NoError(t, err)

	assert.Equal(t, string(entity.BookingStatusAccepted), resp.Status)
	assert.NotNil(t, resp.AcceptedAt)
	assert.Nil(t, resp.RejectedAt)

	var stored entity.Booking
	require.NoError(t, db.First(&stored, "id = ?", booking.ID).Error)
	assert.Equal(t, entity.BookingStatusAccepted, stored.Status)
	assert.NotNil(t, stored.AcceptedAt)

	// The notification commits with the transition.
	var entry entity.NotificationOutbox
	require.NoError(t, db.First(&entry, "booking_id = ?", booking.ID).Error)
	assert.Equal(t, entity.NotificationBookingAccepted, entry.Kind)
	assert.Equal(t, client.Email, entry.Recipient)
	assert.Equal(t, entity.OutboxStatusPending, entry.Status)

	assert.EqualValues(t, 1, countAuditLogs(t, db, entity.AuditActionBookingAccept))
}

func TestRejectBooking(t *testing.T) {
	db := newTestDB(t)
	uc := newBookingUsecase(db)

	client := createUser(t, db, entity.RoleIDClient)
	lawyer, _ := createLawyer(t, db, true)
	booking := createBooking(t, db, client.ID, lawyer.ID, entity.BookingStatusPending)

	resp, err := uc.RejectBooking(context.Background(), lawyer.ID, booking.ID)
	require.NoError(t, err)

	assert.Equal(t, string(entity.BookingStatusRejected), resp.Status)
	assert.NotNil(t, resp.RejectedAt)
	assert.Nil(t, resp.AcceptedAt)

	var entry entity.NotificationOutbox
	require.NoError(t, db.First(&entry, "booking_id = ?", booking.ID).Error)
	assert.Equal(t, entity.NotificationBookingRejected, entry.Kind)

	assert.EqualValues(t, 1, countAuditLogs(t, db, entity.AuditActionBookingReject))
}

func TestAcceptBookingNotFound(t *testing.T) {
	db := newTestDB(t)
	uc := newBookingUsecase(db)

	lawyer, _ := createLawyer(t, db, true)

	_, err := uc.AcceptBooking(context.Background(), lawyer.ID, uuid.New())
	assert.ErrorIs(t, err, usecase.ErrBookingNotFound)
}

func TestAcceptBookingNotOwned(t *testing.T) {
	db := newTestDB(t)
	uc := newBookingUsecase(db)

	client := createUser(t, db, entity.RoleIDClient)
	lawyer, _ := createLawyer(t, db, true)
	other, _ := createLawyer(t, db, true)
	booking := createBooking(t, db, client.ID, lawyer.ID, entity.BookingStatusPending)

	_, err := uc.AcceptBooking(context.Background(), other.ID, booking.ID)
	assert.ErrorIs(t, err, usecase.ErrBookingNotOwned)
}

func TestAcceptBookingAlreadyResolved(t *testing.T) {
	db := newTestDB(t)
	uc := newBookingUsecase(db)

	client := createUser(t, db, entity.RoleIDClient)
	lawyer, _ := createLawyer(t, db, true)
	booking := createBooking(t, db, client.ID, lawyer.ID, entity.BookingStatusRejected)

	_, err := uc.AcceptBooking(context.Background(), lawyer.ID, booking.ID)
	assert.ErrorIs(t, err, usecase.ErrBookingNotPending)

	// The resolution must not have been overwritten.
	var stored entity.Booking
	require.NoError(t, db.First(&stored, "id = ?", booking.ID).Error)
	assert.Equal(t, entity.BookingStatusRejected, stored.Status)
}

func TestRejectBookingAlreadyAccepted(t *testing.T) {
	db := newTestDB(t)
	uc := newBookingUsecase(db)

	client := createUser(t, db, entity.RoleIDClient)
	lawyer, _ := createLawyer(t, db, true)
	booking := createBooking(t, db, client.ID, lawyer.ID, entity.BookingStatusAccepted)

	_, err := uc.RejectBooking(context.Background(), lawyer.ID, booking.ID)
	assert.ErrorIs(t, err, usecase.ErrBookingNotPending)
}

func TestGetMyBookings(t *testing.T) {
	db := newTestDB(t)
	uc := newBookingUsecase(db)

	client := createUser(t, db, entity.RoleIDClient)
	otherClient := createUser(t, db, entity.RoleIDClient)
	lawyer, _ := createLawyer(t, db, true)

	createBooking(t, db, client.ID, lawyer.ID, entity.BookingStatusPending)
	createBooking(t, db, otherClient.ID, lawyer.ID, entity.BookingStatusPending)

	clientList, err := uc.GetMyBookings(context.Background(), client.ID, entity.RoleIDClient)
	require.NoError(t, err)
	assert.Equal(t, 1, clientList.Total)

	lawyerList, err := uc.GetMyBookings(context.Background(), lawyer.ID, entity.RoleIDLawyer)
	require.NoError(t, err)
	assert.Equal(t, 2, lawyerList.Total)
}

func TestGetMyBookingsAdminRole(t *testing.T) {
	db := newTestDB(t)
	uc := newBookingUsecase(db)

	admin := createUser(t, db, entity.RoleIDAdmin)

	_, err := uc.GetMyBookings(context.Background(), admin.ID, entity.RoleIDAdmin)
	assert.ErrorIs(t, err, usecase.ErrUnsupportedRole)
}
