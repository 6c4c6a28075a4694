package repository

import (
	"errors"
	"time"

	"github.com/sandy191020/LexConnect/internal/domain/entity"
	domainRepo "github.com/sandy191020/LexConnect/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type bookingRepository struct{}

func NewBookingRepository() domainRepo.BookingRepository {
	return &bookingRepository{}
}

func (r *bookingRepository) Create(db *gorm.DB, booking *entity.Booking) error {
	return db.Create(booking).Error
}

func (r *bookingRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Booking, error) {
	var booking entity.Booking
	err := db.Preload("Client").Preload("Lawyer.User").Where("id = ?", id).First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) FindByClientID(db *gorm.DB, clientID uuid.UUID, limit int) ([]entity.Booking, error) {
	var bookings []entity.Booking
	err := db.Preload("Lawyer.User").
		Where("client_id = ?", clientID).
		Order("created_at DESC").
		Limit(limit).
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) FindByLawyerID(db *gorm.DB, lawyerID uuid.UUID, limit int) ([]entity.Booking, error) {
	var bookings []entity.Booking
	err := db.Preload("Client").
		Where("lawyer_id = ?", lawyerID).
		Order("created_at DESC").
		Limit(limit).
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) FindPendingByClientAndLawyer(db *gorm.DB, clientID, lawyerID uuid.UUID) (*entity.Booking, error) {
	var booking entity.Booking
	err := db.Where("client_id = ? AND lawyer_id = ? AND status = ?", clientID, lawyerID, entity.BookingStatusPending).
		First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

// ResolveFromPending atomically moves a booking out of pending, stamping the
// matching resolution timestamp. Returns affected rows: 1 = success, 0 = the
// booking was no longer pending (loser of a concurrent accept/reject race).
func (r *bookingRepository) ResolveFromPending(db *gorm.DB, id uuid.UUID, status entity.BookingStatus, resolvedAt time.Time) (int64, error) {
	updates := map[string]interface{}{"status": status}
	switch status {
	case entity.BookingStatusAccepted:
		updates["accepted_at"] = resolvedAt
	case entity.BookingStatusRejected:
		updates["rejected_at"] = resolvedAt
	}

	result := db.Model(&entity.Booking{}).
		Where("id = ? AND status = ?", id, entity.BookingStatusPending).
		Updates(updates)
	return result.RowsAffected, result.Error
}

func (r *bookingRepository) MarkNotificationSent(db *gorm.DB, id uuid.UUID) error {
	return db.Model(&entity.Booking{}).
		Where("id = ?", id).
		Update("notification_sent", true).Error
}
