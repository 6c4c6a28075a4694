package repository

import (
	"time"

	"github.com/sandy191020/LexConnect/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingRepository interface {
	Create(db *gorm.DB, booking *entity.Booking) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Booking, error)
	FindByClientID(db *gorm.DB, clientID uuid.UUID, limit int) ([]entity.Booking, error)
	FindByLawyerID(db *gorm.DB, lawyerID uuid.UUID, limit int) ([]entity.Booking, error)
	FindPendingByClientAndLawyer(db *gorm.DB, clientID, lawyerID uuid.UUID) (*entity.Booking, error)
	ResolveFromPending(db *gorm.DB, id uuid.UUID, status entity.BookingStatus, resolvedAt time.Time) (int64, error)
	MarkNotificationSent(db *gorm.DB, id uuid.UUID) error
}
