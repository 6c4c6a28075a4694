package repository

import (
	"github.com/sandy191020/LexConnect/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LawyerProfileRepository interface {
	Create(db *gorm.DB, profile *entity.LawyerProfile) error
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.LawyerProfile, error)
	FindApproved(db *gorm.DB) ([]entity.LawyerProfile, error)
	FindPending(db *gorm.DB) ([]entity.LawyerProfile, error)
	Update(db *gorm.DB, profile *entity.LawyerProfile) error
}
