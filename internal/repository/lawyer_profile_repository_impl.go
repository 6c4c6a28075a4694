package repository

import (
	"errors"

	"github.com/sandy191020/LexConnect/internal/domain/entity"
	domainRepo "github.com/sandy191020/LexConnect/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type lawyerProfileRepository struct{}

func NewLawyerProfileRepository() domainRepo.LawyerProfileRepository {
	return &lawyerProfileRepository{}
}

func (r *lawyerProfileRepository) Create(db *gorm.DB, profile *entity.LawyerProfile) error {
	return db.Create(profile).Error
}

func (r *lawyerProfileRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.LawyerProfile, error) {
	var profile entity.LawyerProfile
	err := db.Preload("User").Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

// FindApproved returns the public directory: approved lawyers ordered by
// rating then booking volume.
func (r *lawyerProfileRepository) FindApproved(db *gorm.DB) ([]entity.LawyerProfile, error) {
	var profiles []entity.LawyerProfile
	err := db.Preload("User").
		Where("is_approved = ?", true).
		Order("rating DESC, total_bookings DESC").
		Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *lawyerProfileRepository) FindPending(db *gorm.DB) ([]entity.LawyerProfile, error) {
	var profiles []entity.LawyerProfile
	err := db.Preload("User").Preload("Certificates").
		Where("is_approved = ?", false).
		Order("created_at DESC").
		Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *lawyerProfileRepository) Update(db *gorm.DB, profile *entity.LawyerProfile) error {
	return db.Omit("User", "Certificates", "Slots").Save(profile).Error
}
