package repository

import (
	"errors"

	"github.com/sandy191020/LexConnect/internal/domain/entity"
	domainRepo "github.com/sandy191020/LexConnect/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type certificateRepository struct{}

func NewCertificateRepository() domainRepo.CertificateRepository {
	return &certificateRepository{}
}

func (r *certificateRepository) Create(db *gorm.DB, certificate *entity.Certificate) error {
	return db.Create(certificate).Error
}

func (r *certificateRepository) FindByHash(db *gorm.DB, contentHash string) (*entity.Certificate, error) {
	var certificate entity.Certificate
	err := db.Where("content_hash = ?", contentHash).First(&certificate).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &certificate, nil
}

func (r *certificateRepository) FindByLawyerID(db *gorm.DB, lawyerID uuid.UUID) ([]entity.Certificate, error) {
	var certificates []entity.Certificate
	err := db.Where("lawyer_id = ?", lawyerID).
		Order("uploaded_at DESC").
		Find(&certificates).Error
	if err != nil {
		return nil, err
	}
	return certificates, nil
}
