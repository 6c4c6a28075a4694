package repository

import (
	"github.com/sandy191020/LexConnect/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CertificateRepository interface {
	Create(db *gorm.DB, certificate *entity.Certificate) error
	FindByHash(db *gorm.DB, contentHash string) (*entity.Certificate, error)
	FindByLawyerID(db *gorm.DB, lawyerID uuid.UUID) ([]entity.Certificate, error)
}
