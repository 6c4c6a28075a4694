package repository

import (
	"github.com/sandy191020/LexConnect/internal/domain/entity"

	"gorm.io/gorm"
)

type AuditLogRepository interface {
	Create(db *gorm.DB, auditLog *entity.AuditLog) error
	FindAll(db *gorm.DB) ([]entity.AuditLog, error)
}
