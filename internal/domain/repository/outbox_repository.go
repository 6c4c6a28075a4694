package repository

import (
	"time"

	"github.com/sandy191020/LexConnect/internal/domain/entity"

	"gorm.io/gorm"
)

type OutboxRepository interface {
	Create(db *gorm.DB, entry *entity.NotificationOutbox) error
	FindPending(db *gorm.DB, limit int) ([]entity.NotificationOutbox, error)
	MarkSent(db *gorm.DB, id int64, sentAt time.Time) error
	MarkAttemptFailed(db *gorm.DB, id int64, lastError string, final bool) error
}
