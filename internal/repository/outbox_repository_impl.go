package repository

import (
	"time"

	"github.com/sandy191020/LexConnect/internal/domain/entity"
	domainRepo "github.com/sandy191020/LexConnect/internal/domain/repository"

	"gorm.io/gorm"
)

type outboxRepository struct{}

func NewOutboxRepository() domainRepo.OutboxRepository {
	return &outboxRepository{}
}

func (r *outboxRepository) Create(db *gorm.DB, entry *entity.NotificationOutbox) error {
	return db.Create(entry).Error
}

func (r *outboxRepository) FindPending(db *gorm.DB, limit int) ([]entity.NotificationOutbox, error) {
	var entries []entity.NotificationOutbox
	err := db.Where("status = ?", entity.OutboxStatusPending).
		Order("created_at ASC").
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *outboxRepository) MarkSent(db *gorm.DB, id int64, sentAt time.Time) error {
	return db.Model(&entity.NotificationOutbox{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":   entity.OutboxStatusSent,
			"attempts": gorm.Expr("attempts + 1"),
			"sent_at":  sentAt,
		}).Error
}

// MarkAttemptFailed records a failed delivery attempt. When final is true the
// entry moves to failed and is no longer retried.
func (r *outboxRepository) MarkAttemptFailed(db *gorm.DB, id int64, lastError string, final bool) error {
	status := entity.OutboxStatusPending
	if final {
		status = entity.OutboxStatusFailed
	}
	return db.Model(&entity.NotificationOutbox{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"attempts":   gorm.Expr("attempts + 1"),
			"last_error": lastError,
		}).Error
}
