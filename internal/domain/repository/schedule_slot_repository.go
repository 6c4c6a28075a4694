package repository

import (
	"time"

	"github.com/sandy191020/LexConnect/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ScheduleSlotRepository interface {
	Create(db *gorm.DB, slot *entity.ScheduleSlot) error
	FindAvailableOverlap(db *gorm.DB, lawyerID uuid.UUID, date time.Time, start, end string) (*entity.ScheduleSlot, error)
	FindByFilter(db *gorm.DB, filter *entity.SlotFilter) ([]entity.ScheduleSlot, error)
}
