package repository

import (
	"errors"
	"time"

	"github.com/sandy191020/LexConnect/internal/domain/entity"
	domainRepo "github.com/sandy191020/LexConnect/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type scheduleSlotRepository struct{}

func NewScheduleSlotRepository() domainRepo.ScheduleSlotRepository {
	return &scheduleSlotRepository{}
}

func (r *scheduleSlotRepository) Create(db *gorm.DB, slot *entity.ScheduleSlot) error {
	return db.Create(slot).Error
}

// FindAvailableOverlap returns a slot still marked available whose half-open
// [start_time, end_time) window intersects [start, end) on the given date.
// Slots already consumed by a booking are not considered.
func (r *scheduleSlotRepository) FindAvailableOverlap(db *gorm.DB, lawyerID uuid.UUID, date time.Time, start, end string) (*entity.ScheduleSlot, error) {
	var slot entity.ScheduleSlot
	err := db.Where(
		"lawyer_id = ? AND slot_date = ? AND is_available = ? AND start_time < ? AND end_time > ?",
		lawyerID, date, true, end, start,
	).First(&slot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &slot, nil
}

func (r *scheduleSlotRepository) FindByFilter(db *gorm.DB, filter *entity.SlotFilter) ([]entity.ScheduleSlot, error) {
	query := db.Model(&entity.ScheduleSlot{})

	if filter != nil {
		if filter.LawyerID != uuid.Nil {
			query = query.Where("lawyer_id = ?", filter.LawyerID)
		}
		if filter.StartDate != "" {
			query = query.Where("slot_date >= ?", filter.StartDate)
		}
		if filter.EndDate != "" {
			query = query.Where("slot_date <= ?", filter.EndDate)
		}
	}

	var slots []entity.ScheduleSlot
	err := query.Order("slot_date ASC, start_time ASC").Find(&slots).Error
	if err != nil {
		return nil, err
	}
	return slots, nil
}
