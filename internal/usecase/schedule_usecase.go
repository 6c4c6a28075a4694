package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/sandy191020/LexConnect/internal/converter"
	"github.com/sandy191020/LexConnect/internal/delivery/dto"
	"github.com/sandy191020/LexConnect/internal/domain/entity"
	"github.com/sandy191020/LexConnect/internal/domain/repository"
	"github.com/sandy191020/LexConnect/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrSlotConflict      = errors.New("slot overlaps an existing available slot")
	ErrInvalidTimeFormat = errors.New("invalid time format, use HH:MM")
	ErrInvalidTimeRange  = errors.New("start time must be before end time")
)

type ScheduleUsecase interface {
	CreateSlot(ctx context.Context, lawyerID uuid.UUID, req *dto.CreateSlotRequest) (*dto.SlotResponse, error)
	GetSlots(ctx context.Context, filter *entity.SlotFilter) (*dto.SlotListResponse, error)
}

type scheduleUsecase struct {
	db                *gorm.DB
	log               *logrus.Logger
	scheduleSlotRepo  repository.ScheduleSlotRepository
	lawyerProfileRepo repository.LawyerProfileRepository
	auditService      service.AuditService
}

func NewScheduleUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	scheduleSlotRepo repository.ScheduleSlotRepository,
	lawyerProfileRepo repository.LawyerProfileRepository,
	auditService service.AuditService,
) ScheduleUsecase {
	return &scheduleUsecase{
		db:                db,
		log:               log,
		scheduleSlotRepo:  scheduleSlotRepo,
		lawyerProfileRepo: lawyerProfileRepo,
		auditService:      auditService,
	}
}

// CreateSlot publishes an availability window. Windows are half-open
// [start, end) on zero-padded HH:MM strings, so back-to-back slots
// (09:00-10:00, 10:00-11:00) never conflict. Overlap is checked only against
// slots still marked available; consumed slots no longer block the calendar.
func (u *scheduleUsecase) CreateSlot(ctx context.Context, lawyerID uuid.UUID, req *dto.CreateSlotRequest) (*dto.SlotResponse, error) {
	slotDate, err := time.Parse("2006-01-02", req.SlotDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	startTime, err := normalizeClock(req.StartTime)
	if err != nil {
		return nil, ErrInvalidTimeFormat
	}
	endTime, err := normalizeClock(req.EndTime)
	if err != nil {
		return nil, ErrInvalidTimeFormat
	}
	if startTime >= endTime {
		return nil, ErrInvalidTimeRange
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	profile, err := u.lawyerProfileRepo.FindByUserID(tx, lawyerID)
	if err != nil {
		u.log.Warnf("Failed to find lawyer profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrLawyerProfileNotFound
	}

	overlap, err := u.scheduleSlotRepo.FindAvailableOverlap(tx, lawyerID, slotDate, startTime, endTime)
	if err != nil {
		u.log.Warnf("Failed to check slot overlap: %+v", err)
		return nil, err
	}
	if overlap != nil {
		return nil, ErrSlotConflict
	}

	slot := &entity.ScheduleSlot{
		LawyerID:    lawyerID,
		SlotDate:    slotDate,
		StartTime:   startTime,
		EndTime:     endTime,
		IsAvailable: true,
	}

	if err := u.scheduleSlotRepo.Create(tx, slot); err != nil {
		u.log.Warnf("Failed to create slot: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogAction(ctx, tx, &lawyerID, entity.AuditActionScheduleCreate, "schedule_slot", req.SlotDate, nil); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.SlotToResponse(slot), nil
}

func (u *scheduleUsecase) GetSlots(ctx context.Context, filter *entity.SlotFilter) (*dto.SlotListResponse, error) {
	slots, err := u.scheduleSlotRepo.FindByFilter(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to list slots: %+v", err)
		return nil, err
	}

	return &dto.SlotListResponse{
		Slots: converter.SlotsToResponses(slots),
		Total: len(slots),
	}, nil
}

// normalizeClock validates an HH:MM value and re-renders it zero padded so
// lexicographic comparison matches chronological order.
func normalizeClock(value string) (string, error) {
	t, err := time.Parse("15:04", value)
	if err != nil {
		return "", err
	}
	return t.Format("15:04"), nil
}
