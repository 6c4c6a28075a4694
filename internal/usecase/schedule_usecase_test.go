package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/sandy191020/LexConnect/internal/delivery/dto"
	"github.com/sandy191020/LexConnect/internal/domain/entity"
	"github.com/sandy191020/LexConnect/internal/repository"
	"github.com/sandy191020/LexConnect/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newScheduleUsecase(db *gorm.DB) usecase.ScheduleUsecase {
	log := newTestLogger()
	return usecase.NewScheduleUsecase(
		db,
		log,
		repository.NewScheduleSlotRepository(),
		repository.NewLawyerProfileRepository(),
		newTestAuditService(log),
	)
}

func createSlot(t *testing.T, db *gorm.DB, lawyerID uuid.UUID, date, start, end string, available bool) *entity.ScheduleSlot {
	t.Helper()

	slotDate, err := time.Parse("2006-01-02", date)
	require.NoError(t, err)

	slot := &entity.ScheduleSlot{
		LawyerID:    lawyerID,
		SlotDate:    slotDate,
		StartTime:   start,
		EndTime:     end,
		IsAvailable: available,
	}
	require.NoError(t, db.Create(slot).Error)
	return slot
}

func TestCreateSlot(t *testing.T) {
	db := newTestDB(t)
	uc := newScheduleUsecase(db)

	lawyer, _ := createLawyer(t, db, true)

	slot, err := uc.CreateSlot(context.Background(), lawyer.ID, &dto.CreateSlotRequest{
		SlotDate:  "2026-09-15",
		StartTime: "09:00",
		EndTime:   "10:00",
	})
	require.NoError(t, err)

	assert.Equal(t, "2026-09-15", slot.SlotDate)
	assert.Equal(t, "09:00", slot.StartTime)
	assert.Equal(t, "10:00", slot.EndTime)
	assert.True(t, slot.IsAvailable)

	assert.EqualValues(t, 1, countAuditLogs(t, db, entity.AuditActionScheduleCreate))
}

func TestCreateSlotOverlapConflict(t *testing.T) {
	db := newTestDB(t)
	uc := newScheduleUsecase(db)

	lawyer, _ := createLawyer(t, db, true)
	createSlot(t, db, lawyer.ID, "2026-09-15", "09:00", "11:00", true)

	_, err := uc.CreateSlot(context.Background(), lawyer.ID, &dto.CreateSlotRequest{
		SlotDate:  "2026-09-15",
		StartTime: "10:00",
		EndTime:   "12:00",
	})
	assert.ErrorIs(t, err, usecase.ErrSlotConflict)
}

func TestCreateSlotBackToBackAllowed(t *testing.T) {
	db := newTestDB(t)
	uc := newScheduleUsecase(db)

	lawyer, _ := createLawyer(t, db, true)
	createSlot(t, db, lawyer.ID, "2026-09-15", "09:00", "10:00", true)

	// Half-open windows: 10:00-11:00 touches 09:00-10:00 without overlapping.
	_, err := uc.CreateSlot(context.Background(), lawyer.ID, &dto.CreateSlotRequest{
		SlotDate:  "2026-09-15",
		StartTime: "10:00",
		EndTime:   "11:00",
	})
	assert.NoError(t, err)
}

func TestCreateSlotConsumedSlotDoesNotBlock(t *testing.T) {
	db := newTestDB(t)
	uc := newScheduleUsecase(db)

	lawyer, _ := createLawyer(t, db, true)
	consumed := createSlot(t, db, lawyer.ID, "2026-09-15", "09:00", "11:00", false)

	// The consumed slot must persist as unavailable, not fall back to a
	// column default.
	var stored entity.ScheduleSlot
	require.NoError(t, db.First(&stored, "id = ?", consumed.ID).Error)
	require.False(t, stored.IsAvailable)

	_, err := uc.CreateSlot(context.Background(), lawyer.ID, &dto.CreateSlotRequest{
		SlotDate:  "2026-09-15",
		StartTime: "09:30",
		EndTime:   "10:30",
	})
	assert.NoError(t, err)
}

func TestCreateSlotOtherDayAllowed(t *testing.T) {
	db := newTestDB(t)
	uc := newScheduleUsecase(db)

	lawyer, _ := createLawyer(t, db, true)
	createSlot(t, db, lawyer.ID, "2026-09-15", "09:00", "11:00", true)

	_, err := uc.CreateSlot(context.Background(), lawyer.ID, &dto.CreateSlotRequest{
		SlotDate:  "2026-09-16",
		StartTime: "09:00",
		EndTime:   "11:00",
	})
	assert.NoError(t, err)
}

func TestCreateSlotInvalidTimes(t *testing.T) {
	db := newTestDB(t)
	uc := newScheduleUsecase(db)

	lawyer, _ := createLawyer(t, db, true)

	_, err := uc.CreateSlot(context.Background(), lawyer.ID, &dto.CreateSlotRequest{
		SlotDate:  "2026-09-15",
		StartTime: "9 o'clock",
		EndTime:   "10:00",
	})
	assert.ErrorIs(t, err, usecase.ErrInvalidTimeFormat)

	_, err = uc.CreateSlot(context.Background(), lawyer.ID, &dto.CreateSlotRequest{
		SlotDate:  "2026-09-15",
		StartTime: "11:00",
		EndTime:   "10:00",
	})
	assert.ErrorIs(t, err, usecase.ErrInvalidTimeRange)

	_, err = uc.CreateSlot(context.Background(), lawyer.ID, &dto.CreateSlotRequest{
		SlotDate:  "15/09/2026",
		StartTime: "09:00",
		EndTime:   "10:00",
	})
	assert.ErrorIs(t, err, usecase.ErrInvalidDateFormat)
}

func TestCreateSlotNoProfile(t *testing.T) {
	db := newTestDB(t)
	uc := newScheduleUsecase(db)

	client := createUser(t, db, entity.RoleIDClient)

	_, err := uc.CreateSlot(context.Background(), client.ID, &dto.CreateSlotRequest{
		SlotDate:  "2026-09-15",
		StartTime: "09:00",
		EndTime:   "10:00",
	})
	assert.ErrorIs(t, err, usecase.ErrLawyerProfileNotFound)
}

func TestGetSlots(t *testing.T) {
	db := newTestDB(t)
	uc := newScheduleUsecase(db)

	lawyer, _ := createLawyer(t, db, true)
	other, _ := createLawyer(t, db, true)

	createSlot(t, db, lawyer.ID, "2026-09-15", "09:00", "10:00", true)
	createSlot(t, db, lawyer.ID, "2026-09-20", "09:00", "10:00", true)
	createSlot(t, db, other.ID, "2026-09-15", "09:00", "10:00", true)

	list, err := uc.GetSlots(context.Background(), &entity.SlotFilter{LawyerID: lawyer.ID})
	require.NoError(t, err)
	assert.Equal(t, 2, list.Total)

	ranged, err := uc.GetSlots(context.Background(), &entity.SlotFilter{
		LawyerID:  lawyer.ID,
		StartDate: "2026-09-16",
		EndDate:   "2026-09-30",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, ranged.Total)
	assert.Equal(t, "2026-09-20", ranged.Slots[0].SlotDate)
}
