package usecase_test

import (
	"io"
	"testing"

	"github.com/sandy191020/LexConnect/internal/domain/entity"
	"github.com/sandy191020/LexConnect/internal/repository"
	"github.com/sandy191020/LexConnect/internal/service"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// One connection so every query sees the same in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&entity.Role{},
		&entity.User{},
		&entity.LawyerProfile{},
		&entity.Certificate{},
		&entity.Booking{},
		&entity.ScheduleSlot{},
		&entity.NotificationOutbox{},
		&entity.AuditLog{},
	))

	roles := []entity.Role{
		{ID: entity.RoleIDAdmin, RoleName: entity.RoleAdmin},
		{ID: entity.RoleIDLawyer, RoleName: entity.RoleLawyer},
		{ID: entity.RoleIDClient, RoleName: entity.RoleClient},
	}
	require.NoError(t, db.Create(&roles).Error)

	return db
}

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestAuditService(log *logrus.Logger) service.AuditService {
	return service.NewAuditService(log, repository.NewAuditLogRepository())
}

func createUser(t *testing.T, db *gorm.DB, roleID int) *entity.User {
	t.Helper()

	user := &entity.User{
		RoleID:   roleID,
		Email:    uuid.NewString() + "@example.com",
		Password: "hashed-password",
		FullName: "Test User",
		Address:  "12 Court Street",
		Phone:    "+911234567890",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createLawyer(t *testing.T, db *gorm.DB, approved bool) (*entity.User, *entity.LawyerProfile) {
	t.Helper()

	user := createUser(t, db, entity.RoleIDLawyer)
	profile := &entity.LawyerProfile{
		UserID:            user.ID,
		BarCouncilNumber:  uuid.NewString(),
		Specialization:    "Criminal Law",
		ExperienceYears:   7,
		ChargesPerHearing: 2500,
		IsApproved:        approved,
		VerificationBadge: approved,
	}
	require.NoError(t, db.Create(profile).Error)
	return user, profile
}

func createBooking(t *testing.T, db *gorm.DB, clientID, lawyerID uuid.UUID, status entity.BookingStatus) *entity.Booking {
	t.Helper()

	booking := &entity.Booking{
		ClientID:        clientID,
		LawyerID:        lawyerID,
		Status:          status,
		CaseDescription: "Property dispute hearing",
		HearingTime:     "10:30",
	}
	require.NoError(t, db.Create(booking).Error)
	return booking
}

func countAuditLogs(t *testing.T, db *gorm.DB, action string) int64 {
	t.Helper()

	var count int64
	require.NoError(t, db.Model(&entity.AuditLog{}).Where("action = ?", action).Count(&count).Error)
	return count
}
