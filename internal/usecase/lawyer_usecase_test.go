package usecase_test

import (
	"context"
	"testing"

	"github.com/sandy191020/LexConnect/internal/delivery/dto"
	"github.com/sandy191020/LexConnect/internal/domain/entity"
	"github.com/sandy191020/LexConnect/internal/repository"
	"github.com/sandy191020/LexConnect/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newLawyerUsecase(db *gorm.DB) usecase.LawyerUsecase {
	log := newTestLogger()
	return usecase.NewLawyerUsecase(
		db,
		log,
		repository.NewLawyerProfileRepository(),
		repository.NewUserRepository(),
		newTestAuditService(log),
	)
}

func TestApproveLawyer(t *testing.T) {
	db := newTestDB(t)
	uc := newLawyerUsecase(db)

	admin := createUser(t, db, entity.RoleIDAdmin)
	lawyer, _ := createLawyer(t, db, false)

	resp, err := uc.ApproveLawyer(context.Background(), admin.ID, lawyer.ID, true)
	require.NoError(t, err)

	assert.True(t, resp.IsApproved)
	assert.True(t, resp.VerificationBadge)
	assert.NotNil(t, resp.ApprovedAt)

	// Approval is atomic across the profile and the user.
	var profile entity.LawyerProfile
	require.NoError(t, db.First(&profile, "user_id = ?", lawyer.ID).Error)
	assert.True(t, profile.IsApproved)
	assert.True(t, profile.VerificationBadge)
	require.NotNil(t, profile.ApprovedBy)
	assert.Equal(t, admin.ID, *profile.ApprovedBy)

	var user entity.User
	require.NoError(t, db.First(&user, "id = ?", lawyer.ID).Error)
	assert.True(t, user.IsVerified)

	assert.EqualValues(t, 1, countAuditLogs(t, db, entity.AuditActionLawyerApprove))
}

func TestApproveLawyerAlreadyApproved(t *testing.T) {
	db := newTestDB(t)
	uc := newLawyerUsecase(db)

	admin := createUser(t, db, entity.RoleIDAdmin)
	lawyer, _ := createLawyer(t, db, true)

	_, err := uc.ApproveLawyer(context.Background(), admin.ID, lawyer.ID, true)
	assert.ErrorIs(t, err, usecase.ErrLawyerAlreadyApproved)
}

func TestApproveLawyerNotFound(t *testing.T) {
	db := newTestDB(t)
	uc := newLawyerUsecase(db)

	admin := createUser(t, db, entity.RoleIDAdmin)

	_, err := uc.ApproveLawyer(context.Background(), admin.ID, uuid.New(), true)
	assert.ErrorIs(t, err, usecase.ErrLawyerProfileNotFound)
}

func TestRejectLawyer(t *testing.T) {
	db := newTestDB(t)
	uc := newLawyerUsecase(db)

	admin := createUser(t, db, entity.RoleIDAdmin)
	lawyer, _ := createLawyer(t, db, false)

	resp, err := uc.ApproveLawyer(context.Background(), admin.ID, lawyer.ID, false)
	require.NoError(t, err)
	assert.False(t, resp.IsApproved)

	// Rejecting an unapproved lawyer changes nothing on the profile or user.
	var profile entity.LawyerProfile
	require.NoError(t, db.First(&profile, "user_id = ?", lawyer.ID).Error)
	assert.False(t, profile.IsApproved)
	assert.Nil(t, profile.ApprovedBy)

	var user entity.User
	require.NoError(t, db.First(&user, "id = ?", lawyer.ID).Error)
	assert.False(t, user.IsVerified)

	assert.EqualValues(t, 1, countAuditLogs(t, db, entity.AuditActionLawyerReject))
}

func TestRejectApprovedLawyerRevokes(t *testing.T) {
	db := newTestDB(t)
	uc := newLawyerUsecase(db)

	admin := createUser(t, db, entity.RoleIDAdmin)
	lawyer, _ := createLawyer(t, db, true)

	resp, err := uc.ApproveLawyer(context.Background(), admin.ID, lawyer.ID, false)
	require.NoError(t, err)
	assert.False(t, resp.IsApproved)

	// Only the approval flag moves; the badge keeps its history.
	var profile entity.LawyerProfile
	require.NoError(t, db.First(&profile, "user_id = ?", lawyer.ID).Error)
	assert.False(t, profile.IsApproved)
	assert.True(t, profile.VerificationBadge)

	assert.EqualValues(t, 1, countAuditLogs(t, db, entity.AuditActionLawyerReject))
}

func TestGetApprovedLawyers(t *testing.T) {
	db := newTestDB(t)
	uc := newLawyerUsecase(db)

	createLawyer(t, db, true)
	createLawyer(t, db, true)
	createLawyer(t, db, false)

	list, err := uc.GetApprovedLawyers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, list.Total)
	for _, lawyer := range list.Lawyers {
		assert.True(t, lawyer.IsApproved)
	}
}

func TestGetPendingLawyers(t *testing.T) {
	db := newTestDB(t)
	uc := newLawyerUsecase(db)

	createLawyer(t, db, true)
	createLawyer(t, db, false)

	list, err := uc.GetPendingLawyers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, list.Total)
	assert.False(t, list.Lawyers[0].IsApproved)
}

func TestCreateAdmin(t *testing.T) {
	db := newTestDB(t)
	uc := newLawyerUsecase(db)

	admin := createUser(t, db, entity.RoleIDAdmin)

	resp, err := uc.CreateAdmin(context.Background(), admin.ID, &dto.CreateAdminRequest{
		Email:    "new-admin@example.com",
		Password: "super-secret-1",
		FullName: "Second Admin",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.RoleAdmin, resp.Role)
	assert.True(t, resp.IsVerified)

	var user entity.User
	require.NoError(t, db.First(&user, "id = ?", resp.ID).Error)
	assert.Equal(t, entity.RoleIDAdmin, user.RoleID)
	assert.NotEqual(t, "super-secret-1", user.Password)

	assert.EqualValues(t, 1, countAuditLogs(t, db, entity.AuditActionAdminCreate))
}
