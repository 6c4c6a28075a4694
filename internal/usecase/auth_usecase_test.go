package usecase_test

import (
	"context"
	"testing"

	"github.com/sandy191020/LexConnect/config"
	"github.com/sandy191020/LexConnect/internal/delivery/dto"
	"github.com/sandy191020/LexConnect/internal/domain/entity"
	"github.com/sandy191020/LexConnect/internal/repository"
	"github.com/sandy191020/LexConnect/internal/usecase"
	"github.com/sandy191020/LexConnect/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newAuthUsecase(db *gorm.DB) usecase.AuthUsecase {
	log := newTestLogger()
	jwtService := jwt.NewJWTService(config.JWTConfig{Secret: "test-secret"})
	return usecase.NewAuthUsecase(
		db,
		log,
		repository.NewUserRepository(),
		repository.NewRoleRepository(),
		repository.NewLawyerProfileRepository(),
		newTestAuditService(log),
		jwtService,
		nil,
	)
}

func TestRegisterClient(t *testing.T) {
	db := newTestDB(t)
	uc := newAuthUsecase(db)

	resp, err := uc.RegisterClient(context.Background(), &dto.RegisterClientRequest{
		Email:    "client@example.com",
		Password: "very-secret-1",
		FullName: "Asha Client",
		Address:  "5 High Court Road",
		Phone:    "+911112223334",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.RoleClient, resp.Role)
	assert.False(t, resp.IsVerified)

	var user entity.User
	require.NoError(t, db.First(&user, "email = ?", "client@example.com").Error)
	assert.Equal(t, entity.RoleIDClient, user.RoleID)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("very-secret-1")))

	assert.EqualValues(t, 1, countAuditLogs(t, db, entity.AuditActionUserRegister))
}

func TestRegisterLawyer(t *testing.T) {
	db := newTestDB(t)
	uc := newAuthUsecase(db)

	resp, err := uc.RegisterLawyer(context.Background(), &dto.RegisterLawyerRequest{
		Email:             "lawyer@example.com",
		Password:          "very-secret-1",
		FullName:          "Ravi Advocate",
		Address:           "9 Bar Council Lane",
		BarCouncilNumber:  "MH/1234/2015",
		Specialization:    "Civil Law",
		ExperienceYears:   10,
		ChargesPerHearing: 3000,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleLawyer, resp.Role)

	// Registration leaves the lawyer out of the directory until approved.
	var profile entity.LawyerProfile
	require.NoError(t, db.First(&profile, "user_id = ?", resp.ID).Error)
	assert.False(t, profile.IsApproved)
	assert.False(t, profile.VerificationBadge)
	assert.Equal(t, "MH/1234/2015", profile.BarCouncilNumber)
}

func TestGetCurrentUser(t *testing.T) {
	db := newTestDB(t)
	uc := newAuthUsecase(db)

	user := createUser(t, db, entity.RoleIDClient)

	resp, err := uc.GetCurrentUser(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, resp.Email)
	assert.Equal(t, entity.RoleClient, resp.Role)

	_, err = uc.GetCurrentUser(context.Background(), uuid.New())
	assert.ErrorIs(t, err, usecase.ErrUserNotFound)
}
