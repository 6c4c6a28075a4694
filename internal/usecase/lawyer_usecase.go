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
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrLawyerAlreadyApproved = errors.New("lawyer is already approved")

type LawyerUsecase interface {
	ApproveLawyer(ctx context.Context, adminID, lawyerID uuid.UUID, approve bool) (*dto.LawyerResponse, error)
	GetApprovedLawyers(ctx context.Context) (*dto.LawyerListResponse, error)
	GetPendingLawyers(ctx context.Context) (*dto.LawyerListResponse, error)
	CreateAdmin(ctx context.Context, adminID uuid.UUID, req *dto.CreateAdminRequest) (*dto.UserResponse, error)
}

type lawyerUsecase struct {
	db                *gorm.DB
	log               *logrus.Logger
	lawyerProfileRepo repository.LawyerProfileRepository
	userRepo          repository.UserRepository
	auditService      service.AuditService
}

func NewLawyerUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	lawyerProfileRepo repository.LawyerProfileRepository,
	userRepo repository.UserRepository,
	auditService service.AuditService,
) LawyerUsecase {
	return &lawyerUsecase{
		db:                db,
		log:               log,
		lawyerProfileRepo: lawyerProfileRepo,
		userRepo:          userRepo,
		auditService:      auditService,
	}
}

// ApproveLawyer resolves an admin review. Approval flips the profile's
// IsApproved and VerificationBadge together with the user's IsVerified flag
// in one transaction; partial approval states never become visible.
// Rejection clears IsApproved only, so it also revokes an earlier approval;
// the badge and approval stamps keep their history.
func (u *lawyerUsecase) ApproveLawyer(ctx context.Context, adminID, lawyerID uuid.UUID, approve bool) (*dto.LawyerResponse, error) {
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

	action := entity.AuditActionLawyerReject
	if approve {
		if profile.IsApproved {
			return nil, ErrLawyerAlreadyApproved
		}
		action = entity.AuditActionLawyerApprove

		now := time.Now()
		profile.IsApproved = true
		profile.VerificationBadge = true
		profile.ApprovedBy = &adminID
		profile.ApprovedAt = &now

		if err := u.lawyerProfileRepo.Update(tx, profile); err != nil {
			u.log.Warnf("Failed to update lawyer profile: %+v", err)
			return nil, err
		}

		rows, err := u.userRepo.MarkVerified(tx, lawyerID)
		if err != nil {
			u.log.Warnf("Failed to mark user verified: %+v", err)
			return nil, err
		}
		if rows == 0 {
			return nil, ErrUserNotFound
		}
	} else {
		profile.IsApproved = false
		if err := u.lawyerProfileRepo.Update(tx, profile); err != nil {
			u.log.Warnf("Failed to update lawyer profile: %+v", err)
			return nil, err
		}
	}

	if err := u.auditService.LogAction(ctx, tx, &adminID, action, "lawyer_profile", lawyerID.String(), nil); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.LawyerProfileToResponse(profile), nil
}

func (u *lawyerUsecase) GetApprovedLawyers(ctx context.Context) (*dto.LawyerListResponse, error) {
	profiles, err := u.lawyerProfileRepo.FindApproved(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list approved lawyers: %+v", err)
		return nil, err
	}

	return &dto.LawyerListResponse{
		Lawyers: converter.LawyerProfilesToResponses(profiles),
		Total:   len(profiles),
	}, nil
}

func (u *lawyerUsecase) GetPendingLawyers(ctx context.Context) (*dto.LawyerListResponse, error) {
	profiles, err := u.lawyerProfileRepo.FindPending(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list pending lawyers: %+v", err)
		return nil, err
	}

	return &dto.LawyerListResponse{
		Lawyers: converter.LawyerProfilesToResponses(profiles),
		Total:   len(profiles),
	}, nil
}

func (u *lawyerUsecase) CreateAdmin(ctx context.Context, adminID uuid.UUID, req *dto.CreateAdminRequest) (*dto.UserResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	user := &entity.User{
		RoleID:     entity.RoleIDAdmin,
		Email:      req.Email,
		Password:   string(hashedPassword),
		FullName:   req.FullName,
		Address:    "",
		IsVerified: true,
	}

	if err := u.userRepo.Create(tx, user); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create admin user: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogAction(ctx, tx, &adminID, entity.AuditActionAdminCreate, "user", user.ID.String(), nil); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	user.Role = entity.Role{ID: entity.RoleIDAdmin, RoleName: entity.RoleAdmin}
	return converter.UserToResponse(user), nil
}
