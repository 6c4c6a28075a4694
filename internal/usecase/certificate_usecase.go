package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/sandy191020/LexConnect/internal/converter"
	"github.com/sandy191020/LexConnect/internal/delivery/dto"
	"github.com/sandy191020/LexConnect/internal/domain/entity"
	"github.com/sandy191020/LexConnect/internal/domain/repository"
	"github.com/sandy191020/LexConnect/internal/infrastructure/ledger"
	"github.com/sandy191020/LexConnect/internal/infrastructure/storage"
	"github.com/sandy191020/LexConnect/internal/service"
	"github.com/sandy191020/LexConnect/pkg/contenthash"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrLawyerProfileNotFound      = errors.New("lawyer profile not found")
	ErrCertificateAlreadyUploaded = errors.New("this certificate has already been uploaded")
	ErrDuplicateCertificate       = errors.New("certificate is already registered by another lawyer")
)

type CertificateUsecase interface {
	UploadCertificate(ctx context.Context, lawyerID uuid.UUID, fileName, fileType string, fileSize int64, src io.Reader) (*dto.CertificateResponse, error)
	GetMyCertificates(ctx context.Context, lawyerID uuid.UUID) (*dto.CertificateListResponse, error)
}

type certificateUsecase struct {
	db                *gorm.DB
	log               *logrus.Logger
	certificateRepo   repository.CertificateRepository
	lawyerProfileRepo repository.LawyerProfileRepository
	auditService      service.AuditService
	fileStore         storage.FileStore
	ledger            ledger.Ledger
}

func NewCertificateUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	certificateRepo repository.CertificateRepository,
	lawyerProfileRepo repository.LawyerProfileRepository,
	auditService service.AuditService,
	fileStore storage.FileStore,
	ledg ledger.Ledger,
) CertificateUsecase {
	return &certificateUsecase{
		db:                db,
		log:               log,
		certificateRepo:   certificateRepo,
		lawyerProfileRepo: lawyerProfileRepo,
		auditService:      auditService,
		fileStore:         fileStore,
		ledger:            ledg,
	}
}

// UploadCertificate admits a credential document. Identity is the SHA-256 of
// the file bytes: any hash already registered locally is rejected before the
// ledger is consulted. The ledger existence check and anchoring are
// best-effort; an unreachable ledger never blocks admission, it only leaves
// LedgerTxRef empty. Every rejection path removes the staged file.
func (u *certificateUsecase) UploadCertificate(ctx context.Context, lawyerID uuid.UUID, fileName, fileType string, fileSize int64, src io.Reader) (*dto.CertificateResponse, error) {
	profile, err := u.lawyerProfileRepo.FindByUserID(u.db.WithContext(ctx), lawyerID)
	if err != nil {
		u.log.Warnf("Failed to find lawyer profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrLawyerProfileNotFound
	}

	stagedPath, err := u.fileStore.Save(src, filepath.Ext(fileName))
	if err != nil {
		u.log.Warnf("Failed to stage certificate file: %+v", err)
		return nil, err
	}

	hash, err := contenthash.File(stagedPath)
	if err != nil {
		u.log.Warnf("Failed to hash certificate file: %+v", err)
		u.removeStaged(stagedPath)
		return nil, err
	}

	// Local registry check first: the hash is globally unique, so a hit from
	// any lawyer ends admission. The owner only changes which error we report.
	existing, err := u.certificateRepo.FindByHash(u.db.WithContext(ctx), hash)
	if err != nil {
		u.log.Warnf("Failed to check certificate hash: %+v", err)
		u.removeStaged(stagedPath)
		return nil, err
	}
	if existing != nil {
		u.removeStaged(stagedPath)
		if existing.LawyerID == lawyerID {
			return nil, ErrCertificateAlreadyUploaded
		}
		return nil, ErrDuplicateCertificate
	}

	// Ledger existence is advisory and fails open: no answer is treated as
	// "not seen", never as proof either way.
	anchored, err := u.ledger.Exists(ctx, hash)
	if err != nil {
		if errors.Is(err, ledger.ErrUnavailable) {
			u.log.Warnf("Ledger unavailable during duplicate check, proceeding: %+v", err)
		} else {
			u.log.Warnf("Ledger duplicate check failed, proceeding: %+v", err)
		}
	} else if anchored {
		u.removeStaged(stagedPath)
		return nil, ErrDuplicateCertificate
	}

	txRef, err := u.ledger.RecordHash(ctx, hash, fmt.Sprintf("lawyer:%s", lawyerID))
	if err != nil {
		u.log.Warnf("Failed to anchor certificate hash on ledger: %+v", err)
		txRef = ""
	}

	certificate := &entity.Certificate{
		LawyerID:    lawyerID,
		FileName:    fileName,
		FilePath:    stagedPath,
		FileType:    fileType,
		FileSize:    fileSize,
		ContentHash: hash,
		LedgerTxRef: txRef,
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.certificateRepo.Create(tx, certificate); err != nil {
		u.removeStaged(stagedPath)
		// Loser of a concurrent upload of the same bytes.
		if isDuplicateKeyError(err, "content_hash") {
			return nil, ErrDuplicateCertificate
		}
		u.log.Warnf("Failed to create certificate: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogAction(ctx, tx, &lawyerID, entity.AuditActionCertificateUpload, "certificate", certificate.ID.String(), hash); err != nil {
		u.removeStaged(stagedPath)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		u.removeStaged(stagedPath)
		return nil, err
	}

	return converter.CertificateToResponse(certificate), nil
}

func (u *certificateUsecase) GetMyCertificates(ctx context.Context, lawyerID uuid.UUID) (*dto.CertificateListResponse, error) {
	certificates, err := u.certificateRepo.FindByLawyerID(u.db.WithContext(ctx), lawyerID)
	if err != nil {
		u.log.Warnf("Failed to list certificates: %+v", err)
		return nil, err
	}

	return &dto.CertificateListResponse{
		Certificates: converter.CertificatesToResponses(certificates),
		Total:        len(certificates),
	}, nil
}

func (u *certificateUsecase) removeStaged(path string) {
	if err := u.fileStore.Remove(path); err != nil {
		u.log.Warnf("Failed to remove staged file %s: %+v", path, err)
	}
}
