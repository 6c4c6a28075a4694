package usecase_test

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/sandy191020/LexConnect/internal/domain/entity"
	"github.com/sandy191020/LexConnect/internal/infrastructure/ledger"
	"github.com/sandy191020/LexConnect/internal/infrastructure/storage"
	"github.com/sandy191020/LexConnect/internal/repository"
	"github.com/sandy191020/LexConnect/internal/usecase"
	"github.com/sandy191020/LexConnect/pkg/contenthash"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeLedger struct {
	exists    bool
	existsErr error
	txRef     string
	recordErr error
	recorded  []string
}

func (f *fakeLedger) RecordHash(ctx context.Context, hash string, metadata string) (string, error) {
	if f.recordErr != nil {
		return "", f.recordErr
	}
	f.recorded = append(f.recorded, hash)
	return f.txRef, nil
}

func (f *fakeLedger) Exists(ctx context.Context, hash string) (bool, error) {
	if f.existsErr != nil {
		return false, f.existsErr
	}
	return f.exists, nil
}

func newCertificateUsecase(t *testing.T, db *gorm.DB, ledg ledger.Ledger) (usecase.CertificateUsecase, string) {
	t.Helper()

	dir := t.TempDir()
	fileStore, err := storage.NewLocalFileStore(dir)
	require.NoError(t, err)

	log := newTestLogger()
	uc := usecase.NewCertificateUsecase(
		db,
		log,
		repository.NewCertificateRepository(),
		repository.NewLawyerProfileRepository(),
		newTestAuditService(log),
		fileStore,
		ledg,
	)
	return uc, dir
}

func stagedFileCount(t *testing.T, dir string) int {
	t.Helper()

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	return len(entries)
}

func TestUploadCertificate(t *testing.T) {
	db := newTestDB(t)
	ledg := &fakeLedger{txRef: "0xabc123"}
	uc, dir := newCertificateUsecase(t, db, ledg)

	lawyer, _ := createLawyer(t, db, false)
	content := []byte("bar council enrollment certificate")

	cert, err := uc.UploadCertificate(context.Background(), lawyer.ID, "enrollment.pdf", "application/pdf", int64(len(content)), bytes.NewReader(content))
	require.NoError(t, err)

	assert.Equal(t, contenthash.Sum(content), cert.ContentHash)
	assert.Equal(t, "0xabc123", cert.LedgerTxRef)
	assert.Equal(t, "enrollment.pdf", cert.FileName)
	assert.Equal(t, []string{cert.ContentHash}, ledg.recorded)
	assert.Equal(t, 1, stagedFileCount(t, dir))

	assert.EqualValues(t, 1, countAuditLogs(t, db, entity.AuditActionCertificateUpload))
}

func TestUploadCertificateOwnRepeat(t *testing.T) {
	db := newTestDB(t)
	uc, dir := newCertificateUsecase(t, db, &fakeLedger{})

	lawyer, _ := createLawyer(t, db, false)
	content := []byte("same bytes twice")

	_, err := uc.UploadCertificate(context.Background(), lawyer.ID, "cert.pdf", "application/pdf", int64(len(content)), bytes.NewReader(content))
	require.NoError(t, err)

	_, err = uc.UploadCertificate(context.Background(), lawyer.ID, "cert-again.pdf", "application/pdf", int64(len(content)), bytes.NewReader(content))
	assert.ErrorIs(t, err, usecase.ErrCertificateAlreadyUploaded)

	// The rejected upload's staged copy is removed.
	assert.Equal(t, 1, stagedFileCount(t, dir))
}

func TestUploadCertificateDuplicateAcrossLawyers(t *testing.T) {
	db := newTestDB(t)
	uc, dir := newCertificateUsecase(t, db, &fakeLedger{})

	first, _ := createLawyer(t, db, false)
	second, _ := createLawyer(t, db, false)
	content := []byte("shared document")

	_, err := uc.UploadCertificate(context.Background(), first.ID, "cert.pdf", "application/pdf", int64(len(content)), bytes.NewReader(content))
	require.NoError(t, err)

	_, err = uc.UploadCertificate(context.Background(), second.ID, "stolen.pdf", "application/pdf", int64(len(content)), bytes.NewReader(content))
	assert.ErrorIs(t, err, usecase.ErrDuplicateCertificate)
	assert.Equal(t, 1, stagedFileCount(t, dir))
}

func TestUploadCertificateLedgerUnavailable(t *testing.T) {
	db := newTestDB(t)
	ledg := &fakeLedger{existsErr: ledger.ErrUnavailable, recordErr: ledger.ErrUnavailable}
	uc, _ := newCertificateUsecase(t, db, ledg)

	lawyer, _ := createLawyer(t, db, false)
	content := []byte("certificate during ledger outage")

	// A dead ledger never blocks admission, it only leaves the anchor empty.
	cert, err := uc.UploadCertificate(context.Background(), lawyer.ID, "cert.pdf", "application/pdf", int64(len(content)), bytes.NewReader(content))
	require.NoError(t, err)
	assert.Empty(t, cert.LedgerTxRef)
}

func TestUploadCertificateLedgerReportsDuplicate(t *testing.T) {
	db := newTestDB(t)
	uc, dir := newCertificateUsecase(t, db, &fakeLedger{exists: true})

	lawyer, _ := createLawyer(t, db, false)
	content := []byte("already anchored elsewhere")

	_, err := uc.UploadCertificate(context.Background(), lawyer.ID, "cert.pdf", "application/pdf", int64(len(content)), bytes.NewReader(content))
	assert.ErrorIs(t, err, usecase.ErrDuplicateCertificate)
	assert.Equal(t, 0, stagedFileCount(t, dir))
}

func TestUploadCertificateNoProfile(t *testing.T) {
	db := newTestDB(t)
	uc, _ := newCertificateUsecase(t, db, &fakeLedger{})

	client := createUser(t, db, entity.RoleIDClient)
	content := []byte("not a lawyer")

	_, err := uc.UploadCertificate(context.Background(), client.ID, "cert.pdf", "application/pdf", int64(len(content)), bytes.NewReader(content))
	assert.ErrorIs(t, err, usecase.ErrLawyerProfileNotFound)
}

func TestGetMyCertificates(t *testing.T) {
	db := newTestDB(t)
	uc, _ := newCertificateUsecase(t, db, &fakeLedger{})

	lawyer, _ := createLawyer(t, db, false)

	for _, content := range [][]byte{[]byte("first"), []byte("second")} {
		_, err := uc.UploadCertificate(context.Background(), lawyer.ID, "cert.pdf", "application/pdf", int64(len(content)), bytes.NewReader(content))
		require.NoError(t, err)
	}

	list, err := uc.GetMyCertificates(context.Background(), lawyer.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, list.Total)
}
