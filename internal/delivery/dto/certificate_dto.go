package dto

import (
	"time"

	"github.com/google/uuid"
)

type CertificateResponse struct {
	ID          uuid.UUID `json:"id"`
	LawyerID    uuid.UUID `json:"lawyer_id"`
	FileName    string    `json:"file_name"`
	FileType    string    `json:"file_type"`
	FileSize    int64     `json:"file_size"`
	ContentHash string    `json:"content_hash"`
	LedgerTxRef string    `json:"ledger_tx_ref,omitempty"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

type CertificateListResponse struct {
	Certificates []CertificateResponse `json:"certificates"`
	Total        int                   `json:"total"`
}
