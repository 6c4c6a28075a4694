package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Certificate represents an uploaded lawyer credential. Identity is
// content-addressed: ContentHash is the SHA-256 of the file bytes and is
// globally unique, so the same document can never be admitted twice, even
// across lawyers. LedgerTxRef is set only when the external ledger accepted
// the record; a ledger outage leaves it empty without blocking admission.
type Certificate struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	LawyerID    uuid.UUID `gorm:"type:uuid;not null;index" json:"lawyer_id"`
	FileName    string    `gorm:"type:varchar(255);not null" json:"file_name"`
	FilePath    string    `gorm:"type:text;not null" json:"file_path"`
	FileType    string    `gorm:"type:varchar(100);not null" json:"file_type"`
	FileSize    int64     `gorm:"not null" json:"file_size"`
	ContentHash string    `gorm:"type:varchar(64);uniqueIndex;not null" json:"content_hash"`
	LedgerTxRef string    `gorm:"type:varchar(100)" json:"ledger_tx_ref,omitempty"`
	UploadedAt  time.Time `gorm:"autoCreateTime" json:"uploaded_at"`

	// Relationships
	Lawyer LawyerProfile `gorm:"foreignKey:LawyerID" json:"lawyer,omitempty"`
}

func (Certificate) TableName() string {
	return "certificates"
}

func (c *Certificate) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
