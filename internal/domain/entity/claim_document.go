package entity

import (
	"time"
)

// ClaimDocument is metadata for a file attached to a claim
type ClaimDocument struct {
	DocumentID   string    `gorm:"type:varchar(64);primaryKey" json:"document_id"`
	ClaimID      string    `gorm:"type:varchar(64);index" json:"claim_id"`
	FileName     string    `gorm:"type:varchar(255)" json:"file_name"`
	UploadedAt   time.Time `gorm:"type:timestamp" json:"uploaded_at"`
	DocumentType string    `gorm:"type:varchar(64)" json:"document_type"`
	SecureURL    string    `gorm:"type:text" json:"secure_url"`

	// Relationships
	Claim *Claim `gorm:"foreignKey:ClaimID" json:"claim,omitempty"`
}

func (ClaimDocument) TableName() string {
	return "claim_documents"
}
