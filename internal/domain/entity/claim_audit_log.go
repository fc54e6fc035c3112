package entity

import (
	"time"
)

// ClaimAuditLog is an append-only event on a claim; rows are never
// updated or deleted
type ClaimAuditLog struct {
	AuditID     string    `gorm:"type:varchar(64);primaryKey" json:"audit_id"`
	ClaimID     string    `gorm:"type:varchar(64);index" json:"claim_id"`
	EventTime   time.Time `gorm:"type:timestamp;index" json:"event_time"`
	EventType   string    `gorm:"type:varchar(64)" json:"event_type"`
	PerformedBy string    `gorm:"type:varchar(255)" json:"performed_by"`
	Notes       string    `gorm:"type:text" json:"notes"`

	// Relationships
	Claim *Claim `gorm:"foreignKey:ClaimID" json:"claim,omitempty"`
}

func (ClaimAuditLog) TableName() string {
	return "claim_audit_logs"
}

// Common audit event types
const (
	AuditEventSubmitted = "Submitted"
	AuditEventReviewed  = "Reviewed"
	AuditEventApproved  = "Approved"
	AuditEventRejected  = "Rejected"
	AuditEventPaid      = "Paid"
)
