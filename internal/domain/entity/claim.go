package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ClaimType discriminates which detail variant a claim may carry
type ClaimType string

const (
	ClaimTypeDrug     ClaimType = "drug"
	ClaimTypeDental   ClaimType = "dental"
	ClaimTypeVision   ClaimType = "vision"
	ClaimTypeHospital ClaimType = "hospital"
)

// ClaimTypes lists every valid claim type
var ClaimTypes = []ClaimType{ClaimTypeDrug, ClaimTypeDental, ClaimTypeVision, ClaimTypeHospital}

// ClaimStatus represents the adjudication state of a claim
type ClaimStatus string

const (
	ClaimStatusPending  ClaimStatus = "Pending"
	ClaimStatusApproved ClaimStatus = "Approved"
	ClaimStatusRejected ClaimStatus = "Rejected"
)

// Claim is a reimbursement request tied to a user, policy, and provider.
// At most one detail-variant row should exist per claim, matching its
// ClaimType; the schema does not enforce this cross-table exclusivity.
type Claim struct {
	ClaimID        string          `gorm:"type:varchar(64);primaryKey" json:"claim_id"`
	UserID         string          `gorm:"type:varchar(64);index" json:"user_id"`
	ProviderID     string          `gorm:"type:varchar(64);index" json:"provider_id"`
	PolicyID       string          `gorm:"type:varchar(64);index" json:"policy_id"`
	ServiceDate    time.Time       `gorm:"type:date;index" json:"service_date"`
	ClaimType      ClaimType       `gorm:"type:varchar(16)" json:"claim_type"`
	ServiceCode    string          `gorm:"type:varchar(16)" json:"service_code"`
	Description    string          `gorm:"type:text" json:"description"`
	AmountClaimed  decimal.Decimal `gorm:"type:decimal(10,2)" json:"amount_claimed"`
	AmountApproved decimal.Decimal `gorm:"type:decimal(10,2)" json:"amount_approved"`
	Status         ClaimStatus     `gorm:"type:varchar(16)" json:"status"`
	SubmittedAt    time.Time       `gorm:"type:timestamp" json:"submitted_at"`

	// Relationships
	User     *User              `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Provider *InsuranceProvider `gorm:"foreignKey:ProviderID" json:"provider,omitempty"`
	Policy   *Policy            `gorm:"foreignKey:PolicyID" json:"policy,omitempty"`
}

func (Claim) TableName() string {
	return "claims"
}

// IsPending checks if the claim is awaiting adjudication
func (c *Claim) IsPending() bool {
	return c.Status == ClaimStatusPending
}

// IsApproved checks if the claim has been approved
func (c *Claim) IsApproved() bool {
	return c.Status == ClaimStatusApproved
}

// IsRejected checks if the claim has been rejected
func (c *Claim) IsRejected() bool {
	return c.Status == ClaimStatusRejected
}
