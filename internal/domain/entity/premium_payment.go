package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PremiumPayment records one billing cycle for a policy.
// paid_date >= due_date is expected but not enforced.
type PremiumPayment struct {
	PaymentID     string          `gorm:"type:varchar(64);primaryKey" json:"payment_id"`
	PolicyID      string          `gorm:"type:varchar(64);index" json:"policy_id"`
	DueDate       time.Time       `gorm:"type:date" json:"due_date"`
	PaidDate      *time.Time      `gorm:"type:date" json:"paid_date,omitempty"`
	AmountDue     decimal.Decimal `gorm:"type:decimal(10,2)" json:"amount_due"`
	AmountPaid    decimal.Decimal `gorm:"type:decimal(10,2)" json:"amount_paid"`
	PaymentStatus string          `gorm:"type:varchar(32)" json:"payment_status"`
	PaymentMethod string          `gorm:"type:varchar(32)" json:"payment_method"`

	// Relationships
	Policy *Policy `gorm:"foreignKey:PolicyID" json:"policy,omitempty"`
}

func (PremiumPayment) TableName() string {
	return "premium_payments"
}
