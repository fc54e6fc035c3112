package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// BillingFrequency represents how often a policy premium is billed
type BillingFrequency string

const (
	BillingMonthly   BillingFrequency = "monthly"
	BillingQuarterly BillingFrequency = "quarterly"
	BillingAnnually  BillingFrequency = "annually"
)

// Policy is a user's coverage agreement with a provider.
// Invariant: coverage_start <= coverage_end.
type Policy struct {
	PolicyID         string           `gorm:"type:varchar(64);primaryKey" json:"policy_id"`
	UserID           string           `gorm:"type:varchar(64);index" json:"user_id"`
	ProviderID       string           `gorm:"type:varchar(64);index" json:"provider_id"`
	PolicyNumber     string           `gorm:"type:varchar(32)" json:"policy_number"`
	PlanType         string           `gorm:"type:varchar(32)" json:"plan_type"`
	CoverageStart    time.Time        `gorm:"type:date" json:"coverage_start"`
	CoverageEnd      time.Time        `gorm:"type:date" json:"coverage_end"`
	MonthlyPremium   decimal.Decimal  `gorm:"type:decimal(10,2)" json:"monthly_premium"`
	BillingFrequency BillingFrequency `gorm:"type:varchar(16)" json:"billing_frequency"`
	Active           *bool            `gorm:"default:true;index" json:"active"`

	// Relationships
	User     *User              `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Provider *InsuranceProvider `gorm:"foreignKey:ProviderID" json:"provider,omitempty"`
}

func (Policy) TableName() string {
	return "policies"
}

// IsActive checks whether the policy is flagged active
func (p *Policy) IsActive() bool {
	return p.Active != nil && *p.Active
}
