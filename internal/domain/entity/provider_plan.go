package entity

import (
	"github.com/shopspring/decimal"
)

// ProviderPlan is a plan offering with per-category coverage limits
type ProviderPlan struct {
	PlanID      string          `gorm:"type:varchar(64);primaryKey" json:"plan_id"`
	ProviderID  string          `gorm:"type:varchar(64);index" json:"provider_id"`
	Name        string          `gorm:"type:varchar(255)" json:"name"`
	Description string          `gorm:"type:text" json:"description"`
	BasePremium decimal.Decimal `gorm:"type:decimal(10,2)" json:"base_premium"`
	DrugLimit   decimal.Decimal `gorm:"type:decimal(10,2)" json:"drug_limit"`
	DentalLimit decimal.Decimal `gorm:"type:decimal(10,2)" json:"dental_limit"`
	VisionLimit decimal.Decimal `gorm:"type:decimal(10,2)" json:"vision_limit"`

	// Relationships
	Provider *InsuranceProvider `gorm:"foreignKey:ProviderID" json:"provider,omitempty"`
}

func (ProviderPlan) TableName() string {
	return "provider_plans"
}
