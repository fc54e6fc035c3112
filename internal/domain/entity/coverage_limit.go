package entity

import (
	"github.com/shopspring/decimal"
)

// CoverageLimit tracks the annual cap and running usage for one
// user/category/year combination
type CoverageLimit struct {
	UserID       string          `gorm:"type:varchar(64);primaryKey" json:"user_id"`
	ClaimType    ClaimType       `gorm:"type:varchar(16);primaryKey" json:"claim_type"`
	Year         int             `gorm:"primaryKey" json:"year"`
	MaxCoverage  decimal.Decimal `gorm:"type:decimal(10,2)" json:"max_coverage"`
	UsedCoverage decimal.Decimal `gorm:"type:decimal(10,2)" json:"used_coverage"`

	// Relationships
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (CoverageLimit) TableName() string {
	return "coverage_limits"
}

// Remaining returns the unused portion of the cap
func (c *CoverageLimit) Remaining() decimal.Decimal {
	return c.MaxCoverage.Sub(c.UsedCoverage)
}
