package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PreAuthorization is an advance approval request for a service before a
// claim is filed
type PreAuthorization struct {
	AuthID           string          `gorm:"type:varchar(64);primaryKey" json:"auth_id"`
	UserID           string          `gorm:"type:varchar(64);index" json:"user_id"`
	PolicyID         string          `gorm:"type:varchar(64);index" json:"policy_id"`
	ServiceRequested string          `gorm:"type:varchar(255)" json:"service_requested"`
	EstimatedCost    decimal.Decimal `gorm:"type:decimal(10,2)" json:"estimated_cost"`
	RequestDate      time.Time       `gorm:"type:date" json:"request_date"`
	ApprovedDate     *time.Time      `gorm:"type:date" json:"approved_date,omitempty"`
	Status           string          `gorm:"type:varchar(32)" json:"status"`
	AgentNotes       string          `gorm:"type:text" json:"agent_notes"`

	// Relationships
	User   *User   `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Policy *Policy `gorm:"foreignKey:PolicyID" json:"policy,omitempty"`
}

func (PreAuthorization) TableName() string {
	return "pre_authorizations"
}
