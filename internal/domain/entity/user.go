package entity

import (
	"time"
)

// User represents a plan member demographic and contact record
type User struct {
	UserID     string    `gorm:"type:varchar(64);primaryKey" json:"user_id"`
	Name       string    `gorm:"type:varchar(255)" json:"name"`
	DOB        time.Time `gorm:"type:date" json:"dob"`
	HealthCard string    `gorm:"type:varchar(64)" json:"health_card"`
	Email      string    `gorm:"type:varchar(255)" json:"email"`
	Phone      string    `gorm:"type:varchar(32)" json:"phone"`
	ProviderID string    `gorm:"type:varchar(64);index" json:"provider_id"`

	// Relationships
	Provider *InsuranceProvider `gorm:"foreignKey:ProviderID" json:"provider,omitempty"`
}

func (User) TableName() string {
	return "users"
}
