package entity

import (
	"time"
)

// AuthUser is the identity/credential record reserved for a future
// authentication layer. The table is provisioned but nothing reads or
// writes it yet.
type AuthUser struct {
	UserID       string     `gorm:"type:varchar(64);primaryKey" json:"user_id"`
	Username     string     `gorm:"type:varchar(255);uniqueIndex" json:"username"`
	PasswordHash string     `gorm:"type:text" json:"-"`
	Role         string     `gorm:"type:varchar(16);check:role IN ('user','admin','agent')" json:"role"`
	LastLogin    *time.Time `gorm:"type:timestamp" json:"last_login,omitempty"`
	IsActive     *bool      `gorm:"default:true" json:"is_active"`
}

func (AuthUser) TableName() string {
	return "auth_users"
}
