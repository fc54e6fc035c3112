package entity

import (
	"time"
)

// CommunicationLog is an append-only record of a message sent to or
// from a user
type CommunicationLog struct {
	LogID   string    `gorm:"type:varchar(64);primaryKey" json:"log_id"`
	UserID  string    `gorm:"type:varchar(64);index" json:"user_id"`
	Type    string    `gorm:"type:varchar(32)" json:"type"`
	Subject string    `gorm:"type:varchar(255)" json:"subject"`
	Content string    `gorm:"type:text" json:"content"`
	SentAt  time.Time `gorm:"type:timestamp;index" json:"sent_at"`
	Status  string    `gorm:"type:varchar(32)" json:"status"`

	// Relationships
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (CommunicationLog) TableName() string {
	return "communications_log"
}
