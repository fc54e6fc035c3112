package entity

// UserPreference holds communication/consent/locale settings, one-to-one
// with a user
type UserPreference struct {
	UserID             string `gorm:"type:varchar(64);primaryKey" json:"user_id"`
	CommunicationOptIn bool   `json:"communication_opt_in"`
	ConsentToShareData bool   `json:"consent_to_share_data"`
	LanguagePreference string `gorm:"type:varchar(16)" json:"language_preference"`
	Timezone           string `gorm:"type:varchar(64)" json:"timezone"`

	// Relationships
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (UserPreference) TableName() string {
	return "user_preferences"
}
