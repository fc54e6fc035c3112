package entity

// InsuranceProvider is the root record a provider's plans and policies hang off
type InsuranceProvider struct {
	ProviderID  string `gorm:"type:varchar(64);primaryKey" json:"provider_id"`
	Name        string `gorm:"type:varchar(255)" json:"name"`
	Description string `gorm:"type:text" json:"description"`
}

func (InsuranceProvider) TableName() string {
	return "insurance_providers"
}
