package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Detail variants extend a claim one-to-one, keyed by claim_id. Each
// variant belongs to exactly one claim type.

// DentalDetail extends a dental claim with procedure information
type DentalDetail struct {
	ClaimID       string `gorm:"type:varchar(64);primaryKey" json:"claim_id"`
	Category      string `gorm:"type:varchar(64)" json:"category"`
	ToothCode     string `gorm:"type:varchar(16)" json:"tooth_code"`
	ProcedureCode string `gorm:"type:varchar(16)" json:"procedure_code"`

	Claim *Claim `gorm:"foreignKey:ClaimID" json:"claim,omitempty"`
}

func (DentalDetail) TableName() string {
	return "dental_details"
}

// DrugDetail extends a drug claim with prescription information
type DrugDetail struct {
	ClaimID  string `gorm:"type:varchar(64);primaryKey" json:"claim_id"`
	DrugName string `gorm:"type:varchar(255)" json:"drug_name"`
	DINCode  string `gorm:"column:din_code;type:varchar(16)" json:"din_code"`
	Quantity int    `json:"quantity"`
	Dosage   string `gorm:"type:varchar(32)" json:"dosage"`

	Claim *Claim `gorm:"foreignKey:ClaimID" json:"claim,omitempty"`
}

func (DrugDetail) TableName() string {
	return "drug_details"
}

// HospitalVisit extends a hospital claim with stay information
type HospitalVisit struct {
	ClaimID       string     `gorm:"type:varchar(64);primaryKey" json:"claim_id"`
	RoomType      string     `gorm:"type:varchar(32)" json:"room_type"`
	AdmissionDate time.Time  `gorm:"type:date" json:"admission_date"`
	DischargeDate *time.Time `gorm:"type:date" json:"discharge_date,omitempty"`

	Claim *Claim `gorm:"foreignKey:ClaimID" json:"claim,omitempty"`
}

func (HospitalVisit) TableName() string {
	return "hospital_visits"
}

// VisionClaim extends a vision claim with product information
type VisionClaim struct {
	ClaimID         string          `gorm:"type:varchar(64);primaryKey" json:"claim_id"`
	ProductType     string          `gorm:"type:varchar(64)" json:"product_type"`
	CoverageLimit   decimal.Decimal `gorm:"type:decimal(10,2)" json:"coverage_limit"`
	EligibilityDate time.Time       `gorm:"type:date" json:"eligibility_date"`

	Claim *Claim `gorm:"foreignKey:ClaimID" json:"claim,omitempty"`
}

func (VisionClaim) TableName() string {
	return "vision_claims"
}
