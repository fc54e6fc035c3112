package dto

import (
	"github.com/shopspring/decimal"
)

type ProviderResponse struct {
	ProviderID  string `json:"provider_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type PlanResponse struct {
	PlanID      string          `json:"plan_id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	BasePremium decimal.Decimal `json:"base_premium"`
	DrugLimit   decimal.Decimal `json:"drug_limit"`
	DentalLimit decimal.Decimal `json:"dental_limit"`
	VisionLimit decimal.Decimal `json:"vision_limit"`
}

type PlanListResponse struct {
	Plans []PlanResponse `json:"plans"`
	Total int            `json:"total"`
}
