package dto

import (
	"go-claims-service/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// CoverageLimitResponse is one coverage-limit row without the computed
// remaining column
type CoverageLimitResponse struct {
	ClaimType    entity.ClaimType `json:"claim_type"`
	Year         int              `json:"year"`
	MaxCoverage  decimal.Decimal  `json:"max_coverage"`
	UsedCoverage decimal.Decimal  `json:"used_coverage"`
}

type CoverageLimitListResponse struct {
	Limits []CoverageLimitResponse `json:"limits"`
	Total  int                     `json:"total"`
}

type CoverageUsageListResponse struct {
	Limits []entity.CoverageUsage `json:"limits"`
	Total  int                    `json:"total"`
}
