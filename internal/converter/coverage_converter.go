package converter

import (
	"go-claims-service/internal/delivery/dto"
	"go-claims-service/internal/domain/entity"
)

// CoverageLimitsToResponses converts coverage-limit entities to the rows
// returned by the plain limits operation
func CoverageLimitsToResponses(limits []entity.CoverageLimit) []dto.CoverageLimitResponse {
	responses := make([]dto.CoverageLimitResponse, len(limits))
	for i, limit := range limits {
		responses[i] = dto.CoverageLimitResponse{
			ClaimType:    limit.ClaimType,
			Year:         limit.Year,
			MaxCoverage:  limit.MaxCoverage,
			UsedCoverage: limit.UsedCoverage,
		}
	}
	return responses
}
