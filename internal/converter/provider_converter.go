package converter

import (
	"go-claims-service/internal/delivery/dto"
	"go-claims-service/internal/domain/entity"
)

// ProviderToResponse converts an InsuranceProvider entity to its DTO
func ProviderToResponse(provider *entity.InsuranceProvider) *dto.ProviderResponse {
	if provider == nil {
		return nil
	}

	return &dto.ProviderResponse{
		ProviderID:  provider.ProviderID,
		Name:        provider.Name,
		Description: provider.Description,
	}
}

// PlansToResponses converts a provider's plans to DTOs
func PlansToResponses(plans []entity.ProviderPlan) []dto.PlanResponse {
	responses := make([]dto.PlanResponse, len(plans))
	for i, plan := range plans {
		responses[i] = dto.PlanResponse{
			PlanID:      plan.PlanID,
			Name:        plan.Name,
			Description: plan.Description,
			BasePremium: plan.BasePremium,
			DrugLimit:   plan.DrugLimit,
			DentalLimit: plan.DentalLimit,
			VisionLimit: plan.VisionLimit,
		}
	}
	return responses
}
