package repository

import (
	"go-claims-service/internal/domain/entity"

	"gorm.io/gorm"
)

type ProviderRepository interface {
	FindByID(db *gorm.DB, providerID string) (*entity.InsuranceProvider, error)
	FindPlans(db *gorm.DB, providerID string) ([]entity.ProviderPlan, error)
}
