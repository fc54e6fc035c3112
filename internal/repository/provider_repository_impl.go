package repository

import (
	"go-claims-service/internal/domain/entity"
	domainRepo "go-claims-service/internal/domain/repository"

	"gorm.io/gorm"
)

type providerRepository struct{}

func NewProviderRepository() domainRepo.ProviderRepository {
	return &providerRepository{}
}

func (r *providerRepository) FindByID(db *gorm.DB, providerID string) (*entity.InsuranceProvider, error) {
	var provider entity.InsuranceProvider
	err := db.Where("provider_id = ?", providerID).First(&provider).Error
	if err != nil {
		return nil, err
	}
	return &provider, nil
}

func (r *providerRepository) FindPlans(db *gorm.DB, providerID string) ([]entity.ProviderPlan, error) {
	var plans []entity.ProviderPlan
	err := db.Where("provider_id = ?", providerID).Find(&plans).Error
	if err != nil {
		return nil, err
	}
	return plans, nil
}
