package repository

import (
	"go-claims-service/internal/domain/entity"
	domainRepo "go-claims-service/internal/domain/repository"

	"gorm.io/gorm"
)

type policyRepository struct{}

func NewPolicyRepository() domainRepo.PolicyRepository {
	return &policyRepository{}
}

func (r *policyRepository) FindActiveByUser(db *gorm.DB, userID string) ([]entity.UserPolicy, error) {
	var policies []entity.UserPolicy
	err := db.Table("policies p").
		Select("p.policy_id, p.policy_number, p.plan_type, p.coverage_start, p.coverage_end, p.monthly_premium, ip.name AS provider_name").
		Joins("JOIN insurance_providers ip ON p.provider_id = ip.provider_id").
		Where("p.user_id = ? AND p.active = ?", userID, true).
		Scan(&policies).Error
	if err != nil {
		return nil, err
	}
	return policies, nil
}

func (r *policyRepository) FindAllActive(db *gorm.DB) ([]entity.ActivePolicy, error) {
	var policies []entity.ActivePolicy
	err := db.Table("policies p").
		Select("p.policy_id, u.name AS user_name, ip.name AS provider_name, p.policy_number, p.coverage_end, p.monthly_premium").
		Joins("JOIN users u ON p.user_id = u.user_id").
		Joins("JOIN insurance_providers ip ON p.provider_id = ip.provider_id").
		Where("p.active = ?", true).
		Scan(&policies).Error
	if err != nil {
		return nil, err
	}
	return policies, nil
}
