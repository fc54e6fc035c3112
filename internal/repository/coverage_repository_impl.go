package repository

import (
	"go-claims-service/internal/domain/entity"
	domainRepo "go-claims-service/internal/domain/repository"

	"gorm.io/gorm"
)

type coverageRepository struct{}

func NewCoverageRepository() domainRepo.CoverageRepository {
	return &coverageRepository{}
}

func (r *coverageRepository) FindByUser(db *gorm.DB, userID string) ([]entity.CoverageLimit, error) {
	var limits []entity.CoverageLimit
	err := db.Where("user_id = ?", userID).
		Order("year DESC, claim_type").
		Find(&limits).Error
	if err != nil {
		return nil, err
	}
	return limits, nil
}

func (r *coverageRepository) FindUsageByUser(db *gorm.DB, userID string) ([]entity.CoverageUsage, error) {
	var usage []entity.CoverageUsage
	err := db.Table("coverage_limits").
		Select("claim_type, year, max_coverage, used_coverage, (max_coverage - used_coverage) AS remaining_coverage").
		Where("user_id = ?", userID).
		Order("year DESC, claim_type").
		Scan(&usage).Error
	if err != nil {
		return nil, err
	}
	return usage, nil
}
