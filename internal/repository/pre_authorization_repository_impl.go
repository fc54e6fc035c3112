package repository

import (
	"go-claims-service/internal/domain/entity"
	domainRepo "go-claims-service/internal/domain/repository"

	"gorm.io/gorm"
)

type preAuthorizationRepository struct{}

func NewPreAuthorizationRepository() domainRepo.PreAuthorizationRepository {
	return &preAuthorizationRepository{}
}

func (r *preAuthorizationRepository) FindByUser(db *gorm.DB, userID string) ([]entity.PreAuthorizationSummary, error) {
	var auths []entity.PreAuthorizationSummary
	err := db.Table("pre_authorizations").
		Select("auth_id, service_requested, estimated_cost, request_date, approved_date, status").
		Where("user_id = ?", userID).
		Order("request_date DESC").
		Scan(&auths).Error
	if err != nil {
		return nil, err
	}
	return auths, nil
}
