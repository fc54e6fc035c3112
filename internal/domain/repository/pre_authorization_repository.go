package repository

import (
	"go-claims-service/internal/domain/entity"

	"gorm.io/gorm"
)

type PreAuthorizationRepository interface {
	FindByUser(db *gorm.DB, userID string) ([]entity.PreAuthorizationSummary, error)
}
