package repository

import (
	"go-claims-service/internal/domain/entity"

	"gorm.io/gorm"
)

type CoverageRepository interface {
	// FindByUser returns a user's coverage limits, newest year first then by category
	FindByUser(db *gorm.DB, userID string) ([]entity.CoverageLimit, error)
	// FindUsageByUser is FindByUser with the remaining headroom computed per row
	FindUsageByUser(db *gorm.DB, userID string) ([]entity.CoverageUsage, error)
}
