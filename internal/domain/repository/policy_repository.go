package repository

import (
	"go-claims-service/internal/domain/entity"

	"gorm.io/gorm"
)

type PolicyRepository interface {
	// FindActiveByUser returns a user's active policies with provider names resolved
	FindActiveByUser(db *gorm.DB, userID string) ([]entity.UserPolicy, error)
	// FindAllActive returns every active policy joined to its user and provider
	FindAllActive(db *gorm.DB) ([]entity.ActivePolicy, error)
}
