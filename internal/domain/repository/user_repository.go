package repository

import (
	"go-claims-service/internal/domain/entity"

	"gorm.io/gorm"
)

type UserRepository interface {
	FindByID(db *gorm.DB, userID string) (*entity.User, error)
	FindByProvider(db *gorm.DB, providerID string) ([]entity.User, error)
}
