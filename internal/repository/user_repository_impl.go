package repository

import (
	"go-claims-service/internal/domain/entity"
	domainRepo "go-claims-service/internal/domain/repository"

	"gorm.io/gorm"
)

type userRepository struct{}

func NewUserRepository() domainRepo.UserRepository {
	return &userRepository{}
}

func (r *userRepository) FindByID(db *gorm.DB, userID string) (*entity.User, error) {
	var user entity.User
	err := db.Where("user_id = ?", userID).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByProvider(db *gorm.DB, providerID string) ([]entity.User, error) {
	var users []entity.User
	err := db.Where("provider_id = ?", providerID).Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}
