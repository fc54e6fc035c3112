package usecase

import (
	"context"
	"errors"

	"go-claims-service/internal/converter"
	"go-claims-service/internal/delivery/dto"
	"go-claims-service/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrUserNotFound = errors.New("user not found")

type UserUsecase interface {
	GetUserByID(ctx context.Context, userID string) (*dto.UserResponse, error)
	GetUsersByProvider(ctx context.Context, providerID string) (*dto.ProviderMemberListResponse, error)
}

type userUsecase struct {
	db       *gorm.DB
	log      *logrus.Logger
	userRepo repository.UserRepository
}

func NewUserUsecase(db *gorm.DB, log *logrus.Logger, userRepo repository.UserRepository) UserUsecase {
	return &userUsecase{
		db:       db,
		log:      log,
		userRepo: userRepo,
	}
}

// GetUserByID returns a single user's demographic record
func (u *userUsecase) GetUserByID(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByID(u.db.WithContext(ctx), userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		u.log.Warnf("Failed to find user %s: %+v", userID, err)
		return nil, err
	}

	return converter.UserToResponse(user), nil
}

// GetUsersByProvider returns every user associated with a provider
func (u *userUsecase) GetUsersByProvider(ctx context.Context, providerID string) (*dto.ProviderMemberListResponse, error) {
	users, err := u.userRepo.FindByProvider(u.db.WithContext(ctx), providerID)
	if err != nil {
		u.log.Warnf("Failed to find users for provider %s: %+v", providerID, err)
		return nil, err
	}

	return &dto.ProviderMemberListResponse{
		Users: converter.UsersToMemberResponses(users),
		Total: len(users),
	}, nil
}
