package usecase

import (
	"context"

	"go-claims-service/internal/delivery/dto"
	"go-claims-service/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type PreAuthorizationUsecase interface {
	GetPreAuthorizations(ctx context.Context, userID string) (*dto.PreAuthorizationListResponse, error)
}

type preAuthorizationUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	preAuthRepo repository.PreAuthorizationRepository
}

func NewPreAuthorizationUsecase(db *gorm.DB, log *logrus.Logger, preAuthRepo repository.PreAuthorizationRepository) PreAuthorizationUsecase {
	return &preAuthorizationUsecase{
		db:          db,
		log:         log,
		preAuthRepo: preAuthRepo,
	}
}

// GetPreAuthorizations returns a user's pre-authorization requests,
// most recent first
func (u *preAuthorizationUsecase) GetPreAuthorizations(ctx context.Context, userID string) (*dto.PreAuthorizationListResponse, error) {
	auths, err := u.preAuthRepo.FindByUser(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find pre-authorizations for user %s: %+v", userID, err)
		return nil, err
	}

	return &dto.PreAuthorizationListResponse{
		Authorizations: auths,
		Total:          len(auths),
	}, nil
}
