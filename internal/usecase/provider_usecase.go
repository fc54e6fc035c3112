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

var ErrProviderNotFound = errors.New("insurance provider not found")

type ProviderUsecase interface {
	GetProviderDetails(ctx context.Context, providerID string) (*dto.ProviderResponse, error)
	GetProviderPlans(ctx context.Context, providerID string) (*dto.PlanListResponse, error)
}

type providerUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	providerRepo repository.ProviderRepository
}

func NewProviderUsecase(db *gorm.DB, log *logrus.Logger, providerRepo repository.ProviderRepository) ProviderUsecase {
	return &providerUsecase{
		db:           db,
		log:          log,
		providerRepo: providerRepo,
	}
}

// GetProviderDetails returns one provider's record
func (u *providerUsecase) GetProviderDetails(ctx context.Context, providerID string) (*dto.ProviderResponse, error) {
	provider, err := u.providerRepo.FindByID(u.db.WithContext(ctx), providerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProviderNotFound
		}
		u.log.Warnf("Failed to find provider %s: %+v", providerID, err)
		return nil, err
	}

	return converter.ProviderToResponse(provider), nil
}

// GetProviderPlans lists a provider's plan offerings
func (u *providerUsecase) GetProviderPlans(ctx context.Context, providerID string) (*dto.PlanListResponse, error) {
	plans, err := u.providerRepo.FindPlans(u.db.WithContext(ctx), providerID)
	if err != nil {
		u.log.Warnf("Failed to find plans for provider %s: %+v", providerID, err)
		return nil, err
	}

	return &dto.PlanListResponse{
		Plans: converter.PlansToResponses(plans),
		Total: len(plans),
	}, nil
}
