package usecase

import (
	"context"

	"go-claims-service/internal/delivery/dto"
	"go-claims-service/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type PolicyUsecase interface {
	GetPoliciesByUser(ctx context.Context, userID string) (*dto.PolicyListResponse, error)
	GetActivePolicies(ctx context.Context) (*dto.ActivePolicyListResponse, error)
}

type policyUsecase struct {
	db         *gorm.DB
	log        *logrus.Logger
	policyRepo repository.PolicyRepository
}

func NewPolicyUsecase(db *gorm.DB, log *logrus.Logger, policyRepo repository.PolicyRepository) PolicyUsecase {
	return &policyUsecase{
		db:         db,
		log:        log,
		policyRepo: policyRepo,
	}
}

// GetPoliciesByUser returns a user's active policies with provider names
func (u *policyUsecase) GetPoliciesByUser(ctx context.Context, userID string) (*dto.PolicyListResponse, error) {
	policies, err := u.policyRepo.FindActiveByUser(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find policies for user %s: %+v", userID, err)
		return nil, err
	}

	return &dto.PolicyListResponse{
		Policies: policies,
		Total:    len(policies),
	}, nil
}

// GetActivePolicies returns every currently active policy
func (u *policyUsecase) GetActivePolicies(ctx context.Context) (*dto.ActivePolicyListResponse, error) {
	policies, err := u.policyRepo.FindAllActive(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list active policies: %+v", err)
		return nil, err
	}

	return &dto.ActivePolicyListResponse{
		Policies: policies,
		Total:    len(policies),
	}, nil
}
