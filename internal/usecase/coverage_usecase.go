package usecase

import (
	"context"

	"go-claims-service/internal/converter"
	"go-claims-service/internal/delivery/dto"
	"go-claims-service/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type CoverageUsecase interface {
	GetCoverageLimits(ctx context.Context, userID string) (*dto.CoverageLimitListResponse, error)
	GetUserCoverageLimits(ctx context.Context, userID string) (*dto.CoverageUsageListResponse, error)
}

type coverageUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	coverageRepo repository.CoverageRepository
}

func NewCoverageUsecase(db *gorm.DB, log *logrus.Logger, coverageRepo repository.CoverageRepository) CoverageUsecase {
	return &coverageUsecase{
		db:           db,
		log:          log,
		coverageRepo: coverageRepo,
	}
}

// GetCoverageLimits returns a user's per-category annual caps and usage
func (u *coverageUsecase) GetCoverageLimits(ctx context.Context, userID string) (*dto.CoverageLimitListResponse, error) {
	limits, err := u.coverageRepo.FindByUser(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find coverage limits for user %s: %+v", userID, err)
		return nil, err
	}

	return &dto.CoverageLimitListResponse{
		Limits: converter.CoverageLimitsToResponses(limits),
		Total:  len(limits),
	}, nil
}

// GetUserCoverageLimits is GetCoverageLimits with the remaining headroom
// computed per row
func (u *coverageUsecase) GetUserCoverageLimits(ctx context.Context, userID string) (*dto.CoverageUsageListResponse, error) {
	usage, err := u.coverageRepo.FindUsageByUser(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find coverage usage for user %s: %+v", userID, err)
		return nil, err
	}

	return &dto.CoverageUsageListResponse{
		Limits: usage,
		Total:  len(usage),
	}, nil
}
