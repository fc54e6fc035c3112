package usecase

import (
	"context"
	"errors"

	"go-claims-service/internal/delivery/dto"
	"go-claims-service/internal/domain/entity"
	"go-claims-service/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrClaimNotFound = errors.New("claim not found")

type ClaimUsecase interface {
	GetClaimsByUser(ctx context.Context, userID string) (*dto.ClaimListResponse, error)
	GetClaimDetails(ctx context.Context, claimID string) (*entity.ClaimDetails, error)
	GetDentalDetailsByUser(ctx context.Context, userID string) (*dto.DentalDetailListResponse, error)
	GetDrugDetailsByUser(ctx context.Context, userID string) (*dto.DrugDetailListResponse, error)
	GetHospitalVisitsByUser(ctx context.Context, userID string) (*dto.HospitalVisitListResponse, error)
	GetVisionClaimsByUser(ctx context.Context, userID string) (*dto.VisionClaimListResponse, error)
}

type claimUsecase struct {
	db        *gorm.DB
	log       *logrus.Logger
	claimRepo repository.ClaimRepository
}

func NewClaimUsecase(db *gorm.DB, log *logrus.Logger, claimRepo repository.ClaimRepository) ClaimUsecase {
	return &claimUsecase{
		db:        db,
		log:       log,
		claimRepo: claimRepo,
	}
}

// GetClaimsByUser returns a user's claim history, most recent service first
func (u *claimUsecase) GetClaimsByUser(ctx context.Context, userID string) (*dto.ClaimListResponse, error) {
	claims, err := u.claimRepo.FindSummariesByUser(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find claims for user %s: %+v", userID, err)
		return nil, err
	}

	return &dto.ClaimListResponse{
		Claims: claims,
		Total:  len(claims),
	}, nil
}

// GetClaimDetails returns the full view of one claim joined across user,
// policy, and provider
func (u *claimUsecase) GetClaimDetails(ctx context.Context, claimID string) (*entity.ClaimDetails, error) {
	details, err := u.claimRepo.FindDetails(u.db.WithContext(ctx), claimID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClaimNotFound
		}
		u.log.Warnf("Failed to find claim %s: %+v", claimID, err)
		return nil, err
	}

	return details, nil
}

func (u *claimUsecase) GetDentalDetailsByUser(ctx context.Context, userID string) (*dto.DentalDetailListResponse, error) {
	details, err := u.claimRepo.FindDentalByUser(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find dental details for user %s: %+v", userID, err)
		return nil, err
	}

	return &dto.DentalDetailListResponse{
		Details: details,
		Total:   len(details),
	}, nil
}

func (u *claimUsecase) GetDrugDetailsByUser(ctx context.Context, userID string) (*dto.DrugDetailListResponse, error) {
	details, err := u.claimRepo.FindDrugByUser(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find drug details for user %s: %+v", userID, err)
		return nil, err
	}

	return &dto.DrugDetailListResponse{
		Details: details,
		Total:   len(details),
	}, nil
}

func (u *claimUsecase) GetHospitalVisitsByUser(ctx context.Context, userID string) (*dto.HospitalVisitListResponse, error) {
	visits, err := u.claimRepo.FindHospitalByUser(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find hospital visits for user %s: %+v", userID, err)
		return nil, err
	}

	return &dto.HospitalVisitListResponse{
		Visits: visits,
		Total:  len(visits),
	}, nil
}

func (u *claimUsecase) GetVisionClaimsByUser(ctx context.Context, userID string) (*dto.VisionClaimListResponse, error) {
	claims, err := u.claimRepo.FindVisionByUser(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find vision claims for user %s: %+v", userID, err)
		return nil, err
	}

	return &dto.VisionClaimListResponse{
		Claims: claims,
		Total:  len(claims),
	}, nil
}
