package repository

import (
	"go-claims-service/internal/domain/entity"

	"gorm.io/gorm"
)

// ClaimRepository serves claim history and the per-category detail joins.
// Every join is an inner join: a claim without a matching policy or
// detail row of the expected type is excluded from the result.
type ClaimRepository interface {
	FindSummariesByUser(db *gorm.DB, userID string) ([]entity.ClaimSummary, error)
	FindDetails(db *gorm.DB, claimID string) (*entity.ClaimDetails, error)
	FindDentalByUser(db *gorm.DB, userID string) ([]entity.DentalClaimDetail, error)
	FindDrugByUser(db *gorm.DB, userID string) ([]entity.DrugClaimDetail, error)
	FindHospitalByUser(db *gorm.DB, userID string) ([]entity.HospitalVisitDetail, error)
	FindVisionByUser(db *gorm.DB, userID string) ([]entity.VisionClaimDetail, error)
}
