package repository

import (
	"go-claims-service/internal/domain/entity"
	domainRepo "go-claims-service/internal/domain/repository"

	"gorm.io/gorm"
)

type claimRepository struct{}

func NewClaimRepository() domainRepo.ClaimRepository {
	return &claimRepository{}
}

func (r *claimRepository) FindSummariesByUser(db *gorm.DB, userID string) ([]entity.ClaimSummary, error) {
	var claims []entity.ClaimSummary
	err := db.Table("claims c").
		Select("c.claim_id, c.service_date, c.claim_type, c.amount_claimed, c.amount_approved, c.status, p.policy_number").
		Joins("JOIN policies p ON c.policy_id = p.policy_id").
		Where("c.user_id = ?", userID).
		Order("c.service_date DESC").
		Scan(&claims).Error
	if err != nil {
		return nil, err
	}
	return claims, nil
}

func (r *claimRepository) FindDetails(db *gorm.DB, claimID string) (*entity.ClaimDetails, error) {
	var details entity.ClaimDetails
	err := db.Table("claims c").
		Select("c.claim_id, c.user_id, c.provider_id, c.policy_id, c.service_date, c.claim_type, c.service_code, c.description, c.amount_claimed, c.amount_approved, c.status, c.submitted_at, u.name AS user_name, p.policy_number, ip.name AS provider_name").
		Joins("JOIN users u ON c.user_id = u.user_id").
		Joins("JOIN policies p ON c.policy_id = p.policy_id").
		Joins("JOIN insurance_providers ip ON c.provider_id = ip.provider_id").
		Where("c.claim_id = ?", claimID).
		Take(&details).Error
	if err != nil {
		return nil, err
	}
	return &details, nil
}

func (r *claimRepository) FindDentalByUser(db *gorm.DB, userID string) ([]entity.DentalClaimDetail, error) {
	var details []entity.DentalClaimDetail
	err := db.Table("claims c").
		Select("c.claim_id, c.service_date, c.status, d.category, d.tooth_code, d.procedure_code").
		Joins("JOIN dental_details d ON c.claim_id = d.claim_id").
		Where("c.user_id = ?", userID).
		Order("c.service_date DESC").
		Scan(&details).Error
	if err != nil {
		return nil, err
	}
	return details, nil
}

func (r *claimRepository) FindDrugByUser(db *gorm.DB, userID string) ([]entity.DrugClaimDetail, error) {
	var details []entity.DrugClaimDetail
	err := db.Table("claims c").
		Select("c.claim_id, c.service_date, c.status, d.drug_name, d.din_code, d.quantity, d.dosage").
		Joins("JOIN drug_details d ON c.claim_id = d.claim_id").
		Where("c.user_id = ?", userID).
		Order("c.service_date DESC").
		Scan(&details).Error
	if err != nil {
		return nil, err
	}
	return details, nil
}

func (r *claimRepository) FindHospitalByUser(db *gorm.DB, userID string) ([]entity.HospitalVisitDetail, error) {
	var details []entity.HospitalVisitDetail
	// Hospital stays sort by admission date, not service date
	err := db.Table("claims c").
		Select("c.claim_id, c.service_date, c.status, h.room_type, h.admission_date, h.discharge_date").
		Joins("JOIN hospital_visits h ON c.claim_id = h.claim_id").
		Where("c.user_id = ?", userID).
		Order("h.admission_date DESC").
		Scan(&details).Error
	if err != nil {
		return nil, err
	}
	return details, nil
}

func (r *claimRepository) FindVisionByUser(db *gorm.DB, userID string) ([]entity.VisionClaimDetail, error) {
	var details []entity.VisionClaimDetail
	err := db.Table("claims c").
		Select("c.claim_id, c.service_date, c.status, v.product_type, v.coverage_limit, v.eligibility_date").
		Joins("JOIN vision_claims v ON c.claim_id = v.claim_id").
		Where("c.user_id = ?", userID).
		Order("c.service_date DESC").
		Scan(&details).Error
	if err != nil {
		return nil, err
	}
	return details, nil
}
