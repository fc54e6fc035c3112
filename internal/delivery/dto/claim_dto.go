package dto

import (
	"go-claims-service/internal/domain/entity"
)

type ClaimListResponse struct {
	Claims []entity.ClaimSummary `json:"claims"`
	Total  int                   `json:"total"`
}

type DentalDetailListResponse struct {
	Details []entity.DentalClaimDetail `json:"details"`
	Total   int                        `json:"total"`
}

type DrugDetailListResponse struct {
	Details []entity.DrugClaimDetail `json:"details"`
	Total   int                      `json:"total"`
}

type HospitalVisitListResponse struct {
	Visits []entity.HospitalVisitDetail `json:"visits"`
	Total  int                          `json:"total"`
}

type VisionClaimListResponse struct {
	Claims []entity.VisionClaimDetail `json:"claims"`
	Total  int                        `json:"total"`
}
