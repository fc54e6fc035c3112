package dto

import (
	"go-claims-service/internal/domain/entity"
)

type PaymentListResponse struct {
	Payments []entity.PaymentRecord `json:"payments"`
	Total    int                    `json:"total"`
}
