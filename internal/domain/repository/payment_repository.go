package repository

import (
	"go-claims-service/internal/domain/entity"

	"gorm.io/gorm"
)

type PaymentRepository interface {
	// FindByPolicy returns a policy's payment history, most recent due date first
	FindByPolicy(db *gorm.DB, policyID string) ([]entity.PaymentRecord, error)
}
