package repository

import (
	"go-claims-service/internal/domain/entity"
	domainRepo "go-claims-service/internal/domain/repository"

	"gorm.io/gorm"
)

type paymentRepository struct{}

func NewPaymentRepository() domainRepo.PaymentRepository {
	return &paymentRepository{}
}

func (r *paymentRepository) FindByPolicy(db *gorm.DB, policyID string) ([]entity.PaymentRecord, error) {
	var payments []entity.PaymentRecord
	err := db.Table("premium_payments").
		Select("payment_id, due_date, paid_date, amount_due, amount_paid, payment_status").
		Where("policy_id = ?", policyID).
		Order("due_date DESC").
		Scan(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}
