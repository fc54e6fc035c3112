package usecase

import (
	"context"

	"go-claims-service/internal/delivery/dto"
	"go-claims-service/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type BillingUsecase interface {
	GetPaymentsByPolicy(ctx context.Context, policyID string) (*dto.PaymentListResponse, error)
}

type billingUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	paymentRepo repository.PaymentRepository
}

func NewBillingUsecase(db *gorm.DB, log *logrus.Logger, paymentRepo repository.PaymentRepository) BillingUsecase {
	return &billingUsecase{
		db:          db,
		log:         log,
		paymentRepo: paymentRepo,
	}
}

// GetPaymentsByPolicy returns a policy's premium payment history
func (u *billingUsecase) GetPaymentsByPolicy(ctx context.Context, policyID string) (*dto.PaymentListResponse, error) {
	payments, err := u.paymentRepo.FindByPolicy(u.db.WithContext(ctx), policyID)
	if err != nil {
		u.log.Warnf("Failed to find payments for policy %s: %+v", policyID, err)
		return nil, err
	}

	return &dto.PaymentListResponse{
		Payments: payments,
		Total:    len(payments),
	}, nil
}
