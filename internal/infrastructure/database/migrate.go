package database

import (
	"fmt"

	"go-claims-service/internal/domain/entity"

	"gorm.io/gorm"
)

// Migrate provisions every claims table with create-if-not-exists semantics.
// Running it against an already-provisioned database is a no-op; there is no
// migration or versioning support beyond that.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&entity.InsuranceProvider{},
		&entity.User{},
		&entity.AuthUser{},
		&entity.ProviderPlan{},
		&entity.Policy{},
		&entity.PremiumPayment{},
		&entity.Claim{},
		&entity.DentalDetail{},
		&entity.DrugDetail{},
		&entity.HospitalVisit{},
		&entity.VisionClaim{},
		&entity.CoverageLimit{},
		&entity.ClaimAuditLog{},
		&entity.ClaimDocument{},
		&entity.PreAuthorization{},
		&entity.CommunicationLog{},
		&entity.UserPreference{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
