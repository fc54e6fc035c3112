package seeder

import (
	"context"
	"io"
	"testing"

	"go-claims-service/config"
	"go-claims-service/internal/domain/entity"
	"go-claims-service/internal/infrastructure/database"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// seededDB migrates an in-memory database and runs the seeder against it
func seededDB(t *testing.T, cfg config.SeedConfig, seed int64) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, database.Migrate(db))

	log := logrus.New()
	log.SetOutput(io.Discard)
	require.NoError(t, New(db, log, cfg, seed).Run(context.Background()))
	return db
}

func TestSeeder_Run(t *testing.T) {
	db := seededDB(t, config.SeedConfig{Users: 3, ClaimsPerUser: 4, PaymentsPerPolicy: 2}, 42)

	count := func(model interface{}) int64 {
		var n int64
		require.NoError(t, db.Model(model).Count(&n).Error)
		return n
	}

	assert.EqualValues(t, 3, count(&entity.InsuranceProvider{}))
	assert.EqualValues(t, 3, count(&entity.User{}))
	assert.EqualValues(t, 3, count(&entity.Policy{}))
	assert.EqualValues(t, 6, count(&entity.ProviderPlan{}))
	assert.EqualValues(t, 6, count(&entity.PremiumPayment{}))
	assert.EqualValues(t, 12, count(&entity.Claim{}))
	assert.EqualValues(t, 12, count(&entity.ClaimAuditLog{}))
	assert.EqualValues(t, 12, count(&entity.ClaimDocument{}))
	assert.EqualValues(t, 3, count(&entity.UserPreference{}))
	// One coverage limit per claim type per user
	assert.EqualValues(t, 12, count(&entity.CoverageLimit{}))
}

func TestSeeder_Run_DetailRowsMatchClaimType(t *testing.T) {
	db := seededDB(t, config.SeedConfig{Users: 5, ClaimsPerUser: 6, PaymentsPerPolicy: 1}, 7)

	var claims []entity.Claim
	require.NoError(t, db.Find(&claims).Error)
	require.Len(t, claims, 30)

	// Every claim must carry exactly one detail row, in the table
	// matching its type
	for _, claim := range claims {
		var n int64
		switch claim.ClaimType {
		case entity.ClaimTypeDrug:
			require.NoError(t, db.Model(&entity.DrugDetail{}).Where("claim_id = ?", claim.ClaimID).Count(&n).Error)
		case entity.ClaimTypeDental:
			require.NoError(t, db.Model(&entity.DentalDetail{}).Where("claim_id = ?", claim.ClaimID).Count(&n).Error)
		case entity.ClaimTypeHospital:
			require.NoError(t, db.Model(&entity.HospitalVisit{}).Where("claim_id = ?", claim.ClaimID).Count(&n).Error)
		case entity.ClaimTypeVision:
			require.NoError(t, db.Model(&entity.VisionClaim{}).Where("claim_id = ?", claim.ClaimID).Count(&n).Error)
		}
		assert.EqualValues(t, 1, n, "claim %s (%s)", claim.ClaimID, claim.ClaimType)
	}

	var detailTotal int64
	for _, model := range []interface{}{&entity.DrugDetail{}, &entity.DentalDetail{}, &entity.HospitalVisit{}, &entity.VisionClaim{}} {
		var n int64
		require.NoError(t, db.Model(model).Count(&n).Error)
		detailTotal += n
	}
	assert.EqualValues(t, len(claims), detailTotal)
}

func TestSeeder_Run_ReferentialIntegrity(t *testing.T) {
	db := seededDB(t, config.SeedConfig{Users: 4, ClaimsPerUser: 3, PaymentsPerPolicy: 2}, 99)

	// No claim may reference a missing user, policy, or provider
	var orphans int64
	require.NoError(t, db.Table("claims c").
		Joins("LEFT JOIN users u ON c.user_id = u.user_id").
		Joins("LEFT JOIN policies p ON c.policy_id = p.policy_id").
		Joins("LEFT JOIN insurance_providers ip ON c.provider_id = ip.provider_id").
		Where("u.user_id IS NULL OR p.policy_id IS NULL OR ip.provider_id IS NULL").
		Count(&orphans).Error)
	assert.Zero(t, orphans)

	// Policies stay inside their provider's membership
	var crossed int64
	require.NoError(t, db.Table("policies p").
		Joins("JOIN users u ON p.user_id = u.user_id").
		Where("p.provider_id <> u.provider_id").
		Count(&crossed).Error)
	assert.Zero(t, crossed)
}
