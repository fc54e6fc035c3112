package repository

import (
	"testing"

	"go-claims-service/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoverageRepository_FindByUser(t *testing.T) {
	db := setupTestDB(t)
	seedFixture(t, db)
	repo := NewCoverageRepository()

	limits, err := repo.FindByUser(db, "u1")
	require.NoError(t, err)
	require.Len(t, limits, 3)

	// year DESC, then claim_type
	assert.Equal(t, 2025, limits[0].Year)
	assert.Equal(t, entity.ClaimTypeDental, limits[0].ClaimType)
	assert.Equal(t, 2025, limits[1].Year)
	assert.Equal(t, entity.ClaimTypeDrug, limits[1].ClaimType)
	assert.Equal(t, 2024, limits[2].Year)
}

func TestCoverageRepository_FindUsageByUser_ComputesRemaining(t *testing.T) {
	db := setupTestDB(t)
	seedFixture(t, db)
	repo := NewCoverageRepository()

	usage, err := repo.FindUsageByUser(db, "u1")
	require.NoError(t, err)
	require.Len(t, usage, 3)

	for _, row := range usage {
		expected := row.MaxCoverage.Sub(row.UsedCoverage)
		assert.True(t, row.RemainingCoverage.Equal(expected),
			"%s/%d: remaining %s, want %s", row.ClaimType, row.Year, row.RemainingCoverage, expected)
	}

	// Spot-check the 2024 drug row: 1000 cap, 900 used
	last := usage[2]
	assert.Equal(t, 2024, last.Year)
	assert.Equal(t, "100", last.RemainingCoverage.String())
}

func TestCoverageRepository_FindUsageByUser_AbsentUser(t *testing.T) {
	db := setupTestDB(t)
	seedFixture(t, db)
	repo := NewCoverageRepository()

	usage, err := repo.FindUsageByUser(db, "no-such-user")
	require.NoError(t, err)
	assert.Empty(t, usage)
}
