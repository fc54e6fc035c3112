package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestUserRepository_FindByID(t *testing.T) {
	db := setupTestDB(t)
	seedFixture(t, db)
	repo := NewUserRepository()

	user, err := repo.FindByID(db, "u1")
	require.NoError(t, err)

	assert.Equal(t, "Alice Nguyen", user.Name)
	assert.Equal(t, "HC1001", user.HealthCard)
	assert.Equal(t, "prov1", user.ProviderID)
}

func TestUserRepository_FindByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	seedFixture(t, db)
	repo := NewUserRepository()

	_, err := repo.FindByID(db, "no-such-user")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUserRepository_FindByProvider(t *testing.T) {
	db := setupTestDB(t)
	seedFixture(t, db)
	repo := NewUserRepository()

	users, err := repo.FindByProvider(db, "prov1")
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "u1", users[0].UserID)

	users, err = repo.FindByProvider(db, "no-such-provider")
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestProviderRepository_FindByID(t *testing.T) {
	db := setupTestDB(t)
	seedFixture(t, db)
	repo := NewProviderRepository()

	provider, err := repo.FindByID(db, "prov2")
	require.NoError(t, err)
	assert.Equal(t, "TrueCare Insurance", provider.Name)

	_, err = repo.FindByID(db, "no-such-provider")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestProviderRepository_FindPlans(t *testing.T) {
	db := setupTestDB(t)
	seedFixture(t, db)
	repo := NewProviderRepository()

	plans, err := repo.FindPlans(db, "prov1")
	require.NoError(t, err)
	assert.Len(t, plans, 2)

	plans, err = repo.FindPlans(db, "prov2")
	require.NoError(t, err)
	require.Len(t, plans, 1)
	assert.Equal(t, "Plan_201", plans[0].Name)
}
