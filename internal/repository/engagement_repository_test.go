package repository

import (
	"fmt"
	"testing"
	"time"

	"go-claims-service/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestEngagementRepository_FindAuditLogsByUser(t *testing.T) {
	db := setupTestDB(t)
	seedFixture(t, db)
	repo := NewEngagementRepository()

	entries, err := repo.FindAuditLogsByUser(db, "u1", 50)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// Newest event first, and u2's audit rows stay out
	assert.Equal(t, "audit2", entries[0].AuditID)
	assert.Equal(t, entity.AuditEventApproved, entries[0].EventType)
	assert.Equal(t, "claim-drug", entries[0].ClaimID)
	assert.Equal(t, entity.ClaimTypeDrug, entries[0].ClaimType)
	assert.Equal(t, "audit1", entries[1].AuditID)
}

func TestEngagementRepository_FindAuditLogsByUser_CapsResults(t *testing.T) {
	db := setupTestDB(t)
	seedFixture(t, db)
	repo := NewEngagementRepository()

	base := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 60; i++ {
		mustCreate(t, db, &entity.ClaimAuditLog{
			AuditID:     fmt.Sprintf("bulk-audit-%02d", i),
			ClaimID:     "claim-drug",
			EventTime:   base.Add(time.Duration(i) * time.Minute),
			EventType:   entity.AuditEventReviewed,
			PerformedBy: "adjudicator",
		})
	}

	entries, err := repo.FindAuditLogsByUser(db, "u1", 50)
	require.NoError(t, err)
	require.Len(t, entries, 50)

	// The newest bulk rows fill the window; the fixture's older events
	// fall off the end.
	assert.Equal(t, "bulk-audit-59", entries[0].AuditID)
	assert.Equal(t, "bulk-audit-10", entries[49].AuditID)
}

func TestEngagementRepository_FindDocumentsByUser(t *testing.T) {
	db := setupTestDB(t)
	seedFixture(t, db)
	repo := NewEngagementRepository()

	entries, err := repo.FindDocumentsByUser(db, "u1")
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "doc2", entries[0].DocumentID)
	assert.Equal(t, "xray.png", entries[0].FileName)
	assert.Equal(t, "claim-dental", entries[0].ClaimID)
	assert.Equal(t, "doc1", entries[1].DocumentID)
}

func TestEngagementRepository_FindPreferences(t *testing.T) {
	db := setupTestDB(t)
	seedFixture(t, db)
	repo := NewEngagementRepository()

	prefs, err := repo.FindPreferences(db, "u1")
	require.NoError(t, err)
	assert.True(t, prefs.CommunicationOptIn)
	assert.False(t, prefs.ConsentToShareData)
	assert.Equal(t, "en", prefs.LanguagePreference)

	_, err = repo.FindPreferences(db, "u2")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestEngagementRepository_FindCommunicationsByUser(t *testing.T) {
	db := setupTestDB(t)
	seedFixture(t, db)
	repo := NewEngagementRepository()

	entries, err := repo.FindCommunicationsByUser(db, "u1", 50)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	// Most recent message first
	assert.Equal(t, "log3", entries[0].LogID)
	assert.Equal(t, "Claim approved", entries[0].Subject)
	assert.Equal(t, "log1", entries[2].LogID)
}

func TestEngagementRepository_FindCommunicationsByUser_CapsResults(t *testing.T) {
	db := setupTestDB(t)
	seedFixture(t, db)
	repo := NewEngagementRepository()

	base := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 55; i++ {
		mustCreate(t, db, &entity.CommunicationLog{
			LogID:   fmt.Sprintf("bulk-log-%02d", i),
			UserID:  "u1",
			Type:    "email",
			Subject: "Monthly statement",
			SentAt:  base.Add(time.Duration(i) * time.Hour),
			Status:  "Delivered",
		})
	}

	entries, err := repo.FindCommunicationsByUser(db, "u1", 50)
	require.NoError(t, err)
	require.Len(t, entries, 50)
	assert.Equal(t, "bulk-log-54", entries[0].LogID)
}
