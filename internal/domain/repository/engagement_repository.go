package repository

import (
	"go-claims-service/internal/domain/entity"

	"gorm.io/gorm"
)

// EngagementRepository serves the per-user audit, document, preference,
// and communication views.
type EngagementRepository interface {
	// FindAuditLogsByUser returns at most limit audit events across the
	// user's claims, most recent first
	FindAuditLogsByUser(db *gorm.DB, userID string, limit int) ([]entity.ClaimAuditEntry, error)
	FindDocumentsByUser(db *gorm.DB, userID string) ([]entity.ClaimDocumentEntry, error)
	FindPreferences(db *gorm.DB, userID string) (*entity.UserPreference, error)
	// FindCommunicationsByUser returns at most limit messages, most recent first
	FindCommunicationsByUser(db *gorm.DB, userID string, limit int) ([]entity.CommunicationEntry, error)
}
