package repository

import (
	"go-claims-service/internal/domain/entity"
	domainRepo "go-claims-service/internal/domain/repository"

	"gorm.io/gorm"
)

type engagementRepository struct{}

func NewEngagementRepository() domainRepo.EngagementRepository {
	return &engagementRepository{}
}

func (r *engagementRepository) FindAuditLogsByUser(db *gorm.DB, userID string, limit int) ([]entity.ClaimAuditEntry, error) {
	var entries []entity.ClaimAuditEntry
	err := db.Table("claim_audit_logs a").
		Select("a.audit_id, a.event_time, a.event_type, a.performed_by, c.claim_id, c.claim_type").
		Joins("JOIN claims c ON a.claim_id = c.claim_id").
		Where("c.user_id = ?", userID).
		Order("a.event_time DESC").
		Limit(limit).
		Scan(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *engagementRepository) FindDocumentsByUser(db *gorm.DB, userID string) ([]entity.ClaimDocumentEntry, error) {
	var entries []entity.ClaimDocumentEntry
	err := db.Table("claim_documents d").
		Select("d.document_id, d.file_name, d.uploaded_at, d.document_type, c.claim_id, c.claim_type").
		Joins("JOIN claims c ON d.claim_id = c.claim_id").
		Where("c.user_id = ?", userID).
		Order("d.uploaded_at DESC").
		Scan(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *engagementRepository) FindPreferences(db *gorm.DB, userID string) (*entity.UserPreference, error) {
	var prefs entity.UserPreference
	err := db.Where("user_id = ?", userID).First(&prefs).Error
	if err != nil {
		return nil, err
	}
	return &prefs, nil
}

func (r *engagementRepository) FindCommunicationsByUser(db *gorm.DB, userID string, limit int) ([]entity.CommunicationEntry, error) {
	var entries []entity.CommunicationEntry
	err := db.Table("communications_log").
		Select("log_id, type, subject, sent_at, status").
		Where("user_id = ?", userID).
		Order("sent_at DESC").
		Limit(limit).
		Scan(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
