package usecase

import (
	"context"
	"errors"

	"go-claims-service/internal/converter"
	"go-claims-service/internal/delivery/dto"
	"go-claims-service/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrPreferencesNotFound = errors.New("user preferences not found")

// historyCap bounds the audit and communications listings
const historyCap = 50

type EngagementUsecase interface {
	GetClaimAuditLogs(ctx context.Context, userID string) (*dto.AuditLogListResponse, error)
	GetUserClaimDocuments(ctx context.Context, userID string) (*dto.DocumentListResponse, error)
	GetUserPreferences(ctx context.Context, userID string) (*dto.PreferencesResponse, error)
	GetUserCommunications(ctx context.Context, userID string) (*dto.CommunicationListResponse, error)
}

type engagementUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	engagementRepo repository.EngagementRepository
}

func NewEngagementUsecase(db *gorm.DB, log *logrus.Logger, engagementRepo repository.EngagementRepository) EngagementUsecase {
	return &engagementUsecase{
		db:             db,
		log:            log,
		engagementRepo: engagementRepo,
	}
}

// GetClaimAuditLogs returns the most recent audit events across a user's
// claims, capped at 50
func (u *engagementUsecase) GetClaimAuditLogs(ctx context.Context, userID string) (*dto.AuditLogListResponse, error) {
	events, err := u.engagementRepo.FindAuditLogsByUser(u.db.WithContext(ctx), userID, historyCap)
	if err != nil {
		u.log.Warnf("Failed to find audit logs for user %s: %+v", userID, err)
		return nil, err
	}

	return &dto.AuditLogListResponse{
		Events: events,
		Total:  len(events),
	}, nil
}

// GetUserClaimDocuments returns metadata for every document attached to
// the user's claims
func (u *engagementUsecase) GetUserClaimDocuments(ctx context.Context, userID string) (*dto.DocumentListResponse, error) {
	documents, err := u.engagementRepo.FindDocumentsByUser(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find documents for user %s: %+v", userID, err)
		return nil, err
	}

	return &dto.DocumentListResponse{
		Documents: documents,
		Total:     len(documents),
	}, nil
}

// GetUserPreferences returns a user's communication and consent settings
func (u *engagementUsecase) GetUserPreferences(ctx context.Context, userID string) (*dto.PreferencesResponse, error) {
	prefs, err := u.engagementRepo.FindPreferences(u.db.WithContext(ctx), userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPreferencesNotFound
		}
		u.log.Warnf("Failed to find preferences for user %s: %+v", userID, err)
		return nil, err
	}

	return converter.PreferenceToResponse(prefs), nil
}

// GetUserCommunications returns the most recent messages for a user,
// capped at 50
func (u *engagementUsecase) GetUserCommunications(ctx context.Context, userID string) (*dto.CommunicationListResponse, error) {
	communications, err := u.engagementRepo.FindCommunicationsByUser(u.db.WithContext(ctx), userID, historyCap)
	if err != nil {
		u.log.Warnf("Failed to find communications for user %s: %+v", userID, err)
		return nil, err
	}

	return &dto.CommunicationListResponse{
		Communications: communications,
		Total:          len(communications),
	}, nil
}
