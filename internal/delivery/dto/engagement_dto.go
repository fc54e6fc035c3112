package dto

import (
	"go-claims-service/internal/domain/entity"
)

type AuditLogListResponse struct {
	Events []entity.ClaimAuditEntry `json:"events"`
	Total  int                      `json:"total"`
}

type DocumentListResponse struct {
	Documents []entity.ClaimDocumentEntry `json:"documents"`
	Total     int                         `json:"total"`
}

type PreferencesResponse struct {
	CommunicationOptIn bool   `json:"communication_opt_in"`
	ConsentToShareData bool   `json:"consent_to_share_data"`
	LanguagePreference string `json:"language_preference"`
	Timezone           string `json:"timezone"`
}

type CommunicationListResponse struct {
	Communications []entity.CommunicationEntry `json:"communications"`
	Total          int                         `json:"total"`
}
