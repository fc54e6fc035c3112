package dto

import (
	"go-claims-service/internal/domain/entity"
)

type PreAuthorizationListResponse struct {
	Authorizations []entity.PreAuthorizationSummary `json:"authorizations"`
	Total          int                              `json:"total"`
}
