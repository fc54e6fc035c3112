package dto

import (
	"go-claims-service/internal/domain/entity"
)

type PolicyListResponse struct {
	Policies []entity.UserPolicy `json:"policies"`
	Total    int                 `json:"total"`
}

type ActivePolicyListResponse struct {
	Policies []entity.ActivePolicy `json:"policies"`
	Total    int                   `json:"total"`
}
