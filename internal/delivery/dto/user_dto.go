package dto

import (
	"time"
)

// UserResponse is the full demographic record for one user
type UserResponse struct {
	UserID     string    `json:"user_id"`
	Name       string    `json:"name"`
	DOB        time.Time `json:"dob"`
	HealthCard string    `json:"health_card"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	ProviderID string    `json:"provider_id"`
}

// ProviderMemberResponse is the reduced user record returned when listing
// a provider's members
type ProviderMemberResponse struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
}

type ProviderMemberListResponse struct {
	Users []ProviderMemberResponse `json:"users"`
	Total int                      `json:"total"`
}
