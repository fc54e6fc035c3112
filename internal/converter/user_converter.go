package converter

import (
	"go-claims-service/internal/delivery/dto"
	"go-claims-service/internal/domain/entity"
)

// UserToResponse converts a User entity to the full UserResponse DTO
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	return &dto.UserResponse{
		UserID:     user.UserID,
		Name:       user.Name,
		DOB:        user.DOB,
		HealthCard: user.HealthCard,
		Email:      user.Email,
		Phone:      user.Phone,
		ProviderID: user.ProviderID,
	}
}

// UsersToMemberResponses converts users to the reduced member listing rows
func UsersToMemberResponses(users []entity.User) []dto.ProviderMemberResponse {
	responses := make([]dto.ProviderMemberResponse, len(users))
	for i, user := range users {
		responses[i] = dto.ProviderMemberResponse{
			UserID: user.UserID,
			Name:   user.Name,
			Email:  user.Email,
			Phone:  user.Phone,
		}
	}
	return responses
}
