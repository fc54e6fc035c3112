package converter

import (
	"go-claims-service/internal/delivery/dto"
	"go-claims-service/internal/domain/entity"
)

// PreferenceToResponse converts a UserPreference entity to its DTO
func PreferenceToResponse(prefs *entity.UserPreference) *dto.PreferencesResponse {
	if prefs == nil {
		return nil
	}

	return &dto.PreferencesResponse{
		CommunicationOptIn: prefs.CommunicationOptIn,
		ConsentToShareData: prefs.ConsentToShareData,
		LanguagePreference: prefs.LanguagePreference,
		Timezone:           prefs.Timezone,
	}
}
