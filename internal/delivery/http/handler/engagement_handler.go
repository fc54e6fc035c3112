package handler

import (
	"errors"
	"net/http"

	"go-claims-service/internal/usecase"
	"go-claims-service/pkg/response"

	"github.com/gorilla/mux"
)

type EngagementHandler struct {
	engagementUsecase usecase.EngagementUsecase
}

func NewEngagementHandler(engagementUsecase usecase.EngagementUsecase) *EngagementHandler {
	return &EngagementHandler{
		engagementUsecase: engagementUsecase,
	}
}

func (h *EngagementHandler) GetUserAuditLogs(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	events, err := h.engagementUsecase.GetClaimAuditLogs(r.Context(), vars["id"])
	if err != nil {
		response.InternalServerError(w, "Failed to get audit logs")
		return
	}

	response.Success(w, http.StatusOK, "Audit logs retrieved successfully", events)
}

func (h *EngagementHandler) GetUserDocuments(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	documents, err := h.engagementUsecase.GetUserClaimDocuments(r.Context(), vars["id"])
	if err != nil {
		response.InternalServerError(w, "Failed to get claim documents")
		return
	}

	response.Success(w, http.StatusOK, "Documents retrieved successfully", documents)
}

func (h *EngagementHandler) GetUserPreferences(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	prefs, err := h.engagementUsecase.GetUserPreferences(r.Context(), vars["id"])
	if err != nil {
		if errors.Is(err, usecase.ErrPreferencesNotFound) {
			response.NotFound(w, "User preferences not found")
			return
		}
		response.InternalServerError(w, "Failed to get preferences")
		return
	}

	response.Success(w, http.StatusOK, "Preferences retrieved successfully", prefs)
}

func (h *EngagementHandler) GetUserCommunications(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	communications, err := h.engagementUsecase.GetUserCommunications(r.Context(), vars["id"])
	if err != nil {
		response.InternalServerError(w, "Failed to get communications")
		return
	}

	response.Success(w, http.StatusOK, "Communications retrieved successfully", communications)
}
