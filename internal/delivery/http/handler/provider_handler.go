package handler

import (
	"errors"
	"net/http"

	"go-claims-service/internal/usecase"
	"go-claims-service/pkg/response"

	"github.com/gorilla/mux"
)

type ProviderHandler struct {
	providerUsecase usecase.ProviderUsecase
	userUsecase     usecase.UserUsecase
}

func NewProviderHandler(providerUsecase usecase.ProviderUsecase, userUsecase usecase.UserUsecase) *ProviderHandler {
	return &ProviderHandler{
		providerUsecase: providerUsecase,
		userUsecase:     userUsecase,
	}
}

func (h *ProviderHandler) GetProvider(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	provider, err := h.providerUsecase.GetProviderDetails(r.Context(), vars["id"])
	if err != nil {
		if errors.Is(err, usecase.ErrProviderNotFound) {
			response.NotFound(w, "Insurance provider not found")
			return
		}
		response.InternalServerError(w, "Failed to get provider")
		return
	}

	response.Success(w, http.StatusOK, "Provider retrieved successfully", provider)
}

func (h *ProviderHandler) GetProviderPlans(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	plans, err := h.providerUsecase.GetProviderPlans(r.Context(), vars["id"])
	if err != nil {
		response.InternalServerError(w, "Failed to get provider plans")
		return
	}

	response.Success(w, http.StatusOK, "Plans retrieved successfully", plans)
}

func (h *ProviderHandler) GetProviderUsers(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	users, err := h.userUsecase.GetUsersByProvider(r.Context(), vars["id"])
	if err != nil {
		response.InternalServerError(w, "Failed to get provider users")
		return
	}

	response.Success(w, http.StatusOK, "Users retrieved successfully", users)
}
