package handler

import (
	"errors"
	"net/http"

	"go-claims-service/internal/usecase"
	"go-claims-service/pkg/response"

	"github.com/gorilla/mux"
)

type ClaimHandler struct {
	claimUsecase usecase.ClaimUsecase
}

func NewClaimHandler(claimUsecase usecase.ClaimUsecase) *ClaimHandler {
	return &ClaimHandler{
		claimUsecase: claimUsecase,
	}
}

func (h *ClaimHandler) GetUserClaims(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	claims, err := h.claimUsecase.GetClaimsByUser(r.Context(), vars["id"])
	if err != nil {
		response.InternalServerError(w, "Failed to get claims")
		return
	}

	response.Success(w, http.StatusOK, "Claims retrieved successfully", claims)
}

func (h *ClaimHandler) GetClaim(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	details, err := h.claimUsecase.GetClaimDetails(r.Context(), vars["id"])
	if err != nil {
		if errors.Is(err, usecase.ErrClaimNotFound) {
			response.NotFound(w, "Claim not found")
			return
		}
		response.InternalServerError(w, "Failed to get claim")
		return
	}

	response.Success(w, http.StatusOK, "Claim retrieved successfully", details)
}

func (h *ClaimHandler) GetUserDentalDetails(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	details, err := h.claimUsecase.GetDentalDetailsByUser(r.Context(), vars["id"])
	if err != nil {
		response.InternalServerError(w, "Failed to get dental details")
		return
	}

	response.Success(w, http.StatusOK, "Dental details retrieved successfully", details)
}

func (h *ClaimHandler) GetUserDrugDetails(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	details, err := h.claimUsecase.GetDrugDetailsByUser(r.Context(), vars["id"])
	if err != nil {
		response.InternalServerError(w, "Failed to get drug details")
		return
	}

	response.Success(w, http.StatusOK, "Drug details retrieved successfully", details)
}

func (h *ClaimHandler) GetUserHospitalVisits(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	visits, err := h.claimUsecase.GetHospitalVisitsByUser(r.Context(), vars["id"])
	if err != nil {
		response.InternalServerError(w, "Failed to get hospital visits")
		return
	}

	response.Success(w, http.StatusOK, "Hospital visits retrieved successfully", visits)
}

func (h *ClaimHandler) GetUserVisionClaims(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	claims, err := h.claimUsecase.GetVisionClaimsByUser(r.Context(), vars["id"])
	if err != nil {
		response.InternalServerError(w, "Failed to get vision claims")
		return
	}

	response.Success(w, http.StatusOK, "Vision claims retrieved successfully", claims)
}
