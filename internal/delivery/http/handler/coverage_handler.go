package handler

import (
	"net/http"

	"go-claims-service/internal/usecase"
	"go-claims-service/pkg/response"

	"github.com/gorilla/mux"
)

type CoverageHandler struct {
	coverageUsecase usecase.CoverageUsecase
	preAuthUsecase  usecase.PreAuthorizationUsecase
}

func NewCoverageHandler(coverageUsecase usecase.CoverageUsecase, preAuthUsecase usecase.PreAuthorizationUsecase) *CoverageHandler {
	return &CoverageHandler{
		coverageUsecase: coverageUsecase,
		preAuthUsecase:  preAuthUsecase,
	}
}

func (h *CoverageHandler) GetUserCoverageLimits(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	limits, err := h.coverageUsecase.GetUserCoverageLimits(r.Context(), vars["id"])
	if err != nil {
		response.InternalServerError(w, "Failed to get coverage limits")
		return
	}

	response.Success(w, http.StatusOK, "Coverage limits retrieved successfully", limits)
}

func (h *CoverageHandler) GetUserPreAuthorizations(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	auths, err := h.preAuthUsecase.GetPreAuthorizations(r.Context(), vars["id"])
	if err != nil {
		response.InternalServerError(w, "Failed to get pre-authorizations")
		return
	}

	response.Success(w, http.StatusOK, "Pre-authorizations retrieved successfully", auths)
}
