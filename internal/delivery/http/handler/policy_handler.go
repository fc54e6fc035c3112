package handler

import (
	"net/http"

	"go-claims-service/internal/usecase"
	"go-claims-service/pkg/response"

	"github.com/gorilla/mux"
)

type PolicyHandler struct {
	policyUsecase  usecase.PolicyUsecase
	billingUsecase usecase.BillingUsecase
}

func NewPolicyHandler(policyUsecase usecase.PolicyUsecase, billingUsecase usecase.BillingUsecase) *PolicyHandler {
	return &PolicyHandler{
		policyUsecase:  policyUsecase,
		billingUsecase: billingUsecase,
	}
}

func (h *PolicyHandler) GetUserPolicies(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	policies, err := h.policyUsecase.GetPoliciesByUser(r.Context(), vars["id"])
	if err != nil {
		response.InternalServerError(w, "Failed to get policies")
		return
	}

	response.Success(w, http.StatusOK, "Policies retrieved successfully", policies)
}

func (h *PolicyHandler) GetActivePolicies(w http.ResponseWriter, r *http.Request) {
	policies, err := h.policyUsecase.GetActivePolicies(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get active policies")
		return
	}

	response.Success(w, http.StatusOK, "Active policies retrieved successfully", policies)
}

func (h *PolicyHandler) GetPolicyPayments(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	payments, err := h.billingUsecase.GetPaymentsByPolicy(r.Context(), vars["id"])
	if err != nil {
		response.InternalServerError(w, "Failed to get payments")
		return
	}

	response.Success(w, http.StatusOK, "Payments retrieved successfully", payments)
}
