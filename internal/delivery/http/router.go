package http

import (
	"net/http"

	"go-claims-service/internal/delivery/http/handler"
	"go-claims-service/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router            *mux.Router
	userHandler       *handler.UserHandler
	providerHandler   *handler.ProviderHandler
	policyHandler     *handler.PolicyHandler
	claimHandler      *handler.ClaimHandler
	coverageHandler   *handler.CoverageHandler
	engagementHandler *handler.EngagementHandler
	toolHandler       *handler.ToolHandler
	corsMiddleware    *middleware.CORSMiddleware
}

func NewRouter(
	userHandler *handler.UserHandler,
	providerHandler *handler.ProviderHandler,
	policyHandler *handler.PolicyHandler,
	claimHandler *handler.ClaimHandler,
	coverageHandler *handler.CoverageHandler,
	engagementHandler *handler.EngagementHandler,
	toolHandler *handler.ToolHandler,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:            mux.NewRouter(),
		userHandler:       userHandler,
		providerHandler:   providerHandler,
		policyHandler:     policyHandler,
		claimHandler:      claimHandler,
		coverageHandler:   coverageHandler,
		engagementHandler: engagementHandler,
		toolHandler:       toolHandler,
		corsMiddleware:    corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Tool catalog (agent-facing)
	api.HandleFunc("/tools", r.toolHandler.ListTools).Methods(http.MethodGet)
	api.HandleFunc("/tools/{name}", r.toolHandler.InvokeTool).Methods(http.MethodPost)

	// Users
	api.HandleFunc("/users/{id}", r.userHandler.GetUser).Methods(http.MethodGet)
	api.HandleFunc("/users/{id}/policies", r.policyHandler.GetUserPolicies).Methods(http.MethodGet)
	api.HandleFunc("/users/{id}/claims", r.claimHandler.GetUserClaims).Methods(http.MethodGet)
	api.HandleFunc("/users/{id}/dental-details", r.claimHandler.GetUserDentalDetails).Methods(http.MethodGet)
	api.HandleFunc("/users/{id}/drug-details", r.claimHandler.GetUserDrugDetails).Methods(http.MethodGet)
	api.HandleFunc("/users/{id}/hospital-visits", r.claimHandler.GetUserHospitalVisits).Methods(http.MethodGet)
	api.HandleFunc("/users/{id}/vision-claims", r.claimHandler.GetUserVisionClaims).Methods(http.MethodGet)
	api.HandleFunc("/users/{id}/coverage-limits", r.coverageHandler.GetUserCoverageLimits).Methods(http.MethodGet)
	api.HandleFunc("/users/{id}/pre-authorizations", r.coverageHandler.GetUserPreAuthorizations).Methods(http.MethodGet)
	api.HandleFunc("/users/{id}/audit-logs", r.engagementHandler.GetUserAuditLogs).Methods(http.MethodGet)
	api.HandleFunc("/users/{id}/documents", r.engagementHandler.GetUserDocuments).Methods(http.MethodGet)
	api.HandleFunc("/users/{id}/preferences", r.engagementHandler.GetUserPreferences).Methods(http.MethodGet)
	api.HandleFunc("/users/{id}/communications", r.engagementHandler.GetUserCommunications).Methods(http.MethodGet)

	// Providers
	api.HandleFunc("/providers/{id}", r.providerHandler.GetProvider).Methods(http.MethodGet)
	api.HandleFunc("/providers/{id}/plans", r.providerHandler.GetProviderPlans).Methods(http.MethodGet)
	api.HandleFunc("/providers/{id}/users", r.providerHandler.GetProviderUsers).Methods(http.MethodGet)

	// Policies and claims
	api.HandleFunc("/policies/active", r.policyHandler.GetActivePolicies).Methods(http.MethodGet)
	api.HandleFunc("/policies/{id}/payments", r.policyHandler.GetPolicyPayments).Methods(http.MethodGet)
	api.HandleFunc("/claims/{id}", r.claimHandler.GetClaim).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
