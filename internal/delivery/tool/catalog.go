package tool

import (
	"context"
	"errors"

	"go-claims-service/internal/delivery/dto"
	"go-claims-service/internal/domain/entity"
	"go-claims-service/internal/usecase"
)

// Usecases bundles everything the catalog needs at wiring time
type Usecases struct {
	User             usecase.UserUsecase
	Policy           usecase.PolicyUsecase
	Claim            usecase.ClaimUsecase
	Provider         usecase.ProviderUsecase
	Billing          usecase.BillingUsecase
	Coverage         usecase.CoverageUsecase
	PreAuthorization usecase.PreAuthorizationUsecase
	Engagement       usecase.EngagementUsecase
}

// RegisterCatalog registers every catalog operation under its public name.
// Each tool returns an ordered sequence of records; single-row lookups
// return a one-element sequence, and a lookup miss returns an empty one.
func RegisterCatalog(r *Registry, uc Usecases) {
	r.MustRegister(Tool{
		Name:        "get_user_by_id",
		Description: "Retrieve a single user's details by their user_id",
		Param:       "user_id",
		Handler: func(ctx context.Context, params Params) (interface{}, error) {
			user, err := uc.User.GetUserByID(ctx, params["user_id"])
			if err != nil {
				if errors.Is(err, usecase.ErrUserNotFound) {
					return []dto.UserResponse{}, nil
				}
				return nil, err
			}
			return []dto.UserResponse{*user}, nil
		},
	})

	r.MustRegister(Tool{
		Name:        "get_users_by_provider",
		Description: "Find all users associated with a specific insurance provider",
		Param:       "provider_id",
		Handler: func(ctx context.Context, params Params) (interface{}, error) {
			resp, err := uc.User.GetUsersByProvider(ctx, params["provider_id"])
			if err != nil {
				return nil, err
			}
			return resp.Users, nil
		},
	})

	r.MustRegister(Tool{
		Name:        "get_policies_by_user",
		Description: "Retrieve all active insurance policies for a specific user",
		Param:       "user_id",
		Handler: func(ctx context.Context, params Params) (interface{}, error) {
			resp, err := uc.Policy.GetPoliciesByUser(ctx, params["user_id"])
			if err != nil {
				return nil, err
			}
			return resp.Policies, nil
		},
	})

	r.MustRegister(Tool{
		Name:        "get_active_policies",
		Description: "List all currently active insurance policies",
		Handler: func(ctx context.Context, params Params) (interface{}, error) {
			resp, err := uc.Policy.GetActivePolicies(ctx)
			if err != nil {
				return nil, err
			}
			return resp.Policies, nil
		},
	})

	r.MustRegister(Tool{
		Name:        "get_claims_by_user_id",
		Description: "Retrieve all claims submitted by a specific user",
		Param:       "user_id",
		Handler: func(ctx context.Context, params Params) (interface{}, error) {
			resp, err := uc.Claim.GetClaimsByUser(ctx, params["user_id"])
			if err != nil {
				return nil, err
			}
			return resp.Claims, nil
		},
	})

	r.MustRegister(Tool{
		Name:        "get_claim_details",
		Description: "Get detailed information about a specific claim",
		Param:       "claim_id",
		Handler: func(ctx context.Context, params Params) (interface{}, error) {
			details, err := uc.Claim.GetClaimDetails(ctx, params["claim_id"])
			if err != nil {
				if errors.Is(err, usecase.ErrClaimNotFound) {
					return []entity.ClaimDetails{}, nil
				}
				return nil, err
			}
			return []entity.ClaimDetails{*details}, nil
		},
	})

	r.MustRegister(Tool{
		Name:        "get_provider_details",
		Description: "Get information about an insurance provider",
		Param:       "provider_id",
		Handler: func(ctx context.Context, params Params) (interface{}, error) {
			provider, err := uc.Provider.GetProviderDetails(ctx, params["provider_id"])
			if err != nil {
				if errors.Is(err, usecase.ErrProviderNotFound) {
					return []dto.ProviderResponse{}, nil
				}
				return nil, err
			}
			return []dto.ProviderResponse{*provider}, nil
		},
	})

	r.MustRegister(Tool{
		Name:        "get_provider_plans",
		Description: "List all available plans from a specific insurance provider",
		Param:       "provider_id",
		Handler: func(ctx context.Context, params Params) (interface{}, error) {
			resp, err := uc.Provider.GetProviderPlans(ctx, params["provider_id"])
			if err != nil {
				return nil, err
			}
			return resp.Plans, nil
		},
	})

	r.MustRegister(Tool{
		Name:        "get_payments_by_policy",
		Description: "Retrieve payment history for a specific policy",
		Param:       "policy_id",
		Handler: func(ctx context.Context, params Params) (interface{}, error) {
			resp, err := uc.Billing.GetPaymentsByPolicy(ctx, params["policy_id"])
			if err != nil {
				return nil, err
			}
			return resp.Payments, nil
		},
	})

	r.MustRegister(Tool{
		Name:        "get_coverage_limits",
		Description: "Get coverage limits and usage for a specific user",
		Param:       "user_id",
		Handler: func(ctx context.Context, params Params) (interface{}, error) {
			resp, err := uc.Coverage.GetCoverageLimits(ctx, params["user_id"])
			if err != nil {
				return nil, err
			}
			return resp.Limits, nil
		},
	})

	r.MustRegister(Tool{
		Name:        "get_user_coverage_limits",
		Description: "Retrieve all coverage limits, usage, and remaining coverage for a specific user",
		Param:       "user_id",
		Handler: func(ctx context.Context, params Params) (interface{}, error) {
			resp, err := uc.Coverage.GetUserCoverageLimits(ctx, params["user_id"])
			if err != nil {
				return nil, err
			}
			return resp.Limits, nil
		},
	})

	r.MustRegister(Tool{
		Name:        "get_pre_authorizations",
		Description: "Retrieve pre-authorization requests for a user",
		Param:       "user_id",
		Handler: func(ctx context.Context, params Params) (interface{}, error) {
			resp, err := uc.PreAuthorization.GetPreAuthorizations(ctx, params["user_id"])
			if err != nil {
				return nil, err
			}
			return resp.Authorizations, nil
		},
	})

	r.MustRegister(Tool{
		Name:        "get_dental_details_by_user",
		Description: "Retrieve all dental claims for a specific user with procedure details",
		Param:       "user_id",
		Handler: func(ctx context.Context, params Params) (interface{}, error) {
			resp, err := uc.Claim.GetDentalDetailsByUser(ctx, params["user_id"])
			if err != nil {
				return nil, err
			}
			return resp.Details, nil
		},
	})

	r.MustRegister(Tool{
		Name:        "get_drug_details_by_user",
		Description: "Get all prescription drug claims for a user with medication details",
		Param:       "user_id",
		Handler: func(ctx context.Context, params Params) (interface{}, error) {
			resp, err := uc.Claim.GetDrugDetailsByUser(ctx, params["user_id"])
			if err != nil {
				return nil, err
			}
			return resp.Details, nil
		},
	})

	r.MustRegister(Tool{
		Name:        "get_hospital_visits_by_user",
		Description: "Retrieve all hospital visits for a user with stay details",
		Param:       "user_id",
		Handler: func(ctx context.Context, params Params) (interface{}, error) {
			resp, err := uc.Claim.GetHospitalVisitsByUser(ctx, params["user_id"])
			if err != nil {
				return nil, err
			}
			return resp.Visits, nil
		},
	})

	r.MustRegister(Tool{
		Name:        "get_vision_claims_by_user",
		Description: "Get all vision care claims for a user with product details",
		Param:       "user_id",
		Handler: func(ctx context.Context, params Params) (interface{}, error) {
			resp, err := uc.Claim.GetVisionClaimsByUser(ctx, params["user_id"])
			if err != nil {
				return nil, err
			}
			return resp.Claims, nil
		},
	})

	r.MustRegister(Tool{
		Name:        "get_claim_audit_logs",
		Description: "Get audit history for all claims belonging to a user",
		Param:       "user_id",
		Handler: func(ctx context.Context, params Params) (interface{}, error) {
			resp, err := uc.Engagement.GetClaimAuditLogs(ctx, params["user_id"])
			if err != nil {
				return nil, err
			}
			return resp.Events, nil
		},
	})

	r.MustRegister(Tool{
		Name:        "get_user_claim_documents",
		Description: "Retrieve all documents submitted with a user's claims",
		Param:       "user_id",
		Handler: func(ctx context.Context, params Params) (interface{}, error) {
			resp, err := uc.Engagement.GetUserClaimDocuments(ctx, params["user_id"])
			if err != nil {
				return nil, err
			}
			return resp.Documents, nil
		},
	})

	r.MustRegister(Tool{
		Name:        "get_user_preferences",
		Description: "Get communication preferences and settings for a user",
		Param:       "user_id",
		Handler: func(ctx context.Context, params Params) (interface{}, error) {
			prefs, err := uc.Engagement.GetUserPreferences(ctx, params["user_id"])
			if err != nil {
				if errors.Is(err, usecase.ErrPreferencesNotFound) {
					return []dto.PreferencesResponse{}, nil
				}
				return nil, err
			}
			return []dto.PreferencesResponse{*prefs}, nil
		},
	})

	r.MustRegister(Tool{
		Name:        "get_user_communications",
		Description: "Retrieve all communications sent to/from a user",
		Param:       "user_id",
		Handler: func(ctx context.Context, params Params) (interface{}, error) {
			resp, err := uc.Engagement.GetUserCommunications(ctx, params["user_id"])
			if err != nil {
				return nil, err
			}
			return resp.Communications, nil
		},
	})

	r.MustRegister(Tool{
		Name:        "ping",
		Description: "Health check tool",
		Handler: func(ctx context.Context, params Params) (interface{}, error) {
			return "pong", nil
		},
	})
}
