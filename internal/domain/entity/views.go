package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Read-model rows returned by the query catalog. Each type carries the
// fixed column set of one catalog operation, including columns pulled in
// from joined tables.

// ClaimSummary is one row of a user's claim history, joined to the
// policy number
type ClaimSummary struct {
	ClaimID        string          `json:"claim_id"`
	ServiceDate    time.Time       `json:"service_date"`
	ClaimType      ClaimType       `json:"claim_type"`
	AmountClaimed  decimal.Decimal `json:"amount_claimed"`
	AmountApproved decimal.Decimal `json:"amount_approved"`
	Status         ClaimStatus     `json:"status"`
	PolicyNumber   string          `json:"policy_number"`
}

// ClaimDetails is the full claim row joined across user, policy, and
// provider. A claim missing any of the three parents does not resolve.
type ClaimDetails struct {
	ClaimID        string          `json:"claim_id"`
	UserID         string          `json:"user_id"`
	ProviderID     string          `json:"provider_id"`
	PolicyID       string          `json:"policy_id"`
	ServiceDate    time.Time       `json:"service_date"`
	ClaimType      ClaimType       `json:"claim_type"`
	ServiceCode    string          `json:"service_code"`
	Description    string          `json:"description"`
	AmountClaimed  decimal.Decimal `json:"amount_claimed"`
	AmountApproved decimal.Decimal `json:"amount_approved"`
	Status         ClaimStatus     `json:"status"`
	SubmittedAt    time.Time       `json:"submitted_at"`
	UserName       string          `json:"user_name"`
	PolicyNumber   string          `json:"policy_number"`
	ProviderName   string          `json:"provider_name"`
}

// UserPolicy is one of a user's active policies with the provider name
// resolved
type UserPolicy struct {
	PolicyID       string          `json:"policy_id"`
	PolicyNumber   string          `json:"policy_number"`
	PlanType       string          `json:"plan_type"`
	CoverageStart  time.Time       `json:"coverage_start"`
	CoverageEnd    time.Time       `json:"coverage_end"`
	MonthlyPremium decimal.Decimal `json:"monthly_premium"`
	ProviderName   string          `json:"provider_name"`
}

// ActivePolicy is one row of the global active-policy listing
type ActivePolicy struct {
	PolicyID       string          `json:"policy_id"`
	UserName       string          `json:"user_name"`
	ProviderName   string          `json:"provider_name"`
	PolicyNumber   string          `json:"policy_number"`
	CoverageEnd    time.Time       `json:"coverage_end"`
	MonthlyPremium decimal.Decimal `json:"monthly_premium"`
}

// PaymentRecord is one row of a policy's payment history
type PaymentRecord struct {
	PaymentID     string          `json:"payment_id"`
	DueDate       time.Time       `json:"due_date"`
	PaidDate      *time.Time      `json:"paid_date,omitempty"`
	AmountDue     decimal.Decimal `json:"amount_due"`
	AmountPaid    decimal.Decimal `json:"amount_paid"`
	PaymentStatus string          `json:"payment_status"`
}

// CoverageUsage is a coverage-limit row with the remaining headroom
// computed as max_coverage - used_coverage
type CoverageUsage struct {
	ClaimType         ClaimType       `json:"claim_type"`
	Year              int             `json:"year"`
	MaxCoverage       decimal.Decimal `json:"max_coverage"`
	UsedCoverage      decimal.Decimal `json:"used_coverage"`
	RemainingCoverage decimal.Decimal `json:"remaining_coverage"`
}

// PreAuthorizationSummary is one row of a user's pre-authorization history
type PreAuthorizationSummary struct {
	AuthID           string          `json:"auth_id"`
	ServiceRequested string          `json:"service_requested"`
	EstimatedCost    decimal.Decimal `json:"estimated_cost"`
	RequestDate      time.Time       `json:"request_date"`
	ApprovedDate     *time.Time      `json:"approved_date,omitempty"`
	Status           string          `json:"status"`
}

// DentalClaimDetail is a dental claim joined with its procedure detail
type DentalClaimDetail struct {
	ClaimID       string      `json:"claim_id"`
	ServiceDate   time.Time   `json:"service_date"`
	Status        ClaimStatus `json:"status"`
	Category      string      `json:"category"`
	ToothCode     string      `json:"tooth_code"`
	ProcedureCode string      `json:"procedure_code"`
}

// DrugClaimDetail is a drug claim joined with its prescription detail
type DrugClaimDetail struct {
	ClaimID     string      `json:"claim_id"`
	ServiceDate time.Time   `json:"service_date"`
	Status      ClaimStatus `json:"status"`
	DrugName    string      `json:"drug_name"`
	DINCode     string      `gorm:"column:din_code" json:"din_code"`
	Quantity    int         `json:"quantity"`
	Dosage      string      `json:"dosage"`
}

// HospitalVisitDetail is a hospital claim joined with its stay detail
type HospitalVisitDetail struct {
	ClaimID       string      `json:"claim_id"`
	ServiceDate   time.Time   `json:"service_date"`
	Status        ClaimStatus `json:"status"`
	RoomType      string      `json:"room_type"`
	AdmissionDate time.Time   `json:"admission_date"`
	DischargeDate *time.Time  `json:"discharge_date,omitempty"`
}

// VisionClaimDetail is a vision claim joined with its product detail
type VisionClaimDetail struct {
	ClaimID         string          `json:"claim_id"`
	ServiceDate     time.Time       `json:"service_date"`
	Status          ClaimStatus     `json:"status"`
	ProductType     string          `json:"product_type"`
	CoverageLimit   decimal.Decimal `json:"coverage_limit"`
	EligibilityDate time.Time       `json:"eligibility_date"`
}

// ClaimAuditEntry is one audit event across a user's claims
type ClaimAuditEntry struct {
	AuditID     string    `json:"audit_id"`
	EventTime   time.Time `json:"event_time"`
	EventType   string    `json:"event_type"`
	PerformedBy string    `json:"performed_by"`
	ClaimID     string    `json:"claim_id"`
	ClaimType   ClaimType `json:"claim_type"`
}

// ClaimDocumentEntry is one document attached to any of a user's claims
type ClaimDocumentEntry struct {
	DocumentID   string    `json:"document_id"`
	FileName     string    `json:"file_name"`
	UploadedAt   time.Time `json:"uploaded_at"`
	DocumentType string    `json:"document_type"`
	ClaimID      string    `json:"claim_id"`
	ClaimType    ClaimType `json:"claim_type"`
}

// CommunicationEntry is one message in a user's communications log
type CommunicationEntry struct {
	LogID   string    `json:"log_id"`
	Type    string    `json:"type"`
	Subject string    `json:"subject"`
	SentAt  time.Time `json:"sent_at"`
	Status  string    `json:"status"`
}
