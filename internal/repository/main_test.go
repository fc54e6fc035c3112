package repository

import (
	"testing"
	"time"

	"go-claims-service/internal/domain/entity"
	"go-claims-service/internal/infrastructure/database"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens an in-memory SQLite database pinned to a single
// connection so every query sees the same schema and rows
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}

func date(value string) time.Time {
	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return d
}

func ts(value string) time.Time {
	d, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return d
}

func mustCreate(t *testing.T, db *gorm.DB, value interface{}) {
	t.Helper()
	require.NoError(t, db.Create(value).Error)
}

// seedFixture inserts a small dataset shared by the repository tests:
// two providers, two users, three policies, and a spread of claims with
// detail rows, billing and engagement records for user u1.
func seedFixture(t *testing.T, db *gorm.DB) {
	t.Helper()

	mustCreate(t, db, &entity.InsuranceProvider{ProviderID: "prov1", Name: "Maple Health", Description: "Leading national provider"})
	mustCreate(t, db, &entity.InsuranceProvider{ProviderID: "prov2", Name: "TrueCare Insurance", Description: "Trusted by millions"})

	mustCreate(t, db, &entity.User{UserID: "u1", Name: "Alice Nguyen", DOB: date("1990-04-02"), HealthCard: "HC1001", Email: "alice@example.com", Phone: "555-0101", ProviderID: "prov1"})
	mustCreate(t, db, &entity.User{UserID: "u2", Name: "Bob Tremblay", DOB: date("1985-11-20"), HealthCard: "HC1002", Email: "bob@example.com", Phone: "555-0102", ProviderID: "prov2"})

	active := true
	inactive := false
	mustCreate(t, db, &entity.Policy{PolicyID: "pol1", UserID: "u1", ProviderID: "prov1", PolicyNumber: "POL100", PlanType: "Premium", CoverageStart: date("2025-01-01"), CoverageEnd: date("2025-12-31"), MonthlyPremium: decimal.RequireFromString("120.50"), BillingFrequency: entity.BillingMonthly, Active: &active})
	mustCreate(t, db, &entity.Policy{PolicyID: "pol2", UserID: "u2", ProviderID: "prov2", PolicyNumber: "POL200", PlanType: "Basic", CoverageStart: date("2025-01-01"), CoverageEnd: date("2025-12-31"), MonthlyPremium: decimal.RequireFromString("85.00"), BillingFrequency: entity.BillingMonthly, Active: &active})
	mustCreate(t, db, &entity.Policy{PolicyID: "pol3", UserID: "u1", ProviderID: "prov1", PolicyNumber: "POL300", PlanType: "Basic", CoverageStart: date("2024-01-01"), CoverageEnd: date("2024-12-31"), MonthlyPremium: decimal.RequireFromString("95.00"), BillingFrequency: entity.BillingMonthly, Active: &inactive})

	mustCreate(t, db, &entity.ProviderPlan{PlanID: "plan1", ProviderID: "prov1", Name: "Plan_101", Description: "Standard insurance plan", BasePremium: decimal.RequireFromString("99.99"), DrugLimit: decimal.NewFromInt(1000), DentalLimit: decimal.NewFromInt(800), VisionLimit: decimal.NewFromInt(400)})
	mustCreate(t, db, &entity.ProviderPlan{PlanID: "plan2", ProviderID: "prov1", Name: "Plan_102", Description: "Standard insurance plan", BasePremium: decimal.RequireFromString("129.99"), DrugLimit: decimal.NewFromInt(2000), DentalLimit: decimal.NewFromInt(1000), VisionLimit: decimal.NewFromInt(600)})
	mustCreate(t, db, &entity.ProviderPlan{PlanID: "plan3", ProviderID: "prov2", Name: "Plan_201", Description: "Standard insurance plan", BasePremium: decimal.RequireFromString("79.99"), DrugLimit: decimal.NewFromInt(500), DentalLimit: decimal.NewFromInt(300), VisionLimit: decimal.NewFromInt(150)})

	// u1's claims span every type; "claim-orphan" deliberately has no
	// detail row, and "claim-hosp2" has an admission date out of order
	// with its service date.
	discharge := date("2025-04-18")
	claims := []entity.Claim{
		{ClaimID: "claim-drug", UserID: "u1", ProviderID: "prov1", PolicyID: "pol1", ServiceDate: date("2025-03-10"), ClaimType: entity.ClaimTypeDrug, ServiceCode: "SVC101", Description: "Prescription refill", AmountClaimed: decimal.RequireFromString("80.00"), AmountApproved: decimal.RequireFromString("60.00"), Status: entity.ClaimStatusApproved, SubmittedAt: ts("2025-03-10T10:00:00Z")},
		{ClaimID: "claim-dental", UserID: "u1", ProviderID: "prov1", PolicyID: "pol1", ServiceDate: date("2025-05-01"), ClaimType: entity.ClaimTypeDental, ServiceCode: "SVC102", Description: "Routine cleaning", AmountClaimed: decimal.RequireFromString("150.00"), AmountApproved: decimal.RequireFromString("0.00"), Status: entity.ClaimStatusPending, SubmittedAt: ts("2025-05-01T09:00:00Z")},
		{ClaimID: "claim-hosp1", UserID: "u1", ProviderID: "prov1", PolicyID: "pol1", ServiceDate: date("2025-04-15"), ClaimType: entity.ClaimTypeHospital, ServiceCode: "SVC103", Description: "Overnight stay", AmountClaimed: decimal.RequireFromString("900.00"), AmountApproved: decimal.RequireFromString("750.00"), Status: entity.ClaimStatusApproved, SubmittedAt: ts("2025-04-19T12:00:00Z")},
		{ClaimID: "claim-hosp2", UserID: "u1", ProviderID: "prov1", PolicyID: "pol1", ServiceDate: date("2025-02-01"), ClaimType: entity.ClaimTypeHospital, ServiceCode: "SVC104", Description: "Day surgery", AmountClaimed: decimal.RequireFromString("400.00"), AmountApproved: decimal.RequireFromString("400.00"), Status: entity.ClaimStatusApproved, SubmittedAt: ts("2025-06-02T12:00:00Z")},
		{ClaimID: "claim-vision", UserID: "u1", ProviderID: "prov1", PolicyID: "pol1", ServiceDate: date("2025-01-20"), ClaimType: entity.ClaimTypeVision, ServiceCode: "SVC105", Description: "New glasses", AmountClaimed: decimal.RequireFromString("250.00"), AmountApproved: decimal.RequireFromString("200.00"), Status: entity.ClaimStatusApproved, SubmittedAt: ts("2025-01-21T08:00:00Z")},
		{ClaimID: "claim-orphan", UserID: "u1", ProviderID: "prov1", PolicyID: "pol1", ServiceDate: date("2025-06-15"), ClaimType: entity.ClaimTypeDrug, ServiceCode: "SVC106", Description: "Pending intake", AmountClaimed: decimal.RequireFromString("45.00"), AmountApproved: decimal.RequireFromString("0.00"), Status: entity.ClaimStatusPending, SubmittedAt: ts("2025-06-15T16:00:00Z")},
		{ClaimID: "claim-other", UserID: "u2", ProviderID: "prov2", PolicyID: "pol2", ServiceDate: date("2025-03-20"), ClaimType: entity.ClaimTypeDrug, ServiceCode: "SVC107", Description: "Prescription refill", AmountClaimed: decimal.RequireFromString("30.00"), AmountApproved: decimal.RequireFromString("30.00"), Status: entity.ClaimStatusApproved, SubmittedAt: ts("2025-03-20T10:00:00Z")},
	}
	for i := range claims {
		mustCreate(t, db, &claims[i])
	}

	mustCreate(t, db, &entity.DrugDetail{ClaimID: "claim-drug", DrugName: "Atorvastatin", DINCode: "D12345", Quantity: 30, Dosage: "500mg"})
	mustCreate(t, db, &entity.DrugDetail{ClaimID: "claim-other", DrugName: "Metformin", DINCode: "D67890", Quantity: 60, Dosage: "850mg"})
	mustCreate(t, db, &entity.DentalDetail{ClaimID: "claim-dental", Category: "Cleaning", ToothCode: "T12", ProcedureCode: "PROC200"})
	mustCreate(t, db, &entity.HospitalVisit{ClaimID: "claim-hosp1", RoomType: "Private", AdmissionDate: date("2025-04-15"), DischargeDate: &discharge})
	mustCreate(t, db, &entity.HospitalVisit{ClaimID: "claim-hosp2", RoomType: "Shared", AdmissionDate: date("2025-06-01")})
	mustCreate(t, db, &entity.VisionClaim{ClaimID: "claim-vision", ProductType: "Glasses", CoverageLimit: decimal.NewFromInt(200), EligibilityDate: date("2025-01-01")})

	mustCreate(t, db, &entity.CoverageLimit{UserID: "u1", ClaimType: entity.ClaimTypeDrug, Year: 2025, MaxCoverage: decimal.NewFromInt(1000), UsedCoverage: decimal.RequireFromString("250.00")})
	mustCreate(t, db, &entity.CoverageLimit{UserID: "u1", ClaimType: entity.ClaimTypeDental, Year: 2025, MaxCoverage: decimal.NewFromInt(1500), UsedCoverage: decimal.RequireFromString("0.00")})
	mustCreate(t, db, &entity.CoverageLimit{UserID: "u1", ClaimType: entity.ClaimTypeDrug, Year: 2024, MaxCoverage: decimal.NewFromInt(1000), UsedCoverage: decimal.RequireFromString("900.00")})

	paid1 := date("2025-01-03")
	paid2 := date("2025-02-02")
	mustCreate(t, db, &entity.PremiumPayment{PaymentID: "pay1", PolicyID: "pol1", DueDate: date("2025-01-01"), PaidDate: &paid1, AmountDue: decimal.RequireFromString("120.50"), AmountPaid: decimal.RequireFromString("120.50"), PaymentStatus: "Paid", PaymentMethod: "Credit Card"})
	mustCreate(t, db, &entity.PremiumPayment{PaymentID: "pay2", PolicyID: "pol1", DueDate: date("2025-02-01"), PaidDate: &paid2, AmountDue: decimal.RequireFromString("120.50"), AmountPaid: decimal.RequireFromString("120.50"), PaymentStatus: "Paid", PaymentMethod: "Credit Card"})
	mustCreate(t, db, &entity.PremiumPayment{PaymentID: "pay3", PolicyID: "pol1", DueDate: date("2025-03-01"), AmountDue: decimal.RequireFromString("120.50"), AmountPaid: decimal.RequireFromString("0.00"), PaymentStatus: "Pending", PaymentMethod: "Credit Card"})

	approved := date("2025-03-05")
	mustCreate(t, db, &entity.PreAuthorization{AuthID: "auth1", UserID: "u1", PolicyID: "pol1", ServiceRequested: "MRI scan", EstimatedCost: decimal.NewFromInt(500), RequestDate: date("2025-03-01"), ApprovedDate: &approved, Status: "Approved", AgentNotes: "Reviewed by Dr. Smith"})
	mustCreate(t, db, &entity.PreAuthorization{AuthID: "auth2", UserID: "u1", PolicyID: "pol1", ServiceRequested: "Physiotherapy", EstimatedCost: decimal.NewFromInt(300), RequestDate: date("2025-05-10"), Status: "Pending"})

	mustCreate(t, db, &entity.ClaimAuditLog{AuditID: "audit1", ClaimID: "claim-drug", EventTime: ts("2025-03-10T10:00:00Z"), EventType: entity.AuditEventSubmitted, PerformedBy: "system", Notes: "Initial submission"})
	mustCreate(t, db, &entity.ClaimAuditLog{AuditID: "audit2", ClaimID: "claim-drug", EventTime: ts("2025-03-12T09:00:00Z"), EventType: entity.AuditEventApproved, PerformedBy: "adjudicator", Notes: "Auto-approved"})
	mustCreate(t, db, &entity.ClaimAuditLog{AuditID: "audit3", ClaimID: "claim-other", EventTime: ts("2025-03-20T10:00:00Z"), EventType: entity.AuditEventSubmitted, PerformedBy: "system", Notes: "Initial submission"})

	mustCreate(t, db, &entity.ClaimDocument{DocumentID: "doc1", ClaimID: "claim-drug", FileName: "receipt.pdf", UploadedAt: ts("2025-03-10T10:05:00Z"), DocumentType: "Receipt"})
	mustCreate(t, db, &entity.ClaimDocument{DocumentID: "doc2", ClaimID: "claim-dental", FileName: "xray.png", UploadedAt: ts("2025-05-01T09:30:00Z"), DocumentType: "Imaging"})

	mustCreate(t, db, &entity.CommunicationLog{LogID: "log1", UserID: "u1", Type: "email", Subject: "Claim received", Content: "We received your claim.", SentAt: ts("2025-01-05T12:00:00Z"), Status: "Delivered"})
	mustCreate(t, db, &entity.CommunicationLog{LogID: "log2", UserID: "u1", Type: "sms", Subject: "Payment reminder", Content: "Premium due soon.", SentAt: ts("2025-02-05T12:00:00Z"), Status: "Delivered"})
	mustCreate(t, db, &entity.CommunicationLog{LogID: "log3", UserID: "u1", Type: "email", Subject: "Claim approved", Content: "Your claim was approved.", SentAt: ts("2025-03-05T12:00:00Z"), Status: "Delivered"})

	mustCreate(t, db, &entity.UserPreference{UserID: "u1", CommunicationOptIn: true, ConsentToShareData: false, LanguagePreference: "en", Timezone: "America/Toronto"})
}
