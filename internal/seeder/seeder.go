package seeder

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"go-claims-service/config"
	"go-claims-service/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var drugNames = []string{"Paracetamol", "Atorvastatin", "Metformin", "Ibuprofen", "Amoxicillin"}

var planTypes = []string{"Basic", "Standard", "Premium"}

var billingFrequencies = []entity.BillingFrequency{
	entity.BillingMonthly,
	entity.BillingQuarterly,
	entity.BillingAnnually,
}

var claimStatuses = []entity.ClaimStatus{
	entity.ClaimStatusPending,
	entity.ClaimStatusApproved,
	entity.ClaimStatusRejected,
}

// Seeder populates the claims schema with synthetic data through ordinary
// inserts, parents before children so every foreign key resolves. Unlike
// a real intake pipeline it performs no conflict handling; it is meant to
// run once against a freshly provisioned database.
type Seeder struct {
	db  *gorm.DB
	log *logrus.Logger
	cfg config.SeedConfig
	rnd *rand.Rand
}

// New creates a Seeder. A non-zero seed makes the generated dataset
// reproducible.
func New(db *gorm.DB, log *logrus.Logger, cfg config.SeedConfig, seed int64) *Seeder {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Seeder{
		db:  db,
		log: log,
		cfg: cfg,
		rnd: rand.New(rand.NewSource(seed)),
	}
}

// Run generates and inserts the full synthetic dataset
func (s *Seeder) Run(ctx context.Context) error {
	db := s.db.WithContext(ctx)

	providers, err := s.seedProviders(db)
	if err != nil {
		return fmt.Errorf("failed to seed providers: %w", err)
	}

	users, err := s.seedUsers(db, providers)
	if err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}

	if err := s.seedPlans(db, providers); err != nil {
		return fmt.Errorf("failed to seed provider plans: %w", err)
	}

	policies, err := s.seedPolicies(db, users)
	if err != nil {
		return fmt.Errorf("failed to seed policies: %w", err)
	}

	if err := s.seedPayments(db, policies); err != nil {
		return fmt.Errorf("failed to seed payments: %w", err)
	}

	if err := s.seedClaims(db, users, policies); err != nil {
		return fmt.Errorf("failed to seed claims: %w", err)
	}

	if err := s.seedPreAuthorizations(db, users, policies); err != nil {
		return fmt.Errorf("failed to seed pre-authorizations: %w", err)
	}

	s.log.Infof("Seed complete: %d providers, %d users, %d policies", len(providers), len(users), len(policies))
	return nil
}

func (s *Seeder) seedProviders(db *gorm.DB) ([]entity.InsuranceProvider, error) {
	providers := []entity.InsuranceProvider{
		{ProviderID: "prov1", Name: "Maple Health", Description: "Leading national provider"},
		{ProviderID: "prov2", Name: "TrueCare Insurance", Description: "Trusted by millions"},
		{ProviderID: "prov3", Name: "WellSpring", Description: "Affordable family plans"},
	}
	if err := db.Create(&providers).Error; err != nil {
		return nil, err
	}
	return providers, nil
}

func (s *Seeder) seedUsers(db *gorm.DB, providers []entity.InsuranceProvider) ([]entity.User, error) {
	users := make([]entity.User, 0, s.cfg.Users)
	year := time.Now().Year()

	for i := 0; i < s.cfg.Users; i++ {
		user := entity.User{
			UserID:     uuid.NewString(),
			Name:       fmt.Sprintf("User_name%d", i+1),
			DOB:        s.randomDate(time.Date(1980, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2000, 12, 31, 0, 0, 0, 0, time.UTC)),
			HealthCard: fmt.Sprintf("HC%d", 1000+i),
			Email:      fmt.Sprintf("user%d@example.com", i+1),
			Phone:      fmt.Sprintf("555-01%02d", i),
			ProviderID: providers[s.rnd.Intn(len(providers))].ProviderID,
		}
		if err := db.Create(&user).Error; err != nil {
			return nil, err
		}

		prefs := entity.UserPreference{
			UserID:             user.UserID,
			CommunicationOptIn: s.rnd.Intn(2) == 0,
			ConsentToShareData: s.rnd.Intn(2) == 0,
			LanguagePreference: "en",
			Timezone:           "America/Toronto",
		}
		if err := db.Create(&prefs).Error; err != nil {
			return nil, err
		}

		for _, claimType := range entity.ClaimTypes {
			limit := entity.CoverageLimit{
				UserID:       user.UserID,
				ClaimType:    claimType,
				Year:         year,
				MaxCoverage:  decimal.NewFromInt(1000),
				UsedCoverage: s.money(100, 800),
			}
			if err := db.Create(&limit).Error; err != nil {
				return nil, err
			}
		}

		users = append(users, user)
	}

	return users, nil
}

func (s *Seeder) seedPlans(db *gorm.DB, providers []entity.InsuranceProvider) error {
	for _, provider := range providers {
		for i := 0; i < 2; i++ {
			plan := entity.ProviderPlan{
				PlanID:      uuid.NewString(),
				ProviderID:  provider.ProviderID,
				Name:        fmt.Sprintf("Plan_%d", 100+s.rnd.Intn(900)),
				Description: "Standard insurance plan",
				BasePremium: s.money(50, 150),
				DrugLimit:   s.money(500, 2000),
				DentalLimit: s.money(300, 1000),
				VisionLimit: s.money(150, 700),
			}
			if err := db.Create(&plan).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *Seeder) seedPolicies(db *gorm.DB, users []entity.User) (map[string]entity.Policy, error) {
	policies := make(map[string]entity.Policy, len(users))

	for _, user := range users {
		start := time.Now().UTC().AddDate(0, 0, -(100 + s.rnd.Intn(265))).Truncate(24 * time.Hour)
		active := true
		policy := entity.Policy{
			PolicyID:         uuid.NewString(),
			UserID:           user.UserID,
			ProviderID:       user.ProviderID,
			PolicyNumber:     fmt.Sprintf("POL%d", 1000+s.rnd.Intn(9000)),
			PlanType:         planTypes[s.rnd.Intn(len(planTypes))],
			CoverageStart:    start,
			CoverageEnd:      start.AddDate(1, 0, 0),
			MonthlyPremium:   s.money(100, 500),
			BillingFrequency: billingFrequencies[s.rnd.Intn(len(billingFrequencies))],
			Active:           &active,
		}
		if err := db.Create(&policy).Error; err != nil {
			return nil, err
		}
		policies[user.UserID] = policy
	}

	return policies, nil
}

func (s *Seeder) seedPayments(db *gorm.DB, policies map[string]entity.Policy) error {
	for _, policy := range policies {
		for i := 0; i < s.cfg.PaymentsPerPolicy; i++ {
			due := policy.CoverageStart.AddDate(0, i, 0)
			paid := due.AddDate(0, 0, s.rnd.Intn(11))
			payment := entity.PremiumPayment{
				PaymentID:     uuid.NewString(),
				PolicyID:      policy.PolicyID,
				DueDate:       due,
				PaidDate:      &paid,
				AmountDue:     policy.MonthlyPremium,
				AmountPaid:    policy.MonthlyPremium,
				PaymentStatus: "Paid",
				PaymentMethod: "Credit Card",
			}
			if err := db.Create(&payment).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *Seeder) seedClaims(db *gorm.DB, users []entity.User, policies map[string]entity.Policy) error {
	for _, user := range users {
		policy := policies[user.UserID]

		for i := 0; i < s.cfg.ClaimsPerUser; i++ {
			claimType := entity.ClaimTypes[s.rnd.Intn(len(entity.ClaimTypes))]
			serviceDate := s.randomDate(policy.CoverageStart, time.Now().UTC())

			claim := entity.Claim{
				ClaimID:        uuid.NewString(),
				UserID:         user.UserID,
				ProviderID:     policy.ProviderID,
				PolicyID:       policy.PolicyID,
				ServiceDate:    serviceDate,
				ClaimType:      claimType,
				ServiceCode:    fmt.Sprintf("SVC%d", 100+s.rnd.Intn(900)),
				Description:    "Routine check or prescription",
				AmountClaimed:  s.money(50, 500),
				AmountApproved: s.money(10, 300),
				Status:         claimStatuses[s.rnd.Intn(len(claimStatuses))],
				SubmittedAt:    time.Now().UTC(),
			}
			if err := db.Create(&claim).Error; err != nil {
				return err
			}

			if err := s.seedClaimDetail(db, claim); err != nil {
				return err
			}

			audit := entity.ClaimAuditLog{
				AuditID:     uuid.NewString(),
				ClaimID:     claim.ClaimID,
				EventTime:   claim.SubmittedAt,
				EventType:   entity.AuditEventSubmitted,
				PerformedBy: "system",
				Notes:       "Initial submission",
			}
			if err := db.Create(&audit).Error; err != nil {
				return err
			}

			document := entity.ClaimDocument{
				DocumentID:   uuid.NewString(),
				ClaimID:      claim.ClaimID,
				FileName:     "receipt.pdf",
				UploadedAt:   claim.SubmittedAt,
				DocumentType: "Receipt",
			}
			if err := db.Create(&document).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

// seedClaimDetail writes the one detail-variant row matching the claim's
// declared type
func (s *Seeder) seedClaimDetail(db *gorm.DB, claim entity.Claim) error {
	switch claim.ClaimType {
	case entity.ClaimTypeDrug:
		detail := entity.DrugDetail{
			ClaimID:  claim.ClaimID,
			DrugName: drugNames[s.rnd.Intn(len(drugNames))],
			DINCode:  fmt.Sprintf("D%d", 10000+s.rnd.Intn(90000)),
			Quantity: 10 + s.rnd.Intn(81),
			Dosage:   fmt.Sprintf("%dmg", 250+s.rnd.Intn(751)),
		}
		return db.Create(&detail).Error
	case entity.ClaimTypeDental:
		detail := entity.DentalDetail{
			ClaimID:       claim.ClaimID,
			Category:      "Cleaning",
			ToothCode:     "T12",
			ProcedureCode: fmt.Sprintf("PROC%d", 100+s.rnd.Intn(900)),
		}
		return db.Create(&detail).Error
	case entity.ClaimTypeHospital:
		discharge := claim.ServiceDate.AddDate(0, 0, 1+s.rnd.Intn(5))
		detail := entity.HospitalVisit{
			ClaimID:       claim.ClaimID,
			RoomType:      "Private",
			AdmissionDate: claim.ServiceDate,
			DischargeDate: &discharge,
		}
		return db.Create(&detail).Error
	case entity.ClaimTypeVision:
		detail := entity.VisionClaim{
			ClaimID:         claim.ClaimID,
			ProductType:     "Glasses",
			CoverageLimit:   decimal.NewFromInt(200),
			EligibilityDate: claim.ServiceDate.AddDate(0, -1, 0),
		}
		return db.Create(&detail).Error
	}
	return fmt.Errorf("unknown claim type: %s", claim.ClaimType)
}

func (s *Seeder) seedPreAuthorizations(db *gorm.DB, users []entity.User, policies map[string]entity.Policy) error {
	for i, user := range users {
		// Roughly half the users get an outstanding pre-authorization
		if i%2 != 0 {
			continue
		}

		policy := policies[user.UserID]
		requestDate := time.Now().UTC().AddDate(0, 0, -s.rnd.Intn(60))
		approvedDate := requestDate.AddDate(0, 0, 4)
		auth := entity.PreAuthorization{
			AuthID:           uuid.NewString(),
			UserID:           user.UserID,
			PolicyID:         policy.PolicyID,
			ServiceRequested: "MRI scan",
			EstimatedCost:    decimal.NewFromInt(500),
			RequestDate:      requestDate,
			ApprovedDate:     &approvedDate,
			Status:           "Approved",
			AgentNotes:       "Reviewed by Dr. Smith",
		}
		if err := db.Create(&auth).Error; err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) randomDate(start, end time.Time) time.Time {
	days := int(end.Sub(start).Hours() / 24)
	if days <= 0 {
		return start
	}
	return start.AddDate(0, 0, s.rnd.Intn(days))
}

// money returns a random amount in [min, max) rounded to cents
func (s *Seeder) money(min, max float64) decimal.Decimal {
	return decimal.NewFromFloat(min + s.rnd.Float64()*(max-min)).Round(2)
}
