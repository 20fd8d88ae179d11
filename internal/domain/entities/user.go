package entities

import (
	"time"

	"gravitas_estimator/internal/domain/catalog"
)

type TierStatus string

const (
	TierStatusActive   TierStatus = "active"
	TierStatusCanceled TierStatus = "canceled"
	TierStatusPastDue  TierStatus = "past_due"
)

// User is the account record the estimator needs: subscription tier and the
// monthly usage counter. Identity itself (credentials, profile) lives with the
// external identity provider.
//
// Storage model (DynamoDB):
//   - PK: id
type User struct {
	ID                     string       `json:"id"`
	Email                  string       `json:"email,omitempty"`
	DisplayName            string       `json:"display_name,omitempty"`
	Tier                   catalog.Tier `json:"tier"`
	TierStatus             TierStatus   `json:"tier_status"`
	EstimatesUsedThisMonth int          `json:"estimates_used_this_month"`
	LastEstimateReset      time.Time    `json:"last_estimate_reset"`
	CreatedAt              time.Time    `json:"created_at"`
	UpdatedAt              time.Time    `json:"updated_at"`
}

// SubscriptionPlan describes one purchasable tier. MaxEstimates <= 0 means
// unlimited.
type SubscriptionPlan struct {
	ID             catalog.Tier `json:"id"`
	Name           string       `json:"name"`
	Price          float64      `json:"price"`
	PriceFormatted string       `json:"price_formatted"`
	AmountCentavos int64        `json:"amount_centavos"`
	MaxEstimates   int          `json:"max_estimates"`
	Features       []string     `json:"features"`
}

// SubscriptionPlans mirrors the published plan matrix: free 5 estimates/month,
// standard 100, premium unlimited. Amounts are PayMongo centavos.
var SubscriptionPlans = map[catalog.Tier]SubscriptionPlan{
	catalog.TierFree: {
		ID: catalog.TierFree, Name: "FREE", Price: 0, PriceFormatted: "FREE",
		AmountCentavos: 0, MaxEstimates: 5,
		Features: []string{"5 estimates/month", "Basic materials", "Email support"},
	},
	catalog.TierStandard: {
		ID: catalog.TierStandard, Name: "STANDARD", Price: 499, PriceFormatted: "₱499/month",
		AmountCentavos: 49900, MaxEstimates: 100,
		Features: []string{"100 estimates/month", "All materials", "PDF export", "Priority support"},
	},
	catalog.TierPremium: {
		ID: catalog.TierPremium, Name: "PREMIUM", Price: 1499, PriceFormatted: "₱1,499/month",
		AmountCentavos: 149900, MaxEstimates: 0,
		Features: []string{"Unlimited estimates", "All features", "Bulk estimates", "24/7 support"},
	},
}
