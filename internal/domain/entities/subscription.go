package entities

import (
	"time"

	"gravitas_estimator/internal/domain/catalog"
)

type SubscriptionStatus string

const (
	SubscriptionStatusPending SubscriptionStatus = "pending"
	SubscriptionStatusActive  SubscriptionStatus = "active"
	SubscriptionStatusFailed  SubscriptionStatus = "failed"
)

// Subscription links a user's tier purchase to the payment provider's
// payment intent. It starts pending and becomes active when the provider
// reports payment.paid via webhook.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (payment_intent_id-index): payment_intent_id
type Subscription struct {
	ID              string             `json:"id"`
	UserID          string             `json:"user_id"`
	Tier            catalog.Tier       `json:"tier"`
	PaymentIntentID string             `json:"payment_intent_id"`
	AmountCentavos  int64              `json:"amount_centavos"`
	Status          SubscriptionStatus `json:"status"`
	CreatedAt       time.Time          `json:"created_at"`
	PaidAt          time.Time          `json:"paid_at,omitempty"`
}
