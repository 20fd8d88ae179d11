package response

import (
	"time"

	"gravitas_estimator/internal/domain/entities"
)

type SubscriptionResponse struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	Tier            string    `json:"tier"`
	PaymentIntentID string    `json:"payment_intent_id"`
	AmountCentavos  int64     `json:"amount_centavos"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	PaidAt          time.Time `json:"paid_at,omitempty"`
}

// CheckoutResponse adds the provider client key the frontend needs to attach
// a payment method to the intent.
type CheckoutResponse struct {
	SubscriptionResponse
	ClientKey string `json:"client_key"`
}

func FromSubscription(s entities.Subscription) SubscriptionResponse {
	return SubscriptionResponse{
		ID:              s.ID,
		UserID:          s.UserID,
		Tier:            string(s.Tier),
		PaymentIntentID: s.PaymentIntentID,
		AmountCentavos:  s.AmountCentavos,
		Status:          string(s.Status),
		CreatedAt:       s.CreatedAt,
		PaidAt:          s.PaidAt,
	}
}

func FromCheckout(s entities.Subscription, clientKey string) CheckoutResponse {
	return CheckoutResponse{
		SubscriptionResponse: FromSubscription(s),
		ClientKey:            clientKey,
	}
}
