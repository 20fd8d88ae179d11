package interfaces

import (
	"context"
	"encoding/json"
)

// PaymentIntentRequest is the provider-neutral input for starting a checkout.
// The metadata fields travel to the provider and come back on webhooks, so
// the paid event can be reconciled without extra lookups.
type PaymentIntentRequest struct {
	AmountCentavos int64
	Description    string
	UserID         string
	Tier           string
	Email          string
}

// PaymentIntentResult carries the provider's intent id, the client key the
// frontend needs to collect the payment, and the raw provider response for
// traceability.
type PaymentIntentResult struct {
	IntentID    string
	ClientKey   string
	RawResponse json.RawMessage
}

// IPaymentGateway abstracts external payment providers (e.g. PayMongo).
type IPaymentGateway interface {
	CreatePaymentIntent(ctx context.Context, req PaymentIntentRequest) (PaymentIntentResult, error)
}
