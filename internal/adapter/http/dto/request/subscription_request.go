package request

import (
	"strings"

	"gravitas_estimator/internal/domain/catalog"
)

type CheckoutRequest struct {
	UserID string `json:"user_id" binding:"required"`
	Email  string `json:"email"`
	Tier   string `json:"tier" binding:"required"`
}

func (r CheckoutRequest) ResolveUserID() string {
	return strings.TrimSpace(r.UserID)
}

func (r CheckoutRequest) ResolveTier() catalog.Tier {
	return catalog.Tier(strings.ToLower(strings.TrimSpace(r.Tier)))
}

// PayMongoWebhookEvent is the provider's event envelope. Only the event type
// and the payment intent id are read; the rest of the payload stays opaque.
type PayMongoWebhookEvent struct {
	Data struct {
		Attributes struct {
			Type string `json:"type"`
			Data struct {
				ID string `json:"id"`
			} `json:"data"`
		} `json:"attributes"`
	} `json:"data"`
}

func (e PayMongoWebhookEvent) EventType() string {
	return e.Data.Attributes.Type
}

func (e PayMongoWebhookEvent) PaymentIntentID() string {
	return strings.TrimSpace(e.Data.Attributes.Data.ID)
}
