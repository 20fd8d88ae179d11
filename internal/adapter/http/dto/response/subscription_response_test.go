package response

import (
	"testing"
	"time"

	"gravitas_estimator/internal/domain/catalog"
	"gravitas_estimator/internal/domain/entities"
)

func TestFromCheckout(t *testing.T) {
	now := time.Now().UTC()
	sub := entities.Subscription{
		ID:              "sub-1",
		UserID:          "user-1",
		Tier:            catalog.TierStandard,
		PaymentIntentID: "pi_123",
		AmountCentavos:  49900,
		Status:          entities.SubscriptionStatusPending,
		CreatedAt:       now,
	}

	resp := FromCheckout(sub, "pi_123_client")
	if resp.ID != "sub-1" || resp.Tier != "standard" {
		t.Fatalf("subscription fields not mapped: %+v", resp)
	}
	if resp.AmountCentavos != 49900 {
		t.Fatalf("unexpected amount: %d", resp.AmountCentavos)
	}
	if resp.Status != "pending" {
		t.Fatalf("unexpected status: %q", resp.Status)
	}
	if resp.ClientKey != "pi_123_client" {
		t.Fatalf("unexpected client key: %q", resp.ClientKey)
	}
	if !resp.PaidAt.IsZero() {
		t.Fatalf("expected zero paid_at, got %v", resp.PaidAt)
	}
}
