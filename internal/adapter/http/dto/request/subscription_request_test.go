package request

import (
	"encoding/json"
	"testing"

	"gravitas_estimator/internal/domain/catalog"
)

func TestCheckoutRequest_ResolveTier(t *testing.T) {
	r := CheckoutRequest{Tier: " Premium "}
	if got := r.ResolveTier(); got != catalog.TierPremium {
		t.Fatalf("expected premium, got %q", got)
	}

	r2 := CheckoutRequest{Tier: "STANDARD"}
	if got := r2.ResolveTier(); got != catalog.TierStandard {
		t.Fatalf("expected standard, got %q", got)
	}
}

func TestPayMongoWebhookEvent_Accessors(t *testing.T) {
	payload := `{"data":{"id":"evt_1","attributes":{"type":"payment.paid","data":{"id":" pi_abc "}}}}`

	var event PayMongoWebhookEvent
	if err := json.Unmarshal([]byte(payload), &event); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if event.EventType() != "payment.paid" {
		t.Fatalf("expected payment.paid, got %q", event.EventType())
	}
	if event.PaymentIntentID() != "pi_abc" {
		t.Fatalf("expected pi_abc, got %q", event.PaymentIntentID())
	}

	var empty PayMongoWebhookEvent
	if empty.EventType() != "" || empty.PaymentIntentID() != "" {
		t.Fatal("expected empty accessors on zero event")
	}
}
