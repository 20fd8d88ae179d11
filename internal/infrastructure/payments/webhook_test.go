package payments

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"testing"
)

func sign(payload []byte, timestamp, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(timestamp))
	mac.Write([]byte("."))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifyWebhookSignature(t *testing.T) {
	payload := []byte(`{"data":{"attributes":{"type":"payment.paid"}}}`)
	secret := "whsk_test_secret"

	t.Run("valid test-mode signature", func(t *testing.T) {
		header := "t=1724900000,te=" + sign(payload, "1724900000", secret) + ",li="
		if err := VerifyWebhookSignature(payload, header, secret); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("valid live-mode signature", func(t *testing.T) {
		header := "t=1724900000,te=,li=" + sign(payload, "1724900000", secret)
		if err := VerifyWebhookSignature(payload, header, secret); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("tampered payload", func(t *testing.T) {
		header := "t=1724900000,te=" + sign(payload, "1724900000", secret)
		err := VerifyWebhookSignature([]byte(`{"data":{}}`), header, secret)
		if !errors.Is(err, ErrInvalidWebhookSignature) {
			t.Fatalf("expected ErrInvalidWebhookSignature, got %v", err)
		}
	})

	t.Run("missing header", func(t *testing.T) {
		err := VerifyWebhookSignature(payload, "", secret)
		if !errors.Is(err, ErrInvalidWebhookSignature) {
			t.Fatalf("expected ErrInvalidWebhookSignature, got %v", err)
		}
	})

	t.Run("malformed header", func(t *testing.T) {
		err := VerifyWebhookSignature(payload, "garbage", secret)
		if !errors.Is(err, ErrInvalidWebhookSignature) {
			t.Fatalf("expected ErrInvalidWebhookSignature, got %v", err)
		}
	})

	t.Run("verification disabled without a secret", func(t *testing.T) {
		if err := VerifyWebhookSignature(payload, "", ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
