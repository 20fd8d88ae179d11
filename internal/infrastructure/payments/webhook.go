package payments

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
)

var ErrInvalidWebhookSignature = errors.New("invalid webhook signature")

// VerifyWebhookSignature checks a Paymongo-Signature header against the raw
// request body. The header carries a timestamp and per-mode HMACs in the form
// "t=<ts>,te=<test hmac>,li=<live hmac>"; the expected digest is
// HMAC-SHA256 of "<ts>.<body>" keyed with the webhook secret. Either mode's
// digest is accepted so one deployment can serve both test and live events.
func VerifyWebhookSignature(payload []byte, signatureHeader, secret string) error {
	if secret == "" {
		// No secret configured means verification is disabled (local runs).
		return nil
	}
	if strings.TrimSpace(signatureHeader) == "" {
		return ErrInvalidWebhookSignature
	}

	var timestamp string
	var digests []string
	for _, part := range strings.Split(signatureHeader, ",") {
		key, value, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			continue
		}
		switch key {
		case "t":
			timestamp = value
		case "te", "li":
			if value != "" {
				digests = append(digests, value)
			}
		}
	}
	if timestamp == "" || len(digests) == 0 {
		return ErrInvalidWebhookSignature
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(timestamp))
	mac.Write([]byte("."))
	mac.Write(payload)
	expected := hex.EncodeToString(mac.Sum(nil))

	for _, digest := range digests {
		if hmac.Equal([]byte(expected), []byte(digest)) {
			return nil
		}
	}
	return ErrInvalidWebhookSignature
}
