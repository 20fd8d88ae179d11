package payments

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"gravitas_estimator/internal/usecase/interfaces"
)

const defaultPayMongoBaseURL = "https://api.paymongo.com"

var ErrMissingPayMongoSecretKey = errors.New("missing PAYMONGO_SECRET_KEY")
var ErrPayMongoGatewayNotConfigured = errors.New("paymongo gateway not configured")

// PayMongoGateway creates payment intents against the PayMongo REST API.
// PayMongo publishes no Go SDK, so this is a thin client over net/http.
type PayMongoGateway struct {
	httpClient *http.Client
	baseURL    string
	secretKey  string
	mockMode   bool
}

var _ interfaces.IPaymentGateway = (*PayMongoGateway)(nil)

func NewPayMongoGateway(secretKey string) (*PayMongoGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][gateway] mock mode enabled")
		return &PayMongoGateway{mockMode: true}, nil
	}

	if secretKey == "" {
		log.Printf("[payment][gateway] missing PAYMONGO_SECRET_KEY")
		return nil, ErrMissingPayMongoSecretKey
	}
	log.Printf("[payment][gateway] PayMongo client initialized")

	return &PayMongoGateway{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    getenvDefault("PAYMONGO_BASE_URL", defaultPayMongoBaseURL),
		secretKey:  secretKey,
	}, nil
}

type paymentIntentEnvelope struct {
	Data struct {
		ID         string `json:"id"`
		Attributes struct {
			Amount    int64  `json:"amount"`
			ClientKey string `json:"client_key"`
			Status    string `json:"status"`
		} `json:"attributes"`
	} `json:"data"`
}

func (g *PayMongoGateway) CreatePaymentIntent(ctx context.Context, req interfaces.PaymentIntentRequest) (interfaces.PaymentIntentResult, error) {
	if g != nil && g.mockMode {
		id := "pi_mock_" + strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		log.Printf("[payment][gateway] mock intent created intent_id=%s amount=%d", id, req.AmountCentavos)
		raw, _ := json.Marshal(map[string]any{
			"data": map[string]any{
				"id": id,
				"attributes": map[string]any{
					"amount":     req.AmountCentavos,
					"client_key": id + "_client",
					"status":     "awaiting_payment_method",
				},
			},
		})
		return interfaces.PaymentIntentResult{IntentID: id, ClientKey: id + "_client", RawResponse: raw}, nil
	}

	if g == nil || g.httpClient == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return interfaces.PaymentIntentResult{}, ErrPayMongoGatewayNotConfigured
	}
	log.Printf("[payment][gateway] create intent start amount=%d tier=%s", req.AmountCentavos, req.Tier)

	body, err := json.Marshal(map[string]any{
		"data": map[string]any{
			"attributes": map[string]any{
				"amount":                 req.AmountCentavos,
				"currency":               "PHP",
				"description":            req.Description,
				"payment_method_allowed": []string{"card", "gcash", "grab_pay", "paymaya"},
				"metadata": map[string]string{
					"userId": req.UserID,
					"tier":   req.Tier,
					"email":  req.Email,
				},
			},
		},
	})
	if err != nil {
		return interfaces.PaymentIntentResult{}, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/v1/payment_intents", bytes.NewReader(body))
	if err != nil {
		return interfaces.PaymentIntentResult{}, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte(g.secretKey+":")))

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		log.Printf("[payment][gateway] request failed err=%v", err)
		return interfaces.PaymentIntentResult{}, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return interfaces.PaymentIntentResult{}, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Printf("[payment][gateway] create intent rejected status=%d body=%s", resp.StatusCode, raw)
		return interfaces.PaymentIntentResult{}, fmt.Errorf("paymongo create intent failed: status=%d body=%s", resp.StatusCode, raw)
	}

	var envelope paymentIntentEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		log.Printf("[payment][gateway] response unmarshal failed err=%v", err)
		return interfaces.PaymentIntentResult{}, err
	}
	if envelope.Data.ID == "" {
		return interfaces.PaymentIntentResult{}, fmt.Errorf("paymongo response missing intent id: body=%s", raw)
	}
	log.Printf("[payment][gateway] create intent success intent_id=%s status=%s", envelope.Data.ID, envelope.Data.Attributes.Status)

	return interfaces.PaymentIntentResult{
		IntentID:    envelope.Data.ID,
		ClientKey:   envelope.Data.Attributes.ClientKey,
		RawResponse: raw,
	}, nil
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "PAYMONGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
