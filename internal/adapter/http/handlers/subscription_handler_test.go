package handlers

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gravitas_estimator/internal/adapter/http/handlers/mocks"
	"gravitas_estimator/internal/domain/catalog"
	"gravitas_estimator/internal/domain/entities"
	"gravitas_estimator/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestSubscriptionHandler_CreateCheckout(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISubscriptionUseCase(ctrl)
		h := NewSubscriptionHandler(uc)

		r := gin.New()
		r.POST("/v1/subscriptions/checkout", h.CreateCheckout)

		req := httptest.NewRequest(http.MethodPost, "/v1/subscriptions/checkout", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid tier", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISubscriptionUseCase(ctrl)
		h := NewSubscriptionHandler(uc)

		r := gin.New()
		r.POST("/v1/subscriptions/checkout", h.CreateCheckout)

		uc.EXPECT().CreateCheckout(gomock.Any(), "user-1", "juan@example.com", catalog.Tier("free")).Return(entities.Subscription{}, "", usecase.ErrInvalidCheckoutTier)

		body := `{"user_id":"user-1","email":"juan@example.com","tier":"free"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/subscriptions/checkout", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("tier is normalized before the usecase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISubscriptionUseCase(ctrl)
		h := NewSubscriptionHandler(uc)

		r := gin.New()
		r.POST("/v1/subscriptions/checkout", h.CreateCheckout)

		uc.EXPECT().CreateCheckout(gomock.Any(), "user-1", "juan@example.com", catalog.TierPremium).Return(entities.Subscription{
			ID:              "sub-1",
			UserID:          "user-1",
			Tier:            catalog.TierPremium,
			PaymentIntentID: "pi_123",
			AmountCentavos:  149900,
			Status:          entities.SubscriptionStatusPending,
			CreatedAt:       time.Now().UTC(),
		}, "pi_123_client", nil)

		body := `{"user_id":"user-1","email":"juan@example.com","tier":" Premium "}`
		req := httptest.NewRequest(http.MethodPost, "/v1/subscriptions/checkout", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}

		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["client_key"] != "pi_123_client" {
			t.Fatalf("unexpected client key: %v", resp["client_key"])
		}
		if resp["status"] != "pending" {
			t.Fatalf("unexpected status: %v", resp["status"])
		}
	})

	t.Run("gateway failure maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISubscriptionUseCase(ctrl)
		h := NewSubscriptionHandler(uc)

		r := gin.New()
		r.POST("/v1/subscriptions/checkout", h.CreateCheckout)

		uc.EXPECT().CreateCheckout(gomock.Any(), "user-1", "", catalog.TierStandard).Return(entities.Subscription{}, "", errors.New("paymongo unreachable"))

		body := `{"user_id":"user-1","tier":"standard"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/subscriptions/checkout", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func webhookBody(eventType, intentID string) string {
	return fmt.Sprintf(`{"data":{"attributes":{"type":%q,"data":{"id":%q}}}}`, eventType, intentID)
}

func signWebhook(secret, payload string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	ts := "1724900000"
	mac.Write([]byte(ts + "." + payload))
	return fmt.Sprintf("t=%s,te=%s,li=", ts, hex.EncodeToString(mac.Sum(nil)))
}

func TestSubscriptionHandler_HandleWebhook(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("bad signature", func(t *testing.T) {
		t.Setenv("PAYMONGO_WEBHOOK_SECRET", "whsk_test")

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISubscriptionUseCase(ctrl)
		h := NewSubscriptionHandler(uc)

		r := gin.New()
		r.POST("/v1/subscriptions/webhook", h.HandleWebhook)

		body := webhookBody("payment.paid", "pi_123")
		req := httptest.NewRequest(http.MethodPost, "/v1/subscriptions/webhook", bytes.NewBufferString(body))
		req.Header.Set(payMongoSignatureHeader, "t=1,te=deadbeef,li=")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("non payment.paid events are acknowledged", func(t *testing.T) {
		t.Setenv("PAYMONGO_WEBHOOK_SECRET", "whsk_test")

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISubscriptionUseCase(ctrl)
		h := NewSubscriptionHandler(uc)

		r := gin.New()
		r.POST("/v1/subscriptions/webhook", h.HandleWebhook)

		body := webhookBody("payment.failed", "pi_123")
		req := httptest.NewRequest(http.MethodPost, "/v1/subscriptions/webhook", bytes.NewBufferString(body))
		req.Header.Set(payMongoSignatureHeader, signWebhook("whsk_test", body))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["received"] != true {
			t.Fatalf("expected acknowledgement, got %v", resp)
		}
	})

	t.Run("payment.paid activates the subscription", func(t *testing.T) {
		t.Setenv("PAYMONGO_WEBHOOK_SECRET", "whsk_test")

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISubscriptionUseCase(ctrl)
		h := NewSubscriptionHandler(uc)

		r := gin.New()
		r.POST("/v1/subscriptions/webhook", h.HandleWebhook)

		now := time.Now().UTC()
		uc.EXPECT().HandlePaymentPaid(gomock.Any(), "pi_123").Return(entities.Subscription{
			ID:              "sub-1",
			UserID:          "user-1",
			Tier:            catalog.TierStandard,
			PaymentIntentID: "pi_123",
			AmountCentavos:  49900,
			Status:          entities.SubscriptionStatusActive,
			CreatedAt:       now,
			PaidAt:          now,
		}, nil)

		body := webhookBody("payment.paid", "pi_123")
		req := httptest.NewRequest(http.MethodPost, "/v1/subscriptions/webhook", bytes.NewBufferString(body))
		req.Header.Set(payMongoSignatureHeader, signWebhook("whsk_test", body))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["status"] != "active" {
			t.Fatalf("unexpected status: %v", resp["status"])
		}
	})

	t.Run("unknown intent maps to 404", func(t *testing.T) {
		t.Setenv("PAYMONGO_WEBHOOK_SECRET", "")

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISubscriptionUseCase(ctrl)
		h := NewSubscriptionHandler(uc)

		r := gin.New()
		r.POST("/v1/subscriptions/webhook", h.HandleWebhook)

		uc.EXPECT().HandlePaymentPaid(gomock.Any(), "pi_404").Return(entities.Subscription{}, usecase.ErrSubscriptionNotFound)

		body := webhookBody("payment.paid", "pi_404")
		req := httptest.NewRequest(http.MethodPost, "/v1/subscriptions/webhook", bytes.NewBufferString(body))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
