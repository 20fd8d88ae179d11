package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"

	request "gravitas_estimator/internal/adapter/http/dto/request"
	response "gravitas_estimator/internal/adapter/http/dto/response"
	"gravitas_estimator/internal/infrastructure/payments"
	"gravitas_estimator/internal/usecase"
	"gravitas_estimator/pkg"

	"github.com/gin-gonic/gin"
)

const payMongoSignatureHeader = "Paymongo-Signature"

// SubscriptionHandler handles paid-plan checkouts and the provider's payment
// webhooks.

type SubscriptionHandler struct {
	usecase usecase.ISubscriptionUseCase
}

func NewSubscriptionHandler(uc usecase.ISubscriptionUseCase) *SubscriptionHandler {
	return &SubscriptionHandler{usecase: uc}
}

// CreateCheckout opens a payment intent for a paid tier and returns the
// client key the frontend needs to collect the payment.
func (h *SubscriptionHandler) CreateCheckout(c *gin.Context) {
	var payload request.CheckoutRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_CHECKOUT_INPUT", "Invalid checkout payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	subscription, clientKey, err := h.usecase.CreateCheckout(c.Request.Context(), payload.ResolveUserID(), payload.Email, payload.ResolveTier())
	if err != nil {
		log.Printf("[subscription][handler] checkout failed user_id=%s err=%v", payload.ResolveUserID(), err)
		appErr := mapSubscriptionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromCheckout(subscription, clientKey))
}

// HandleWebhook receives PayMongo events. The signature is verified against
// the raw body before any parsing; events other than payment.paid are
// acknowledged and dropped.
func (h *SubscriptionHandler) HandleWebhook(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_WEBHOOK", "Invalid webhook body", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	secret := os.Getenv("PAYMONGO_WEBHOOK_SECRET")
	if err := payments.VerifyWebhookSignature(raw, c.GetHeader(payMongoSignatureHeader), secret); err != nil {
		log.Printf("[subscription][handler] webhook signature rejected err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_SIGNATURE", "Webhook signature verification failed", http.StatusUnauthorized)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var event request.PayMongoWebhookEvent
	if err := json.Unmarshal(raw, &event); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_WEBHOOK", "Invalid webhook payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if event.EventType() != "payment.paid" {
		log.Printf("[subscription][handler] ignoring webhook event type=%s", event.EventType())
		c.JSON(http.StatusOK, gin.H{"received": true})
		return
	}

	subscription, err := h.usecase.HandlePaymentPaid(c.Request.Context(), event.PaymentIntentID())
	if err != nil {
		log.Printf("[subscription][handler] payment.paid failed intent_id=%s err=%v", event.PaymentIntentID(), err)
		appErr := mapSubscriptionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[subscription][handler] payment.paid processed subscription_id=%s tier=%s", subscription.ID, subscription.Tier)

	c.JSON(http.StatusOK, response.FromSubscription(subscription))
}

func mapSubscriptionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUserID),
		errors.Is(err, usecase.ErrInvalidCheckoutTier),
		errors.Is(err, usecase.ErrInvalidPaymentIntent),
		errors.Is(err, usecase.ErrInvalidSubscriptionID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSubscriptionNotFound):
		return pkg.NewDomainErrorSimple("SUBSCRIPTION_NOT_FOUND", "Subscription not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
