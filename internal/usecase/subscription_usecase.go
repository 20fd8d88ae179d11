package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"gravitas_estimator/internal/domain/catalog"
	"gravitas_estimator/internal/domain/entities"
	"gravitas_estimator/internal/usecase/interfaces"
)

var (
	ErrSubscriptionNotFound  = errors.New("subscription not found")
	ErrInvalidSubscriptionID = errors.New("invalid subscription id")
	ErrInvalidCheckoutTier   = errors.New("invalid checkout tier")
	ErrInvalidPaymentIntent  = errors.New("invalid payment intent id")
)

// ISubscriptionUseCase encapsulates the paid-plan lifecycle:
//   - CreateCheckout opens a payment intent with the provider and records a
//     pending subscription
//   - HandlePaymentPaid reconciles the provider's paid webhook, activates
//     the subscription and upgrades the user's tier

type ISubscriptionUseCase interface {
	CreateCheckout(ctx context.Context, userID, email string, tier catalog.Tier) (entities.Subscription, string, error)
	HandlePaymentPaid(ctx context.Context, paymentIntentID string) (entities.Subscription, error)
	GetByID(ctx context.Context, id string) (entities.Subscription, error)
}

type SubscriptionUseCase struct {
	repo     interfaces.ISubscriptionRepository
	userRepo interfaces.IUserRepository
	gateway  interfaces.IPaymentGateway
}

var _ ISubscriptionUseCase = (*SubscriptionUseCase)(nil)

func NewSubscriptionUseCase(repo interfaces.ISubscriptionRepository, userRepo interfaces.IUserRepository, gateway interfaces.IPaymentGateway) *SubscriptionUseCase {
	return &SubscriptionUseCase{repo: repo, userRepo: userRepo, gateway: gateway}
}

func (u *SubscriptionUseCase) CreateCheckout(ctx context.Context, userID, email string, tier catalog.Tier) (entities.Subscription, string, error) {
	log.Printf("[subscription][usecase] checkout start user_id=%q tier=%s", userID, tier)
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Subscription{}, "", ErrInvalidUserID
	}
	plan, ok := entities.SubscriptionPlans[tier]
	if !ok || tier == catalog.TierFree {
		log.Printf("[subscription][usecase] rejected checkout tier user_id=%s tier=%q", userID, tier)
		return entities.Subscription{}, "", ErrInvalidCheckoutTier
	}
	if u.gateway == nil {
		return entities.Subscription{}, "", errors.New("payment gateway not configured")
	}

	intent, err := u.gateway.CreatePaymentIntent(ctx, interfaces.PaymentIntentRequest{
		AmountCentavos: plan.AmountCentavos,
		Description:    fmt.Sprintf("Gravitas %s Plan", plan.Name),
		UserID:         userID,
		Tier:           string(tier),
		Email:          strings.TrimSpace(email),
	})
	if err != nil {
		log.Printf("[subscription][usecase] payment gateway failed user_id=%s tier=%s err=%v", userID, tier, err)
		return entities.Subscription{}, "", err
	}
	log.Printf("[subscription][usecase] payment intent created user_id=%s tier=%s intent_id=%s", userID, tier, intent.IntentID)

	now := time.Now().UTC()
	s := entities.Subscription{
		ID:              uuid.NewString(),
		UserID:          userID,
		Tier:            tier,
		PaymentIntentID: intent.IntentID,
		AmountCentavos:  plan.AmountCentavos,
		Status:          entities.SubscriptionStatusPending,
		CreatedAt:       now,
	}
	created, err := u.repo.Create(ctx, s)
	if err != nil {
		log.Printf("[subscription][usecase] subscription create failed user_id=%s intent_id=%s err=%v", userID, intent.IntentID, err)
		return entities.Subscription{}, "", err
	}
	log.Printf("[subscription][usecase] checkout success user_id=%s subscription_id=%s", userID, created.ID)
	return created, intent.ClientKey, nil
}

func (u *SubscriptionUseCase) HandlePaymentPaid(ctx context.Context, paymentIntentID string) (entities.Subscription, error) {
	paymentIntentID = strings.TrimSpace(paymentIntentID)
	if paymentIntentID == "" {
		return entities.Subscription{}, ErrInvalidPaymentIntent
	}
	log.Printf("[subscription][usecase] payment paid intent_id=%s", paymentIntentID)

	s, err := u.repo.GetByPaymentIntentID(ctx, paymentIntentID)
	if err != nil {
		return entities.Subscription{}, err
	}
	if s.ID == "" {
		log.Printf("[subscription][usecase] no subscription for intent intent_id=%s", paymentIntentID)
		return entities.Subscription{}, ErrSubscriptionNotFound
	}
	if s.Status == entities.SubscriptionStatusActive {
		// Providers retry webhooks; a second paid event is a no-op.
		log.Printf("[subscription][usecase] subscription already active subscription_id=%s", s.ID)
		return s, nil
	}

	paid, err := u.repo.MarkPaid(ctx, s.ID, time.Now().UTC())
	if err != nil {
		return entities.Subscription{}, err
	}
	if _, err := u.userRepo.UpdateTier(ctx, s.UserID, s.Tier, entities.TierStatusActive); err != nil {
		log.Printf("[subscription][usecase] tier upgrade failed user_id=%s subscription_id=%s err=%v", s.UserID, s.ID, err)
		return entities.Subscription{}, err
	}
	log.Printf("[subscription][usecase] subscription activated user_id=%s subscription_id=%s tier=%s", s.UserID, s.ID, s.Tier)
	return paid, nil
}

func (u *SubscriptionUseCase) GetByID(ctx context.Context, id string) (entities.Subscription, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Subscription{}, ErrInvalidSubscriptionID
	}

	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Subscription{}, err
	}
	if s.ID == "" {
		return entities.Subscription{}, ErrSubscriptionNotFound
	}
	return s, nil
}
