package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"gravitas_estimator/internal/domain/catalog"
	"gravitas_estimator/internal/domain/entities"
	"gravitas_estimator/internal/usecase/interfaces"
	mock_interfaces "gravitas_estimator/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestSubscriptionUseCase_CreateCheckout(t *testing.T) {
	t.Run("invalid user id", func(t *testing.T) {
		uc := NewSubscriptionUseCase(nil, nil, nil)
		_, _, err := uc.CreateCheckout(context.Background(), "  ", "a@b.ph", catalog.TierStandard)
		if !errors.Is(err, ErrInvalidUserID) {
			t.Fatalf("expected ErrInvalidUserID, got %v", err)
		}
	})

	t.Run("free tier is not purchasable", func(t *testing.T) {
		uc := NewSubscriptionUseCase(nil, nil, nil)
		_, _, err := uc.CreateCheckout(context.Background(), "u-1", "a@b.ph", catalog.TierFree)
		if !errors.Is(err, ErrInvalidCheckoutTier) {
			t.Fatalf("expected ErrInvalidCheckoutTier, got %v", err)
		}
	})

	t.Run("unknown tier", func(t *testing.T) {
		uc := NewSubscriptionUseCase(nil, nil, nil)
		_, _, err := uc.CreateCheckout(context.Background(), "u-1", "a@b.ph", "platinum")
		if !errors.Is(err, ErrInvalidCheckoutTier) {
			t.Fatalf("expected ErrInvalidCheckoutTier, got %v", err)
		}
	})

	t.Run("gateway error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewSubscriptionUseCase(nil, nil, gateway)

		gateway.EXPECT().CreatePaymentIntent(gomock.Any(), gomock.Any()).Return(interfaces.PaymentIntentResult{}, errors.New("provider down"))

		_, _, err := uc.CreateCheckout(context.Background(), "u-1", "a@b.ph", catalog.TierStandard)
		if err == nil || err.Error() != "provider down" {
			t.Fatalf("expected provider error, got %v", err)
		}
	})

	t.Run("checkout success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISubscriptionRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewSubscriptionUseCase(repo, nil, gateway)

		gateway.EXPECT().CreatePaymentIntent(gomock.Any(), gomock.AssignableToTypeOf(interfaces.PaymentIntentRequest{})).DoAndReturn(
			func(_ context.Context, req interfaces.PaymentIntentRequest) (interfaces.PaymentIntentResult, error) {
				if req.AmountCentavos != 149900 {
					t.Fatalf("expected premium amount 149900, got %d", req.AmountCentavos)
				}
				if req.UserID != "u-1" || req.Tier != "premium" || req.Email != "a@b.ph" {
					t.Fatalf("unexpected request: %+v", req)
				}
				return interfaces.PaymentIntentResult{IntentID: "pi_123", ClientKey: "pi_123_client"}, nil
			},
		)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Subscription{})).DoAndReturn(
			func(_ context.Context, s entities.Subscription) (entities.Subscription, error) {
				if s.ID == "" || s.UserID != "u-1" || s.Tier != catalog.TierPremium {
					t.Fatalf("unexpected subscription: %+v", s)
				}
				if s.PaymentIntentID != "pi_123" || s.Status != entities.SubscriptionStatusPending {
					t.Fatalf("unexpected subscription: %+v", s)
				}
				return s, nil
			},
		)

		sub, clientKey, err := uc.CreateCheckout(context.Background(), " u-1 ", " a@b.ph ", catalog.TierPremium)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if clientKey != "pi_123_client" {
			t.Fatalf("expected client key, got %q", clientKey)
		}
		if sub.AmountCentavos != 149900 {
			t.Fatalf("unexpected amount: %d", sub.AmountCentavos)
		}
	})
}

func TestSubscriptionUseCase_HandlePaymentPaid(t *testing.T) {
	t.Run("invalid intent id", func(t *testing.T) {
		uc := NewSubscriptionUseCase(nil, nil, nil)
		_, err := uc.HandlePaymentPaid(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidPaymentIntent) {
			t.Fatalf("expected ErrInvalidPaymentIntent, got %v", err)
		}
	})

	t.Run("unknown intent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISubscriptionRepository(ctrl)
		uc := NewSubscriptionUseCase(repo, nil, nil)
		repo.EXPECT().GetByPaymentIntentID(gomock.Any(), "pi_123").Return(entities.Subscription{}, nil)

		_, err := uc.HandlePaymentPaid(context.Background(), "pi_123")
		if !errors.Is(err, ErrSubscriptionNotFound) {
			t.Fatalf("expected ErrSubscriptionNotFound, got %v", err)
		}
	})

	t.Run("webhook retry is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISubscriptionRepository(ctrl)
		uc := NewSubscriptionUseCase(repo, nil, nil)
		active := entities.Subscription{ID: "s-1", UserID: "u-1", Status: entities.SubscriptionStatusActive}
		repo.EXPECT().GetByPaymentIntentID(gomock.Any(), "pi_123").Return(active, nil)

		res, err := uc.HandlePaymentPaid(context.Background(), "pi_123")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != "s-1" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("activates and upgrades tier", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISubscriptionRepository(ctrl)
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewSubscriptionUseCase(repo, users, nil)

		pending := entities.Subscription{ID: "s-1", UserID: "u-1", Tier: catalog.TierStandard, Status: entities.SubscriptionStatusPending}
		repo.EXPECT().GetByPaymentIntentID(gomock.Any(), "pi_123").Return(pending, nil)
		repo.EXPECT().MarkPaid(gomock.Any(), "s-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, id string, paidAt time.Time) (entities.Subscription, error) {
				paid := pending
				paid.Status = entities.SubscriptionStatusActive
				paid.PaidAt = paidAt
				return paid, nil
			},
		)
		users.EXPECT().UpdateTier(gomock.Any(), "u-1", catalog.TierStandard, entities.TierStatusActive).Return(entities.User{ID: "u-1", Tier: catalog.TierStandard}, nil)

		res, err := uc.HandlePaymentPaid(context.Background(), " pi_123 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.SubscriptionStatusActive {
			t.Fatalf("expected active subscription, got %s", res.Status)
		}
	})

	t.Run("tier upgrade failure surfaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISubscriptionRepository(ctrl)
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewSubscriptionUseCase(repo, users, nil)

		pending := entities.Subscription{ID: "s-1", UserID: "u-1", Tier: catalog.TierStandard, Status: entities.SubscriptionStatusPending}
		repo.EXPECT().GetByPaymentIntentID(gomock.Any(), "pi_123").Return(pending, nil)
		repo.EXPECT().MarkPaid(gomock.Any(), "s-1", gomock.Any()).Return(pending, nil)
		users.EXPECT().UpdateTier(gomock.Any(), "u-1", catalog.TierStandard, entities.TierStatusActive).Return(entities.User{}, errors.New("db"))

		_, err := uc.HandlePaymentPaid(context.Background(), "pi_123")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestSubscriptionUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewSubscriptionUseCase(nil, nil, nil)
		_, err := uc.GetByID(context.Background(), "")
		if !errors.Is(err, ErrInvalidSubscriptionID) {
			t.Fatalf("expected ErrInvalidSubscriptionID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISubscriptionRepository(ctrl)
		uc := NewSubscriptionUseCase(repo, nil, nil)
		repo.EXPECT().GetByID(gomock.Any(), "s-1").Return(entities.Subscription{}, nil)

		_, err := uc.GetByID(context.Background(), "s-1")
		if !errors.Is(err, ErrSubscriptionNotFound) {
			t.Fatalf("expected ErrSubscriptionNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISubscriptionRepository(ctrl)
		uc := NewSubscriptionUseCase(repo, nil, nil)
		repo.EXPECT().GetByID(gomock.Any(), "s-1").Return(entities.Subscription{ID: "s-1"}, nil)

		res, err := uc.GetByID(context.Background(), " s-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != "s-1" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}
