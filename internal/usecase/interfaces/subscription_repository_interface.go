package interfaces

import (
	"context"
	"time"

	"gravitas_estimator/internal/domain/entities"
)

// ISubscriptionRepository abstracts DynamoDB persistence for Subscription
// purchases. Lookups by payment intent id reconcile provider webhooks with
// the pending checkout they belong to.

type ISubscriptionRepository interface {
	Create(ctx context.Context, s entities.Subscription) (entities.Subscription, error)
	GetByID(ctx context.Context, id string) (entities.Subscription, error)
	GetByPaymentIntentID(ctx context.Context, paymentIntentID string) (entities.Subscription, error)
	MarkPaid(ctx context.Context, id string, paidAt time.Time) (entities.Subscription, error)
}
