package interfaces

import (
	"context"
	"time"

	"gravitas_estimator/internal/domain/catalog"
	"gravitas_estimator/internal/domain/entities"
)

// IUserRepository abstracts DynamoDB persistence for User accounts, their
// subscription tier and the monthly estimate counter.

type IUserRepository interface {
	Create(ctx context.Context, u entities.User) (entities.User, error)
	GetByID(ctx context.Context, id string) (entities.User, error)
	UpdateTier(ctx context.Context, id string, tier catalog.Tier, status entities.TierStatus) (entities.User, error)
	IncrementEstimatesUsed(ctx context.Context, id string) (entities.User, error)
	ResetMonthlyUsage(ctx context.Context, id string, at time.Time) (entities.User, error)
}
