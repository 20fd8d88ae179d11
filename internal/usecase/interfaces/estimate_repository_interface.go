package interfaces

import (
	"context"

	"gravitas_estimator/internal/domain/entities"
)

// IEstimateRepository abstracts DynamoDB persistence for Estimate.
//
// The estimator must be able to:
//   - save a calculated estimate under its owner
//   - fetch a single estimate and list everything a user saved
//   - delete a saved estimate

type IEstimateRepository interface {
	Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
	GetByID(ctx context.Context, id string) (entities.Estimate, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Estimate, error)
	DeleteByID(ctx context.Context, id string) error
}
