package repository

import (
	"context"

	"refboard/internal/domain/entity"
)

// PlanRepository defines read access to the subscription plan catalog.
type PlanRepository interface {
	// ListActivePlans retrieves the active plans ordered by price ascending,
	// used to populate the plan filter option set.
	ListActivePlans(ctx context.Context) ([]*entity.Plan, error)
}
