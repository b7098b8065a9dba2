package service

import (
	"context"

	"refboard/internal/domain/entity"
)

// PlanCache is a read-through cache for the plan catalog. The catalog changes
// rarely but is read on every dashboard load, so a short TTL cache in front of
// the database is enough.
type PlanCache interface {
	// GetPlans returns the cached catalog, or (nil, nil) on a miss.
	GetPlans(ctx context.Context) ([]*entity.Plan, error)

	// SetPlans stores the catalog until the configured TTL elapses.
	SetPlans(ctx context.Context, plans []*entity.Plan) error
}
