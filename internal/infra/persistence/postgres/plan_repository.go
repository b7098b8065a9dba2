package postgres

import (
	"context"

	"refboard/internal/domain/entity"
	"refboard/internal/domain/repository"
	"refboard/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// planRepository implements the repository.PlanRepository interface.
type planRepository struct {
	db *gorm.DB
}

// NewPlanRepository is the constructor for planRepository.
func NewPlanRepository(db *gorm.DB) repository.PlanRepository {
	return &planRepository{
		db: db,
	}
}

// ListActivePlans retrieves the active plans ordered by price ascending.
func (repo *planRepository) ListActivePlans(ctx context.Context) ([]*entity.Plan, error) {
	var planModels []*model.PlanModel

	if err := repo.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("price ASC").
		Find(&planModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list active plans")
	}

	plans := make([]*entity.Plan, 0, len(planModels))
	for _, planM := range planModels {
		plans = append(plans, toPlanDomain(planM))
	}

	return plans, nil
}

// toPlanDomain converts a GORM PlanModel to a domain Plan entity.
func toPlanDomain(data *model.PlanModel) *entity.Plan {
	if data == nil {
		return nil
	}

	return &entity.Plan{
		ID:    data.ID,
		Name:  data.Name,
		Price: data.Price,
	}
}
