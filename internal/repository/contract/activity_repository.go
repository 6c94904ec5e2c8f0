package contract

import (
	"context"

	"talentflow-be/internal/entity"
	"talentflow-be/internal/repository/specification"
)

type ActivityRepository interface {
	Create(ctx context.Context, activity *entity.Activity) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Activity, error)
}
