package contract

import (
	"context"

	"talentflow-be/internal/entity"
	"talentflow-be/internal/repository/specification"
)

type PayoutRepository interface {
	Create(ctx context.Context, payout *entity.Payout) error
	Update(ctx context.Context, payout *entity.Payout) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Payout, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Payout, error)
}
