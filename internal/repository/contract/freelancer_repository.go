package contract

import (
	"context"

	"talentflow-be/internal/entity"
	"talentflow-be/internal/repository/specification"

	"github.com/google/uuid"
)

type FreelancerRepository interface {
	Create(ctx context.Context, freelancer *entity.Freelancer) error
	Update(ctx context.Context, freelancer *entity.Freelancer) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteUnscoped(ctx context.Context, id uuid.UUID) error // Hard delete
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Freelancer, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Freelancer, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	Restore(ctx context.Context, id uuid.UUID) error

	// Business Specific
	UpdateStage(ctx context.Context, id uuid.UUID, stage string) error
	UpdateReviewStatus(ctx context.Context, id uuid.UUID, reviewStatus string) error
	MarkNdaSigned(ctx context.Context, id uuid.UUID) error
	MarkTested(ctx context.Context, id uuid.UUID) error

	// Queries/Stats
	CountByStage(ctx context.Context) (map[string]int64, error)
	SearchFreelancers(ctx context.Context, query string, limit, offset int) ([]*entity.Freelancer, error)
}
