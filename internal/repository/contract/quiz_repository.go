package contract

import (
	"context"

	"talentflow-be/internal/entity"
	"talentflow-be/internal/repository/specification"

	"github.com/google/uuid"
)

type QuizRepository interface {
	Create(ctx context.Context, quiz *entity.Quiz) error
	Update(ctx context.Context, quiz *entity.Quiz) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Quiz, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Quiz, error)

	// Attempts
	CreateAttempt(ctx context.Context, attempt *entity.QuizAttempt) error
	FindAttempt(ctx context.Context, specs ...specification.Specification) (*entity.QuizAttempt, error)
	FindAttempts(ctx context.Context, specs ...specification.Specification) ([]*entity.QuizAttempt, error)
	GradeAttempt(ctx context.Context, id uuid.UUID, score float64, passed bool) error
}
