package contract

import (
	"context"

	"talentflow-be/internal/entity"
	"talentflow-be/internal/repository/specification"
)

type DocumentRepository interface {
	Create(ctx context.Context, document *entity.SignableDocument) error
	Update(ctx context.Context, document *entity.SignableDocument) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.SignableDocument, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SignableDocument, error)
}
