package implementation

import (
	"context"
	"errors"

	"talentflow-be/internal/entity"
	"talentflow-be/internal/mapper"
	"talentflow-be/internal/model"
	"talentflow-be/internal/repository/contract"
	"talentflow-be/internal/repository/specification"

	"gorm.io/gorm"
)

type PayoutRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PayoutMapper
}

func NewPayoutRepository(db *gorm.DB) contract.PayoutRepository {
	return &PayoutRepositoryImpl{
		db:     db,
		mapper: mapper.NewPayoutMapper(),
	}
}

func (r *PayoutRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *PayoutRepositoryImpl) Create(ctx context.Context, payout *entity.Payout) error {
	m := r.mapper.ToModel(payout)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*payout = *r.mapper.ToEntity(m)
	return nil
}

func (r *PayoutRepositoryImpl) Update(ctx context.Context, payout *entity.Payout) error {
	m := r.mapper.ToModel(payout)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*payout = *r.mapper.ToEntity(m)
	return nil
}

func (r *PayoutRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Payout, error) {
	var m model.Payout
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&m), nil
}

func (r *PayoutRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Payout, error) {
	var models []*model.Payout
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(models), nil
}
