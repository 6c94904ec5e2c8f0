package implementation

import (
	"context"
	"errors"

	"talentflow-be/internal/entity"
	"talentflow-be/internal/mapper"
	"talentflow-be/internal/model"
	"talentflow-be/internal/repository/contract"
	"talentflow-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FreelancerRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.FreelancerMapper
}

func NewFreelancerRepository(db *gorm.DB) contract.FreelancerRepository {
	return &FreelancerRepositoryImpl{
		db:     db,
		mapper: mapper.NewFreelancerMapper(),
	}
}

func (r *FreelancerRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *FreelancerRepositoryImpl) Create(ctx context.Context, freelancer *entity.Freelancer) error {
	m := r.mapper.ToModel(freelancer)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*freelancer = *r.mapper.ToEntity(m)
	return nil
}

func (r *FreelancerRepositoryImpl) Update(ctx context.Context, freelancer *entity.Freelancer) error {
	m := r.mapper.ToModel(freelancer)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*freelancer = *r.mapper.ToEntity(m)
	return nil
}

func (r *FreelancerRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Freelancer{}).Error
}

func (r *FreelancerRepositoryImpl) DeleteUnscoped(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Unscoped().Where("id = ?", id).Delete(&model.Freelancer{}).Error
}

func (r *FreelancerRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Freelancer, error) {
	var m model.Freelancer
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&m), nil
}

func (r *FreelancerRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Freelancer, error) {
	var models []*model.Freelancer
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(models), nil
}

func (r *FreelancerRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Freelancer{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Restore reactivates a soft-deleted freelancer by clearing deleted_at
func (r *FreelancerRepositoryImpl) Restore(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Unscoped().Model(&model.Freelancer{}).
		Where("id = ?", id).
		Update("deleted_at", nil).Error
}

func (r *FreelancerRepositoryImpl) UpdateStage(ctx context.Context, id uuid.UUID, stage string) error {
	return r.db.WithContext(ctx).Model(&model.Freelancer{}).Where("id = ?", id).Update("status", stage).Error
}

func (r *FreelancerRepositoryImpl) UpdateReviewStatus(ctx context.Context, id uuid.UUID, reviewStatus string) error {
	return r.db.WithContext(ctx).Model(&model.Freelancer{}).Where("id = ?", id).Update("review_status", reviewStatus).Error
}

func (r *FreelancerRepositoryImpl) MarkNdaSigned(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Freelancer{}).Where("id = ?", id).Update("nda_signed", true).Error
}

func (r *FreelancerRepositoryImpl) MarkTested(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Freelancer{}).Where("id = ?", id).Update("tested", true).Error
}

func (r *FreelancerRepositoryImpl) CountByStage(ctx context.Context) (map[string]int64, error) {
	var rows []struct {
		Status string
		Count  int64
	}
	err := r.db.WithContext(ctx).Model(&model.Freelancer{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

func (r *FreelancerRepositoryImpl) SearchFreelancers(ctx context.Context, query string, limit, offset int) ([]*entity.Freelancer, error) {
	var models []*model.Freelancer
	q := r.applySpecifications(r.db.WithContext(ctx),
		specification.NameOrEmailLike{Query: query},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: offset},
	)

	if err := q.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
