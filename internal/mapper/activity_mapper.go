package mapper

import (
	"talentflow-be/internal/entity"
	"talentflow-be/internal/model"
)

type ActivityMapper struct{}

func NewActivityMapper() *ActivityMapper {
	return &ActivityMapper{}
}

func (m *ActivityMapper) ToEntity(a *model.Activity) *entity.Activity {
	if a == nil {
		return nil
	}
	return &entity.Activity{
		Id:           a.Id,
		FreelancerId: a.FreelancerId,
		ActorId:      a.ActorId,
		Type:         entity.ActivityType(a.Type),
		Description:  a.Description,
		Details:      decodeJSON[map[string]interface{}](a.Details),
		CreatedAt:    a.CreatedAt,
	}
}

func (m *ActivityMapper) ToModel(a *entity.Activity) *model.Activity {
	if a == nil {
		return nil
	}
	return &model.Activity{
		Id:           a.Id,
		FreelancerId: a.FreelancerId,
		ActorId:      a.ActorId,
		Type:         string(a.Type),
		Description:  a.Description,
		Details:      encodeJSON(a.Details),
		CreatedAt:    a.CreatedAt,
	}
}

func (m *ActivityMapper) ToEntities(models []*model.Activity) []*entity.Activity {
	entities := make([]*entity.Activity, len(models))
	for i, a := range models {
		entities[i] = m.ToEntity(a)
	}
	return entities
}
