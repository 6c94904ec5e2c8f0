package mapper

import (
	"talentflow-be/internal/entity"
	"talentflow-be/internal/model"
)

type QuizMapper struct{}

func NewQuizMapper() *QuizMapper {
	return &QuizMapper{}
}

func (m *QuizMapper) ToEntity(q *model.Quiz) *entity.Quiz {
	if q == nil {
		return nil
	}
	return &entity.Quiz{
		Id:          q.Id,
		Title:       q.Title,
		Description: q.Description,
		PassScore:   q.PassScore,
		TimeLimit:   q.TimeLimit,
		CreatedAt:   q.CreatedAt,
		UpdatedAt:   q.UpdatedAt,
	}
}

func (m *QuizMapper) ToModel(q *entity.Quiz) *model.Quiz {
	if q == nil {
		return nil
	}
	return &model.Quiz{
		Id:          q.Id,
		Title:       q.Title,
		Description: q.Description,
		PassScore:   q.PassScore,
		TimeLimit:   q.TimeLimit,
		CreatedAt:   q.CreatedAt,
		UpdatedAt:   q.UpdatedAt,
	}
}

func (m *QuizMapper) ToEntities(models []*model.Quiz) []*entity.Quiz {
	entities := make([]*entity.Quiz, len(models))
	for i, q := range models {
		entities[i] = m.ToEntity(q)
	}
	return entities
}

func (m *QuizMapper) AttemptToEntity(a *model.QuizAttempt) *entity.QuizAttempt {
	if a == nil {
		return nil
	}
	return &entity.QuizAttempt{
		Id:           a.Id,
		QuizId:       a.QuizId,
		FreelancerId: a.FreelancerId,
		Score:        a.Score,
		Passed:       a.Passed,
		TakenAt:      a.TakenAt,
		GradedAt:     a.GradedAt,
	}
}

func (m *QuizMapper) AttemptToModel(a *entity.QuizAttempt) *model.QuizAttempt {
	if a == nil {
		return nil
	}
	return &model.QuizAttempt{
		Id:           a.Id,
		QuizId:       a.QuizId,
		FreelancerId: a.FreelancerId,
		Score:        a.Score,
		Passed:       a.Passed,
		TakenAt:      a.TakenAt,
		GradedAt:     a.GradedAt,
	}
}

func (m *QuizMapper) AttemptsToEntities(models []*model.QuizAttempt) []*entity.QuizAttempt {
	entities := make([]*entity.QuizAttempt, len(models))
	for i, a := range models {
		entities[i] = m.AttemptToEntity(a)
	}
	return entities
}
