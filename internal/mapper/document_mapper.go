package mapper

import (
	"talentflow-be/internal/entity"
	"talentflow-be/internal/model"
)

type DocumentMapper struct{}

func NewDocumentMapper() *DocumentMapper {
	return &DocumentMapper{}
}

func (m *DocumentMapper) ToEntity(d *model.SignableDocument) *entity.SignableDocument {
	if d == nil {
		return nil
	}
	return &entity.SignableDocument{
		Id:           d.Id,
		FreelancerId: d.FreelancerId,
		Title:        d.Title,
		Kind:         entity.DocumentKind(d.Kind),
		Status:       entity.DocumentStatus(d.Status),
		FileURL:      d.FileURL,
		SentAt:       d.SentAt,
		ViewedAt:     d.ViewedAt,
		SignedAt:     d.SignedAt,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

func (m *DocumentMapper) ToModel(d *entity.SignableDocument) *model.SignableDocument {
	if d == nil {
		return nil
	}
	return &model.SignableDocument{
		Id:           d.Id,
		FreelancerId: d.FreelancerId,
		Title:        d.Title,
		Kind:         string(d.Kind),
		Status:       string(d.Status),
		FileURL:      d.FileURL,
		SentAt:       d.SentAt,
		ViewedAt:     d.ViewedAt,
		SignedAt:     d.SignedAt,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

func (m *DocumentMapper) ToEntities(models []*model.SignableDocument) []*entity.SignableDocument {
	entities := make([]*entity.SignableDocument, len(models))
	for i, d := range models {
		entities[i] = m.ToEntity(d)
	}
	return entities
}
