package mapper

import (
	"encoding/json"

	"talentflow-be/internal/entity"
	"talentflow-be/internal/model"

	"gorm.io/datatypes"
)

type FreelancerMapper struct{}

func NewFreelancerMapper() *FreelancerMapper {
	return &FreelancerMapper{}
}

func (m *FreelancerMapper) ToEntity(f *model.Freelancer) *entity.Freelancer {
	if f == nil {
		return nil
	}
	var reviewStatus *entity.ReviewStatus
	if f.ReviewStatus != nil {
		rs := entity.ReviewStatus(*f.ReviewStatus)
		reviewStatus = &rs
	}
	return &entity.Freelancer{
		Id:              f.Id,
		FullName:        f.FullName,
		Email:           f.Email,
		Phone:           f.Phone,
		Status:          entity.PipelineStage(f.Status),
		ReviewStatus:    reviewStatus,
		LanguagePairs:   decodeJSON[[]entity.LanguagePair](f.LanguagePairs),
		Specializations: decodeJSON[[]string](f.Specializations),
		ServiceTypes:    decodeJSON[[]string](f.ServiceTypes),
		Skills:          decodeJSON[[]string](f.Skills),
		Software:        decodeJSON[[]string](f.Software),
		Rates:           decodeJSON[[]entity.Rate](f.Rates),
		ExperienceYears: f.ExperienceYears,
		ResourceRating:  f.ResourceRating,
		Availability:    entity.Availability(f.Availability),
		NdaSigned:       f.NdaSigned,
		Tested:          f.Tested,
		Certified:       f.Certified,
		Notes:           f.Notes,
		CreatedAt:       f.CreatedAt,
		UpdatedAt:       f.UpdatedAt,
	}
}

func (m *FreelancerMapper) ToModel(f *entity.Freelancer) *model.Freelancer {
	if f == nil {
		return nil
	}
	var reviewStatus *string
	if f.ReviewStatus != nil {
		rs := string(*f.ReviewStatus)
		reviewStatus = &rs
	}
	return &model.Freelancer{
		Id:              f.Id,
		FullName:        f.FullName,
		Email:           f.Email,
		Phone:           f.Phone,
		Status:          string(f.Status),
		ReviewStatus:    reviewStatus,
		LanguagePairs:   encodeJSON(f.LanguagePairs),
		Specializations: encodeJSON(f.Specializations),
		ServiceTypes:    encodeJSON(f.ServiceTypes),
		Skills:          encodeJSON(f.Skills),
		Software:        encodeJSON(f.Software),
		Rates:           encodeJSON(f.Rates),
		ExperienceYears: f.ExperienceYears,
		ResourceRating:  f.ResourceRating,
		Availability:    string(f.Availability),
		NdaSigned:       f.NdaSigned,
		Tested:          f.Tested,
		Certified:       f.Certified,
		Notes:           f.Notes,
		CreatedAt:       f.CreatedAt,
		UpdatedAt:       f.UpdatedAt,
	}
}

func (m *FreelancerMapper) ToEntities(models []*model.Freelancer) []*entity.Freelancer {
	entities := make([]*entity.Freelancer, len(models))
	for i, f := range models {
		entities[i] = m.ToEntity(f)
	}
	return entities
}

// decodeJSON tolerates null and malformed columns by returning the zero
// value; a bad row must not break a roster scan.
func decodeJSON[T any](data datatypes.JSON) T {
	var out T
	if len(data) == 0 {
		return out
	}
	_ = json.Unmarshal(data, &out)
	return out
}

func encodeJSON[T any](v T) datatypes.JSON {
	data, err := json.Marshal(v)
	if err != nil {
		return datatypes.JSON("null")
	}
	return datatypes.JSON(data)
}
