package dto

import (
	"time"

	"github.com/google/uuid"

	"talentflow-be/pkg/matching"
)

type LanguagePairDTO struct {
	Source      string    `json:"source" validate:"required"`
	Target      string    `json:"target" validate:"required"`
	Proficiency *string   `json:"proficiency,omitempty"`
	Rates       []RateDTO `json:"rates,omitempty"`
}

type RateDTO struct {
	RateType       string  `json:"rate_type" validate:"required"`
	RateValue      float64 `json:"rate_value" validate:"gte=0"`
	Currency       string  `json:"currency" validate:"required"`
	Specialization *string `json:"specialization,omitempty"`
	Tool           *string `json:"tool,omitempty"`
}

type CreateFreelancerRequest struct {
	FullName        string            `json:"full_name" validate:"required,min=2"`
	Email           string            `json:"email" validate:"required,email"`
	Phone           *string           `json:"phone,omitempty"`
	LanguagePairs   []LanguagePairDTO `json:"language_pairs" validate:"dive"`
	Specializations []string          `json:"specializations,omitempty"`
	ServiceTypes    []string          `json:"service_types,omitempty"`
	Skills          []string          `json:"skills,omitempty"`
	Software        []string          `json:"software,omitempty"`
	Rates           []RateDTO         `json:"rates,omitempty" validate:"dive"`
	ExperienceYears *float64          `json:"experience_years,omitempty" validate:"omitempty,gte=0"`
	ResourceRating  *float64          `json:"resource_rating,omitempty" validate:"omitempty,gte=0,lte=100"`
	Availability    string            `json:"availability,omitempty"`
	Notes           *string           `json:"notes,omitempty"`
}

type UpdateFreelancerRequest struct {
	Id              uuid.UUID
	FullName        string            `json:"full_name" validate:"required,min=2"`
	Email           string            `json:"email" validate:"required,email"`
	Phone           *string           `json:"phone,omitempty"`
	LanguagePairs   []LanguagePairDTO `json:"language_pairs" validate:"dive"`
	Specializations []string          `json:"specializations,omitempty"`
	ServiceTypes    []string          `json:"service_types,omitempty"`
	Skills          []string          `json:"skills,omitempty"`
	Software        []string          `json:"software,omitempty"`
	Rates           []RateDTO         `json:"rates,omitempty" validate:"dive"`
	ExperienceYears *float64          `json:"experience_years,omitempty" validate:"omitempty,gte=0"`
	ResourceRating  *float64          `json:"resource_rating,omitempty" validate:"omitempty,gte=0,lte=100"`
	Availability    string            `json:"availability,omitempty"`
	NdaSigned       bool              `json:"nda_signed"`
	Tested          bool              `json:"tested"`
	Certified       bool              `json:"certified"`
	Notes           *string           `json:"notes,omitempty"`
}

type FreelancerResponse struct {
	Id              uuid.UUID         `json:"id"`
	FullName        string            `json:"full_name"`
	Email           string            `json:"email"`
	Phone           *string           `json:"phone,omitempty"`
	Status          string            `json:"status"`
	ReviewStatus    *string           `json:"review_status,omitempty"`
	LanguagePairs   []LanguagePairDTO `json:"language_pairs"`
	DisplayPairs    []string          `json:"display_pairs"` // normalized "Source → Target" labels
	Specializations []string          `json:"specializations"`
	ServiceTypes    []string          `json:"service_types"`
	Skills          []string          `json:"skills"`
	Software        []string          `json:"software"`
	Rates           []RateDTO         `json:"rates"`
	ExperienceYears *float64          `json:"experience_years,omitempty"`
	ResourceRating  *float64          `json:"resource_rating,omitempty"`
	Availability    string            `json:"availability"`
	NdaSigned       bool              `json:"nda_signed"`
	Tested          bool              `json:"tested"`
	Certified       bool              `json:"certified"`
	Notes           *string           `json:"notes,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       *time.Time        `json:"updated_at,omitempty"`
}

// RosterFilterRequest mirrors matching.Criteria field for field so the
// frontend can POST its filter state unchanged.
type RosterFilterRequest struct {
	Search          string   `json:"search"`
	Status          string   `json:"status"`
	QuizPassed      string   `json:"quiz_passed" validate:"omitempty,oneof=all passed failed not_taken"`
	MinQuizScore    *float64 `json:"min_quiz_score,omitempty" validate:"omitempty,gte=0,lte=100"`
	LanguagePairs   []string `json:"language_pairs,omitempty"`
	Specializations []string `json:"specializations,omitempty"`
	ServiceTypes    []string `json:"service_types,omitempty"`
	Skills          []string `json:"skills,omitempty"`
	MinExperience   *float64 `json:"min_experience,omitempty" validate:"omitempty,gte=0"`
	MaxExperience   *float64 `json:"max_experience,omitempty" validate:"omitempty,gte=0"`
	Availability    string   `json:"availability"`
	MaxRate         *float64 `json:"max_rate,omitempty" validate:"omitempty,gte=0"`
	NdaSigned       bool     `json:"nda_signed"`
	Tested          bool     `json:"tested"`
	Certified       bool     `json:"certified"`
	MinRating       *float64 `json:"min_rating,omitempty" validate:"omitempty,gte=0,lte=100"`
}

func (r RosterFilterRequest) ToCriteria() matching.Criteria {
	c := matching.Criteria{
		Search:          r.Search,
		Status:          r.Status,
		QuizPassed:      r.QuizPassed,
		MinQuizScore:    r.MinQuizScore,
		LanguagePairs:   r.LanguagePairs,
		Specializations: r.Specializations,
		ServiceTypes:    r.ServiceTypes,
		Skills:          r.Skills,
		MinExperience:   r.MinExperience,
		MaxExperience:   r.MaxExperience,
		Availability:    r.Availability,
		MaxRate:         r.MaxRate,
		NdaSigned:       r.NdaSigned,
		Tested:          r.Tested,
		Certified:       r.Certified,
		MinRating:       r.MinRating,
	}
	if c.Status == "" {
		c.Status = matching.FilterAll
	}
	if c.QuizPassed == "" {
		c.QuizPassed = matching.QuizFilterAll
	}
	if c.Availability == "" {
		c.Availability = matching.FilterAll
	}
	return c
}

type RosterResponse struct {
	Freelancers []FreelancerResponse `json:"freelancers"`
	Total       int                  `json:"total"` // roster size before filtering
	Matched     int                  `json:"matched"`
}

type MoveStageRequest struct {
	Id    uuid.UUID
	Stage string `json:"stage" validate:"required"`
}

type MoveStageResponse struct {
	Id    uuid.UUID `json:"id"`
	Stage string    `json:"stage"`
}

type UpdateReviewStatusRequest struct {
	Id           uuid.UUID
	ReviewStatus string `json:"review_status" validate:"required"`
}

type FacetsResponse struct {
	LanguagePairs   []string `json:"language_pairs"`
	Specializations []string `json:"specializations"`
	ServiceTypes    []string `json:"service_types"`
	Skills          []string `json:"skills"`
}

type PipelineStatsResponse struct {
	Counts map[string]int64 `json:"counts"` // stage label -> freelancer count
	Total  int64            `json:"total"`
}

type AddNoteRequest struct {
	Id   uuid.UUID
	Note string `json:"note" validate:"required"`
}

type ActivityResponse struct {
	Id           uuid.UUID              `json:"id"`
	FreelancerId uuid.UUID              `json:"freelancer_id"`
	ActorId      *uuid.UUID             `json:"actor_id,omitempty"`
	Type         string                 `json:"type"`
	Description  string                 `json:"description"`
	Details      map[string]interface{} `json:"details,omitempty"`
	CreatedAt    time.Time              `json:"created_at"`
}
