package dto

import "github.com/google/uuid"

// FindMatchesRequest is a project brief: the facets a job needs, expressed
// with the same filter vocabulary as the roster view.
type FindMatchesRequest struct {
	LanguagePairs   []string `json:"language_pairs,omitempty"`
	Specializations []string `json:"specializations,omitempty"`
	ServiceTypes    []string `json:"service_types,omitempty"`
	Skills          []string `json:"skills,omitempty"`
	MinExperience   *float64 `json:"min_experience,omitempty" validate:"omitempty,gte=0"`
	MaxRate         *float64 `json:"max_rate,omitempty" validate:"omitempty,gte=0"`
	MinRating       *float64 `json:"min_rating,omitempty" validate:"omitempty,gte=0,lte=100"`
	NdaSigned       bool     `json:"nda_signed"`
	Certified       bool     `json:"certified"`
}

type MatchResponse struct {
	Freelancer FreelancerResponse `json:"freelancer"`
	Score      float64            `json:"score"`
}

type FindMatchesResponse struct {
	Matches []MatchResponse `json:"matches"`
}

type SaveFiltersRequest struct {
	OwnerId uuid.UUID
	Filters RosterFilterRequest `json:"filters"`
}

type SavedFiltersResponse struct {
	Filters RosterFilterRequest `json:"filters"`
}
