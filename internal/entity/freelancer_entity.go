package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// PipelineStage is the hiring-pipeline status of a freelancer.
// Transitions are freeform (any stage to any stage); the kanban board is a
// UI affordance over this single field, not a guarded state machine.
type PipelineStage string

const (
	StageNewApplication   PipelineStage = "New Application"
	StageFormSent         PipelineStage = "Form Sent"
	StagePriceNegotiation PipelineStage = "Price Negotiation"
	StageTestSent         PipelineStage = "Test Sent"
	StageApproved         PipelineStage = "Approved"
	StageOnHold           PipelineStage = "On Hold"
	StageRejected         PipelineStage = "Rejected"
	StageRedFlag          PipelineStage = "Red Flag"
)

// PipelineStages returns every stage in board-column order.
func PipelineStages() []PipelineStage {
	return []PipelineStage{
		StageNewApplication,
		StageFormSent,
		StagePriceNegotiation,
		StageTestSent,
		StageApproved,
		StageOnHold,
		StageRejected,
		StageRedFlag,
	}
}

// ParsePipelineStage converts a raw string to a PipelineStage, returning an
// error for unknown values.
func ParsePipelineStage(s string) (PipelineStage, error) {
	st := PipelineStage(s)
	switch st {
	case StageNewApplication, StageFormSent, StagePriceNegotiation, StageTestSent,
		StageApproved, StageOnHold, StageRejected, StageRedFlag:
		return st, nil
	}
	return "", fmt.Errorf("unknown pipeline stage %q", s)
}

// ReviewStatus is the status set used by the intake/onboarding review list.
// It is deliberately a separate enumeration from PipelineStage; the two sets
// are NOT interchangeable and must never be coerced into one another.
type ReviewStatus string

const (
	ReviewStatusNew                ReviewStatus = "New"
	ReviewStatusReviewing          ReviewStatus = "Reviewing"
	ReviewStatusInterviewScheduled ReviewStatus = "Interview Scheduled"
	ReviewStatusAccepted           ReviewStatus = "Accepted"
	ReviewStatusRejected           ReviewStatus = "Rejected"
	ReviewStatusOnHold             ReviewStatus = "On Hold"
)

type ServiceType string

const (
	ServiceTranslation    ServiceType = "Translation"
	ServiceInterpretation ServiceType = "Interpretation"
	ServiceProofreading   ServiceType = "Proofreading"
	ServiceLocalization   ServiceType = "Localization"
	ServiceTranscription  ServiceType = "Transcription"
	ServiceSubtitling     ServiceType = "Subtitling"
)

type Availability string

const (
	AvailabilityImmediate    Availability = "Immediate"
	AvailabilityWithin1Week  Availability = "Within 1 week"
	AvailabilityWithin2Weeks Availability = "Within 2 weeks"
	AvailabilityWithin1Month Availability = "Within 1 month"
	AvailabilityNotAvailable Availability = "Not available"
)

// Rate is a per-unit price quote. Specialization and Tool narrow the quote
// to a subject area or CAT tool when set.
type Rate struct {
	RateType       string  `json:"rate_type"` // per_word | per_hour | per_minute | per_page
	RateValue      float64 `json:"rate_value"`
	Currency       string  `json:"currency"`
	Specialization *string `json:"specialization,omitempty"`
	Tool           *string `json:"tool,omitempty"`
}

// LanguagePair is a working direction. Source/Target may arrive as ISO
// codes, regional codes, or language names; the matching engine normalizes
// them at comparison time and they are stored as entered.
type LanguagePair struct {
	Source      string  `json:"source"`
	Target      string  `json:"target"`
	Proficiency *string `json:"proficiency,omitempty"`
	Rates       []Rate  `json:"rates,omitempty"`
}

// Freelancer is a vendor roster record. Language pairs and rates are
// denormalized snapshots attached directly to the record; the matching
// engine reads them and never mutates them.
type Freelancer struct {
	Id              uuid.UUID
	FullName        string
	Email           string
	Phone           *string
	Status          PipelineStage
	ReviewStatus    *ReviewStatus // intake-list status, distinct from Status
	LanguagePairs   []LanguagePair
	Specializations []string
	ServiceTypes    []string
	Skills          []string
	Software        []string
	ExperienceYears *float64
	ResourceRating  *float64 // 0-100
	Availability    Availability
	Rates           []Rate
	NdaSigned       bool
	Tested          bool
	Certified       bool
	Notes           *string
	CreatedAt       time.Time
	UpdatedAt       *time.Time
}
