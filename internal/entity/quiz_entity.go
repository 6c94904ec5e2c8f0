package entity

import (
	"time"

	"github.com/google/uuid"
)

type Quiz struct {
	Id          uuid.UUID
	Title       string
	Description *string
	PassScore   float64 // minimum percentage to pass, 0-100
	TimeLimit   *int    // minutes, nil = untimed
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

// QuizAttempt is one freelancer sitting of a quiz. Passed is a tri-state:
// nil means the attempt exists but has not been graded yet. An ungraded
// attempt still counts as "taken" for the not_taken filter.
type QuizAttempt struct {
	Id           uuid.UUID
	QuizId       uuid.UUID
	FreelancerId uuid.UUID
	Score        float64 // percentage, 0-100
	Passed       *bool
	TakenAt      time.Time
	GradedAt     *time.Time
}
