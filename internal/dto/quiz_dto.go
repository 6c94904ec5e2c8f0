package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateQuizRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description *string `json:"description,omitempty"`
	PassScore   float64 `json:"pass_score" validate:"gte=0,lte=100"`
	TimeLimit   *int    `json:"time_limit,omitempty" validate:"omitempty,gt=0"`
}

type QuizResponse struct {
	Id          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	PassScore   float64   `json:"pass_score"`
	TimeLimit   *int      `json:"time_limit,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type UpdateQuizRequest struct {
	Id          uuid.UUID
	Title       string  `json:"title" validate:"required"`
	Description *string `json:"description,omitempty"`
	PassScore   float64 `json:"pass_score" validate:"gte=0,lte=100"`
	TimeLimit   *int    `json:"time_limit,omitempty" validate:"omitempty,gt=0"`
}

type AssignQuizRequest struct {
	QuizId       uuid.UUID `json:"quiz_id" validate:"required"`
	FreelancerId uuid.UUID `json:"freelancer_id" validate:"required"`
}

type GradeAttemptRequest struct {
	AttemptId uuid.UUID
	Score     float64 `json:"score" validate:"gte=0,lte=100"`
}

// QuizStatsResponse aggregates a freelancer's graded attempts. Averages and
// bests ignore ungraded attempts; Attempts counts every sitting.
type QuizStatsResponse struct {
	FreelancerId uuid.UUID `json:"freelancer_id"`
	Attempts     int       `json:"attempts"`
	Graded       int       `json:"graded"`
	AverageScore float64   `json:"average_score"`
	BestScore    float64   `json:"best_score"`
	AnyPassed    bool      `json:"any_passed"`
}

type QuizAttemptResponse struct {
	Id           uuid.UUID  `json:"id"`
	QuizId       uuid.UUID  `json:"quiz_id"`
	FreelancerId uuid.UUID  `json:"freelancer_id"`
	Score        float64    `json:"score"`
	Passed       *bool      `json:"passed"` // null until graded
	TakenAt      time.Time  `json:"taken_at"`
	GradedAt     *time.Time `json:"graded_at,omitempty"`
}
