package model

import (
	"time"

	"github.com/google/uuid"
)

type Quiz struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Description *string   `gorm:"type:text"`
	PassScore   float64   `gorm:"type:numeric;not null;default:70"`
	TimeLimit   *int
	CreatedAt   time.Time  `gorm:"autoCreateTime"`
	UpdatedAt   *time.Time `gorm:"autoUpdateTime"`
}

func (Quiz) TableName() string {
	return "quizzes"
}

type QuizAttempt struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	QuizId       uuid.UUID `gorm:"type:uuid;not null;index"`
	FreelancerId uuid.UUID `gorm:"type:uuid;not null;index"`
	Score        float64   `gorm:"type:numeric;not null;default:0"`
	Passed       *bool
	TakenAt      time.Time `gorm:"autoCreateTime"`
	GradedAt     *time.Time
}

func (QuizAttempt) TableName() string {
	return "quiz_attempts"
}
