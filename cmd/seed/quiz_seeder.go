package main

import (
	"talentflow-be/internal/model"

	"github.com/fatih/color"
	"gorm.io/gorm"
)

// SeedQuizzes creates the standard screening tests assigned during the
// Test Sent stage.
func SeedQuizzes(db *gorm.DB) {
	desc := func(s string) *string { return &s }
	limit := func(n int) *int { return &n }

	quizzes := []model.Quiz{
		{
			Title:       "General Translation Test",
			Description: desc("Short source text translated into the candidate's target language, graded by a senior linguist."),
			PassScore:   70,
			TimeLimit:   limit(60),
		},
		{
			Title:       "Legal Terminology Quiz",
			Description: desc("Contract and litigation terminology, multiple choice."),
			PassScore:   80,
			TimeLimit:   limit(30),
		},
		{
			Title:       "Subtitling Basics",
			Description: desc("Timing, reading speed, and segmentation conventions."),
			PassScore:   70,
			TimeLimit:   limit(45),
		},
	}

	for _, q := range quizzes {
		var count int64
		db.Model(&model.Quiz{}).Where("title = ?", q.Title).Count(&count)
		if count > 0 {
			color.Yellow("  quiz %q already exists", q.Title)
			continue
		}
		if err := db.Create(&q).Error; err != nil {
			color.Red("  quiz %q: %v", q.Title, err)
			continue
		}
		color.Green("  quiz %q", q.Title)
	}
}
