package main

import (
	"talentflow-be/internal/model"

	"github.com/fatih/color"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SeedFreelancers creates a small roster spread across pipeline stages so
// the board and finder have data on a fresh install.
func SeedFreelancers(db *gorm.DB) {
	f := func(v float64) *float64 { return &v }

	freelancers := []model.Freelancer{
		{
			FullName:        "Marta Kowalska",
			Email:           "marta.kowalska@example.com",
			Status:          "Approved",
			LanguagePairs:   datatypes.JSON([]byte(`[{"source":"English","target":"Polish"}]`)),
			Specializations: datatypes.JSON([]byte(`["Legal","Finance"]`)),
			ServiceTypes:    datatypes.JSON([]byte(`["Translation","Revision"]`)),
			Skills:          datatypes.JSON([]byte(`["SDL Trados","memoQ"]`)),
			Rates:           datatypes.JSON([]byte(`{"translation":0.09,"revision":0.04}`)),
			ExperienceYears: f(8),
			ResourceRating:  f(92),
			Availability:    "Available",
			NdaSigned:       true,
			Tested:          true,
			Certified:       true,
		},
		{
			FullName:        "Diego Fernandez",
			Email:           "diego.fernandez@example.com",
			Status:          "Price Negotiation",
			LanguagePairs:   datatypes.JSON([]byte(`[{"source":"English","target":"Spanish"},{"source":"Portuguese","target":"Spanish"}]`)),
			Specializations: datatypes.JSON([]byte(`["Medical"]`)),
			ServiceTypes:    datatypes.JSON([]byte(`["Translation"]`)),
			Skills:          datatypes.JSON([]byte(`["memoQ"]`)),
			Rates:           datatypes.JSON([]byte(`{"translation":0.07}`)),
			ExperienceYears: f(4),
			ResourceRating:  f(78),
			Availability:    "Available",
			NdaSigned:       true,
		},
		{
			FullName:        "Yuki Tanaka",
			Email:           "yuki.tanaka@example.com",
			Status:          "Test Sent",
			LanguagePairs:   datatypes.JSON([]byte(`[{"source":"English","target":"Japanese"}]`)),
			Specializations: datatypes.JSON([]byte(`["Gaming","Marketing"]`)),
			ServiceTypes:    datatypes.JSON([]byte(`["Translation","Transcreation"]`)),
			Skills:          datatypes.JSON([]byte(`["Phrase","Subtitle Edit"]`)),
			Rates:           datatypes.JSON([]byte(`{"translation":0.11}`)),
			ExperienceYears: f(6),
			ResourceRating:  f(85),
			Availability:    "Part-time",
		},
		{
			FullName:        "Elena Petrova",
			Email:           "elena.petrova@example.com",
			Status:          "New Application",
			LanguagePairs:   datatypes.JSON([]byte(`[{"source":"German","target":"Russian"}]`)),
			Specializations: datatypes.JSON([]byte(`["Technical"]`)),
			ServiceTypes:    datatypes.JSON([]byte(`["Translation"]`)),
			Rates:           datatypes.JSON([]byte(`{"translation":0.06}`)),
			ExperienceYears: f(2),
			Availability:    "Available",
		},
	}

	for _, fl := range freelancers {
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoNothing: true,
		}).Create(&fl).Error
		if err != nil {
			color.Red("  freelancer %s: %v", fl.Email, err)
			continue
		}
		color.Green("  freelancer %s [%s]", fl.FullName, fl.Status)
	}
}
