package main

import (
	"talentflow-be/internal/model"

	"github.com/fatih/color"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SeedUsers creates the default operator accounts. Passwords are for local
// development only.
func SeedUsers(db *gorm.DB) {
	users := []struct {
		Email    string
		FullName string
		Role     string
		Password string
	}{
		{"admin@talentflow.local", "Agency Admin", "admin", "admin12345"},
		{"manager@talentflow.local", "Vendor Manager", "manager", "manager12345"},
		{"recruiter@talentflow.local", "Talent Recruiter", "recruiter", "recruiter12345"},
	}

	for _, u := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			color.Red("  user %s: %v", u.Email, err)
			continue
		}
		hashStr := string(hash)

		row := model.User{
			Email:        u.Email,
			FullName:     u.FullName,
			Role:         u.Role,
			Status:       "active",
			PasswordHash: &hashStr,
		}
		err = db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoNothing: true,
		}).Create(&row).Error
		if err != nil {
			color.Red("  user %s: %v", u.Email, err)
			continue
		}
		color.Green("  user %s (%s)", u.Email, u.Role)
	}
}
