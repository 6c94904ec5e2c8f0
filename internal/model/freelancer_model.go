package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Freelancer struct {
	Id              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FullName        string    `gorm:"type:varchar(255);not null"`
	Email           string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Phone           *string   `gorm:"type:varchar(50)"`
	Status          string    `gorm:"type:varchar(50);not null;default:'New Application';index"`
	ReviewStatus    *string   `gorm:"type:varchar(50)"`
	LanguagePairs   datatypes.JSON
	Specializations datatypes.JSON
	ServiceTypes    datatypes.JSON
	Skills          datatypes.JSON
	Software        datatypes.JSON
	Rates           datatypes.JSON
	ExperienceYears *float64 `gorm:"type:numeric"`
	ResourceRating  *float64 `gorm:"type:numeric"`
	Availability    string   `gorm:"type:varchar(50)"`
	NdaSigned       bool     `gorm:"default:false"`
	Tested          bool     `gorm:"default:false"`
	Certified       bool     `gorm:"default:false"`
	Notes           *string  `gorm:"type:text"`
	CreatedAt       time.Time      `gorm:"autoCreateTime"`
	UpdatedAt       *time.Time     `gorm:"autoUpdateTime"`
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}

func (Freelancer) TableName() string {
	return "freelancers"
}
