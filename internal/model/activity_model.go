package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Activity struct {
	Id           uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FreelancerId uuid.UUID  `gorm:"type:uuid;not null;index"`
	ActorId      *uuid.UUID `gorm:"type:uuid;index"`
	Type         string     `gorm:"type:varchar(50);not null;index"`
	Description  string     `gorm:"type:text;not null"`
	Details      datatypes.JSON
	CreatedAt    time.Time `gorm:"autoCreateTime;index"`
}

func (Activity) TableName() string {
	return "activities"
}
