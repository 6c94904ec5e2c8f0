package model

import (
	"time"

	"github.com/google/uuid"
)

type SignableDocument struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FreelancerId uuid.UUID `gorm:"type:uuid;not null;index"`
	Title        string    `gorm:"type:varchar(255);not null"`
	Kind         string    `gorm:"type:varchar(50);not null"`
	Status       string    `gorm:"type:varchar(50);not null;default:'sent'"`
	FileURL      *string   `gorm:"type:text"`
	SentAt       time.Time `gorm:"not null"`
	ViewedAt     *time.Time
	SignedAt     *time.Time
	CreatedAt    time.Time  `gorm:"autoCreateTime"`
	UpdatedAt    *time.Time `gorm:"autoUpdateTime"`
}

func (SignableDocument) TableName() string {
	return "signable_documents"
}
