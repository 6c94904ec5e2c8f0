package model

import (
	"time"

	"github.com/google/uuid"
)

type Payout struct {
	Id                    uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FreelancerId          uuid.UUID `gorm:"type:uuid;not null;index"`
	Amount                float64   `gorm:"type:numeric;not null"`
	Currency              string    `gorm:"type:varchar(10);not null;default:'USD'"`
	Description           string    `gorm:"type:text"`
	Status                string    `gorm:"type:varchar(50);not null;default:'pending';index"`
	MidtransTransactionId *string   `gorm:"type:varchar(255)"`
	PaymentURL            *string   `gorm:"type:text"`
	CreatedAt             time.Time `gorm:"autoCreateTime"`
	UpdatedAt             time.Time `gorm:"autoUpdateTime"`
	PaidAt                *time.Time
}

func (Payout) TableName() string {
	return "payouts"
}
