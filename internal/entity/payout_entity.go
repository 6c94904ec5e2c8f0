package entity

import (
	"time"

	"github.com/google/uuid"
)

type PayoutStatus string

const (
	PayoutStatusPending PayoutStatus = "pending"
	PayoutStatusPaid    PayoutStatus = "paid"
	PayoutStatusFailed  PayoutStatus = "failed"
	PayoutStatusExpired PayoutStatus = "expired"
)

// Payout is a marketplace payment issued to an approved freelancer.
type Payout struct {
	Id                    uuid.UUID
	FreelancerId          uuid.UUID
	Amount                float64
	Currency              string
	Description           string
	Status                PayoutStatus
	MidtransTransactionId *string
	PaymentURL            *string
	CreatedAt             time.Time
	UpdatedAt             time.Time
	PaidAt                *time.Time
}
