package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreatePayoutRequest struct {
	FreelancerId uuid.UUID `json:"freelancer_id" validate:"required"`
	Amount       float64   `json:"amount" validate:"required,gt=0"`
	Currency     string    `json:"currency" validate:"omitempty,len=3"`
	Description  string    `json:"description" validate:"required"`
}

type PayoutResponse struct {
	Id           uuid.UUID  `json:"id"`
	FreelancerId uuid.UUID  `json:"freelancer_id"`
	Amount       float64    `json:"amount"`
	Currency     string     `json:"currency"`
	Description  string     `json:"description"`
	Status       string     `json:"status"`
	PaymentURL   *string    `json:"payment_url,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	PaidAt       *time.Time `json:"paid_at,omitempty"`
}

// PayoutNotificationRequest is the payment gateway webhook payload subset
// we act on.
type PayoutNotificationRequest struct {
	OrderId           string `json:"order_id"`
	TransactionStatus string `json:"transaction_status"`
	FraudStatus       string `json:"fraud_status"`
	StatusCode        string `json:"status_code"`
	GrossAmount       string `json:"gross_amount"`
	SignatureKey      string `json:"signature_key"`
	TransactionId     string `json:"transaction_id"`
}
