package dto

import (
	"time"

	"github.com/google/uuid"
)

type SendDocumentRequest struct {
	FreelancerId uuid.UUID `json:"freelancer_id" validate:"required"`
	Title        string    `json:"title" validate:"required"`
	Kind         string    `json:"kind" validate:"required,oneof=nda contract other"`
	FileURL      *string   `json:"file_url,omitempty" validate:"omitempty,url"`
}

type DocumentResponse struct {
	Id           uuid.UUID  `json:"id"`
	FreelancerId uuid.UUID  `json:"freelancer_id"`
	Title        string     `json:"title"`
	Kind         string     `json:"kind"`
	Status       string     `json:"status"`
	FileURL      *string    `json:"file_url,omitempty"`
	SentAt       time.Time  `json:"sent_at"`
	ViewedAt     *time.Time `json:"viewed_at,omitempty"`
	SignedAt     *time.Time `json:"signed_at,omitempty"`
}

type UpdateDocumentStatusRequest struct {
	Id     uuid.UUID
	Status string `json:"status" validate:"required,oneof=sent viewed signed declined"`
}
