package entity

import (
	"time"

	"github.com/google/uuid"
)

type DocumentKind string
type DocumentStatus string

const (
	DocumentKindNDA      DocumentKind = "nda"
	DocumentKindContract DocumentKind = "contract"
	DocumentKindOther    DocumentKind = "other"

	DocumentStatusSent     DocumentStatus = "sent"
	DocumentStatusViewed   DocumentStatus = "viewed"
	DocumentStatusSigned   DocumentStatus = "signed"
	DocumentStatusDeclined DocumentStatus = "declined"
)

// SignableDocument tracks an e-signature request sent to a freelancer.
type SignableDocument struct {
	Id           uuid.UUID
	FreelancerId uuid.UUID
	Title        string
	Kind         DocumentKind
	Status       DocumentStatus
	FileURL      *string
	SentAt       time.Time
	ViewedAt     *time.Time
	SignedAt     *time.Time
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}
