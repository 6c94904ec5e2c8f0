package entity

import (
	"time"

	"github.com/google/uuid"
)

type ActivityType string

const (
	ActivityStageMoved     ActivityType = "STAGE_MOVED"
	ActivityQuizAssigned   ActivityType = "QUIZ_ASSIGNED"
	ActivityQuizGraded     ActivityType = "QUIZ_GRADED"
	ActivityDocumentSent   ActivityType = "DOCUMENT_SENT"
	ActivityDocumentSigned ActivityType = "DOCUMENT_SIGNED"
	ActivityPayoutCreated  ActivityType = "PAYOUT_CREATED"
	ActivityNoteAdded      ActivityType = "NOTE_ADDED"
)

// Activity is one audit-trail row on a freelancer's timeline. Rows are
// written by the lifecycle consumer, never edited.
type Activity struct {
	Id           uuid.UUID
	FreelancerId uuid.UUID
	ActorId      *uuid.UUID // operator who triggered it, nil for system
	Type         ActivityType
	Description  string
	Details      map[string]interface{}
	CreatedAt    time.Time
}
