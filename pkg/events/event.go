package events

import (
	"time"

	"github.com/google/uuid"
)

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "STAGE_MOVED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is the generic implementation used by the consumer when
// reconstructing events off the wire.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// Lifecycle event codes for the freelancer pipeline.
const (
	EventStageMoved     = "STAGE_MOVED"
	EventQuizAssigned   = "QUIZ_ASSIGNED"
	EventQuizGraded     = "QUIZ_GRADED"
	EventDocumentSent   = "DOCUMENT_SENT"
	EventDocumentSigned = "DOCUMENT_SIGNED"
	EventPayoutCreated  = "PAYOUT_CREATED"
	EventNoteAdded      = "NOTE_ADDED"
)

// NewLifecycleEvent builds the canonical event for a freelancer pipeline
// change. Extra fields are merged into the payload.
func NewLifecycleEvent(eventType string, freelancerId uuid.UUID, actorId *uuid.UUID, description string, extra map[string]interface{}) BaseEvent {
	data := map[string]interface{}{
		"freelancer_id": freelancerId.String(),
		"description":   description,
	}
	if actorId != nil {
		data["actor_id"] = actorId.String()
	}
	for k, v := range extra {
		data[k] = v
	}
	return BaseEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now(),
	}
}
