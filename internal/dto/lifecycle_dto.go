package dto

import (
	"talentflow-be/internal/entity"

	"github.com/google/uuid"
)

// LifecycleMessage is the payload published on the freelancer.lifecycle
// topic whenever a freelancer's record changes in a way other subsystems
// care about.
type LifecycleMessage struct {
	EventType    entity.ActivityType    `json:"event_type"`
	FreelancerId uuid.UUID              `json:"freelancer_id"`
	ActorId      *uuid.UUID             `json:"actor_id,omitempty"`
	Description  string                 `json:"description"`
	Details      map[string]interface{} `json:"details,omitempty"`
	NotifyEmail  bool                   `json:"notify_email"`
}
