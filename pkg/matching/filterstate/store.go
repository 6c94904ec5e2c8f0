// Package filterstate persists an operator's roster filter criteria. Only
// non-default fields are stored; loading merges the stored subset back onto
// defaults and never fails the caller on corrupt data.
package filterstate

import (
	"context"
	"encoding/json"

	"talentflow-be/pkg/matching"

	"github.com/google/uuid"
)

// KeyPrefix namespaces stored filter entries per operator.
const KeyPrefix = "freelancer_filters:"

// Store persists one criteria object per operator.
type Store interface {
	// Save stores the non-default subset of c; an all-default c clears the
	// entry entirely rather than storing an empty object.
	Save(ctx context.Context, ownerId uuid.UUID, c matching.Criteria) error

	// Load returns the stored subset merged onto defaults. Missing or
	// corrupt entries yield DefaultCriteria, not an error.
	Load(ctx context.Context, ownerId uuid.UUID) (matching.Criteria, error)

	Clear(ctx context.Context, ownerId uuid.UUID) error
}

// Encode serializes the non-default subset of c. The second return is false
// when every field is default (nothing to store).
func Encode(c matching.Criteria) ([]byte, bool) {
	if c.IsDefault() {
		return nil, false
	}
	// Sentinel values marshal away via omitempty once blanked.
	if c.Status == matching.FilterAll {
		c.Status = ""
	}
	if c.QuizPassed == matching.QuizFilterAll {
		c.QuizPassed = ""
	}
	if c.Availability == matching.FilterAll {
		c.Availability = ""
	}
	data, err := json.Marshal(c)
	if err != nil || string(data) == "{}" {
		return nil, false
	}
	return data, true
}

// Decode merges a stored subset onto defaults: stored values win on key
// collision, missing keys keep their default. Corrupt payloads return
// defaults with ok=false.
func Decode(data []byte) (matching.Criteria, bool) {
	c := matching.DefaultCriteria()
	if len(data) == 0 {
		return c, false
	}
	// Unmarshal over a blank value first so stored empties do not mask the
	// sentinel restoration below.
	var stored matching.Criteria
	if err := json.Unmarshal(data, &stored); err != nil {
		return matching.DefaultCriteria(), false
	}
	c = stored
	if c.Status == "" {
		c.Status = matching.FilterAll
	}
	if c.QuizPassed == "" {
		c.QuizPassed = matching.QuizFilterAll
	}
	if c.Availability == "" {
		c.Availability = matching.FilterAll
	}
	return c, true
}
