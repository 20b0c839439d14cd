package domain

import (
	"encoding/json"
	"time"
)

// Deliverable is one opaque record in the generic document store, keyed by
// (scope, phase, doc type). The engine reads and writes whole payloads; it
// never patches a stored document in place.
type Deliverable struct {
	ID        string
	SubjectID string
	ClientID  string
	Phase     int
	DocType   string
	Payload   json.RawMessage
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DocTypeAssessment is the phase-0 deliverable holding the scored
// assessment and its generated actions.
const DocTypeAssessment = "assessment"
