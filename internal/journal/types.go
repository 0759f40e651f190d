package journal

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const (
	EntitySession      = "session"
	EntityProject      = "project"
	EntityTask         = "task"
	EntityNotification = "notification"
)

// Entry is a single journaled mutation: who did what to which entity, with
// the entity snapshot at mutation time.
type Entry struct {
	ID       string          `json:"id"`
	ActorID  string          `json:"actor_id,omitempty"`
	Entity   string          `json:"entity"`
	Action   string          `json:"action"`
	Snapshot json.RawMessage `json:"snapshot,omitempty"`
	At       time.Time       `json:"at"`

	key []byte
}

func (e *Entry) normalize() {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.At.IsZero() {
		e.At = time.Now()
	}
}
