// Package events defines roster change payloads published for downstream
// consumers and the publisher implementations that carry them.
package events

import (
	"time"

	"github.com/google/uuid"
)

// Action labels the roster mutation that produced an event.
type Action string

const (
	ActionSignup Action = "signup"
	ActionRemove Action = "remove"
)

// RosterChanged is emitted after a participant is added to or removed from
// an activity roster. Participants carries the roster size after the change.
type RosterChanged struct {
	EventID      string    `json:"event_id"`
	Activity     string    `json:"activity"`
	Email        string    `json:"email"`
	Action       Action    `json:"action"`
	Participants int       `json:"participants"`
	OccurredAt   time.Time `json:"occurred_at"`
}

// NewRosterChanged builds a RosterChanged with a fresh event ID and
// timestamp.
func NewRosterChanged(activity, email string, action Action, participants int) RosterChanged {
	return RosterChanged{
		EventID:      uuid.NewString(),
		Activity:     activity,
		Email:        email,
		Action:       action,
		Participants: participants,
		OccurredAt:   time.Now().UTC(),
	}
}
