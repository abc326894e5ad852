// Package catalog defines the business logic for the extracurricular
// activities service.
package catalog

import (
	"context"
	"errors"
)

var (
	// ErrActivityNotFound is returned when the named activity is not in the catalog.
	ErrActivityNotFound = errors.New("activity not found")
	// ErrAlreadySignedUp is returned when the email is already on the activity roster.
	ErrAlreadySignedUp = errors.New("student already signed up")
	// ErrParticipantNotFound is returned when the email is not on the activity roster.
	ErrParticipantNotFound = errors.New("participant not found")
)

// Activity is the catalog record for one extracurricular activity. The
// participant slice keeps signup order; no email appears twice within it.
type Activity struct {
	Name            string
	Description     string
	Schedule        string
	MaxParticipants int
	Participants    []string
}

// Store captures catalog operations. Implementations own the no-duplicate
// invariant: AddParticipant and RemoveParticipant must check and mutate
// atomically.
type Store interface {
	List(ctx context.Context) (map[string]Activity, error)
	Get(ctx context.Context, name string) (*Activity, error)
	AddParticipant(ctx context.Context, name, email string) (*Activity, error)
	RemoveParticipant(ctx context.Context, name, email string) (*Activity, error)
}
