// Package store provides the in-memory activity catalog.
package store

import (
	"context"
	"sync"

	"example.com/extracurricular/internal/catalog"
)

// MemoryStore keeps the catalog in process memory. Activities are seeded
// once at construction and never created or deleted afterwards; only the
// participant slices mutate. All methods copy on the way out so callers can
// never reach the live slices.
type MemoryStore struct {
	mu         sync.RWMutex
	activities map[string]*catalog.Activity
}

// NewMemoryStore constructs a store populated with the school's fixed
// activity catalog.
func NewMemoryStore() *MemoryStore {
	s := &MemoryStore{activities: make(map[string]*catalog.Activity)}
	s.seed()
	return s
}

func (s *MemoryStore) seed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, activity := range seedCatalog() {
		record := activity
		s.activities[record.Name] = &record
	}
}

// List returns a snapshot of every activity keyed by name.
func (s *MemoryStore) List(ctx context.Context) (map[string]catalog.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]catalog.Activity, len(s.activities))
	for name, record := range s.activities {
		out[name] = copyActivity(record)
	}
	return out, nil
}

// Get returns one activity by exact name.
func (s *MemoryStore) Get(ctx context.Context, name string) (*catalog.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.activities[name]
	if !ok {
		return nil, catalog.ErrActivityNotFound
	}
	snapshot := copyActivity(record)
	return &snapshot, nil
}

// AddParticipant appends the email to the roster. The duplicate check and
// the append happen under one write lock so the no-duplicate invariant
// holds under concurrent requests.
func (s *MemoryStore) AddParticipant(ctx context.Context, name, email string) (*catalog.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.activities[name]
	if !ok {
		return nil, catalog.ErrActivityNotFound
	}
	for _, participant := range record.Participants {
		if participant == email {
			return nil, catalog.ErrAlreadySignedUp
		}
	}

	record.Participants = append(record.Participants, email)
	snapshot := copyActivity(record)
	return &snapshot, nil
}

// RemoveParticipant deletes exactly one matching entry from the roster.
func (s *MemoryStore) RemoveParticipant(ctx context.Context, name, email string) (*catalog.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.activities[name]
	if !ok {
		return nil, catalog.ErrActivityNotFound
	}
	for i, participant := range record.Participants {
		if participant == email {
			record.Participants = append(record.Participants[:i], record.Participants[i+1:]...)
			snapshot := copyActivity(record)
			return &snapshot, nil
		}
	}
	return nil, catalog.ErrParticipantNotFound
}

func copyActivity(record *catalog.Activity) catalog.Activity {
	snapshot := *record
	snapshot.Participants = make([]string, len(record.Participants))
	copy(snapshot.Participants, record.Participants)
	return snapshot
}
