package catalog

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"example.com/extracurricular/internal/events"
	"example.com/extracurricular/internal/observability"
)

// Service orchestrates roster workflows over the store and emits roster
// events after accepted mutations.
type Service struct {
	store     Store
	publisher events.Publisher
	log       *zap.Logger
}

// NewService constructs a Service. A nil publisher disables event emission;
// a nil logger falls back to a no-op logger.
func NewService(store Store, publisher events.Publisher, log *zap.Logger) *Service {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{store: store, publisher: publisher, log: log}
}

// List returns a snapshot of the full catalog.
func (s *Service) List(ctx context.Context) (map[string]Activity, error) {
	return s.store.List(ctx)
}

// SignUp appends the email to the activity roster and returns a confirmation
// message. MaxParticipants is informational and not enforced here.
func (s *Service) SignUp(ctx context.Context, activityName, email string) (string, error) {
	activity, err := s.store.AddParticipant(ctx, activityName, email)
	if err != nil {
		return "", err
	}

	observability.RecordSignup(activityName, len(activity.Participants))
	s.emit(ctx, events.ActionSignup, activityName, email, len(activity.Participants))

	return fmt.Sprintf("Signed up %s for %s", email, activityName), nil
}

// Remove deletes the email from the activity roster and returns a
// confirmation message.
func (s *Service) Remove(ctx context.Context, activityName, email string) (string, error) {
	activity, err := s.store.RemoveParticipant(ctx, activityName, email)
	if err != nil {
		return "", err
	}

	observability.RecordRemoval(activityName, len(activity.Participants))
	s.emit(ctx, events.ActionRemove, activityName, email, len(activity.Participants))

	return fmt.Sprintf("Removed %s from %s", email, activityName), nil
}

// emit publishes a roster event best-effort. Publish failures never surface
// to the caller; the mutation already happened.
func (s *Service) emit(ctx context.Context, action events.Action, activityName, email string, participants int) {
	event := events.NewRosterChanged(activityName, email, action, participants)
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.log.Warn("failed to publish roster event",
			zap.String("activity", activityName),
			zap.String("action", string(action)),
			zap.Error(err),
		)
	}
}
