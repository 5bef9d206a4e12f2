package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"mortgage-pulse/domain"
	"mortgage-pulse/repository"
)

var knownEventTypes = map[string]bool{
	domain.EventSessionStarted: true,
	domain.EventStepView:       true,
	domain.EventCalcPerformed:  true,
	domain.EventLeadSubmitted:  true,
}

type EventService struct {
	repo repository.EventRepository
}

func NewEventService(repo repository.EventRepository) *EventService {
	return &EventService{repo: repo}
}

// Record stamps and persists one telemetry event. Unknown event types are
// rejected rather than dropped silently.
func (s *EventService) Record(
	sessionID, eventType string,
	data map[string]any,
) (domain.Event, error) {

	if sessionID == "" {
		return domain.Event{}, errors.New("session id is required")
	}
	if !knownEventTypes[eventType] {
		return domain.Event{}, fmt.Errorf("unknown event type: %s", eventType)
	}

	event := domain.Event{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		SessionID: sessionID,
		EventType: eventType,
		EventData: data,
	}

	if err := s.repo.Save(event); err != nil {
		return domain.Event{}, fmt.Errorf("saving event: %w", err)
	}

	return event, nil
}
