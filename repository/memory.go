package repository

import (
	"sync"

	"mortgage-pulse/domain"
)

// SubmissionRepositoryMemory is an in-memory implementation of
// SubmissionRepository, used in tests and local runs without sqlite.
type SubmissionRepositoryMemory struct {
	mu   sync.Mutex
	data []domain.Submission
}

func NewSubmissionRepositoryMemory() *SubmissionRepositoryMemory {
	return &SubmissionRepositoryMemory{
		data: []domain.Submission{},
	}
}

func (r *SubmissionRepositoryMemory) Save(submission domain.Submission) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data = append(r.data, submission)
	return nil
}

func (r *SubmissionRepositoryMemory) List() ([]domain.Submission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Submission, len(r.data))
	copy(out, r.data)
	return out, nil
}

// EventRepositoryMemory is the in-memory counterpart for telemetry events.
type EventRepositoryMemory struct {
	mu   sync.Mutex
	data []domain.Event
}

func NewEventRepositoryMemory() *EventRepositoryMemory {
	return &EventRepositoryMemory{
		data: []domain.Event{},
	}
}

func (r *EventRepositoryMemory) Save(event domain.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data = append(r.data, event)
	return nil
}

func (r *EventRepositoryMemory) List() ([]domain.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Event, len(r.data))
	copy(out, r.data)
	return out, nil
}
