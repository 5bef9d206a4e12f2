package domain

import "time"

const (
	EventSessionStarted = "session_started"
	EventStepView       = "step_view"
	EventCalcPerformed  = "calc_performed"
	EventLeadSubmitted  = "lead_submitted"
)

// Event is one telemetry event from the wizard frontend.
type Event struct {
	ID        string         `json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	SessionID string         `json:"sessionId"`
	EventType string         `json:"eventType"`
	EventData map[string]any `json:"eventData,omitempty"`
}
