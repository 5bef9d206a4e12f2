package service

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"time"

	"mortgage-pulse/domain"
	"mortgage-pulse/repository"
)

// AnalyticsService computes the admin dashboard's metrics from the stored
// submissions and telemetry events.
type AnalyticsService struct {
	submissions repository.SubmissionRepository
	events      repository.EventRepository
}

func NewAnalyticsService(
	submissions repository.SubmissionRepository,
	events repository.EventRepository,
) *AnalyticsService {
	return &AnalyticsService{submissions: submissions, events: events}
}

// Summary returns total leads, unique sessions, conversion rate (%) and the
// timestamp of the latest lead.
func (s *AnalyticsService) Summary() (domain.AnalyticsSummary, error) {
	submissions, err := s.submissions.List()
	if err != nil {
		return domain.AnalyticsSummary{}, fmt.Errorf("listing submissions: %w", err)
	}
	events, err := s.events.List()
	if err != nil {
		return domain.AnalyticsSummary{}, fmt.Errorf("listing events: %w", err)
	}

	sessions := map[string]struct{}{}
	for _, event := range events {
		sessions[event.SessionID] = struct{}{}
	}

	summary := domain.AnalyticsSummary{
		TotalLeads:     len(submissions),
		UniqueSessions: len(sessions),
	}
	if len(sessions) > 0 {
		summary.ConversionRate = float64(len(submissions)) / float64(len(sessions)) * 100
	}

	var lastLead time.Time
	for _, submission := range submissions {
		if submission.CreatedAt.After(lastLead) {
			lastLead = submission.CreatedAt
		}
	}
	if !lastLead.IsZero() {
		summary.LastLeadAt = &lastLead
	}

	return summary, nil
}

// Funnel counts distinct sessions per wizard step from step_view events,
// ascending by step number. Events without a usable step value are skipped.
func (s *AnalyticsService) Funnel() ([]domain.FunnelStep, error) {
	events, err := s.events.List()
	if err != nil {
		return nil, fmt.Errorf("listing events: %w", err)
	}

	stepSessions := map[int]map[string]struct{}{}
	for _, event := range events {
		if event.EventType != domain.EventStepView {
			continue
		}
		step, ok := eventStep(event.EventData)
		if !ok {
			continue
		}
		if stepSessions[step] == nil {
			stepSessions[step] = map[string]struct{}{}
		}
		stepSessions[step][event.SessionID] = struct{}{}
	}

	funnel := make([]domain.FunnelStep, 0, len(stepSessions))
	for step, sessions := range stepSessions {
		funnel = append(funnel, domain.FunnelStep{Step: step, Sessions: len(sessions)})
	}
	sort.Slice(funnel, func(i, j int) bool {
		return funnel[i].Step < funnel[j].Step
	})

	return funnel, nil
}

// eventStep extracts the step number from event data. JSON decoding yields
// float64 for numbers; stored events may carry native ints.
func eventStep(data map[string]any) (int, bool) {
	switch v := data["step"].(type) {
	case float64:
		return int(v), true
	case int:
		return v, true
	default:
		return 0, false
	}
}

// EventBreakdown counts events per type, most frequent first.
func (s *AnalyticsService) EventBreakdown() ([]domain.EventTypeCount, error) {
	events, err := s.events.List()
	if err != nil {
		return nil, fmt.Errorf("listing events: %w", err)
	}

	counts := map[string]int{}
	for _, event := range events {
		counts[event.EventType]++
	}

	breakdown := make([]domain.EventTypeCount, 0, len(counts))
	for eventType, count := range counts {
		breakdown = append(breakdown, domain.EventTypeCount{
			EventType: eventType,
			Count:     count,
		})
	}
	sort.Slice(breakdown, func(i, j int) bool {
		if breakdown[i].Count != breakdown[j].Count {
			return breakdown[i].Count > breakdown[j].Count
		}
		return breakdown[i].EventType < breakdown[j].EventType
	})

	return breakdown, nil
}

var submissionCSVHeader = []string{
	"id", "created_at", "lead_name", "lead_phone", "lead_email",
	"session_id", "scenario", "monthly_savings", "duration_years", "can_save",
}

// ExportSubmissionsCSV writes every stored submission as CSV, header first.
func (s *AnalyticsService) ExportSubmissionsCSV(w io.Writer) error {
	submissions, err := s.submissions.List()
	if err != nil {
		return fmt.Errorf("listing submissions: %w", err)
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(submissionCSVHeader); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}

	for _, sub := range submissions {
		record := []string{
			sub.ID,
			sub.CreatedAt.Format(time.RFC3339),
			sub.LeadName,
			sub.LeadPhone,
			sub.LeadEmail,
			sub.SessionID,
			sub.Scenario,
			strconv.FormatFloat(sub.MonthlySavings, 'f', 2, 64),
			strconv.Itoa(sub.NewMortgageDurationYears),
			strconv.FormatBool(sub.CanSave),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("writing csv record: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
