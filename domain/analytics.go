package domain

import "time"

// AnalyticsSummary mirrors the dashboard's headline metrics. ConversionRate is
// a percentage; LastLeadAt is nil until the first submission arrives.
type AnalyticsSummary struct {
	TotalLeads     int        `json:"totalLeads"`
	UniqueSessions int        `json:"uniqueSessions"`
	ConversionRate float64    `json:"conversionRate"`
	LastLeadAt     *time.Time `json:"lastLeadAt,omitempty"`
}

// FunnelStep is the number of distinct sessions that viewed a wizard step.
type FunnelStep struct {
	Step     int `json:"step"`
	Sessions int `json:"sessions"`
}

type EventTypeCount struct {
	EventType string `json:"eventType"`
	Count     int    `json:"count"`
}
