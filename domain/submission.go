package domain

import "time"

// SubmissionInput is a completed wizard session: lead contact details plus the
// financial inputs the scenarios were calculated from.
type SubmissionInput struct {
	SessionID  string        `json:"sessionId"`
	LeadName   string        `json:"leadName"`
	LeadPhone  string        `json:"leadPhone"`
	LeadEmail  string        `json:"leadEmail"`
	Financials ScenarioInput `json:"financials"`
}

// Submission is the persisted lead record. Scenario, MonthlySavings,
// NewMortgageDurationYears and CanSave are derived from the best scenario at
// submission time; FullDataJSON keeps the raw financial inputs for the
// dashboard.
type Submission struct {
	ID                       string    `json:"id"`
	CreatedAt                time.Time `json:"createdAt"`
	SessionID                string    `json:"sessionId"`
	LeadName                 string    `json:"leadName"`
	LeadPhone                string    `json:"leadPhone"`
	LeadEmail                string    `json:"leadEmail"`
	Scenario                 string    `json:"scenario"`
	MonthlySavings           float64   `json:"monthlySavings"`
	NewMortgageDurationYears int       `json:"newMortgageDurationYears"`
	CanSave                  bool      `json:"canSave"`
	FullDataJSON             string    `json:"fullDataJson"`
}
