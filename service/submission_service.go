package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"mortgage-pulse/domain"
	"mortgage-pulse/repository"
)

type SubmissionService struct {
	scenarios *ScenarioService
	repo      repository.SubmissionRepository
}

// NewSubmissionService creates a new SubmissionService with the given
// scenario engine and repository.
func NewSubmissionService(
	scenarios *ScenarioService,
	repo repository.SubmissionRepository,
) *SubmissionService {
	return &SubmissionService{scenarios: scenarios, repo: repo}
}

// Submit runs the engine on the lead's financials, derives the persisted
// record from the best-savings scenario and stores it. The full calculation
// result is returned alongside so the caller can render it without a second
// engine pass.
func (s *SubmissionService) Submit(
	input domain.SubmissionInput,
) (domain.Submission, domain.ScenarioCalculationResult, error) {

	if input.LeadName == "" {
		return domain.Submission{}, domain.ScenarioCalculationResult{},
			errors.New("lead name is required")
	}
	if input.LeadPhone == "" && input.LeadEmail == "" {
		return domain.Submission{}, domain.ScenarioCalculationResult{},
			errors.New("lead phone or email is required")
	}

	result := s.scenarios.CalculateScenarios(input.Financials)
	best := GetMaxSavingsScenario(result)

	submission := domain.Submission{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		SessionID: input.SessionID,
		LeadName:  input.LeadName,
		LeadPhone: input.LeadPhone,
		LeadEmail: input.LeadEmail,
	}

	if best != nil {
		submission.Scenario = string(best.Type)
		submission.MonthlySavings = roundTo2Decimals(best.MonthlyReduction)
		submission.NewMortgageDurationYears = best.Years
		submission.CanSave = best.MonthlyReduction > 0
	}

	raw, err := json.Marshal(input.Financials)
	if err != nil {
		return domain.Submission{}, domain.ScenarioCalculationResult{},
			fmt.Errorf("encoding submission data: %w", err)
	}
	submission.FullDataJSON = string(raw)

	if err := s.repo.Save(submission); err != nil {
		return domain.Submission{}, domain.ScenarioCalculationResult{},
			fmt.Errorf("saving submission: %w", err)
	}

	return submission, result, nil
}
