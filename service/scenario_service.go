package service

import (
	"math"

	"mortgage-pulse/domain"
)

// PolicyProvider hands out regulatory policy snapshots. The engine takes a
// fresh snapshot per calculation and never caches it across calls, so
// concurrent callers under different policy versions cannot observe torn
// state.
type PolicyProvider interface {
	Snapshot() domain.RegulatoryPolicy
}

type ScenarioService struct {
	policies PolicyProvider
}

// NewScenarioService creates a new ScenarioService reading regulatory bounds
// from the given provider.
func NewScenarioService(policies PolicyProvider) *ScenarioService {
	return &ScenarioService{policies: policies}
}

// CalculateScenarios searches the feasible term range for the borrower and
// returns up to three named refinancing scenarios, or a special-case
// classification when no meaningful saving exists. Failure is modeled as
// data, never as an error.
func (s *ScenarioService) CalculateScenarios(
	input domain.ScenarioInput,
) domain.ScenarioCalculationResult {

	policy := s.policies.Snapshot()

	currentPayment := input.CurrentMortgagePayment + input.CurrentOtherLoansPayment

	// The overdraft balance is stored as negative but consolidated via its
	// absolute value; loan balances are clamped at zero before use.
	mortgage := domain.DebtPosition{
		Principal:  math.Max(0, input.MortgageBalance),
		AnnualRate: input.MortgageRate,
	}
	other := domain.DebtPosition{
		Principal:  math.Max(0, input.OtherLoansBalance) + math.Abs(input.OverdraftBalance),
		AnnualRate: input.OtherLoansRate,
	}

	totalAmount := mortgage.Principal + other.Principal
	rate := WeightedAnnualRate(mortgage, other)

	maxYears := MaxAllowedTerm(policy, input.Age)
	if maxYears < MinScenarioYears {
		maxYears = MinScenarioYears
	}

	// Ascending scan for the shortest term that clears the savings threshold.
	// Payment decreases monotonically with term for the fixed-rate formula,
	// so the first hit is the minimum qualifying term and the scan can stop
	// there. This would break silently under term-dependent rates.
	minValidYears := 0
	for years := MinScenarioYears; years <= maxYears; years++ {
		reduction := currentPayment - MonthlyPayment(totalAmount, rate, years)
		if reduction >= MinMonthlyReduction {
			minValidYears = years
			break
		}
	}

	result := domain.ScenarioCalculationResult{CurrentPayment: currentPayment}

	// Classify by the best-case (longest-term) outcome.
	maxYearsReduction := currentPayment - MonthlyPayment(totalAmount, rate, maxYears)

	switch {
	case maxYearsReduction <= 0:
		result.SpecialCase = domain.SpecialCaseNoMortgageSavings
		return result

	case maxYearsReduction < MultiScenarioReduction:
		maximum := buildScenario(policy, input, domain.ScenarioMaximum,
			maxYears, totalAmount, rate, currentPayment)
		result.MaximumScenario = &maximum
		result.SpecialCase = domain.SpecialCaseInsufficientSavings
		return result
	}

	if minValidYears == 0 {
		// Should be unreachable while payment is monotonic in term: a
		// best-case reduction >= 1000 implies some year cleared 500.
		minValidYears = MinScenarioYears
	}

	middleYears := int(math.Round(float64(minValidYears+maxYears) / 2))

	minimum := buildScenario(policy, input, domain.ScenarioMinimum,
		minValidYears, totalAmount, rate, currentPayment)
	maximum := buildScenario(policy, input, domain.ScenarioMaximum,
		maxYears, totalAmount, rate, currentPayment)
	middle := buildScenario(policy, input, domain.ScenarioMiddle,
		middleYears, totalAmount, rate, currentPayment)

	result.MinimumScenario = &minimum
	result.MaximumScenario = &maximum
	result.MiddleScenario = &middle
	result.HasValidScenarios = true

	return result
}

// buildScenario computes one candidate term's payment, reduction and projected
// savings, and re-validates the concrete tuple to stamp IsValid. The term and
// age bounds already hold by construction of the search range; this catches
// second-order violations such as the payment itself falling below the
// regulatory minimum.
func buildScenario(
	policy domain.RegulatoryPolicy,
	input domain.ScenarioInput,
	scenarioType domain.ScenarioType,
	years int,
	totalAmount, rate, currentPayment float64,
) domain.PaymentScenario {

	payment := MonthlyPayment(totalAmount, rate, years)
	reduction := currentPayment - payment

	check := ValidateLoanParams(policy, domain.LoanParams{
		TotalAmount:    totalAmount,
		MonthlyPayment: payment,
		TermYears:      years,
		Age:            input.Age,
		PropertyValue:  input.PropertyValue,
	})

	return domain.PaymentScenario{
		Type:             scenarioType,
		Years:            years,
		MonthlyPayment:   payment,
		MonthlyReduction: reduction,
		TotalSavings:     reduction * float64(years) * 12,
		IsValid:          check.IsValid,
	}
}

// GetMaxSavingsScenario selects the scenario the submission pipeline persists:
// the maximum scenario whenever present (it is the only populated one in the
// insufficient-savings branch), otherwise the valid scenario with the greatest
// monthly reduction, or nil when none qualify.
func GetMaxSavingsScenario(result domain.ScenarioCalculationResult) *domain.PaymentScenario {
	if result.MaximumScenario != nil {
		return result.MaximumScenario
	}

	var best *domain.PaymentScenario
	for _, scenario := range []*domain.PaymentScenario{
		result.MinimumScenario,
		result.MiddleScenario,
	} {
		if scenario == nil || !scenario.IsValid {
			continue
		}
		if best == nil || scenario.MonthlyReduction > best.MonthlyReduction {
			best = scenario
		}
	}
	return best
}
