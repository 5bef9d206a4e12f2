package service

import (
	"testing"

	"mortgage-pulse/domain"
)

func testPolicy() domain.RegulatoryPolicy {
	return domain.RegulatoryPolicy{
		MinMonthlyPayment: 1000,
		MaxLoanTermYears:  30,
		MaxBorrowerAge:    75,
	}
}

func intPtr(v int) *int { return &v }

func TestValidateLoanParams_Valid(t *testing.T) {

	result := ValidateLoanParams(testPolicy(), domain.LoanParams{
		TotalAmount:    1_000_000,
		MonthlyPayment: 5000,
		TermYears:      25,
		Age:            intPtr(40),
		PropertyValue:  2_000_000,
	})

	if !result.IsValid {
		t.Fatalf("expected valid, got violations %v", result.Violations)
	}
	if len(result.Violations) != 0 {
		t.Errorf("expected no violations, got %v", result.Violations)
	}
	if result.MaxAllowedTerm != 30 {
		t.Errorf("expected max allowed term 30, got %d", result.MaxAllowedTerm)
	}
}

func TestValidateLoanParams_CollectsAllViolations(t *testing.T) {

	policy := testPolicy()
	policy.MaxLTVRatio = 0.85

	result := ValidateLoanParams(policy, domain.LoanParams{
		TotalAmount:    200000,
		MonthlyPayment: 500,
		TermYears:      35,
		Age:            intPtr(50),
		PropertyValue:  100000,
	})

	if result.IsValid {
		t.Fatal("expected invalid result")
	}
	if len(result.Violations) != 4 {
		t.Errorf("expected 4 violations, got %v", result.Violations)
	}
}

func TestValidateLoanParams_AgeTightensMaxTerm(t *testing.T) {

	result := ValidateLoanParams(testPolicy(), domain.LoanParams{
		TotalAmount:    1_000_000,
		MonthlyPayment: 5000,
		TermYears:      35,
		Age:            intPtr(50),
	})

	// MaxAllowedTerm reports the usable ceiling even though this term fails.
	if result.MaxAllowedTerm != 25 {
		t.Errorf("expected max allowed term 25, got %d", result.MaxAllowedTerm)
	}
	if result.IsValid {
		t.Error("expected invalid result")
	}
}

func TestValidateLoanParams_NoAgeUsesBlanketCap(t *testing.T) {

	result := ValidateLoanParams(testPolicy(), domain.LoanParams{
		TotalAmount:    1_000_000,
		MonthlyPayment: 5000,
		TermYears:      30,
	})

	if !result.IsValid {
		t.Fatalf("expected valid, got %v", result.Violations)
	}
	if result.MaxAllowedTerm != 30 {
		t.Errorf("expected max allowed term 30, got %d", result.MaxAllowedTerm)
	}
}

func TestValidateLoanParams_LTVDisabledByDefault(t *testing.T) {

	// MaxLTVRatio of 0 means no LTV bound, however leveraged the loan.
	result := ValidateLoanParams(testPolicy(), domain.LoanParams{
		TotalAmount:    1_000_000,
		MonthlyPayment: 5000,
		TermYears:      20,
		PropertyValue:  100000,
	})

	if !result.IsValid {
		t.Errorf("expected valid, got %v", result.Violations)
	}
}

func TestMaxAllowedTerm(t *testing.T) {

	policy := testPolicy()

	if got := MaxAllowedTerm(policy, nil); got != 30 {
		t.Errorf("expected 30 without age, got %d", got)
	}
	if got := MaxAllowedTerm(policy, intPtr(50)); got != 25 {
		t.Errorf("expected 25 at age 50, got %d", got)
	}
	if got := MaxAllowedTerm(policy, intPtr(20)); got != 30 {
		t.Errorf("expected 30 at age 20, got %d", got)
	}
}
