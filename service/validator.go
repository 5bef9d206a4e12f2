package service

import "mortgage-pulse/domain"

// MaxAllowedTerm returns the usable term ceiling in years for a borrower:
// the blanket regulatory cap, tightened by age when age is known.
func MaxAllowedTerm(policy domain.RegulatoryPolicy, age *int) int {
	if age == nil {
		return policy.MaxLoanTermYears
	}

	byAge := policy.MaxBorrowerAge - *age
	if byAge < policy.MaxLoanTermYears {
		return byAge
	}
	return policy.MaxLoanTermYears
}

// ValidateLoanParams checks a proposed loan against the regulatory policy.
// All checks run independently and every violation is collected, so callers
// see the full picture rather than the first failure. Pure and side-effect
// free; the policy snapshot is never mutated.
func ValidateLoanParams(policy domain.RegulatoryPolicy, params domain.LoanParams) domain.ValidationResult {
	violations := []string{}

	if params.MonthlyPayment < policy.MinMonthlyPayment {
		violations = append(violations, ViolationPaymentBelowMinimum)
	}

	if params.TermYears > policy.MaxLoanTermYears {
		violations = append(violations, ViolationTermExceedsMaximum)
	}

	if params.Age != nil && *params.Age+params.TermYears > policy.MaxBorrowerAge {
		violations = append(violations, ViolationTermExceedsBorrowerAge)
	}

	if policy.MaxLTVRatio > 0 && params.PropertyValue > 0 {
		if params.TotalAmount/params.PropertyValue > policy.MaxLTVRatio {
			violations = append(violations, ViolationLTVExceeded)
		}
	}

	return domain.ValidationResult{
		IsValid:        len(violations) == 0,
		Violations:     violations,
		MaxAllowedTerm: MaxAllowedTerm(policy, params.Age),
	}
}
