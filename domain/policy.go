package domain

// RegulatoryPolicy is the admin-configurable regulatory bounds. The engine and
// validator receive it as an immutable snapshot per call and never mutate it.
// MaxLTVRatio of 0 disables the loan-to-value check.
type RegulatoryPolicy struct {
	MinMonthlyPayment float64 `json:"minMonthlyPayment"`
	MaxLoanTermYears  int     `json:"maxLoanTermYears"`
	MaxBorrowerAge    int     `json:"maxBorrowerAge"`
	MaxLTVRatio       float64 `json:"maxLTVRatio"`
}

// LoanParams is one proposed (amount, payment, term) tuple to validate.
// Age is optional; when absent only the blanket term cap applies.
type LoanParams struct {
	TotalAmount    float64
	MonthlyPayment float64
	TermYears      int
	Age            *int
	PropertyValue  float64
}

// ValidationResult collects every violated constraint, not just the first.
// MaxAllowedTerm is the usable term ceiling for this borrower regardless of
// whether the checked term passed, so callers can re-bound a search with it.
type ValidationResult struct {
	IsValid        bool     `json:"isValid"`
	Violations     []string `json:"violations"`
	MaxAllowedTerm int      `json:"maxAllowedTerm"`
}
