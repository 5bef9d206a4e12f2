package service

const (
	// MinScenarioYears is a hard product floor: no refinancing scenario below
	// 5 years is ever offered, independent of regulation.
	MinScenarioYears = 5

	// MinMonthlyReduction is the monthly saving a term must clear to qualify
	// at all. MultiScenarioReduction is the best-case saving below which a
	// three-option comparison is not worth presenting. Both are product
	// constants of the engine, not inputs.
	MinMonthlyReduction    = 500.0
	MultiScenarioReduction = 1000.0

	// Defaults for the regulatory policy until an admin configures one.
	DefaultMinMonthlyPayment = 1000.0
	DefaultMaxLoanTermYears  = 30
	DefaultMaxBorrowerAge    = 75
)

const (
	ViolationPaymentBelowMinimum    = "payment below minimum"
	ViolationTermExceedsMaximum     = "term exceeds regulatory maximum"
	ViolationTermExceedsBorrowerAge = "term exceeds maximum borrower age"
	ViolationLTVExceeded            = "loan exceeds maximum loan-to-value"
)
