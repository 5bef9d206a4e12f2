package domain

// DebtPosition is one consolidated debt the borrower carries today: the
// outstanding principal and its annual interest rate (decimal, 0.045 = 4.5%).
type DebtPosition struct {
	Principal  float64
	AnnualRate float64
}

type ScenarioType string

const (
	ScenarioMinimum ScenarioType = "minimum"
	ScenarioMaximum ScenarioType = "maximum"
	ScenarioMiddle  ScenarioType = "middle"
)

// SpecialCase tags results where a three-way comparison is not worth showing.
// The empty string means the full scenario set was produced.
type SpecialCase string

const (
	SpecialCaseInsufficientSavings SpecialCase = "insufficient-savings"
	SpecialCaseNoMortgageSavings   SpecialCase = "no-mortgage-savings"
)

// ScenarioInput is the borrower's current debt position as collected by the
// wizard. All monetary fields share the same base currency unit. A negative
// OverdraftBalance is allowed and consumed via its absolute value.
type ScenarioInput struct {
	MortgageBalance          float64 `json:"mortgageBalance"`
	MortgageRate             float64 `json:"mortgageRate"`
	OtherLoansBalance        float64 `json:"otherLoansBalance"`
	OtherLoansRate           float64 `json:"otherLoansRate"`
	OverdraftBalance         float64 `json:"overdraftBalance"`
	CurrentMortgagePayment   float64 `json:"currentMortgagePayment"`
	CurrentOtherLoansPayment float64 `json:"currentOtherLoansPayment"`
	Age                      *int    `json:"age,omitempty"`
	PropertyValue            float64 `json:"propertyValue"`
}

// PaymentScenario is one candidate refinancing outcome at a specific term.
// TotalSavings is an undiscounted projection: MonthlyReduction × Years × 12.
type PaymentScenario struct {
	Type             ScenarioType `json:"type"`
	Years            int          `json:"years"`
	MonthlyPayment   float64      `json:"monthlyPayment"`
	MonthlyReduction float64      `json:"monthlyReduction"`
	TotalSavings     float64      `json:"totalSavings"`
	IsValid          bool         `json:"isValid"`
}

type ScenarioCalculationResult struct {
	MinimumScenario   *PaymentScenario `json:"minimumScenario"`
	MaximumScenario   *PaymentScenario `json:"maximumScenario"`
	MiddleScenario    *PaymentScenario `json:"middleScenario"`
	HasValidScenarios bool             `json:"hasValidScenarios"`
	SpecialCase       SpecialCase      `json:"specialCase,omitempty"`
	CurrentPayment    float64          `json:"currentPayment"`
}
