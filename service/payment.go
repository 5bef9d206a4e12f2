package service

import (
	"math"

	"mortgage-pulse/domain"
)

// roundTo2Decimals rounds a monetary amount for persistence/presentation.
// Never used inside the scenario search.
func roundTo2Decimals(value float64) float64 {
	return math.Round(value*100) / 100
}

// WeightedAnnualRate returns the principal-weighted average annual rate of the
// two positions. Negative principals are clamped to zero before weighting.
// When both principals are zero the mortgage rate is returned as a fallback.
func WeightedAnnualRate(mortgage, other domain.DebtPosition) float64 {
	mp := math.Max(0, mortgage.Principal)
	op := math.Max(0, other.Principal)

	total := mp + op
	if total == 0 {
		return mortgage.AnnualRate
	}

	return (mp*mortgage.AnnualRate + op*other.AnnualRate) / total
}

// MonthlyPayment computes the fixed amortized monthly payment for a principal
// at a decimal annual rate over the given number of whole years. years must be
// > 0; term bounds are the validator's job, not checked here. The result is
// unrounded double precision.
func MonthlyPayment(principal, annualRate float64, years int) float64 {
	n := float64(years * 12)

	if annualRate == 0 {
		// Straight-line degenerate case, avoids division by zero below.
		return principal / n
	}

	r := annualRate / 12
	return principal * (r / (1 - math.Pow(1+r, -n)))
}
