package service

import (
	"testing"

	"mortgage-pulse/domain"
)

func TestMonthlyPayment_ZeroRate(t *testing.T) {

	payment := MonthlyPayment(1200, 0, 1)

	expected := 100.0
	if payment != expected {
		t.Errorf("expected %.2f, got %.2f", expected, payment)
	}
}

func TestMonthlyPayment_WithInterest(t *testing.T) {

	payment := MonthlyPayment(100000, 0.05, 10)

	if payment <= 0 {
		t.Fatalf("expected payment > 0, got %f", payment)
	}

	// With interest the total repaid must exceed the principal.
	total := payment * 10 * 12
	if total <= 100000 {
		t.Errorf("expected total %f to exceed principal", total)
	}
}

func TestMonthlyPayment_MonotonicInTerm(t *testing.T) {

	for years := MinScenarioYears; years < 35; years++ {
		shorter := MonthlyPayment(1_000_000, 0.04, years)
		longer := MonthlyPayment(1_000_000, 0.04, years+1)

		if shorter <= longer {
			t.Fatalf("payment not strictly decreasing at %d years: %f <= %f",
				years, shorter, longer)
		}
	}
}

func TestWeightedAnnualRate(t *testing.T) {

	mortgage := domain.DebtPosition{Principal: 100000, AnnualRate: 0.03}
	other := domain.DebtPosition{Principal: 50000, AnnualRate: 0.09}

	rate := WeightedAnnualRate(mortgage, other)

	expected := 0.05
	if diff := rate - expected; diff > 1e-12 || diff < -1e-12 {
		t.Errorf("expected %.4f, got %.4f", expected, rate)
	}

	if rate < mortgage.AnnualRate || rate > other.AnnualRate {
		t.Errorf("weighted rate %f outside input rates", rate)
	}
}

func TestWeightedAnnualRate_ZeroWeight(t *testing.T) {

	mortgage := domain.DebtPosition{Principal: 100000, AnnualRate: 0.03}
	other := domain.DebtPosition{Principal: 0, AnnualRate: 0.09}

	if rate := WeightedAnnualRate(mortgage, other); rate != 0.03 {
		t.Errorf("expected mortgage rate, got %f", rate)
	}
}

func TestWeightedAnnualRate_BothEmpty(t *testing.T) {

	mortgage := domain.DebtPosition{Principal: 0, AnnualRate: 0.045}
	other := domain.DebtPosition{Principal: 0, AnnualRate: 0.09}

	// Mortgage-rate fallback avoids a division by zero.
	if rate := WeightedAnnualRate(mortgage, other); rate != 0.045 {
		t.Errorf("expected fallback to mortgage rate, got %f", rate)
	}
}

func TestWeightedAnnualRate_NegativePrincipalClamped(t *testing.T) {

	mortgage := domain.DebtPosition{Principal: 100000, AnnualRate: 0.03}
	other := domain.DebtPosition{Principal: -50000, AnnualRate: 0.09}

	if rate := WeightedAnnualRate(mortgage, other); rate != 0.03 {
		t.Errorf("expected negative principal to carry no weight, got %f", rate)
	}
}
