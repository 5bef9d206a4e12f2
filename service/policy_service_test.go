package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mortgage-pulse/domain"
	"mortgage-pulse/repository"
)

func TestPolicyService_Defaults(t *testing.T) {
	policies := NewPolicyService(repository.NewMockCache())

	snapshot := policies.Snapshot()
	assert.Equal(t, DefaultRegulatoryPolicy(), snapshot)
	assert.Zero(t, snapshot.MaxLTVRatio, "LTV check starts disabled")
}

func TestPolicyService_UpdateAndSnapshot(t *testing.T) {
	policies := NewPolicyService(repository.NewMockCache())

	updated := domain.RegulatoryPolicy{
		MinMonthlyPayment: 1500,
		MaxLoanTermYears:  25,
		MaxBorrowerAge:    70,
		MaxLTVRatio:       0.85,
	}
	require.NoError(t, policies.Update(updated))

	assert.Equal(t, updated, policies.Snapshot())
}

func TestPolicyService_SnapshotIsolation(t *testing.T) {
	policies := NewPolicyService(repository.NewMockCache())

	before := policies.Snapshot()
	require.NoError(t, policies.Update(domain.RegulatoryPolicy{
		MinMonthlyPayment: 2000,
		MaxLoanTermYears:  20,
		MaxBorrowerAge:    70,
	}))

	// A snapshot taken before the update keeps its values.
	assert.Equal(t, DefaultRegulatoryPolicy(), before)
}

func TestPolicyService_SeedsFromCache(t *testing.T) {
	cache := repository.NewMockCache()

	first := NewPolicyService(cache)
	stored := domain.RegulatoryPolicy{
		MinMonthlyPayment: 1200,
		MaxLoanTermYears:  28,
		MaxBorrowerAge:    72,
	}
	require.NoError(t, first.Update(stored))

	// A fresh service over the same cache picks up the stored policy.
	second := NewPolicyService(cache)
	assert.Equal(t, stored, second.Snapshot())
}

func TestPolicyService_RejectsInvalidUpdates(t *testing.T) {
	policies := NewPolicyService(repository.NewMockCache())

	cases := map[string]domain.RegulatoryPolicy{
		"negative min payment": {MinMonthlyPayment: -1, MaxLoanTermYears: 30, MaxBorrowerAge: 75},
		"term below floor":     {MinMonthlyPayment: 1000, MaxLoanTermYears: 4, MaxBorrowerAge: 75},
		"zero borrower age":    {MinMonthlyPayment: 1000, MaxLoanTermYears: 30, MaxBorrowerAge: 0},
		"negative ltv":         {MinMonthlyPayment: 1000, MaxLoanTermYears: 30, MaxBorrowerAge: 75, MaxLTVRatio: -0.1},
	}

	for name, policy := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, policies.Update(policy))
			assert.Equal(t, DefaultRegulatoryPolicy(), policies.Snapshot())
		})
	}
}
