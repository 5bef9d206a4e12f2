package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"

	"mortgage-pulse/domain"
	"mortgage-pulse/repository"
)

const policyCacheKey = "mortgage-pulse:regulatory-policy"

// PolicyService owns the current regulatory policy. Reads hand out copies, so
// an in-flight calculation keeps its snapshot even while an admin updates the
// policy. Updates are written through to the cache so restarts and sibling
// instances pick them up.
type PolicyService struct {
	mu     sync.RWMutex
	policy domain.RegulatoryPolicy
	cache  repository.CacheRepository
}

// DefaultRegulatoryPolicy is used until an admin configures one. The LTV check
// starts disabled.
func DefaultRegulatoryPolicy() domain.RegulatoryPolicy {
	return domain.RegulatoryPolicy{
		MinMonthlyPayment: DefaultMinMonthlyPayment,
		MaxLoanTermYears:  DefaultMaxLoanTermYears,
		MaxBorrowerAge:    DefaultMaxBorrowerAge,
	}
}

// NewPolicyService seeds the policy from the cache when a stored snapshot
// exists, falling back to defaults.
func NewPolicyService(cache repository.CacheRepository) *PolicyService {
	s := &PolicyService{
		policy: DefaultRegulatoryPolicy(),
		cache:  cache,
	}

	if raw, ok := cache.Get(policyCacheKey); ok {
		var stored domain.RegulatoryPolicy
		if err := json.Unmarshal([]byte(raw), &stored); err != nil {
			log.Printf("Warning: discarding cached regulatory policy: %v", err)
		} else {
			s.policy = stored
		}
	}

	return s
}

// Snapshot returns a copy of the current policy.
func (s *PolicyService) Snapshot() domain.RegulatoryPolicy {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.policy
}

// Update validates and swaps the policy, then writes it through to the cache.
// A cache failure is logged but does not reject the update.
func (s *PolicyService) Update(policy domain.RegulatoryPolicy) error {
	if policy.MinMonthlyPayment < 0 {
		return errors.New("invalid minimum monthly payment")
	}
	if policy.MaxLoanTermYears < MinScenarioYears {
		return fmt.Errorf("maximum loan term must be at least %d years", MinScenarioYears)
	}
	if policy.MaxBorrowerAge <= 0 {
		return errors.New("invalid maximum borrower age")
	}
	if policy.MaxLTVRatio < 0 {
		return errors.New("invalid maximum loan-to-value ratio")
	}

	s.mu.Lock()
	s.policy = policy
	s.mu.Unlock()

	raw, err := json.Marshal(policy)
	if err != nil {
		return fmt.Errorf("encoding policy: %w", err)
	}
	if err := s.cache.Set(policyCacheKey, string(raw)); err != nil {
		log.Printf("Warning: failed to cache regulatory policy: %v", err)
	}

	return nil
}
