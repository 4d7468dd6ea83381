package services

import (
	"roamai/pkg/utils"
)

// BudgetPolicy holds the spend-share constants the allocator derives ceilings
// from. They are configurable per planner instance, never per request.
type BudgetPolicy struct {
	AccommodationShare     float64 // share of total budget for the whole stay
	ActivityPerPersonShare float64 // share of total budget per activity per person
}

var DefaultBudgetPolicy = BudgetPolicy{
	AccommodationShare:     0.4,
	ActivityPerPersonShare: 0.1,
}

// BudgetAllocation is the set of ceilings a planning run filters supply with.
type BudgetAllocation struct {
	AccommodationCeiling     float64
	ActivityPerPersonCeiling float64
}

type BudgetServiceInterface interface {
	Allocate(totalBudget float64, travelers int) (BudgetAllocation, error)
}

type BudgetService struct {
	policy BudgetPolicy
}

func NewBudgetService(policy BudgetPolicy) BudgetServiceInterface {
	return &BudgetService{policy: policy}
}

func (b *BudgetService) Allocate(totalBudget float64, travelers int) (BudgetAllocation, error) {
	if totalBudget <= 0 {
		return BudgetAllocation{}, utils.ErrInvalidBudget
	}
	if travelers < 1 {
		return BudgetAllocation{}, utils.ErrInvalidInput
	}

	return BudgetAllocation{
		AccommodationCeiling:     b.policy.AccommodationShare * totalBudget,
		ActivityPerPersonCeiling: b.policy.ActivityPerPersonShare * totalBudget,
	}, nil
}
