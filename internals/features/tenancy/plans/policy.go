// Package plans holds the capacity policy: pure plan-tier arithmetic with no
// store access, safe to call from any saga.
package plans

import orgModel "edusitepro_backend/internals/features/tenancy/organizations/model"

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFlat       DiscountType = "flat"
)

// MaxCentresFor maps a plan tier to its centre cap. 0 means unlimited.
// Unknown tiers fall back to solo.
func MaxCentresFor(tier orgModel.PlanTier) int {
	switch tier {
	case orgModel.PlanSolo:
		return 1
	case orgModel.PlanGroup5:
		return 5
	case orgModel.PlanGroup10:
		return 10
	case orgModel.PlanEnterprise:
		return 0
	default:
		return 1
	}
}

// MonthlyFeeFor is the list price per tier in ZAR, used for lead estimates
// and the upgrade-prompt message.
func MonthlyFeeFor(tier orgModel.PlanTier) float64 {
	switch tier {
	case orgModel.PlanSolo:
		return 299
	case orgModel.PlanGroup5:
		return 999
	case orgModel.PlanGroup10:
		return 1799
	case orgModel.PlanEnterprise:
		return 3499
	default:
		return 299
	}
}

// CanDowngrade reports whether an organization with currentCentreCount centres
// may move to a plan capped at newMaxCentres (0 = unlimited, always allowed).
func CanDowngrade(currentCentreCount, newMaxCentres int) bool {
	return newMaxCentres == 0 || currentCentreCount <= newMaxCentres
}

// EstimatedDiscountedFee applies a percentage or flat discount, clamped at 0.
func EstimatedDiscountedFee(amount float64, discountType DiscountType, value float64) float64 {
	var out float64
	switch discountType {
	case DiscountPercentage:
		out = amount - amount*value/100
	case DiscountFlat:
		out = amount - value
	default:
		out = amount
	}
	if out < 0 {
		return 0
	}
	return out
}
