/*
formula.go - Polymorphic category formula dispatch

PURPOSE:
  Each category implements the Formula interface. Dispatch is a closed,
  name-keyed registry: unknown categories are rejected at the boundary
  instead of falling through to a default formula.

COMMON SHAPE:
  Every formula derives, from one driver's aggregated metrics:
    1. effective target   (tenure-prorated, see target.go)
    2. basic salary       (effective target / daily rate × basic rate)
    3. bonus or penalty   (flat, tiered, or revenue-progressive)
    4. gas allowance      (capped; orders-, target-, or revenue-based)
    5. gas difference     (allowance minus actual usage; signed)
    6. total              (max(0, basic + bonus + gas difference))

ROUNDING:
  Components round to 2 decimals in finalize(), and the total is computed
  from the already-rounded components. This makes the published invariant
  total == max(0, basic + bonus + gas_difference) hold exactly on the wire.

SEE ALSO:
  - formulas.go: The seven implementations
  - params.go: Rate/cap constants each formula consumes
*/
package settlement

import "math"

// FormulaInput carries one driver's aggregated metrics plus the resolved
// parameters into a formula evaluation.
type FormulaInput struct {
	TotalOrders      float64
	NominalTarget    float64
	GasUsage         float64
	DaysSinceJoining int
	TotalRevenue     float64
	Params           Params
}

// Breakdown is the computed pay components for one driver. All monetary
// fields are rounded to 2 decimals; EffectiveTarget is left unrounded (it is
// an order/revenue count, not money).
type Breakdown struct {
	EffectiveTarget float64
	BasicSalary     float64
	BonusAmount     float64
	GasDeserved     float64
	GasDifference   float64
	TotalSalary     float64
}

// Formula computes the pay breakdown for one category. Implementations are
// pure: no state, no I/O, identical inputs yield identical outputs.
type Formula interface {
	Category() Category
	Compute(in FormulaInput) Breakdown
}

// =============================================================================
// DISPATCH - Closed registry, one formula per category
// =============================================================================

var formulas = map[Category]Formula{
	CategoryMotorcycle:     motorcycleFormula{},
	CategoryFoodTrial:      foodTrialFormula{},
	CategoryFoodInhouseNew: foodInhouseNewFormula{},
	CategoryFoodInhouseOld: foodInhouseOldFormula{},
	CategoryEcommerceWH:    ecommerceWHFormula{},
	CategoryEcommerce:      ecommerceFormula{},
	CategoryAjeer:          ajeerFormula{},
}

// FormulaFor returns the formula for a category, or InvalidCategoryError if
// the category is not in the enumerated set.
func FormulaFor(c Category) (Formula, error) {
	f, ok := formulas[c]
	if !ok {
		return nil, &InvalidCategoryError{Name: string(c)}
	}
	return f, nil
}

// =============================================================================
// SHARED PIECES
// =============================================================================

// flatBonus pays surplus orders at the bonus rate and shortfall orders at
// the penalty rate (surplus ≤ 0 yields a non-positive amount).
func flatBonus(surplus, bonusRate, penaltyRate float64) float64 {
	if surplus > 0 {
		return surplus * bonusRate
	}
	return surplus * penaltyRate
}

// BonusTier is one block of a progressive bonus schedule: up to Size surplus
// orders paid at Rate each. A Size of math.Inf(1) marks the open-ended final
// tier.
type BonusTier struct {
	Size float64
	Rate float64
}

// TierSchedule is a progressive per-order bonus schedule. Successive blocks
// of surplus orders are paid at increasing rates until the surplus is
// exhausted.
type TierSchedule []BonusTier

// Amount pays the surplus through the schedule. Callers only invoke this for
// positive surplus; shortfalls use the flat penalty rate.
func (ts TierSchedule) Amount(surplus float64) float64 {
	total := 0.0
	remaining := surplus
	for _, tier := range ts {
		inTier := math.Min(remaining, tier.Size)
		total += inTier * tier.Rate
		remaining -= inTier
		if remaining <= 0 {
			break
		}
	}
	return total
}

// finalize rounds the components and derives the signed difference and the
// floored total from the rounded values.
func finalize(effectiveTarget, basic, bonus, gasDeserved, gasUsage float64) Breakdown {
	b := Breakdown{
		EffectiveTarget: effectiveTarget,
		BasicSalary:     round2(basic),
		BonusAmount:     round2(bonus),
		GasDeserved:     round2(gasDeserved),
	}
	b.GasDifference = round2(b.GasDeserved - gasUsage)
	b.TotalSalary = round2(math.Max(0, b.BasicSalary+b.BonusAmount+b.GasDifference))
	return b
}
