/*
formulas.go - The seven category formula implementations

PURPOSE:
  One implementation per contractual category. Five follow the common
  order-based shape (flat or tiered bonus); Ecommerce is revenue-driven with
  a progressive revenue bonus; Ajeer skips tenure proration entirely.

TIER SCHEDULES:
  Food In-House Old: 124 orders @ 5, then 100 @ 6, 100 @ 7, 100 @ 8,
                     remainder @ 9
  Ajeer:             299 orders @ 6, then 100 @ 7, 100 @ 8, remainder @ 9

  The tier boundaries are empirically negotiated business constants, carried
  verbatim from the authoritative contracts.

SEE ALSO:
  - formula.go: Dispatch, shared helpers, rounding
  - target.go: Daily-rate constants and proration
*/
package settlement

import "math"

// =============================================================================
// MOTORCYCLE
// =============================================================================

type motorcycleFormula struct{}

func (motorcycleFormula) Category() Category { return CategoryMotorcycle }

func (motorcycleFormula) Compute(in FormulaInput) Breakdown {
	p := in.Params
	target := ProjectTarget(CategoryMotorcycle, in.NominalTarget, in.DaysSinceJoining)

	basic := target / motorcycleDailyRate * p.BasicRate
	bonus := flatBonus(in.TotalOrders-target, p.BonusRate, p.PenaltyRate)
	gas := math.Min(in.TotalOrders*p.GasRate, p.GasCap)

	return finalize(target, basic, bonus, gas, in.GasUsage)
}

// =============================================================================
// FOOD TRIAL
// =============================================================================

type foodTrialFormula struct{}

func (foodTrialFormula) Category() Category { return CategoryFoodTrial }

func (foodTrialFormula) Compute(in FormulaInput) Breakdown {
	p := in.Params
	target := ProjectTarget(CategoryFoodTrial, in.NominalTarget, in.DaysSinceJoining)

	basic := target / foodTrialDailyRate * p.BasicRate
	bonus := flatBonus(in.TotalOrders-target, p.BonusRate, p.PenaltyRate)
	gas := math.Min(in.TotalOrders*p.GasRate, p.GasCap)

	return finalize(target, basic, bonus, gas, in.GasUsage)
}

// =============================================================================
// FOOD IN-HOUSE NEW
// =============================================================================

type foodInhouseNewFormula struct{}

func (foodInhouseNewFormula) Category() Category { return CategoryFoodInhouseNew }

func (foodInhouseNewFormula) Compute(in FormulaInput) Breakdown {
	p := in.Params
	target := ProjectTarget(CategoryFoodInhouseNew, in.NominalTarget, in.DaysSinceJoining)

	basic := target / foodInhouseDailyRate * p.BasicRate
	bonus := flatBonus(in.TotalOrders-target, p.BonusRate, p.PenaltyRate)
	gas := math.Min(in.TotalOrders*p.GasRate, p.GasCap)

	return finalize(target, basic, bonus, gas, in.GasUsage)
}

// =============================================================================
// FOOD IN-HOUSE OLD - Tiered bonus
// =============================================================================

var foodInhouseOldTiers = TierSchedule{
	{Size: 124, Rate: 5},
	{Size: 100, Rate: 6},
	{Size: 100, Rate: 7},
	{Size: 100, Rate: 8},
	{Size: math.Inf(1), Rate: 9},
}

type foodInhouseOldFormula struct{}

func (foodInhouseOldFormula) Category() Category { return CategoryFoodInhouseOld }

func (foodInhouseOldFormula) Compute(in FormulaInput) Breakdown {
	p := in.Params
	target := ProjectTarget(CategoryFoodInhouseOld, in.NominalTarget, in.DaysSinceJoining)

	basic := target / foodInhouseDailyRate * p.BasicRate

	surplus := in.TotalOrders - target
	var bonus float64
	if surplus > 0 {
		bonus = foodInhouseOldTiers.Amount(surplus)
	} else {
		bonus = surplus * p.PenaltyRate
	}

	gas := math.Min(in.TotalOrders*p.GasRate, p.GasCap)

	return finalize(target, basic, bonus, gas, in.GasUsage)
}

// =============================================================================
// ECOMMERCE WH - Target-based fuel allowance
// =============================================================================

type ecommerceWHFormula struct{}

func (ecommerceWHFormula) Category() Category { return CategoryEcommerceWH }

func (ecommerceWHFormula) Compute(in FormulaInput) Breakdown {
	p := in.Params
	target := ProjectTarget(CategoryEcommerceWH, in.NominalTarget, in.DaysSinceJoining)

	basic := target / ecommerceWHDailyRate * p.BasicRate
	bonus := flatBonus(in.TotalOrders-target, p.BonusRate, p.PenaltyRate)

	// Warehouse drivers run fixed routes: diesel is owed against the target
	// workload, not against delivered order counts.
	gas := math.Min(target/ecommerceWHDailyRate*p.GasRate, p.GasCap)

	return finalize(target, basic, bonus, gas, in.GasUsage)
}

// =============================================================================
// ECOMMERCE - Revenue-driven
// =============================================================================

// Revenue-bonus schedule: the first band of surplus revenue pays at the
// higher share, the remainder at the lower one.
const (
	ecommerceBonusBand      = 4000.0
	ecommerceBonusHighShare = 0.55
	ecommerceBonusLowShare  = 0.50

	// Fuel allowance bounds: a share of revenue, capped by the per-target
	// diesel budget and the absolute cap.
	ecommerceGasRevenueShare = 0.068
	ecommerceGasPerDay       = 15.06
)

type ecommerceFormula struct{}

func (ecommerceFormula) Category() Category { return CategoryEcommerce }

func (ecommerceFormula) Compute(in FormulaInput) Breakdown {
	p := in.Params
	target := ProjectTarget(CategoryEcommerce, in.NominalTarget, in.DaysSinceJoining)

	// Basic pay is revenue-share, capped by the target-derived salary.
	basic := math.Min(in.TotalRevenue*p.RevenueCoefficient, target/ecommerceDailyRate*p.BasicRate)

	surplus := math.Max(0, in.TotalRevenue-target)
	var bonus float64
	if surplus <= ecommerceBonusBand {
		bonus = surplus * ecommerceBonusHighShare
	} else {
		bonus = ecommerceBonusBand*ecommerceBonusHighShare + (surplus-ecommerceBonusBand)*ecommerceBonusLowShare
	}

	gas := math.Min(ecommerceGasRevenueShare*in.TotalRevenue, target/ecommerceDailyRate*ecommerceGasPerDay)
	gas = math.Min(gas, p.GasCap)

	return finalize(target, basic, bonus, gas, in.GasUsage)
}

// =============================================================================
// AJEER - No tenure proration, tiered bonus
// =============================================================================

var ajeerTiers = TierSchedule{
	{Size: 299, Rate: 6},
	{Size: 100, Rate: 7},
	{Size: 100, Rate: 8},
	{Size: math.Inf(1), Rate: 9},
}

type ajeerFormula struct{}

func (ajeerFormula) Category() Category { return CategoryAjeer }

func (ajeerFormula) Compute(in FormulaInput) Breakdown {
	p := in.Params
	target := in.NominalTarget // Ajeer contracts carry no tenure cap

	basic := target / ajeerBasicDivisor * p.BasicRate

	surplus := in.TotalOrders - target
	var bonus float64
	if surplus > 0 {
		bonus = ajeerTiers.Amount(surplus)
	} else {
		bonus = surplus * p.PenaltyRate
	}

	gas := math.Min(in.TotalOrders*p.GasRate, p.GasCap)

	return finalize(target, basic, bonus, gas, in.GasUsage)
}
