/*
params.go - Per-category formula parameters

PURPOSE:
  Each category has an immutable set of default rate and cap constants.
  Callers may override individual constants per invocation via a CustomParams
  map keyed by the documented coefficient names (e.g. "motorcycle_bonus_rate").
  Overrides are merged into a fresh Params value before formula evaluation;
  defaults are never mutated and no ambient configuration is consulted.

CONTRACTUAL DEFAULTS:
  The default values are business constants negotiated with the courier
  categories. They are not tunables: changing one changes real pay.

OVERRIDE KEYS:
  <prefix>_basic_salary_rate
  <prefix>_bonus_rate
  <prefix>_penalty_rate
  <prefix>_gas_rate
  <prefix>_gas_cap
  <prefix>_revenue_coefficient   (Ecommerce only)

  where <prefix> is the snake_case category name: motorcycle, food_trial,
  food_inhouse_new, food_inhouse_old, ecommerce_wh, ecommerce, ajeer.

SEE ALSO:
  - formulas.go: Consumes Params in each category formula
*/
package settlement

// CustomParams maps coefficient names to numeric overrides for a single
// category. Absent keys fall back to the category defaults. Supplied per
// invocation, never persisted.
type CustomParams map[string]float64

// Params holds the resolved rate and cap constants one formula evaluation
// uses. RevenueCoefficient is only meaningful for Ecommerce; BonusRate is
// unused by the tiered categories (Food In-House Old, Ajeer).
type Params struct {
	BasicRate          float64
	BonusRate          float64
	PenaltyRate        float64
	GasRate            float64
	GasCap             float64
	RevenueCoefficient float64
}

// =============================================================================
// DEFAULTS - Contractual per-category constants
// =============================================================================

var defaultParams = map[Category]Params{
	CategoryMotorcycle: {
		BasicRate:   53.33333,
		BonusRate:   6,
		PenaltyRate: 10,
		GasRate:     0.65,
		GasCap:      261,
	},
	CategoryFoodTrial: {
		BasicRate:   66.66666667,
		BonusRate:   7,
		PenaltyRate: 10,
		GasRate:     2.11,
		GasCap:      826,
	},
	CategoryFoodInhouseNew: {
		BasicRate:   66.66666667,
		BonusRate:   7,
		PenaltyRate: 10,
		GasRate:     1.739,
		GasCap:      826,
	},
	CategoryFoodInhouseOld: {
		BasicRate:   66.66666667,
		PenaltyRate: 10,
		GasRate:     2.065,
		GasCap:      826,
	},
	CategoryEcommerceWH: {
		BasicRate:   66.666667,
		BonusRate:   8,
		PenaltyRate: 10,
		GasRate:     15.03,
		GasCap:      452,
	},
	CategoryEcommerce: {
		BasicRate:          66.66666667,
		RevenueCoefficient: 0.3016591252,
		GasCap:             452,
	},
	CategoryAjeer: {
		BasicRate:   53.33333,
		PenaltyRate: 10,
		GasRate:     2.065,
		GasCap:      826,
	},
}

var paramKeyPrefix = map[Category]string{
	CategoryMotorcycle:     "motorcycle",
	CategoryFoodTrial:      "food_trial",
	CategoryFoodInhouseNew: "food_inhouse_new",
	CategoryFoodInhouseOld: "food_inhouse_old",
	CategoryEcommerceWH:    "ecommerce_wh",
	CategoryEcommerce:      "ecommerce",
	CategoryAjeer:          "ajeer",
}

// DefaultParams returns a copy of the contractual defaults for a category.
func DefaultParams(c Category) Params {
	return defaultParams[c]
}

// ResolveParams merges per-invocation overrides over the category defaults.
// Unknown keys are ignored; the defaults table is never modified.
func ResolveParams(c Category, overrides CustomParams) Params {
	p := defaultParams[c]
	if len(overrides) == 0 {
		return p
	}

	prefix := paramKeyPrefix[c]
	if v, ok := overrides[prefix+"_basic_salary_rate"]; ok {
		p.BasicRate = v
	}
	if v, ok := overrides[prefix+"_bonus_rate"]; ok {
		p.BonusRate = v
	}
	if v, ok := overrides[prefix+"_penalty_rate"]; ok {
		p.PenaltyRate = v
	}
	if v, ok := overrides[prefix+"_gas_rate"]; ok {
		p.GasRate = v
	}
	if v, ok := overrides[prefix+"_gas_cap"]; ok {
		p.GasCap = v
	}
	if v, ok := overrides[prefix+"_revenue_coefficient"]; ok {
		p.RevenueCoefficient = v
	}
	return p
}
