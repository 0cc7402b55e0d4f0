/*
target.go - Tenure-based target proration

PURPOSE:
  A driver's nominal target assumes presence for the whole period. Recently
  joined drivers cannot be held to that, so the effective target is capped
  by tenure: min(nominal, days_since_joining × daily_rate). The daily rates
  are contractual per-category constants.

DAILY RATES:
  Motorcycle        40/3   (≈13.33 orders/day)
  Food Trial        13
  Food In-House     95/6   (≈15.83, both New and Old)
  Ecommerce WH      50/3   (≈16.67)
  Ecommerce         221    (revenue/day, not orders)
  Ajeer             no proration; the nominal target applies as-is

  The repeating rates are kept as exact fractions: the same constants divide
  the effective target in the basic-salary formulas, and truncated literals
  drift the pay by whole cents.

SEE ALSO:
  - formulas.go: Divides by the same constants for basic salary
*/
package settlement

import (
	"math"
	"time"
)

// Per-category daily rates. Shared between target proration and the
// basic-salary divisors; all nonzero by construction.
const (
	motorcycleDailyRate  = 40.0 / 3.0
	foodTrialDailyRate   = 13.0
	foodInhouseDailyRate = 95.0 / 6.0
	ecommerceWHDailyRate = 50.0 / 3.0
	ecommerceDailyRate   = 221.0
	ajeerBasicDivisor    = 40.0 / 3.0
)

// DailyRate returns the tenure daily rate for a category. Ajeer returns 0:
// it has no tenure proration.
func DailyRate(c Category) float64 {
	switch c {
	case CategoryMotorcycle:
		return motorcycleDailyRate
	case CategoryFoodTrial:
		return foodTrialDailyRate
	case CategoryFoodInhouseNew, CategoryFoodInhouseOld:
		return foodInhouseDailyRate
	case CategoryEcommerceWH:
		return ecommerceWHDailyRate
	case CategoryEcommerce:
		return ecommerceDailyRate
	default:
		return 0
	}
}

// DaysSinceJoining counts the days from joinDate to today, inclusive of the
// joining day, with a floor of 1.
func DaysSinceJoining(joinDate, today time.Time) int {
	days := int(today.Sub(joinDate).Hours()/24) + 1
	if days < 1 {
		return 1
	}
	return days
}

// ProjectTarget caps the nominal target by tenure for a category. Ajeer
// drivers keep their nominal target. Motorcycle ceils the nominal target
// before capping (warehouse targets for that category arrive fractional).
func ProjectTarget(c Category, nominal float64, daysSinceJoining int) float64 {
	if c == CategoryAjeer {
		return nominal
	}
	if c == CategoryMotorcycle {
		nominal = math.Ceil(nominal)
	}
	return math.Min(nominal, float64(daysSinceJoining)*DailyRate(c))
}
