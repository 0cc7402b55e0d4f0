/*
Package settlement provides the core driver-compensation engine.

PURPOSE:
  This package computes periodic settlement records for a roster of couriers.
  Couriers are partitioned into contractual categories, each with its own pay
  period window, tenure-prorated target, and tiered pay formula. The engine
  is a pure computation over tabular input: it consumes aggregated metric
  rows from an external source and produces one settlement record per driver.

KEY CONCEPTS IN THIS FILE (types.go):
  - RawMetricRow: One driver's aggregated metrics for a period (input)
  - SettlementRecord: The computed pay breakdown for one driver (output)
  - Period: The inclusive date window one settlement run covers
  - MetricSource: The external collaborator that supplies raw rows

DESIGN PRINCIPLES:
  1. Purity: Formulas have no hidden state; identical inputs yield
     identical outputs
  2. Precision: Monetary outputs round to 2 decimals exactly once, at
     record construction, using decimal.Decimal
  3. Closed dispatch: The seven categories are a closed set; unknown
     category names are rejected at the boundary
  4. Statelessness: Records are built per invocation and never mutated
     after assembly

USAGE:
  asm := &settlement.Assembler{Source: src}
  result, err := asm.Compute(ctx, "Motorcycle", 3, 2025, nil)

SEE ALSO:
  - formula.go: Formula interface and per-category dispatch
  - period.go: Category-dependent pay period windows
  - assembler.go: Orchestration across categories
*/
package settlement

import (
	"context"
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// RAW METRIC ROW - Aggregated input for one driver
// =============================================================================

// RawMetricRow is one driver's metrics aggregated over a pay period, already
// filtered to a single category's population. The JSON keys are the warehouse
// column names and are part of the input contract; they are case-sensitive
// and must not be renamed.
type RawMetricRow struct {
	DriverID      int64   `json:"BARQ_ID"`
	IBAN          string  `json:"iban"`
	IDNumber      string  `json:"id_number"`
	JoiningDate   string  `json:"joining_Date"` // YYYY-MM-DD
	Name          string  `json:"Name"`
	Status        string  `json:"Status"`
	Sponsorship   string  `json:"Sponsorshipstatus"`
	Project       string  `json:"PROJECT"`
	Supervisor    string  `json:"Supervisor"`
	TotalOrders   float64 `json:"Total_Orders"`
	TotalRevenue  float64 `json:"Total_Revenue"`
	GasUsage      float64 `json:"Gas_Usage"`
	NominalTarget float64 `json:"TARGET"`
}

// =============================================================================
// PERIOD - Inclusive date window for one settlement run
// =============================================================================

// Period is the inclusive [Start, End] window metrics are aggregated over.
// Windows are category-dependent and not calendar-month aligned; see
// ResolvePeriod.
type Period struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls within the period (inclusive bounds).
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Start) && !t.After(p.End)
}

func (p Period) String() string {
	return "[" + p.Start.Format(DateLayout) + ", " + p.End.Format(DateLayout) + "]"
}

// MarshalJSON renders the period with the start_date/end_date keys the
// dashboard expects.
func (p Period) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		StartDate string `json:"start_date"`
		EndDate   string `json:"end_date"`
	}{
		StartDate: p.Start.Format(DateLayout),
		EndDate:   p.End.Format(DateLayout),
	})
}

// UnmarshalJSON accepts the same shape MarshalJSON produces.
func (p *Period) UnmarshalJSON(data []byte) error {
	var raw struct {
		StartDate string `json:"start_date"`
		EndDate   string `json:"end_date"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	start, err := time.Parse(DateLayout, raw.StartDate)
	if err != nil {
		return err
	}
	end, err := time.Parse(DateLayout, raw.EndDate)
	if err != nil {
		return err
	}
	p.Start, p.End = start, end
	return nil
}

// DateLayout is the wire format for all dates in the input and output
// contracts.
const DateLayout = "2006-01-02"

// =============================================================================
// SETTLEMENT RECORD - Computed output for one driver
// =============================================================================

// SettlementRecord is the pay breakdown for one driver in one period. It
// carries the raw row unchanged (the dashboard renders those columns as-is)
// plus the computed components. Monetary fields are already rounded to 2
// decimals; TotalSalary is derived from the rounded components so that
// TotalSalary == max(0, BasicSalary+BonusAmount+GasDifference) holds exactly.
type SettlementRecord struct {
	RawMetricRow

	EffectiveTarget  float64  `json:"target"`
	BasicSalary      float64  `json:"Basic_Salary"`
	BonusAmount      float64  `json:"Bonus_Amount"`
	GasDeserved      float64  `json:"Gas_Deserved"`
	GasDifference    float64  `json:"Gas_Difference"`
	TotalSalary      float64  `json:"Total_Salary"`
	DaysSinceJoining int      `json:"days_since_joining"`
	Period           Period   `json:"period"`
	GeneratedDate    string   `json:"generated_date"`
	Category         Category `json:"category"`
}

// =============================================================================
// METRIC SOURCE - External row supplier (QueryPlanner boundary)
// =============================================================================

// MetricSource supplies the aggregated metric rows for one category and
// period. Implementations own population filtering: every returned row must
// already belong to the requested category. The call is synchronous and may
// fail; the assembler surfaces failures per category.
type MetricSource interface {
	FetchRows(ctx context.Context, category Category, period Period) ([]RawMetricRow, error)
}

// =============================================================================
// MONETARY ROUNDING
// =============================================================================

// round2 rounds a monetary value to 2 decimal places, half away from zero.
// All settlement components pass through here exactly once, at the point of
// construction.
func round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
