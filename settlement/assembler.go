/*
assembler.go - Settlement orchestration across categories

PURPOSE:
  Drives one settlement run: resolve the category list, resolve each
  category's pay period, fetch the aggregated rows from the metric source,
  project targets, apply the category formula, and merge period/meta fields
  into one record per driver.

FLOW:
  Compute(category, month, year, customParams)
    validate request  →  ValidationError / InvalidCategoryError
    per category:
      ResolvePeriod   →  inclusive window
      Source.FetchRows→  UpstreamError aborts the whole batch
      zero rows       →  category skipped, no error
      per row:
        parse join date → bad dates skipped and logged
        ResolveParams   → defaults + per-invocation overrides
        Formula.Compute → breakdown
    zero records overall → ErrNoResults (empty result, not a failure)

CONCURRENCY:
  Purely synchronous and stateless per invocation. Concurrent Compute calls
  are safe: nothing is retained between calls.

SEE ALSO:
  - types.go: MetricSource contract
  - errors.go: Error taxonomy
*/
package settlement

import (
	"context"
	"log"
	"time"
)

// Assembler computes settlement records. Source is required; Now and Logf
// default to the wall clock and the standard logger.
type Assembler struct {
	Source MetricSource

	// Now supplies the current date for tenure and the generated_date stamp.
	Now func() time.Time

	// Logf receives skipped-row and empty-category notices.
	Logf func(format string, args ...any)
}

// Result is the output of one settlement run.
type Result struct {
	Data []SettlementRecord `json:"data"`
	Meta Meta               `json:"meta"`
}

// Meta describes which categories and request period a result covers.
type Meta struct {
	Categories []Category `json:"categories"`
	Period     MetaPeriod `json:"period"`
	Count      int        `json:"count"`
}

// MetaPeriod echoes the requested month and year.
type MetaPeriod struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

// Compute runs one settlement calculation. The category is either one of the
// seven names or the "All" sentinel. An upstream fetch failure for any
// category aborts the whole batch; a batch where every category yields zero
// rows returns ErrNoResults.
func (a *Assembler) Compute(ctx context.Context, category string, month, year int, custom map[string]CustomParams) (*Result, error) {
	if category == "" {
		return nil, &ValidationError{Field: "category", Reason: "required"}
	}
	if month == 0 {
		return nil, &ValidationError{Field: "month", Reason: "required"}
	}
	if year == 0 {
		return nil, &ValidationError{Field: "year", Reason: "required"}
	}

	categories, err := ResolveCategories(category)
	if err != nil {
		return nil, err
	}

	var records []SettlementRecord
	for _, cat := range categories {
		period, err := ResolvePeriod(cat, month, year)
		if err != nil {
			return nil, err
		}

		rows, err := a.Source.FetchRows(ctx, cat, period)
		if err != nil {
			return nil, &UpstreamError{Category: cat, Err: err}
		}
		if len(rows) == 0 {
			a.logf("no rows for category %q in %s", cat, period)
			continue
		}

		params := ResolveParams(cat, custom[string(cat)])
		records = append(records, a.settle(cat, period, rows, params)...)
	}

	if len(records) == 0 {
		return nil, ErrNoResults
	}

	return &Result{
		Data: records,
		Meta: Meta{
			Categories: categories,
			Period:     MetaPeriod{Month: month, Year: year},
			Count:      len(records),
		},
	}, nil
}

// settle applies one category's formula to its rows. Rows with unparseable
// joining dates are skipped and logged; the rest of the batch proceeds.
func (a *Assembler) settle(cat Category, period Period, rows []RawMetricRow, params Params) []SettlementRecord {
	formula, err := FormulaFor(cat)
	if err != nil {
		// Unreachable for categories produced by ResolveCategories; guards
		// future category additions that miss registration.
		a.logf("no formula registered for category %q", cat)
		return nil
	}

	today := a.now()
	generated := today.Format(DateLayout)

	records := make([]SettlementRecord, 0, len(rows))
	for _, row := range rows {
		joined, err := time.Parse(DateLayout, row.JoiningDate)
		if err != nil {
			a.logf("skipping row: %v", &JoinDateError{DriverID: row.DriverID, Value: row.JoiningDate, Err: err})
			continue
		}
		days := DaysSinceJoining(joined, today)

		breakdown := formula.Compute(FormulaInput{
			TotalOrders:      row.TotalOrders,
			NominalTarget:    row.NominalTarget,
			GasUsage:         row.GasUsage,
			DaysSinceJoining: days,
			TotalRevenue:     row.TotalRevenue,
			Params:           params,
		})

		records = append(records, SettlementRecord{
			RawMetricRow:     row,
			EffectiveTarget:  breakdown.EffectiveTarget,
			BasicSalary:      breakdown.BasicSalary,
			BonusAmount:      breakdown.BonusAmount,
			GasDeserved:      breakdown.GasDeserved,
			GasDifference:    breakdown.GasDifference,
			TotalSalary:      breakdown.TotalSalary,
			DaysSinceJoining: days,
			Period:           period,
			GeneratedDate:    generated,
			Category:         cat,
		})
	}

	a.logf("settled %d of %d rows for category %q", len(records), len(rows), cat)
	return records
}

func (a *Assembler) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now().UTC()
}

func (a *Assembler) logf(format string, args ...any) {
	if a.Logf != nil {
		a.Logf(format, args...)
		return
	}
	log.Printf(format, args...)
}
