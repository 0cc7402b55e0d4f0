/*
assembler_test.go - Settlement orchestration tests

PURPOSE:
  Validates the end-to-end Compute flow against a fake metric source:
  request validation, the "All" fan-out, per-row skip policy, batch abort on
  upstream failure, and the empty-result sentinel.
*/
package settlement_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barq/settlement-engine/settlement"
)

// =============================================================================
// TEST INFRASTRUCTURE
// =============================================================================

// fakeSource serves canned rows per category and can fail selected fetches.
type fakeSource struct {
	rows    map[settlement.Category][]settlement.RawMetricRow
	failFor map[settlement.Category]error
	fetched []settlement.Category
}

func (f *fakeSource) FetchRows(_ context.Context, cat settlement.Category, _ settlement.Period) ([]settlement.RawMetricRow, error) {
	f.fetched = append(f.fetched, cat)
	if err, ok := f.failFor[cat]; ok {
		return nil, err
	}
	return f.rows[cat], nil
}

func newAssembler(src settlement.MetricSource) *settlement.Assembler {
	return &settlement.Assembler{
		Source: src,
		Now:    func() time.Time { return day(2025, time.March, 28) },
		Logf:   func(string, ...any) {},
	}
}

func row(id int64, joined string, orders, target, gas float64) settlement.RawMetricRow {
	return settlement.RawMetricRow{
		DriverID:      id,
		Name:          "Driver",
		JoiningDate:   joined,
		TotalOrders:   orders,
		NominalTarget: target,
		GasUsage:      gas,
	}
}

// =============================================================================
// VALIDATION
// =============================================================================

func TestComputeRejectsMissingFields(t *testing.T) {
	// GIVEN requests with a missing category, month, or year
	// WHEN Compute runs
	// THEN each returns a validation error without touching the source
	src := &fakeSource{}
	asm := newAssembler(src)
	ctx := context.Background()

	_, err := asm.Compute(ctx, "", 3, 2025, nil)
	assert.ErrorIs(t, err, settlement.ErrValidation)

	_, err = asm.Compute(ctx, "Motorcycle", 0, 2025, nil)
	assert.ErrorIs(t, err, settlement.ErrValidation)

	_, err = asm.Compute(ctx, "Motorcycle", 3, 0, nil)
	assert.ErrorIs(t, err, settlement.ErrValidation)

	assert.Empty(t, src.fetched, "validation failures must not reach the metric source")
}

func TestComputeRejectsUnknownCategory(t *testing.T) {
	// GIVEN a category name outside the enumerated set
	// WHEN Compute runs
	// THEN an invalid-category error is returned
	asm := newAssembler(&fakeSource{})

	_, err := asm.Compute(context.Background(), "Submarine", 3, 2025, nil)
	assert.ErrorIs(t, err, settlement.ErrInvalidCategory)
}

func TestComputeRejectsOutOfRangeMonth(t *testing.T) {
	// GIVEN a month outside 1..12
	// WHEN Compute runs
	// THEN the period resolution rejects it
	asm := newAssembler(&fakeSource{})

	_, err := asm.Compute(context.Background(), "Motorcycle", 13, 2025, nil)
	assert.ErrorIs(t, err, settlement.ErrValidation)
}

// =============================================================================
// SINGLE CATEGORY
// =============================================================================

func TestComputeSingleCategory(t *testing.T) {
	// GIVEN one Motorcycle row for the reference scenario
	// WHEN Compute runs for March 2025
	// THEN one fully-populated record comes back with period and meta fields
	src := &fakeSource{rows: map[settlement.Category][]settlement.RawMetricRow{
		settlement.CategoryMotorcycle: {row(1001, "2025-01-28", 300, 260, 100)},
	}}
	asm := newAssembler(src)

	result, err := asm.Compute(context.Background(), "Motorcycle", 3, 2025, nil)
	require.NoError(t, err)
	require.Len(t, result.Data, 1)

	rec := result.Data[0]
	assert.Equal(t, int64(1001), rec.DriverID)
	assert.Equal(t, settlement.CategoryMotorcycle, rec.Category)
	assert.Equal(t, 60, rec.DaysSinceJoining, "2025-01-28 through 2025-03-28 inclusive")
	assert.InDelta(t, 1040.00, rec.BasicSalary, 1e-9)
	assert.InDelta(t, 1375.00, rec.TotalSalary, 1e-9)
	assert.Equal(t, "2025-03-28", rec.GeneratedDate)
	assert.Equal(t, day(2025, time.February, 25), rec.Period.Start)
	assert.Equal(t, day(2025, time.March, 24), rec.Period.End)

	assert.Equal(t, []settlement.Category{settlement.CategoryMotorcycle}, result.Meta.Categories)
	assert.Equal(t, 3, result.Meta.Period.Month)
	assert.Equal(t, 2025, result.Meta.Period.Year)
	assert.Equal(t, 1, result.Meta.Count)
}

func TestComputeAppliesCustomParams(t *testing.T) {
	// GIVEN a per-invocation bonus rate override
	// WHEN Compute runs
	// THEN the surplus pays at the overridden rate
	src := &fakeSource{rows: map[settlement.Category][]settlement.RawMetricRow{
		settlement.CategoryMotorcycle: {row(1001, "2024-01-01", 300, 260, 100)},
	}}
	asm := newAssembler(src)

	result, err := asm.Compute(context.Background(), "Motorcycle", 3, 2025,
		map[string]settlement.CustomParams{
			"Motorcycle": {"motorcycle_bonus_rate": 10},
		})
	require.NoError(t, err)

	assert.InDelta(t, 400.00, result.Data[0].BonusAmount, 1e-9, "40 surplus orders at 10 each")
}

// =============================================================================
// ALL FAN-OUT
// =============================================================================

func TestComputeAllCoversEveryCategory(t *testing.T) {
	// GIVEN rows in two categories and none in the rest
	// WHEN Compute runs for "All"
	// THEN every category is fetched, empty ones are skipped without error,
	//      and the records concatenate
	src := &fakeSource{rows: map[settlement.Category][]settlement.RawMetricRow{
		settlement.CategoryMotorcycle: {row(1001, "2024-01-01", 300, 260, 100)},
		settlement.CategoryAjeer:      {row(4001, "2024-06-01", 450, 400, 300)},
	}}
	asm := newAssembler(src)

	result, err := asm.Compute(context.Background(), settlement.CategoryAll, 3, 2025, nil)
	require.NoError(t, err)

	assert.ElementsMatch(t, settlement.Categories(), src.fetched)
	assert.Equal(t, 2, result.Meta.Count)
	assert.Equal(t, settlement.Categories(), result.Meta.Categories)
}

func TestComputeAllWithNoRowsAnywhereIsNoResults(t *testing.T) {
	// GIVEN zero rows for every category
	// WHEN Compute runs for "All"
	// THEN the empty-result sentinel is returned, not a failure
	asm := newAssembler(&fakeSource{})

	_, err := asm.Compute(context.Background(), settlement.CategoryAll, 3, 2025, nil)
	assert.ErrorIs(t, err, settlement.ErrNoResults)
}

func TestComputeUpstreamFailureAbortsBatch(t *testing.T) {
	// GIVEN one category whose fetch fails while another has rows
	// WHEN Compute runs for "All"
	// THEN the whole batch aborts with an upstream error rather than
	//      publishing a partial payout run
	boom := errors.New("warehouse gateway timeout")
	src := &fakeSource{
		rows: map[settlement.Category][]settlement.RawMetricRow{
			settlement.CategoryMotorcycle: {row(1001, "2024-01-01", 300, 260, 100)},
		},
		failFor: map[settlement.Category]error{
			settlement.CategoryFoodTrial: boom,
		},
	}
	asm := newAssembler(src)

	result, err := asm.Compute(context.Background(), settlement.CategoryAll, 3, 2025, nil)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, settlement.ErrUpstreamFetch)
	assert.ErrorIs(t, err, boom, "the source failure stays in the chain")
}

// =============================================================================
// ROW SKIP POLICY
// =============================================================================

func TestComputeSkipsRowsWithBadJoiningDates(t *testing.T) {
	// GIVEN a batch where one row carries an unparseable joining date
	// WHEN Compute runs
	// THEN that row is skipped and the rest of the batch settles
	src := &fakeSource{rows: map[settlement.Category][]settlement.RawMetricRow{
		settlement.CategoryMotorcycle: {
			row(1001, "2024-01-01", 300, 260, 100),
			row(1002, "01/15/2024", 280, 260, 90), // Wrong format
			row(1003, "2024-05-10", 310, 260, 110),
		},
	}}
	asm := newAssembler(src)

	result, err := asm.Compute(context.Background(), "Motorcycle", 3, 2025, nil)
	require.NoError(t, err)
	require.Len(t, result.Data, 2)

	assert.Equal(t, int64(1001), result.Data[0].DriverID)
	assert.Equal(t, int64(1003), result.Data[1].DriverID)
	assert.Equal(t, 2, result.Meta.Count)
}

func TestComputeSingleCategoryWithOnlyBadRowsIsNoResults(t *testing.T) {
	// GIVEN a category whose only row has an unparseable joining date
	// WHEN Compute runs
	// THEN the run yields the empty-result sentinel
	src := &fakeSource{rows: map[settlement.Category][]settlement.RawMetricRow{
		settlement.CategoryMotorcycle: {row(1001, "not-a-date", 300, 260, 100)},
	}}
	asm := newAssembler(src)

	_, err := asm.Compute(context.Background(), "Motorcycle", 3, 2025, nil)
	assert.ErrorIs(t, err, settlement.ErrNoResults)
}
