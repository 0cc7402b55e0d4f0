/*
period_test.go - Pay period window tests

PURPOSE:
  Validates the category-dependent period resolution: the standard 25th→24th
  window, the Ajeer 15th→14th window, the year-boundary wraps, and the
  contiguity guarantee between consecutive months.
*/
package settlement_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barq/settlement-engine/settlement"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func TestStandardPeriodWindow(t *testing.T) {
	// GIVEN a non-Ajeer category and a mid-year month
	// WHEN the period is resolved
	// THEN it runs from the 25th of the prior month through the 24th
	p, err := settlement.ResolvePeriod(settlement.CategoryMotorcycle, 3, 2025)
	require.NoError(t, err)

	assert.Equal(t, day(2025, time.February, 25), p.Start)
	assert.Equal(t, day(2025, time.March, 24), p.End)
}

func TestStandardPeriodJanuaryWrapsYear(t *testing.T) {
	// GIVEN a January request
	// WHEN the period is resolved
	// THEN the start falls in December of the previous year
	p, err := settlement.ResolvePeriod(settlement.CategoryFoodTrial, 1, 2025)
	require.NoError(t, err)

	assert.Equal(t, day(2024, time.December, 25), p.Start)
	assert.Equal(t, day(2025, time.January, 24), p.End)
}

func TestAjeerPeriodWindow(t *testing.T) {
	// GIVEN the Ajeer category
	// WHEN the period is resolved
	// THEN it runs from the 15th of the target month through the next 14th
	p, err := settlement.ResolvePeriod(settlement.CategoryAjeer, 3, 2025)
	require.NoError(t, err)

	assert.Equal(t, day(2025, time.March, 15), p.Start)
	assert.Equal(t, day(2025, time.April, 14), p.End)
}

func TestAjeerPeriodDecemberWrapsYear(t *testing.T) {
	// GIVEN an Ajeer December request
	// WHEN the period is resolved
	// THEN the end falls in January of the following year
	p, err := settlement.ResolvePeriod(settlement.CategoryAjeer, 12, 2025)
	require.NoError(t, err)

	assert.Equal(t, day(2025, time.December, 15), p.Start)
	assert.Equal(t, day(2026, time.January, 14), p.End)
}

func TestPeriodRejectsOutOfRangeMonth(t *testing.T) {
	// GIVEN month values outside 1..12
	// WHEN the period is resolved
	// THEN a validation error is returned
	for _, month := range []int{0, 13, -1} {
		_, err := settlement.ResolvePeriod(settlement.CategoryMotorcycle, month, 2025)
		assert.ErrorIs(t, err, settlement.ErrValidation, "month %d", month)
	}
}

func TestConsecutivePeriodsAreContiguous(t *testing.T) {
	// GIVEN any category
	// WHEN periods for consecutive months are resolved (across a year boundary)
	// THEN each period ends exactly one day before the next one starts
	for _, cat := range settlement.Categories() {
		prev, err := settlement.ResolvePeriod(cat, 1, 2025)
		require.NoError(t, err)

		month, year := 2, 2025
		for i := 0; i < 13; i++ {
			next, err := settlement.ResolvePeriod(cat, month, year)
			require.NoError(t, err)

			assert.Equal(t, next.Start, prev.End.AddDate(0, 0, 1),
				"%s: period ending %s must abut the next period", cat, prev.End.Format(settlement.DateLayout))

			prev = next
			month++
			if month > 12 {
				month, year = 1, year+1
			}
		}
	}
}

func TestPeriodContainsInclusiveBounds(t *testing.T) {
	// GIVEN a resolved period
	// WHEN Contains is checked at the boundaries
	// THEN both endpoints are inside and the adjacent days are outside
	p, err := settlement.ResolvePeriod(settlement.CategoryEcommerce, 6, 2025)
	require.NoError(t, err)

	assert.True(t, p.Contains(p.Start))
	assert.True(t, p.Contains(p.End))
	assert.False(t, p.Contains(p.Start.AddDate(0, 0, -1)))
	assert.False(t, p.Contains(p.End.AddDate(0, 0, 1)))
}
