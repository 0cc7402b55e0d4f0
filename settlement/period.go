/*
period.go - Category-dependent pay period windows

PURPOSE:
  Resolves (category, month, year) into the inclusive date window one
  settlement run covers. Windows are contractual and not calendar-month
  aligned.

WINDOW FAMILIES:
  Ajeer:
    15th of the target month through the 14th of the following month.
    December wraps the end date into January of year+1.

  All other categories:
    25th of the prior month through the 24th of the target month.
    January wraps the start date into December of year-1.

CONTIGUITY:
  For a fixed category, consecutive (month, year) pairs produce contiguous,
  non-overlapping windows: the end of period N is exactly one day before the
  start of period N+1.

SEE ALSO:
  - assembler.go: Resolves one period per requested category
*/
package settlement

import "time"

// ResolvePeriod computes the pay period window for a category. The category
// is assumed valid (unknown names are rejected at the boundary by
// ParseCategory); month must be 1..12.
func ResolvePeriod(category Category, month, year int) (Period, error) {
	if month < 1 || month > 12 {
		return Period{}, &ValidationError{Field: "month", Reason: "must be between 1 and 12"}
	}

	if category == CategoryAjeer {
		return ajeerPeriod(month, year), nil
	}
	return standardPeriod(month, year), nil
}

// ajeerPeriod runs mid-month to mid-month: the 15th through the next 14th.
func ajeerPeriod(month, year int) Period {
	start := date(year, month, 15)
	if month == 12 {
		return Period{Start: start, End: date(year+1, 1, 14)}
	}
	return Period{Start: start, End: date(year, month+1, 14)}
}

// standardPeriod runs from the 25th of the prior month through the 24th of
// the target month.
func standardPeriod(month, year int) Period {
	end := date(year, month, 24)
	if month == 1 {
		return Period{Start: date(year-1, 12, 25), End: end}
	}
	return Period{Start: date(year, month-1, 25), End: end}
}

func date(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}
