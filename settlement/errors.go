/*
errors.go - Centralized error types for the settlement engine

PURPOSE:
  All engine error types in one place for consistency and discoverability.
  Every failure path returns a structured error that callers can tell apart
  from a valid empty result.

ERROR CATEGORIES:
  1. Validation errors  - Missing or malformed request parameters
  2. Category errors    - Category name outside the enumerated set
  3. Upstream errors    - The external metric source failed
  4. Result errors      - The full category set yielded zero records
  5. Row errors         - A single row could not be processed (skip + log)

USAGE:
  API layers classify with the helpers:

    if settlement.IsClientError(err) { ... 400 ... }
    if errors.Is(err, settlement.ErrNoResults) { ... 404 ... }

SEE ALSO:
  - assembler.go: Produces these errors
  - api/handlers.go: Maps them to HTTP statuses
*/
package settlement

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrValidation is returned when a required request parameter is missing
	// or malformed. No computation is attempted.
	ErrValidation = errors.New("invalid request parameters")

	// ErrInvalidCategory is returned when a category name is not in the
	// enumerated set (and is not the "All" sentinel).
	ErrInvalidCategory = errors.New("invalid category")

	// ErrNoResults is returned when every requested category yielded zero
	// records. This is an empty result, not a system failure.
	ErrNoResults = errors.New("no results for the given period")

	// ErrUpstreamFetch is returned when the external metric source fails.
	ErrUpstreamFetch = errors.New("metric source fetch failed")

	// ErrBadJoinDate marks a row whose joining date cannot be parsed. Rows
	// with this error are skipped and logged; processing continues.
	ErrBadJoinDate = errors.New("unparseable joining date")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// ValidationError reports a missing or malformed request parameter.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %q: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// InvalidCategoryError reports a category name outside the enumerated set.
type InvalidCategoryError struct {
	Name string
}

func (e *InvalidCategoryError) Error() string {
	return fmt.Sprintf("invalid category: %q", e.Name)
}

func (e *InvalidCategoryError) Unwrap() error { return ErrInvalidCategory }

// UpstreamError reports a metric source failure for one category. In an
// "All" batch the failure aborts the whole batch; the category identifies
// which fetch failed.
type UpstreamError struct {
	Category Category
	Err      error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("fetching rows for category %q: %v", e.Category, e.Err)
}

func (e *UpstreamError) Unwrap() error { return ErrUpstreamFetch }

// JoinDateError reports a row whose joining date could not be parsed. The
// assembler logs it and skips the row.
type JoinDateError struct {
	DriverID int64
	Value    string
	Err      error
}

func (e *JoinDateError) Error() string {
	return fmt.Sprintf("driver %d: joining date %q: %v", e.DriverID, e.Value, e.Err)
}

func (e *JoinDateError) Unwrap() error { return ErrBadJoinDate }

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsClientError returns true if the error is due to invalid caller input.
func IsClientError(err error) bool {
	return errors.Is(err, ErrValidation) || errors.Is(err, ErrInvalidCategory)
}

// IsNotFound returns true if the error indicates an empty result set rather
// than a failure.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNoResults)
}

// IsUpstream returns true if the error originated in the external metric
// source.
func IsUpstream(err error) bool {
	return errors.Is(err, ErrUpstreamFetch)
}
