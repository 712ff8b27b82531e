package analytics

import "errors"

// Sentinel errors shared by all engine packages. Callers are expected to
// match them with errors.Is after unwrapping.
var (
	// ErrInsufficientData is returned when fewer than 2 records/values are
	// supplied where a trend, regression or correlation needs at least 2,
	// or when a constant series makes correlation degenerate.
	ErrInsufficientData = errors.New("insufficient data points")

	// ErrInvalidRange is returned when a date or value range is internally
	// inconsistent (start after end). Raised at construction time, before
	// any analysis runs.
	ErrInvalidRange = errors.New("invalid range: start after end")

	// ErrLengthMismatch is returned when two series that must have equal
	// length (e.g. for correlation) do not.
	ErrLengthMismatch = errors.New("series length mismatch")

	// ErrUnknownMethod is returned when a closed-enum dispatch (outlier
	// method, prediction method) receives an unknown value.
	ErrUnknownMethod = errors.New("unknown method")
)

// Mathematically undefined results (e.g. coefficient of variation with a
// zero mean) are signaled in-band with nil pointers on the result type,
// not as errors.
