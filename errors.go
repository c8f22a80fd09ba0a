package chrono

import "errors"

// Sentinel errors returned (via fmt.Errorf's %w) by the parser, arithmetic,
// and period constructors. Callers should use errors.Is to test for these,
// since the wrapping message always names the offending subfield or value.
var (
	// ErrInvalidDate indicates a Gregorian, ordinal, or ISO week date with an
	// out-of-range component (month, day, or week).
	ErrInvalidDate = errors.New("chrono: invalid date")

	// ErrInvalidTime indicates a time-of-day with an out-of-range hour,
	// minute, or second.
	ErrInvalidTime = errors.New("chrono: invalid time")

	// ErrInvalidOffset indicates a malformed timezone offset suffix.
	ErrInvalidOffset = errors.New("chrono: invalid offset")

	// ErrInvalidDuration indicates a malformed ISO 8601 duration string.
	ErrInvalidDuration = errors.New("chrono: invalid duration")

	// ErrIncompletePeriod indicates a period string from which fewer than
	// two of {start, end, duration} could be recovered.
	ErrIncompletePeriod = errors.New("chrono: incomplete period")

	// ErrOutOfRange indicates arithmetic that would carry a value outside
	// the range this library can represent.
	ErrOutOfRange = errors.New("chrono: value out of range")
)
