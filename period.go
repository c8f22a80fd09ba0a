package chrono

import (
	"fmt"
	"strings"
)

// Period is a time interval identified by any two of {start, end,
// duration}; the third is always derivable from the other two.
type Period struct {
	start    *OffsetDateTime
	end      *OffsetDateTime
	duration *Duration
}

// NewPeriod constructs a Period from any two of its three components,
// deriving the third. It returns ErrIncompletePeriod if fewer than two of
// start, end and duration are non-nil.
func NewPeriod(start, end *OffsetDateTime, duration *Duration) (Period, error) {
	supplied := 0
	if start != nil {
		supplied++
	}
	if end != nil {
		supplied++
	}
	if duration != nil {
		supplied++
	}
	if supplied < 2 {
		return Period{}, fmt.Errorf("%w: need at least two of start/end/duration", ErrIncompletePeriod)
	}

	switch {
	case end == nil:
		derived := start.Add(*duration)
		end = &derived
	case start == nil:
		derived := end.Sub(*duration)
		start = &derived
	case duration == nil:
		derived := start.DurationUntil(*end)
		duration = &derived
	}
	return Period{start: start, end: end, duration: duration}, nil
}

// Start returns the period's start instant.
func (p Period) Start() OffsetDateTime { return *p.start }

// End returns the period's end instant.
func (p Period) End() OffsetDateTime { return *p.end }

// Duration returns the period's duration.
func (p Period) Duration() Duration { return *p.duration }

// ParsePeriod parses s as an ISO 8601 period: "<start>/<end>",
// "<start>/<duration>", "<duration>/<end>", or a bare duration (which
// implicitly starts "now").
func ParsePeriod(s string) (Period, error) {
	parts := strings.SplitN(s, "/", 2)

	if len(parts) == 1 {
		d, err := ParseDuration(parts[0])
		if err != nil {
			return Period{}, err
		}
		now := Now()
		return NewPeriod(&now, nil, &d)
	}

	left, right := parts[0], parts[1]

	var start, end *OffsetDateTime
	var duration *Duration

	if strings.HasPrefix(left, "P") {
		d, err := ParseDuration(left)
		if err != nil {
			return Period{}, err
		}
		duration = &d
	} else {
		t, err := Parse(left)
		if err != nil {
			return Period{}, err
		}
		start = &t
	}

	if strings.HasPrefix(right, "P") {
		d, err := ParseDuration(right)
		if err != nil {
			return Period{}, err
		}
		duration = &d
	} else {
		t, err := Parse(right)
		if err != nil {
			return Period{}, err
		}
		end = &t
	}

	return NewPeriod(start, end, duration)
}
