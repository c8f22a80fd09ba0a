package chrono

import "fmt"

// LocalTime is a time of day without a time zone or date component,
// according to ISO 8601. It represents whole seconds since midnight,
// in the range [0, 86399]. It carries no sub-second precision:
// sub-second arithmetic is passthrough only, handled by the
// high-resolution extension (hires.go), not by the base time-of-day type.
type LocalTime struct {
	secs int
}

// LocalTimeOf returns a LocalTime that represents the specified hour,
// minute and second. A valid time is between 00:00:00 and 23:59:59. If an
// invalid time is specified, this function panics.
func LocalTimeOf(hour, min, sec int) LocalTime {
	out, err := makeTime(hour, min, sec)
	if err != nil {
		panic(err.Error())
	}
	return out
}

func makeTime(hour, min, sec int) (LocalTime, error) {
	if hour < 0 || hour > 23 || min < 0 || min > 59 || sec < 0 || sec > 59 {
		return LocalTime{}, fmt.Errorf("%w: %02d:%02d:%02d", ErrInvalidTime, hour, min, sec)
	}
	return LocalTime{secs: hour*3600 + min*60 + sec}, nil
}

// Clock returns the hour, minute and second represented by t.
func (t LocalTime) Clock() (hour, min, sec int) {
	hour = t.secs / 3600
	min = (t.secs % 3600) / 60
	sec = t.secs % 60
	return
}

// Compare compares t with u. If t is before u, it returns -1; if t is
// after u, it returns 1; if they're the same, it returns 0.
func (t LocalTime) Compare(u LocalTime) int {
	switch {
	case t.secs < u.secs:
		return -1
	case t.secs > u.secs:
		return 1
	default:
		return 0
	}
}

// Check reports whether t satisfies the invariant seconds ∈ [0, 86399].
func (t LocalTime) Check() bool {
	return t.secs >= 0 && t.secs < 86400
}

func (t LocalTime) String() string {
	hour, min, sec := t.Clock()
	return fmt.Sprintf("%02d:%02d:%02d", hour, min, sec)
}

// addSeconds adds (possibly negative) seconds to t, returning the
// normalized time-of-day and the number of whole days the addition
// carried into or out of.
func addSeconds(t LocalTime, secs int) (LocalTime, int) {
	total := t.secs + secs
	days := 0
	for total >= 86400 {
		total -= 86400
		days++
	}
	for total < 0 {
		total += 86400
		days--
	}
	return LocalTime{secs: total}, days
}
