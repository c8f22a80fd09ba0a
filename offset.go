package chrono

import "fmt"

// UTC represents Universal Coordinated Time (UTC).
const UTC = Offset(0)

// Offset represents a time zone offset from UTC, in whole seconds east of
// UTC. This package excludes timezone *database* lookups entirely: only
// fixed numeric offsets are modeled, never named zones or DST rules.
type Offset int

// OffsetOf returns the Offset represented by a number of hours and
// minutes. If hours is non-zero, the sign of minutes is ignored, e.g.:
//   - OffsetOf(-2, 30) = -02:30
//   - OffsetOf(2, -30) = 02:30
//   - OffsetOf(0, 30) = 00:30
//   - OffsetOf(0, -30) = -00:30
func OffsetOf(hours, mins int) Offset {
	if hours == 0 {
		return Offset(mins * 60)
	}
	if mins < 0 {
		mins = -mins
	}
	if hours < 0 {
		return Offset(hours*3600 - mins*60)
	}
	return Offset(hours*3600 + mins*60)
}

// String returns the time zone designator according to ISO 8601,
// truncated to the minute. If o == 0, String returns "Z".
func (o Offset) String() string {
	return offsetString(int(o), ":")
}

func offsetString(o int, sep string) string {
	o -= o % 60 // truncate to the minute
	if o == 0 {
		return "Z"
	}

	sign := "+"
	if o < 0 {
		sign = "-"
		o = -o
	}
	return fmt.Sprintf("%s%02d%s%02d", sign, o/3600, sep, (o%3600)/60)
}

// localOffset is the seam tests substitute to make parsing and formatting
// deterministic without perturbing production behavior. It reads the
// host's current local offset exactly once per call — never a timezone
// database.
var localOffset = func() Offset {
	_, secs := nowFunc().Zone()
	return Offset(secs)
}
