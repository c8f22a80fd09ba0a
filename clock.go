package chrono

import "time"

// nowFunc is the seam Now() and the parser's ambient-offset lookups read
// through. It exists so tests can pin the clock without chrono reaching
// for any other library or mutable global state at runtime. Production
// code never reassigns it outside of tests.
var nowFunc = time.Now

// Now returns the OffsetDateTime that represents the current moment, at
// the host's local offset.
func Now() OffsetDateTime {
	return fromStdlib(nowFunc())
}

// fromStdlib converts a standard library time.Time into an OffsetDateTime,
// truncating to whole seconds (sub-second precision belongs to the
// high-resolution extension, hires.go).
func fromStdlib(t time.Time) OffsetDateTime {
	_, offsetSecs := t.Zone()
	date := LocalDate{year: t.Year(), yday: t.YearDay()}
	tod := LocalTime{secs: t.Hour()*3600 + t.Minute()*60 + t.Second()}
	return OffsetDateTime{date: date, time: tod, offset: Offset(offsetSecs)}
}
