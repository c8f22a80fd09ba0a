package chrono

import "fmt"

// OffsetDateTime is a specific instant identified by a LocalDate, a
// LocalTime, and a timezone Offset. It is the primary value type this
// package's parser, arithmetic, and formatter operate on.
type OffsetDateTime struct {
	date   LocalDate
	time   LocalTime
	offset Offset
}

// OffsetDateTimeOf returns an OffsetDateTime that represents the specified
// Gregorian year, month, day, hour, minute, second and offset. This
// function panics if the date or time is invalid.
func OffsetDateTimeOf(year int, month Month, day, hour, min, sec int, offset Offset) OffsetDateTime {
	return OffsetDateTime{
		date:   LocalDateOf(year, month, day),
		time:   LocalTimeOf(hour, min, sec),
		offset: offset,
	}
}

// Epoch is the OffsetDateTime the literal "epoch" parses to:
// 1970-01-01T00:00:00Z.
var Epoch = OffsetDateTime{date: LocalDate{year: 1970, yday: 1}}

// Date returns the Gregorian year, month and day represented by d.
func (d OffsetDateTime) Date() (year int, month Month, day int) {
	return d.date.Date()
}

// YearDay returns the year and ordinal day-of-year represented by d.
func (d OffsetDateTime) YearDay() (year, day int) {
	return d.date.year, d.date.yday
}

// ISOWeek returns the ISO 8601 year, week and day-of-week represented by d.
func (d OffsetDateTime) ISOWeek() (year, week, day int) {
	year, week = d.date.ISOWeek()
	return year, week, int(d.date.Weekday())
}

// Clock returns the hour, minute and second of day represented by d.
func (d OffsetDateTime) Clock() (hour, min, sec int) {
	return d.time.Clock()
}

// Offset returns the timezone offset of d.
func (d OffsetDateTime) Offset() Offset {
	return d.offset
}

// Weekday returns the ISO 8601 day of the week represented by d.
func (d OffsetDateTime) Weekday() Weekday {
	return d.date.Weekday()
}

// Check reports whether d satisfies the invariants of a normalized
// instant: a valid ordinal day, a time-of-day in [0, 86399], and an
// offset strictly between -86400 and 86400 seconds.
func (d OffsetDateTime) Check() bool {
	return d.date.Check() && d.time.Check() && d.offset > -86400 && d.offset < 86400
}

// UTC returns a copy of d converted to the UTC offset.
func (d OffsetDateTime) UTC() OffsetDateTime {
	if d.offset == 0 {
		return d
	}
	return d.addSeconds(-int(d.offset)).withOffset(0)
}

// In returns a copy of d, adjusted to the supplied offset, representing
// the same instant.
func (d OffsetDateTime) In(offset Offset) OffsetDateTime {
	return d.addSeconds(int(offset) - int(d.offset)).withOffset(offset)
}

func (d OffsetDateTime) withOffset(o Offset) OffsetDateTime {
	d.offset = o
	return d
}

// Compare compares d with u after normalizing both to UTC. If d is before
// u, it returns -1; if d is after u, it returns 1; if they represent the
// same instant, it returns 0.
func (d OffsetDateTime) Compare(u OffsetDateTime) int {
	a, b := d.UTC(), u.UTC()
	switch {
	case a.date.year != b.date.year:
		if a.date.year < b.date.year {
			return -1
		}
		return 1
	case a.date.yday != b.date.yday:
		if a.date.yday < b.date.yday {
			return -1
		}
		return 1
	case a.time.secs != b.time.secs:
		if a.time.secs < b.time.secs {
			return -1
		}
		return 1
	default:
		return 0
	}
}

// addSeconds adds secs seconds to d, carrying into the date as needed, and
// preserves d's offset.
func (d OffsetDateTime) addSeconds(secs int) OffsetDateTime {
	t, days := addSeconds(d.time, secs)
	d.time = t
	d.date = addDays(d.date, days)
	return d
}

// Add returns d + v: years and months are applied first (while the date is
// still in its original month, so day-of-month clamping behaves correctly),
// then days, then seconds. This function panics if the result fails
// Check. Year arithmetic is not checked for integer overflow, so an
// overflowing year does not cause a panic.
func (d OffsetDateTime) Add(v Duration) OffsetDateTime {
	out, err := d.canAdd(v)
	if err != nil {
		panic(err.Error())
	}
	return out
}

// CanAdd reports whether d.Add(v) would succeed without panicking.
func (d OffsetDateTime) CanAdd(v Duration) bool {
	_, err := d.canAdd(v)
	return err == nil
}

func (d OffsetDateTime) canAdd(v Duration) (OffsetDateTime, error) {
	out := d
	out.date = addYears(out.date, v.Years)
	out.date = addMonths(out.date, v.Months)
	out.date = addDays(out.date, v.Days)
	out = out.addSeconds(v.Seconds)
	if !out.Check() {
		return OffsetDateTime{}, fmt.Errorf("%w: %v + %v", ErrOutOfRange, d, v)
	}
	return out, nil
}

// Sub returns d - v. It is shorthand for d.Add(v.Negate()).
func (d OffsetDateTime) Sub(v Duration) OffsetDateTime {
	return d.Add(v.Negate())
}

// AddSeconds, AddMinutes, AddHours, AddDays, AddWeeks, AddMonths and
// AddYears each add a signed count of the named unit to d, delegating to
// Add so every unit shares one normalization path.
func (d OffsetDateTime) AddSeconds(n int) OffsetDateTime { return d.Add(Duration{Seconds: n}) }
func (d OffsetDateTime) AddMinutes(n int) OffsetDateTime { return d.Add(Duration{Seconds: n * 60}) }
func (d OffsetDateTime) AddHours(n int) OffsetDateTime   { return d.Add(Duration{Seconds: n * 3600}) }
func (d OffsetDateTime) AddDays(n int) OffsetDateTime    { return d.Add(Duration{Days: n}) }
func (d OffsetDateTime) AddWeeks(n int) OffsetDateTime   { return d.Add(Duration{Days: n * 7}) }
func (d OffsetDateTime) AddMonths(n int) OffsetDateTime  { return d.Add(Duration{Months: n}) }
func (d OffsetDateTime) AddYears(n int) OffsetDateTime   { return d.Add(Duration{Years: n}) }

// DurationUntil returns the Duration between d and u, computed by
// UTC-normalizing both and subtracting field-wise. The result's Months
// field is always 0: a field-wise instant difference has no notion of a
// date-relative month.
func (d OffsetDateTime) DurationUntil(u OffsetDateTime) Duration {
	a, b := d.UTC(), u.UTC()
	return Duration{
		Years:   b.date.year - a.date.year,
		Days:    b.date.yday - a.date.yday,
		Seconds: b.time.secs - a.time.secs,
	}
}

// SecondsSinceOrigin returns the number of seconds elapsed since
// 0001-01-01T00:00:00.
func (d OffsetDateTime) SecondsSinceOrigin() int64 {
	var total int64
	for y := 1; y < d.date.year; y++ {
		total += 86400 * int64(yearDays(y))
	}
	total += 86400 * int64(d.date.yday-1)
	total += int64(d.time.secs)
	return total
}

// secondsSinceEpochOffset is the value SecondsSinceOrigin yields for
// 1970-01-01T00:00:00, i.e. EPOCH_SECONDS in the original source.
const secondsSinceEpochOffset = 62135596800

// SecondsSinceEpoch returns the number of seconds elapsed since the Unix
// epoch (1970-01-01T00:00:00 UTC).
func (d OffsetDateTime) SecondsSinceEpoch() int64 {
	return d.UTC().SecondsSinceOrigin() - secondsSinceEpochOffset
}

func (d OffsetDateTime) String() string {
	return d.Format(FlagTimeOfDay | FlagWithTimezone)
}
