package chrono

import (
	"fmt"
	"strconv"
	"strings"
)

// Flags selects the textual form OffsetDateTime.Format renders. The
// date-form flags (FlagSeconds, FlagEpoch, FlagWeeks, FlagOrdinal, and the
// default Gregorian form) are mutually exclusive; FlagTimeOfDay,
// FlagWithTimezone and FlagDuration compose with them.
type Flags uint8

const (
	// FlagSeconds renders the date portion as SecondsSinceOrigin, decimal.
	FlagSeconds Flags = 1 << iota
	// FlagEpoch renders the date portion as SecondsSinceEpoch, decimal.
	FlagEpoch
	// FlagWeeks renders the date portion as YYYY-Www-D.
	FlagWeeks
	// FlagOrdinal renders the date portion as YYYY-DDD.
	FlagOrdinal
	// FlagTimeOfDay appends " HH:MM:SS".
	FlagTimeOfDay
	// FlagWithTimezone appends the timezone designator; without it, a
	// non-zero offset is normalized to UTC before formatting.
	FlagWithTimezone
	// FlagDuration renders the value as duration prose instead of a date;
	// valid only when formatting a Duration via Duration.Format.
	FlagDuration
)

// maxFormattedRunes bounds Format's output, mirroring the distilled
// spec's fixed-buffer discipline without a literal fixed-size array.
const maxFormattedRunes = 100

// Format renders d as one of the textual forms selected by flags.
func (d OffsetDateTime) Format(flags Flags) string {
	if flags&FlagWithTimezone == 0 && d.offset != 0 {
		d = d.UTC()
	}

	var b strings.Builder
	b.Grow(32)

	switch {
	case flags&FlagSeconds != 0:
		b.WriteString(strconv.FormatInt(d.SecondsSinceOrigin(), 10))
	case flags&FlagEpoch != 0:
		b.WriteString(strconv.FormatInt(d.SecondsSinceEpoch(), 10))
	case flags&FlagWeeks != 0:
		year, week, day := d.ISOWeek()
		fmt.Fprintf(&b, "%04d-W%02d-%d", year, week, day)
	case flags&FlagOrdinal != 0:
		year, day := d.YearDay()
		fmt.Fprintf(&b, "%04d-%03d", year, day)
	default:
		year, month, day := d.Date()
		fmt.Fprintf(&b, "%04d-%02d-%02d", year, month, day)
	}

	if flags&FlagTimeOfDay != 0 {
		hour, min, sec := d.Clock()
		fmt.Fprintf(&b, " %02d:%02d:%02d", hour, min, sec)
		if flags&FlagWithTimezone != 0 {
			b.WriteString(d.offset.String())
		} else {
			b.WriteByte('Z')
		}
	} else if flags&FlagWithTimezone != 0 {
		b.WriteString(d.offset.String())
	}

	out := b.String()
	if r := []rune(out); len(r) > maxFormattedRunes {
		out = string(r[:maxFormattedRunes])
	}
	return out
}

// Format renders d as duration prose when flags includes FlagDuration, or
// as the ISO 8601 duration string otherwise.
func (d Duration) Format(flags Flags) string {
	if flags&FlagDuration != 0 {
		return d.prose()
	}
	return d.String()
}
