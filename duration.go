package chrono

import (
	"fmt"
	"strings"
)

// Duration is a signed, date-relative ISO 8601 duration: years, months and
// days carried symbolically, plus a signed count of seconds folding the
// duration's hour/minute/second tokens. Weeks are parse/format-time syntax
// only: ParseDuration folds a "W" token into Days (×7) and no separate
// field is stored. Offset is always implicitly zero for a Duration; it has
// no field, so the invariant holds structurally rather than by convention.
type Duration struct {
	Years   int
	Months  int
	Days    int
	Seconds int
}

// Negate returns -d, field by field.
func (d Duration) Negate() Duration {
	return Duration{Years: -d.Years, Months: -d.Months, Days: -d.Days, Seconds: -d.Seconds}
}

// IsZero reports whether d carries no quantity at all.
func (d Duration) IsZero() bool {
	return d == Duration{}
}

// SecondsSinceOrigin approximates the number of seconds d spans, using a
// fixed 30-day-per-month convention: a 365.25-day year is NOT used here —
// instead a year is 12 such months, a fixed-width approximation rather
// than a calendar-accurate one. This method exists for callers that need a
// rough magnitude (e.g. sorting durations); it is never used by
// OffsetDateTime.Add, which always applies Years/Months/Days/Seconds
// against a real calendar.
func (d Duration) SecondsSinceOrigin() int64 {
	const secondsPerDay = 86400
	const daysPerMonth = 30
	months := int64(d.Years)*12 + int64(d.Months)
	return months*daysPerMonth*secondsPerDay + int64(d.Days)*secondsPerDay + int64(d.Seconds)
}

// String renders d as an ISO 8601 duration, e.g. "P1Y2M10DT2H30M". A
// all-zero Duration renders as "PT0S".
func (d Duration) String() string {
	var b strings.Builder
	b.WriteByte('P')
	if d.Years != 0 {
		fmt.Fprintf(&b, "%dY", d.Years)
	}
	if d.Months != 0 {
		fmt.Fprintf(&b, "%dM", d.Months)
	}
	if d.Days != 0 {
		fmt.Fprintf(&b, "%dD", d.Days)
	}
	hours, mins, secs := d.Seconds/3600, (d.Seconds%3600)/60, d.Seconds%60
	if hours != 0 || mins != 0 || secs != 0 {
		b.WriteByte('T')
		if hours != 0 {
			fmt.Fprintf(&b, "%dH", hours)
		}
		if mins != 0 {
			fmt.Fprintf(&b, "%dM", mins)
		}
		if secs != 0 {
			fmt.Fprintf(&b, "%dS", secs)
		}
	}
	if b.Len() == 1 {
		return "PT0S"
	}
	return b.String()
}

// prose renders d as the FlagDuration textual form: "N year[s] N month[s]
// N day[s] N seconds ( H hour[s] M minute[s] S second[s] )", omitting zero
// components. If every component is zero, prose returns "0 seconds".
func (d Duration) prose() string {
	var parts []string
	plural := func(n int, unit string) string {
		if n == 1 {
			return fmt.Sprintf("%d %s", n, unit)
		}
		return fmt.Sprintf("%d %ss", n, unit)
	}
	if d.Years != 0 {
		parts = append(parts, plural(d.Years, "year"))
	}
	if d.Months != 0 {
		parts = append(parts, plural(d.Months, "month"))
	}
	if d.Days != 0 {
		parts = append(parts, plural(d.Days, "day"))
	}
	if d.Seconds != 0 {
		hours, mins, secs := d.Seconds/3600, (d.Seconds%3600)/60, d.Seconds%60
		parts = append(parts, fmt.Sprintf("%d seconds (", d.Seconds))
		if hours != 0 {
			parts = append(parts, plural(hours, "hour"))
		}
		if mins != 0 {
			parts = append(parts, plural(mins, "minute"))
		}
		if secs != 0 {
			parts = append(parts, plural(secs, "second"))
		}
		parts = append(parts, ")")
	}
	if len(parts) == 0 {
		return "0 seconds"
	}
	return strings.Join(parts, " ")
}

// ParseDuration parses an ISO 8601 duration string of the form
// "P[nY][nM][nW][nD][T[nH][nM][nS]]". Fractional year/month subfields are
// rejected as ambiguous for a date-relative quantity; fractional
// week/day/hour/minute/second subfields are accepted and scaled into the
// next smaller stored unit (days or seconds).
func ParseDuration(s string) (Duration, error) {
	if len(s) == 0 || s[0] != 'P' {
		return Duration{}, fmt.Errorf("%w: duration must start with 'P': %q", ErrInvalidDuration, s)
	}
	rest := s[1:]
	if rest == "" {
		return Duration{}, fmt.Errorf("%w: empty duration %q", ErrInvalidDuration, s)
	}

	var d Duration
	inTime := false
	for len(rest) > 0 {
		if rest[0] == 'T' {
			inTime = true
			rest = rest[1:]
			continue
		}

		value, frac, unit, tail, err := scanDurationField(rest)
		if err != nil {
			return Duration{}, fmt.Errorf("%w: %s", ErrInvalidDuration, err)
		}
		rest = tail

		switch unit {
		case 'Y':
			if inTime || frac != 0 {
				return Duration{}, fmt.Errorf("%w: fractional or time-position year in %q", ErrInvalidDuration, s)
			}
			d.Years += value
		case 'M':
			if inTime {
				d.Seconds += value * 60
				d.Seconds += int(frac * 60)
			} else {
				if frac != 0 {
					return Duration{}, fmt.Errorf("%w: fractional month in %q", ErrInvalidDuration, s)
				}
				d.Months += value
			}
		case 'W':
			if inTime {
				return Duration{}, fmt.Errorf("%w: 'W' not valid after 'T' in %q", ErrInvalidDuration, s)
			}
			d.Days += value * 7
			d.Seconds += int(frac * 7 * 86400)
		case 'D':
			if inTime {
				return Duration{}, fmt.Errorf("%w: 'D' not valid after 'T' in %q", ErrInvalidDuration, s)
			}
			d.Days += value
			d.Seconds += int(frac * 86400)
		case 'H':
			if !inTime {
				return Duration{}, fmt.Errorf("%w: 'H' only valid after 'T' in %q", ErrInvalidDuration, s)
			}
			d.Seconds += value * 3600
			d.Seconds += int(frac * 3600)
		case 'S':
			if !inTime {
				return Duration{}, fmt.Errorf("%w: 'S' only valid after 'T' in %q", ErrInvalidDuration, s)
			}
			d.Seconds += value
			d.Seconds += int(frac)
		default:
			return Duration{}, fmt.Errorf("%w: unrecognized unit %q in %q", ErrInvalidDuration, string(unit), s)
		}
	}
	return d, nil
}

// scanDurationField consumes a leading integer (with an optional '.' or
// ',' fractional part) followed by a single unit letter from s, returning
// the integer value, the fractional remainder (as a fraction of one whole
// unit, e.g. 0.5 for ".5"), the unit letter, and the remainder of s.
func scanDurationField(s string) (value int, frac float64, unit byte, tail string, err error) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		value = value*10 + int(s[i]-'0')
		i++
	}
	if i == 0 {
		return 0, 0, 0, "", fmt.Errorf("expected digit at %q", s)
	}

	if i < len(s) && (s[i] == '.' || s[i] == ',') {
		i++
		start := i
		var num, den float64 = 0, 1
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			num = num*10 + float64(s[i]-'0')
			den *= 10
			i++
		}
		if i == start {
			return 0, 0, 0, "", fmt.Errorf("expected digit after decimal point in %q", s)
		}
		frac = num / den
	}

	if i >= len(s) {
		return 0, 0, 0, "", fmt.Errorf("expected unit letter in %q", s)
	}
	unit = s[i]
	i++
	return value, frac, unit, s[i:], nil
}
