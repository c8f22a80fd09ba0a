package chrono

import (
	"fmt"
	"strconv"
	"strings"
)

// HiResDateTime extends OffsetDateTime with a microseconds field, for
// callers that need sub-second precision. Every operation other than
// microsecond-level formatting delegates to the embedded OffsetDateTime,
// operates there, and reconstructs the HiResDateTime around the result.
type HiResDateTime struct {
	OffsetDateTime
	Microseconds int
}

// HiResOf returns a HiResDateTime built from a base instant and a
// microseconds count. This function panics if microseconds is not in
// [0, 999999].
func HiResOf(base OffsetDateTime, microseconds int) HiResDateTime {
	if microseconds < 0 || microseconds > 999999 {
		panic(fmt.Sprintf("chrono: microseconds %d out of range", microseconds))
	}
	return HiResDateTime{OffsetDateTime: base, Microseconds: microseconds}
}

// HiResNow returns the HiResDateTime representing the current moment,
// with microsecond precision read from the host clock.
func HiResNow() HiResDateTime {
	t := nowFunc()
	return HiResDateTime{
		OffsetDateTime: fromStdlib(t),
		Microseconds:   t.Nanosecond() / 1000,
	}
}

// Add returns h + v, preserving h's microseconds: Duration carries no
// sub-second component, so addition passes the microseconds field through
// unchanged.
func (h HiResDateTime) Add(v Duration) HiResDateTime {
	return HiResDateTime{OffsetDateTime: h.OffsetDateTime.Add(v), Microseconds: h.Microseconds}
}

// Sub returns h - v, preserving h's microseconds.
func (h HiResDateTime) Sub(v Duration) HiResDateTime {
	return HiResDateTime{OffsetDateTime: h.OffsetDateTime.Sub(v), Microseconds: h.Microseconds}
}

// FormatStrftime renders h according to a strftime-style template. Every
// directive except "%<digits>N" (the microsecond-fraction directive, 1-6
// digits requested, zero-padded or truncated as needed) delegates to the
// base OffsetDateTime's fields; the engine is generalized from a
// nanosecond-precision %-directive formatter down to this library's
// microsecond field.
func (h HiResDateTime) FormatStrftime(layout string) string {
	var b strings.Builder
	year, month, day := h.Date()
	hour, min, sec := h.Clock()

	for i := 0; i < len(layout); i++ {
		c := layout[i]
		if c != '%' || i+1 >= len(layout) {
			b.WriteByte(c)
			continue
		}

		// Scan an optional run of digits, then the directive letter, to
		// support "%<N>N".
		j := i + 1
		digitStart := j
		for j < len(layout) && layout[j] >= '0' && layout[j] <= '9' {
			j++
		}
		if j >= len(layout) {
			b.WriteByte('%')
			continue
		}
		directive := layout[j]

		if directive == 'N' && j > digitStart {
			digits, _ := strconv.Atoi(layout[digitStart:j])
			b.WriteString(formatMicroseconds(h.Microseconds, digits))
			i = j
			continue
		}

		switch directive {
		case 'Y':
			fmt.Fprintf(&b, "%04d", year)
		case 'm':
			fmt.Fprintf(&b, "%02d", month)
		case 'd':
			fmt.Fprintf(&b, "%02d", day)
		case 'H':
			fmt.Fprintf(&b, "%02d", hour)
		case 'M':
			fmt.Fprintf(&b, "%02d", min)
		case 'S':
			fmt.Fprintf(&b, "%02d", sec)
		case 'z':
			b.WriteString(h.Offset().String())
		case 'N':
			b.WriteString(formatMicroseconds(h.Microseconds, 6))
		case '%':
			b.WriteByte('%')
		default:
			b.WriteByte('%')
			b.WriteByte(directive)
		}
		i = j
	}
	return b.String()
}

// formatMicroseconds renders micros as a zero-padded fraction truncated or
// extended to digits decimal places (digits clamped to [1,6]).
func formatMicroseconds(micros, digits int) string {
	if digits < 1 {
		digits = 1
	}
	if digits > 6 {
		digits = 6
	}
	full := fmt.Sprintf("%06d", micros)
	if digits <= 6 {
		return full[:digits]
	}
	return full
}
