package chrono_test

import (
	"testing"

	chrono "github.com/isodate-go/isodate"
)

func TestFormat_Forms(t *testing.T) {
	v := chrono.OffsetDateTimeOf(2009, chrono.December, 31, 9, 5, 3, chrono.UTC)

	for _, tt := range []struct {
		name     string
		flags    chrono.Flags
		expected string
	}{
		{"gregorian", 0, "2009-12-31"},
		{"ordinal", chrono.FlagOrdinal, "2009-365"},
		{"weeks", chrono.FlagWeeks, "2009-W53-4"},
		{"gregorian with time", chrono.FlagTimeOfDay, "2009-12-31 09:05:03Z"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			if got := v.Format(tt.flags); got != tt.expected {
				t.Errorf("Format(%v) = %s, want %s", tt.flags, got, tt.expected)
			}
		})
	}
}

func TestFormat_WithTimezone(t *testing.T) {
	v := chrono.OffsetDateTimeOf(2009, chrono.December, 31, 9, 5, 3, chrono.OffsetOf(2, 0))

	if got := v.Format(chrono.FlagTimeOfDay | chrono.FlagWithTimezone); got != "2009-12-31 09:05:03+02:00" {
		t.Errorf("Format(time+tz) = %s, want 2009-12-31 09:05:03+02:00", got)
	}

	// Without FlagWithTimezone the non-zero offset is normalized to UTC first.
	if got := v.Format(chrono.FlagTimeOfDay); got != "2009-12-31 07:05:03Z" {
		t.Errorf("Format(time only) = %s, want 2009-12-31 07:05:03Z", got)
	}
}

func TestFormat_SecondsAndEpoch(t *testing.T) {
	epoch, _ := chrono.Parse("epoch")

	if got := epoch.Format(chrono.FlagEpoch); got != "0" {
		t.Errorf("epoch.Format(FlagEpoch) = %s, want 0", got)
	}
}
