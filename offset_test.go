package chrono_test

import (
	"testing"

	chrono "github.com/isodate-go/isodate"
)

func TestOffsetOf(t *testing.T) {
	for _, tt := range []struct {
		name        string
		hours, mins int
		expected    string
	}{
		{"positive", 2, 30, "+02:30"},
		{"negative hours", -2, 30, "-02:30"},
		{"negative minutes only", 0, -30, "-00:30"},
		{"zero", 0, 0, "Z"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			if got := chrono.OffsetOf(tt.hours, tt.mins).String(); got != tt.expected {
				t.Errorf("OffsetOf(%d, %d).String() = %s, want %s", tt.hours, tt.mins, got, tt.expected)
			}
		})
	}
}

func TestUTC_String(t *testing.T) {
	if got := chrono.UTC.String(); got != "Z" {
		t.Errorf("UTC.String() = %s, want Z", got)
	}
}
