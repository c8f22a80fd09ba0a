package chrono_test

import (
	"testing"

	chrono "github.com/isodate-go/isodate"
)

func TestLocalDateOf(t *testing.T) {
	d := chrono.LocalDateOf(2020, chrono.February, 29)

	year, month, day := d.Date()
	if year != 2020 || month != chrono.February || day != 29 {
		t.Errorf("d.Date() = %d-%d-%d, want 2020-2-29", year, month, day)
	}
}

func TestLocalDateOf_PanicsOnInvalidLeapDay(t *testing.T) {
	for _, year := range []int{1900, 2100} {
		year := year
		t.Run(t.Name(), func(t *testing.T) {
			defer func() {
				if r := recover(); r == nil {
					t.Errorf("expecting panic for Feb 29 %d that didn't occur", year)
				}
			}()
			chrono.LocalDateOf(year, chrono.February, 29)
		})
	}
}

func TestLocalDateOf_LeapYearBoundaries(t *testing.T) {
	for _, tt := range []struct {
		year   int
		isLeap bool
	}{
		{1900, false},
		{2000, true},
		{2100, false},
		{2400, true},
	} {
		tt := tt
		t.Run(t.Name(), func(t *testing.T) {
			d := chrono.OfDayOfYear(tt.year, 1)
			if got := d.IsLeapYear(); got != tt.isLeap {
				t.Errorf("IsLeapYear(%d) = %v, want %v", tt.year, got, tt.isLeap)
			}
		})
	}
}

func TestOfISOWeek(t *testing.T) {
	for _, tt := range []struct {
		name     string
		year     int
		week     int
		day      chrono.Weekday
		expected string
	}{
		{"2009-W53-7", 2009, 53, chrono.Sunday, "2010-01-03"},
		{"2009-W01-1", 2009, 1, chrono.Monday, "2008-12-29"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			d, err := chrono.OfISOWeek(tt.year, tt.week, tt.day)
			if err != nil {
				t.Fatalf("OfISOWeek() error = %v", err)
			}
			if got := d.String(); got != tt.expected {
				t.Errorf("OfISOWeek(%d, %d, %v) = %s, want %s", tt.year, tt.week, tt.day, got, tt.expected)
			}
		})
	}
}

func TestLocalDate_ISOWeek(t *testing.T) {
	d := chrono.LocalDateOf(2009, chrono.December, 31)
	isoYear, isoWeek := d.ISOWeek()
	if isoYear != 2009 || isoWeek != 53 {
		t.Errorf("d.ISOWeek() = %d-W%d, want 2009-W53", isoYear, isoWeek)
	}
}

func TestLocalDate_Add_MonthClamp(t *testing.T) {
	for _, tt := range []struct {
		name     string
		start    chrono.LocalDate
		expected string
	}{
		{"jan31 non-leap", chrono.LocalDateOf(2021, chrono.January, 31), "2021-02-28"},
		{"jan31 leap", chrono.LocalDateOf(2020, chrono.January, 31), "2020-02-29"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.start.Add(0, 1, 0).String(); got != tt.expected {
				t.Errorf("Add(0,1,0) = %s, want %s", got, tt.expected)
			}
		})
	}
}

func TestLocalDate_Weekday(t *testing.T) {
	// 1970-01-01 was a Thursday.
	d := chrono.LocalDateOf(1970, chrono.January, 1)
	if got := d.Weekday(); got != chrono.Thursday {
		t.Errorf("d.Weekday() = %v, want Thursday", got)
	}
}

func TestLocalDate_String(t *testing.T) {
	if got := chrono.LocalDateOf(2005, chrono.January, 20).String(); got != "2005-01-20" {
		t.Errorf("LocalDate.String() = %s, want 2005-01-20", got)
	}
}
