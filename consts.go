package chrono

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// Weekday specifies the ISO 8601 day of the week (Monday = 1, ..., Sunday = 7).
// Not compatible with the standard library's time.Weekday, in which Sunday = 0.
type Weekday int

// The days of the week, numbered as ISO 8601 requires.
const (
	Monday Weekday = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

func (d Weekday) String() string {
	return longWeekdayName(int(d))
}

func longWeekdayName(d int) string {
	if d < int(Monday) || d > int(Sunday) {
		return fmt.Sprintf("%%!Weekday(%d)", d)
	}
	return longDayNames[d-1]
}

var longDayNames = [7]string{
	Monday - 1:    "Monday",
	Tuesday - 1:   "Tuesday",
	Wednesday - 1: "Wednesday",
	Thursday - 1:  "Thursday",
	Friday - 1:    "Friday",
	Saturday - 1:  "Saturday",
	Sunday - 1:    "Sunday",
}

var shortDayNames = [7]string{
	Monday - 1:    "Mon",
	Tuesday - 1:   "Tue",
	Wednesday - 1: "Wed",
	Thursday - 1:  "Thu",
	Friday - 1:    "Fri",
	Saturday - 1:  "Sat",
	Sunday - 1:    "Sun",
}

// Month specifies the month of the year (January = 1, ...).
type Month int

// The months of the year.
const (
	January Month = iota + 1
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

func (m Month) String() string {
	return longMonthName(int(m))
}

func longMonthName(m int) string {
	if m < int(January) || m > int(December) {
		return fmt.Sprintf("%%!Month(%d)", m)
	}
	return longMonthNames[m-1]
}

var longMonthNames = [12]string{
	January - 1:   "January",
	February - 1:  "February",
	March - 1:     "March",
	April - 1:     "April",
	May - 1:       "May",
	June - 1:      "June",
	July - 1:      "July",
	August - 1:    "August",
	September - 1: "September",
	October - 1:   "October",
	November - 1:  "November",
	December - 1:  "December",
}

// ParseWeekday returns the Weekday named by name (e.g. "Monday", "mon",
// "TUESDAY"), matched case-insensitively using Unicode case folding
// rather than a hand-rolled ASCII lowercasing, since day names appear in
// user-supplied CLI input (cmd/isodate) that may arrive in any case.
func ParseWeekday(name string) (Weekday, error) {
	folded := titleCaser.String(name)
	for i, long := range longDayNames {
		if long == folded {
			return Weekday(i + 1), nil
		}
	}
	for i, short := range shortDayNames {
		if short == folded {
			return Weekday(i + 1), nil
		}
	}
	return 0, fmt.Errorf("%w: unrecognized weekday name %q", ErrInvalidDate, name)
}

// ParseMonth returns the Month named by name, matched the same way as
// ParseWeekday.
func ParseMonth(name string) (Month, error) {
	folded := titleCaser.String(name)
	for i, long := range longMonthNames {
		if long == folded {
			return Month(i + 1), nil
		}
	}
	for i, short := range shortMonthNames {
		if short == folded {
			return Month(i + 1), nil
		}
	}
	return 0, fmt.Errorf("%w: unrecognized month name %q", ErrInvalidDate, name)
}

var shortMonthNames = [12]string{
	January - 1:   "Jan",
	February - 1:  "Feb",
	March - 1:     "Mar",
	April - 1:     "Apr",
	May - 1:       "May",
	June - 1:      "Jun",
	July - 1:      "Jul",
	August - 1:    "Aug",
	September - 1: "Sep",
	October - 1:   "Oct",
	November - 1:  "Nov",
	December - 1:  "Dec",
}
