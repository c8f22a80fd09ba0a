// Package main provides the isodate CLI, the external collaborator that
// exercises chrono's construct, format, compare, and add-a-duration
// contracts, plus named-month and named-weekday construction.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	chrono "github.com/isodate-go/isodate"
)

var log = logrus.New()

func main() {
	root := &cobra.Command{
		Use:   "isodate",
		Short: "Parse, format, compare and offset ISO 8601 dates and times",
	}

	root.AddCommand(newCmd())
	root.AddCommand(formatCmd())
	root.AddCommand(compareCmd())
	root.AddCommand(addCmd())
	root.AddCommand(dateCmd())
	root.AddCommand(weekCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "new [value]",
		Short: "Parse a value, or print the current time if omitted",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseArgOrNow(args)
			if err != nil {
				return err
			}
			fmt.Println(v.Format(chrono.FlagTimeOfDay | chrono.FlagWithTimezone))
			return nil
		},
	}
}

func formatCmd() *cobra.Command {
	var flagName string
	cmd := &cobra.Command{
		Use:   "format <value>",
		Short: "Parse a value and render it with the named format flags",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseArg(args[0])
			if err != nil {
				return err
			}
			flags, err := flagsFromName(flagName)
			if err != nil {
				return err
			}
			fmt.Println(v.Format(flags))
			return nil
		},
	}
	cmd.Flags().StringVarP(&flagName, "format", "t", "ISO8601", "output format: ISO8601, seconds, epoch, weeks, ordinal")
	return cmd
}

func compareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compare <a> <b>",
		Short: "Compare two instants, printing -1, 0 or 1",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseArg(args[0])
			if err != nil {
				return err
			}
			b, err := parseArg(args[1])
			if err != nil {
				return err
			}
			fmt.Println(a.Compare(b))
			return nil
		},
	}
}

func addCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <value> <duration>",
		Short: "Add an ISO 8601 duration to a parsed instant",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseArg(args[0])
			if err != nil {
				return err
			}
			d, err := chrono.ParseDuration(args[1])
			if err != nil {
				log.WithError(err).WithField("duration", args[1]).Error("malformed duration")
				return err
			}
			fmt.Println(v.Add(d).Format(chrono.FlagTimeOfDay | chrono.FlagWithTimezone))
			return nil
		},
	}
}

func dateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "date <year> <month> <day>",
		Short: "Build a date from a year, a month name (e.g. \"March\" or \"Mar\"), and a day",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := buildNamedDate(args[0], args[1], args[2])
			if err != nil {
				return err
			}
			fmt.Println(v.Format(chrono.FlagWithTimezone))
			return nil
		},
	}
}

func weekCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "week <year> <week> <weekday>",
		Short: "Build a date from an ISO week number and a weekday name (e.g. \"Wednesday\" or \"Wed\")",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := buildNamedWeekDate(args[0], args[1], args[2])
			if err != nil {
				return err
			}
			fmt.Println(d.String())
			return nil
		},
	}
}

// buildNamedDate parses a year, a case-insensitive month name, and a day
// into an OffsetDateTime at midnight UTC.
func buildNamedDate(yearArg, monthArg, dayArg string) (chrono.OffsetDateTime, error) {
	year, err := strconv.Atoi(yearArg)
	if err != nil {
		return chrono.OffsetDateTime{}, fmt.Errorf("invalid year %q: %w", yearArg, err)
	}
	month, err := chrono.ParseMonth(monthArg)
	if err != nil {
		log.WithError(err).WithField("month", monthArg).Error("unrecognized month name")
		return chrono.OffsetDateTime{}, err
	}
	day, err := strconv.Atoi(dayArg)
	if err != nil {
		return chrono.OffsetDateTime{}, fmt.Errorf("invalid day %q: %w", dayArg, err)
	}
	return chrono.OffsetDateTimeOf(year, month, day, 0, 0, 0, chrono.UTC), nil
}

// buildNamedWeekDate parses a year, an ISO week number, and a
// case-insensitive weekday name into a LocalDate.
func buildNamedWeekDate(yearArg, weekArg, weekdayArg string) (chrono.LocalDate, error) {
	year, err := strconv.Atoi(yearArg)
	if err != nil {
		return chrono.LocalDate{}, fmt.Errorf("invalid year %q: %w", yearArg, err)
	}
	week, err := strconv.Atoi(weekArg)
	if err != nil {
		return chrono.LocalDate{}, fmt.Errorf("invalid week %q: %w", weekArg, err)
	}
	weekday, err := chrono.ParseWeekday(weekdayArg)
	if err != nil {
		log.WithError(err).WithField("weekday", weekdayArg).Error("unrecognized weekday name")
		return chrono.LocalDate{}, err
	}
	d, err := chrono.OfISOWeek(year, week, weekday)
	if err != nil {
		log.WithError(err).WithFields(logrus.Fields{"year": year, "week": week}).Error("invalid ISO week")
		return chrono.LocalDate{}, err
	}
	return d, nil
}

func parseArg(s string) (chrono.OffsetDateTime, error) {
	v, err := chrono.Parse(s)
	if err != nil {
		log.WithError(err).WithField("input", s).Error("malformed date/time")
		return chrono.OffsetDateTime{}, err
	}
	return v, nil
}

func parseArgOrNow(args []string) (chrono.OffsetDateTime, error) {
	if len(args) == 0 {
		return chrono.Now(), nil
	}
	return parseArg(args[0])
}

func flagsFromName(name string) (chrono.Flags, error) {
	switch name {
	case "ISO8601", "":
		return chrono.FlagTimeOfDay | chrono.FlagWithTimezone, nil
	case "seconds":
		return chrono.FlagSeconds, nil
	case "epoch":
		return chrono.FlagEpoch, nil
	case "weeks":
		return chrono.FlagWeeks | chrono.FlagTimeOfDay | chrono.FlagWithTimezone, nil
	case "ordinal":
		return chrono.FlagOrdinal | chrono.FlagTimeOfDay | chrono.FlagWithTimezone, nil
	default:
		return 0, fmt.Errorf("unrecognized format %q", name)
	}
}
