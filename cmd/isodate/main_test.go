package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	chrono "github.com/isodate-go/isodate"
)

func TestFlagsFromName(t *testing.T) {
	flags, err := flagsFromName("seconds")
	require.NoError(t, err)
	require.Equal(t, chrono.FlagSeconds, flags)

	_, err = flagsFromName("nonsense")
	require.Error(t, err)
}

func TestParseArg(t *testing.T) {
	v, err := parseArg("2020-01-01T00:00:00Z")
	require.NoError(t, err)
	require.Equal(t, "2020-01-01 00:00:00Z", v.Format(chrono.FlagTimeOfDay|chrono.FlagWithTimezone))

	_, err = parseArg("not-a-date")
	require.Error(t, err)
}

func TestBuildNamedDate(t *testing.T) {
	v, err := buildNamedDate("2021", "Mar", "3")
	require.NoError(t, err)
	require.Equal(t, "2021-03-03Z", v.Format(chrono.FlagWithTimezone))

	_, err = buildNamedDate("2021", "Marchuary", "3")
	require.Error(t, err)
}

func TestBuildNamedWeekDate(t *testing.T) {
	d, err := buildNamedWeekDate("2009", "53", "Sunday")
	require.NoError(t, err)
	require.Equal(t, "2010-01-03", d.String())

	d, err = buildNamedWeekDate("2009", "1", "mon")
	require.NoError(t, err)
	require.Equal(t, "2008-12-29", d.String())

	_, err = buildNamedWeekDate("2009", "53", "Funday")
	require.Error(t, err)
}
