package chrono_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	chrono "github.com/isodate-go/isodate"
)

func TestHiResOf_FormatStrftime(t *testing.T) {
	base := chrono.OffsetDateTimeOf(2020, chrono.March, 5, 14, 30, 1, chrono.UTC)
	h := chrono.HiResOf(base, 123456)

	require.Equal(t, "2020-03-05 14:30:01.123", h.FormatStrftime("%Y-%m-%d %H:%M:%S.%3N"))
	require.Equal(t, "2020-03-05 14:30:01.123456", h.FormatStrftime("%Y-%m-%d %H:%M:%S.%N"))
}

func TestHiResOf_PanicsOnInvalidMicroseconds(t *testing.T) {
	base := chrono.OffsetDateTimeOf(2020, chrono.March, 5, 14, 30, 1, chrono.UTC)

	require.Panics(t, func() {
		chrono.HiResOf(base, 1000000)
	})
}

func TestHiResDateTime_Add_PreservesMicroseconds(t *testing.T) {
	base := chrono.OffsetDateTimeOf(2020, chrono.March, 5, 14, 30, 1, chrono.UTC)
	h := chrono.HiResOf(base, 500)

	added := h.Add(chrono.Duration{Days: 1})
	require.Equal(t, 500, added.Microseconds)
}
