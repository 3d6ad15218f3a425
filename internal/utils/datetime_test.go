package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFormatDateTime(t *testing.T) {
	ts := time.Date(2024, 3, 9, 18, 5, 2, 0, time.UTC)
	require.Equal(t, "2024-03-09 18:05:02", FormatDateTime(ts))
}

func TestDaysBetween(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	require.Equal(t, 7, DaysBetween(start, start.AddDate(0, 0, 7)))
	require.Equal(t, 0, DaysBetween(start, start.Add(12*time.Hour)))
	require.Equal(t, -3, DaysBetween(start, start.AddDate(0, 0, -3)))
}

func TestRandomString(t *testing.T) {
	s, err := RandomString(32)
	require.NoError(t, err)
	require.Len(t, s, 32)
	for _, r := range s {
		require.Contains(t, alphanumeric, string(r))
	}

	other, err := RandomString(32)
	require.NoError(t, err)
	require.NotEqual(t, s, other)
}
