package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := ParseDate(value)
	require.NoError(t, err)
	return parsed
}

func TestComputeBooking(t *testing.T) {
	rate := 100.0

	quote, err := ComputeBooking("2024-03", 2, &rate)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01", FormatDate(quote.StartDate))
	assert.Equal(t, "2024-04-30", FormatDate(quote.EndDate))
	assert.Equal(t, 200.0, quote.TotalPrice)
}

func TestComputeBookingSingleMonth(t *testing.T) {
	rate := 149.99

	quote, err := ComputeBooking("2024-02", 1, &rate)
	require.NoError(t, err)
	assert.Equal(t, "2024-02-01", FormatDate(quote.StartDate))
	assert.Equal(t, "2024-02-29", FormatDate(quote.EndDate))
	assert.Equal(t, 149.99, quote.TotalPrice)
}

func TestComputeBookingYearBoundary(t *testing.T) {
	rate := 50.0

	quote, err := ComputeBooking("2024-12", 2, &rate)
	require.NoError(t, err)
	assert.Equal(t, "2024-12-01", FormatDate(quote.StartDate))
	assert.Equal(t, "2025-01-31", FormatDate(quote.EndDate))
	assert.Equal(t, 100.0, quote.TotalPrice)
}

func TestComputeBookingRejectsBadInput(t *testing.T) {
	rate := 100.0

	_, err := ComputeBooking("2024-03", 0, &rate)
	assert.Error(t, err)

	_, err = ComputeBooking("2024-03", -1, &rate)
	assert.Error(t, err)

	_, err = ComputeBooking("not-a-month", 1, &rate)
	assert.Error(t, err)

	_, err = ComputeBooking("2024-03", 1, nil)
	assert.Error(t, err)
}

func TestComputeBookingPriceGrowsWithMonths(t *testing.T) {
	rate := 80.0
	previous := 0.0

	for months := 1; months <= 12; months++ {
		quote, err := ComputeBooking("2024-01", months, &rate)
		require.NoError(t, err)
		assert.Greater(t, quote.TotalPrice, previous, "months=%d", months)
		previous = quote.TotalPrice
	}
}

func TestMonthsSpan(t *testing.T) {
	cases := []struct {
		start string
		end   string
		want  int
	}{
		{"2024-01-15", "2024-02-14", 1},
		{"2024-01-15", "2024-02-15", 2},
		{"2024-01-15", "2024-01-15", 1},
		{"2024-01-01", "2024-01-31", 1},
		{"2024-01-01", "2024-02-01", 2},
		{"2024-03-10", "2024-06-09", 3},
		{"2024-11-20", "2025-01-19", 2},
	}

	for _, tc := range cases {
		got := MonthsSpan(mustParse(t, tc.start), mustParse(t, tc.end))
		assert.Equal(t, tc.want, got, "%s to %s", tc.start, tc.end)
	}
}

func TestRoundToCents(t *testing.T) {
	assert.Equal(t, 10.01, RoundToCents(10.006))
	assert.Equal(t, 10.0, RoundToCents(10.004))
	assert.Equal(t, 0.0, RoundToCents(0))
	assert.Equal(t, 33.33, RoundToCents(99.99/3))
}

func TestParseDateRejectsOtherLayouts(t *testing.T) {
	_, err := ParseDate("15-01-2024")
	assert.Error(t, err)

	_, err = ParseDate("2024/01/15")
	assert.Error(t, err)

	_, err = ParseDate("")
	assert.Error(t, err)
}
