package services

import (
	"fmt"
	"math"
	"time"

	"garagespace/constants"
	apperrors "garagespace/errors"
)

// BookingQuote is the derived date range and price for a rental request.
type BookingQuote struct {
	StartDate  time.Time
	EndDate    time.Time
	TotalPrice float64
}

// ComputeBooking derives the inclusive date range and total price for a
// rental starting at the first day of startMonth ("2006-01") and running
// for the given number of whole months. monthlyRate is nil when the garage
// carries no usable price, which is a configuration error rather than a
// zero-priced booking.
func ComputeBooking(startMonth string, months int, monthlyRate *float64) (*BookingQuote, error) {
	if months < 1 {
		return nil, apperrors.Validation("number of months must be at least 1")
	}
	if monthlyRate == nil {
		return nil, apperrors.Configuration("garage missing monthly price")
	}

	startDate, err := time.Parse(constants.MonthLayout, startMonth)
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidFormat,
			fmt.Sprintf("invalid start month %q, expected YYYY-MM", startMonth), err)
	}

	// The range is inclusive: start 2024-03 for 2 months ends 2024-04-30.
	endDate := startDate.AddDate(0, months, -1)

	return &BookingQuote{
		StartDate:  startDate,
		EndDate:    endDate,
		TotalPrice: RoundToCents(*monthlyRate * float64(months)),
	}, nil
}

// MonthsSpan counts the whole months covered by the inclusive range
// [startDate, endDate], rounding partial trailing days up. A range ending on
// the same day-of-month as it starts spans one extra month (2024-01-15 to
// 2024-02-15 is 2 months; to 2024-02-14 is 1), and a zero-day range counts
// as 1. Callers price by this number, so the ceiling is intentional.
func MonthsSpan(startDate, endDate time.Time) int {
	months := (endDate.Year()-startDate.Year())*12 + int(endDate.Month()) - int(startDate.Month())
	if endDate.Day() >= startDate.Day() {
		months++
	}
	return months
}

// RoundToCents rounds half-up to the currency minor unit.
func RoundToCents(amount float64) float64 {
	return math.Floor(amount*100+0.5) / 100
}

// ParseDate parses a wire-format calendar date (YYYY-MM-DD).
func ParseDate(value string) (time.Time, error) {
	parsed, err := time.Parse(constants.DateLayout, value)
	if err != nil {
		return time.Time{}, apperrors.NewAppError(apperrors.ErrCodeInvalidFormat,
			fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", value), err)
	}
	return parsed, nil
}

// FormatDate renders a date in the wire format.
func FormatDate(value time.Time) string {
	return value.Format(constants.DateLayout)
}
