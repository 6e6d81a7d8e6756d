package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr(v float64) *float64 { return &v }

func TestMonthlyRate(t *testing.T) {
	monthly := Garage{PricePerMonth: ptr(150)}
	rate, ok := monthly.MonthlyRate()
	assert.True(t, ok)
	assert.Equal(t, 150.0, rate)

	// Legacy rows only carry a daily price; it converts at 30 days.
	daily := Garage{PricePerDay: ptr(5)}
	rate, ok = daily.MonthlyRate()
	assert.True(t, ok)
	assert.Equal(t, 150.0, rate)

	// The monthly price wins when both are set.
	both := Garage{PricePerMonth: ptr(100), PricePerDay: ptr(5)}
	rate, ok = both.MonthlyRate()
	assert.True(t, ok)
	assert.Equal(t, 100.0, rate)

	unpriced := Garage{}
	rate, ok = unpriced.MonthlyRate()
	assert.False(t, ok)
	assert.Equal(t, 0.0, rate)
}

func TestValidateSlot(t *testing.T) {
	assert.NoError(t, (&Garage{Slot: 1}).ValidateSlot())
	assert.Error(t, (&Garage{Slot: 0}).ValidateSlot())
	assert.Error(t, (&Garage{Slot: -2}).ValidateSlot())
}
