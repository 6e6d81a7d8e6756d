package services

import (
	"testing"

	"garagespace/constants"
	"garagespace/models"

	"github.com/stretchr/testify/assert"
)

func booking(garageID uint, status, start, end string) models.Booking {
	return models.Booking{
		GarageID:  garageID,
		Status:    status,
		StartDate: start,
		EndDate:   end,
	}
}

func TestOverlapsInclusiveBounds(t *testing.T) {
	// Sharing a single boundary day is an overlap.
	assert.True(t, Overlaps("2024-03-10", "2024-03-20", "2024-03-20", "2024-03-25"))
	assert.True(t, Overlaps("2024-03-20", "2024-03-25", "2024-03-10", "2024-03-20"))

	assert.False(t, Overlaps("2024-03-10", "2024-03-20", "2024-03-21", "2024-03-25"))
	assert.False(t, Overlaps("2024-03-21", "2024-03-25", "2024-03-10", "2024-03-20"))

	assert.True(t, Overlaps("2024-03-01", "2024-03-31", "2024-03-10", "2024-03-15"))
	assert.True(t, Overlaps("2024-03-10", "2024-03-15", "2024-03-01", "2024-03-31"))
}

func TestActiveBookingCountIgnoresTerminalStatuses(t *testing.T) {
	garage := &models.Garage{ID: 1, Slot: 3}
	window := "2024-03-01"
	windowEnd := "2024-03-31"

	bookings := []models.Booking{
		booking(1, constants.BookingStatusPending, "2024-03-05", "2024-04-04"),
		booking(1, constants.BookingStatusApproved, "2024-02-01", "2024-03-01"),
		booking(1, constants.BookingStatusRejected, "2024-03-01", "2024-03-31"),
		booking(1, constants.BookingStatusRemoved, "2024-03-01", "2024-03-31"),
	}

	assert.Equal(t, 2, ActiveBookingCount(garage, bookings, window, windowEnd))
}

func TestActiveBookingCountScopesToGarage(t *testing.T) {
	garage := &models.Garage{ID: 1, Slot: 2}

	bookings := []models.Booking{
		booking(1, constants.BookingStatusApproved, "2024-03-01", "2024-03-31"),
		booking(2, constants.BookingStatusApproved, "2024-03-01", "2024-03-31"),
	}

	assert.Equal(t, 1, ActiveBookingCount(garage, bookings, "2024-03-01", "2024-03-31"))
}

func TestActiveBookingCountExcludesDisjointDates(t *testing.T) {
	garage := &models.Garage{ID: 1, Slot: 2}

	bookings := []models.Booking{
		booking(1, constants.BookingStatusApproved, "2024-01-01", "2024-01-31"),
		booking(1, constants.BookingStatusApproved, "2024-05-01", "2024-05-31"),
	}

	assert.Equal(t, 0, ActiveBookingCount(garage, bookings, "2024-03-01", "2024-03-31"))
}

func TestSlotsLeftNeverNegative(t *testing.T) {
	garage := &models.Garage{ID: 1, Slot: 2}

	assert.Equal(t, 2, SlotsLeft(garage, 0))
	assert.Equal(t, 1, SlotsLeft(garage, 1))
	assert.Equal(t, 0, SlotsLeft(garage, 2))
	assert.Equal(t, 0, SlotsLeft(garage, 5))
}

func TestIsBookable(t *testing.T) {
	window := "2024-03-01"
	windowEnd := "2024-03-31"
	full := []models.Booking{
		booking(1, constants.BookingStatusApproved, "2024-03-01", "2024-03-31"),
	}

	open := &models.Garage{ID: 1, Slot: 2, IsAvailable: true}
	assert.True(t, IsBookable(open, full, window, windowEnd))

	oneSlot := &models.Garage{ID: 1, Slot: 1, IsAvailable: true}
	assert.False(t, IsBookable(oneSlot, full, window, windowEnd))

	// The availability switch wins even with free slots.
	switchedOff := &models.Garage{ID: 1, Slot: 5, IsAvailable: false}
	assert.False(t, IsBookable(switchedOff, nil, window, windowEnd))
}
