package services

import (
	"garagespace/models"
)

// Overlaps reports whether the inclusive ranges [aStart, aEnd] and
// [bStart, bEnd] share at least one day. Dates are wire-format strings;
// the ISO layout makes string comparison equal to date comparison.
func Overlaps(aStart, aEnd, bStart, bEnd string) bool {
	return aStart <= bEnd && aEnd >= bStart
}

// ActiveBookingCount counts the bookings of the garage that consume a slot
// somewhere inside the query window. Only pending and approved bookings
// hold capacity; rejected and removed never count, whatever their dates.
func ActiveBookingCount(garage *models.Garage, bookings []models.Booking, queryStart, queryEnd string) int {
	count := 0
	for _, booking := range bookings {
		if booking.GarageID != garage.ID {
			continue
		}
		if !models.IsActiveStatus(booking.Status) {
			continue
		}
		if !Overlaps(booking.StartDate, booking.EndDate, queryStart, queryEnd) {
			continue
		}
		count++
	}
	return count
}

// SlotsLeft returns the free capacity given an active-booking count, never
// below zero. Zero means the garage presents as full for the window,
// independent of the administrator availability switch; either condition
// alone makes the garage unbookable.
func SlotsLeft(garage *models.Garage, activeCount int) int {
	left := garage.Slot - activeCount
	if left < 0 {
		return 0
	}
	return left
}

// IsBookable combines the two gates: the admin kill-switch and the slot
// count for the window. This evaluation is advisory; it re-counts rows the
// caller fetched and nothing prevents two concurrent requests from both
// seeing the last free slot.
func IsBookable(garage *models.Garage, bookings []models.Booking, queryStart, queryEnd string) bool {
	if !garage.IsAvailable {
		return false
	}
	return SlotsLeft(garage, ActiveBookingCount(garage, bookings, queryStart, queryEnd)) > 0
}
