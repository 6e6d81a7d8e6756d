package models

import (
	"testing"

	"garagespace/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPendingTransitions(t *testing.T) {
	state := GetBookingState(constants.BookingStatusPending)

	approve := Booking{Status: constants.BookingStatusPending}
	require.NoError(t, state.Approve(&approve))
	assert.Equal(t, constants.BookingStatusApproved, approve.Status)

	reject := Booking{Status: constants.BookingStatusPending}
	require.NoError(t, state.Reject(&reject))
	assert.Equal(t, constants.BookingStatusRejected, reject.Status)

	remove := Booking{Status: constants.BookingStatusPending}
	require.NoError(t, state.Remove(&remove, "double booked"))
	assert.Equal(t, constants.BookingStatusRemoved, remove.Status)
	assert.Equal(t, "double booked", remove.RemovedReason)
}

func TestApprovedTransitions(t *testing.T) {
	state := GetBookingState(constants.BookingStatusApproved)

	b := Booking{Status: constants.BookingStatusApproved}
	assert.Error(t, state.Approve(&b))
	assert.Error(t, state.Reject(&b))
	assert.Equal(t, constants.BookingStatusApproved, b.Status)

	require.NoError(t, state.Remove(&b, "customer cancelled"))
	assert.Equal(t, constants.BookingStatusRemoved, b.Status)
}

func TestRemovalRequiresReason(t *testing.T) {
	for _, status := range []string{constants.BookingStatusPending, constants.BookingStatusApproved} {
		b := Booking{Status: status}
		state := GetBookingState(status)

		err := state.Remove(&b, "")
		assert.Error(t, err, "status %s", status)
		assert.Equal(t, status, b.Status, "a failed removal must not change the status")
		assert.Empty(t, b.RemovedReason)
	}
}

func TestTerminalStatesRefuseEverything(t *testing.T) {
	for _, status := range []string{constants.BookingStatusRejected, constants.BookingStatusRemoved} {
		b := Booking{Status: status}
		state := GetBookingState(status)

		assert.Error(t, state.Approve(&b), "status %s", status)
		assert.Error(t, state.Reject(&b), "status %s", status)
		assert.Error(t, state.Remove(&b, "some reason"), "status %s", status)
		assert.Equal(t, status, b.Status)
	}
}

func TestStatusPredicates(t *testing.T) {
	assert.True(t, IsActiveStatus(constants.BookingStatusPending))
	assert.True(t, IsActiveStatus(constants.BookingStatusApproved))
	assert.False(t, IsActiveStatus(constants.BookingStatusRejected))
	assert.False(t, IsActiveStatus(constants.BookingStatusRemoved))

	assert.True(t, IsTerminalStatus(constants.BookingStatusRejected))
	assert.True(t, IsTerminalStatus(constants.BookingStatusRemoved))
	assert.False(t, IsTerminalStatus(constants.BookingStatusPending))

	assert.True(t, IsValidStatus(constants.BookingStatusPending))
	assert.False(t, IsValidStatus("archived"))
	assert.False(t, IsValidStatus(""))
}
