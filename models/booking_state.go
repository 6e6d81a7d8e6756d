package models

import (
	"garagespace/constants"
	apperrors "garagespace/errors"
)

// BookingState defines the transitions available from a booking status.
// Approve and Reject are only reachable from pending; Remove is reachable
// from any non-terminal state and demands a reason. Rejected and removed
// are terminal.
type BookingState interface {
	Approve(booking *Booking) error
	Reject(booking *Booking) error
	Remove(booking *Booking, reason string) error
}

func applyRemoval(booking *Booking, reason string) error {
	if reason == "" {
		return apperrors.Validation("a removal reason is required")
	}
	booking.Status = constants.BookingStatusRemoved
	booking.RemovedReason = reason
	return nil
}

type PendingState struct{}

func (s *PendingState) Approve(booking *Booking) error {
	booking.Status = constants.BookingStatusApproved
	return nil
}

func (s *PendingState) Reject(booking *Booking) error {
	booking.Status = constants.BookingStatusRejected
	return nil
}

func (s *PendingState) Remove(booking *Booking, reason string) error {
	return applyRemoval(booking, reason)
}

type ApprovedState struct{}

func (s *ApprovedState) Approve(booking *Booking) error {
	return apperrors.Validation("booking already approved")
}

func (s *ApprovedState) Reject(booking *Booking) error {
	return apperrors.Validation("cannot reject an approved booking")
}

func (s *ApprovedState) Remove(booking *Booking, reason string) error {
	return applyRemoval(booking, reason)
}

type RejectedState struct{}

func (s *RejectedState) Approve(booking *Booking) error {
	return apperrors.Validation("cannot approve a rejected booking")
}

func (s *RejectedState) Reject(booking *Booking) error {
	return apperrors.Validation("booking already rejected")
}

func (s *RejectedState) Remove(booking *Booking, reason string) error {
	return apperrors.Validation("cannot remove a rejected booking")
}

type RemovedState struct{}

func (s *RemovedState) Approve(booking *Booking) error {
	return apperrors.Validation("cannot approve a removed booking")
}

func (s *RemovedState) Reject(booking *Booking) error {
	return apperrors.Validation("cannot reject a removed booking")
}

func (s *RemovedState) Remove(booking *Booking, reason string) error {
	return apperrors.Validation("booking already removed")
}

// GetBookingState returns the state matching the booking status
func GetBookingState(status string) BookingState {
	switch status {
	case constants.BookingStatusPending:
		return &PendingState{}
	case constants.BookingStatusApproved:
		return &ApprovedState{}
	case constants.BookingStatusRejected:
		return &RejectedState{}
	case constants.BookingStatusRemoved:
		return &RemovedState{}
	default:
		return &PendingState{}
	}
}

// IsTerminalStatus reports whether no further transition is possible.
func IsTerminalStatus(status string) bool {
	return status == constants.BookingStatusRejected || status == constants.BookingStatusRemoved
}

// IsActiveStatus reports whether the booking counts against garage capacity.
func IsActiveStatus(status string) bool {
	return status == constants.BookingStatusPending || status == constants.BookingStatusApproved
}

// IsValidStatus reports whether status names a known booking state.
func IsValidStatus(status string) bool {
	switch status {
	case constants.BookingStatusPending,
		constants.BookingStatusApproved,
		constants.BookingStatusRejected,
		constants.BookingStatusRemoved:
		return true
	}
	return false
}
