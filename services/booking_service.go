package services

import (
	"errors"

	"garagespace/constants"
	apperrors "garagespace/errors"
	"garagespace/models"
	"garagespace/services/logger"

	"gorm.io/gorm"
)

// Actor is the resolved request identity handed in by the auth middleware.
type Actor struct {
	UserID  uint
	IsAdmin bool
}

// BookingService owns the booking lifecycle: creation with pricing and the
// status state machine. Availability stays advisory; creation does not
// lock a slot, matching the read-count semantics of the listing screens.
type BookingService struct {
	db  *gorm.DB
	log logger.Logger
}

type BookingServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
}

func NewBookingService(opts BookingServiceOptions) *BookingService {
	if opts.Logger == nil {
		opts.Logger = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &BookingService{db: opts.DB, log: opts.Logger}
}

// EffectiveUserID resolves who the booking belongs to. Only administrators
// may book on behalf of another user; everyone else gets their own id no
// matter what the request says.
func EffectiveUserID(actor Actor, requestedUserID uint) uint {
	if actor.IsAdmin && requestedUserID != 0 {
		return requestedUserID
	}
	return actor.UserID
}

// InitialStatus resolves the status a new booking starts in. Administrators
// may back-date historical bookings with an explicit status; without one
// their bookings start approved. Regular users always start pending.
func InitialStatus(actor Actor, requestedStatus string) (string, error) {
	if requestedStatus != "" {
		if !actor.IsAdmin {
			return "", apperrors.Forbidden("only administrators may set a booking status")
		}
		if !models.IsValidStatus(requestedStatus) {
			return "", apperrors.Validation("unknown booking status: " + requestedStatus)
		}
		return requestedStatus, nil
	}
	if actor.IsAdmin {
		return constants.BookingStatusApproved, nil
	}
	return constants.BookingStatusPending, nil
}

// CreateBooking validates the request, prices it against the garage's
// monthly rate at this moment, and persists the row. Requests carry either
// an explicit inclusive date range or a startMonth plus month count.
func (s *BookingService) CreateBooking(actor Actor, request *models.BookingRequest) (*models.Booking, error) {
	if request.GarageID == 0 {
		return nil, apperrors.Validation("garageId is required")
	}

	userID := EffectiveUserID(actor, request.UserID)

	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("user not found")
		}
		return nil, apperrors.Internal(err)
	}

	var garage models.Garage
	if err := s.db.First(&garage, request.GarageID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("garage not found")
		}
		return nil, apperrors.Internal(err)
	}

	rate, hasRate := garage.MonthlyRate()
	if !hasRate {
		return nil, apperrors.Configuration("garage missing monthly price")
	}

	startDate, endDate, totalPrice, err := s.priceRequest(request, rate)
	if err != nil {
		return nil, err
	}
	if totalPrice <= 0 {
		return nil, apperrors.Validation("total price must be greater than 0")
	}

	status, err := InitialStatus(actor, request.Status)
	if err != nil {
		return nil, err
	}

	booking := models.Booking{
		UserID:     userID,
		GarageID:   request.GarageID,
		StartDate:  startDate,
		EndDate:    endDate,
		Status:     status,
		TotalPrice: totalPrice,
	}

	if err := s.db.Create(&booking).Error; err != nil {
		return nil, apperrors.Internal(err)
	}

	if err := s.db.Preload("User").Preload("Garage").First(&booking, booking.ID).Error; err != nil {
		return nil, apperrors.Internal(err)
	}

	s.log.Info("booking %d created for user %d on garage %d (%s to %s, total %.2f, status %s)",
		booking.ID, booking.UserID, booking.GarageID, booking.StartDate, booking.EndDate, booking.TotalPrice, booking.Status)

	return &booking, nil
}

func (s *BookingService) priceRequest(request *models.BookingRequest, rate float64) (string, string, float64, error) {
	if request.StartMonth != "" || request.Months != 0 {
		quote, err := ComputeBooking(request.StartMonth, request.Months, &rate)
		if err != nil {
			return "", "", 0, err
		}
		return FormatDate(quote.StartDate), FormatDate(quote.EndDate), quote.TotalPrice, nil
	}

	if request.StartDate == "" || request.EndDate == "" {
		return "", "", 0, apperrors.Validation("either startDate and endDate or startMonth and months are required")
	}

	startDate, err := ParseDate(request.StartDate)
	if err != nil {
		return "", "", 0, err
	}
	endDate, err := ParseDate(request.EndDate)
	if err != nil {
		return "", "", 0, err
	}
	if endDate.Before(startDate) {
		return "", "", 0, apperrors.Validation("endDate must not be before startDate")
	}

	months := MonthsSpan(startDate, endDate)
	return request.StartDate, request.EndDate, RoundToCents(rate * float64(months)), nil
}

// ChangeStatus drives the booking state machine. Only administrators may
// cause transitions; moving to removed demands a non-empty reason.
func (s *BookingService) ChangeStatus(actor Actor, bookingID uint, newStatus, reason string) (*models.Booking, error) {
	if !actor.IsAdmin {
		return nil, apperrors.Forbidden("only administrators may change a booking status")
	}

	var booking models.Booking
	if err := s.db.Preload("User").Preload("Garage").First(&booking, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("booking not found")
		}
		return nil, apperrors.Internal(err)
	}

	state := models.GetBookingState(booking.Status)
	switch newStatus {
	case constants.BookingStatusApproved:
		if err := state.Approve(&booking); err != nil {
			return nil, err
		}
	case constants.BookingStatusRejected:
		if err := state.Reject(&booking); err != nil {
			return nil, err
		}
	case constants.BookingStatusRemoved:
		if err := state.Remove(&booking, reason); err != nil {
			return nil, err
		}
	case constants.BookingStatusPending:
		return nil, apperrors.Validation("a booking cannot return to pending")
	default:
		return nil, apperrors.Validation("unknown booking status: " + newStatus)
	}

	if err := s.db.Save(&booking).Error; err != nil {
		return nil, apperrors.Internal(err)
	}

	s.log.Info("booking %d moved to %s by admin %d", booking.ID, booking.Status, actor.UserID)

	return &booking, nil
}

// GetBooking fetches a booking, visible to its owner and administrators.
func (s *BookingService) GetBooking(actor Actor, bookingID uint) (*models.Booking, error) {
	var booking models.Booking
	if err := s.db.Preload("User").Preload("Garage").First(&booking, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("booking not found")
		}
		return nil, apperrors.Internal(err)
	}

	if booking.UserID != actor.UserID && !actor.IsAdmin {
		return nil, apperrors.Forbidden("not your booking")
	}

	return &booking, nil
}

// DeleteBooking hard-deletes a row. Admin API only; the user-visible flow
// never deletes, it moves bookings to removed.
func (s *BookingService) DeleteBooking(actor Actor, bookingID uint) error {
	if !actor.IsAdmin {
		return apperrors.Forbidden("only administrators may delete bookings")
	}

	var booking models.Booking
	if err := s.db.First(&booking, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("booking not found")
		}
		return apperrors.Internal(err)
	}

	if err := s.db.Delete(&booking).Error; err != nil {
		return apperrors.Internal(err)
	}

	s.log.Info("booking %d deleted by admin %d", bookingID, actor.UserID)
	return nil
}
