package validator

import (
	"regexp"
	"time"

	"garagespace/constants"
	"garagespace/errors"
	"garagespace/models"
)

// ValidateUser checks a registration payload
func ValidateUser(user *models.User) error {
	if user.Email == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "email is required", nil)
	}

	if !isValidEmail(user.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "invalid email address", nil)
	}

	if user.Password == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "password is required", nil)
	}

	if len(user.Password) < 6 {
		return errors.NewAppError(errors.ErrCodeValidation, "password must have at least 6 characters", nil)
	}

	if user.Phone != "" && !isValidPhone(user.Phone) {
		return errors.NewAppError(errors.ErrCodeInvalidPhone, "invalid phone number", nil)
	}

	if user.Role != "" && user.Role != constants.RoleUser && user.Role != constants.RoleAdmin {
		return errors.NewAppError(errors.ErrCodeInvalidRole, "invalid role", nil)
	}

	return nil
}

// ValidateNonLoginUser checks an admin-created customer record; these
// accounts carry no password on purpose.
func ValidateNonLoginUser(user *models.User) error {
	if user.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "name is required", nil)
	}
	if user.Email == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "email is required", nil)
	}
	if !isValidEmail(user.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "invalid email address", nil)
	}
	return nil
}

// ValidateGarage checks a garage create/update payload
func ValidateGarage(garage *models.Garage) error {
	if garage.Title == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "title is required", nil)
	}

	if garage.Location == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "location is required", nil)
	}

	if garage.PricePerMonth != nil && *garage.PricePerMonth < 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "price per month must not be negative", nil)
	}

	if garage.PricePerDay != nil && *garage.PricePerDay < 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "price per day must not be negative", nil)
	}

	if garage.Slot < 1 {
		return errors.NewAppError(errors.ErrCodeValidation, "slot count must be at least 1", nil)
	}

	return nil
}

// ValidateBookingRequest checks the shape of a booking creation payload
// before pricing; date semantics are checked by the booking service.
func ValidateBookingRequest(request *models.BookingRequest) error {
	if request.GarageID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "garageId is required", nil)
	}

	hasRange := request.StartDate != "" && request.EndDate != ""
	hasMonths := request.StartMonth != "" && request.Months != 0

	if !hasRange && !hasMonths {
		return errors.NewAppError(errors.ErrCodeRequiredField,
			"either startDate and endDate or startMonth and months are required", nil)
	}

	if hasMonths && request.Months < 1 {
		return errors.NewAppError(errors.ErrCodeValidation, "number of months must be at least 1", nil)
	}

	if hasRange {
		startDate, err := time.Parse(constants.DateLayout, request.StartDate)
		if err != nil {
			return errors.NewAppError(errors.ErrCodeInvalidFormat, "invalid startDate, expected YYYY-MM-DD", err)
		}
		endDate, err := time.Parse(constants.DateLayout, request.EndDate)
		if err != nil {
			return errors.NewAppError(errors.ErrCodeInvalidFormat, "invalid endDate, expected YYYY-MM-DD", err)
		}
		if endDate.Before(startDate) {
			return errors.NewAppError(errors.ErrCodeValidation, "endDate must not be before startDate", nil)
		}
	}

	if request.Status != "" && !models.IsValidStatus(request.Status) {
		return errors.NewAppError(errors.ErrCodeInvalidStatus, "unknown booking status: "+request.Status, nil)
	}

	return nil
}

// ValidateReview checks a review payload
func ValidateReview(review *models.Review) error {
	if review.GarageID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "garageId is required", nil)
	}

	if review.Rating < 1 || review.Rating > 5 {
		return errors.NewAppError(errors.ErrCodeValidation, "rating must be between 1 and 5", nil)
	}

	return nil
}

// ValidateAmenity checks an amenity payload
func ValidateAmenity(amenity *models.Amenity) error {
	if amenity.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "name is required", nil)
	}
	return nil
}

// IsValidDate reports whether the value parses as a YYYY-MM-DD date.
func IsValidDate(value string) bool {
	_, err := time.Parse(constants.DateLayout, value)
	return err == nil
}

func isValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}

func isValidPhone(phone string) bool {
	phoneRegex := regexp.MustCompile(`^\+?[0-9]{8,15}$`)
	return phoneRegex.MatchString(phone)
}

// IsValidPhone exposes the phone check for handlers that patch a single field.
func IsValidPhone(phone string) bool {
	return isValidPhone(phone)
}
