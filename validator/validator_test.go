package validator

import (
	"testing"

	"garagespace/constants"
	"garagespace/models"

	"github.com/stretchr/testify/assert"
)

func floatPtr(v float64) *float64 { return &v }

func TestValidateUser(t *testing.T) {
	valid := models.User{Email: "ana@example.com", Password: "secret1", Phone: "+34611222333"}
	assert.NoError(t, ValidateUser(&valid))

	noEmail := models.User{Password: "secret1"}
	assert.Error(t, ValidateUser(&noEmail))

	badEmail := models.User{Email: "not-an-email", Password: "secret1"}
	assert.Error(t, ValidateUser(&badEmail))

	shortPassword := models.User{Email: "ana@example.com", Password: "abc"}
	assert.Error(t, ValidateUser(&shortPassword))

	badPhone := models.User{Email: "ana@example.com", Password: "secret1", Phone: "call me"}
	assert.Error(t, ValidateUser(&badPhone))

	badRole := models.User{Email: "ana@example.com", Password: "secret1", Role: "owner"}
	assert.Error(t, ValidateUser(&badRole))
}

func TestValidateNonLoginUser(t *testing.T) {
	valid := models.User{Name: "Walk-in", Email: "walkin@example.com"}
	assert.NoError(t, ValidateNonLoginUser(&valid))

	noName := models.User{Email: "walkin@example.com"}
	assert.Error(t, ValidateNonLoginUser(&noName))

	noEmail := models.User{Name: "Walk-in"}
	assert.Error(t, ValidateNonLoginUser(&noEmail))
}

func TestValidateGarage(t *testing.T) {
	valid := models.Garage{Title: "Center garage", Location: "Madrid", Slot: 2, PricePerMonth: floatPtr(120)}
	assert.NoError(t, ValidateGarage(&valid))

	noTitle := models.Garage{Location: "Madrid", Slot: 1}
	assert.Error(t, ValidateGarage(&noTitle))

	noLocation := models.Garage{Title: "Center garage", Slot: 1}
	assert.Error(t, ValidateGarage(&noLocation))

	negativePrice := models.Garage{Title: "Center garage", Location: "Madrid", Slot: 1, PricePerMonth: floatPtr(-5)}
	assert.Error(t, ValidateGarage(&negativePrice))

	zeroSlot := models.Garage{Title: "Center garage", Location: "Madrid", Slot: 0}
	assert.Error(t, ValidateGarage(&zeroSlot))
}

func TestValidateBookingRequestRange(t *testing.T) {
	valid := models.BookingRequest{GarageID: 1, StartDate: "2024-03-01", EndDate: "2024-04-30"}
	assert.NoError(t, ValidateBookingRequest(&valid))

	reversed := models.BookingRequest{GarageID: 1, StartDate: "2024-04-30", EndDate: "2024-03-01"}
	assert.Error(t, ValidateBookingRequest(&reversed))

	badFormat := models.BookingRequest{GarageID: 1, StartDate: "01/03/2024", EndDate: "2024-04-30"}
	assert.Error(t, ValidateBookingRequest(&badFormat))
}

func TestValidateBookingRequestMonths(t *testing.T) {
	valid := models.BookingRequest{GarageID: 1, StartMonth: "2024-03", Months: 2}
	assert.NoError(t, ValidateBookingRequest(&valid))

	nothing := models.BookingRequest{GarageID: 1}
	assert.Error(t, ValidateBookingRequest(&nothing))

	noGarage := models.BookingRequest{StartMonth: "2024-03", Months: 2}
	assert.Error(t, ValidateBookingRequest(&noGarage))

	badStatus := models.BookingRequest{GarageID: 1, StartMonth: "2024-03", Months: 2, Status: "archived"}
	assert.Error(t, ValidateBookingRequest(&badStatus))

	okStatus := models.BookingRequest{GarageID: 1, StartMonth: "2024-03", Months: 2, Status: constants.BookingStatusApproved}
	assert.NoError(t, ValidateBookingRequest(&okStatus))
}

func TestValidateReview(t *testing.T) {
	valid := models.Review{GarageID: 1, Rating: 4, Comment: "clean and safe"}
	assert.NoError(t, ValidateReview(&valid))

	for _, rating := range []int{0, -1, 6} {
		bad := models.Review{GarageID: 1, Rating: rating}
		assert.Error(t, ValidateReview(&bad), "rating %d", rating)
	}

	noGarage := models.Review{Rating: 4}
	assert.Error(t, ValidateReview(&noGarage))
}

func TestIsValidDate(t *testing.T) {
	assert.True(t, IsValidDate("2024-03-01"))
	assert.False(t, IsValidDate("2024-3-1"))
	assert.False(t, IsValidDate("01-03-2024"))
	assert.False(t, IsValidDate(""))
}
