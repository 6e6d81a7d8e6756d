package controllers

import (
	"garagespace/config"
	"garagespace/constants"
	"garagespace/dto"
	"garagespace/models"
	"garagespace/response"
	"garagespace/services"
	"garagespace/validator"

	"github.com/gin-gonic/gin"
)

// GetSlots annotates every garage with its occupancy for a requested date
// window. The figures are advisory; nothing blocks a booking created between
// the check and the submit.
func GetSlots(c *gin.Context) {
	startDate := c.Query("startDate")
	endDate := c.Query("endDate")
	if startDate == "" || endDate == "" {
		response.BadRequest(c, "startDate and endDate are required")
		return
	}
	if !validator.IsValidDate(startDate) || !validator.IsValidDate(endDate) {
		response.BadRequest(c, "dates must use the YYYY-MM-DD format")
		return
	}
	if endDate < startDate {
		response.BadRequest(c, "endDate must not precede startDate")
		return
	}

	var garages []models.Garage
	if err := config.DB.Find(&garages).Error; err != nil {
		response.ServerError(c)
		return
	}

	var bookings []models.Booking
	if err := config.DB.
		Where("status IN ?", []string{constants.BookingStatusPending, constants.BookingStatusApproved}).
		Where("start_date <= ? AND end_date >= ?", endDate, startDate).
		Find(&bookings).Error; err != nil {
		response.ServerError(c)
		return
	}

	byGarage := make(map[uint][]models.Booking, len(garages))
	for _, b := range bookings {
		byGarage[b.GarageID] = append(byGarage[b.GarageID], b)
	}

	statuses := make([]dto.SlotStatus, 0, len(garages))
	for _, g := range garages {
		garageBookings := byGarage[g.ID]
		active := services.ActiveBookingCount(&g, garageBookings, startDate, endDate)
		left := services.SlotsLeft(&g, active)
		statuses = append(statuses, dto.SlotStatus{
			ID:             g.ID,
			Title:          g.Title,
			Location:       g.Location,
			Description:    g.Description,
			PricePerMonth:  g.PricePerMonth,
			Slot:           g.Slot,
			IsAvailable:    g.IsAvailable,
			Images:         g.Images,
			ActiveBookings: active,
			SlotsLeft:      left,
			Bookable:       services.IsBookable(&g, garageBookings, startDate, endDate),
		})
	}

	response.Success(c, statuses)
}
