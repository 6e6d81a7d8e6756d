package controllers

import (
	"strconv"

	"garagespace/config"
	"garagespace/dto"
	"garagespace/middleware"
	"garagespace/models"
	"garagespace/response"
	"garagespace/services"
	"garagespace/validator"

	"github.com/gin-gonic/gin"
)

func bookingSvc() *services.BookingService {
	return services.NewBookingService(services.BookingServiceOptions{
		DB:     config.DB,
		Logger: log,
	})
}

func convertToBookingResponse(booking models.Booking) dto.BookingResponse {
	return dto.BookingResponse{
		ID: booking.ID,
		User: dto.UserSummary{
			ID:    booking.User.ID,
			Name:  booking.User.Name,
			Email: booking.User.Email,
			Phone: booking.User.Phone,
		},
		Garage:        convertToGarageSummary(booking.Garage),
		StartDate:     booking.StartDate,
		EndDate:       booking.EndDate,
		Status:        booking.Status,
		TotalPrice:    booking.TotalPrice,
		RemovedReason: booking.RemovedReason,
		CreatedAt:     booking.CreatedAt,
		UpdatedAt:     booking.UpdatedAt,
	}
}

// GetBookings lists every booking for the back office, newest first, with
// optional status, garage and user filters.
func GetBookings(c *gin.Context) {
	page := 0
	limit := 10
	if s := c.Query("page"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v >= 0 {
			page = v
		}
	}
	if s := c.Query("limit"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v > 0 {
			limit = v
		}
	}

	tx := config.DB.Model(&models.Booking{}).
		Preload("User").
		Preload("Garage")

	if status := c.Query("status"); status != "" {
		tx = tx.Where("status = ?", status)
	}
	if garageID := c.Query("garageId"); garageID != "" {
		tx = tx.Where("garage_id = ?", garageID)
	}
	if userID := c.Query("userId"); userID != "" {
		tx = tx.Where("user_id = ?", userID)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var bookings []models.Booking
	if err := tx.Order("created_at DESC").
		Offset(page * limit).
		Limit(limit).
		Find(&bookings).Error; err != nil {
		response.ServerError(c)
		return
	}

	items := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		items = append(items, convertToBookingResponse(b))
	}

	response.SuccessWithPagination(c, items, page, limit, int(total))
}

func CreateBooking(c *gin.Context) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := validator.ValidateBookingRequest(&req); err != nil {
		response.FromError(c, err)
		return
	}

	booking, err := bookingSvc().CreateBooking(actor, &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, convertToBookingResponse(*booking))
}

func GetBookingDetail(c *gin.Context) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid booking id")
		return
	}

	booking, err := bookingSvc().GetBooking(actor, uint(id))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, convertToBookingResponse(*booking))
}

// ChangeBookingStatus drives the booking state machine from the back office.
func ChangeBookingStatus(c *gin.Context) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid booking id")
		return
	}

	var req dto.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	booking, err := bookingSvc().ChangeStatus(actor, uint(id), req.Status, req.RemovedReason)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, convertToBookingResponse(*booking))
}

func DeleteBooking(c *gin.Context) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid booking id")
		return
	}

	if err := bookingSvc().DeleteBooking(actor, uint(id)); err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, gin.H{"message": "booking deleted"})
}

// GetBookingsByUserId returns the caller's own bookings. Admins may pass a
// userId query parameter to inspect another account.
func GetBookingsByUserId(c *gin.Context) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	userID := actor.UserID
	if actor.IsAdmin {
		if s := c.Query("userId"); s != "" {
			if v, err := strconv.Atoi(s); err == nil && v > 0 {
				userID = uint(v)
			}
		}
	}

	var bookings []models.Booking
	if err := config.DB.Preload("User").Preload("Garage").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&bookings).Error; err != nil {
		response.ServerError(c)
		return
	}

	items := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		items = append(items, convertToBookingResponse(b))
	}

	response.Success(c, items)
}
