package controllers

import (
	"sort"
	"time"

	"garagespace/config"
	"garagespace/constants"
	"garagespace/dto"
	"garagespace/models"
	"garagespace/response"
	"garagespace/services"

	"github.com/gin-gonic/gin"
)

// GetGarageAnalytics reports per-garage booking counts, current occupancy and
// gross revenue for the back office dashboard.
func GetGarageAnalytics(c *gin.Context) {
	var garages []models.Garage
	if err := config.DB.Find(&garages).Error; err != nil {
		response.ServerError(c)
		return
	}

	var bookings []models.Booking
	if err := config.DB.Find(&bookings).Error; err != nil {
		response.ServerError(c)
		return
	}

	today := time.Now().Format(constants.DateLayout)

	byGarage := make(map[uint][]models.Booking, len(garages))
	for _, b := range bookings {
		byGarage[b.GarageID] = append(byGarage[b.GarageID], b)
	}

	rows := make([]dto.GarageAnalytics, 0, len(garages))
	for _, g := range garages {
		garageBookings := byGarage[g.ID]

		row := dto.GarageAnalytics{
			GarageID: g.ID,
			Title:    g.Title,
			Location: g.Location,
			Slot:     g.Slot,
		}

		for _, b := range garageBookings {
			row.TotalBookings++
			switch b.Status {
			case constants.BookingStatusPending:
				row.PendingBookings++
			case constants.BookingStatusApproved:
				row.ApprovedBookings++
				row.Revenue += b.TotalPrice
			}
		}

		// Occupancy counts the bookings covering today.
		row.ActiveBookings = services.ActiveBookingCount(&g, garageBookings, today, today)
		row.SlotsLeft = services.SlotsLeft(&g, row.ActiveBookings)

		rows = append(rows, row)
	}

	response.Success(c, rows)
}

// GetRevenue aggregates approved-booking revenue overall and per start month.
func GetRevenue(c *gin.Context) {
	var bookings []models.Booking
	if err := config.DB.
		Where("status = ?", constants.BookingStatusApproved).
		Find(&bookings).Error; err != nil {
		response.ServerError(c)
		return
	}

	now := time.Now()
	currentMonth := now.Format(constants.MonthLayout)
	lastMonth := now.AddDate(0, -1, 0).Format(constants.MonthLayout)

	result := dto.RevenueResponse{}
	byMonth := make(map[string]float64)
	countByMonth := make(map[string]int)

	for _, b := range bookings {
		result.TotalRevenue += b.TotalPrice

		if len(b.StartDate) < len(constants.MonthLayout) {
			continue
		}
		month := b.StartDate[:len(constants.MonthLayout)]
		byMonth[month] += b.TotalPrice
		countByMonth[month]++

		if month == currentMonth {
			result.CurrentMonthRevenue += b.TotalPrice
		}
		if month == lastMonth {
			result.LastMonthRevenue += b.TotalPrice
		}
	}

	months := make([]string, 0, len(byMonth))
	for m := range byMonth {
		months = append(months, m)
	}
	// ISO month keys sort chronologically as plain strings.
	sort.Strings(months)

	for _, m := range months {
		result.MonthlyRevenue = append(result.MonthlyRevenue, dto.MonthRevenue{
			Month:        m,
			Revenue:      services.RoundToCents(byMonth[m]),
			BookingCount: countByMonth[m],
		})
	}

	result.TotalRevenue = services.RoundToCents(result.TotalRevenue)
	result.CurrentMonthRevenue = services.RoundToCents(result.CurrentMonthRevenue)
	result.LastMonthRevenue = services.RoundToCents(result.LastMonthRevenue)

	response.Success(c, result)
}
