package controllers

import (
	"fmt"
	"strconv"

	"garagespace/config"
	"garagespace/dto"
	"garagespace/models"
	"garagespace/response"
	"garagespace/services"
	"garagespace/validator"

	"github.com/gin-gonic/gin"
)

const garageCachePattern = "garages:*"

func convertToGarageSummary(garage models.Garage) dto.GarageSummary {
	return dto.GarageSummary{
		ID:       garage.ID,
		Title:    garage.Title,
		Location: garage.Location,
	}
}

func invalidateGarageCache() {
	rdb := config.RedisClient
	if rdb == nil {
		return
	}
	if err := services.DeleteKeysByPattern(config.Ctx, rdb, garageCachePattern); err != nil {
		log.Error("failed to invalidate garage cache: " + err.Error())
	}
}

// GetAllGarages lists garages with optional fuzzy search and pagination.
// Unfiltered pages are served from Redis when available.
func GetAllGarages(c *gin.Context) {
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
	search := c.Query("search")

	cacheKey := fmt.Sprintf("garages:all:%d:%d", page, limit)
	rdb := config.RedisClient

	if search == "" && rdb != nil {
		var cached response.Paginated
		if err := services.GetFromRedis(config.Ctx, rdb, cacheKey, &cached); err == nil && cached.Data != nil {
			c.JSON(200, cached)
			return
		}
	}

	var garages []models.Garage
	if err := config.DB.Preload("Amenities").Find(&garages).Error; err != nil {
		response.ServerError(c)
		return
	}

	if search != "" {
		scored := services.SearchGarages(search, garages)
		garages = garages[:0]
		for _, s := range scored {
			garages = append(garages, s.Garage)
		}
	}

	total := len(garages)
	start := page * limit
	end := start + limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}
	pageItems := garages[start:end]

	result := response.Paginated{
		Data: pageItems,
		Pagination: response.Pagination{
			Page:  page,
			Limit: limit,
			Total: total,
		},
	}

	if search == "" && rdb != nil {
		if err := services.SetToRedis(config.Ctx, rdb, cacheKey, result, garageCacheTTL); err != nil {
			log.Error("failed to cache garage list: " + err.Error())
		}
	}

	c.JSON(200, result)
}

func GetGarageDetail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid garage id")
		return
	}

	var garage models.Garage
	if err := config.DB.Preload("Amenities").First(&garage, id).Error; err != nil {
		response.NotFound(c, "garage not found")
		return
	}

	response.Success(c, garage)
}

func CreateGarage(c *gin.Context) {
	var req dto.CreateGarageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	garage := models.Garage{
		Title:         req.Title,
		Description:   req.Description,
		Location:      req.Location,
		PricePerMonth: req.PricePerMonth,
		PricePerDay:   req.PricePerDay,
		Images:        req.Images,
	}
	if req.Slot != nil {
		garage.Slot = *req.Slot
	} else {
		garage.Slot = 1
	}
	if req.IsAvailable != nil {
		garage.IsAvailable = *req.IsAvailable
	} else {
		garage.IsAvailable = true
	}

	if err := validator.ValidateGarage(&garage); err != nil {
		response.FromError(c, err)
		return
	}

	if len(req.AmenityIDs) > 0 {
		var amenities []models.Amenity
		if err := config.DB.Where("id IN ?", req.AmenityIDs).Find(&amenities).Error; err != nil {
			response.ServerError(c)
			return
		}
		garage.Amenities = amenities
	}

	if err := config.DB.Create(&garage).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateGarageCache()
	response.Success(c, garage)
}

func UpdateGarage(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid garage id")
		return
	}

	var garage models.Garage
	if err := config.DB.First(&garage, id).Error; err != nil {
		response.NotFound(c, "garage not found")
		return
	}

	var req dto.UpdateGarageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if req.Title != nil {
		garage.Title = *req.Title
	}
	if req.Description != nil {
		garage.Description = *req.Description
	}
	if req.Location != nil {
		garage.Location = *req.Location
	}
	if req.PricePerMonth != nil {
		garage.PricePerMonth = req.PricePerMonth
	}
	if req.PricePerDay != nil {
		garage.PricePerDay = req.PricePerDay
	}
	if req.Slot != nil {
		garage.Slot = *req.Slot
	}
	if req.IsAvailable != nil {
		garage.IsAvailable = *req.IsAvailable
	}
	if req.Images != nil {
		garage.Images = *req.Images
	}

	if err := validator.ValidateGarage(&garage); err != nil {
		response.FromError(c, err)
		return
	}

	if err := config.DB.Save(&garage).Error; err != nil {
		response.ServerError(c)
		return
	}

	// A provided amenity list replaces the whole link set.
	if req.AmenityIDs != nil {
		var amenities []models.Amenity
		if len(*req.AmenityIDs) > 0 {
			if err := config.DB.Where("id IN ?", *req.AmenityIDs).Find(&amenities).Error; err != nil {
				response.ServerError(c)
				return
			}
		}
		if err := config.DB.Model(&garage).Association("Amenities").Replace(amenities); err != nil {
			response.ServerError(c)
			return
		}
	}

	if err := config.DB.Preload("Amenities").First(&garage, garage.ID).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateGarageCache()
	response.Success(c, garage)
}

func DeleteGarage(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid garage id")
		return
	}

	var garage models.Garage
	if err := config.DB.First(&garage, id).Error; err != nil {
		response.NotFound(c, "garage not found")
		return
	}

	// Clear the amenity links before removing the row itself.
	if err := config.DB.Model(&garage).Association("Amenities").Clear(); err != nil {
		response.ServerError(c)
		return
	}

	if err := config.DB.Delete(&garage).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateGarageCache()
	response.Success(c, gin.H{"message": "garage deleted"})
}

// ChangeGarageAvailability flips the manual kill switch on a garage. An
// unavailable garage rejects new bookings regardless of free slots.
func ChangeGarageAvailability(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid garage id")
		return
	}

	var req dto.ChangeAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if req.IsAvailable == nil {
		response.BadRequest(c, "isAvailable is required")
		return
	}

	var garage models.Garage
	if err := config.DB.First(&garage, id).Error; err != nil {
		response.NotFound(c, "garage not found")
		return
	}

	garage.IsAvailable = *req.IsAvailable
	if err := config.DB.Save(&garage).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateGarageCache()
	response.Success(c, garage)
}
