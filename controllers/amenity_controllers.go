package controllers

import (
	"strconv"

	"garagespace/config"
	"garagespace/models"
	"garagespace/response"
	"garagespace/services"
	"garagespace/validator"

	"github.com/gin-gonic/gin"
)

const amenityCacheKey = "amenities:all"

func invalidateAmenityCache() {
	rdb := config.RedisClient
	if rdb == nil {
		return
	}
	if err := services.DeleteFromRedis(config.Ctx, rdb, amenityCacheKey); err != nil {
		log.Error("failed to invalidate amenity cache: " + err.Error())
	}
}

// GetAllAmenities lists every amenity; the list is small and changes rarely,
// so it is cached as a whole.
func GetAllAmenities(c *gin.Context) {
	rdb := config.RedisClient

	if rdb != nil {
		var cached []models.Amenity
		if err := services.GetFromRedis(config.Ctx, rdb, amenityCacheKey, &cached); err == nil && cached != nil {
			response.Success(c, cached)
			return
		}
	}

	var amenities []models.Amenity
	if err := config.DB.Order("name ASC").Find(&amenities).Error; err != nil {
		response.ServerError(c)
		return
	}

	if rdb != nil {
		if err := services.SetToRedis(config.Ctx, rdb, amenityCacheKey, amenities, amenityCacheTTL); err != nil {
			log.Error("failed to cache amenities: " + err.Error())
		}
	}

	response.Success(c, amenities)
}

func GetAmenityDetail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid amenity id")
		return
	}

	var amenity models.Amenity
	if err := config.DB.First(&amenity, id).Error; err != nil {
		response.NotFound(c, "amenity not found")
		return
	}

	response.Success(c, amenity)
}

func CreateAmenity(c *gin.Context) {
	var amenity models.Amenity
	if err := c.ShouldBindJSON(&amenity); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := validator.ValidateAmenity(&amenity); err != nil {
		response.FromError(c, err)
		return
	}

	var existing models.Amenity
	if err := config.DB.Where("name = ?", amenity.Name).First(&existing).Error; err == nil {
		response.Conflict(c, "amenity already exists")
		return
	}

	if err := config.DB.Create(&amenity).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateAmenityCache()
	response.Success(c, amenity)
}

func UpdateAmenity(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid amenity id")
		return
	}

	var amenity models.Amenity
	if err := config.DB.First(&amenity, id).Error; err != nil {
		response.NotFound(c, "amenity not found")
		return
	}

	var input models.Amenity
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	amenity.Name = input.Name
	if err := validator.ValidateAmenity(&amenity); err != nil {
		response.FromError(c, err)
		return
	}

	if err := config.DB.Save(&amenity).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateAmenityCache()
	response.Success(c, amenity)
}

func DeleteAmenity(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid amenity id")
		return
	}

	var amenity models.Amenity
	if err := config.DB.First(&amenity, id).Error; err != nil {
		response.NotFound(c, "amenity not found")
		return
	}

	// Detach from garages first so the join table never holds dangling ids.
	if err := config.DB.Model(&amenity).Association("Garages").Clear(); err != nil {
		response.ServerError(c)
		return
	}

	if err := config.DB.Delete(&amenity).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateAmenityCache()
	response.Success(c, gin.H{"message": "amenity deleted"})
}
