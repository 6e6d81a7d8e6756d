package controllers

import (
	"strconv"

	"garagespace/config"
	"garagespace/dto"
	"garagespace/middleware"
	"garagespace/models"
	"garagespace/response"
	"garagespace/validator"

	"github.com/gin-gonic/gin"
)

func convertToReviewResponse(review models.Review) dto.ReviewResponse {
	return dto.ReviewResponse{
		ID: review.ID,
		User: dto.UserSummary{
			ID:    review.User.ID,
			Name:  review.User.Name,
			Email: review.User.Email,
			Phone: review.User.Phone,
		},
		Garage:    convertToGarageSummary(review.Garage),
		Rating:    review.Rating,
		Comment:   review.Comment,
		CreatedAt: review.CreatedAt,
		UpdatedAt: review.UpdatedAt,
	}
}

// GetAllReviews lists reviews, optionally scoped to one garage, newest first.
func GetAllReviews(c *gin.Context) {
	tx := config.DB.Model(&models.Review{}).Preload("User").Preload("Garage")

	if garageID := c.Query("garageId"); garageID != "" {
		tx = tx.Where("garage_id = ?", garageID)
	}

	var reviews []models.Review
	if err := tx.Order("created_at DESC").Find(&reviews).Error; err != nil {
		response.ServerError(c)
		return
	}

	items := make([]dto.ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		items = append(items, convertToReviewResponse(r))
	}

	response.Success(c, items)
}

func GetReviewDetail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid review id")
		return
	}

	var review models.Review
	if err := config.DB.Preload("User").Preload("Garage").First(&review, id).Error; err != nil {
		response.NotFound(c, "review not found")
		return
	}

	response.Success(c, convertToReviewResponse(review))
}

func CreateReview(c *gin.Context) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req dto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	review := models.Review{
		UserID:   actor.UserID,
		GarageID: req.GarageID,
		Rating:   req.Rating,
		Comment:  req.Comment,
	}

	if err := validator.ValidateReview(&review); err != nil {
		response.FromError(c, err)
		return
	}

	var garage models.Garage
	if err := config.DB.First(&garage, review.GarageID).Error; err != nil {
		response.NotFound(c, "garage not found")
		return
	}

	// One review per user per garage; a second submission is an edit job,
	// not a new row.
	var existing models.Review
	if err := config.DB.Where("user_id = ? AND garage_id = ?", review.UserID, review.GarageID).
		First(&existing).Error; err == nil {
		response.Conflict(c, "you have already reviewed this garage")
		return
	}

	if err := config.DB.Create(&review).Error; err != nil {
		response.ServerError(c)
		return
	}

	if err := config.DB.Preload("User").Preload("Garage").First(&review, review.ID).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, convertToReviewResponse(review))
}

func UpdateReview(c *gin.Context) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid review id")
		return
	}

	var review models.Review
	if err := config.DB.First(&review, id).Error; err != nil {
		response.NotFound(c, "review not found")
		return
	}

	if review.UserID != actor.UserID && !actor.IsAdmin {
		response.Forbidden(c)
		return
	}

	var req dto.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if req.Rating != nil {
		review.Rating = *req.Rating
	}
	if req.Comment != nil {
		review.Comment = *req.Comment
	}

	if err := validator.ValidateReview(&review); err != nil {
		response.FromError(c, err)
		return
	}

	if err := config.DB.Save(&review).Error; err != nil {
		response.ServerError(c)
		return
	}

	if err := config.DB.Preload("User").Preload("Garage").First(&review, review.ID).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, convertToReviewResponse(review))
}

func DeleteReview(c *gin.Context) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid review id")
		return
	}

	var review models.Review
	if err := config.DB.First(&review, id).Error; err != nil {
		response.NotFound(c, "review not found")
		return
	}

	if review.UserID != actor.UserID && !actor.IsAdmin {
		response.Forbidden(c)
		return
	}

	if err := config.DB.Delete(&review).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{"message": "review deleted"})
}
