package controllers

import (
	"strings"

	"garagespace/config"
	"garagespace/constants"
	"garagespace/dto"
	"garagespace/middleware"
	"garagespace/models"
	"garagespace/response"
	"garagespace/validator"

	"github.com/gin-gonic/gin"
)

// GetUsers lists every account for the back office.
func GetUsers(c *gin.Context) {
	tx := config.DB.Model(&models.User{})

	if role := c.Query("role"); role != "" {
		tx = tx.Where("role = ?", role)
	}
	if search := c.Query("search"); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		tx = tx.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", like, like)
	}

	var users []models.User
	if err := tx.Order("created_at DESC").Find(&users).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, users)
}

// CreateUser records a customer who books over the phone and never signs in.
// When the email already belongs to an account, that account is returned
// instead of erroring, so front-desk staff can re-enter a known customer.
func CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user := models.User{
		Name:     req.Name,
		Email:    strings.ToLower(req.Email),
		Phone:    req.Phone,
		Role:     constants.RoleUser,
		Category: constants.UserCategoryNonLogin,
	}

	if err := validator.ValidateNonLoginUser(&user); err != nil {
		response.FromError(c, err)
		return
	}

	var existing models.User
	if err := config.DB.Where("email = ?", user.Email).First(&existing).Error; err == nil {
		response.Success(c, existing)
		return
	}

	if err := config.DB.Create(&user).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, user)
}

func GetProfile(c *gin.Context) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var user models.User
	if err := config.DB.First(&user, actor.UserID).Error; err != nil {
		response.NotFound(c, "user not found")
		return
	}

	response.Success(c, user)
}

// UpdateProfile lets a signed-in user edit their own name and phone.
func UpdateProfile(c *gin.Context) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var user models.User
	if err := config.DB.First(&user, actor.UserID).Error; err != nil {
		response.NotFound(c, "user not found")
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}

	if user.Phone != "" && !validator.IsValidPhone(user.Phone) {
		response.BadRequest(c, "invalid phone number")
		return
	}

	if err := config.DB.Save(&user).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, user)
}
