package controllers

import (
	"strings"

	"garagespace/config"
	"garagespace/constants"
	"garagespace/dto"
	"garagespace/models"
	"garagespace/response"
	"garagespace/services"
	"garagespace/validator"

	"github.com/gin-gonic/gin"
)

const accessTokenMinutes = 60 * 24 * 3

func convertToUserLoginResponse(user models.User) dto.UserLoginResponse {
	return dto.UserLoginResponse{
		UserID:    user.ID,
		UserName:  user.Name,
		UserEmail: user.Email,
		UserPhone: user.Phone,
		UserRole:  user.Role,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

func issueToken(c *gin.Context, user models.User) {
	accessToken, err := services.GenerateToken(services.UserInfo{
		UserId: user.ID,
		Role:   user.Role,
	}, accessTokenMinutes)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{
		"user_info":   convertToUserLoginResponse(user),
		"accessToken": accessToken,
	})
}

func Login(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	input.Identifier = strings.ToLower(input.Identifier)

	var user models.User
	if err := config.DB.Where("email = ? OR phone = ?", input.Identifier, input.Identifier).First(&user).Error; err != nil {
		response.BadRequest(c, "invalid email or password")
		return
	}

	// Non-login users have no credentials at all
	if !user.CanLogin() {
		response.BadRequest(c, "invalid email or password")
		return
	}

	if err := services.CheckPassword(user.Password, input.Password); err != nil {
		response.BadRequest(c, "invalid email or password")
		return
	}

	issueToken(c, user)
}

// AdminLogin is the dedicated back-office login; it only accepts accounts
// holding the admin role.
func AdminLogin(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	input.Identifier = strings.ToLower(input.Identifier)

	var user models.User
	if err := config.DB.Where("email = ? AND role = ?", input.Identifier, constants.RoleAdmin).First(&user).Error; err != nil {
		response.Unauthorized(c)
		return
	}

	if err := services.CheckPassword(user.Password, input.Password); err != nil {
		response.Unauthorized(c)
		return
	}

	issueToken(c, user)
}

func RegisterUser(c *gin.Context) {
	var input dto.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user := models.User{
		Name:     input.Name,
		Email:    strings.ToLower(input.Email),
		Password: input.Password,
		Phone:    input.Phone,
		Role:     constants.RoleUser,
	}

	if err := validator.ValidateUser(&user); err != nil {
		response.FromError(c, err)
		return
	}

	var existing models.User
	if err := config.DB.Where("email = ?", user.Email).First(&existing).Error; err == nil {
		response.Conflict(c, "email already registered")
		return
	}

	hashed, err := services.HashPassword(user.Password)
	if err != nil {
		response.ServerError(c)
		return
	}
	user.Password = hashed

	if err := config.DB.Create(&user).Error; err != nil {
		response.ServerError(c)
		return
	}

	issueToken(c, user)
}

// AuthGoogle signs a user in from a verified Google ID token, creating the
// account on first sight.
func AuthGoogle(c *gin.Context) {
	var input dto.GoogleAuthInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	identity, err := services.VerifyGoogleIDToken(c.Request.Context(), input.IDToken)
	if err != nil {
		response.FromError(c, err)
		return
	}

	email := strings.ToLower(identity.Email)

	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		user = models.User{
			Name:  identity.Name,
			Email: email,
			Role:  constants.RoleUser,
		}
		if err := config.DB.Create(&user).Error; err != nil {
			response.ServerError(c)
			return
		}
	}

	issueToken(c, user)
}

func Logout(c *gin.Context) {
	cookies := c.Request.Cookies()
	for _, cookie := range cookies {
		c.SetCookie(cookie.Name, "", -1, "/", "", cookie.Secure, cookie.HttpOnly)
	}

	response.Success(c, gin.H{"message": "logged out"})
}
