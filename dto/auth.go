package dto

import "time"

// LoginInput accepts an email or phone as identifier
type LoginInput struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Phone    string `json:"phone"`
}

type GoogleAuthInput struct {
	IDToken string `json:"idToken" binding:"required"`
}

type UserLoginResponse struct {
	UserID    uint      `json:"id"`
	UserName  string    `json:"name"`
	UserEmail string    `json:"email"`
	UserPhone string    `json:"phone"`
	UserRole  string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
