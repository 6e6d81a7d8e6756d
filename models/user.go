package models

import (
	"time"

	"garagespace/constants"
)

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Name      string    `json:"name"`
	Email     string    `gorm:"unique" json:"email"`
	// Password is empty for non-login users created by an admin on a
	// customer's behalf; those accounts can never authenticate.
	Password string    `json:"-"`
	Phone    string    `json:"phone"`
	Role     string    `gorm:"default:user" json:"role"`
	Category string    `gorm:"default:standard" json:"category"`
	Bookings []Booking `json:"bookings,omitempty" gorm:"foreignKey:UserID"`
	Reviews  []Review  `json:"reviews,omitempty" gorm:"foreignKey:UserID"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == constants.RoleAdmin
}

// CanLogin reports whether the account has credentials at all.
func (u *User) CanLogin() bool {
	return u.Password != ""
}
