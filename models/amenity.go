package models

import "time"

type Amenity struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `gorm:"unique" json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Garages     []Garage  `json:"-" gorm:"many2many:garage_amenities;"`
}
