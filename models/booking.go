package models

import (
	"time"
)

type Booking struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	UserID   uint   `json:"userId"`
	User     User   `json:"user" gorm:"foreignKey:UserID"`
	GarageID uint   `json:"garageId"`
	Garage   Garage `json:"garage" gorm:"foreignKey:GarageID"`
	// StartDate and EndDate are inclusive calendar dates in YYYY-MM-DD.
	// The ISO layout keeps lexicographic and chronological order identical,
	// so range filters work directly on the column.
	StartDate string    `json:"startDate"`
	EndDate   string    `json:"endDate"`
	Status    string    `gorm:"default:pending" json:"status"`
	// TotalPrice is fixed at creation time; later garage price changes do
	// not touch existing bookings.
	TotalPrice    float64   `json:"totalPrice"`
	RemovedReason string    `json:"removedReason,omitempty"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

type BookingRequest struct {
	UserID     uint   `json:"userId"`
	GarageID   uint   `json:"garageId"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
	StartMonth string `json:"startMonth"`
	Months     int    `json:"months"`
	Status     string `json:"status"`
}
