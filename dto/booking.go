package dto

import "time"

// BookingResponse is a booking row with its joined user and garage
// summaries
type BookingResponse struct {
	ID            uint          `json:"id"`
	User          UserSummary   `json:"user"`
	Garage        GarageSummary `json:"garage"`
	StartDate     string        `json:"startDate"`
	EndDate       string        `json:"endDate"`
	Status        string        `json:"status"`
	TotalPrice    float64       `json:"totalPrice"`
	RemovedReason string        `json:"removedReason,omitempty"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

// UpdateBookingStatusRequest drives PATCH /bookings/:id
type UpdateBookingStatusRequest struct {
	Status        string `json:"status" binding:"required"`
	RemovedReason string `json:"removedReason"`
}
