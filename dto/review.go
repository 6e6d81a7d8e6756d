package dto

import "time"

type ReviewResponse struct {
	ID        uint          `json:"id"`
	User      UserSummary   `json:"user"`
	Garage    GarageSummary `json:"garage"`
	Rating    int           `json:"rating"`
	Comment   string        `json:"comment"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

type CreateReviewRequest struct {
	GarageID uint   `json:"garageId" binding:"required"`
	Rating   int    `json:"rating" binding:"required"`
	Comment  string `json:"comment"`
}

type UpdateReviewRequest struct {
	Rating  *int    `json:"rating"`
	Comment *string `json:"comment"`
}
