package dto

// GarageSummary is the joined garage shape embedded in booking and review
// responses
type GarageSummary struct {
	ID       uint   `json:"id"`
	Title    string `json:"title"`
	Location string `json:"location"`
}

type CreateGarageRequest struct {
	Title         string   `json:"title" binding:"required"`
	Location      string   `json:"location" binding:"required"`
	Description   string   `json:"description"`
	PricePerMonth *float64 `json:"pricePerMonth"`
	PricePerDay   *float64 `json:"pricePerDay"`
	Slot          *int     `json:"slot"`
	IsAvailable   *bool    `json:"isAvailable"`
	Images        []string `json:"images"`
	AmenityIDs    []uint   `json:"amenities"`
}

type UpdateGarageRequest struct {
	Title         *string   `json:"title"`
	Location      *string   `json:"location"`
	Description   *string   `json:"description"`
	PricePerMonth *float64  `json:"pricePerMonth"`
	PricePerDay   *float64  `json:"pricePerDay"`
	Slot          *int      `json:"slot"`
	IsAvailable   *bool     `json:"isAvailable"`
	Images        *[]string `json:"images"`
	// AmenityIDs replaces the full amenity link set when present
	AmenityIDs *[]uint `json:"amenities"`
}

type ChangeAvailabilityRequest struct {
	IsAvailable *bool `json:"isAvailable"`
}

// SlotStatus annotates a garage with its occupancy for a query window
type SlotStatus struct {
	ID             uint     `json:"id"`
	Title          string   `json:"title"`
	Location       string   `json:"location"`
	Description    string   `json:"description"`
	PricePerMonth  *float64 `json:"pricePerMonth"`
	Slot           int      `json:"slot"`
	IsAvailable    bool     `json:"isAvailable"`
	Images         []string `json:"images"`
	ActiveBookings int      `json:"activeBookings"`
	SlotsLeft      int      `json:"slotsLeft"`
	Bookable       bool     `json:"bookable"`
}
