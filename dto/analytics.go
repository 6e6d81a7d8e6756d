package dto

// GarageAnalytics aggregates a garage's booking and revenue figures
type GarageAnalytics struct {
	GarageID         uint    `json:"garageId"`
	Title            string  `json:"title"`
	Location         string  `json:"location"`
	Slot             int     `json:"slot"`
	TotalBookings    int     `json:"totalBookings"`
	PendingBookings  int     `json:"pendingBookings"`
	ApprovedBookings int     `json:"approvedBookings"`
	ActiveBookings   int     `json:"activeBookings"`
	SlotsLeft        int     `json:"slotsLeft"`
	Revenue          float64 `json:"revenue"`
}

// MonthRevenue is one month in the revenue series
type MonthRevenue struct {
	Month        string  `json:"month"`
	Revenue      float64 `json:"revenue"`
	BookingCount int     `json:"bookingCount"`
}

// RevenueResponse is the admin revenue dashboard payload
type RevenueResponse struct {
	TotalRevenue        float64        `json:"totalRevenue"`
	CurrentMonthRevenue float64        `json:"currentMonthRevenue"`
	LastMonthRevenue    float64        `json:"lastMonthRevenue"`
	MonthlyRevenue      []MonthRevenue `json:"monthlyRevenue"`
}
