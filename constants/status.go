package constants

// Booking status
const (
	BookingStatusPending  = "pending"
	BookingStatusApproved = "approved"
	BookingStatusRejected = "rejected"
	BookingStatusRemoved  = "removed"
)

// User role
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User category
const (
	UserCategoryStandard = "standard"
	UserCategoryNonLogin = "non-login"
)

// DateLayout is the calendar date format used on the wire and in booking rows
const DateLayout = "2006-01-02"

// MonthLayout is the month selector format used by booking forms
const MonthLayout = "2006-01"

// DaysPerMonth converts legacy per-day garage prices to a monthly rate
const DaysPerMonth = 30
