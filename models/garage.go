package models

import (
	"fmt"
	"time"

	"garagespace/constants"

	"github.com/lib/pq"
)

type Garage struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Title       string    `json:"title"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	// PricePerMonth is the canonical rate. Legacy rows imported from the
	// old listing tool only carry PricePerDay; MonthlyRate normalizes.
	PricePerMonth *float64       `json:"pricePerMonth"`
	PricePerDay   *float64       `json:"pricePerDay,omitempty"`
	Slot          int            `gorm:"default:1" json:"slot"`
	IsAvailable   bool           `gorm:"default:true" json:"isAvailable"`
	Images        pq.StringArray `gorm:"type:text[]" json:"images"`
	Amenities     []Amenity      `json:"amenities" gorm:"many2many:garage_amenities;"`
	Reviews       []Review       `json:"reviews,omitempty" gorm:"foreignKey:GarageID"`
	Bookings      []Booking      `json:"-" gorm:"foreignKey:GarageID"`
}

// MonthlyRate returns the effective monthly price. Legacy rows priced per
// day are converted at 30 days per month. The second return value is false
// when the garage carries no usable price at all.
func (g *Garage) MonthlyRate() (float64, bool) {
	if g.PricePerMonth != nil {
		return *g.PricePerMonth, true
	}
	if g.PricePerDay != nil {
		return *g.PricePerDay * constants.DaysPerMonth, true
	}
	return 0, false
}

func (g *Garage) ValidateSlot() error {
	if g.Slot < 1 {
		return fmt.Errorf("invalid slot count: %d, must be at least 1", g.Slot)
	}
	return nil
}
