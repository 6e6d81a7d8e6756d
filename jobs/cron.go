package jobs

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// OccupancyRefresher recomputes cached occupancy figures and expires
// bookings whose end date has passed.
type OccupancyRefresher interface {
	RefreshOccupancy() error
}

var occupancyRefresher OccupancyRefresher

func SetOccupancyRefresher(refresher OccupancyRefresher) {
	occupancyRefresher = refresher
}

// InitCronJobs schedules the nightly maintenance run at midnight.
func InitCronJobs(c *cron.Cron) error {
	_, err := c.AddFunc("0 0 * * *", func() {
		now := time.Now()
		log.Printf("running nightly occupancy refresh at: %v", now)
		if occupancyRefresher == nil {
			log.Printf("occupancy refresher is not configured, skipping")
			return
		}
		if err := occupancyRefresher.RefreshOccupancy(); err != nil {
			log.Printf("nightly occupancy refresh failed: %v", err)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
