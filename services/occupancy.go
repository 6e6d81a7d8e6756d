package services

import (
	"context"
	"fmt"
	"time"

	"garagespace/constants"
	"garagespace/models"
	"garagespace/services/logger"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// OccupancyService refreshes the cached per-garage occupancy snapshot. It
// runs nightly so the dashboard has yesterday's closing numbers even while
// the database is busy.
type OccupancyService struct {
	db    *gorm.DB
	redis *redis.Client
	log   logger.Logger
}

func NewOccupancyService(db *gorm.DB, redisCli *redis.Client, log logger.Logger) *OccupancyService {
	if log == nil {
		log = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &OccupancyService{db: db, redis: redisCli, log: log}
}

type occupancySnapshot struct {
	GarageID  uint   `json:"garageId"`
	Slot      int    `json:"slot"`
	Active    int    `json:"active"`
	SlotsLeft int    `json:"slotsLeft"`
	Date      string `json:"date"`
}

// RefreshOccupancy counts today's slot consumers per garage and stores the
// snapshot in Redis under occupancy:<date> for a week.
func (s *OccupancyService) RefreshOccupancy() error {
	today := time.Now().Format(constants.DateLayout)

	var garages []models.Garage
	if err := s.db.Find(&garages).Error; err != nil {
		return fmt.Errorf("failed to load garages: %w", err)
	}

	var bookings []models.Booking
	if err := s.db.
		Where("status IN ?", []string{constants.BookingStatusPending, constants.BookingStatusApproved}).
		Where("start_date <= ? AND end_date >= ?", today, today).
		Find(&bookings).Error; err != nil {
		return fmt.Errorf("failed to load bookings: %w", err)
	}

	snapshots := make([]occupancySnapshot, 0, len(garages))
	for _, g := range garages {
		active := ActiveBookingCount(&g, bookings, today, today)
		snapshots = append(snapshots, occupancySnapshot{
			GarageID:  g.ID,
			Slot:      g.Slot,
			Active:    active,
			SlotsLeft: SlotsLeft(&g, active),
			Date:      today,
		})
	}

	if s.redis != nil {
		ctx := context.Background()
		key := "occupancy:" + today
		if err := SetToRedis(ctx, s.redis, key, snapshots, 7*24*time.Hour); err != nil {
			return fmt.Errorf("failed to store occupancy snapshot: %w", err)
		}
		// Listing caches are stale once the snapshot moves.
		if err := DeleteKeysByPattern(ctx, s.redis, "garages:*"); err != nil {
			s.log.Error("failed to drop garage caches: " + err.Error())
		}
	}

	s.log.Info(fmt.Sprintf("occupancy snapshot stored for %d garages", len(snapshots)))
	return nil
}
