package main

import (
	"log"
	"net/http"
	"os"

	"garagespace/config"
	"garagespace/jobs"
	"garagespace/models"
	"garagespace/routes"
	"garagespace/services"
	"garagespace/services/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func migrateTables() {
	if err := config.DB.AutoMigrate(
		&models.User{},
		&models.Garage{},
		&models.Amenity{},
		&models.Booking{},
		&models.Review{},
	); err != nil {
		panic("Failed to migrate tables: " + err.Error())
	}
}

func main() {

	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: could not load .env file, falling back to existing environment: %v", err)
	}

	router, c, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	occupancyService := services.NewOccupancyService(
		config.DB,
		config.RedisClient,
		logger.NewDefaultLogger(logger.InfoLevel),
	)
	jobs.SetOccupancyRefresher(occupancyService)

	migrateTables()

	if err := jobs.InitCronJobs(c); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}

	routes.SetupRoutes(router)

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8083"
	}

	log.Println("Server starting on port " + port + "...")
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
