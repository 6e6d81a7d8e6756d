package routes

import (
	"context"
	"net/http"

	"garagespace/config"
	"garagespace/controllers"
	middlewares "garagespace/middleware"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine) {

	router.Use(middlewares.SessionMiddleware())

	v1 := router.Group("/api/v1")

	v1.POST("/auth/register", controllers.RegisterUser)
	v1.POST("/auth/login", controllers.Login)
	v1.POST("/auth/admin", controllers.AdminLogin)
	v1.POST("/auth/google", controllers.AuthGoogle)
	v1.DELETE("/auth/logout", controllers.Logout)
	v1.GET("/profile", middlewares.AuthMiddleware(), controllers.GetProfile)
	v1.PUT("/profile", middlewares.AuthMiddleware(), controllers.UpdateProfile)

	v1.GET("/garages", controllers.GetAllGarages)
	v1.GET("/garages/:id", controllers.GetGarageDetail)
	v1.POST("/garages", middlewares.AdminOnly(), controllers.CreateGarage)
	v1.PUT("/garages/:id", middlewares.AdminOnly(), controllers.UpdateGarage)
	v1.DELETE("/garages/:id", middlewares.AdminOnly(), controllers.DeleteGarage)
	v1.PUT("/garageAvailability/:id", middlewares.AdminOnly(), controllers.ChangeGarageAvailability)

	v1.GET("/slots", controllers.GetSlots)

	v1.GET("/bookings", middlewares.AdminOnly(), controllers.GetBookings)
	v1.POST("/bookings", middlewares.AuthMiddleware(), controllers.CreateBooking)
	v1.GET("/bookings/user", middlewares.AuthMiddleware(), controllers.GetBookingsByUserId)
	v1.GET("/bookings/:id", middlewares.AuthMiddleware(), controllers.GetBookingDetail)
	v1.PATCH("/bookings/:id", middlewares.AdminOnly(), controllers.ChangeBookingStatus)
	v1.DELETE("/bookings/:id", middlewares.AdminOnly(), controllers.DeleteBooking)

	v1.GET("/reviews", controllers.GetAllReviews)
	v1.GET("/reviews/:id", controllers.GetReviewDetail)
	v1.POST("/reviews", middlewares.AuthMiddleware(), controllers.CreateReview)
	v1.PUT("/reviews/:id", middlewares.AuthMiddleware(), controllers.UpdateReview)
	v1.DELETE("/reviews/:id", middlewares.AuthMiddleware(), controllers.DeleteReview)

	v1.GET("/users", middlewares.AdminOnly(), controllers.GetUsers)
	v1.POST("/users", middlewares.AdminOnly(), controllers.CreateUser)

	v1.GET("/amenities", controllers.GetAllAmenities)
	v1.GET("/amenities/:id", controllers.GetAmenityDetail)
	v1.POST("/amenities", middlewares.AdminOnly(), controllers.CreateAmenity)
	v1.PUT("/amenities/:id", middlewares.AdminOnly(), controllers.UpdateAmenity)
	v1.DELETE("/amenities/:id", middlewares.AdminOnly(), controllers.DeleteAmenity)

	v1.GET("/analytics/garages", middlewares.AdminOnly(), controllers.GetGarageAnalytics)
	v1.GET("/analytics/revenue", middlewares.AdminOnly(), controllers.GetRevenue)

	v1.POST("/img/upload", middlewares.AdminOnly(), func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "no file uploaded"})
			return
		}

		src, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to open file"})
			return
		}
		defer src.Close()

		ctx := context.Background()
		resp, err := config.Cloudinary.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "garages"})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "upload failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"url": resp.SecureURL,
		})
	})

	v1.POST("/img/multi-upload", middlewares.AdminOnly(), func(c *gin.Context) {
		form, err := c.MultipartForm()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "no files uploaded"})
			return
		}
		files := form.File["files"]
		if len(files) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "no files uploaded"})
			return
		}

		var urls []string
		for _, file := range files {
			src, err := file.Open()
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "failed to open file"})
				return
			}
			defer src.Close()

			ctx := context.Background()
			resp, err := config.Cloudinary.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "garages"})
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "upload failed"})
				return
			}
			urls = append(urls, resp.SecureURL)
		}

		c.JSON(http.StatusOK, gin.H{
			"urls": urls,
		})
	})
}
