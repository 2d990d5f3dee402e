package routes

import (
	"os"
	"reservapro-backend/config"
	"reservapro-backend/controllers"
	"reservapro-backend/utils"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func allowedOrigins() []string {
	if env := os.Getenv("CORS_ORIGINS"); env != "" {
		return strings.Split(env, ",")
	}
	return []string{"http://localhost:3000"}
}

func SetupRouter() *gin.Engine {
	r := gin.Default()

	origins := allowedOrigins()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	auth := r.Group("/auth")
	{
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	api := r.Group("/api")
	{
		// Public booking flow
		api.POST("/bookings", controllers.CreateBooking)
		api.GET("/slots/available", controllers.GetAvailableSlots)
		api.GET("/config", controllers.GetConfig)

		admin := api.Group("")
		admin.Use(utils.AuthMiddleware())
		{
			// Booking administration
			bookings := admin.Group("/bookings")
			{
				bookings.GET("", controllers.GetBookings)
				bookings.PUT("/:id", controllers.UpdateBooking)
				bookings.DELETE("/:id", controllers.DeleteBooking)
			}

			// Day-by-day slot management
			availability := admin.Group("/availability")
			{
				availability.GET("", controllers.GetAvailability)
				availability.POST("", controllers.SetDayAvailability)
				availability.PUT("", controllers.UpdateDayCapacity)
				availability.DELETE("", controllers.CloseDay)
				availability.POST("/sync", controllers.SyncSlots)
			}

			// Admin users
			users := admin.Group("/users")
			{
				users.GET("", controllers.GetUsers)
				users.POST("", controllers.CreateUser)
				users.PUT("/:id", controllers.UpdateUser)
				users.DELETE("/:id", controllers.DeleteUser)
			}

			// Business configuration
			admin.PUT("/config", controllers.UpdateConfig)

			// Dashboard
			admin.GET("/dashboard", controllers.GetDashboardOverview)
		}
	}

	return r
}
