package main

import (
	"fmt"
	"log"
	"os"
	"reservapro-backend/config"
	"reservapro-backend/controllers"
	"reservapro-backend/models"
	"reservapro-backend/routes"
	"reservapro-backend/services"
	"reservapro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.User{},
		&models.Booking{},
		&models.AvailableSlot{},
		&models.SystemConfig{},
	)

	seedAdminUser()
	seedSystemConfig()
}

func main() {
	clock := utils.NewBusinessClock()
	availabilitySvc := services.NewAvailabilityService(config.DB, clock)
	notifierSvc := services.NewNotificationService()

	controllers.Init(availabilitySvc, notifierSvc)
	availabilitySvc.StartScheduler()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r := routes.SetupRouter()
	printRoutes(r)
	r.Run(":" + port)
}

// seedAdminUser creates the first admin account from ADMIN_USERNAME and
// ADMIN_PASSWORD when the users table is empty.
func seedAdminUser() {
	var count int64
	config.DB.Model(&models.User{}).Count(&count)
	if count > 0 {
		return
	}

	username := os.Getenv("ADMIN_USERNAME")
	password := os.Getenv("ADMIN_PASSWORD")
	if username == "" || password == "" {
		log.Println("No admin user exists and ADMIN_USERNAME/ADMIN_PASSWORD not set")
		return
	}

	admin := models.User{
		Username: username,
		Password: password, // Hashed in BeforeCreate hook
		Name:     "Administrador",
		Email:    username + "@example.com",
		Role:     "admin",
		IsActive: true,
	}
	if err := config.DB.Create(&admin).Error; err != nil {
		log.Printf("Failed to seed admin user: %v", err)
		return
	}
	log.Printf("Admin user %q created", username)
}

// seedSystemConfig inserts the default configuration keys when absent.
func seedSystemConfig() {
	defaults := []models.SystemConfig{
		{Key: "business_name", Value: "Mi Negocio", Description: "Nombre del negocio"},
		{Key: "business_hours", Value: "09:00-18:00", Description: "Horario de atención"},
		{Key: "booking_duration", Value: "30", Description: "Duración de citas en minutos"},
		{Key: "max_bookings_per_day", Value: "20", Description: "Máximo de citas por día"},
	}

	for _, entry := range defaults {
		var existing models.SystemConfig
		if err := config.DB.Where("key = ?", entry.Key).First(&existing).Error; err == nil {
			continue
		}
		if err := config.DB.Create(&entry).Error; err != nil {
			log.Printf("Failed to seed config key %s: %v", entry.Key, err)
		}
	}
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
