package controllers

import (
	"net/http"
	"reservapro-backend/config"
	"reservapro-backend/models"
	"reservapro-backend/utils"
	"time"

	"github.com/gin-gonic/gin"
)

type DashboardOverview struct {
	TotalBookings    int64            `json:"totalBookings"`
	TodayBookings    int64            `json:"todayBookings"`
	UpcomingBookings int64            `json:"upcomingBookings"`
	ConfiguredDays   int64            `json:"configuredDays"`
	RecentBookings   []models.Booking `json:"recentBookings"`
}

// GetDashboardOverview returns the headline numbers for the admin landing page
func GetDashboardOverview(c *gin.Context) {
	now := availability.Clock().Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	var overview DashboardOverview

	// Total confirmed/completed bookings
	if err := config.DB.Model(&models.Booking{}).
		Where("status IN ?", []string{models.BookingStatusConfirmed, models.BookingStatusCompleted}).
		Count(&overview.TotalBookings).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	// Today's confirmed bookings
	config.DB.Model(&models.Booking{}).
		Where("date = ? AND status = ?", today, models.BookingStatusConfirmed).
		Count(&overview.TodayBookings)

	// Confirmed bookings from tomorrow on
	config.DB.Model(&models.Booking{}).
		Where("date > ? AND status = ?", today, models.BookingStatusConfirmed).
		Count(&overview.UpcomingBookings)

	// Days with slots configured from today on
	config.DB.Model(&models.AvailableSlot{}).
		Where("date >= ?", today).
		Distinct("date").
		Count(&overview.ConfiguredDays)

	// Five most recent bookings for the monitor
	config.DB.Order("created_at desc").Limit(5).Find(&overview.RecentBookings)

	c.JSON(http.StatusOK, overview)
}
