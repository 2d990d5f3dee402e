package controllers

import (
	"net/http"
	"reservapro-backend/config"
	"reservapro-backend/models"
	"reservapro-backend/utils"

	"github.com/gin-gonic/gin"
)

// SetDayAvailabilityInput defines the "configure day" request
type SetDayAvailabilityInput struct {
	Date               string   `json:"date" binding:"required"`
	TimeSlots          []string `json:"timeSlots" binding:"required"`
	MaxBookingsPerSlot int      `json:"maxBookingsPerSlot"`
}

// UpdateDayCapacityInput changes the per-slot capacity for a whole day
type UpdateDayCapacityInput struct {
	Date        string `json:"date" binding:"required"`
	MaxBookings int    `json:"maxBookings" binding:"required"`
}

// GetAvailability lists configured slots, optionally bounded by
// ?startDate=&endDate=, grouped by date for the admin calendar.
func GetAvailability(c *gin.Context) {
	query := config.DB.Model(&models.AvailableSlot{})

	if start := c.Query("startDate"); start != "" {
		startDate, err := utils.ParseDate(start)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid startDate format, expected YYYY-MM-DD")
			return
		}
		query = query.Where("date >= ?", startDate)
	}
	if end := c.Query("endDate"); end != "" {
		endDate, err := utils.ParseDate(end)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid endDate format, expected YYYY-MM-DD")
			return
		}
		query = query.Where("date <= ?", endDate)
	}

	var slots []models.AvailableSlot
	if err := query.Order("date asc, time asc").Find(&slots).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve availability")
		return
	}

	slotsByDate := make(map[string][]models.AvailableSlot)
	for _, slot := range slots {
		key := slot.Date.Format(utils.DateFormat)
		slotsByDate[key] = append(slotsByDate[key], slot)
	}

	c.JSON(http.StatusOK, gin.H{"slots": slots, "slotsByDate": slotsByDate})
}

// SetDayAvailability replaces all slots for one day
func SetDayAvailability(c *gin.Context) {
	var input SetDayAvailabilityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	date, err := utils.ParseDate(input.Date)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date format, expected YYYY-MM-DD")
		return
	}

	maxBookings := input.MaxBookingsPerSlot
	if maxBookings == 0 {
		maxBookings = 1
	}

	count, err := availability.SetDaySlots(date, input.TimeSlots, maxBookings)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Availability updated",
		"count":   count,
		"date":    input.Date,
	})
}

// UpdateDayCapacity updates maxBookings for every slot of a day
func UpdateDayCapacity(c *gin.Context) {
	var input UpdateDayCapacityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	date, err := utils.ParseDate(input.Date)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date format, expected YYYY-MM-DD")
		return
	}

	if err := availability.UpdateDayCapacity(date, input.MaxBookings); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Availability updated"})
}

// CloseDay deletes a day's slots unless active bookings exist
func CloseDay(c *gin.Context) {
	dateParam := c.Query("date")
	if dateParam == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "date query parameter required")
		return
	}

	date, err := utils.ParseDate(dateParam)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date format, expected YYYY-MM-DD")
		return
	}

	deleted, err := availability.CloseDay(date)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Day closed successfully",
		"deletedCount": deleted,
	})
}

// SyncSlots recounts the advisory slot counters on demand
func SyncSlots(c *gin.Context) {
	if err := availability.ReconcileAll(); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Slots synchronized successfully"})
}
