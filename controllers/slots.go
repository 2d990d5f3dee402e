package controllers

import (
	"net/http"
	"reservapro-backend/utils"

	"github.com/gin-gonic/gin"
)

// GetAvailableSlots is the public availability endpoint. With ?date= it
// resolves that day; without a date it lists the upcoming dates that have
// slots configured, for the calendar picker.
func GetAvailableSlots(c *gin.Context) {
	dateParam := c.Query("date")

	if dateParam == "" {
		dates, err := availability.BookableDates(30)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"dates": dates})
		return
	}

	date, err := utils.ParseDate(dateParam)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date format, expected YYYY-MM-DD")
		return
	}

	slots, err := availability.ResolveDay(date)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":       dateParam,
		"slots":      slots,
		"serverTime": availability.Clock().Now().Format("2006-01-02T15:04:05-07:00"),
	})
}
