package controllers

import (
	"errors"
	"net/http"
	"reservapro-backend/services"
	"reservapro-backend/utils"

	"github.com/gin-gonic/gin"
)

var (
	availability *services.AvailabilityService
	notifier     *services.NotificationService
)

// Init wires the shared services used by the handlers. Called once from main.
func Init(a *services.AvailabilityService, n *services.NotificationService) {
	availability = a
	notifier = n
}

// respondServiceError maps the service error taxonomy to HTTP statuses.
// Conflicts carry a distinct code so the UI can tell "pick another time"
// apart from "fix your input".
func respondServiceError(c *gin.Context, err error) {
	var validationErr *services.ValidationError
	var pastErr *services.PastTimeError
	var unavailableErr *services.SlotUnavailableError
	var activeErr *services.DayHasActiveBookingsError

	switch {
	case errors.As(err, &validationErr):
		utils.RespondWithCodedError(c, http.StatusBadRequest, "validation_error", validationErr.Error())
	case errors.As(err, &pastErr):
		utils.RespondWithCodedError(c, http.StatusBadRequest, "past_time", pastErr.Error())
	case errors.As(err, &unavailableErr):
		utils.RespondWithCodedError(c, http.StatusConflict, "slot_unavailable", unavailableErr.Error())
	case errors.As(err, &activeErr):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":         activeErr.Error(),
			"code":          "day_has_active_bookings",
			"bookingsCount": activeErr.Count,
		})
	default:
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
	}
}
