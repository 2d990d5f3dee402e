package controllers

import (
	"errors"
	"net/http"
	"reservapro-backend/config"
	"reservapro-backend/models"
	"reservapro-backend/services"
	"reservapro-backend/utils"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateBookingInput defines the expected JSON structure for the public booking form
type CreateBookingInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Date  string `json:"date"`
	Time  string `json:"time"`
	Notes string `json:"notes"`
}

// UpdateBookingInput defines the expected JSON structure for an admin edit
type UpdateBookingInput struct {
	Name   *string `json:"name"`
	Email  *string `json:"email"`
	Phone  *string `json:"phone"`
	Date   *string `json:"date"`
	Time   *string `json:"time"`
	Status *string `json:"status"`
	Source *string `json:"source"`
	Notes  *string `json:"notes"`
}

// CreateBooking handles the public booking flow
func CreateBooking(c *gin.Context) {
	var input CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithCodedError(c, http.StatusBadRequest, "validation_error", "Invalid input: "+err.Error())
		return
	}

	booking, err := availability.CreateBooking(services.BookingInput{
		Name:   input.Name,
		Email:  input.Email,
		Phone:  input.Phone,
		Date:   input.Date,
		Time:   input.Time,
		Source: models.BookingSourceWeb,
		Notes:  input.Notes,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	go notifier.NotifyNewBooking(booking)

	c.JSON(http.StatusCreated, gin.H{"booking": booking})
}

// GetBookings lists bookings for the admin panel. Supports ?date=YYYY-MM-DD
// and ?since=RFC3339; the admin monitor polls with `since` to detect new
// bookings.
func GetBookings(c *gin.Context) {
	query := config.DB.Model(&models.Booking{})

	if dateParam := c.Query("date"); dateParam != "" {
		date, err := utils.ParseDate(dateParam)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid date format, expected YYYY-MM-DD")
			return
		}
		query = query.Where("date = ?", date)
	}

	if sinceParam := c.Query("since"); sinceParam != "" {
		since, err := time.Parse(time.RFC3339, sinceParam)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid since format, expected RFC3339")
			return
		}
		query = query.Where("created_at > ?", since)
	}

	var bookings []models.Booking
	if err := query.Order("date desc, time desc").Find(&bookings).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve bookings")
		return
	}

	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// UpdateBooking applies a partial admin edit to a booking
func UpdateBooking(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid booking ID format")
		return
	}

	var input UpdateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var booking models.Booking
	if err := config.DB.First(&booking, "id = ?", bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	previousDate := booking.Date

	if input.Name != nil {
		booking.Name = *input.Name
	}
	if input.Email != nil {
		if !utils.ValidateEmail(*input.Email) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid email address")
			return
		}
		booking.Email = *input.Email
	}
	if input.Phone != nil {
		if !utils.ValidatePhone(*input.Phone) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number")
			return
		}
		booking.Phone = *input.Phone
	}
	if input.Date != nil {
		date, err := utils.ParseDate(*input.Date)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid date format, expected YYYY-MM-DD")
			return
		}
		booking.Date = date
	}
	if input.Time != nil {
		if !utils.ValidateTimeOfDay(*input.Time) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid time format, expected HH:MM")
			return
		}
		booking.Time = *input.Time
	}
	if input.Status != nil {
		switch *input.Status {
		case models.BookingStatusConfirmed, models.BookingStatusCancelled, models.BookingStatusCompleted:
			booking.Status = *input.Status
		default:
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid status")
			return
		}
	}
	if input.Source != nil {
		switch *input.Source {
		case models.BookingSourceWeb, models.BookingSourceWhatsApp, models.BookingSourcePhone, models.BookingSourceAdmin:
			booking.Source = *input.Source
		default:
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid source")
			return
		}
	}
	if input.Notes != nil {
		booking.Notes = *input.Notes
	}

	if err := config.DB.Save(&booking).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update booking")
		return
	}

	// Occupancy may have changed on either day
	if err := availability.ReconcileDay(previousDate); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to reconcile availability")
		return
	}
	if !booking.Date.Equal(previousDate) {
		if err := availability.ReconcileDay(booking.Date); err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to reconcile availability")
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"booking": booking})
}

// DeleteBooking removes a booking entirely
func DeleteBooking(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid booking ID format")
		return
	}

	var booking models.Booking
	if err := config.DB.First(&booking, "id = ?", bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if err := config.DB.Unscoped().Delete(&booking).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete booking")
		return
	}

	if err := availability.ReconcileDay(booking.Date); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to reconcile availability")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Booking deleted successfully"})
}
