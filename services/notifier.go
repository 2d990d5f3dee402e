// services/notifier.go
package services

import (
	"fmt"
	"log"
	"os"
	"strings"

	"reservapro-backend/models"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// NotificationService pushes a WhatsApp/SMS message to the business phone
// whenever a new booking arrives. Sending is best-effort: a delivery failure
// is logged and never surfaced to the customer.
type NotificationService struct {
	client   *twilio.RestClient
	notifyTo string
	enabled  bool
}

func NewNotificationService() *NotificationService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")
	notifyTo := os.Getenv("BUSINESS_NOTIFY_NUMBER")

	enabled := accountSid != "" && authToken != "" && notifyTo != ""
	if !enabled {
		log.Println("Booking notifications disabled (Twilio credentials not configured)")
	}

	return &NotificationService{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
		notifyTo: notifyTo,
		enabled:  enabled,
	}
}

// NotifyNewBooking sends the new-booking alert. Safe to call from a goroutine.
func (s *NotificationService) NotifyNewBooking(booking *models.Booking) {
	if !s.enabled {
		return
	}

	message := fmt.Sprintf("Nueva reserva: %s el %s a las %s (%s, %s)",
		booking.Name,
		booking.Date.Format("2006-01-02"),
		booking.Time,
		booking.Phone,
		booking.Email,
	)

	// WhatsApp when the business number is in E.164 format, SMS otherwise
	channel := "sms"
	to := s.notifyTo
	if strings.HasPrefix(s.notifyTo, "+") {
		to = "whatsapp:" + s.notifyTo
		channel = "whatsapp"
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetBody(message)

	if channel == "whatsapp" {
		params.SetFrom("whatsapp:" + os.Getenv("TWILIO_WHATSAPP_NUMBER"))
	} else {
		params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))
	}

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		log.Printf("Failed to send booking notification: %v", err)
		return
	}
	if resp.Sid != nil {
		log.Printf("Booking notification sent, SID: %s", *resp.Sid)
	} else {
		log.Println("Booking notification sent, but no SID returned")
	}
}
