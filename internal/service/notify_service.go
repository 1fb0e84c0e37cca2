package service

import (
	"fmt"
	"log"
	"os"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"

	"autorent/internal/db"
)

// NotifyService sends reservation confirmations and cancellations by
// email (SendGrid) and SMS (Twilio). Channels without credentials or
// without a recipient address are skipped with a log line; notification
// failures never fail the reservation they describe.
type NotifyService struct{}

func NewNotifyService() *NotifyService {
	return &NotifyService{}
}

func (s *NotifyService) ReservationCreated(user *db.User, res *db.Reservation) {
	s.send(user, res, "confirmed")
}

func (s *NotifyService) ReservationCancelled(user *db.User, res *db.Reservation) {
	s.send(user, res, "cancelled")
}

func (s *NotifyService) send(user *db.User, res *db.Reservation, event string) {
	name := user.FirstName
	if name == "" {
		name = user.Username
	}

	subject := fmt.Sprintf("Your AutoRent reservation #%d is %s", res.ID, event)
	body := fmt.Sprintf(
		"Hello %s,\n\nYour reservation #%d has been %s.\n\n"+
			"Pick-up: %s, %s\n"+
			"Drop-off: %s, %s\n"+
			"Total: %.2f EUR\n\n"+
			"Thank you for choosing AutoRent.",
		name, res.ID, event,
		res.PickUpLocation, res.StartDate.Format("02 Jan 2006"),
		res.DropOffLocation, res.EndDate.Format("02 Jan 2006"),
		res.TotalPrice,
	)

	if user.Email != "" {
		if err := sendEmail(user.Email, name, subject, body); err != nil {
			log.Printf("notify: email for reservation %d failed: %v", res.ID, err)
		}
	}
	if user.Phone != "" {
		sms := fmt.Sprintf("AutoRent: reservation #%d %s. Pick-up %s at %s.",
			res.ID, event, res.StartDate.Format("02/01"), res.PickUpLocation)
		if err := sendSMS(user.Phone, sms); err != nil {
			log.Printf("notify: SMS for reservation %d failed: %v", res.ID, err)
		}
	}
}

func sendEmail(toAddress, toName, subject, body string) error {
	apiKey := os.Getenv("SENDGRID_API_KEY")
	fromEmail := os.Getenv("SENDGRID_FROM_EMAIL")
	if apiKey == "" || fromEmail == "" {
		return fmt.Errorf("SENDGRID_API_KEY or SENDGRID_FROM_EMAIL not set")
	}
	fromName := os.Getenv("SENDGRID_FROM_NAME")
	if fromName == "" {
		fromName = "AutoRent"
	}

	from := mail.NewEmail(fromName, fromEmail)
	to := mail.NewEmail(toName, toAddress)
	message := mail.NewSingleEmail(from, subject, to, body, "")

	client := sendgrid.NewSendClient(apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("sendgrid send: %w", err)
	}
	if response.StatusCode < 200 || response.StatusCode > 299 {
		return fmt.Errorf("sendgrid returned status %d: %s", response.StatusCode, response.Body)
	}
	return nil
}

func sendSMS(toNumber, message string) error {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")
	fromNumber := os.Getenv("TWILIO_FROM_NUMBER")
	if accountSid == "" || authToken == "" || fromNumber == "" {
		return fmt.Errorf("twilio credentials not set")
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSid,
		Password: authToken,
	})

	params := &openapi.CreateMessageParams{}
	params.SetTo(toNumber)
	params.SetFrom(fromNumber)
	params.SetBody(message)

	if _, err := client.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("twilio send: %w", err)
	}
	return nil
}
