package mailer

import (
	"fmt"
	"os"

	"hbs/src/lib"
	"hbs/src/models"

	"github.com/wneessen/go-mail"
)

type SendMailInput struct {
	To      string
	Subject string
	Body    string
	Html    string
}

func Send(input *SendMailInput) error {
	// mail is optional; setups without an SMTP host skip it silently
	if os.Getenv("SMTP_HOST") == "" {
		return nil
	}
	c, err := lib.GetSMTPClient()
	if err != nil {
		return err
	}
	from := os.Getenv("MAIL_FROM")
	m := mail.NewMsg()
	if err := m.FromFormat("Bookings", from); err != nil {
		return err
	}
	if err := m.To(input.To); err != nil {
		return err
	}
	m.Subject(input.Subject)
	if input.Html != "" {
		m.SetBodyString(mail.TypeTextHTML, input.Html)
	} else {
		m.SetBodyString(mail.TypeTextPlain, input.Body)
	}
	return c.DialAndSend(m)
}

func SendWelcome(user *models.User) error {
	return Send(&SendMailInput{
		To:      user.Email,
		Subject: "Welcome aboard",
		Body:    fmt.Sprintf("Hi %s, your account is ready. Happy travels!", user.FirstName),
	})
}

func SendBookingConfirmation(booking *models.Booking, hotel *models.Hotel) error {
	return Send(&SendMailInput{
		To:      booking.Email,
		Subject: fmt.Sprintf("Booking confirmed: %s", hotel.Name),
		Body: fmt.Sprintf(
			"Hi %s, your stay at %s (%s, %s) from %s to %s is confirmed. Total paid: %.2f.",
			booking.FirstName,
			hotel.Name,
			hotel.City,
			hotel.Country,
			booking.CheckIn.Format("2006-01-02"),
			booking.CheckOut.Format("2006-01-02"),
			booking.TotalCost,
		),
	})
}
