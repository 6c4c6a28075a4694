package mailer

import (
	"context"
	"fmt"

	"github.com/sandy191020/LexConnect/config"

	"gopkg.in/gomail.v2"
)

// SMTPNotifier sends booking notifications over SMTP.
type SMTPNotifier struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPNotifier(cfg config.SMTPConfig) *SMTPNotifier {
	return &SMTPNotifier{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

func (n *SMTPNotifier) SendBookingAccepted(ctx context.Context, msg *BookingMessage) error {
	subject := fmt.Sprintf("Your Booking Request Has Been Accepted - %s", msg.LawyerName)

	schedule := "Please contact the lawyer to schedule a date and time."
	if msg.HearingDate != "" && msg.HearingTime != "" {
		schedule = fmt.Sprintf("Scheduled for %s at %s.", msg.HearingDate, msg.HearingTime)
	}

	body := fmt.Sprintf(
		"Dear %s,\n\n"+
			"Great news! Your booking request has been accepted by %s.\n\n"+
			"Lawyer details:\n"+
			"  Name:  %s\n"+
			"  Email: %s\n"+
			"  Phone: %s\n"+
			"  Charges per hearing: %d\n\n"+
			"%s\n\n"+
			"Best regards,\nLexConnect Team\n",
		msg.RecipientName, msg.LawyerName,
		msg.LawyerName, msg.LawyerEmail, msg.LawyerPhone, msg.ChargesPerHearing,
		schedule,
	)

	return n.send(msg.RecipientEmail, subject, body)
}

func (n *SMTPNotifier) SendBookingRejected(ctx context.Context, msg *BookingMessage) error {
	subject := fmt.Sprintf("Update on Your Booking Request - %s", msg.LawyerName)

	body := fmt.Sprintf(
		"Dear %s,\n\n"+
			"Unfortunately %s is unable to take your booking request at this time.\n"+
			"You can browse other verified lawyers on the platform and submit a new request.\n\n"+
			"Best regards,\nLexConnect Team\n",
		msg.RecipientName, msg.LawyerName,
	)

	return n.send(msg.RecipientEmail, subject, body)
}

func (n *SMTPNotifier) send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	return n.dialer.DialAndSend(m)
}
