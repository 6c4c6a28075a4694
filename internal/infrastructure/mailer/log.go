package mailer

import (
	"context"

	"github.com/sirupsen/logrus"
)

// LogNotifier logs notifications instead of delivering them. Used when SMTP
// is not configured (local development).
type LogNotifier struct {
	log *logrus.Logger
}

func NewLogNotifier(log *logrus.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) SendBookingAccepted(ctx context.Context, msg *BookingMessage) error {
	n.log.Infof("Booking accepted notification for %s (lawyer %s)", msg.RecipientEmail, msg.LawyerName)
	return nil
}

func (n *LogNotifier) SendBookingRejected(ctx context.Context, msg *BookingMessage) error {
	n.log.Infof("Booking rejected notification for %s (lawyer %s)", msg.RecipientEmail, msg.LawyerName)
	return nil
}
