package mailer

import "context"

// BookingMessage carries everything a booking notification template needs.
type BookingMessage struct {
	RecipientEmail    string
	RecipientName     string
	LawyerName        string
	LawyerEmail       string
	LawyerPhone       string
	ChargesPerHearing int
	HearingDate       string
	HearingTime       string
}

// Notifier delivers booking notifications. Delivery failures are reported to
// the caller for retry bookkeeping but must never affect booking state.
type Notifier interface {
	SendBookingAccepted(ctx context.Context, msg *BookingMessage) error
	SendBookingRejected(ctx context.Context, msg *BookingMessage) error
}
