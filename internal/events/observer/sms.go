package observer

import (
	"context"
	"fmt"
	"hostly/infras/twilio"
	"hostly/internal/events"

	"github.com/rs/zerolog/log"
)

const PrioritySMS = 10

type smsObserver struct {
	sms twilio.SMS
}

// NewSMS texts the host about every real booking.
func NewSMS(sms twilio.SMS) events.Observer {
	return &smsObserver{sms: sms}
}

func (o *smsObserver) Name() string  { return "host-sms" }
func (o *smsObserver) Priority() int { return PrioritySMS }

func (o *smsObserver) Handle(ctx context.Context, event events.Event) error {
	booking := event.Booking

	if booking.IsTest || event.Host.PhoneNumber == nil || *event.Host.PhoneNumber == "" {
		return nil
	}

	sid, err := o.sms.Send(ctx, *event.Host.PhoneNumber, HostAlert(event))
	if err != nil {
		return fmt.Errorf("failed to send host alert: %w", err)
	}

	log.Debug().Str("sid", sid).Str("bookingID", booking.ID).Msg("host alert sent")

	return nil
}

// HostAlert is the SMS body sent to the host.
func HostAlert(event events.Event) string {
	booking := event.Booking
	preview := booking.Preview.Val

	return fmt.Sprintf("New booking %s for %s: %d attendee(s), %.2f %s, payment %s",
		booking.Alias, event.Product.Name, booking.TotalAttendees, preview.Total, booking.Currency, booking.PaymentStatus)
}
