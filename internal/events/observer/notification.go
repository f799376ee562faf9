package observer

import (
	"context"
	"fmt"
	"hostly/infras/rabbitmq"
	"hostly/internal/events"
)

const (
	PriorityNotification = 100

	TemplateBookingCustomer = "booking-created-customer"
	TemplateBookingHost     = "booking-created-host"
)

// Notification is the message a notification worker renders and delivers.
type Notification struct {
	Event     string         `json:"event"`
	Recipient string         `json:"recipient"`
	Template  string         `json:"template"`
	Data      map[string]any `json:"data"`
}

type notificationObserver struct {
	publisher rabbitmq.Publisher
}

// NewNotification enqueues the booking confirmation for the customer and the alert for the host.
func NewNotification(publisher rabbitmq.Publisher) events.Observer {
	return &notificationObserver{publisher: publisher}
}

func (o *notificationObserver) Name() string  { return "notification" }
func (o *notificationObserver) Priority() int { return PriorityNotification }

func (o *notificationObserver) Handle(ctx context.Context, event events.Event) error {
	booking := event.Booking

	data := map[string]any{
		"bookingId":     booking.ID,
		"alias":         booking.Alias,
		"productId":     booking.ProductID,
		"productName":   event.Product.Name,
		"bookingStatus": booking.BookingStatus,
		"paymentStatus": booking.PaymentStatus,
		"total":         booking.Preview.Val.Total,
		"currency":      booking.Currency,
		"attendees":     booking.TotalAttendees,
	}

	notifications := []Notification{
		{Event: event.Name, Recipient: booking.Email, Template: TemplateBookingCustomer, Data: data},
	}

	if event.Host.Email != "" && !booking.IsTest {
		notifications = append(notifications, Notification{
			Event:     event.Name,
			Recipient: event.Host.Email,
			Template:  TemplateBookingHost,
			Data:      data,
		})
	}

	for _, notification := range notifications {
		if err := o.publisher.PublishJSON(ctx, event.Name, notification); err != nil {
			return fmt.Errorf("failed to enqueue %s notification: %w", notification.Template, err)
		}
	}

	return nil
}
