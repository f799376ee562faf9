// Package events fans booking lifecycle events out to observers in priority order.
// Delivery is best effort: an observer failure is recorded and never stops the others.
package events

import (
	"context"
	bookingModel "hostly/internal/domains/booking/model"
	hostModel "hostly/internal/domains/host/model"
	paymentModel "hostly/internal/domains/payment/model"
	productModel "hostly/internal/domains/product/model"
	"time"
)

const (
	BookingCreated = "booking.created"
)

type Event struct {
	Name         string                     `json:"event"`
	OccurredAt   time.Time                  `json:"occurredAt"`
	Booking      bookingModel.Booking       `json:"booking"`
	Payment      *paymentModel.Payment      `json:"payment,omitempty"`
	Installments []paymentModel.Installment `json:"installments,omitempty"`
	Host         hostModel.Host             `json:"-"`
	Product      productModel.Product       `json:"product"`
}

// Observer reacts to a dispatched event. Lower priority runs later.
type Observer interface {
	Name() string
	Priority() int
	Handle(ctx context.Context, event Event) error
}

// Result is the outcome of one observer for one notification.
type Result struct {
	Observer string
	Priority int
	Duration time.Duration
	Err      error
}

// Failed returns the results that carry an error.
func Failed(results []Result) []Result {
	failed := []Result{}

	for _, result := range results {
		if result.Err != nil {
			failed = append(failed, result)
		}
	}

	return failed
}
