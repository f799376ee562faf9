// Package builder assembles booking records from the resolved parts of a booking request.
package builder

import (
	billingModel "hostly/internal/domains/billing/model"
	"hostly/internal/domains/booking/model"
	"hostly/internal/domains/booking/model/dto"
	"hostly/internal/domains/payment/strategy"
	productModel "hostly/internal/domains/product/model"
	userModel "hostly/internal/domains/user/model"
	userDto "hostly/internal/domains/user/model/dto"
	"hostly/shared/idgen"
	gModel "hostly/shared/model"
	"strings"
	"time"
)

const defaultActor = "booking-pipeline"

// BookingBuilder accumulates a booking. Methods return an updated copy and never fail.
type BookingBuilder struct {
	clock   func() time.Time
	now     time.Time
	booking model.Booking
}

func NewBookingBuilder(clock func() time.Time) BookingBuilder {
	return BookingBuilder{clock: clock}.Reset()
}

// Reset starts a new booking. The timestamp taken here is reused by every later call.
func (b BookingBuilder) Reset() BookingBuilder {
	b.now = b.clock().UTC()
	b.booking = model.Booking{
		ID:            idgen.RecordID(b.now),
		Alias:         idgen.Alias(),
		BookingStatus: model.StatusPending,
		PaymentStatus: model.PaymentStatusPending,
		PaymentMode:   model.PaymentModeUpfront,
		Preview:       gModel.NewJSON(model.ZeroPreview("", 0)),
		Attendees:     gModel.NewJSON([]model.Attendee{}),
		Billing:       gModel.NewJSON(billingModel.BookingBilling{Breakdown: []billingModel.BreakdownItem{}}),
		Metadata:      gModel.NewMetadata(b.now, defaultActor),
	}

	return b
}

// Now is the instant fixed at Reset.
func (b BookingBuilder) Now() time.Time {
	return b.now
}

func (b BookingBuilder) WithIdentity(hostID string, customer userModel.Customer, data userDto.CustomerData) BookingBuilder {
	b.booking.HostID = hostID
	b.booking.UserID = customer.UserID
	b.booking.CustomerID = customer.ID
	b.booking.Email = data.NormalizedEmail()
	b.booking.User = gModel.NewJSON(model.UserSnapshot{
		UserID:       customer.UserID,
		CustomerID:   customer.ID,
		Email:        data.NormalizedEmail(),
		Name:         data.Name,
		LastName:     data.LastName,
		PhoneNumber:  data.PhoneNumber,
		IsRegistered: customer.IsRegistered,
	})

	return b
}

func (b BookingBuilder) WithProduct(product productModel.Product) BookingBuilder {
	b.booking.ProductID = product.ID
	b.booking.FreeAccess = product.Free

	return b
}

func (b BookingBuilder) WithPlan(plan productModel.Plan) BookingBuilder {
	b.booking.PlanID = plan.ID

	return b
}

// WithDate selects an occurrence from the product's date catalog.
func (b BookingBuilder) WithDate(date productModel.Date) BookingBuilder {
	dateID := date.ID
	start := date.StartDate.UTC()
	end := date.EndDate.UTC()

	b.booking.DateID = &dateID
	b.booking.StartDate = &start
	b.booking.EndDate = &end

	return b
}

// WithSession replaces any catalog date with an inline one-to-one session range.
func (b BookingBuilder) WithSession(start, end time.Time) BookingBuilder {
	start = start.UTC()
	end = end.UTC()

	b.booking.DateID = nil
	b.booking.StartDate = &start
	b.booking.EndDate = &end

	return b
}

func (b BookingBuilder) WithTimezone(name string) BookingBuilder {
	b.booking.Timezone = name

	return b
}

// WithAttendees copies only the contact fields of each attendee.
func (b BookingBuilder) WithAttendees(attendees []dto.AttendeeRequest) BookingBuilder {
	projected := make([]model.Attendee, 0, len(attendees))

	for _, attendee := range attendees {
		projected = append(projected, model.Attendee{
			Email:       strings.ToLower(strings.TrimSpace(attendee.Email)),
			Name:        attendee.Name,
			PhoneNumber: attendee.PhoneNumber,
			Instagram:   attendee.Instagram,
		})
	}

	b.booking.Attendees = gModel.NewJSON(projected)
	b.booking.TotalAttendees = len(projected)

	return b
}

// WithPaymentMode records the requested mode. Build downgrades it when no installments were planned.
func (b BookingBuilder) WithPaymentMode(installments bool) BookingBuilder {
	b.booking.PaymentMode = model.PaymentModeUpfront
	if installments {
		b.booking.PaymentMode = model.PaymentModeInstallments
	}

	return b
}

// WithHostEmail marks bookings the host made against their own product.
func (b BookingBuilder) WithHostEmail(hostEmail string) BookingBuilder {
	hostEmail = strings.TrimSpace(hostEmail)
	b.booking.IsTest = hostEmail != "" && strings.EqualFold(strings.TrimSpace(b.booking.Email), hostEmail)

	return b
}

func (b BookingBuilder) WithPreview(preview model.Preview) BookingBuilder {
	if preview.Installments == nil {
		preview.Installments = []model.InstallmentPlanEntry{}
	}

	b.booking.Preview = gModel.NewJSON(preview)

	return b
}

// ResetPreview zeroes the preview while keeping its currency and attendee count.
func (b BookingBuilder) ResetPreview() BookingBuilder {
	current := b.booking.Preview.Val
	b.booking.Preview = gModel.NewJSON(model.ZeroPreview(current.Currency, b.booking.TotalAttendees))

	return b
}

func (b BookingBuilder) WithBilling(billing billingModel.BookingBilling) BookingBuilder {
	if billing.Breakdown == nil {
		billing.Breakdown = []billingModel.BreakdownItem{}
	}

	b.booking.Billing = gModel.NewJSON(billing)
	b.booking.InvoiceID = billing.InvoiceID

	return b
}

func (b BookingBuilder) WithStrategy(s strategy.Strategy) BookingBuilder {
	method := s.PaymentMethod()

	b.booking.Currency = s.Currency()
	b.booking.PaymentMethod = &method
	b.booking.PaymentStatus = s.PaymentStatus()

	return b
}

func (b BookingBuilder) WithCreatedBy(by string) BookingBuilder {
	b.booking.Metadata = gModel.NewMetadata(b.now, by)

	return b
}

// Build derives the booking status from the payment status. Free bookings are always confirmed,
// and a booking only keeps INSTALLMENTS when its preview applied the program.
func (b BookingBuilder) Build() model.Booking {
	booking := b.booking

	if booking.FreeAccess {
		booking.PaymentStatus = model.PaymentStatusPaid
	}

	booking.BookingStatus = model.StatusForPayment(booking.PaymentStatus)

	if !booking.Preview.Val.InstallmentsProgramApplied {
		booking.PaymentMode = model.PaymentModeUpfront
	}

	if booking.Preview.Val.Currency == "" {
		preview := booking.Preview.Val
		preview.Currency = booking.Currency
		booking.Preview = gModel.NewJSON(preview)
	}

	return booking
}
