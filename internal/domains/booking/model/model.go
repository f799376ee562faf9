package model

import (
	billingModel "hostly/internal/domains/billing/model"
	"hostly/shared/model"
	"time"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID            = "id"
	FieldAlias         = "alias"
	FieldHostID        = "host_id"
	FieldProductID     = "product_id"
	FieldCustomerID    = "customer_id"
	FieldEmail         = "email"
	FieldBookingStatus = "booking_status"
	FieldPaymentStatus = "payment_status"
	FieldIsTest        = "is_test"
)

const (
	StatusPending   = "PENDING"
	StatusConfirmed = "CONFIRMED"

	PaymentStatusPending = "PENDING"
	PaymentStatusPaid    = "PAID"
)

const (
	PaymentModeInstallments = "INSTALLMENTS"
	PaymentModeUpfront      = "UPFRONT"
)

// Cache key prefixes shared by the booking service and the cache observer.
const (
	CacheKeyGetBooking  = "booking:get"
	CacheKeyGetBookings = "booking:gets"
	CacheKeyCount       = "booking:count"
)

// InstallmentPlanEntry is one precomputed part of an installment program.
type InstallmentPlanEntry struct {
	Order   int       `json:"order"`
	Amount  float64   `json:"amount"`
	DueDate time.Time `json:"dueDate"`
}

// Preview is the priced summary a booking was accepted with.
type Preview struct {
	Currency                   string                 `json:"currency"`
	UnitPrice                  float64                `json:"unitPrice"`
	TotalAttendees             int                    `json:"totalAttendees"`
	Subtotal                   float64                `json:"subtotal"`
	Discount                   float64                `json:"discount"`
	Total                      float64                `json:"total"`
	InstallmentsProgramApplied bool                   `json:"installmentsProgramApplied"`
	Installments               []InstallmentPlanEntry `json:"installments"`
}

type Attendee struct {
	Email       string `json:"email"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Instagram   string `json:"instagram,omitempty"`
}

// UserSnapshot copies the booker's identity at booking time.
type UserSnapshot struct {
	UserID       string `json:"userId"`
	CustomerID   string `json:"customerId"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	LastName     string `json:"lastName,omitempty"`
	PhoneNumber  string `json:"phoneNumber,omitempty"`
	IsRegistered bool   `json:"isRegistered"`
}

type Booking struct {
	ID             string                                  `db:"id"              json:"id"`
	Alias          string                                  `db:"alias"           json:"alias"`
	HostID         string                                  `db:"host_id"         json:"hostId"`
	ProductID      string                                  `db:"product_id"      json:"productId"`
	PlanID         string                                  `db:"plan_id"         json:"planId"`
	DateID         *string                                 `db:"date_id"         json:"dateId,omitempty"`
	StartDate      *time.Time                              `db:"start_date"      json:"startDate,omitempty"`
	EndDate        *time.Time                              `db:"end_date"        json:"endDate,omitempty"`
	UserID         string                                  `db:"user_id"         json:"userId"`
	CustomerID     string                                  `db:"customer_id"     json:"customerId"`
	Email          string                                  `db:"email"           json:"email"`
	Currency       string                                  `db:"currency"        json:"currency"`
	BookingStatus  string                                  `db:"booking_status"  json:"bookingStatus"`
	PaymentStatus  string                                  `db:"payment_status"  json:"paymentStatus"`
	Preview        model.JSON[Preview]                     `db:"preview"         json:"bookingPreview"`
	Attendees      model.JSON[[]Attendee]                  `db:"attendees"       json:"attendees"`
	TotalAttendees int                                     `db:"total_attendees" json:"totalAttendees"`
	Timezone       string                                  `db:"timezone"        json:"timezone"`
	User           model.JSON[UserSnapshot]                `db:"user_snapshot"   json:"user"`
	PaymentMode    string                                  `db:"payment_mode"    json:"paymentMode"`
	IsTest         bool                                    `db:"is_test"         json:"isTest"`
	FreeAccess     bool                                    `db:"free_access"     json:"freeAccess"`
	Billing        model.JSON[billingModel.BookingBilling] `db:"billing"         json:"billing"`
	InvoiceID      string                                  `db:"invoice_id"      json:"invoiceId"`
	PaymentMethod  *string                                 `db:"payment_method"  json:"paymentMethod,omitempty"`
	model.Metadata
}

// ZeroPreview is the preview of a booking that costs nothing.
func ZeroPreview(currency string, totalAttendees int) Preview {
	return Preview{
		Currency:       currency,
		TotalAttendees: totalAttendees,
		Installments:   []InstallmentPlanEntry{},
	}
}

// StatusForPayment maps a payment status to the booking status it implies.
func StatusForPayment(paymentStatus string) string {
	if paymentStatus == PaymentStatusPaid {
		return StatusConfirmed
	}

	return StatusPending
}
