package dto

import (
	"hostly/internal/domains/booking/model"
	userDto "hostly/internal/domains/user/model/dto"
	"hostly/shared"
	gDto "hostly/shared/dto"
	"hostly/shared/timezone"
	"time"
)

const SessionDateLayout = "2006-01-02T15:04"

// SessionRequest carries the inline date of a one-to-one session, in the request timezone.
type SessionRequest struct {
	StartDate       string `json:"startDate"       validate:"required,datetime=2006-01-02T15:04"`
	DurationMinutes int    `json:"durationMinutes" validate:"required,gt=0,lte=1440"`
}

type AttendeeRequest struct {
	Email       string `json:"email"       validate:"required,email,max=100"`
	Name        string `json:"name"        validate:"required,max=100"`
	PhoneNumber string `json:"phoneNumber" validate:"omitempty,max=20"`
	Instagram   string `json:"instagram"   validate:"omitempty,max=50"`
}

// ReceiptRequest is a base64 data URI of the manual payment voucher.
type ReceiptRequest struct {
	FileName string `json:"fileName" validate:"required,max=255"`
	Data     string `json:"data"     validate:"required,mimetypes=image/png image/jpeg application/pdf,maxfilesize=5"`
}

type CreateBookingRequest struct {
	Customer        userDto.CustomerData `json:"customer"`
	ProductID       string               `json:"productId"       validate:"required"`
	PlanID          string               `json:"planId"          validate:"required"`
	DateID          string               `json:"dateId"          validate:"omitempty"`
	Session         *SessionRequest      `json:"session"         validate:"omitempty"`
	Timezone        string               `json:"timezone"        validate:"omitempty,timezone"`
	Attendees       []AttendeeRequest    `json:"attendees"       validate:"required,min=1,dive"`
	ProcessorType   string               `json:"processorType"   validate:"required"`
	Installments    bool                 `json:"installments"`
	PaymentReceipt  *ReceiptRequest      `json:"paymentReceipt"  validate:"omitempty"`
	ConversionRates map[string]float64   `json:"conversionRates" validate:"omitempty"`
}

// SessionRange converts the inline session to a UTC range.
func (r CreateBookingRequest) SessionRange() (start, end time.Time, err error) {
	start, err = timezone.ParseIn(SessionDateLayout, r.Session.StartDate, r.Timezone)
	if err != nil {
		return start, end, err //nolint:wrapcheck
	}

	return start, start.Add(time.Duration(r.Session.DurationMinutes) * time.Minute), nil
}

type CreateBookingResponse struct {
	ID            string        `json:"id"`
	Alias         string        `json:"alias"`
	BookingStatus string        `json:"bookingStatus"`
	PaymentStatus string        `json:"paymentStatus"`
	PaymentMode   string        `json:"paymentMode"`
	Preview       model.Preview `json:"bookingPreview"`
	PaymentID     string        `json:"paymentId,omitempty"`
	Installments  int           `json:"installments"`
}

func (r *CreateBookingResponse) FromModel(booking model.Booking, paymentID string, installments int) {
	r.ID = booking.ID
	r.Alias = booking.Alias
	r.BookingStatus = booking.BookingStatus
	r.PaymentStatus = booking.PaymentStatus
	r.PaymentMode = booking.PaymentMode
	r.Preview = booking.Preview.Val
	r.PaymentID = paymentID
	r.Installments = installments
}

type BookingResponse struct {
	ID             string           `json:"id"`
	Alias          string           `json:"alias"`
	HostID         string           `json:"hostId"`
	ProductID      string           `json:"productId"`
	PlanID         string           `json:"planId"`
	DateID         *string          `json:"dateId,omitempty"`
	StartDate      *time.Time       `json:"startDate,omitempty"`
	EndDate        *time.Time       `json:"endDate,omitempty"`
	CustomerID     string           `json:"customerId"`
	Email          string           `json:"email"`
	Currency       string           `json:"currency"`
	BookingStatus  string           `json:"bookingStatus"`
	PaymentStatus  string           `json:"paymentStatus"`
	PaymentMode    string           `json:"paymentMode"`
	PaymentMethod  *string          `json:"paymentMethod,omitempty"`
	Preview        model.Preview    `json:"bookingPreview"`
	Attendees      []model.Attendee `json:"attendees"`
	TotalAttendees int              `json:"totalAttendees"`
	Timezone       string           `json:"timezone"`
	IsTest         bool             `json:"isTest"`
	FreeAccess     bool             `json:"freeAccess"`
	InvoiceID      string           `json:"invoiceId"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(m model.Booking) {
	r.ID = m.ID
	r.Alias = m.Alias
	r.HostID = m.HostID
	r.ProductID = m.ProductID
	r.PlanID = m.PlanID
	r.DateID = m.DateID
	r.StartDate = m.StartDate
	r.EndDate = m.EndDate
	r.CustomerID = m.CustomerID
	r.Email = m.Email
	r.Currency = m.Currency
	r.BookingStatus = m.BookingStatus
	r.PaymentStatus = m.PaymentStatus
	r.PaymentMode = m.PaymentMode
	r.PaymentMethod = m.PaymentMethod
	r.Preview = m.Preview.Val
	r.Attendees = m.Attendees.Val
	r.TotalAttendees = m.TotalAttendees
	r.Timezone = m.Timezone
	r.IsTest = m.IsTest
	r.FreeAccess = m.FreeAccess
	r.InvoiceID = m.InvoiceID
	r.Metadata.FromModel(m.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
