package model

import (
	"hostly/shared/model"
	"time"
)

const (
	TableName  = "payments"
	EntityName = "payment"

	FieldID        = "id"
	FieldBookingID = "booking_id"
)

const (
	InstallmentTableName  = "installments"
	InstallmentEntityName = "installment"

	FieldInstallmentID        = "id"
	FieldInstallmentBookingID = "booking_id"
	FieldInstallmentOrder     = "installment_order"
)

const (
	StatusPending = "PENDING"
	StatusPaid    = "PAID"
)

const (
	MethodManualTransfer = "MANUAL_TRANSFER"
	MethodMobilePayment  = "MOBILE_PAYMENT"
)

type Payment struct {
	ID                   string                         `db:"id"                    json:"id"`
	BookingID            string                         `db:"booking_id"            json:"bookingId"`
	HostID               string                         `db:"host_id"               json:"hostId"`
	ProductID            string                         `db:"product_id"            json:"productId"`
	PlanID               string                         `db:"plan_id"               json:"planId"`
	Amount               float64                        `db:"amount"                json:"amount"`
	PaymentMethod        string                         `db:"payment_method"        json:"paymentMethod"`
	PaymentStatus        string                         `db:"payment_status"        json:"paymentStatus"`
	PaymentDate          time.Time                      `db:"payment_date"          json:"paymentDate"`
	RequiresCoordination bool                           `db:"requires_coordination" json:"requiresCoordination"`
	PaymentReceipt       *string                        `db:"payment_receipt"       json:"paymentReceipt,omitempty"`
	ConversionRates      model.JSON[map[string]float64] `db:"conversion_rates"      json:"conversionRates,omitempty"`
	Currency             string                         `db:"currency"              json:"currency"`
	model.Metadata
}

// Installment is one scheduled part of a booking's payment plan, ordered from 1.
type Installment struct {
	ID                string     `db:"id"                 json:"id"`
	BookingID         string     `db:"booking_id"         json:"bookingId"`
	Order             int        `db:"installment_order"  json:"order"`
	Amount            float64    `db:"amount"             json:"amount"`
	DueDate           time.Time  `db:"due_date"           json:"dueDate"`
	PaymentStatus     string     `db:"payment_status"     json:"paymentStatus"`
	TotalInstallments int        `db:"total_installments" json:"totalInstallments"`
	PaymentID         *string    `db:"payment_id"         json:"paymentId,omitempty"`
	PaymentDate       *time.Time `db:"payment_date"       json:"paymentDate,omitempty"`
	model.Metadata
}
