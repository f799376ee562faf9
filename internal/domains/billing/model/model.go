package model

import (
	"hostly/shared/model"
	"hostly/shared/money"
	"time"
)

const (
	TableName  = "invoices"
	EntityName = "invoice"

	FieldID                 = "id"
	FieldHostID             = "host_id"
	FieldStatus             = "status"
	FieldBreakdown          = "breakdown"
	FieldSubtotal           = "subtotal"
	FieldBillingTotal       = "billing_total"
	FieldTotal              = "total"
	FieldPaidCommissions    = "paid_commissions"
	FieldStartBillingDate   = "start_billing_date"
	FieldClosingBillingDate = "closing_billing_date"
	FieldDelayed            = "delayed"

	CacheKeyCurrentInvoice = "invoice:current"
)

const (
	InvoiceStatusInProgress     = "IN_PROGRESS"
	InvoiceStatusPendingPayment = "PENDING_PAYMENT"
	InvoiceStatusPaid           = "PAID"
)

const (
	RulePercentageCommission = "PLAN_PERCENTAGE_COMMISSION"
	RuleFixedCommission      = "PLAN_FIXED_COMMISSION"
)

const (
	CommissionPayerHost     = "HOST"
	CommissionPayerCustomer = "CUSTOMER"
)

// BillingRule is one commission rule of a host's billing plan.
type BillingRule struct {
	Key    string  `json:"key"`
	Type   string  `json:"type"`
	Amount float64 `json:"amount"`
}

func (r BillingRule) Modifier() money.Modifier {
	return money.Modifier{Type: r.Type, Amount: r.Amount}
}

type BillingPlan struct {
	Name            string        `json:"name"`
	CommissionPayer string        `json:"commissionPayer"`
	Breakdown       []BillingRule `json:"breakdown"`
}

type BreakdownItem struct {
	Key              string  `json:"key"`
	Type             string  `json:"type"`
	Amount           float64 `json:"amount"`
	CalculatedAmount float64 `json:"calculatedAmount"`
}

// BookingBilling is the commission snapshot embedded in a booking.
type BookingBilling struct {
	Subtotal        float64         `json:"subtotal"`
	Breakdown       []BreakdownItem `json:"breakdown"`
	InvoiceID       string          `json:"invoiceId"`
	CommissionPayer string          `json:"commissionPayer"`
	CommissionPaid  bool            `json:"commissionPaid"`
}

// Invoice aggregates a host's commissions for one billing period.
// At most one IN_PROGRESS invoice exists per host.
type Invoice struct {
	ID                 string                      `db:"id"                   json:"id"`
	HostID             string                      `db:"host_id"              json:"hostId"`
	Status             string                      `db:"status"               json:"status"`
	Breakdown          model.JSON[[]BreakdownItem] `db:"breakdown"            json:"breakdown"`
	Subtotal           float64                     `db:"subtotal"             json:"subtotal"`
	BillingTotal       float64                     `db:"billing_total"        json:"billingTotal"`
	Total              float64                     `db:"total"                json:"total"`
	PaidCommissions    float64                     `db:"paid_commissions"     json:"paidCommissions"`
	StartBillingDate   time.Time                   `db:"start_billing_date"   json:"startBillingDate"`
	ClosingBillingDate time.Time                   `db:"closing_billing_date" json:"closingBillingDate"`
	Delayed            bool                        `db:"delayed"              json:"delayed"`
	model.Metadata
}

// IsExpired reports whether the billing period closed at or before now.
func (i Invoice) IsExpired(now time.Time) bool {
	return !i.ClosingBillingDate.After(now)
}

// ApplyCharge adds a booking's commissions to the invoice totals and merges its breakdown by key.
func (i Invoice) ApplyCharge(billing BookingBilling) Invoice {
	i.Subtotal = money.Sum(i.Subtotal, billing.Subtotal)
	i.BillingTotal = money.Sum(i.BillingTotal, billing.Subtotal)

	if billing.CommissionPaid {
		i.PaidCommissions = money.Sum(i.PaidCommissions, billing.Subtotal)
	}

	i.Total = money.Sub(i.BillingTotal, i.PaidCommissions)

	merged := make([]BreakdownItem, len(i.Breakdown.Val))
	copy(merged, i.Breakdown.Val)

	for _, item := range billing.Breakdown {
		found := false

		for idx := range merged {
			if merged[idx].Key == item.Key {
				merged[idx].CalculatedAmount = money.Sum(merged[idx].CalculatedAmount, item.CalculatedAmount)
				found = true

				break
			}
		}

		if !found {
			merged = append(merged, item)
		}
	}

	i.Breakdown = model.NewJSON(merged)

	return i
}
