package dto

import (
	"hostly/internal/domains/billing/model"
	"time"
)

type InvoiceResponse struct {
	ID                 string                `json:"id"`
	HostID             string                `json:"hostId"`
	Status             string                `json:"status"`
	Breakdown          []model.BreakdownItem `json:"breakdown"`
	Subtotal           float64               `json:"subtotal"`
	BillingTotal       float64               `json:"billingTotal"`
	PaidCommissions    float64               `json:"paidCommissions"`
	Total              float64               `json:"total"`
	StartBillingDate   time.Time             `json:"startBillingDate"`
	ClosingBillingDate time.Time             `json:"closingBillingDate"`
	Delayed            bool                  `json:"delayed"`
}

func (r *InvoiceResponse) FromModel(m model.Invoice) {
	r.ID = m.ID
	r.HostID = m.HostID
	r.Status = m.Status
	r.Breakdown = m.Breakdown.Val
	r.Subtotal = m.Subtotal
	r.BillingTotal = m.BillingTotal
	r.PaidCommissions = m.PaidCommissions
	r.Total = m.Total
	r.StartBillingDate = m.StartBillingDate
	r.ClosingBillingDate = m.ClosingBillingDate
	r.Delayed = m.Delayed

	if r.Breakdown == nil {
		r.Breakdown = []model.BreakdownItem{}
	}
}

type CloseInvoicesResponse struct {
	Closed int `json:"closed"`
}
