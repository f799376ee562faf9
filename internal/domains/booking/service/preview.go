package service

import (
	"hostly/internal/domains/booking/model"
	productModel "hostly/internal/domains/product/model"
	"hostly/shared/money"
	"time"
)

// PreparePreview prices a booking of totalAttendees seats on plan.
// Discounts never take the total below zero. The installment program only applies
// when it was requested, the plan offers one and there is something to pay.
func PreparePreview(plan productModel.Plan, totalAttendees int, installmentsRequested bool, now time.Time) model.Preview {
	subtotal := money.Mul(plan.Price, float64(totalAttendees))

	discounts := make([]float64, 0, len(plan.Discounts.Val))
	for _, modifier := range plan.Discounts.Val {
		discounts = append(discounts, money.CalculateAdjustment(modifier, subtotal))
	}

	discount := min(max(money.Sum(discounts...), 0), subtotal)
	total := money.Sub(subtotal, discount)

	preview := model.Preview{
		Currency:       plan.Currency,
		UnitPrice:      plan.Price,
		TotalAttendees: totalAttendees,
		Subtotal:       subtotal,
		Discount:       discount,
		Total:          total,
		Installments:   []model.InstallmentPlanEntry{},
	}

	if !installmentsRequested || !plan.HasInstallmentProgram() || total <= 0 {
		return preview
	}

	now = now.UTC()

	for i, amount := range money.Split(total, plan.InstallmentsCount) {
		preview.Installments = append(preview.Installments, model.InstallmentPlanEntry{
			Order:   i + 1,
			Amount:  amount,
			DueDate: now.AddDate(0, 0, i*plan.InstallmentsIntervalDays),
		})
	}

	preview.InstallmentsProgramApplied = true

	return preview
}
