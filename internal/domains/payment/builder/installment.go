package builder

import (
	bookingModel "hostly/internal/domains/booking/model"
	"hostly/internal/domains/payment/model"
	"hostly/shared/idgen"
	gModel "hostly/shared/model"
	"time"
)

const defaultActor = "booking-pipeline"

// InstallmentBuilder expands a booking preview's installment plan into records.
type InstallmentBuilder struct {
	clock     func() time.Time
	now       time.Time
	bookingID string
	preview   bookingModel.Preview
	payment   *model.Payment
	createdBy string
}

func NewInstallmentBuilder(clock func() time.Time) InstallmentBuilder {
	return InstallmentBuilder{clock: clock}.Reset()
}

func (b InstallmentBuilder) Reset() InstallmentBuilder {
	b.now = b.clock().UTC()
	b.bookingID = ""
	b.preview = bookingModel.Preview{}
	b.payment = nil
	b.createdBy = defaultActor

	return b
}

func (b InstallmentBuilder) WithBooking(booking bookingModel.Booking) InstallmentBuilder {
	b.bookingID = booking.ID
	b.preview = booking.Preview.Val

	return b
}

func (b InstallmentBuilder) WithPreview(preview bookingModel.Preview) InstallmentBuilder {
	b.preview = preview

	return b
}

// WithPayment links the initiating payment to the first installment.
func (b InstallmentBuilder) WithPayment(payment model.Payment) InstallmentBuilder {
	b.payment = &payment

	return b
}

func (b InstallmentBuilder) WithCreatedBy(by string) InstallmentBuilder {
	b.createdBy = by

	return b
}

// Build returns nothing unless the preview applied an installment program.
func (b InstallmentBuilder) Build() []model.Installment {
	if !b.preview.InstallmentsProgramApplied || len(b.preview.Installments) == 0 {
		return nil
	}

	total := len(b.preview.Installments)
	installments := make([]model.Installment, 0, total)

	// ids step one millisecond per entry
	for i, entry := range b.preview.Installments {
		installment := model.Installment{
			ID:                idgen.RecordID(b.now.Add(time.Duration(i) * time.Millisecond)),
			BookingID:         b.bookingID,
			Order:             i + 1,
			Amount:            entry.Amount,
			DueDate:           entry.DueDate.UTC(),
			PaymentStatus:     model.StatusPending,
			TotalInstallments: total,
			Metadata:          gModel.NewMetadata(b.now, b.createdBy),
		}

		if i == 0 && b.payment != nil {
			paymentID := b.payment.ID
			paymentDate := b.payment.PaymentDate

			installment.PaymentID = &paymentID
			installment.PaymentDate = &paymentDate
			installment.PaymentStatus = b.payment.PaymentStatus
		}

		installments = append(installments, installment)
	}

	return installments
}
