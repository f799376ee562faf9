package builder

import (
	"fmt"
	bookingModel "hostly/internal/domains/booking/model"
	"hostly/internal/domains/payment/model"
	"hostly/internal/domains/payment/strategy"
	"hostly/shared/idgen"
	gModel "hostly/shared/model"
	"path"
	"strings"
	"time"
)

const (
	receiptDateLayout = "2006-01-02"
	receiptExtension  = ".jpeg"
)

// ReceiptPath is the object key a payment receipt is stored under.
// The extension is always .jpeg whatever the uploaded file was.
func ReceiptPath(productID, fileName string, at time.Time) string {
	base := path.Base(strings.ReplaceAll(fileName, "\\", "/"))
	base = strings.TrimSuffix(base, path.Ext(base))

	return fmt.Sprintf("private/products/%s/payments/%s/%s%s", productID, at.UTC().Format(receiptDateLayout), base, receiptExtension)
}

// PaymentBuilder assembles a Payment. Every method returns an updated copy.
type PaymentBuilder struct {
	clock   func() time.Time
	now     time.Time
	payment model.Payment
}

func NewPaymentBuilder(clock func() time.Time) PaymentBuilder {
	return PaymentBuilder{clock: clock}.Reset()
}

// Reset seeds a fresh payment and fixes the timestamp used by later calls.
func (b PaymentBuilder) Reset() PaymentBuilder {
	b.now = b.clock().UTC()
	b.payment = model.Payment{
		ID:            idgen.RecordID(b.now),
		PaymentStatus: model.StatusPending,
		PaymentDate:   b.now,
		Metadata:      gModel.NewMetadata(b.now, defaultActor),
	}

	return b
}

func (b PaymentBuilder) WithBooking(booking bookingModel.Booking) PaymentBuilder {
	b.payment.BookingID = booking.ID
	b.payment.HostID = booking.HostID
	b.payment.ProductID = booking.ProductID
	b.payment.PlanID = booking.PlanID
	b.payment.Currency = booking.Currency

	return b
}

func (b PaymentBuilder) WithAmount(amount float64) PaymentBuilder {
	b.payment.Amount = amount

	return b
}

func (b PaymentBuilder) WithStrategy(s strategy.Strategy) PaymentBuilder {
	b.payment.PaymentMethod = s.PaymentMethod()
	b.payment.PaymentStatus = s.PaymentStatus()
	b.payment.RequiresCoordination = s.RequiresCoordination()

	if b.payment.Currency == "" {
		b.payment.Currency = s.Currency()
	}

	return b
}

// WithReceipt records where the uploaded receipt lives. An empty file name leaves it unset.
func (b PaymentBuilder) WithReceipt(fileName string) PaymentBuilder {
	if strings.TrimSpace(fileName) == "" {
		return b
	}

	receipt := ReceiptPath(b.payment.ProductID, fileName, b.now)
	b.payment.PaymentReceipt = &receipt

	return b
}

func (b PaymentBuilder) WithConversionRates(rates map[string]float64) PaymentBuilder {
	if len(rates) > 0 {
		b.payment.ConversionRates = gModel.NewJSON(rates)
	}

	return b
}

func (b PaymentBuilder) WithCreatedBy(by string) PaymentBuilder {
	b.payment.Metadata = gModel.NewMetadata(b.now, by)

	return b
}

func (b PaymentBuilder) Build() model.Payment {
	return b.payment
}
