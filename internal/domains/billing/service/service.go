package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"hostly/config"
	"hostly/infras/otel"
	"hostly/internal/domains/billing/model"
	"hostly/internal/domains/billing/model/dto"
	"hostly/internal/domains/billing/repository"
	"hostly/shared"
	"hostly/shared/cache"
	"hostly/shared/constant"
	"hostly/shared/failure"
	"hostly/shared/idgen"
	gModel "hostly/shared/model"
	"hostly/shared/money"
	"hostly/shared/timezone"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const systemActor = "billing-engine"

// CommissionPayer tells whether the platform commission was already collected with the payment.
type CommissionPayer interface {
	IsCommissionPaid() bool
}

// Billing owns invoices and the commission charged per booking.
type Billing interface {
	PrepareInvoice(ctx context.Context, hostID string) (model.Invoice, error)
	PrepareBilling(ctx context.Context, hostID string, plan *model.BillingPlan, bookingTotal float64, payer CommissionPayer) (model.BookingBilling, error)
	RegisterChargeTx(ctx context.Context, tx *sqlx.Tx, billing model.BookingBilling) error
	GetCurrentInvoice(ctx context.Context, hostID string) (dto.InvoiceResponse, error)
	CloseExpiredInvoices(ctx context.Context) (int, error)
}

type serviceImpl struct {
	repo  repository.Billings
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
	now   func() time.Time
}

func New(repo repository.Billings, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Billing {
	return NewWithClock(repo, cfg, cache, otel, timezone.NowUTC)
}

func NewWithClock(repo repository.Billings, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, now func() time.Time) Billing {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
		now:   now,
	}
}

// PrepareInvoice returns the host's IN_PROGRESS invoice, opening one when none exists or the current one expired.
// A unique violation on insert means a concurrent request opened it first, so the read is retried.
func (s *serviceImpl) PrepareInvoice(ctx context.Context, hostID string) (invoice model.Invoice, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".PrepareInvoice")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	retries := max(s.cfg.Billing.InvoiceRetries, 1)

	for attempt := 1; attempt <= retries; attempt++ {
		invoices, err := s.repo.GetHostInvoices(ctx, hostID, []string{model.InvoiceStatusInProgress})
		if err != nil {
			log.Error().Err(err).Str("hostID", hostID).Msg("failed to get host invoices")

			return invoice, fmt.Errorf("failed to get host invoices: %w", err)
		}

		if len(invoices) > 0 {
			current := invoices[0]
			if !current.IsExpired(s.now()) {
				return current, nil
			}

			// period ended before the closing job ran
			if err = s.closeInvoice(ctx, current); err != nil {
				return model.Invoice{}, err
			}
		}

		invoice = NewInvoice(hostID, s.now())

		err = s.repo.CreateInvoice(ctx, invoice)
		if err == nil {
			log.Info().Str("hostID", hostID).Str("invoiceID", invoice.ID).Msg("opened invoice")

			return invoice, nil
		}

		if !shared.IsUniqueViolation(err) {
			log.Error().Err(err).Str("hostID", hostID).Msg("failed to create invoice")

			return model.Invoice{}, fmt.Errorf("failed to create invoice: %w", err)
		}

		log.Warn().Str("hostID", hostID).Int("attempt", attempt).Msg("invoice opened concurrently, re-reading")
	}

	return model.Invoice{}, failure.Conflict("could not acquire the host's in-progress invoice") //nolint:wrapcheck
}

// PrepareBilling computes the booking's commission against the host's open invoice.
func (s *serviceImpl) PrepareBilling(ctx context.Context, hostID string, plan *model.BillingPlan, bookingTotal float64, payer CommissionPayer) (billing model.BookingBilling, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".PrepareBilling")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	invoice, err := s.PrepareInvoice(ctx, hostID)
	if err != nil {
		return billing, err
	}

	breakdown, subtotal := CalculateBreakdown(plan, bookingTotal)

	billing = model.BookingBilling{
		Subtotal:       subtotal,
		Breakdown:      breakdown,
		InvoiceID:      invoice.ID,
		CommissionPaid: payer.IsCommissionPaid(),
	}

	if plan != nil {
		billing.CommissionPayer = plan.CommissionPayer
	}

	return billing, nil
}

// RegisterChargeTx adds the booking's commissions to its invoice inside the booking transaction.
// The cached invoice is left to the post-commit cache observer.
func (s *serviceImpl) RegisterChargeTx(ctx context.Context, tx *sqlx.Tx, billing model.BookingBilling) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RegisterChargeTx")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	invoice, err := s.repo.GetInvoiceForUpdateTx(ctx, tx, billing.InvoiceID)
	if err != nil {
		log.Error().Err(err).Str("invoiceID", billing.InvoiceID).Msg("failed to lock invoice")

		return fmt.Errorf("failed to lock invoice: %w", err)
	}

	if invoice.ID == constant.Empty {
		return failure.NotFound("invoice not found") //nolint:wrapcheck
	}

	if invoice.Status != model.InvoiceStatusInProgress {
		log.Warn().Str("invoiceID", invoice.ID).Str("status", invoice.Status).Msg("invoice closed before the charge was registered")

		return failure.Conflict("invoice is already closed, retry the booking") //nolint:wrapcheck
	}

	updated := invoice.ApplyCharge(billing)

	err = s.repo.UpdateInvoiceTx(ctx, tx, invoice.ID, map[string]any{
		model.FieldSubtotal:        updated.Subtotal,
		model.FieldBillingTotal:    updated.BillingTotal,
		model.FieldPaidCommissions: updated.PaidCommissions,
		model.FieldTotal:           updated.Total,
		model.FieldBreakdown:       updated.Breakdown,
		constant.FieldModifiedAt:   s.now(),
		constant.FieldModifiedBy:   systemActor,
	})
	if err != nil {
		log.Error().Err(err).Str("invoiceID", invoice.ID).Msg("failed to update invoice")

		return fmt.Errorf("failed to update invoice: %w", err)
	}

	return nil
}

func (s *serviceImpl) GetCurrentInvoice(ctx context.Context, hostID string) (res dto.InvoiceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetCurrentInvoice")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(model.CacheKeyCurrentInvoice, hostID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for current invoice")

		return res, nil
	}

	if !errors.Is(err, cache.ErrMiss) {
		log.Warn().Err(err).Str("cacheKey", cacheKey).Msg("cache unavailable, reading current invoice from database")
	}

	invoices, err := s.repo.GetHostInvoices(ctx, hostID, []string{model.InvoiceStatusInProgress})
	if err != nil {
		log.Error().Err(err).Msg("failed to get current invoice")

		return res, fmt.Errorf("failed to get current invoice: %w", err)
	}

	if len(invoices) == 0 {
		return res, failure.NotFound("invoice not found") //nolint:wrapcheck
	}

	res.FromModel(invoices[0])

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save current invoice to cache")
		}
	}()

	return res, nil
}

// CloseExpiredInvoices moves every IN_PROGRESS invoice past its closing date to PENDING_PAYMENT.
// A failure on one invoice does not stop the others.
func (s *serviceImpl) CloseExpiredInvoices(ctx context.Context) (closed int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CloseExpiredInvoices")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	invoices, err := s.repo.GetExpiredInvoices(ctx, model.InvoiceStatusInProgress, s.now())
	if err != nil {
		log.Error().Err(err).Msg("failed to get expired invoices")

		return 0, fmt.Errorf("failed to get expired invoices: %w", err)
	}

	for _, invoice := range invoices {
		if err := s.closeInvoice(ctx, invoice); err != nil {
			continue
		}

		closed++
	}

	log.Info().Int("closed", closed).Int("expired", len(invoices)).Msg("closed expired invoices")

	return closed, nil
}

// closeInvoice moves an invoice to PENDING_PAYMENT unless someone else already did.
func (s *serviceImpl) closeInvoice(ctx context.Context, invoice model.Invoice) error {
	err := s.repo.UpdateInvoiceStatus(ctx, invoice.ID, model.InvoiceStatusInProgress, model.InvoiceStatusPendingPayment, systemActor)
	if err != nil {
		log.Error().Err(err).Str("invoiceID", invoice.ID).Msg("failed to close invoice")

		return fmt.Errorf("failed to close invoice: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, shared.BuildCacheKey(model.CacheKeyCurrentInvoice, invoice.HostID))

	return nil
}

// NewInvoice opens an empty billing period that closes at the end of the current UTC month.
func NewInvoice(hostID string, now time.Time) model.Invoice {
	now = now.UTC()

	return model.Invoice{
		ID:                 idgen.InvoiceID(now),
		HostID:             hostID,
		Status:             model.InvoiceStatusInProgress,
		Breakdown:          gModel.NewJSON([]model.BreakdownItem{}),
		StartBillingDate:   now,
		ClosingBillingDate: timezone.EndOfMonthUTC(now),
		Delayed:            false,
		Metadata:           gModel.NewMetadata(now, systemActor),
	}
}

// CalculateBreakdown applies the plan's commission rules to bookingTotal.
// Percentage rules always apply. Fixed rules only apply to bookings with a positive total.
func CalculateBreakdown(plan *model.BillingPlan, bookingTotal float64) ([]model.BreakdownItem, float64) {
	breakdown := []model.BreakdownItem{}

	if plan == nil {
		return breakdown, 0
	}

	amounts := []float64{}

	for _, rule := range plan.Breakdown {
		switch {
		case rule.Key == model.RulePercentageCommission:
		case rule.Key == model.RuleFixedCommission && bookingTotal > 0:
		default:
			continue
		}

		calculated := money.CalculateAdjustment(rule.Modifier(), bookingTotal)

		breakdown = append(breakdown, model.BreakdownItem{
			Key:              rule.Key,
			Type:             rule.Type,
			Amount:           rule.Amount,
			CalculatedAmount: calculated,
		})

		amounts = append(amounts, calculated)
	}

	return breakdown, money.Sum(amounts...)
}
