package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Booking=MockBookingService

import (
	"context"
	"fmt"
	"hostly/config"
	"hostly/infras/otel"
	"hostly/infras/s3"
	billingService "hostly/internal/domains/billing/service"
	"hostly/internal/domains/booking/builder"
	"hostly/internal/domains/booking/model"
	"hostly/internal/domains/booking/model/dto"
	"hostly/internal/domains/booking/repository"
	hostModel "hostly/internal/domains/host/model"
	hostRepo "hostly/internal/domains/host/repository"
	paymentBuilder "hostly/internal/domains/payment/builder"
	paymentModel "hostly/internal/domains/payment/model"
	paymentRepo "hostly/internal/domains/payment/repository"
	"hostly/internal/domains/payment/strategy"
	productModel "hostly/internal/domains/product/model"
	productRepo "hostly/internal/domains/product/repository"
	userService "hostly/internal/domains/user/service"
	"hostly/internal/events"
	"hostly/shared"
	"hostly/shared/base64"
	"hostly/shared/cache"
	"hostly/shared/constant"
	gDto "hostly/shared/dto"
	"hostly/shared/failure"
	gRepo "hostly/shared/repository"
	"hostly/shared/timezone"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.CreateBookingResponse, error)
	GetAll(ctx context.Context, hostID string, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, hostID string, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, hostID, id string) (dto.BookingResponse, error)
}

// Dependencies groups the collaborators of the booking pipeline.
type Dependencies struct {
	Repo       repository.Booking
	Identity   userService.Identity
	Billing    billingService.Billing
	Strategies strategy.Selector
	Products   productRepo.Product
	Hosts      hostRepo.Host
	Payments   paymentRepo.Payments
	Transactor gRepo.Transactor
	Storage    s3.S3
	Dispatcher events.Dispatcher
	Config     *config.Config
	Cache      cache.RedisCache
	Otel       otel.Otel
	Clock      func() time.Time
}

type serviceImpl struct {
	repo       repository.Booking
	identity   userService.Identity
	billing    billingService.Billing
	strategies strategy.Selector
	products   productRepo.Product
	hosts      hostRepo.Host
	payments   paymentRepo.Payments
	transactor gRepo.Transactor
	storage    s3.S3
	dispatcher events.Dispatcher
	cfg        *config.Config
	cache      cache.RedisCache
	otel       otel.Otel
	now        func() time.Time
}

func New(deps Dependencies) Booking {
	clock := deps.Clock
	if clock == nil {
		clock = timezone.NowUTC
	}

	return &serviceImpl{
		repo:       deps.Repo,
		identity:   deps.Identity,
		billing:    deps.Billing,
		strategies: deps.Strategies,
		products:   deps.Products,
		hosts:      deps.Hosts,
		payments:   deps.Payments,
		transactor: deps.Transactor,
		storage:    deps.Storage,
		dispatcher: deps.Dispatcher,
		cfg:        deps.Config,
		cache:      deps.Cache,
		otel:       deps.Otel,
		now:        clock,
	}
}

// catalog is what a booking request resolves to before anything is written.
type catalog struct {
	product  productModel.Product
	host     hostModel.Host
	plan     productModel.Plan
	date     *productModel.Date
	timezone string
	start    time.Time
	end      time.Time
}

// Create runs the booking pipeline. Every validation and lookup happens before the first write,
// and the booking, its payment records and the invoice charge are committed together.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.CreateBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.identity.ValidateUserData(req.Customer); err != nil {
		return res, err //nolint:wrapcheck
	}

	paymentStrategy, err := s.strategies.CreateStrategy(req.ProcessorType)
	if err != nil {
		log.Warn().Err(err).Str("processorType", req.ProcessorType).Msg("rejected payment processor")

		return res, err //nolint:wrapcheck
	}

	resolved, err := s.resolveCatalog(ctx, req)
	if err != nil {
		return res, err
	}

	customer, err := s.identity.PrepareUser(ctx, resolved.host.ID, req.Customer)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	bookingBuilder := builder.NewBookingBuilder(s.now).
		WithIdentity(resolved.host.ID, customer, req.Customer).
		WithProduct(resolved.product).
		WithPlan(resolved.plan).
		WithTimezone(resolved.timezone).
		WithAttendees(req.Attendees).
		WithPaymentMode(req.Installments).
		WithHostEmail(resolved.host.Email).
		WithStrategy(paymentStrategy).
		WithCreatedBy(customer.UserID)

	if resolved.date != nil {
		bookingBuilder = bookingBuilder.WithDate(*resolved.date)
	} else {
		bookingBuilder = bookingBuilder.WithSession(resolved.start, resolved.end)
	}

	preview := PreparePreview(resolved.plan, len(req.Attendees), req.Installments, bookingBuilder.Now())
	bookingBuilder = bookingBuilder.WithPreview(preview)

	if resolved.product.Free {
		bookingBuilder = bookingBuilder.ResetPreview()
	}

	booking := bookingBuilder.Build()

	billing, err := s.billing.PrepareBilling(ctx, resolved.host.ID, resolved.host.BillingPlan.Val, booking.Preview.Val.Total, paymentStrategy)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	booking = bookingBuilder.WithBilling(billing).Build()

	var (
		payment      *paymentModel.Payment
		installments []paymentModel.Installment
	)

	if !booking.FreeAccess {
		built := s.buildPayment(booking, paymentStrategy, req, customer.UserID)
		payment = &built

		installments = paymentBuilder.NewInstallmentBuilder(s.now).
			WithBooking(booking).
			WithPayment(built).
			WithCreatedBy(customer.UserID).
			Build()
	}

	receiptKey, err := s.uploadReceipt(ctx, req, payment)
	if err != nil {
		return res, err
	}

	err = s.transactor.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		return s.persist(ctx, tx, booking, payment, installments)
	})
	if err != nil {
		log.Error().Err(err).Str("bookingID", booking.ID).Msg("failed to persist booking")

		s.discardReceipt(ctx, receiptKey)

		return res, fmt.Errorf("failed to persist booking: %w", err)
	}

	results := s.dispatcher.Notify(ctx, events.Event{
		Name:         events.BookingCreated,
		OccurredAt:   s.now().UTC(),
		Booking:      booking,
		Payment:      payment,
		Installments: installments,
		Host:         resolved.host,
		Product:      resolved.product,
	})

	for _, failed := range events.Failed(results) {
		log.Warn().Err(failed.Err).Str("observer", failed.Observer).Str("bookingID", booking.ID).Msg("booking created with observer failure")
	}

	paymentID := constant.Empty
	if payment != nil {
		paymentID = payment.ID
	}

	res.FromModel(booking, paymentID, len(installments))

	return res, nil
}

func (s *serviceImpl) resolveCatalog(ctx context.Context, req dto.CreateBookingRequest) (catalog, error) {
	var resolved catalog

	product, err := s.products.GetProduct(ctx, req.ProductID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get product")

		return resolved, fmt.Errorf("failed to get product: %w", err)
	}

	if product.ID == constant.Empty {
		return resolved, failure.NotFound("product not found") // nolint:wrapcheck
	}

	host, err := s.hosts.Get(ctx, shared.FilterByID(product.HostID, hostModel.FieldID, hostModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get host")

		return resolved, fmt.Errorf("failed to get host: %w", err)
	}

	if host.ID == constant.Empty {
		return resolved, failure.NotFound("host not found") // nolint:wrapcheck
	}

	plan, err := s.products.GetPlan(ctx, product.ID, req.PlanID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get plan")

		return resolved, fmt.Errorf("failed to get plan: %w", err)
	}

	if plan.ID == constant.Empty {
		return resolved, failure.NotFound("plan not found") // nolint:wrapcheck
	}

	resolved.product = product
	resolved.host = host
	resolved.plan = plan
	resolved.timezone = req.Timezone

	if product.IsOneToOneSession() {
		if req.Session == nil {
			return resolved, failure.BadRequestFromString("session is required for one to one products") // nolint:wrapcheck
		}

		if req.Timezone == constant.Empty {
			req.Timezone = host.Timezone
			resolved.timezone = host.Timezone
		}

		resolved.start, resolved.end, err = req.SessionRange()
		if err != nil {
			return resolved, failure.BadRequestFromString(fmt.Sprintf("invalid session date: %v", err)) // nolint:wrapcheck
		}

		return resolved, nil
	}

	if req.DateID == constant.Empty {
		return resolved, failure.BadRequestFromString("dateId is required") // nolint:wrapcheck
	}

	date, err := s.products.GetDate(ctx, product.ID, req.DateID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get product date")

		return resolved, fmt.Errorf("failed to get product date: %w", err)
	}

	if date.ID == constant.Empty {
		return resolved, failure.NotFound("date not found") // nolint:wrapcheck
	}

	resolved.date = &date

	return resolved, nil
}

func (s *serviceImpl) buildPayment(booking model.Booking, paymentStrategy strategy.Strategy, req dto.CreateBookingRequest, createdBy string) paymentModel.Payment {
	b := paymentBuilder.NewPaymentBuilder(s.now).
		WithBooking(booking).
		WithStrategy(paymentStrategy).
		WithConversionRates(req.ConversionRates).
		WithCreatedBy(createdBy)

	amount := booking.Preview.Val.Total
	if booking.Preview.Val.InstallmentsProgramApplied {
		amount = booking.Preview.Val.Installments[0].Amount
	}

	b = b.WithAmount(amount)

	if req.PaymentReceipt != nil {
		b = b.WithReceipt(req.PaymentReceipt.FileName)
	}

	return b.Build()
}

// uploadReceipt stores the voucher under the payment's receipt key and returns that key.
func (s *serviceImpl) uploadReceipt(ctx context.Context, req dto.CreateBookingRequest, payment *paymentModel.Payment) (string, error) {
	if req.PaymentReceipt == nil || payment == nil || payment.PaymentReceipt == nil {
		return constant.Empty, nil
	}

	data, contentType, err := base64.Decode(req.PaymentReceipt.Data)
	if err != nil {
		return constant.Empty, failure.BadRequestFromString(fmt.Sprintf("invalid payment receipt: %v", err)) // nolint:wrapcheck
	}

	key := *payment.PaymentReceipt

	if _, err = s.storage.UploadObject(ctx, key, contentType, data); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to upload payment receipt")

		return constant.Empty, fmt.Errorf("failed to upload payment receipt: %w", err)
	}

	return key, nil
}

func (s *serviceImpl) discardReceipt(ctx context.Context, key string) {
	if key == constant.Empty {
		return
	}

	if err := s.storage.DeleteObject(context.WithoutCancel(ctx), key); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to delete orphaned payment receipt")
	}
}

func (s *serviceImpl) persist(ctx context.Context, tx *sqlx.Tx, booking model.Booking, payment *paymentModel.Payment, installments []paymentModel.Installment) error {
	if err := s.repo.InsertTx(ctx, tx, booking); err != nil {
		return fmt.Errorf("failed to insert booking: %w", err)
	}

	if payment != nil {
		if err := s.payments.InsertPaymentTx(ctx, tx, *payment); err != nil {
			return fmt.Errorf("failed to insert payment: %w", err)
		}
	}

	if err := s.payments.InsertInstallmentsTx(ctx, tx, installments); err != nil {
		return fmt.Errorf("failed to insert installments: %w", err)
	}

	if booking.IsTest {
		return nil
	}

	return s.billing.RegisterChargeTx(ctx, tx, booking.Billing.Val) //nolint:wrapcheck
}

// scopeToHost restricts any caller filter to the host's own bookings.
func scopeToHost(hostID string, filter gDto.FilterGroup) gDto.FilterGroup {
	hostFilter := gDto.Eq(model.TableName, model.FieldHostID, hostID)
	hostFilter.ArgName = "scope_host_id"

	if len(filter.Filters) == 0 {
		return gDto.And(hostFilter)
	}

	if filter.Operator == constant.Empty {
		filter.Operator = gDto.FilterGroupOperatorAnd
	}

	return gDto.And(hostFilter, filter)
}

// GetAll lists the host's bookings, served from cache when possible.
func (s *serviceImpl) GetAll(ctx context.Context, hostID string, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter = scopeToHost(hostID, filter)
	cacheKey := shared.BuildCacheKeyWithQuery(model.CacheKeyGetBookings, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, hostID string, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.count(ctx, req, scopeToHost(hostID, filter))
}

func (s *serviceImpl) count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	cacheKey := shared.BuildCacheKeyWithQuery(model.CacheKeyCount, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, hostID, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(model.CacheKeyGetBooking, hostID, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.repo.Get(ctx, gDto.And(
		gDto.Eq(model.TableName, model.FieldID, id),
		gDto.Eq(model.TableName, model.FieldHostID, hostID),
	))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}
