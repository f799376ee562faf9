package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hostly/config"
	"hostly/infras/otel/mocks"
	s3Mocks "hostly/infras/s3/mocks"
	billingMocks "hostly/internal/domains/billing/mocks"
	billingModel "hostly/internal/domains/billing/model"
	bookingMocks "hostly/internal/domains/booking/mocks"
	"hostly/internal/domains/booking/model"
	"hostly/internal/domains/booking/model/dto"
	"hostly/internal/domains/booking/service"
	hostMocks "hostly/internal/domains/host/mocks"
	hostModel "hostly/internal/domains/host/model"
	paymentMocks "hostly/internal/domains/payment/mocks"
	paymentModel "hostly/internal/domains/payment/model"
	"hostly/internal/domains/payment/strategy"
	productMocks "hostly/internal/domains/product/mocks"
	productModel "hostly/internal/domains/product/model"
	userMocks "hostly/internal/domains/user/mocks"
	userModel "hostly/internal/domains/user/model"
	userDto "hostly/internal/domains/user/model/dto"
	"hostly/internal/events"
	eventMocks "hostly/internal/events/mocks"
	cacheMocks "hostly/shared/cache/mocks"
	gDto "hostly/shared/dto"
	"hostly/shared/failure"
	gModel "hostly/shared/model"
	repoMocks "hostly/shared/repository/mocks"
)

var fixedNow = time.Date(2025, time.January, 20, 15, 30, 0, 0, time.UTC)

type fixture struct {
	svc        service.Booking
	repo       *bookingMocks.MockBooking
	identity   *userMocks.MockIdentity
	billing    *billingMocks.MockBilling
	products   *productMocks.MockProduct
	hosts      *hostMocks.MockHost
	payments   *paymentMocks.MockPayments
	transactor *repoMocks.MockTransactor
	storage    *s3Mocks.MockS3
	dispatcher *eventMocks.MockDispatcher
	cache      *cacheMocks.MockRedisCache
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Payment.Currency = "PEN"

	f := fixture{
		repo:       bookingMocks.NewMockBooking(ctrl),
		identity:   userMocks.NewMockIdentity(ctrl),
		billing:    billingMocks.NewMockBilling(ctrl),
		products:   productMocks.NewMockProduct(ctrl),
		hosts:      hostMocks.NewMockHost(ctrl),
		payments:   paymentMocks.NewMockPayments(ctrl),
		transactor: repoMocks.NewMockTransactor(ctrl),
		storage:    s3Mocks.NewMockS3(ctrl),
		dispatcher: eventMocks.NewMockDispatcher(ctrl),
		cache:      cacheMocks.NewMockRedisCache(ctrl),
	}

	f.svc = service.New(service.Dependencies{
		Repo:       f.repo,
		Identity:   f.identity,
		Billing:    f.billing,
		Strategies: strategy.NewSelector(cfg),
		Products:   f.products,
		Hosts:      f.hosts,
		Payments:   f.payments,
		Transactor: f.transactor,
		Storage:    f.storage,
		Dispatcher: f.dispatcher,
		Config:     cfg,
		Cache:      f.cache,
		Otel:       mocks.NewOtel(),
		Clock:      func() time.Time { return fixedNow },
	})

	return f
}

func newRequest() dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		Customer:      userDto.CustomerData{Email: "Ana@Example.com", Name: "Ana"},
		ProductID:     "P1",
		PlanID:        "PL1",
		DateID:        "D1",
		Attendees:     []dto.AttendeeRequest{{Email: "ana@example.com", Name: "Ana"}, {Email: "Luis@Example.com", Name: "Luis"}},
		ProcessorType: "manual",
		Installments:  true,
		PaymentReceipt: &dto.ReceiptRequest{
			FileName: "voucher.png",
			Data:     "data:image/png;base64,aGVsbG8=",
		},
	}
}

func product(free bool) productModel.Product {
	return productModel.Product{ID: "P1", HostID: "H1", Name: "Yoga", Type: productModel.TypeEvent, Free: free}
}

func host() hostModel.Host {
	return hostModel.Host{
		ID:          "H1",
		Email:       "host@example.com",
		Timezone:    "America/Lima",
		BillingPlan: gModel.NewJSON(&billingModel.BillingPlan{Name: "basic"}),
	}
}

func plan() productModel.Plan {
	return productModel.Plan{
		ID:                       "PL1",
		ProductID:                "P1",
		Price:                    50,
		Currency:                 "PEN",
		InstallmentsCount:        3,
		InstallmentsIntervalDays: 30,
	}
}

func date() productModel.Date {
	return productModel.Date{
		ID:        "D1",
		ProductID: "P1",
		StartDate: fixedNow.AddDate(0, 1, 0),
		EndDate:   fixedNow.AddDate(0, 1, 0).Add(2 * time.Hour),
	}
}

func customer() userModel.Customer {
	return userModel.Customer{ID: "C1", HostID: "H1", UserID: "U1", Email: "ana@example.com"}
}

func bookingBilling() billingModel.BookingBilling {
	return billingModel.BookingBilling{Subtotal: 10, InvoiceID: "INV1", Breakdown: []billingModel.BreakdownItem{}}
}

// expectCatalog sets up the lookups every successful request goes through.
func (f fixture) expectCatalog(p productModel.Product, h hostModel.Host) {
	f.identity.EXPECT().ValidateUserData(gomock.Any()).Return(nil)
	f.products.EXPECT().GetProduct(gomock.Any(), "P1").Return(p, nil)
	f.hosts.EXPECT().Get(gomock.Any(), gomock.Any()).Return(h, nil)
	f.products.EXPECT().GetPlan(gomock.Any(), "P1", "PL1").Return(plan(), nil)
	f.products.EXPECT().GetDate(gomock.Any(), "P1", "D1").Return(date(), nil)
	f.identity.EXPECT().PrepareUser(gomock.Any(), "H1", gomock.Any()).Return(customer(), nil)
}

func (f fixture) expectTransaction() {
	f.transactor.EXPECT().
		WithTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(tx *sqlx.Tx) error) error {
			return fn(nil)
		})
}

func TestCreate(t *testing.T) {
	receiptKey := "private/products/P1/payments/2025-01-20/voucher.jpeg"

	t.Run("manual booking with installments and receipt", func(t *testing.T) {
		f := newFixture(t)
		f.expectCatalog(product(false), host())

		f.billing.EXPECT().
			PrepareBilling(gomock.Any(), "H1", gomock.Any(), 100.0, gomock.Any()).
			Return(bookingBilling(), nil)
		f.storage.EXPECT().
			UploadObject(gomock.Any(), receiptKey, "image/png", []byte("hello")).
			Return("https://bucket/"+receiptKey, nil)
		f.expectTransaction()

		var inserted model.Booking

		f.repo.EXPECT().
			InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, booking model.Booking) error {
				inserted = booking

				return nil
			})
		f.payments.EXPECT().
			InsertPaymentTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, payment paymentModel.Payment) error {
				assert.Equal(t, 33.33, payment.Amount)
				assert.Equal(t, paymentModel.MethodManualTransfer, payment.PaymentMethod)
				assert.Equal(t, paymentModel.StatusPending, payment.PaymentStatus)
				require.NotNil(t, payment.PaymentReceipt)
				assert.Equal(t, receiptKey, *payment.PaymentReceipt)

				return nil
			})
		f.payments.EXPECT().
			InsertInstallmentsTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, installments []paymentModel.Installment) error {
				require.Len(t, installments, 3)
				assert.Equal(t, 33.34, installments[2].Amount)
				assert.NotNil(t, installments[0].PaymentID)

				return nil
			})
		f.billing.EXPECT().RegisterChargeTx(gomock.Any(), gomock.Any(), bookingBilling()).Return(nil)
		f.dispatcher.EXPECT().
			Notify(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, event events.Event) []events.Result {
				assert.Equal(t, events.BookingCreated, event.Name)
				assert.NotNil(t, event.Payment)
				assert.Len(t, event.Installments, 3)

				return []events.Result{
					{Observer: "notification", Priority: 100},
					{Observer: "search-index", Priority: 50, Err: errors.New("leader not available")},
				}
			})

		res, err := f.svc.Create(context.Background(), newRequest())

		require.NoError(t, err)
		assert.Equal(t, inserted.ID, res.ID)
		assert.Equal(t, model.StatusPending, res.BookingStatus)
		assert.Equal(t, model.PaymentStatusPending, res.PaymentStatus)
		assert.Equal(t, model.PaymentModeInstallments, res.PaymentMode)
		assert.Equal(t, 3, res.Installments)
		assert.NotEmpty(t, res.PaymentID)
		assert.Equal(t, 100.0, res.Preview.Total)
		assert.True(t, res.Preview.InstallmentsProgramApplied)

		assert.Equal(t, "ana@example.com", inserted.Email)
		assert.Equal(t, "INV1", inserted.InvoiceID)
		assert.Equal(t, "U1", inserted.CreatedBy)
		assert.False(t, inserted.IsTest)
		require.NotNil(t, inserted.DateID)
		assert.Equal(t, "D1", *inserted.DateID)
	})

	t.Run("free product is confirmed without payment", func(t *testing.T) {
		f := newFixture(t)
		f.expectCatalog(product(true), host())

		req := newRequest()
		req.PaymentReceipt = nil

		f.billing.EXPECT().
			PrepareBilling(gomock.Any(), "H1", gomock.Any(), 0.0, gomock.Any()).
			Return(bookingBilling(), nil)
		f.expectTransaction()
		f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.payments.EXPECT().InsertInstallmentsTx(gomock.Any(), gomock.Any(), gomock.Len(0)).Return(nil)
		f.billing.EXPECT().RegisterChargeTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.dispatcher.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil)

		res, err := f.svc.Create(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, model.StatusConfirmed, res.BookingStatus)
		assert.Equal(t, model.PaymentStatusPaid, res.PaymentStatus)
		assert.Empty(t, res.PaymentID)
		assert.Zero(t, res.Installments)
		assert.Zero(t, res.Preview.Total)
	})

	t.Run("host booking its own product is not charged", func(t *testing.T) {
		f := newFixture(t)
		f.expectCatalog(product(false), host())

		req := newRequest()
		req.Customer.Email = "HOST@example.com"
		req.PaymentReceipt = nil
		req.Installments = false

		f.billing.EXPECT().PrepareBilling(gomock.Any(), "H1", gomock.Any(), 100.0, gomock.Any()).Return(bookingBilling(), nil)
		f.expectTransaction()
		f.repo.EXPECT().
			InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, booking model.Booking) error {
				assert.True(t, booking.IsTest)

				return nil
			})
		f.payments.EXPECT().InsertPaymentTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.payments.EXPECT().InsertInstallmentsTx(gomock.Any(), gomock.Any(), gomock.Len(0)).Return(nil)
		f.dispatcher.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil)

		res, err := f.svc.Create(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, model.PaymentModeUpfront, res.PaymentMode)
	})

	t.Run("observers run after the transaction commits", func(t *testing.T) {
		f := newFixture(t)
		f.expectCatalog(product(false), host())

		req := newRequest()
		req.PaymentReceipt = nil

		committed := false

		f.billing.EXPECT().PrepareBilling(gomock.Any(), "H1", gomock.Any(), gomock.Any(), gomock.Any()).Return(bookingBilling(), nil)
		f.transactor.EXPECT().
			WithTransaction(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fn func(tx *sqlx.Tx) error) error {
				if err := fn(nil); err != nil {
					return err
				}

				committed = true

				return nil
			})
		f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.payments.EXPECT().InsertPaymentTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.payments.EXPECT().InsertInstallmentsTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.billing.EXPECT().
			RegisterChargeTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, _ billingModel.BookingBilling) error {
				assert.False(t, committed)

				return nil
			})
		f.dispatcher.EXPECT().
			Notify(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, event events.Event) []events.Result {
				assert.True(t, committed)
				assert.Equal(t, "H1", event.Host.ID)

				return nil
			})

		_, err := f.svc.Create(context.Background(), req)

		require.NoError(t, err)
	})

	t.Run("failed transaction removes the uploaded receipt", func(t *testing.T) {
		f := newFixture(t)
		f.expectCatalog(product(false), host())

		f.billing.EXPECT().PrepareBilling(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(bookingBilling(), nil)
		f.storage.EXPECT().UploadObject(gomock.Any(), receiptKey, gomock.Any(), gomock.Any()).Return("", nil)
		f.expectTransaction()
		f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.payments.EXPECT().InsertPaymentTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.payments.EXPECT().InsertInstallmentsTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.billing.EXPECT().RegisterChargeTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("deadlock detected"))
		f.storage.EXPECT().DeleteObject(gomock.Any(), receiptKey).Return(nil)

		_, err := f.svc.Create(context.Background(), newRequest())

		require.Error(t, err)
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})

	t.Run("invalid receipt is rejected before persisting", func(t *testing.T) {
		f := newFixture(t)
		f.expectCatalog(product(false), host())

		req := newRequest()
		req.PaymentReceipt.Data = "not a data uri"

		f.billing.EXPECT().PrepareBilling(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(bookingBilling(), nil)

		_, err := f.svc.Create(context.Background(), req)

		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestCreateRejections(t *testing.T) {
	tests := []struct {
		name      string
		req       func() dto.CreateBookingRequest
		setupMock func(f fixture)
		wantCode  int
	}{
		{
			name: "missing email",
			req: func() dto.CreateBookingRequest {
				req := newRequest()
				req.Customer.Email = " "

				return req
			},
			setupMock: func(f fixture) {
				f.identity.EXPECT().ValidateUserData(gomock.Any()).Return(failure.BadRequestFromString("email is required"))
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "unsupported processor",
			req: func() dto.CreateBookingRequest {
				req := newRequest()
				req.ProcessorType = "STRIPE"

				return req
			},
			setupMock: func(f fixture) {
				f.identity.EXPECT().ValidateUserData(gomock.Any()).Return(nil)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "unknown product",
			req:  newRequest,
			setupMock: func(f fixture) {
				f.identity.EXPECT().ValidateUserData(gomock.Any()).Return(nil)
				f.products.EXPECT().GetProduct(gomock.Any(), "P1").Return(productModel.Product{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "unknown host",
			req:  newRequest,
			setupMock: func(f fixture) {
				f.identity.EXPECT().ValidateUserData(gomock.Any()).Return(nil)
				f.products.EXPECT().GetProduct(gomock.Any(), "P1").Return(product(false), nil)
				f.hosts.EXPECT().Get(gomock.Any(), gomock.Any()).Return(hostModel.Host{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "unknown plan",
			req:  newRequest,
			setupMock: func(f fixture) {
				f.identity.EXPECT().ValidateUserData(gomock.Any()).Return(nil)
				f.products.EXPECT().GetProduct(gomock.Any(), "P1").Return(product(false), nil)
				f.hosts.EXPECT().Get(gomock.Any(), gomock.Any()).Return(host(), nil)
				f.products.EXPECT().GetPlan(gomock.Any(), "P1", "PL1").Return(productModel.Plan{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "unknown date",
			req:  newRequest,
			setupMock: func(f fixture) {
				f.identity.EXPECT().ValidateUserData(gomock.Any()).Return(nil)
				f.products.EXPECT().GetProduct(gomock.Any(), "P1").Return(product(false), nil)
				f.hosts.EXPECT().Get(gomock.Any(), gomock.Any()).Return(host(), nil)
				f.products.EXPECT().GetPlan(gomock.Any(), "P1", "PL1").Return(plan(), nil)
				f.products.EXPECT().GetDate(gomock.Any(), "P1", "D1").Return(productModel.Date{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "one to one session without session",
			req:  newRequest,
			setupMock: func(f fixture) {
				session := product(false)
				session.Type = productModel.TypeOneToOneSession

				f.identity.EXPECT().ValidateUserData(gomock.Any()).Return(nil)
				f.products.EXPECT().GetProduct(gomock.Any(), "P1").Return(session, nil)
				f.hosts.EXPECT().Get(gomock.Any(), gomock.Any()).Return(host(), nil)
				f.products.EXPECT().GetPlan(gomock.Any(), "P1", "PL1").Return(plan(), nil)
			},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			_, err := f.svc.Create(context.Background(), tt.req())

			require.Error(t, err)
			assert.Equal(t, tt.wantCode, failure.GetCode(err))
		})
	}
}

func TestCreateOneToOneSession(t *testing.T) {
	f := newFixture(t)

	session := product(false)
	session.Type = productModel.TypeOneToOneSession

	req := newRequest()
	req.DateID = ""
	req.PaymentReceipt = nil
	req.Installments = false
	req.Session = &dto.SessionRequest{StartDate: "2025-02-01T10:00", DurationMinutes: 60}

	f.identity.EXPECT().ValidateUserData(gomock.Any()).Return(nil)
	f.products.EXPECT().GetProduct(gomock.Any(), "P1").Return(session, nil)
	f.hosts.EXPECT().Get(gomock.Any(), gomock.Any()).Return(host(), nil)
	f.products.EXPECT().GetPlan(gomock.Any(), "P1", "PL1").Return(plan(), nil)
	f.identity.EXPECT().PrepareUser(gomock.Any(), "H1", gomock.Any()).Return(customer(), nil)
	f.billing.EXPECT().PrepareBilling(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(bookingBilling(), nil)
	f.expectTransaction()
	f.repo.EXPECT().
		InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *sqlx.Tx, booking model.Booking) error {
			assert.Nil(t, booking.DateID)
			require.NotNil(t, booking.StartDate)
			require.NotNil(t, booking.EndDate)
			assert.Equal(t, time.Date(2025, time.February, 1, 15, 0, 0, 0, time.UTC), *booking.StartDate)
			assert.Equal(t, time.Hour, booking.EndDate.Sub(*booking.StartDate))
			assert.Equal(t, "America/Lima", booking.Timezone)

			return nil
		})
	f.payments.EXPECT().InsertPaymentTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.payments.EXPECT().InsertInstallmentsTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.billing.EXPECT().RegisterChargeTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.dispatcher.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil)

	_, err := f.svc.Create(context.Background(), req)

	require.NoError(t, err)
}

func TestGet(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(f fixture)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "cache hit",
			setupMock: func(f fixture) {
				f.cache.EXPECT().Get(gomock.Any(), "booking:get:H1:B1", gomock.Any()).Return(nil)
			},
		},
		{
			name: "cache miss reads the repository",
			setupMock: func(f fixture) {
				f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{ID: "B1", HostID: "H1"}, nil)
				f.cache.EXPECT().Save(gomock.Any(), "booking:get:H1:B1", gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
		},
		{
			name: "not found",
			setupMock: func(f fixture) {
				f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "repository failure",
			setupMock: func(f fixture) {
				f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, errors.New("connection reset"))
			},
			wantErr:  true,
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			_, err := f.svc.Get(context.Background(), "H1", "B1")

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGetAll(t *testing.T) {
	params := gDto.QueryParams{Page: 1, Limit: 10}

	t.Run("cache miss scopes to the host", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss")).Times(2)
		f.repo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (int, error) {
				where, args := filter.GetWhereClause()
				assert.Contains(t, where, "bookings.host_id = :scope_host_id")
				assert.Equal(t, "H1", args["scope_host_id"])

				return 12, nil
			})
		f.repo.EXPECT().GetAll(gomock.Any(), params, gomock.Any()).Return([]model.Booking{{ID: "B1"}, {ID: "B2"}}, nil)
		f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		res, err := f.svc.GetAll(context.Background(), "H1", params, gDto.FilterGroup{})

		require.NoError(t, err)
		assert.Len(t, res.Bookings, 2)
		assert.Equal(t, 12, res.TotalData)
		assert.Equal(t, 2, res.TotalPage)
	})

	t.Run("count failure", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss")).Times(2)
		f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, errors.New("connection reset"))

		_, err := f.svc.GetAll(context.Background(), "H1", params, gDto.FilterGroup{})

		assert.Error(t, err)
	})
}
