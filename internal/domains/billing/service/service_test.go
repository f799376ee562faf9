package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hostly/config"
	"hostly/infras/otel/mocks"
	billingMocks "hostly/internal/domains/billing/mocks"
	"hostly/internal/domains/billing/model"
	"hostly/internal/domains/billing/service"
	cacheMocks "hostly/shared/cache/mocks"
	"hostly/shared/failure"
	gModel "hostly/shared/model"
	"hostly/shared/money"
)

var fixedNow = time.Date(2025, time.January, 20, 15, 30, 0, 0, time.UTC)

type paidCommission bool

func (p paidCommission) IsCommissionPaid() bool { return bool(p) }

func newService(t *testing.T) (service.Billing, *billingMocks.MockBillings, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockRepo := billingMocks.NewMockBillings(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Billing.InvoiceRetries = 3

	svc := service.NewWithClock(mockRepo, cfg, mockCache, mocks.NewOtel(), func() time.Time { return fixedNow })

	return svc, mockRepo, mockCache
}

func commissionPlan() *model.BillingPlan {
	return &model.BillingPlan{
		Name:            "basic",
		CommissionPayer: model.CommissionPayerHost,
		Breakdown: []model.BillingRule{
			{Key: model.RulePercentageCommission, Type: money.AdjustmentPercentage, Amount: 10},
			{Key: model.RuleFixedCommission, Type: money.AdjustmentFixed, Amount: 2},
		},
	}
}

func TestCalculateBreakdown(t *testing.T) {
	tests := []struct {
		name         string
		plan         *model.BillingPlan
		total        float64
		wantKeys     []string
		wantSubtotal float64
	}{
		{
			name:         "paid booking applies both rules",
			plan:         commissionPlan(),
			total:        200,
			wantKeys:     []string{model.RulePercentageCommission, model.RuleFixedCommission},
			wantSubtotal: 22,
		},
		{
			name:         "free booking skips fixed commission",
			plan:         commissionPlan(),
			total:        0,
			wantKeys:     []string{model.RulePercentageCommission},
			wantSubtotal: 0,
		},
		{
			name:         "no plan",
			plan:         nil,
			total:        200,
			wantKeys:     []string{},
			wantSubtotal: 0,
		},
		{
			name: "unknown rules are ignored",
			plan: &model.BillingPlan{Breakdown: []model.BillingRule{
				{Key: "PLAN_SETUP_FEE", Type: money.AdjustmentFixed, Amount: 5},
			}},
			total:        200,
			wantKeys:     []string{},
			wantSubtotal: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			breakdown, subtotal := service.CalculateBreakdown(tt.plan, tt.total)

			keys := []string{}
			for _, item := range breakdown {
				keys = append(keys, item.Key)
			}

			assert.Equal(t, tt.wantKeys, keys)
			assert.Equal(t, tt.wantSubtotal, subtotal)
		})
	}
}

func TestCalculateBreakdown_ZeroTotal(t *testing.T) {
	breakdown, subtotal := service.CalculateBreakdown(commissionPlan(), 0)

	require.Len(t, breakdown, 1)
	assert.Equal(t, model.RulePercentageCommission, breakdown[0].Key)
	assert.Equal(t, float64(10), breakdown[0].Amount)
	assert.Equal(t, float64(0), breakdown[0].CalculatedAmount)
	assert.Equal(t, float64(0), subtotal)
}

func TestNewInvoice(t *testing.T) {
	invoice := service.NewInvoice("H1", fixedNow)

	assert.Equal(t, "H1", invoice.HostID)
	assert.Equal(t, model.InvoiceStatusInProgress, invoice.Status)
	assert.Equal(t, fixedNow, invoice.StartBillingDate)
	assert.Equal(t, time.Date(2025, time.January, 31, 23, 59, 59, 999000000, time.UTC), invoice.ClosingBillingDate)
	assert.Len(t, invoice.ID, 12)
	assert.Empty(t, invoice.Breakdown.Val)
}

func TestBillingService_PrepareInvoice(t *testing.T) {
	svc, mockRepo, mockCache := newService(t)

	existing := model.Invoice{
		ID:                 "202501000001",
		HostID:             "H1",
		Status:             model.InvoiceStatusInProgress,
		ClosingBillingDate: time.Date(2025, time.January, 31, 23, 59, 59, 0, time.UTC),
	}
	expired := model.Invoice{
		ID:                 "202412000001",
		HostID:             "H1",
		Status:             model.InvoiceStatusInProgress,
		ClosingBillingDate: time.Date(2024, time.December, 31, 23, 59, 59, 0, time.UTC),
	}
	uniqueViolation := &pq.Error{Code: "23505"}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  int
		wantID    string
	}{
		{
			name: "reuses open invoice",
			setupMock: func() {
				mockRepo.EXPECT().
					GetHostInvoices(gomock.Any(), "H1", []string{model.InvoiceStatusInProgress}).
					Return([]model.Invoice{existing}, nil)
			},
			wantID: existing.ID,
		},
		{
			name: "opens a new invoice",
			setupMock: func() {
				mockRepo.EXPECT().
					GetHostInvoices(gomock.Any(), "H1", gomock.Any()).
					Return(nil, nil)

				mockRepo.EXPECT().
					CreateInvoice(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, invoice model.Invoice) error {
						assert.Equal(t, model.InvoiceStatusInProgress, invoice.Status)

						return nil
					})
			},
		},
		{
			name: "expired invoice is closed and a new period opens",
			setupMock: func() {
				gomock.InOrder(
					mockRepo.EXPECT().GetHostInvoices(gomock.Any(), "H1", gomock.Any()).Return([]model.Invoice{expired}, nil),
					mockRepo.EXPECT().
						UpdateInvoiceStatus(gomock.Any(), expired.ID, model.InvoiceStatusInProgress, model.InvoiceStatusPendingPayment, gomock.Any()).
						Return(nil),
					mockCache.EXPECT().Clear(gomock.Any(), "invoice:current:H1*").Return(nil),
					mockRepo.EXPECT().
						CreateInvoice(gomock.Any(), gomock.Any()).
						DoAndReturn(func(_ context.Context, invoice model.Invoice) error {
							assert.Equal(t, fixedNow, invoice.StartBillingDate)
							assert.True(t, invoice.ClosingBillingDate.After(fixedNow))

							return nil
						}),
				)
			},
		},
		{
			name: "expired invoice that cannot be closed",
			setupMock: func() {
				mockRepo.EXPECT().GetHostInvoices(gomock.Any(), "H1", gomock.Any()).Return([]model.Invoice{expired}, nil)
				mockRepo.EXPECT().
					UpdateInvoiceStatus(gomock.Any(), expired.ID, gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr:  true,
			wantCode: http.StatusInternalServerError,
		},
		{
			name: "concurrent opener wins",
			setupMock: func() {
				gomock.InOrder(
					mockRepo.EXPECT().GetHostInvoices(gomock.Any(), "H1", gomock.Any()).Return(nil, nil),
					mockRepo.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).Return(uniqueViolation),
					mockRepo.EXPECT().GetHostInvoices(gomock.Any(), "H1", gomock.Any()).Return([]model.Invoice{existing}, nil),
				)
			},
			wantID: existing.ID,
		},
		{
			name: "retries exhausted",
			setupMock: func() {
				mockRepo.EXPECT().GetHostInvoices(gomock.Any(), "H1", gomock.Any()).Return(nil, nil).Times(3)
				mockRepo.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).Return(uniqueViolation).Times(3)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "insert failure",
			setupMock: func() {
				mockRepo.EXPECT().GetHostInvoices(gomock.Any(), "H1", gomock.Any()).Return(nil, nil)
				mockRepo.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			wantErr:  true,
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			invoice, err := svc.PrepareInvoice(context.Background(), "H1")

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.NotEmpty(t, invoice.ID)
			assert.NotEqual(t, expired.ID, invoice.ID)

			if tt.wantID != "" {
				assert.Equal(t, tt.wantID, invoice.ID)
			}
		})
	}
}

func TestBillingService_PrepareBilling(t *testing.T) {
	svc, mockRepo, _ := newService(t)

	mockRepo.EXPECT().
		GetHostInvoices(gomock.Any(), "H1", gomock.Any()).
		Return([]model.Invoice{{ID: "INV1", HostID: "H1", Status: model.InvoiceStatusInProgress, ClosingBillingDate: fixedNow.AddDate(0, 0, 11)}}, nil).
		Times(2)

	billing, err := svc.PrepareBilling(context.Background(), "H1", commissionPlan(), 200, paidCommission(true))
	require.NoError(t, err)

	assert.Equal(t, "INV1", billing.InvoiceID)
	assert.Equal(t, float64(22), billing.Subtotal)
	assert.Equal(t, model.CommissionPayerHost, billing.CommissionPayer)
	assert.True(t, billing.CommissionPaid)
	assert.Len(t, billing.Breakdown, 2)

	billing, err = svc.PrepareBilling(context.Background(), "H1", nil, 200, paidCommission(false))
	require.NoError(t, err)

	assert.Empty(t, billing.Breakdown)
	assert.Equal(t, float64(0), billing.Subtotal)
	assert.False(t, billing.CommissionPaid)
}

func TestBillingService_RegisterChargeTx(t *testing.T) {
	svc, mockRepo, _ := newService(t)

	invoice := model.Invoice{
		ID:           "INV1",
		HostID:       "H1",
		Status:       model.InvoiceStatusInProgress,
		Breakdown:    gModel.NewJSON([]model.BreakdownItem{{Key: model.RulePercentageCommission, CalculatedAmount: 5}}),
		Subtotal:     5,
		BillingTotal: 5,
		Total:        5,
	}

	billing := model.BookingBilling{
		Subtotal:       22,
		InvoiceID:      "INV1",
		CommissionPaid: true,
		Breakdown: []model.BreakdownItem{
			{Key: model.RulePercentageCommission, CalculatedAmount: 20},
			{Key: model.RuleFixedCommission, CalculatedAmount: 2},
		},
	}

	t.Run("applies charge", func(t *testing.T) {
		mockRepo.EXPECT().GetInvoiceForUpdateTx(gomock.Any(), gomock.Any(), "INV1").Return(invoice, nil)
		mockRepo.EXPECT().
			UpdateInvoiceTx(gomock.Any(), gomock.Any(), "INV1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, _ string, fields map[string]any) error {
				assert.Equal(t, float64(27), fields[model.FieldBillingTotal])
				assert.Equal(t, float64(22), fields[model.FieldPaidCommissions])
				assert.Equal(t, float64(5), fields[model.FieldTotal])

				breakdown, ok := fields[model.FieldBreakdown].(gModel.JSON[[]model.BreakdownItem])
				require.True(t, ok)
				require.Len(t, breakdown.Val, 2)
				assert.Equal(t, float64(25), breakdown.Val[0].CalculatedAmount)

				return nil
			})

		// no cache calls: invalidation happens after commit
		assert.NoError(t, svc.RegisterChargeTx(context.Background(), nil, billing))
	})

	t.Run("closed invoice is not charged", func(t *testing.T) {
		closed := invoice
		closed.Status = model.InvoiceStatusPendingPayment

		mockRepo.EXPECT().GetInvoiceForUpdateTx(gomock.Any(), gomock.Any(), "INV1").Return(closed, nil)

		err := svc.RegisterChargeTx(context.Background(), nil, billing)
		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("invoice missing", func(t *testing.T) {
		mockRepo.EXPECT().GetInvoiceForUpdateTx(gomock.Any(), gomock.Any(), "INV1").Return(model.Invoice{}, nil)

		err := svc.RegisterChargeTx(context.Background(), nil, billing)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestBillingService_GetCurrentInvoice(t *testing.T) {
	svc, mockRepo, mockCache := newService(t)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantID    string
	}{
		{
			name: "cache hit",
			setupMock: func() {
				mockCache.EXPECT().Get(gomock.Any(), "invoice:current:H1", gomock.Any()).Return(nil)
			},
		},
		{
			name: "cache miss reads open invoice",
			setupMock: func() {
				mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				mockRepo.EXPECT().GetHostInvoices(gomock.Any(), "H1", gomock.Any()).Return([]model.Invoice{{ID: "INV1"}}, nil)
				mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
			wantID: "INV1",
		},
		{
			name: "no open invoice",
			setupMock: func() {
				mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				mockRepo.EXPECT().GetHostInvoices(gomock.Any(), "H1", gomock.Any()).Return(nil, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.GetCurrentInvoice(context.Background(), "H1")

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantID, res.ID)
		})
	}
}

func TestBillingService_CloseExpiredInvoices(t *testing.T) {
	svc, mockRepo, mockCache := newService(t)

	expired := []model.Invoice{{ID: "INV1", HostID: "H1"}, {ID: "INV2", HostID: "H2"}, {ID: "INV3", HostID: "H3"}}

	mockRepo.EXPECT().
		GetExpiredInvoices(gomock.Any(), model.InvoiceStatusInProgress, fixedNow).
		Return(expired, nil)
	mockRepo.EXPECT().
		UpdateInvoiceStatus(gomock.Any(), "INV1", model.InvoiceStatusInProgress, model.InvoiceStatusPendingPayment, gomock.Any()).
		Return(nil)
	mockRepo.EXPECT().
		UpdateInvoiceStatus(gomock.Any(), "INV2", gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("database error"))
	mockRepo.EXPECT().
		UpdateInvoiceStatus(gomock.Any(), "INV3", gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	closed, err := svc.CloseExpiredInvoices(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 2, closed)
}
