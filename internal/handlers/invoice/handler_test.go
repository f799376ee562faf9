package invoice_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	otelMocks "hostly/infras/otel/mocks"
	billingMocks "hostly/internal/domains/billing/mocks"
	"hostly/internal/domains/billing/model/dto"
	"hostly/internal/handlers/invoice"
	"hostly/shared/constant"
	"hostly/shared/failure"
)

func TestGetCurrentInvoice(t *testing.T) {
	tests := []struct {
		name      string
		hostID    string
		setupMock func(svc *billingMocks.MockBilling)
		wantCode  int
		wantBody  string
	}{
		{
			name:   "open invoice",
			hostID: "H1",
			setupMock: func(svc *billingMocks.MockBilling) {
				svc.EXPECT().GetCurrentInvoice(gomock.Any(), "H1").Return(dto.InvoiceResponse{ID: "INV1", HostID: "H1", Status: "IN_PROGRESS"}, nil)
			},
			wantCode: http.StatusOK,
			wantBody: `"id":"INV1"`,
		},
		{
			name:      "no host in token",
			setupMock: func(_ *billingMocks.MockBilling) {},
			wantCode:  http.StatusUnauthorized,
		},
		{
			name:   "contended invoice",
			hostID: "H1",
			setupMock: func(svc *billingMocks.MockBilling) {
				svc.EXPECT().GetCurrentInvoice(gomock.Any(), "H1").Return(dto.InvoiceResponse{}, failure.Conflict("invoice is being opened, retry"))
			},
			wantCode: http.StatusConflict,
		},
		{
			name:   "store failure",
			hostID: "H1",
			setupMock: func(svc *billingMocks.MockBilling) {
				svc.EXPECT().GetCurrentInvoice(gomock.Any(), "H1").Return(dto.InvoiceResponse{}, errors.New("connection refused"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := billingMocks.NewMockBilling(gomock.NewController(t))
			tt.setupMock(svc)

			handler := invoice.New(svc, otelMocks.NewOtel())
			router := chi.NewRouter()
			handler.Router(router)

			req := httptest.NewRequest(http.MethodGet, "/invoices/current", nil)
			if tt.hostID != constant.Empty {
				req = req.WithContext(context.WithValue(req.Context(), constant.ContextKeyHostID, tt.hostID))
			}

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}
