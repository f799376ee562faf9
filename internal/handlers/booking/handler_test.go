package booking_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	otelMocks "hostly/infras/otel/mocks"
	bookingMocks "hostly/internal/domains/booking/mocks"
	"hostly/internal/domains/booking/model/dto"
	"hostly/internal/handlers/booking"
	"hostly/shared/constant"
	gDto "hostly/shared/dto"
	"hostly/shared/failure"
)

const validBody = `{
	"customer": {"email": "ana@example.com", "name": "Ana"},
	"productId": "P1",
	"planId": "PL1",
	"dateId": "D1",
	"attendees": [{"email": "ana@example.com", "name": "Ana"}],
	"processorType": "manual"
}`

func newRouter(svc *bookingMocks.MockBookingService, hostID string) http.Handler {
	handler := booking.New(svc, otelMocks.NewOtel())

	router := chi.NewRouter()
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if hostID != constant.Empty {
				r = r.WithContext(context.WithValue(r.Context(), constant.ContextKeyHostID, hostID))
			}

			next.ServeHTTP(w, r)
		})
	})
	handler.Router(router)

	return router
}

func TestCreateBooking(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		setupMock func(svc *bookingMocks.MockBookingService)
		wantCode  int
	}{
		{
			name: "created",
			body: validBody,
			setupMock: func(svc *bookingMocks.MockBookingService) {
				svc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, req dto.CreateBookingRequest) (dto.CreateBookingResponse, error) {
						assert.Equal(t, "P1", req.ProductID)
						assert.Len(t, req.Attendees, 1)

						return dto.CreateBookingResponse{ID: "B1", Alias: "AB12CD34"}, nil
					})
			},
			wantCode: http.StatusCreated,
		},
		{
			name:      "malformed json",
			body:      `{"productId":`,
			setupMock: func(_ *bookingMocks.MockBookingService) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "no attendees",
			body:      `{"customer":{"email":"ana@example.com","name":"Ana"},"productId":"P1","planId":"PL1","attendees":[],"processorType":"manual"}`,
			setupMock: func(_ *bookingMocks.MockBookingService) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "product not found",
			body: validBody,
			setupMock: func(svc *bookingMocks.MockBookingService) {
				svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(dto.CreateBookingResponse{}, failure.NotFound("product not found"))
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := bookingMocks.NewMockBookingService(gomock.NewController(t))
			tt.setupMock(svc)

			rec := httptest.NewRecorder()
			newRouter(svc, constant.Empty).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestGetBookings(t *testing.T) {
	svc := bookingMocks.NewMockBookingService(gomock.NewController(t))

	svc.EXPECT().GetAll(gomock.Any(), "H1", gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error) {
			assert.Equal(t, 2, params.Page)
			assert.Equal(t, constant.DefaultValueLimit, params.Limit)
			require.Len(t, filter.Filters, 1)
			assert.Equal(t, gDto.Eq("bookings", "payment_status", "PAID"), filter.Filters[0])

			return dto.GetBookingsResponse{Bookings: []dto.BookingResponse{{ID: "B1"}}, TotalPage: 1, TotalData: 1}, nil
		})

	rec := httptest.NewRecorder()
	newRouter(svc, "H1").ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/bookings?page=2&payment_status=PAID", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data dto.GetBookingsResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "B1", body.Data.Bookings[0].ID)
}

func TestGetBookingsWithoutHost(t *testing.T) {
	svc := bookingMocks.NewMockBookingService(gomock.NewController(t))

	rec := httptest.NewRecorder()
	newRouter(svc, constant.Empty).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/bookings", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetBookingByID(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(svc *bookingMocks.MockBookingService)
		wantCode  int
	}{
		{
			name: "found",
			setupMock: func(svc *bookingMocks.MockBookingService) {
				svc.EXPECT().Get(gomock.Any(), "H1", "B1").Return(dto.BookingResponse{ID: "B1", HostID: "H1"}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name: "belongs to another host",
			setupMock: func(svc *bookingMocks.MockBookingService) {
				svc.EXPECT().Get(gomock.Any(), "H1", "B1").Return(dto.BookingResponse{}, failure.NotFound("booking not found"))
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := bookingMocks.NewMockBookingService(gomock.NewController(t))
			tt.setupMock(svc)

			rec := httptest.NewRecorder()
			newRouter(svc, "H1").ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/bookings/B1", nil))

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
