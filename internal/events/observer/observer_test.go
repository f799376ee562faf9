package observer_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hostly/config"
	"hostly/infras/kafka"
	kafkaMocks "hostly/infras/kafka/mocks"
	otelMocks "hostly/infras/otel/mocks"
	rabbitMocks "hostly/infras/rabbitmq/mocks"
	twilioMocks "hostly/infras/twilio/mocks"
	billingModel "hostly/internal/domains/billing/model"
	bookingModel "hostly/internal/domains/booking/model"
	hostModel "hostly/internal/domains/host/model"
	productModel "hostly/internal/domains/product/model"
	"hostly/internal/events"
	"hostly/internal/events/observer"
	cacheMocks "hostly/shared/cache/mocks"
	gModel "hostly/shared/model"
)

func newEvent(isTest bool, phone *string) events.Event {
	return events.Event{
		Name: events.BookingCreated,
		Booking: bookingModel.Booking{
			ID:             "B1",
			Alias:          "AB12CD34",
			Email:          "ana@example.com",
			Currency:       "PEN",
			PaymentStatus:  bookingModel.PaymentStatusPaid,
			TotalAttendees: 2,
			IsTest:         isTest,
			Preview:        gModel.NewJSON(bookingModel.Preview{Total: 120}),
		},
		Host:    hostModel.Host{ID: "H1", Email: "host@example.com", PhoneNumber: phone},
		Product: productModel.Product{ID: "P1", Name: "Yoga"},
	}
}

func TestPriorities(t *testing.T) {
	ctrl := gomock.NewController(t)

	notification := observer.NewNotification(rabbitMocks.NewMockPublisher(ctrl))
	search := observer.NewSearch(kafkaMocks.NewMockClient(ctrl), &config.Config{})
	sms := observer.NewSMS(twilioMocks.NewMockSMS(ctrl))
	cache := observer.NewCache(cacheMocks.NewMockRedisCache(ctrl))

	assert.Equal(t, 100, notification.Priority())
	assert.Equal(t, 50, search.Priority())
	assert.Equal(t, 10, sms.Priority())
	assert.Equal(t, 1, cache.Priority())
}

func TestNotificationObserver(t *testing.T) {
	ctrl := gomock.NewController(t)
	publisher := rabbitMocks.NewMockPublisher(ctrl)
	obs := observer.NewNotification(publisher)

	tests := []struct {
		name      string
		event     events.Event
		setupMock func()
		wantErr   bool
	}{
		{
			name:  "customer and host are notified",
			event: newEvent(false, nil),
			setupMock: func() {
				publisher.EXPECT().
					PublishJSON(gomock.Any(), events.BookingCreated, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, value any) error {
						n, ok := value.(observer.Notification)
						assert.True(t, ok)
						assert.Equal(t, "ana@example.com", n.Recipient)
						assert.Equal(t, observer.TemplateBookingCustomer, n.Template)

						return nil
					})
				publisher.EXPECT().
					PublishJSON(gomock.Any(), events.BookingCreated, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, value any) error {
						n, ok := value.(observer.Notification)
						assert.True(t, ok)
						assert.Equal(t, "host@example.com", n.Recipient)

						return nil
					})
			},
		},
		{
			name:  "test bookings skip the host",
			event: newEvent(true, nil),
			setupMock: func() {
				publisher.EXPECT().PublishJSON(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(1)
			},
		},
		{
			name:  "broker failure",
			event: newEvent(false, nil),
			setupMock: func() {
				publisher.EXPECT().PublishJSON(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("channel closed"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := obs.Handle(context.Background(), tt.event)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSearchObserver(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := kafkaMocks.NewMockClient(ctrl)

	cfg := &config.Config{}
	cfg.Kafka.Topics.BookingIndex = "bookings.index"

	obs := observer.NewSearch(client, cfg)

	client.EXPECT().
		SendMessages(gomock.Any(), "bookings.index", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, messages ...kafka.Message) error {
			assert.Len(t, messages, 1)
			assert.Equal(t, "B1", messages[0].Key)

			return nil
		})

	assert.NoError(t, obs.Handle(context.Background(), newEvent(false, nil)))

	client.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("leader not available"))

	assert.Error(t, obs.Handle(context.Background(), newEvent(false, nil)))
}

func TestSMSObserver(t *testing.T) {
	ctrl := gomock.NewController(t)
	sms := twilioMocks.NewMockSMS(ctrl)
	obs := observer.NewSMS(sms)

	phone := "+51999888777"
	empty := ""

	tests := []struct {
		name      string
		event     events.Event
		setupMock func()
		wantErr   bool
	}{
		{
			name:  "host is alerted",
			event: newEvent(false, &phone),
			setupMock: func() {
				sms.EXPECT().Send(gomock.Any(), phone, gomock.Any()).Return("SM1", nil)
			},
		},
		{name: "test booking is skipped", event: newEvent(true, &phone), setupMock: func() {}},
		{name: "host without phone is skipped", event: newEvent(false, nil), setupMock: func() {}},
		{name: "host with empty phone is skipped", event: newEvent(false, &empty), setupMock: func() {}},
		{
			name:  "provider failure",
			event: newEvent(false, &phone),
			setupMock: func() {
				sms.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("invalid number"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := obs.Handle(context.Background(), tt.event)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestHostAlert(t *testing.T) {
	assert.Equal(t,
		"New booking AB12CD34 for Yoga: 2 attendee(s), 120.00 PEN, payment PAID",
		observer.HostAlert(newEvent(false, nil)),
	)
}

func TestCacheObserver(t *testing.T) {
	ctrl := gomock.NewController(t)
	redisCache := cacheMocks.NewMockRedisCache(ctrl)
	obs := observer.NewCache(redisCache)

	redisCache.EXPECT().Clear(gomock.Any(), bookingModel.CacheKeyGetBookings+"*").Return(nil)
	redisCache.EXPECT().Clear(gomock.Any(), bookingModel.CacheKeyCount+"*").Return(nil)
	redisCache.EXPECT().Clear(gomock.Any(), billingModel.CacheKeyCurrentInvoice+":H1*").Return(nil)

	assert.NoError(t, obs.Handle(context.Background(), newEvent(false, nil)))

	redisCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

	assert.Error(t, obs.Handle(context.Background(), newEvent(false, nil)))
}

func TestNewDispatcher(t *testing.T) {
	ctrl := gomock.NewController(t)

	dispatcher := observer.NewDispatcher(
		&config.Config{},
		otelMocks.NewOtel(),
		rabbitMocks.NewMockPublisher(ctrl),
		kafkaMocks.NewMockClient(ctrl),
		twilioMocks.NewMockSMS(ctrl),
		cacheMocks.NewMockRedisCache(ctrl),
	)

	names := []string{}
	for _, o := range dispatcher.Observers() {
		names = append(names, o.Name())
	}

	assert.Equal(t, []string{"notification", "search-index", "host-sms", "cache-invalidation"}, names)
}
