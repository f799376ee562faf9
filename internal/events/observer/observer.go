// Package observer holds the side effects that follow a booking: notifications,
// search indexing, host alerts and cache invalidation.
package observer

import (
	"hostly/config"
	"hostly/infras/kafka"
	"hostly/infras/otel"
	"hostly/infras/rabbitmq"
	"hostly/infras/twilio"
	"hostly/internal/events"
	"hostly/shared/cache"
)

// NewDispatcher returns a dispatcher with every booking observer registered.
func NewDispatcher(
	cfg *config.Config,
	otel otel.Otel,
	publisher rabbitmq.Publisher,
	client kafka.Client,
	sms twilio.SMS,
	redisCache cache.RedisCache,
) events.Dispatcher {
	dispatcher := events.New(cfg, otel)

	dispatcher.Register(NewCache(redisCache))
	dispatcher.Register(NewSMS(sms))
	dispatcher.Register(NewSearch(client, cfg))
	dispatcher.Register(NewNotification(publisher))

	return dispatcher
}
