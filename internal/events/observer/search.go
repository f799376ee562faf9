package observer

import (
	"context"
	"fmt"
	"hostly/config"
	"hostly/infras/kafka"
	"hostly/internal/events"
)

const PrioritySearch = 50

type searchObserver struct {
	client kafka.Client
	topic  string
}

// NewSearch streams the plain booking document to the search indexer topic.
func NewSearch(client kafka.Client, cfg *config.Config) events.Observer {
	return &searchObserver{client: client, topic: cfg.Kafka.Topics.BookingIndex}
}

func (o *searchObserver) Name() string  { return "search-index" }
func (o *searchObserver) Priority() int { return PrioritySearch }

func (o *searchObserver) Handle(ctx context.Context, event events.Event) error {
	err := o.client.SendMessages(ctx, o.topic, kafka.Message{
		Key:   event.Booking.ID,
		Value: event.Booking,
	})
	if err != nil {
		return fmt.Errorf("failed to index booking: %w", err)
	}

	return nil
}
