package rabbitmq

//go:generate go run go.uber.org/mock/mockgen -source=./rabbitmq.go -destination=./mocks/rabbitmq_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"hostly/config"
	"hostly/infras/otel"
	"hostly/shared/constant"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"
)

const (
	exchangeKind = "topic"

	otelAttrExchange   = "rabbitmq.exchange"
	otelAttrRoutingKey = "rabbitmq.routing_key"
)

// Publisher sends JSON messages to the configured topic exchange.
type Publisher interface {
	PublishJSON(ctx context.Context, routingKey string, value any) error
	Close() error
}

type publisherImpl struct {
	mu       sync.Mutex
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
	otel     otel.Otel
}

// New dials the broker and declares a durable topic exchange.
func New(config *config.Config, otel otel.Otel) (Publisher, error) {
	conn, err := amqp.Dial(config.RabbitMQ.URL)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()

		return nil, fmt.Errorf("open channel: %w", err)
	}

	exchange := config.RabbitMQ.Exchange

	if err := ch.ExchangeDeclare(exchange, exchangeKind, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()

		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	log.Info().Str("exchange", exchange).Msg("RabbitMQ publisher initialized")

	return &publisherImpl{
		conn:     conn,
		ch:       ch,
		exchange: exchange,
		otel:     otel,
	}, nil
}

func (p *publisherImpl) PublishJSON(ctx context.Context, routingKey string, value any) (err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelRabbitScopeName, constant.OtelRabbitScopeName+".PublishJSON")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{
		otelAttrExchange:   p.exchange,
		otelAttrRoutingKey: routingKey,
	})

	body, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	// amqp channels are not safe for concurrent publishing
	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.ch.PublishWithContext(ctx, p.exchange, routingKey, false, false, amqp.Publishing{
		ContentType:  constant.ContentTypeJSON,
		DeliveryMode: amqp.Persistent,
		Body:         body,
	})
	if err != nil {
		log.Error().Err(err).Str("routingKey", routingKey).Msg("failed to publish message")

		return fmt.Errorf("failed to publish message: %w", err)
	}

	return nil
}

func (p *publisherImpl) Close() error {
	if p.ch != nil {
		_ = p.ch.Close()
	}

	if p.conn != nil {
		return p.conn.Close() //nolint:wrapcheck
	}

	return nil
}
