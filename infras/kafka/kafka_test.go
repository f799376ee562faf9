package kafka_test

import (
	"hostly/infras/kafka"
	"testing"

	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type indexedBooking struct {
	ID     string `json:"id"`
	HostID string `json:"hostId"`
}

func TestMessage_ToKafkaMessage(t *testing.T) {
	msg := kafka.Message{Key: "B1", Value: indexedBooking{ID: "B1", HostID: "H1"}}

	kafkaMsg, err := msg.ToKafkaMessage("booking-index")
	require.NoError(t, err)

	assert.Equal(t, "booking-index", kafkaMsg.Topic)
	assert.Equal(t, []byte("B1"), kafkaMsg.Key)
	assert.JSONEq(t, `{"id":"B1","hostId":"H1"}`, string(kafkaMsg.Value))

	_, err = (&kafka.Message{Key: "bad", Value: make(chan int)}).ToKafkaMessage("booking-index")
	assert.Error(t, err)
}

func TestDecodeKafkaMessage(t *testing.T) {
	decoded, err := kafka.DecodeKafkaMessage[indexedBooking](kafkaGo.Message{Value: []byte(`{"id":"B1","hostId":"H1"}`)})
	require.NoError(t, err)
	assert.Equal(t, indexedBooking{ID: "B1", HostID: "H1"}, decoded)

	_, err = kafka.DecodeKafkaMessage[indexedBooking](kafkaGo.Message{Value: []byte(`{`)})
	assert.Error(t, err)
}

func TestHeaderCarrier(t *testing.T) {
	carrier := kafka.HeaderCarrier{}

	carrier.Set("traceparent", "00-a-b-01")
	carrier.Set("baggage", "host=H1")
	carrier.Set("traceparent", "00-c-d-01")

	assert.Equal(t, "00-c-d-01", carrier.Get("traceparent"))
	assert.Equal(t, "host=H1", carrier.Get("baggage"))
	assert.Empty(t, carrier.Get("tracestate"))
	assert.Equal(t, []string{"traceparent", "baggage"}, carrier.Keys())
}
