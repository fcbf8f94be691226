package kafka_test

import (
	"hotel/infras/kafka"
	"testing"

	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stockAlert struct {
	ConsumableID string `json:"consumableId"`
	Stock        int    `json:"stock"`
}

func TestMessageRoundTrip(t *testing.T) {
	msg := kafka.Message{
		Key:   "c-1",
		Event: "consumable.low_stock",
		Value: stockAlert{ConsumableID: "c-1", Stock: 2},
	}

	record, err := msg.ToKafkaMessage()
	require.NoError(t, err)

	assert.Equal(t, []byte("c-1"), record.Key)
	assert.Equal(t, "consumable.low_stock", kafka.EventOf(record))

	decoded, err := kafka.Decode[stockAlert](record)
	require.NoError(t, err)
	assert.Equal(t, stockAlert{ConsumableID: "c-1", Stock: 2}, decoded)
}

func TestDecodeRejectsGarbage(t *testing.T) {
	_, err := kafka.Decode[stockAlert](kafkaGo.Message{Value: []byte("{")})
	assert.Error(t, err)
}

func TestEventOfMissingHeader(t *testing.T) {
	assert.Empty(t, kafka.EventOf(kafkaGo.Message{}))
}
