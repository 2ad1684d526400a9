package kafka_test

import (
	"context"
	"encoding/json"
	"hotel/config"
	"hotel/infras/kafka"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessage_ToKafkaMessage(t *testing.T) {
	message := kafka.Message{
		Key:   "r-1",
		Type:  "room.created",
		Value: map[string]any{"id": "r-1", "number": 101},
	}

	msg, err := message.ToKafkaMessage("hotel.room-events")
	require.NoError(t, err)

	assert.Equal(t, "hotel.room-events", msg.Topic)
	assert.Equal(t, []byte("r-1"), msg.Key)
	require.Len(t, msg.Headers, 1)
	assert.Equal(t, "event-type", msg.Headers[0].Key)
	assert.Equal(t, []byte("room.created"), msg.Headers[0].Value)

	body := map[string]any{}
	require.NoError(t, json.Unmarshal(msg.Value, &body))
	assert.Equal(t, "r-1", body["id"])
}

func TestMessage_ToKafkaMessageInvalidValue(t *testing.T) {
	message := kafka.Message{Key: "r-1", Value: make(chan int)}

	_, err := message.ToKafkaMessage("hotel.room-events")

	assert.Error(t, err)
}

func TestNew_Disabled(t *testing.T) {
	cfg := &config.Config{}
	cfg.Kafka.Enable = false

	client := kafka.New(cfg)

	assert.NoError(t, client.SendMessages(context.Background(), "hotel.room-events", kafka.Message{Key: "r-1"}))
	assert.NoError(t, client.Close())
}
