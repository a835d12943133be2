package events

import (
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"

	"github.com/Sunnycharan27/loopyncapp/pkg/logger"
)

func TestConsumerSkipsOwnMirroredEvents(t *testing.T) {
	c := &KafkaConsumer{instance: "inst-a", logger: logger.Nop()}
	sender := &memSender{}

	// our own mirror loops back; the hub already delivered it locally
	c.deliver(kafka.Message{
		Key:     []byte("u1"),
		Value:   []byte(`{"type":"message"}`),
		Headers: []kafka.Header{{Key: originHeader, Value: []byte("inst-a")}},
	}, sender)
	assert.Empty(t, sender.sent["u1"])

	// a peer instance's mirror is forwarded
	c.deliver(kafka.Message{
		Key:     []byte("u1"),
		Value:   []byte(`{"type":"message"}`),
		Headers: []kafka.Header{{Key: originHeader, Value: []byte("inst-b")}},
	}, sender)
	assert.Len(t, sender.sent["u1"], 1)

	// messages without an origin header are forwarded
	c.deliver(kafka.Message{Key: []byte("u2"), Value: []byte(`{"type":"read"}`)}, sender)
	assert.Len(t, sender.sent["u2"], 1)
}
