package events

import (
	"context"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/Sunnycharan27/loopyncapp/internal/config"
)

// originHeader carries the producing instance id so consumers can skip
// messages they mirrored themselves.
const originHeader = "origin"

// KafkaProducer mirrors realtime events to a topic keyed by recipient user id
// so peer instances can deliver to sockets connected elsewhere.
type KafkaProducer struct {
	writer   *kafka.Writer
	instance string
}

func NewKafkaProducer(cfg *config.Config, instanceID string) *KafkaProducer {
	return &KafkaProducer{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(cfg.Kafka.Brokers...),
			Topic:    cfg.Kafka.Topic,
			Balancer: &kafka.Hash{},
		},
		instance: instanceID,
	}
}

func (p *KafkaProducer) Publish(ctx context.Context, userID string, payload []byte) error {
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:     []byte(userID),
		Value:   payload,
		Headers: []kafka.Header{{Key: originHeader, Value: []byte(p.instance)}},
	})
}

func (p *KafkaProducer) Close() error {
	return p.writer.Close()
}

// KafkaConsumer reads mirrored events and replays them into the local hub.
type KafkaConsumer struct {
	reader   *kafka.Reader
	instance string
	logger   *zap.SugaredLogger
}

func NewKafkaConsumer(cfg *config.Config, instanceID string, logger *zap.SugaredLogger) *KafkaConsumer {
	return &KafkaConsumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.Topic,
			// Per-instance group: every instance must see the full stream,
			// not a load-balanced share of it.
			GroupID: cfg.Kafka.GroupID + "-" + instanceID,
		}),
		instance: instanceID,
		logger:   logger,
	}
}

// Run blocks until ctx is cancelled, forwarding each mirrored event to the
// sender keyed by the message key (recipient user id).
func (c *KafkaConsumer) Run(ctx context.Context, sender Sender) {
	for {
		m, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			c.logger.Warnw("kafka read failed", "error", err)
			continue
		}
		c.deliver(m, sender)
	}
}

// deliver forwards a mirrored event unless this instance produced it; the
// local hub already delivered those at dispatch time.
func (c *KafkaConsumer) deliver(m kafka.Message, sender Sender) {
	for _, h := range m.Headers {
		if h.Key == originHeader && string(h.Value) == c.instance {
			return
		}
	}
	sender.SendToUser(string(m.Key), m.Value)
}

func (c *KafkaConsumer) Close() error {
	return c.reader.Close()
}
