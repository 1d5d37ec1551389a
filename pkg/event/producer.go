package event

import (
	"context"

	"github.com/goccy/go-json"
	"github.com/segmentio/kafka-go"

	"shop-api/pkg/config"
)

const (
	TopicUserEvents    = "user_events"
	TopicProductEvents = "product_events"
)

type Producer interface {
	PublishEvent(ctx context.Context, topic, key string, event interface{}) error
	Close() error
}

type producer struct {
	writer *kafka.Writer
}

func NewProducer(kafkaConfig config.KafkaConfig) Producer {
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(kafkaConfig.Brokers...),
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
	}

	return &producer{
		writer: writer,
	}
}

func (p *producer) PublishEvent(ctx context.Context, topic, key string, event interface{}) error {
	value, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: value,
	})
}

func (p *producer) Close() error {
	return p.writer.Close()
}
