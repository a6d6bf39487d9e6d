package audit

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/sue-zadeh/fieldbase/internal/config"
	"github.com/sue-zadeh/fieldbase/pkg/logger"
)

type kafkaPublisher struct {
	writer *kafka.Writer
	log    logger.Logger
}

// NewKafkaPublisher creates a Kafka-backed audit publisher, or the noop
// publisher when no brokers are configured.
func NewKafkaPublisher(cfg config.AuditConfig, log logger.Logger) Publisher {
	if !cfg.Enabled() {
		return NewNoopPublisher()
	}
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.LeastBytes{},
		WriteTimeout: 5 * time.Second,
		RequiredAcks: kafka.RequireOne,
		BatchTimeout: 100 * time.Millisecond,
	}
	return &kafkaPublisher{writer: writer, log: log.WithComponent("audit_publisher")}
}

func (p *kafkaPublisher) Publish(ctx context.Context, event Event) {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now()
	}
	value, err := json.Marshal(event)
	if err != nil {
		p.log.Error(ctx, "Failed to marshal audit event", err)
		return
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.Entity),
		Value: value,
	})
	if err != nil {
		p.log.Error(ctx, "Failed to publish audit event", err,
			logger.String("type", string(event.Type)),
			logger.String("entity", event.Entity))
	}
}

func (p *kafkaPublisher) Close() error {
	return p.writer.Close()
}
