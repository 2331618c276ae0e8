package facades

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"

	"github.com/avkorablev/skills-tracker/internal/logger"
	"github.com/avkorablev/skills-tracker/internal/models"
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// AuditEventsKafkaFacade publishes audit events to a Kafka topic.
type AuditEventsKafkaFacade struct {
	writer KafkaWriter
}

// NewAuditEventsKafkaFacade creates a new facade with a Kafka writer.
func NewAuditEventsKafkaFacade(writer KafkaWriter) *AuditEventsKafkaFacade {
	return &AuditEventsKafkaFacade{writer: writer}
}

// PublishAuditEvent marshals the event and writes it keyed by event id.
func (f *AuditEventsKafkaFacade) PublishAuditEvent(ctx context.Context, event models.AuditEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal audit event", "event_id", event.EventID, "error", err)
		return err
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := f.writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to write audit event to Kafka", "event_id", event.EventID, "error", err)
		return err
	}

	return nil
}

// Close releases the underlying writer.
func (f *AuditEventsKafkaFacade) Close() error {
	return f.writer.Close()
}
