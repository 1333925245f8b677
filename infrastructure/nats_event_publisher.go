package infrastructure

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"ligabet/domain/events"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// EventEnvelope wraps a serialized domain event for transport
type EventEnvelope struct {
	EventID       string          `json:"event_id"`
	EventType     string          `json:"event_type"`
	Timestamp     time.Time       `json:"timestamp"`
	SourceService string          `json:"source_service"`
	Payload       json.RawMessage `json:"payload"`
}

// NATSEventPublisher implements the EventPublisher interface using NATS
type NATSEventPublisher struct {
	natsClient    *NATSClient
	subjectMapper *EventSubjectMapper
	localHandlers map[events.EventType][]func(context.Context, events.Event) error
}

// NewNATSEventPublisher creates a new NATS event publisher
func NewNATSEventPublisher(natsClient *NATSClient, subjectMapper *EventSubjectMapper) *NATSEventPublisher {
	return &NATSEventPublisher{
		natsClient:    natsClient,
		subjectMapper: subjectMapper,
		localHandlers: make(map[events.EventType][]func(context.Context, events.Event) error),
	}
}

// Publish publishes an event to NATS using the appropriate subject
func (p *NATSEventPublisher) Publish(event events.Event) error {
	ctx := context.Background()
	eventType := event.Type()

	if handlers, exists := p.localHandlers[eventType]; exists {
		for _, handler := range handlers {
			if err := handler(ctx, event); err != nil {
				log.WithFields(log.Fields{
					"eventType": eventType,
					"error":     err,
				}).Error("Local event handler failed")
				// Continue so one handler failure does not block the rest
			}
		}
	}

	subject := p.subjectMapper.MapEventToSubject(event)

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event payload: %w", err)
	}

	envelope := &EventEnvelope{
		EventID:       uuid.New().String(),
		EventType:     string(eventType),
		Timestamp:     time.Now().UTC(),
		SourceService: "ligabet",
		Payload:       payload,
	}

	envelopeData, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("failed to marshal event envelope: %w", err)
	}

	if err := p.natsClient.Publish(ctx, subject, envelopeData); err != nil {
		if strings.Contains(err.Error(), "no response from stream") {
			return nil
		}
		return fmt.Errorf("failed to publish event to NATS: %w", err)
	}

	log.WithFields(log.Fields{
		"eventType": eventType,
		"eventId":   envelope.EventID,
		"subject":   subject,
	}).Debug("Successfully published event to NATS")

	return nil
}

// RegisterLocalHandler registers a handler that will be invoked in-process
// whenever an event of the given type is published
func (p *NATSEventPublisher) RegisterLocalHandler(eventType events.EventType, handler func(context.Context, events.Event) error) {
	p.localHandlers[eventType] = append(p.localHandlers[eventType], handler)
	log.WithFields(log.Fields{
		"eventType":    eventType,
		"handlerCount": len(p.localHandlers[eventType]),
	}).Info("Registered local event handler")
}

// EnsureDomainEventStream ensures the domain_events stream exists with the correct subjects
func (p *NATSEventPublisher) EnsureDomainEventStream() error {
	subjects := p.subjectMapper.GetAllSubjects()
	return p.natsClient.ensureStream("domain_events", subjects)
}
