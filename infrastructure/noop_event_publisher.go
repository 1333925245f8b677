package infrastructure

import (
	"context"

	"ligabet/domain/events"
)

// NoopEventPublisher is an event publisher that does nothing.
// Useful for tests and one-off admin tooling where events should not leave the process.
type NoopEventPublisher struct{}

// NewNoopEventPublisher creates a new no-op event publisher
func NewNoopEventPublisher() *NoopEventPublisher {
	return &NoopEventPublisher{}
}

// Publish does nothing with the event
func (n *NoopEventPublisher) Publish(event events.Event) error {
	return nil
}

// Flush does nothing
func (n *NoopEventPublisher) Flush(ctx context.Context) {}

// Discard does nothing
func (n *NoopEventPublisher) Discard() {}
