package infrastructure

import (
	"context"

	"ligabet/domain/events"
	"ligabet/domain/interfaces"

	log "github.com/sirupsen/logrus"
)

// NATSTransactionalPublisher holds events until flush, then forwards them
// to the real publisher. Pairs with the unit of work so events only leave
// the process after the database transaction commits.
type NATSTransactionalPublisher struct {
	realPublisher interfaces.EventPublisher
	pending       []events.Event
}

// NewNATSTransactionalPublisher creates a new transactional publisher
func NewNATSTransactionalPublisher(realPublisher interfaces.EventPublisher) interfaces.TransactionalEventPublisher {
	return &NATSTransactionalPublisher{
		realPublisher: realPublisher,
		pending:       make([]events.Event, 0),
	}
}

// Publish stores an event in the pending queue without immediately publishing
func (p *NATSTransactionalPublisher) Publish(event events.Event) error {
	log.WithFields(log.Fields{
		"eventType":    event.Type(),
		"pendingCount": len(p.pending),
	}).Debug("Buffering event in transactional publisher")

	p.pending = append(p.pending, event)
	return nil
}

// Flush publishes all pending events.
// Called after a successful database transaction commit.
func (p *NATSTransactionalPublisher) Flush(ctx context.Context) {
	log.WithFields(log.Fields{
		"pendingEventCount": len(p.pending),
	}).Debug("Flushing pending events")

	for _, event := range p.pending {
		if err := p.realPublisher.Publish(event); err != nil {
			// Continue with other events so a partial failure does not block the batch
			log.WithFields(log.Fields{
				"eventType": event.Type(),
				"error":     err,
			}).Error("Failed to publish event during flush")
		}
	}

	p.pending = p.pending[:0]
}

// Discard clears all pending events without publishing them.
// Called on database transaction rollback.
func (p *NATSTransactionalPublisher) Discard() {
	log.WithFields(log.Fields{
		"discardedEventCount": len(p.pending),
	}).Debug("Discarding pending events")

	p.pending = p.pending[:0]
}
