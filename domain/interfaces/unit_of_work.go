package interfaces

import "context"

// UnitOfWork bundles the repositories behind a single database
// transaction. Events published through EventBus are held until the
// transaction commits and are discarded on rollback.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() UserRepository
	TeamRepository() TeamRepository
	MatchRepository() MatchRepository
	OutcomeRepository() OutcomeRepository
	BetRepository() BetRepository
	BalanceHistoryRepository() BalanceHistoryRepository
	SettingsRepository() SettingsRepository
	EventBus() EventPublisher
}

// UnitOfWorkFactory creates units of work
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// TransactionalEventPublisher buffers events for publication after a
// successful commit.
type TransactionalEventPublisher interface {
	EventPublisher

	// Flush publishes all buffered events
	Flush(ctx context.Context)

	// Discard drops all buffered events
	Discard()
}
