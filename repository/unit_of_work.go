package repository

import (
	"context"
	"fmt"

	"ligabet/database"
	"ligabet/domain/interfaces"

	"github.com/jackc/pgx/v5"
)

// unitOfWork implements the UnitOfWork interface
type unitOfWork struct {
	db                     *database.DB
	tx                     pgx.Tx
	ctx                    context.Context
	transactionalPublisher interfaces.TransactionalEventPublisher

	userRepo           interfaces.UserRepository
	teamRepo           interfaces.TeamRepository
	matchRepo          interfaces.MatchRepository
	outcomeRepo        interfaces.OutcomeRepository
	betRepo            interfaces.BetRepository
	balanceHistoryRepo interfaces.BalanceHistoryRepository
	settingsRepo       interfaces.SettingsRepository
}

type unitOfWorkFactory struct {
	db               *database.DB
	publisherFactory func() interfaces.TransactionalEventPublisher
}

// NewUnitOfWorkFactory creates a factory producing units of work backed
// by the given pool. publisherFactory supplies a fresh transactional
// publisher per unit of work.
func NewUnitOfWorkFactory(db *database.DB, publisherFactory func() interfaces.TransactionalEventPublisher) interfaces.UnitOfWorkFactory {
	return &unitOfWorkFactory{
		db:               db,
		publisherFactory: publisherFactory,
	}
}

func (f *unitOfWorkFactory) Create() interfaces.UnitOfWork {
	return &unitOfWork{
		db:                     f.db,
		transactionalPublisher: f.publisherFactory(),
	}
}

// Begin starts a new transaction
func (u *unitOfWork) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}

	tx, err := u.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	u.tx = tx
	u.ctx = ctx

	u.userRepo = newUserRepository(tx)
	u.teamRepo = newTeamRepository(tx)
	u.matchRepo = newMatchRepository(tx)
	u.outcomeRepo = newOutcomeRepository(tx)
	u.betRepo = newBetRepository(tx)
	u.balanceHistoryRepo = newBalanceHistoryRepository(tx)
	u.settingsRepo = newSettingsRepository(tx)

	return nil
}

// Commit commits the transaction and flushes buffered events
func (u *unitOfWork) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}

	if err := u.tx.Commit(u.ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	u.tx = nil

	if u.transactionalPublisher != nil {
		u.transactionalPublisher.Flush(u.ctx)
	}

	return nil
}

// Rollback rolls back the transaction and discards buffered events
func (u *unitOfWork) Rollback() error {
	if u.tx == nil {
		return nil // Nothing to rollback
	}

	err := u.tx.Rollback(u.ctx)
	if err != nil && err != pgx.ErrTxClosed {
		return fmt.Errorf("failed to rollback transaction: %w", err)
	}

	u.tx = nil

	if u.transactionalPublisher != nil {
		u.transactionalPublisher.Discard()
	}

	return nil
}

func (u *unitOfWork) UserRepository() interfaces.UserRepository {
	if u.userRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.userRepo
}

func (u *unitOfWork) TeamRepository() interfaces.TeamRepository {
	if u.teamRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.teamRepo
}

func (u *unitOfWork) MatchRepository() interfaces.MatchRepository {
	if u.matchRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.matchRepo
}

func (u *unitOfWork) OutcomeRepository() interfaces.OutcomeRepository {
	if u.outcomeRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.outcomeRepo
}

func (u *unitOfWork) BetRepository() interfaces.BetRepository {
	if u.betRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.betRepo
}

func (u *unitOfWork) BalanceHistoryRepository() interfaces.BalanceHistoryRepository {
	if u.balanceHistoryRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.balanceHistoryRepo
}

func (u *unitOfWork) SettingsRepository() interfaces.SettingsRepository {
	if u.settingsRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.settingsRepo
}

// EventBus returns the transactional event publisher for this unit of work
func (u *unitOfWork) EventBus() interfaces.EventPublisher {
	if u.transactionalPublisher == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.transactionalPublisher
}
