package interfaces

import (
	"context"

	"ligabet/domain/entities"
	"ligabet/domain/events"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// GetByDiscordID retrieves a user by their Discord ID
	GetByDiscordID(ctx context.Context, discordID int64) (*entities.User, error)

	// Create creates a new user with the initial balance
	Create(ctx context.Context, discordID int64, username string, initialBalance int64) (*entities.User, error)

	// UpdateBalance updates a user's balance atomically
	UpdateBalance(ctx context.Context, discordID int64, newBalance int64) error

	// IncrementBetCounters bumps the placed-bet counter by delta (used
	// both when placing bets and when refunding them)
	IncrementBetCounters(ctx context.Context, discordID int64, delta int) error

	// RecordBetResult updates the won/lost counters and accumulated winnings
	RecordBetResult(ctx context.Context, discordID int64, won bool, payout int64) error

	// GetTopByBalance returns the richest users, highest balance first
	GetTopByBalance(ctx context.Context, limit int) ([]*entities.User, error)

	// GetAll returns all users
	GetAll(ctx context.Context) ([]*entities.User, error)
}

// TeamRepository defines the interface for team standings data access
type TeamRepository interface {
	// Upsert inserts or updates a team keyed by (name, league)
	Upsert(ctx context.Context, team *entities.Team) error

	// GetByName retrieves a team by plain name and league
	GetByName(ctx context.Context, name string, league entities.League) (*entities.Team, error)

	// GetAll returns all teams ordered by league and position
	GetAll(ctx context.Context) ([]*entities.Team, error)

	// GetByLeague returns the standings of one league
	GetByLeague(ctx context.Context, league entities.League) ([]*entities.Team, error)
}

// MatchRepository defines the interface for match data access
type MatchRepository interface {
	// Create creates a new match open for betting
	Create(ctx context.Context, match *entities.Match) error

	// GetByID retrieves a match by its ID
	GetByID(ctx context.Context, id string) (*entities.Match, error)

	// Update persists odds and status changes
	Update(ctx context.Context, match *entities.Match) error

	// ListByStatus returns matches in the given state, oldest first
	ListByStatus(ctx context.Context, status entities.MatchStatus) ([]*entities.Match, error)

	// Delete removes a match. Bets cascade at the database level, so
	// callers must refund pending bets first.
	Delete(ctx context.Context, id string) error
}

// OutcomeRepository defines the interface for recorded match results
type OutcomeRepository interface {
	// Record stores the final outcome of a match
	Record(ctx context.Context, outcome *entities.MatchOutcome) error

	// GetByMatchID retrieves the recorded outcome for a match
	GetByMatchID(ctx context.Context, matchID string) (*entities.MatchOutcome, error)
}

// BetRepository defines the interface for bet data access
type BetRepository interface {
	// Create creates a new bet record
	Create(ctx context.Context, bet *entities.Bet) error

	// GetByID retrieves a bet by its ID
	GetByID(ctx context.Context, id string) (*entities.Bet, error)

	// GetByMatch returns all bets on a match
	GetByMatch(ctx context.Context, matchID string) ([]*entities.Bet, error)

	// GetPendingByMatch returns the unsettled bets on a match
	GetPendingByMatch(ctx context.Context, matchID string) ([]*entities.Bet, error)

	// GetByUser returns the most recent bets of a user
	GetByUser(ctx context.Context, discordID int64, limit int) ([]*entities.Bet, error)

	// Update persists settlement status changes
	Update(ctx context.Context, bet *entities.Bet) error

	// DeleteByMatch removes all bets on a match, returning how many
	// were deleted
	DeleteByMatch(ctx context.Context, matchID string) (int, error)
}

// BalanceHistoryRepository defines the interface for balance history tracking
type BalanceHistoryRepository interface {
	// Record creates a new balance history entry
	Record(ctx context.Context, history *entities.BalanceHistory) error

	// GetByUser returns balance history for a specific user
	GetByUser(ctx context.Context, discordID int64, limit int) ([]*entities.BalanceHistory, error)
}

// SettingsRepository defines the interface for the global bot settings row
type SettingsRepository interface {
	// Get retrieves the settings row
	Get(ctx context.Context) (*entities.BotSettings, error)

	// SetBettingPaused toggles the global betting pause switch
	SetBettingPaused(ctx context.Context, paused bool) error
}

// EventPublisher defines the interface for publishing events
type EventPublisher interface {
	Publish(event events.Event) error
}
