package interfaces

import (
	"context"
	"time"

	"ligabet/domain/entities"
)

// UserService defines the interface for user operations
type UserService interface {
	// GetOrCreateUser retrieves an existing user or creates a new one
	// with the configured starting balance
	GetOrCreateUser(ctx context.Context, discordID int64, username string) (*entities.User, error)

	// TransferBetweenUsers transfers amount from sender to recipient
	TransferBetweenUsers(ctx context.Context, fromDiscordID, toDiscordID int64, amount int64, fromUsername, toUsername string) error

	// Grant credits amount to a user without debiting anyone (admin only)
	Grant(ctx context.Context, discordID int64, username string, amount int64) (*entities.User, error)

	// GetLeaderboard returns the richest users, highest balance first
	GetLeaderboard(ctx context.Context, limit int) ([]*entities.User, error)
}

// BettingService defines the interface for placing bets
type BettingService interface {
	// PlaceSimpleBet bets on the three-way result at the odds frozen on
	// the match
	PlaceSimpleBet(ctx context.Context, discordID int64, username string, matchID string, pick entities.ResultTag, amount int64) (*entities.Bet, error)

	// PlaceExactScoreBet bets on the exact final score
	PlaceExactScoreBet(ctx context.Context, discordID int64, username string, matchID string, home, away int, amount int64) (*entities.Bet, error)

	// PlaceSpecialBet bets on a single special market
	PlaceSpecialBet(ctx context.Context, discordID int64, username string, matchID string, market entities.MarketType, amount int64) (*entities.Bet, error)

	// PlaceComboBet bets on a combination of special markets, priced as
	// the product of the leg odds
	PlaceComboBet(ctx context.Context, discordID int64, username string, matchID string, markets []entities.MarketType, amount int64) (*entities.Bet, error)

	// GetUserBets returns the most recent bets of a user
	GetUserBets(ctx context.Context, discordID int64, limit int) ([]*entities.Bet, error)
}

// MatchService defines the interface for match lifecycle operations
type MatchService interface {
	// CreateMatch opens a match between two teams resolved by query
	CreateMatch(ctx context.Context, homeQuery, awayQuery string, tournament entities.Tournament, scheduledAt *time.Time) (*entities.Match, error)

	// CreateRandomMatch opens a match between two random distinct
	// teams, scheduled at a random time within the next 24 hours
	CreateRandomMatch(ctx context.Context) (*entities.Match, error)

	// GetMatch retrieves a match by ID
	GetMatch(ctx context.Context, matchID string) (*entities.Match, error)

	// ListUpcoming returns matches open for betting
	ListUpcoming(ctx context.Context) ([]*entities.Match, error)

	// ListFinished returns finished matches
	ListFinished(ctx context.Context) ([]*entities.Match, error)

	// SetOdds overrides the three-way odds of an open match
	SetOdds(ctx context.Context, matchID string, odds entities.ThreeWayOdds) (*entities.Match, error)

	// SimulateMatch plays out an open match at random and settles all
	// bets on it
	SimulateMatch(ctx context.Context, matchID string) (*entities.MatchOutcome, error)

	// FinalizeMatch records a manually supplied outcome and settles all
	// bets on it
	FinalizeMatch(ctx context.Context, matchID string, outcome *entities.MatchOutcome) error

	// GetOutcome retrieves the recorded outcome of a finished match
	GetOutcome(ctx context.Context, matchID string) (*entities.MatchOutcome, error)

	// DeleteMatch removes an open match, refunding all pending bets.
	// Returns the number of refunded bets.
	DeleteMatch(ctx context.Context, matchID string) (int, error)

	// ClearUpcoming deletes every open match with refunds, returning
	// matches deleted and bets refunded
	ClearUpcoming(ctx context.Context) (int, int, error)

	// SimulateDue simulates every open match scheduled before now,
	// returning the number of matches finished
	SimulateDue(ctx context.Context, now time.Time) (int, error)
}
