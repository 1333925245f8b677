package events

import "ligabet/domain/entities"

// EventType represents different types of events in the system
type EventType string

const (
	EventTypeBalanceChange  EventType = "balance_change"
	EventTypeUserCreated    EventType = "user_created"
	EventTypeBetPlaced      EventType = "bet_placed"
	EventTypeMatchCreated   EventType = "match_created"
	EventTypeMatchFinalized EventType = "match_finalized"
)

// Event is the base interface for all events
type Event interface {
	Type() EventType
}

// BalanceChangeEvent represents a balance change that occurred
type BalanceChangeEvent struct {
	UserID          int64
	OldBalance      int64
	NewBalance      int64
	TransactionType entities.TransactionType
	ChangeAmount    int64
}

func (e BalanceChangeEvent) Type() EventType {
	return EventTypeBalanceChange
}

// UserCreatedEvent represents a new user creation
type UserCreatedEvent struct {
	DiscordID      int64
	Username       string
	InitialBalance int64
}

func (e UserCreatedEvent) Type() EventType {
	return EventTypeUserCreated
}

// BetPlacedEvent represents a bet that was placed
type BetPlacedEvent struct {
	UserID  int64
	BetID   string
	MatchID string
	Amount  int64
	Odds    float64
}

func (e BetPlacedEvent) Type() EventType {
	return EventTypeBetPlaced
}

// MatchCreatedEvent represents a match opened for betting
type MatchCreatedEvent struct {
	MatchID  string
	HomeTeam string
	AwayTeam string
	HomeOdds float64
	DrawOdds float64
	AwayOdds float64
}

func (e MatchCreatedEvent) Type() EventType {
	return EventTypeMatchCreated
}

// MatchFinalizedEvent represents a finished match with settled bets
type MatchFinalizedEvent struct {
	MatchID     string
	HomeTeam    string
	AwayTeam    string
	Result      entities.ResultTag
	Score       string
	Manual      bool
	BetsSettled int
	BetsWon     int
	TotalPaid   int64
}

func (e MatchFinalizedEvent) Type() EventType {
	return EventTypeMatchFinalized
}
