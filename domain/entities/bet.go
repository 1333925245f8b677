package entities

import (
	"errors"
	"math"
	"time"
)

// BetType identifies the kind of selection a bet carries
type BetType string

const (
	BetTypeSimple     BetType = "simple"
	BetTypeExactScore BetType = "exact_score"
	BetTypeSpecial    BetType = "special"
	BetTypeCombo      BetType = "special_combined"
)

// BetStatus represents the settlement state of a bet
type BetStatus string

const (
	BetStatusPending BetStatus = "pending"
	BetStatusWon     BetStatus = "won"
	BetStatusLost    BetStatus = "lost"
)

// BetLeg is one selection inside a combo bet. The leg odds are captured
// at placement time so the combined price survives later team updates.
type BetLeg struct {
	Market MarketType `json:"market"`
	Label  string     `json:"label"`
	Odds   float64    `json:"odds"`
}

// Bet represents a placed bet on a match
type Bet struct {
	ID        string    `db:"id"`
	DiscordID int64     `db:"discord_id"`
	MatchID   string    `db:"match_id"`
	Type      BetType   `db:"bet_type"`

	// Selection payload. Exactly one of the following is populated,
	// depending on Type: Pick, ExactHome/ExactAway, Market, or Legs.
	Pick      *ResultTag  `db:"pick"`
	ExactHome *int        `db:"exact_home"`
	ExactAway *int        `db:"exact_away"`
	Market    *MarketType `db:"market"`
	Legs      []BetLeg    `db:"legs"`

	Amount      int64      `db:"amount"`
	Odds        float64    `db:"odds"`
	Status      BetStatus  `db:"status"`
	Description string     `db:"description"`
	PlacedAt    time.Time  `db:"placed_at"`
	SettledAt   *time.Time `db:"settled_at"`
}

// Payout returns the gross return for a winning bet, stake included
func (b *Bet) Payout() int64 {
	return int64(math.Round(float64(b.Amount) * b.Odds))
}

// IsPending returns true while the bet awaits settlement
func (b *Bet) IsPending() bool {
	return b.Status == BetStatusPending
}

// Settle marks the bet won or lost. Settlement is final, settling a
// non-pending bet is an error.
func (b *Bet) Settle(won bool, at time.Time) error {
	if !b.IsPending() {
		return errors.New("bet already settled")
	}
	if won {
		b.Status = BetStatusWon
	} else {
		b.Status = BetStatusLost
	}
	b.SettledAt = &at
	return nil
}

// Validate performs structural validation of the selection payload
func (b *Bet) Validate() error {
	if b.Amount <= 0 {
		return errors.New("bet amount must be positive")
	}
	if b.Odds < 1.0 {
		return errors.New("odds must be at least 1.0")
	}
	switch b.Type {
	case BetTypeSimple:
		if b.Pick == nil || !b.Pick.Valid() {
			return errors.New("simple bet requires a valid pick")
		}
	case BetTypeExactScore:
		if b.ExactHome == nil || b.ExactAway == nil {
			return errors.New("exact score bet requires both scores")
		}
		if *b.ExactHome < 0 || *b.ExactAway < 0 {
			return errors.New("scores must be zero or greater")
		}
	case BetTypeSpecial:
		if b.Market == nil {
			return errors.New("special bet requires a market")
		}
	case BetTypeCombo:
		if len(b.Legs) == 0 {
			return errors.New("combo bet requires at least one leg")
		}
	default:
		return errors.New("unknown bet type")
	}
	return nil
}
