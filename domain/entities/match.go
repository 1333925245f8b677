package entities

import (
	"errors"
	"time"
)

// MatchStatus represents the lifecycle state of a match
type MatchStatus string

const (
	MatchStatusUpcoming MatchStatus = "upcoming"
	MatchStatusFinished MatchStatus = "finished"
)

// ResultTag identifies a three-way match result
type ResultTag string

const (
	ResultHome ResultTag = "home"
	ResultDraw ResultTag = "draw"
	ResultAway ResultTag = "away"
)

// Valid returns true for a recognized result tag
func (r ResultTag) Valid() bool {
	return r == ResultHome || r == ResultDraw || r == ResultAway
}

// ThreeWayOdds holds the decimal odds for a 1X2 market
type ThreeWayOdds struct {
	Home float64 `db:"home_odds"`
	Draw float64 `db:"draw_odds"`
	Away float64 `db:"away_odds"`
}

// ForResult returns the odds matching a result tag
func (o ThreeWayOdds) ForResult(r ResultTag) float64 {
	switch r {
	case ResultHome:
		return o.Home
	case ResultDraw:
		return o.Draw
	default:
		return o.Away
	}
}

// Match represents a scheduled or finished match
type Match struct {
	ID          string       `db:"id"`
	HomeTeam    string       `db:"home_team"` // full name, e.g. "Aimstar (D1)"
	AwayTeam    string       `db:"away_team"`
	Tournament  Tournament   `db:"tournament"`
	Odds        ThreeWayOdds `db:""`
	Status      MatchStatus  `db:"status"`
	ScheduledAt *time.Time   `db:"scheduled_at"`
	CreatedAt   time.Time    `db:"created_at"`
}

// Match state errors
var (
	ErrMatchFinished = errors.New("match already finished")
	ErrMatchNotFound = errors.New("match not found")
	ErrMatchHasBets  = errors.New("match has settled bets")
)

// IsOpenForBetting returns true while bets may still be placed
func (m *Match) IsOpenForBetting() bool {
	return m.Status == MatchStatusUpcoming
}

// Finish transitions the match to finished. Finished is terminal, so
// finishing twice is an error.
func (m *Match) Finish() error {
	if m.Status == MatchStatusFinished {
		return ErrMatchFinished
	}
	m.Status = MatchStatusFinished
	return nil
}
