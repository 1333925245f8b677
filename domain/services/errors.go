package services

import (
	"errors"
	"fmt"

	"ligabet/domain/entities"
)

// Betting flow errors surfaced to command handlers.
var (
	ErrBettingPaused  = errors.New("betting is paused")
	ErrUnknownMarket  = errors.New("unknown market type")
	ErrTeamNotFound   = errors.New("team not found")
	ErrEmptyCombo     = errors.New("combo bet requires at least one market")
	ErrDuplicateLeg   = errors.New("combo bet lists the same market twice")
)

// ComboConstraintError reports a combo that violates a mutual-exclusion
// rule. Group is empty for the both-teams-score restriction.
type ComboConstraintError struct {
	Group entities.MarketGroup
}

func (e *ComboConstraintError) Error() string {
	if e.Group == entities.MarketGroupNone {
		return `"Both teams score" can only be combined with a single goals, corners or cards market`
	}
	return fmt.Sprintf("combo may include at most one %s market", e.Group)
}
