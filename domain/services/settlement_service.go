package services

import (
	"time"

	"ligabet/domain/entities"
)

// SettlementService contains the pure logic for settling bets against a
// recorded match outcome.
type SettlementService struct{}

// NewSettlementService creates a new SettlementService
func NewSettlementService() *SettlementService {
	return &SettlementService{}
}

// BetSettlement is the settlement decision for a single bet
type BetSettlement struct {
	Bet    *entities.Bet
	Won    bool
	Payout int64 // gross return, zero for losing bets
}

// SettlementBatch aggregates the settlement of all bets on a match
type SettlementBatch struct {
	Settlements []BetSettlement
	BetsWon     int
	TotalPaid   int64
}

// ValidateFinalization checks that a match may be finalized with the
// given outcome. The outcome itself must be internally consistent and
// the match still open.
func (s *SettlementService) ValidateFinalization(match *entities.Match, outcome *entities.MatchOutcome) error {
	if !match.IsOpenForBetting() {
		return entities.ErrMatchFinished
	}
	return outcome.Validate()
}

// EvaluateBet decides whether a bet wins against the outcome. A combo
// wins only if every leg does. Bets with an unknown shape lose.
func (s *SettlementService) EvaluateBet(bet *entities.Bet, outcome *entities.MatchOutcome) bool {
	switch bet.Type {
	case entities.BetTypeSimple:
		return bet.Pick != nil && *bet.Pick == outcome.Result
	case entities.BetTypeExactScore:
		return bet.ExactHome != nil && bet.ExactAway != nil &&
			*bet.ExactHome == outcome.HomeGoals && *bet.ExactAway == outcome.AwayGoals
	case entities.BetTypeSpecial:
		return bet.Market != nil && bet.Market.Evaluate(outcome)
	case entities.BetTypeCombo:
		if len(bet.Legs) == 0 {
			return false
		}
		for _, leg := range bet.Legs {
			if !leg.Market.Evaluate(outcome) {
				return false
			}
		}
		return true
	}
	return false
}

// SettleAll evaluates and marks every pending bet in the list. Bets
// already settled are left untouched, so re-running settlement over the
// same match changes nothing.
func (s *SettlementService) SettleAll(outcome *entities.MatchOutcome, bets []*entities.Bet, at time.Time) *SettlementBatch {
	batch := &SettlementBatch{}
	for _, bet := range bets {
		if !bet.IsPending() {
			continue
		}
		won := s.EvaluateBet(bet, outcome)
		if err := bet.Settle(won, at); err != nil {
			continue
		}
		settlement := BetSettlement{Bet: bet, Won: won}
		if won {
			settlement.Payout = bet.Payout()
			batch.BetsWon++
			batch.TotalPaid += settlement.Payout
		}
		batch.Settlements = append(batch.Settlements, settlement)
	}
	return batch
}
