package services

import (
	"testing"
	"time"

	"ligabet/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resultPtr(r entities.ResultTag) *entities.ResultTag { return &r }
func intPtr(i int) *int                                  { return &i }
func marketPtr(m entities.MarketType) *entities.MarketType {
	return &m
}

func pendingBet(betType entities.BetType, amount int64, odds float64) *entities.Bet {
	return &entities.Bet{
		ID:      "bet-1",
		MatchID: "match-1",
		Type:    betType,
		Amount:  amount,
		Odds:    odds,
		Status:  entities.BetStatusPending,
	}
}

func TestSettlementService_EvaluateBet_Simple(t *testing.T) {
	svc := NewSettlementService()
	outcome := &entities.MatchOutcome{Result: entities.ResultHome, HomeGoals: 2, AwayGoals: 0}

	winner := pendingBet(entities.BetTypeSimple, 100, 2.0)
	winner.Pick = resultPtr(entities.ResultHome)
	assert.True(t, svc.EvaluateBet(winner, outcome))

	loser := pendingBet(entities.BetTypeSimple, 100, 2.0)
	loser.Pick = resultPtr(entities.ResultAway)
	assert.False(t, svc.EvaluateBet(loser, outcome))

	malformed := pendingBet(entities.BetTypeSimple, 100, 2.0)
	assert.False(t, svc.EvaluateBet(malformed, outcome))
}

func TestSettlementService_EvaluateBet_ExactScore(t *testing.T) {
	svc := NewSettlementService()
	outcome := &entities.MatchOutcome{Result: entities.ResultHome, HomeGoals: 2, AwayGoals: 1}

	winner := pendingBet(entities.BetTypeExactScore, 100, 5.5)
	winner.ExactHome = intPtr(2)
	winner.ExactAway = intPtr(1)
	assert.True(t, svc.EvaluateBet(winner, outcome))

	// Right winner, wrong score
	loser := pendingBet(entities.BetTypeExactScore, 100, 5.5)
	loser.ExactHome = intPtr(3)
	loser.ExactAway = intPtr(1)
	assert.False(t, svc.EvaluateBet(loser, outcome))
}

func TestSettlementService_EvaluateBet_Special(t *testing.T) {
	svc := NewSettlementService()
	outcome := &entities.MatchOutcome{
		Result:    entities.ResultDraw,
		HomeGoals: 1,
		AwayGoals: 1,
		Stats:     entities.MatchStats{TotalCorners: 6, HeaderGoal: true},
	}

	corners := pendingBet(entities.BetTypeSpecial, 100, 1.6)
	corners.Market = marketPtr(entities.MarketTotalCornersOver55)
	assert.True(t, svc.EvaluateBet(corners, outcome))

	header := pendingBet(entities.BetTypeSpecial, 100, 1.8)
	header.Market = marketPtr(entities.MarketHeaderGoal)
	assert.True(t, svc.EvaluateBet(header, outcome))

	red := pendingBet(entities.BetTypeSpecial, 100, 3.5)
	red.Market = marketPtr(entities.MarketTotalRedCardsYes)
	assert.False(t, svc.EvaluateBet(red, outcome))
}

func TestSettlementService_EvaluateBet_Combo(t *testing.T) {
	svc := NewSettlementService()
	outcome := &entities.MatchOutcome{
		Result:    entities.ResultHome,
		HomeGoals: 3,
		AwayGoals: 1,
		Stats:     entities.MatchStats{StrikerGoal: true},
	}

	allWin := pendingBet(entities.BetTypeCombo, 100, 2.03)
	allWin.Legs = []entities.BetLeg{
		{Market: entities.MarketBothTeamsScore, Odds: 1.1},
		{Market: entities.MarketTotalGoalsOver25, Odds: 1.35},
		{Market: entities.MarketStrikerGoal, Odds: 1.5},
	}
	assert.True(t, svc.EvaluateBet(allWin, outcome))

	// One losing leg sinks the whole combination
	oneLoses := pendingBet(entities.BetTypeCombo, 100, 2.48)
	oneLoses.Legs = []entities.BetLeg{
		{Market: entities.MarketBothTeamsScore, Odds: 1.1},
		{Market: entities.MarketTotalGoalsUnder25, Odds: 2.25},
	}
	assert.False(t, svc.EvaluateBet(oneLoses, outcome))

	empty := pendingBet(entities.BetTypeCombo, 100, 1.5)
	assert.False(t, svc.EvaluateBet(empty, outcome))
}

func TestSettlementService_SettleAll(t *testing.T) {
	svc := NewSettlementService()
	outcome := &entities.MatchOutcome{Result: entities.ResultHome, HomeGoals: 1, AwayGoals: 0}
	now := time.Now().UTC()

	winner := pendingBet(entities.BetTypeSimple, 333, 1.5)
	winner.Pick = resultPtr(entities.ResultHome)

	loser := pendingBet(entities.BetTypeSimple, 200, 3.2)
	loser.ID = "bet-2"
	loser.Pick = resultPtr(entities.ResultDraw)

	alreadySettled := pendingBet(entities.BetTypeSimple, 500, 2.0)
	alreadySettled.ID = "bet-3"
	alreadySettled.Pick = resultPtr(entities.ResultHome)
	alreadySettled.Status = entities.BetStatusLost

	batch := svc.SettleAll(outcome, []*entities.Bet{winner, loser, alreadySettled}, now)

	require.Len(t, batch.Settlements, 2)
	assert.Equal(t, 1, batch.BetsWon)
	// 333 * 1.5 = 499.5, rounded up
	assert.Equal(t, int64(500), batch.TotalPaid)

	assert.Equal(t, entities.BetStatusWon, winner.Status)
	require.NotNil(t, winner.SettledAt)
	assert.Equal(t, now, *winner.SettledAt)
	assert.Equal(t, entities.BetStatusLost, loser.Status)
	assert.Equal(t, entities.BetStatusLost, alreadySettled.Status)
	assert.Nil(t, alreadySettled.SettledAt)
}

func TestSettlementService_SettleAll_Idempotent(t *testing.T) {
	svc := NewSettlementService()
	outcome := &entities.MatchOutcome{Result: entities.ResultHome, HomeGoals: 1, AwayGoals: 0}
	now := time.Now().UTC()

	bet := pendingBet(entities.BetTypeSimple, 100, 2.0)
	bet.Pick = resultPtr(entities.ResultHome)

	first := svc.SettleAll(outcome, []*entities.Bet{bet}, now)
	second := svc.SettleAll(outcome, []*entities.Bet{bet}, now.Add(time.Minute))

	assert.Len(t, first.Settlements, 1)
	assert.Empty(t, second.Settlements)
	assert.Equal(t, int64(0), second.TotalPaid)
	assert.Equal(t, now, *bet.SettledAt)
}

func TestSettlementService_ValidateFinalization(t *testing.T) {
	svc := NewSettlementService()

	open := &entities.Match{ID: "m1", Status: entities.MatchStatusUpcoming}
	finished := &entities.Match{ID: "m2", Status: entities.MatchStatusFinished}
	outcome := &entities.MatchOutcome{Result: entities.ResultHome, HomeGoals: 2, AwayGoals: 1}

	assert.NoError(t, svc.ValidateFinalization(open, outcome))
	assert.ErrorIs(t, svc.ValidateFinalization(finished, outcome), entities.ErrMatchFinished)

	inconsistent := &entities.MatchOutcome{Result: entities.ResultHome, HomeGoals: 1, AwayGoals: 1}
	assert.Error(t, svc.ValidateFinalization(open, inconsistent))
}
