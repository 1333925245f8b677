package testutil

import (
	"strings"
	"time"

	"ligabet/domain/entities"

	"github.com/google/uuid"
)

// CreateTestUser creates a test user with default values
func CreateTestUser(discordID int64, username string) *entities.User {
	now := time.Now()
	return &entities.User{
		DiscordID: discordID,
		Username:  username,
		Balance:   1000,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// CreateTestUserWithBalance creates a test user with a specific balance
func CreateTestUserWithBalance(discordID int64, username string, balance int64) *entities.User {
	user := CreateTestUser(discordID, username)
	user.Balance = balance
	return user
}

// CreateTestTeam creates a test team with default values
func CreateTestTeam(name string, league entities.League, position int) *entities.Team {
	return &entities.Team{
		Name:       name,
		League:     league,
		Tournament: entities.Tournament(strings.ToLower(string(league))),
		Position:   position,
		Form:       entities.DefaultForm,
		UpdatedAt:  time.Now(),
	}
}

// CreateTestMatch creates an upcoming test match between two full team names
func CreateTestMatch(homeTeam, awayTeam string) *entities.Match {
	return &entities.Match{
		ID:         uuid.New().String(),
		HomeTeam:   homeTeam,
		AwayTeam:   awayTeam,
		Tournament: entities.TournamentD1,
		Odds:       entities.ThreeWayOdds{Home: 1.85, Draw: 3.6, Away: 4.2},
		Status:     entities.MatchStatusUpcoming,
		CreatedAt:  time.Now(),
	}
}

// CreateTestBet creates a pending simple bet on the home side
func CreateTestBet(discordID int64, matchID string, amount int64) *entities.Bet {
	pick := entities.ResultHome
	return &entities.Bet{
		ID:          uuid.New().String(),
		DiscordID:   discordID,
		MatchID:     matchID,
		Type:        entities.BetTypeSimple,
		Pick:        &pick,
		Amount:      amount,
		Odds:        1.85,
		Status:      entities.BetStatusPending,
		Description: "Home wins",
		PlacedAt:    time.Now(),
	}
}

// CreateTestComboBet creates a pending combo bet with two legs
func CreateTestComboBet(discordID int64, matchID string, amount int64) *entities.Bet {
	return &entities.Bet{
		ID:        uuid.New().String(),
		DiscordID: discordID,
		MatchID:   matchID,
		Type:      entities.BetTypeCombo,
		Legs: []entities.BetLeg{
			{Market: entities.MarketStrikerGoal, Label: "Striker scores", Odds: 1.5},
			{Market: entities.MarketHeaderGoal, Label: "Header goal", Odds: 1.8},
		},
		Amount:      amount,
		Odds:        2.7,
		Status:      entities.BetStatusPending,
		Description: "Striker scores + Header goal",
		PlacedAt:    time.Now(),
	}
}

// CreateTestOutcome creates a recorded home-win outcome for a match
func CreateTestOutcome(matchID string) *entities.MatchOutcome {
	return &entities.MatchOutcome{
		MatchID:    matchID,
		Result:     entities.ResultHome,
		HomeGoals:  2,
		AwayGoals:  1,
		Stats:      entities.MatchStats{StrikerGoal: true, TotalCorners: 6},
		RecordedAt: time.Now(),
	}
}

// CreateTestBalanceHistory creates a test balance history entry
func CreateTestBalanceHistory(discordID int64, transactionType entities.TransactionType) *entities.BalanceHistory {
	return &entities.BalanceHistory{
		DiscordID:       discordID,
		BalanceBefore:   1000,
		BalanceAfter:    800,
		ChangeAmount:    -200,
		TransactionType: transactionType,
		TransactionMetadata: map[string]any{
			"test": true,
		},
		CreatedAt: time.Now(),
	}
}
