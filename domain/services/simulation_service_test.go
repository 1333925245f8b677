package services

import (
	"math/rand"
	"testing"

	"ligabet/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulationService_Simulate_Deterministic(t *testing.T) {
	home := testTeam("Aimstar", entities.LeagueD1, 3, "WWDLW")
	away := testTeam("Rival", entities.LeagueD1, 7, "DLWDD")

	first := NewSimulationService(rand.New(rand.NewSource(42))).Simulate(home, away)
	second := NewSimulationService(rand.New(rand.NewSource(42))).Simulate(home, away)

	assert.Equal(t, first, second)
}

func TestSimulationService_Simulate_ConsistentOutcomes(t *testing.T) {
	svc := NewSimulationService(rand.New(rand.NewSource(7)))

	home := testTeam("Aimstar", entities.LeagueD1, 3, "WWDLW")
	away := testTeam("Deportivo", entities.LeagueD2, 12, "LDWLL")

	for i := 0; i < 1000; i++ {
		outcome := svc.Simulate(home, away)

		require.NoError(t, outcome.Validate())
		assert.LessOrEqual(t, outcome.HomeGoals, 5)
		assert.LessOrEqual(t, outcome.AwayGoals, 5)
		// Simulated matches carry no prop stats
		assert.Equal(t, entities.MatchStats{}, outcome.Stats)
		assert.False(t, outcome.Manual)
	}
}

func TestSimulationService_Simulate_StrongSideWinsMore(t *testing.T) {
	svc := NewSimulationService(rand.New(rand.NewSource(99)))

	leader := testTeam("Aimstar", entities.LeagueD1, 1, "WWWWW")
	tailender := testTeam("Bottom", entities.LeagueD2, 20, "LLLLL")

	homeWins, awayWins := 0, 0
	for i := 0; i < 500; i++ {
		switch svc.Simulate(leader, tailender).Result {
		case entities.ResultHome:
			homeWins++
		case entities.ResultAway:
			awayWins++
		}
	}

	assert.Greater(t, homeWins, awayWins)
	assert.Greater(t, homeWins, 300)
}

func TestSimulationService_Simulate_MismatchScoresAreEmphatic(t *testing.T) {
	svc := NewSimulationService(rand.New(rand.NewSource(5)))

	leader := testTeam("Aimstar", entities.LeagueD1, 1, "WWWWW")
	tailender := testTeam("Bottom", entities.LeagueD2, 20, "LLLLL")

	for i := 0; i < 200; i++ {
		outcome := svc.Simulate(leader, tailender)
		if outcome.Result == entities.ResultHome {
			assert.GreaterOrEqual(t, outcome.HomeGoals, 2)
			assert.LessOrEqual(t, outcome.AwayGoals, 1)
		}
	}
}

func TestSimulationService_NilSourceSeedsFromClock(t *testing.T) {
	svc := NewSimulationService(nil)

	home := testTeam("Aimstar", entities.LeagueD1, 3, "WWDLW")
	away := testTeam("Rival", entities.LeagueD1, 7, "DLWDD")

	outcome := svc.Simulate(home, away)
	require.NotNil(t, outcome)
	assert.NoError(t, outcome.Validate())
}

func TestSimulationStrength_Bounds(t *testing.T) {
	strongest := testTeam("Aimstar", entities.LeagueD1, 1, "WWWWW")
	weakest := testTeam("Bottom", entities.LeagueD3, 20, "LLLLL")

	assert.Equal(t, 150.0, simulationStrength(strongest))
	assert.Equal(t, 15.0, simulationStrength(weakest))
}

func TestSimulationStrength_StreaksMatter(t *testing.T) {
	// Same results in a different order score differently: the streak
	// counters key off the tail of the form string
	tailWins := testTeam("TailWins", entities.LeagueD1, 8, "LLWWW")
	tailLosses := testTeam("TailLosses", entities.LeagueD1, 8, "WWWLL")

	assert.Greater(t, simulationStrength(tailWins), simulationStrength(tailLosses))
}

func TestSimulationInterLeagueFactor(t *testing.T) {
	// A top D1 side against a bottom D2 side gets the biggest boost
	bigD1, bigD2 := simulationInterLeagueFactor(1, 20)
	smallD1, smallD2 := simulationInterLeagueFactor(15, 1)

	assert.Greater(t, bigD1, smallD1)
	assert.Less(t, bigD2, smallD2)
	assert.GreaterOrEqual(t, bigD2, 0.3)
	assert.GreaterOrEqual(t, smallD1, 1.2)
}
