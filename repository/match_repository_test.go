package repository

import (
	"context"
	"testing"
	"time"

	"ligabet/domain/entities"
	"ligabet/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchRepository_CreateAndGet(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	repo := NewMatchRepository(testDB.DB)
	ctx := context.Background()

	match := testutil.CreateTestMatch("Aimstar (D1)", "Rival (D1)")
	scheduled := time.Now().Add(2 * time.Hour).UTC().Truncate(time.Second)
	match.ScheduledAt = &scheduled
	require.NoError(t, repo.Create(ctx, match))

	fetched, err := repo.GetByID(ctx, match.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched)
	assert.Equal(t, "Aimstar (D1)", fetched.HomeTeam)
	assert.Equal(t, "Rival (D1)", fetched.AwayTeam)
	assert.Equal(t, entities.TournamentD1, fetched.Tournament)
	assert.Equal(t, 1.85, fetched.Odds.Home)
	assert.Equal(t, 3.6, fetched.Odds.Draw)
	assert.Equal(t, 4.2, fetched.Odds.Away)
	assert.Equal(t, entities.MatchStatusUpcoming, fetched.Status)
	require.NotNil(t, fetched.ScheduledAt)
	assert.WithinDuration(t, scheduled, *fetched.ScheduledAt, time.Second)
}

func TestMatchRepository_GetByID_NotFound(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	repo := NewMatchRepository(testDB.DB)

	match, err := repo.GetByID(context.Background(), "11111111-1111-1111-1111-111111111111")
	require.NoError(t, err)
	assert.Nil(t, match)
}

func TestMatchRepository_Update(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	repo := NewMatchRepository(testDB.DB)
	ctx := context.Background()

	match := testutil.CreateTestMatch("Aimstar (D1)", "Rival (D1)")
	require.NoError(t, repo.Create(ctx, match))

	match.Odds = entities.ThreeWayOdds{Home: 2.1, Draw: 3.2, Away: 3.4}
	match.Status = entities.MatchStatusFinished
	require.NoError(t, repo.Update(ctx, match))

	fetched, err := repo.GetByID(ctx, match.ID)
	require.NoError(t, err)
	assert.Equal(t, 2.1, fetched.Odds.Home)
	assert.Equal(t, entities.MatchStatusFinished, fetched.Status)
}

func TestMatchRepository_ListByStatus(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	repo := NewMatchRepository(testDB.DB)
	ctx := context.Background()

	open := testutil.CreateTestMatch("Aimstar (D1)", "Rival (D1)")
	require.NoError(t, repo.Create(ctx, open))

	finished := testutil.CreateTestMatch("Third (D1)", "Fourth (D1)")
	finished.Status = entities.MatchStatusFinished
	require.NoError(t, repo.Create(ctx, finished))

	upcoming, err := repo.ListByStatus(ctx, entities.MatchStatusUpcoming)
	require.NoError(t, err)
	require.Len(t, upcoming, 1)
	assert.Equal(t, open.ID, upcoming[0].ID)
}

func TestMatchRepository_Delete_CascadesBets(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	repo := NewMatchRepository(testDB.DB)
	ctx := context.Background()

	_, err := NewUserRepository(testDB.DB).Create(ctx, 111, "alpha", 1000)
	require.NoError(t, err)

	match := testutil.CreateTestMatch("Aimstar (D1)", "Rival (D1)")
	require.NoError(t, repo.Create(ctx, match))

	betRepo := NewBetRepository(testDB.DB)
	require.NoError(t, betRepo.Create(ctx, testutil.CreateTestBet(111, match.ID, 100)))

	require.NoError(t, repo.Delete(ctx, match.ID))

	fetched, err := repo.GetByID(ctx, match.ID)
	require.NoError(t, err)
	assert.Nil(t, fetched)

	bets, err := betRepo.GetByMatch(ctx, match.ID)
	require.NoError(t, err)
	assert.Empty(t, bets)
}

func TestOutcomeRepository_RecordAndGet(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	matchRepo := NewMatchRepository(testDB.DB)
	repo := NewOutcomeRepository(testDB.DB)
	ctx := context.Background()

	match := testutil.CreateTestMatch("Aimstar (D1)", "Rival (D1)")
	require.NoError(t, matchRepo.Create(ctx, match))

	outcome := testutil.CreateTestOutcome(match.ID)
	require.NoError(t, repo.Record(ctx, outcome))

	fetched, err := repo.GetByMatchID(ctx, match.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched)
	assert.Equal(t, entities.ResultHome, fetched.Result)
	assert.Equal(t, 2, fetched.HomeGoals)
	assert.Equal(t, 1, fetched.AwayGoals)
	assert.True(t, fetched.Stats.StrikerGoal)
	assert.Equal(t, 6, fetched.Stats.TotalCorners)
	assert.False(t, fetched.Manual)
}

func TestOutcomeRepository_GetByMatchID_NotFound(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	repo := NewOutcomeRepository(testDB.DB)

	outcome, err := repo.GetByMatchID(context.Background(), "11111111-1111-1111-1111-111111111111")
	require.NoError(t, err)
	assert.Nil(t, outcome)
}
