package repository

import (
	"context"
	"testing"

	"ligabet/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateAndGet(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	repo := NewUserRepository(testDB.DB)
	ctx := context.Background()

	user, err := repo.Create(ctx, 111222333, "testuser", 1000)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, int64(111222333), user.DiscordID)
	assert.Equal(t, "testuser", user.Username)
	assert.Equal(t, int64(1000), user.Balance)
	assert.Equal(t, 0, user.TotalBets)
	assert.False(t, user.CreatedAt.IsZero())

	fetched, err := repo.GetByDiscordID(ctx, 111222333)
	require.NoError(t, err)
	require.NotNil(t, fetched)
	assert.Equal(t, user.DiscordID, fetched.DiscordID)
	assert.Equal(t, user.Balance, fetched.Balance)
}

func TestUserRepository_GetByDiscordID_NotFound(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	repo := NewUserRepository(testDB.DB)

	user, err := repo.GetByDiscordID(context.Background(), 999999999)
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestUserRepository_UpdateBalance(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	repo := NewUserRepository(testDB.DB)
	ctx := context.Background()

	_, err := repo.Create(ctx, 111, "alpha", 1000)
	require.NoError(t, err)

	err = repo.UpdateBalance(ctx, 111, 750)
	require.NoError(t, err)

	user, err := repo.GetByDiscordID(ctx, 111)
	require.NoError(t, err)
	assert.Equal(t, int64(750), user.Balance)
}

func TestUserRepository_UpdateBalance_UnknownUser(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	repo := NewUserRepository(testDB.DB)

	err := repo.UpdateBalance(context.Background(), 424242, 500)
	assert.Error(t, err)
}

func TestUserRepository_BetCounters(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	repo := NewUserRepository(testDB.DB)
	ctx := context.Background()

	_, err := repo.Create(ctx, 111, "alpha", 1000)
	require.NoError(t, err)

	require.NoError(t, repo.IncrementBetCounters(ctx, 111, 1))
	require.NoError(t, repo.IncrementBetCounters(ctx, 111, 1))

	require.NoError(t, repo.RecordBetResult(ctx, 111, true, 185))
	require.NoError(t, repo.RecordBetResult(ctx, 111, false, 0))

	user, err := repo.GetByDiscordID(ctx, 111)
	require.NoError(t, err)
	assert.Equal(t, 2, user.TotalBets)
	assert.Equal(t, 1, user.BetsWon)
	assert.Equal(t, 1, user.BetsLost)
	assert.Equal(t, int64(185), user.TotalWinnings)
}

func TestUserRepository_IncrementBetCounters_Refund(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	repo := NewUserRepository(testDB.DB)
	ctx := context.Background()

	_, err := repo.Create(ctx, 111, "alpha", 1000)
	require.NoError(t, err)

	require.NoError(t, repo.IncrementBetCounters(ctx, 111, 1))
	require.NoError(t, repo.IncrementBetCounters(ctx, 111, -1))

	user, err := repo.GetByDiscordID(ctx, 111)
	require.NoError(t, err)
	assert.Equal(t, 0, user.TotalBets)
}

func TestUserRepository_GetTopByBalance(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	repo := NewUserRepository(testDB.DB)
	ctx := context.Background()

	_, err := repo.Create(ctx, 1, "poor", 100)
	require.NoError(t, err)
	_, err = repo.Create(ctx, 2, "rich", 5000)
	require.NoError(t, err)
	_, err = repo.Create(ctx, 3, "middle", 1000)
	require.NoError(t, err)

	top, err := repo.GetTopByBalance(ctx, 2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "rich", top[0].Username)
	assert.Equal(t, "middle", top[1].Username)
}
