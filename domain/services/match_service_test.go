package services

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"ligabet/config"
	"ligabet/domain/entities"
	"ligabet/domain/testhelpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type matchFixture struct {
	userRepo           *testhelpers.MockUserRepository
	teamRepo           *testhelpers.MockTeamRepository
	matchRepo          *testhelpers.MockMatchRepository
	outcomeRepo        *testhelpers.MockOutcomeRepository
	betRepo            *testhelpers.MockBetRepository
	balanceHistoryRepo *testhelpers.MockBalanceHistoryRepository
	eventPublisher     *testhelpers.MockEventPublisher
}

func newMatchFixture() *matchFixture {
	return &matchFixture{
		userRepo:           new(testhelpers.MockUserRepository),
		teamRepo:           new(testhelpers.MockTeamRepository),
		matchRepo:          new(testhelpers.MockMatchRepository),
		outcomeRepo:        new(testhelpers.MockOutcomeRepository),
		betRepo:            new(testhelpers.MockBetRepository),
		balanceHistoryRepo: new(testhelpers.MockBalanceHistoryRepository),
		eventPublisher:     new(testhelpers.MockEventPublisher),
	}
}

func (f *matchFixture) service() *matchService {
	return NewMatchService(
		f.userRepo, f.teamRepo, f.matchRepo, f.outcomeRepo, f.betRepo,
		f.balanceHistoryRepo, f.eventPublisher,
		NewOddsService(0.08, 0.05),
		NewSimulationService(rand.New(rand.NewSource(1))),
	).(*matchService)
}

func TestMatchService_CreateMatch(t *testing.T) {
	config.SetTestConfig(config.NewTestConfig())
	defer config.ResetConfig()

	ctx := context.Background()
	f := newMatchFixture()

	teams := []*entities.Team{
		testTeam("Aimstar", entities.LeagueD1, 1, "WWWWW"),
		testTeam("Deportivo", entities.LeagueD1, 8, "DLWDD"),
	}
	teams[0].Tournament = entities.TournamentD1
	teams[1].Tournament = entities.TournamentD1

	f.teamRepo.On("GetAll", ctx).Return(teams, nil)
	f.matchRepo.On("Create", ctx, mock.MatchedBy(func(m *entities.Match) bool {
		return m.HomeTeam == "Aimstar (D1)" &&
			m.AwayTeam == "Deportivo (D1)" &&
			m.Tournament == entities.TournamentD1 &&
			m.Status == entities.MatchStatusUpcoming &&
			m.Odds.Home >= 1.01 && m.Odds.Draw >= 2.5 && m.Odds.Away >= 1.01
	})).Return(nil)
	f.eventPublisher.On("Publish", mock.AnythingOfType("events.MatchCreatedEvent")).Return(nil)

	match, err := f.service().CreateMatch(ctx, "aimstar", "deportivo", "", nil)

	require.NoError(t, err)
	assert.NotEmpty(t, match.ID)
	// Tournament defaults to the home team's competition
	assert.Equal(t, entities.TournamentD1, match.Tournament)
	// The leader at home should be clear favourite
	assert.Less(t, match.Odds.Home, match.Odds.Away)

	f.matchRepo.AssertExpectations(t)
	f.eventPublisher.AssertExpectations(t)
}

func TestMatchService_CreateMatch_TeamNotFound(t *testing.T) {
	config.SetTestConfig(config.NewTestConfig())
	defer config.ResetConfig()

	ctx := context.Background()
	f := newMatchFixture()

	f.teamRepo.On("GetAll", ctx).Return([]*entities.Team{
		testTeam("Aimstar", entities.LeagueD1, 1, "WWWWW"),
	}, nil)

	_, err := f.service().CreateMatch(ctx, "aimstar", "ghost", "", nil)

	assert.ErrorIs(t, err, ErrTeamNotFound)
	f.matchRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestMatchService_CreateMatch_SameTeam(t *testing.T) {
	config.SetTestConfig(config.NewTestConfig())
	defer config.ResetConfig()

	ctx := context.Background()
	f := newMatchFixture()

	f.teamRepo.On("GetAll", ctx).Return([]*entities.Team{
		testTeam("Aimstar", entities.LeagueD1, 1, "WWWWW"),
	}, nil)

	_, err := f.service().CreateMatch(ctx, "aimstar", "Aimstar (D1)", "", nil)

	assert.Error(t, err)
	f.matchRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestMatchService_CreateRandomMatch(t *testing.T) {
	config.SetTestConfig(config.NewTestConfig())
	defer config.ResetConfig()

	ctx := context.Background()
	f := newMatchFixture()

	teams := []*entities.Team{
		testTeam("Aimstar", entities.LeagueD1, 1, "WWWWW"),
		testTeam("Deportivo", entities.LeagueD1, 8, "DLWDD"),
		testTeam("Rejuntados", entities.LeagueD2, 3, "WWDLW"),
	}
	teams[0].Tournament = entities.TournamentD1
	teams[1].Tournament = entities.TournamentD1
	teams[2].Tournament = entities.TournamentD2

	f.teamRepo.On("GetAll", ctx).Return(teams, nil)
	f.matchRepo.On("Create", ctx, mock.MatchedBy(func(m *entities.Match) bool {
		return m.HomeTeam != m.AwayTeam &&
			m.Status == entities.MatchStatusUpcoming &&
			m.ScheduledAt != nil &&
			m.ScheduledAt.After(time.Now().UTC()) &&
			m.ScheduledAt.Before(time.Now().UTC().Add(24*time.Hour))
	})).Return(nil)
	f.eventPublisher.On("Publish", mock.AnythingOfType("events.MatchCreatedEvent")).Return(nil)

	match, err := f.service().CreateRandomMatch(ctx)

	require.NoError(t, err)
	assert.NotEmpty(t, match.ID)
	assert.NotEqual(t, match.HomeTeam, match.AwayTeam)
	f.matchRepo.AssertExpectations(t)
}

func TestMatchService_CreateRandomMatch_NeedsTwoTeams(t *testing.T) {
	config.SetTestConfig(config.NewTestConfig())
	defer config.ResetConfig()

	ctx := context.Background()
	f := newMatchFixture()

	f.teamRepo.On("GetAll", ctx).Return([]*entities.Team{
		testTeam("Aimstar", entities.LeagueD1, 1, "WWWWW"),
	}, nil)

	_, err := f.service().CreateRandomMatch(ctx)

	assert.Error(t, err)
	f.matchRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestMatchService_SetOdds(t *testing.T) {
	config.SetTestConfig(config.NewTestConfig())
	defer config.ResetConfig()

	ctx := context.Background()
	f := newMatchFixture()

	match := upcomingMatch()
	f.matchRepo.On("GetByID", ctx, "match-1").Return(match, nil)
	f.matchRepo.On("Update", ctx, match).Return(nil)

	updated, err := f.service().SetOdds(ctx, "match-1", entities.ThreeWayOdds{Home: 1.5, Draw: 4.0, Away: 6.0})

	require.NoError(t, err)
	assert.Equal(t, 1.5, updated.Odds.Home)
	f.matchRepo.AssertExpectations(t)
}

func TestMatchService_SetOdds_Validation(t *testing.T) {
	config.SetTestConfig(config.NewTestConfig())
	defer config.ResetConfig()

	ctx := context.Background()
	f := newMatchFixture()

	_, err := f.service().SetOdds(ctx, "match-1", entities.ThreeWayOdds{Home: 1.0, Draw: 4.0, Away: 6.0})
	assert.Error(t, err)
	f.matchRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)

	finished := upcomingMatch()
	finished.Status = entities.MatchStatusFinished
	f.matchRepo.On("GetByID", ctx, "match-1").Return(finished, nil)

	_, err = f.service().SetOdds(ctx, "match-1", entities.ThreeWayOdds{Home: 1.5, Draw: 4.0, Away: 6.0})
	assert.ErrorIs(t, err, entities.ErrMatchFinished)
}

func TestMatchService_FinalizeMatch_SettlesBets(t *testing.T) {
	config.SetTestConfig(config.NewTestConfig())
	defer config.ResetConfig()

	ctx := context.Background()
	f := newMatchFixture()

	match := upcomingMatch()
	outcome := &entities.MatchOutcome{Result: entities.ResultHome, HomeGoals: 2, AwayGoals: 0}

	winner := pendingBet(entities.BetTypeSimple, 100, 1.85)
	winner.DiscordID = 111
	winner.Pick = resultPtr(entities.ResultHome)

	loser := pendingBet(entities.BetTypeSimple, 50, 4.2)
	loser.ID = "bet-2"
	loser.DiscordID = 222
	loser.Pick = resultPtr(entities.ResultDraw)

	f.matchRepo.On("GetByID", ctx, "match-1").Return(match, nil)
	f.matchRepo.On("Update", ctx, mock.MatchedBy(func(m *entities.Match) bool {
		return m.Status == entities.MatchStatusFinished
	})).Return(nil)
	f.outcomeRepo.On("Record", ctx, mock.MatchedBy(func(o *entities.MatchOutcome) bool {
		return o.MatchID == "match-1" && o.Manual && !o.RecordedAt.IsZero()
	})).Return(nil)
	f.betRepo.On("GetPendingByMatch", ctx, "match-1").Return([]*entities.Bet{winner, loser}, nil)

	f.betRepo.On("Update", ctx, winner).Return(nil)
	f.betRepo.On("Update", ctx, loser).Return(nil)
	// 100 * 1.85 = 185 paid out to the winner
	f.userRepo.On("RecordBetResult", ctx, int64(111), true, int64(185)).Return(nil)
	f.userRepo.On("RecordBetResult", ctx, int64(222), false, int64(0)).Return(nil)

	winningUser := &entities.User{DiscordID: 111, Balance: 900}
	f.userRepo.On("GetByDiscordID", ctx, int64(111)).Return(winningUser, nil)
	f.userRepo.On("UpdateBalance", ctx, int64(111), int64(1085)).Return(nil)
	f.balanceHistoryRepo.On("Record", ctx, mock.MatchedBy(func(h *entities.BalanceHistory) bool {
		return h.DiscordID == 111 &&
			h.ChangeAmount == 185 &&
			h.TransactionType == entities.TransactionTypeBetWin
	})).Return(nil)

	f.eventPublisher.On("Publish", mock.AnythingOfType("events.BalanceChangeEvent")).Return(nil)
	f.eventPublisher.On("Publish", mock.AnythingOfType("events.MatchFinalizedEvent")).Return(nil)

	err := f.service().FinalizeMatch(ctx, "match-1", outcome)

	require.NoError(t, err)
	assert.Equal(t, entities.BetStatusWon, winner.Status)
	assert.Equal(t, entities.BetStatusLost, loser.Status)
	assert.Equal(t, entities.MatchStatusFinished, match.Status)

	f.matchRepo.AssertExpectations(t)
	f.outcomeRepo.AssertExpectations(t)
	f.betRepo.AssertExpectations(t)
	f.userRepo.AssertExpectations(t)
	f.balanceHistoryRepo.AssertExpectations(t)
}

func TestMatchService_FinalizeMatch_AlreadyFinished(t *testing.T) {
	config.SetTestConfig(config.NewTestConfig())
	defer config.ResetConfig()

	ctx := context.Background()
	f := newMatchFixture()

	match := upcomingMatch()
	match.Status = entities.MatchStatusFinished
	f.matchRepo.On("GetByID", ctx, "match-1").Return(match, nil)

	err := f.service().FinalizeMatch(ctx, "match-1", &entities.MatchOutcome{
		Result: entities.ResultHome, HomeGoals: 1, AwayGoals: 0,
	})

	assert.ErrorIs(t, err, entities.ErrMatchFinished)
	f.outcomeRepo.AssertNotCalled(t, "Record", mock.Anything, mock.Anything)
}

func TestMatchService_FinalizeMatch_InconsistentOutcome(t *testing.T) {
	config.SetTestConfig(config.NewTestConfig())
	defer config.ResetConfig()

	ctx := context.Background()
	f := newMatchFixture()

	f.matchRepo.On("GetByID", ctx, "match-1").Return(upcomingMatch(), nil)

	err := f.service().FinalizeMatch(ctx, "match-1", &entities.MatchOutcome{
		Result: entities.ResultHome, HomeGoals: 1, AwayGoals: 1,
	})

	assert.Error(t, err)
	f.matchRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestMatchService_SimulateMatch(t *testing.T) {
	config.SetTestConfig(config.NewTestConfig())
	defer config.ResetConfig()

	ctx := context.Background()
	f := newMatchFixture()

	match := upcomingMatch()
	home := testTeam("Aimstar", entities.LeagueD1, 1, "WWWWW")
	away := testTeam("Rival", entities.LeagueD1, 8, "DLWDD")

	f.matchRepo.On("GetByID", ctx, "match-1").Return(match, nil)
	f.teamRepo.On("GetByName", ctx, "Aimstar", entities.LeagueD1).Return(home, nil)
	f.teamRepo.On("GetByName", ctx, "Rival", entities.LeagueD1).Return(away, nil)
	f.matchRepo.On("Update", ctx, match).Return(nil)
	f.outcomeRepo.On("Record", ctx, mock.MatchedBy(func(o *entities.MatchOutcome) bool {
		return o.MatchID == "match-1" && !o.Manual && o.Validate() == nil
	})).Return(nil)
	f.betRepo.On("GetPendingByMatch", ctx, "match-1").Return([]*entities.Bet{}, nil)
	f.eventPublisher.On("Publish", mock.AnythingOfType("events.MatchFinalizedEvent")).Return(nil)

	outcome, err := f.service().SimulateMatch(ctx, "match-1")

	require.NoError(t, err)
	assert.Equal(t, "match-1", outcome.MatchID)
	assert.Equal(t, entities.MatchStatusFinished, match.Status)
	f.outcomeRepo.AssertExpectations(t)
}

func TestMatchService_SimulateMatch_MissingTeam(t *testing.T) {
	config.SetTestConfig(config.NewTestConfig())
	defer config.ResetConfig()

	ctx := context.Background()
	f := newMatchFixture()

	f.matchRepo.On("GetByID", ctx, "match-1").Return(upcomingMatch(), nil)
	f.teamRepo.On("GetByName", ctx, "Aimstar", entities.LeagueD1).Return(nil, nil)
	f.teamRepo.On("GetByName", ctx, "Rival", entities.LeagueD1).Return(testTeam("Rival", entities.LeagueD1, 8, "DLWDD"), nil)

	_, err := f.service().SimulateMatch(ctx, "match-1")

	assert.ErrorIs(t, err, ErrTeamNotFound)
	f.matchRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestMatchService_DeleteMatch_RefundsPendingBets(t *testing.T) {
	config.SetTestConfig(config.NewTestConfig())
	defer config.ResetConfig()

	ctx := context.Background()
	f := newMatchFixture()

	match := upcomingMatch()
	bet := pendingBet(entities.BetTypeSimple, 150, 2.0)
	bet.DiscordID = 111
	user := &entities.User{DiscordID: 111, Balance: 850, TotalBets: 1}

	f.matchRepo.On("GetByID", ctx, "match-1").Return(match, nil)
	f.betRepo.On("GetPendingByMatch", ctx, "match-1").Return([]*entities.Bet{bet}, nil)
	f.userRepo.On("GetByDiscordID", ctx, int64(111)).Return(user, nil)
	f.userRepo.On("UpdateBalance", ctx, int64(111), int64(1000)).Return(nil)
	f.balanceHistoryRepo.On("Record", ctx, mock.MatchedBy(func(h *entities.BalanceHistory) bool {
		return h.ChangeAmount == 150 && h.TransactionType == entities.TransactionTypeBetRefund
	})).Return(nil)
	f.userRepo.On("IncrementBetCounters", ctx, int64(111), -1).Return(nil)
	f.betRepo.On("DeleteByMatch", ctx, "match-1").Return(1, nil)
	f.matchRepo.On("Delete", ctx, "match-1").Return(nil)

	refunded, err := f.service().DeleteMatch(ctx, "match-1")

	require.NoError(t, err)
	assert.Equal(t, 1, refunded)
	f.userRepo.AssertExpectations(t)
	f.betRepo.AssertExpectations(t)
	f.matchRepo.AssertExpectations(t)
}

func TestMatchService_DeleteMatch_FinishedMatch(t *testing.T) {
	config.SetTestConfig(config.NewTestConfig())
	defer config.ResetConfig()

	ctx := context.Background()
	f := newMatchFixture()

	match := upcomingMatch()
	match.Status = entities.MatchStatusFinished
	f.matchRepo.On("GetByID", ctx, "match-1").Return(match, nil)

	_, err := f.service().DeleteMatch(ctx, "match-1")

	assert.ErrorIs(t, err, entities.ErrMatchFinished)
	f.matchRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestMatchService_SimulateDue(t *testing.T) {
	config.SetTestConfig(config.NewTestConfig())
	defer config.ResetConfig()

	ctx := context.Background()
	f := newMatchFixture()

	now := time.Now().UTC()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	due := upcomingMatch()
	due.ScheduledAt = &past

	notYet := upcomingMatch()
	notYet.ID = "match-2"
	notYet.ScheduledAt = &future

	unscheduled := upcomingMatch()
	unscheduled.ID = "match-3"

	home := testTeam("Aimstar", entities.LeagueD1, 1, "WWWWW")
	away := testTeam("Rival", entities.LeagueD1, 8, "DLWDD")

	f.matchRepo.On("ListByStatus", ctx, entities.MatchStatusUpcoming).
		Return([]*entities.Match{due, notYet, unscheduled}, nil)
	f.matchRepo.On("GetByID", ctx, "match-1").Return(due, nil)
	f.teamRepo.On("GetByName", ctx, "Aimstar", entities.LeagueD1).Return(home, nil)
	f.teamRepo.On("GetByName", ctx, "Rival", entities.LeagueD1).Return(away, nil)
	f.matchRepo.On("Update", ctx, due).Return(nil)
	f.outcomeRepo.On("Record", ctx, mock.Anything).Return(nil)
	f.betRepo.On("GetPendingByMatch", ctx, "match-1").Return([]*entities.Bet{}, nil)
	f.eventPublisher.On("Publish", mock.AnythingOfType("events.MatchFinalizedEvent")).Return(nil)

	finished, err := f.service().SimulateDue(ctx, now)

	require.NoError(t, err)
	assert.Equal(t, 1, finished)
	f.matchRepo.AssertNotCalled(t, "GetByID", ctx, "match-2")
	f.matchRepo.AssertNotCalled(t, "GetByID", ctx, "match-3")
}

func TestMatchService_GetMatch_NotFound(t *testing.T) {
	config.SetTestConfig(config.NewTestConfig())
	defer config.ResetConfig()

	ctx := context.Background()
	f := newMatchFixture()

	f.matchRepo.On("GetByID", ctx, "missing").Return(nil, nil)

	_, err := f.service().GetMatch(ctx, "missing")

	assert.ErrorIs(t, err, entities.ErrMatchNotFound)
}
