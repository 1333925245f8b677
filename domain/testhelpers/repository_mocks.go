package testhelpers

import (
	"context"

	"ligabet/domain/entities"
	"ligabet/domain/events"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByDiscordID(ctx context.Context, discordID int64) (*entities.User, error) {
	args := m.Called(ctx, discordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, discordID int64, username string, initialBalance int64) (*entities.User, error) {
	args := m.Called(ctx, discordID, username, initialBalance)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) UpdateBalance(ctx context.Context, discordID int64, newBalance int64) error {
	args := m.Called(ctx, discordID, newBalance)
	return args.Error(0)
}

func (m *MockUserRepository) IncrementBetCounters(ctx context.Context, discordID int64, delta int) error {
	args := m.Called(ctx, discordID, delta)
	return args.Error(0)
}

func (m *MockUserRepository) RecordBetResult(ctx context.Context, discordID int64, won bool, payout int64) error {
	args := m.Called(ctx, discordID, won, payout)
	return args.Error(0)
}

func (m *MockUserRepository) GetTopByBalance(ctx context.Context, limit int) ([]*entities.User, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetAll(ctx context.Context) ([]*entities.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.User), args.Error(1)
}

// MockTeamRepository is a mock implementation of TeamRepository
type MockTeamRepository struct {
	mock.Mock
}

func (m *MockTeamRepository) Upsert(ctx context.Context, team *entities.Team) error {
	args := m.Called(ctx, team)
	return args.Error(0)
}

func (m *MockTeamRepository) GetByName(ctx context.Context, name string, league entities.League) (*entities.Team, error) {
	args := m.Called(ctx, name, league)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Team), args.Error(1)
}

func (m *MockTeamRepository) GetAll(ctx context.Context) ([]*entities.Team, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Team), args.Error(1)
}

func (m *MockTeamRepository) GetByLeague(ctx context.Context, league entities.League) ([]*entities.Team, error) {
	args := m.Called(ctx, league)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Team), args.Error(1)
}

// MockMatchRepository is a mock implementation of MatchRepository
type MockMatchRepository struct {
	mock.Mock
}

func (m *MockMatchRepository) Create(ctx context.Context, match *entities.Match) error {
	args := m.Called(ctx, match)
	return args.Error(0)
}

func (m *MockMatchRepository) GetByID(ctx context.Context, id string) (*entities.Match, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Match), args.Error(1)
}

func (m *MockMatchRepository) Update(ctx context.Context, match *entities.Match) error {
	args := m.Called(ctx, match)
	return args.Error(0)
}

func (m *MockMatchRepository) ListByStatus(ctx context.Context, status entities.MatchStatus) ([]*entities.Match, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Match), args.Error(1)
}

func (m *MockMatchRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockOutcomeRepository is a mock implementation of OutcomeRepository
type MockOutcomeRepository struct {
	mock.Mock
}

func (m *MockOutcomeRepository) Record(ctx context.Context, outcome *entities.MatchOutcome) error {
	args := m.Called(ctx, outcome)
	return args.Error(0)
}

func (m *MockOutcomeRepository) GetByMatchID(ctx context.Context, matchID string) (*entities.MatchOutcome, error) {
	args := m.Called(ctx, matchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.MatchOutcome), args.Error(1)
}

// MockBetRepository is a mock implementation of BetRepository
type MockBetRepository struct {
	mock.Mock
}

func (m *MockBetRepository) Create(ctx context.Context, bet *entities.Bet) error {
	args := m.Called(ctx, bet)
	return args.Error(0)
}

func (m *MockBetRepository) GetByID(ctx context.Context, id string) (*entities.Bet, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Bet), args.Error(1)
}

func (m *MockBetRepository) GetByMatch(ctx context.Context, matchID string) ([]*entities.Bet, error) {
	args := m.Called(ctx, matchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Bet), args.Error(1)
}

func (m *MockBetRepository) GetPendingByMatch(ctx context.Context, matchID string) ([]*entities.Bet, error) {
	args := m.Called(ctx, matchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Bet), args.Error(1)
}

func (m *MockBetRepository) GetByUser(ctx context.Context, discordID int64, limit int) ([]*entities.Bet, error) {
	args := m.Called(ctx, discordID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Bet), args.Error(1)
}

func (m *MockBetRepository) Update(ctx context.Context, bet *entities.Bet) error {
	args := m.Called(ctx, bet)
	return args.Error(0)
}

func (m *MockBetRepository) DeleteByMatch(ctx context.Context, matchID string) (int, error) {
	args := m.Called(ctx, matchID)
	return args.Int(0), args.Error(1)
}

// MockBalanceHistoryRepository is a mock implementation of BalanceHistoryRepository
type MockBalanceHistoryRepository struct {
	mock.Mock
}

func (m *MockBalanceHistoryRepository) Record(ctx context.Context, history *entities.BalanceHistory) error {
	args := m.Called(ctx, history)
	return args.Error(0)
}

func (m *MockBalanceHistoryRepository) GetByUser(ctx context.Context, discordID int64, limit int) ([]*entities.BalanceHistory, error) {
	args := m.Called(ctx, discordID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.BalanceHistory), args.Error(1)
}

// MockSettingsRepository is a mock implementation of SettingsRepository
type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) Get(ctx context.Context) (*entities.BotSettings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.BotSettings), args.Error(1)
}

func (m *MockSettingsRepository) SetBettingPaused(ctx context.Context, paused bool) error {
	args := m.Called(ctx, paused)
	return args.Error(0)
}

// MockEventPublisher is a mock implementation of EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(event events.Event) error {
	args := m.Called(event)
	return args.Error(0)
}
