package services

import (
	"context"
	"testing"

	"ligabet/config"
	"ligabet/domain/entities"
	"ligabet/domain/testhelpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserService_GetOrCreateUser_Existing(t *testing.T) {
	config.SetTestConfig(config.NewTestConfig())
	defer config.ResetConfig()

	ctx := context.Background()

	mockUserRepo := new(testhelpers.MockUserRepository)
	mockBalanceHistoryRepo := new(testhelpers.MockBalanceHistoryRepository)
	mockEventPublisher := new(testhelpers.MockEventPublisher)

	service := NewUserService(mockUserRepo, mockBalanceHistoryRepo, mockEventPublisher)

	existing := &entities.User{DiscordID: 123456, Username: "punter", Balance: 750}
	mockUserRepo.On("GetByDiscordID", ctx, int64(123456)).Return(existing, nil)

	user, err := service.GetOrCreateUser(ctx, 123456, "punter")

	require.NoError(t, err)
	assert.Equal(t, existing, user)
	mockUserRepo.AssertExpectations(t)
	mockUserRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUserService_GetOrCreateUser_CreatesWithStartingBalance(t *testing.T) {
	config.SetTestConfig(config.NewTestConfig())
	defer config.ResetConfig()

	ctx := context.Background()

	mockUserRepo := new(testhelpers.MockUserRepository)
	mockBalanceHistoryRepo := new(testhelpers.MockBalanceHistoryRepository)
	mockEventPublisher := new(testhelpers.MockEventPublisher)

	service := NewUserService(mockUserRepo, mockBalanceHistoryRepo, mockEventPublisher)

	created := &entities.User{DiscordID: 123456, Username: "punter", Balance: 1000}
	mockUserRepo.On("GetByDiscordID", ctx, int64(123456)).Return(nil, nil)
	mockUserRepo.On("Create", ctx, int64(123456), "punter", int64(1000)).Return(created, nil)

	mockBalanceHistoryRepo.On("Record", ctx, mock.MatchedBy(func(h *entities.BalanceHistory) bool {
		return h.DiscordID == 123456 &&
			h.BalanceBefore == 0 &&
			h.BalanceAfter == 1000 &&
			h.ChangeAmount == 1000 &&
			h.TransactionType == entities.TransactionTypeInitial
	})).Return(nil)

	mockEventPublisher.On("Publish", mock.AnythingOfType("events.UserCreatedEvent")).Return(nil)

	user, err := service.GetOrCreateUser(ctx, 123456, "punter")

	require.NoError(t, err)
	assert.Equal(t, int64(1000), user.Balance)
	mockUserRepo.AssertExpectations(t)
	mockBalanceHistoryRepo.AssertExpectations(t)
	mockEventPublisher.AssertExpectations(t)
}

func TestUserService_TransferBetweenUsers(t *testing.T) {
	config.SetTestConfig(config.NewTestConfig())
	defer config.ResetConfig()

	ctx := context.Background()

	mockUserRepo := new(testhelpers.MockUserRepository)
	mockBalanceHistoryRepo := new(testhelpers.MockBalanceHistoryRepository)
	mockEventPublisher := new(testhelpers.MockEventPublisher)

	service := NewUserService(mockUserRepo, mockBalanceHistoryRepo, mockEventPublisher)

	sender := &entities.User{DiscordID: 111, Username: "sender", Balance: 500}
	recipient := &entities.User{DiscordID: 222, Username: "recipient", Balance: 100}

	mockUserRepo.On("GetByDiscordID", ctx, int64(111)).Return(sender, nil)
	mockUserRepo.On("GetByDiscordID", ctx, int64(222)).Return(recipient, nil)
	mockUserRepo.On("UpdateBalance", ctx, int64(111), int64(300)).Return(nil)
	mockUserRepo.On("UpdateBalance", ctx, int64(222), int64(300)).Return(nil)

	mockBalanceHistoryRepo.On("Record", ctx, mock.MatchedBy(func(h *entities.BalanceHistory) bool {
		return h.DiscordID == 111 &&
			h.ChangeAmount == -200 &&
			h.TransactionType == entities.TransactionTypeTransferOut
	})).Return(nil)
	mockBalanceHistoryRepo.On("Record", ctx, mock.MatchedBy(func(h *entities.BalanceHistory) bool {
		return h.DiscordID == 222 &&
			h.ChangeAmount == 200 &&
			h.TransactionType == entities.TransactionTypeTransferIn
	})).Return(nil)

	mockEventPublisher.On("Publish", mock.AnythingOfType("events.BalanceChangeEvent")).Return(nil).Twice()

	err := service.TransferBetweenUsers(ctx, 111, 222, 200, "sender", "recipient")

	require.NoError(t, err)
	assert.Equal(t, int64(300), sender.Balance)
	assert.Equal(t, int64(300), recipient.Balance)
	mockUserRepo.AssertExpectations(t)
	mockBalanceHistoryRepo.AssertExpectations(t)
	mockEventPublisher.AssertExpectations(t)
}

func TestUserService_TransferBetweenUsers_Validation(t *testing.T) {
	config.SetTestConfig(config.NewTestConfig())
	defer config.ResetConfig()

	ctx := context.Background()

	mockUserRepo := new(testhelpers.MockUserRepository)
	mockBalanceHistoryRepo := new(testhelpers.MockBalanceHistoryRepository)
	mockEventPublisher := new(testhelpers.MockEventPublisher)

	service := NewUserService(mockUserRepo, mockBalanceHistoryRepo, mockEventPublisher)

	err := service.TransferBetweenUsers(ctx, 111, 222, 0, "a", "b")
	assert.Error(t, err)

	err = service.TransferBetweenUsers(ctx, 111, 111, 100, "a", "a")
	assert.Error(t, err)

	mockUserRepo.AssertNotCalled(t, "UpdateBalance", mock.Anything, mock.Anything, mock.Anything)
}

func TestUserService_TransferBetweenUsers_InsufficientBalance(t *testing.T) {
	config.SetTestConfig(config.NewTestConfig())
	defer config.ResetConfig()

	ctx := context.Background()

	mockUserRepo := new(testhelpers.MockUserRepository)
	mockBalanceHistoryRepo := new(testhelpers.MockBalanceHistoryRepository)
	mockEventPublisher := new(testhelpers.MockEventPublisher)

	service := NewUserService(mockUserRepo, mockBalanceHistoryRepo, mockEventPublisher)

	sender := &entities.User{DiscordID: 111, Balance: 50}
	recipient := &entities.User{DiscordID: 222, Balance: 100}
	mockUserRepo.On("GetByDiscordID", ctx, int64(111)).Return(sender, nil)
	mockUserRepo.On("GetByDiscordID", ctx, int64(222)).Return(recipient, nil)

	err := service.TransferBetweenUsers(ctx, 111, 222, 200, "a", "b")

	assert.ErrorIs(t, err, entities.ErrInsufficientBalance)
	mockUserRepo.AssertNotCalled(t, "UpdateBalance", mock.Anything, mock.Anything, mock.Anything)
}

func TestUserService_Grant(t *testing.T) {
	config.SetTestConfig(config.NewTestConfig())
	defer config.ResetConfig()

	ctx := context.Background()

	mockUserRepo := new(testhelpers.MockUserRepository)
	mockBalanceHistoryRepo := new(testhelpers.MockBalanceHistoryRepository)
	mockEventPublisher := new(testhelpers.MockEventPublisher)

	service := NewUserService(mockUserRepo, mockBalanceHistoryRepo, mockEventPublisher)

	user := &entities.User{DiscordID: 123456, Balance: 100}
	mockUserRepo.On("GetByDiscordID", ctx, int64(123456)).Return(user, nil)
	mockUserRepo.On("UpdateBalance", ctx, int64(123456), int64(600)).Return(nil)

	mockBalanceHistoryRepo.On("Record", ctx, mock.MatchedBy(func(h *entities.BalanceHistory) bool {
		return h.ChangeAmount == 500 && h.TransactionType == entities.TransactionTypeAdminGrant
	})).Return(nil)

	mockEventPublisher.On("Publish", mock.AnythingOfType("events.BalanceChangeEvent")).Return(nil)

	granted, err := service.Grant(ctx, 123456, "punter", 500)

	require.NoError(t, err)
	assert.Equal(t, int64(600), granted.Balance)
	mockUserRepo.AssertExpectations(t)

	_, err = service.Grant(ctx, 123456, "punter", -10)
	assert.Error(t, err)
}

func TestUserService_GetLeaderboard(t *testing.T) {
	config.SetTestConfig(config.NewTestConfig())
	defer config.ResetConfig()

	ctx := context.Background()

	mockUserRepo := new(testhelpers.MockUserRepository)
	mockBalanceHistoryRepo := new(testhelpers.MockBalanceHistoryRepository)
	mockEventPublisher := new(testhelpers.MockEventPublisher)

	service := NewUserService(mockUserRepo, mockBalanceHistoryRepo, mockEventPublisher)

	top := []*entities.User{
		{DiscordID: 1, Balance: 5000},
		{DiscordID: 2, Balance: 3000},
	}
	mockUserRepo.On("GetTopByBalance", ctx, 10).Return(top, nil)

	users, err := service.GetLeaderboard(ctx, 10)

	require.NoError(t, err)
	assert.Equal(t, top, users)
	mockUserRepo.AssertExpectations(t)
}
