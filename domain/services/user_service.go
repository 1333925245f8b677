package services

import (
	"context"
	"errors"
	"fmt"

	"ligabet/config"
	"ligabet/domain/entities"
	"ligabet/domain/events"
	"ligabet/domain/interfaces"

	log "github.com/sirupsen/logrus"
)

type userService struct {
	userRepo           interfaces.UserRepository
	balanceHistoryRepo interfaces.BalanceHistoryRepository
	eventPublisher     interfaces.EventPublisher
}

// NewUserService creates a new user service
func NewUserService(userRepo interfaces.UserRepository, balanceHistoryRepo interfaces.BalanceHistoryRepository, eventPublisher interfaces.EventPublisher) interfaces.UserService {
	return &userService{
		userRepo:           userRepo,
		balanceHistoryRepo: balanceHistoryRepo,
		eventPublisher:     eventPublisher,
	}
}

func (s *userService) GetOrCreateUser(ctx context.Context, discordID int64, username string) (*entities.User, error) {
	user, err := s.userRepo.GetByDiscordID(ctx, discordID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user != nil {
		return user, nil
	}

	initialBalance := config.Get().StartingBalance
	user, err = s.userRepo.Create(ctx, discordID, username, initialBalance)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	history := &entities.BalanceHistory{
		DiscordID:       discordID,
		BalanceBefore:   0,
		BalanceAfter:    initialBalance,
		ChangeAmount:    initialBalance,
		TransactionType: entities.TransactionTypeInitial,
	}
	if err := s.balanceHistoryRepo.Record(ctx, history); err != nil {
		return nil, fmt.Errorf("failed to record initial balance: %w", err)
	}

	if err := s.eventPublisher.Publish(events.UserCreatedEvent{
		DiscordID:      discordID,
		Username:       username,
		InitialBalance: initialBalance,
	}); err != nil {
		log.WithError(err).Warn("failed to publish user created event")
	}

	return user, nil
}

func (s *userService) TransferBetweenUsers(ctx context.Context, fromDiscordID, toDiscordID int64, amount int64, fromUsername, toUsername string) error {
	if amount <= 0 {
		return errors.New("transfer amount must be positive")
	}
	if fromDiscordID == toDiscordID {
		return errors.New("cannot transfer to yourself")
	}

	sender, err := s.GetOrCreateUser(ctx, fromDiscordID, fromUsername)
	if err != nil {
		return err
	}
	recipient, err := s.GetOrCreateUser(ctx, toDiscordID, toUsername)
	if err != nil {
		return err
	}

	if err := sender.ValidateAmount(amount); err != nil {
		return err
	}

	if err := s.applyChange(ctx, sender, -amount, entities.TransactionTypeTransferOut, map[string]any{
		"other_user": toDiscordID,
	}); err != nil {
		return err
	}
	if err := s.applyChange(ctx, recipient, amount, entities.TransactionTypeTransferIn, map[string]any{
		"other_user": fromDiscordID,
	}); err != nil {
		return err
	}

	return nil
}

func (s *userService) Grant(ctx context.Context, discordID int64, username string, amount int64) (*entities.User, error) {
	if amount <= 0 {
		return nil, errors.New("grant amount must be positive")
	}

	user, err := s.GetOrCreateUser(ctx, discordID, username)
	if err != nil {
		return nil, err
	}
	if err := s.applyChange(ctx, user, amount, entities.TransactionTypeAdminGrant, nil); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) GetLeaderboard(ctx context.Context, limit int) ([]*entities.User, error) {
	users, err := s.userRepo.GetTopByBalance(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}
	return users, nil
}

// applyChange moves a user's balance, records history and publishes the
// balance change event. The user entity is updated in place.
func (s *userService) applyChange(ctx context.Context, user *entities.User, change int64, txType entities.TransactionType, metadata map[string]any) error {
	oldBalance := user.Balance
	newBalance := oldBalance + change

	if err := s.userRepo.UpdateBalance(ctx, user.DiscordID, newBalance); err != nil {
		return fmt.Errorf("failed to update balance: %w", err)
	}

	history := &entities.BalanceHistory{
		DiscordID:           user.DiscordID,
		BalanceBefore:       oldBalance,
		BalanceAfter:        newBalance,
		ChangeAmount:        change,
		TransactionType:     txType,
		TransactionMetadata: metadata,
	}
	if err := s.balanceHistoryRepo.Record(ctx, history); err != nil {
		return fmt.Errorf("failed to record balance history: %w", err)
	}

	user.Balance = newBalance

	if err := s.eventPublisher.Publish(events.BalanceChangeEvent{
		UserID:          user.DiscordID,
		OldBalance:      oldBalance,
		NewBalance:      newBalance,
		TransactionType: txType,
		ChangeAmount:    change,
	}); err != nil {
		log.WithError(err).Warn("failed to publish balance change event")
	}

	return nil
}
