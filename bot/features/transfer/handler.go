package transfer

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"ligabet/bot/common"
	"ligabet/domain/entities"
	"ligabet/domain/services"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

func (f *Feature) handleTransfer(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	var amount int64
	var recipientUser *discordgo.User
	for _, opt := range i.ApplicationCommandData().Options {
		switch opt.Name {
		case "amount":
			amount = opt.IntValue()
		case "user":
			recipientUser = opt.UserValue(s)
		}
	}

	if amount <= 0 {
		common.RespondWithError(s, i, "Amount must be positive.")
		return
	}
	if recipientUser == nil {
		common.RespondWithError(s, i, "Invalid recipient user.")
		return
	}

	sender := common.InteractionUser(i)
	fromDiscordID, err := common.InteractionUserID(i)
	if err != nil {
		log.Errorf("Error parsing sender Discord ID: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	toDiscordID, err := strconv.ParseInt(recipientUser.ID, 10, 64)
	if err != nil {
		log.Errorf("Error parsing recipient Discord ID %s: %v", recipientUser.ID, err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	if fromDiscordID == toDiscordID {
		common.RespondWithError(s, i, "You cannot transfer coins to yourself.")
		return
	}

	uow := f.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		log.Errorf("Error beginning transaction: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}
	defer uow.Rollback()

	userService := services.NewUserService(
		uow.UserRepository(),
		uow.BalanceHistoryRepository(),
		uow.EventBus(),
	)

	// Both accounts must exist before the transfer moves anything
	if _, err := userService.GetOrCreateUser(ctx, fromDiscordID, sender.Username); err != nil {
		common.RespondWithError(s, i, fmt.Sprintf("Failed to create user: %v", err))
		return
	}
	if _, err := userService.GetOrCreateUser(ctx, toDiscordID, recipientUser.Username); err != nil {
		common.RespondWithError(s, i, fmt.Sprintf("Failed to create user: %v", err))
		return
	}

	err = userService.TransferBetweenUsers(ctx, fromDiscordID, toDiscordID, amount, sender.Username, recipientUser.Username)
	if err != nil {
		if errors.Is(err, entities.ErrInsufficientBalance) {
			common.RespondWithError(s, i, "You don't have enough coins for that transfer.")
			return
		}
		log.Errorf("Error processing transfer from %d to %d: %v", fromDiscordID, toDiscordID, err)
		common.RespondWithError(s, i, fmt.Sprintf("Transfer failed: %v", err))
		return
	}

	if err := uow.Commit(); err != nil {
		log.Errorf("Error committing transaction: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	common.RespondWithContent(s, i, common.FormatTransferResult(amount, recipientUser.ID))
}

func (f *Feature) handleGrant(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if _, ok := common.RequireAdmin(s, i); !ok {
		return
	}

	ctx := context.Background()

	var amount int64
	var recipientUser *discordgo.User
	for _, opt := range i.ApplicationCommandData().Options {
		switch opt.Name {
		case "amount":
			amount = opt.IntValue()
		case "user":
			recipientUser = opt.UserValue(s)
		}
	}

	if amount <= 0 {
		common.RespondWithError(s, i, "Amount must be positive.")
		return
	}
	if recipientUser == nil {
		common.RespondWithError(s, i, "Invalid recipient user.")
		return
	}

	toDiscordID, err := strconv.ParseInt(recipientUser.ID, 10, 64)
	if err != nil {
		log.Errorf("Error parsing recipient Discord ID %s: %v", recipientUser.ID, err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	uow := f.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		log.Errorf("Error beginning transaction: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}
	defer uow.Rollback()

	userService := services.NewUserService(
		uow.UserRepository(),
		uow.BalanceHistoryRepository(),
		uow.EventBus(),
	)

	account, err := userService.Grant(ctx, toDiscordID, recipientUser.Username, amount)
	if err != nil {
		log.Errorf("Error granting %d coins to %d: %v", amount, toDiscordID, err)
		common.RespondWithError(s, i, fmt.Sprintf("Grant failed: %v", err))
		return
	}

	if err := uow.Commit(); err != nil {
		log.Errorf("Error committing transaction: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	common.RespondWithContent(s, i, fmt.Sprintf("✅ Granted **%s coins** to <@%s>. New balance: **%s coins**",
		common.FormatBalance(amount), recipientUser.ID, common.FormatBalance(account.Balance)))
}
