package balance

import (
	"context"

	"ligabet/bot/common"
	"ligabet/domain/services"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

func (f *Feature) handleBalance(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	user := common.InteractionUser(i)
	discordID, err := common.InteractionUserID(i)
	if err != nil {
		log.Errorf("Error parsing Discord ID: %v", err)
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

	account, err := userService.GetOrCreateUser(ctx, discordID, user.Username)
	if err != nil {
		log.Errorf("Error getting user %d: %v", discordID, err)
		common.RespondWithError(s, i, "Unable to look up your balance. Please try again.")
		return
	}

	if err := uow.Commit(); err != nil {
		log.Errorf("Error committing transaction: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	common.RespondWithEmbed(s, i, balanceEmbed(account))
}

func (f *Feature) handleLeaderboard(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

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

	top, err := userService.GetLeaderboard(ctx, 10)
	if err != nil {
		log.Errorf("Error loading leaderboard: %v", err)
		common.RespondWithError(s, i, "Unable to load the leaderboard. Please try again.")
		return
	}

	if err := uow.Commit(); err != nil {
		log.Errorf("Error committing transaction: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	if len(top) == 0 {
		common.RespondWithContent(s, i, "Nobody has a balance yet. Place a bet to get on the board!")
		return
	}

	common.RespondWithEmbed(s, i, leaderboardEmbed(top))
}
