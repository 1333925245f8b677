package settings

import (
	"context"

	"ligabet/bot/common"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

func (f *Feature) setBettingPaused(s *discordgo.Session, i *discordgo.InteractionCreate, paused bool) {
	if _, ok := common.RequireAdmin(s, i); !ok {
		return
	}

	ctx := context.Background()
	uow := f.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		log.Errorf("Error beginning transaction: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}
	defer uow.Rollback()

	if err := uow.SettingsRepository().SetBettingPaused(ctx, paused); err != nil {
		log.Errorf("Error updating betting pause: %v", err)
		common.RespondWithError(s, i, "Unable to update settings. Please try again.")
		return
	}

	if err := uow.Commit(); err != nil {
		log.Errorf("Error committing settings update: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	if paused {
		common.RespondWithContent(s, i, "⏸️ Betting is now paused. Open bets stay live.")
	} else {
		common.RespondWithContent(s, i, "▶️ Betting has resumed.")
	}
}
