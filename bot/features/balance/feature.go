package balance

import (
	"ligabet/domain/interfaces"

	"github.com/bwmarrin/discordgo"
)

type Feature struct {
	uowFactory interfaces.UnitOfWorkFactory
}

func New(uowFactory interfaces.UnitOfWorkFactory) *Feature {
	return &Feature{
		uowFactory: uowFactory,
	}
}

func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.ApplicationCommandData().Name {
	case "balance":
		f.handleBalance(s, i)
	case "leaderboard":
		f.handleLeaderboard(s, i)
	}
}
