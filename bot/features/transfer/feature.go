package transfer

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
	case "transfer":
		f.handleTransfer(s, i)
	case "grant":
		f.handleGrant(s, i)
	}
}
