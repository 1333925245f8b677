package teams

import (
	"ligabet/domain/interfaces"
	"ligabet/domain/services"

	"github.com/bwmarrin/discordgo"
)

type Feature struct {
	uowFactory interfaces.UnitOfWorkFactory
	lookup     *services.TeamLookupService
}

func New(uowFactory interfaces.UnitOfWorkFactory) *Feature {
	return &Feature{
		uowFactory: uowFactory,
		lookup:     services.NewTeamLookupService(),
	}
}

func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.ApplicationCommandData().Name {
	case "team":
		f.handleTeam(s, i)
	case "compare":
		f.handleCompare(s, i)
	case "updateteam":
		f.handleUpdateTeam(s, i)
	}
}
