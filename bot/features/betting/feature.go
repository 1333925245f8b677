package betting

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
	case "bet":
		f.handleSimpleBet(s, i)
	case "betexact":
		f.handleExactScoreBet(s, i)
	case "betspecial":
		f.handleSpecialBet(s, i)
	case "betcombo":
		f.handleComboBet(s, i)
	case "mybets":
		f.handleMyBets(s, i)
	case "markets":
		f.handleMarkets(s, i)
	}
}
