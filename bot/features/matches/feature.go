package matches

import (
	"math/rand"
	"time"

	"ligabet/config"
	"ligabet/domain/interfaces"
	"ligabet/domain/services"

	"github.com/bwmarrin/discordgo"
)

type Feature struct {
	session          *discordgo.Session
	uowFactory       interfaces.UnitOfWorkFactory
	resultsChannelID string

	odds       *services.OddsService
	simulation *services.SimulationService
}

func NewFeature(session *discordgo.Session, uowFactory interfaces.UnitOfWorkFactory, resultsChannelID string) *Feature {
	cfg := config.Get()
	return &Feature{
		session:          session,
		uowFactory:       uowFactory,
		resultsChannelID: resultsChannelID,
		odds:             services.NewOddsService(cfg.LeagueMargin, cfg.CupMargin),
		simulation:       services.NewSimulationService(rand.New(rand.NewSource(time.Now().UnixNano()))),
	}
}

func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.ApplicationCommandData().Name {
	case "creatematch":
		f.handleCreateMatch(s, i)
	case "generatematch":
		f.handleGenerateMatch(s, i)
	case "matches":
		f.handleListMatches(s, i)
	case "setodds":
		f.handleSetOdds(s, i)
	case "setresult":
		f.handleSetResult(s, i)
	case "simulate":
		f.handleSimulate(s, i)
	case "deletematch":
		f.handleDeleteMatch(s, i)
	case "clearmatches":
		f.handleClearMatches(s, i)
	}
}

// matchService builds the match service on top of an open unit of work
func (f *Feature) matchService(uow interfaces.UnitOfWork) interfaces.MatchService {
	return services.NewMatchService(
		uow.UserRepository(),
		uow.TeamRepository(),
		uow.MatchRepository(),
		uow.OutcomeRepository(),
		uow.BetRepository(),
		uow.BalanceHistoryRepository(),
		uow.EventBus(),
		f.odds,
		f.simulation,
	)
}
