package matches

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ligabet/bot/common"
	"ligabet/domain/entities"
	"ligabet/domain/services"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

func commandOptions(i *discordgo.InteractionCreate) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	out := make(map[string]*discordgo.ApplicationCommandInteractionDataOption)
	for _, opt := range i.ApplicationCommandData().Options {
		out[opt.Name] = opt
	}
	return out
}

func respondMatchError(s *discordgo.Session, i *discordgo.InteractionCreate, err error) {
	switch {
	case errors.Is(err, entities.ErrMatchNotFound):
		common.RespondWithError(s, i, "No match with that ID. Use /matches to list them.")
	case errors.Is(err, entities.ErrMatchFinished):
		common.RespondWithError(s, i, "That match has already finished.")
	case errors.Is(err, services.ErrTeamNotFound):
		common.RespondWithError(s, i, fmt.Sprintf("Team lookup failed: %v", err))
	default:
		log.Errorf("Match command failed: %v", err)
		common.RespondWithError(s, i, fmt.Sprintf("Operation failed: %v", err))
	}
}

func (f *Feature) handleCreateMatch(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if _, ok := common.RequireAdmin(s, i); !ok {
		return
	}

	opts := commandOptions(i)
	homeQuery := opts["home"].StringValue()
	awayQuery := opts["away"].StringValue()

	var tournament entities.Tournament
	if opt, ok := opts["tournament"]; ok {
		tournament = entities.Tournament(opt.StringValue())
	}

	var scheduledAt *time.Time
	if opt, ok := opts["in_minutes"]; ok {
		at := time.Now().Add(time.Duration(opt.IntValue()) * time.Minute)
		scheduledAt = &at
	}

	ctx := context.Background()
	uow := f.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		log.Errorf("Error beginning transaction: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}
	defer uow.Rollback()

	match, err := f.matchService(uow).CreateMatch(ctx, homeQuery, awayQuery, tournament, scheduledAt)
	if err != nil {
		respondMatchError(s, i, err)
		return
	}

	if err := uow.Commit(); err != nil {
		log.Errorf("Error committing match creation: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	common.RespondWithEmbed(s, i, matchCreatedEmbed(match))
}

func (f *Feature) handleGenerateMatch(s *discordgo.Session, i *discordgo.InteractionCreate) {
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

	match, err := f.matchService(uow).CreateRandomMatch(ctx)
	if err != nil {
		respondMatchError(s, i, err)
		return
	}

	if err := uow.Commit(); err != nil {
		log.Errorf("Error committing match generation: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	common.RespondWithEmbed(s, i, matchCreatedEmbed(match))
}

func (f *Feature) handleListMatches(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	uow := f.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		log.Errorf("Error beginning transaction: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}
	defer uow.Rollback()

	upcoming, err := f.matchService(uow).ListUpcoming(ctx)
	if err != nil {
		log.Errorf("Error listing matches: %v", err)
		common.RespondWithError(s, i, "Unable to list matches. Please try again.")
		return
	}

	if err := uow.Commit(); err != nil {
		log.Errorf("Error committing transaction: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	if len(upcoming) == 0 {
		common.RespondWithContent(s, i, "No open matches right now. Admins can create one with /creatematch.")
		return
	}

	common.RespondWithEmbed(s, i, matchListEmbed(upcoming))
}

func (f *Feature) handleSetOdds(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if _, ok := common.RequireAdmin(s, i); !ok {
		return
	}

	opts := commandOptions(i)
	matchID := opts["match"].StringValue()
	odds := entities.ThreeWayOdds{
		Home: opts["home"].FloatValue(),
		Draw: opts["draw"].FloatValue(),
		Away: opts["away"].FloatValue(),
	}

	ctx := context.Background()
	uow := f.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		log.Errorf("Error beginning transaction: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}
	defer uow.Rollback()

	match, err := f.matchService(uow).SetOdds(ctx, matchID, odds)
	if err != nil {
		respondMatchError(s, i, err)
		return
	}

	if err := uow.Commit(); err != nil {
		log.Errorf("Error committing odds update: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	common.RespondWithContent(s, i, fmt.Sprintf("✅ Odds for **%s vs %s** set to %s / %s / %s",
		match.HomeTeam, match.AwayTeam,
		common.FormatOdds(match.Odds.Home), common.FormatOdds(match.Odds.Draw), common.FormatOdds(match.Odds.Away)))
}

// outcomeFromOptions builds a manual outcome from the /setresult options
func outcomeFromOptions(opts map[string]*discordgo.ApplicationCommandInteractionDataOption, setBy int64) *entities.MatchOutcome {
	homeGoals := int(opts["home_goals"].IntValue())
	awayGoals := int(opts["away_goals"].IntValue())

	result := entities.ResultDraw
	if homeGoals > awayGoals {
		result = entities.ResultHome
	} else if awayGoals > homeGoals {
		result = entities.ResultAway
	}

	outcome := &entities.MatchOutcome{
		Result:     result,
		HomeGoals:  homeGoals,
		AwayGoals:  awayGoals,
		Manual:     true,
		SetBy:      &setBy,
		RecordedAt: time.Now().UTC(),
	}

	intStat := func(name string, dst *int) {
		if opt, ok := opts[name]; ok {
			*dst = int(opt.IntValue())
		}
	}
	boolStat := func(name string, dst *bool) {
		if opt, ok := opts[name]; ok {
			*dst = opt.BoolValue()
		}
	}

	intStat("corners", &outcome.Stats.TotalCorners)
	intStat("yellow_home", &outcome.Stats.HomeYellowCards)
	intStat("yellow_away", &outcome.Stats.AwayYellowCards)
	outcome.Stats.TotalYellowCards = outcome.Stats.HomeYellowCards + outcome.Stats.AwayYellowCards

	boolStat("red_home", &outcome.Stats.HomeRedCard)
	boolStat("red_away", &outcome.Stats.AwayRedCard)
	if outcome.Stats.HomeRedCard {
		outcome.Stats.TotalRedCards++
	}
	if outcome.Stats.AwayRedCard {
		outcome.Stats.TotalRedCards++
	}

	boolStat("corner_goal", &outcome.Stats.CornerGoal)
	boolStat("free_kick_goal", &outcome.Stats.FreeKickGoal)
	boolStat("bicycle_kick_goal", &outcome.Stats.BicycleKickGoal)
	boolStat("header_goal", &outcome.Stats.HeaderGoal)
	boolStat("striker_goal", &outcome.Stats.StrikerGoal)
	boolStat("midfielder_goal", &outcome.Stats.MidfielderGoal)
	boolStat("defender_goal", &outcome.Stats.DefenderGoal)
	boolStat("goalkeeper_goal", &outcome.Stats.GoalkeeperGoal)

	return outcome
}

func (f *Feature) handleSetResult(s *discordgo.Session, i *discordgo.InteractionCreate) {
	adminID, ok := common.RequireAdmin(s, i)
	if !ok {
		return
	}

	opts := commandOptions(i)
	matchID := opts["match"].StringValue()
	outcome := outcomeFromOptions(opts, adminID)

	ctx := context.Background()
	uow := f.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		log.Errorf("Error beginning transaction: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}
	defer uow.Rollback()

	svc := f.matchService(uow)
	if err := svc.FinalizeMatch(ctx, matchID, outcome); err != nil {
		respondMatchError(s, i, err)
		return
	}

	match, err := svc.GetMatch(ctx, matchID)
	if err != nil {
		respondMatchError(s, i, err)
		return
	}

	if err := uow.Commit(); err != nil {
		log.Errorf("Error committing result for match %s: %v", matchID, err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	embed := matchResultEmbed(match, outcome)
	common.RespondWithEmbed(s, i, embed)
	f.announceResult(embed)
}

func (f *Feature) handleSimulate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if _, ok := common.RequireAdmin(s, i); !ok {
		return
	}

	matchID := commandOptions(i)["match"].StringValue()

	ctx := context.Background()
	uow := f.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		log.Errorf("Error beginning transaction: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}
	defer uow.Rollback()

	svc := f.matchService(uow)
	outcome, err := svc.SimulateMatch(ctx, matchID)
	if err != nil {
		respondMatchError(s, i, err)
		return
	}

	match, err := svc.GetMatch(ctx, matchID)
	if err != nil {
		respondMatchError(s, i, err)
		return
	}

	if err := uow.Commit(); err != nil {
		log.Errorf("Error committing simulation for match %s: %v", matchID, err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	embed := matchResultEmbed(match, outcome)
	common.RespondWithEmbed(s, i, embed)
	f.announceResult(embed)
}

func (f *Feature) handleDeleteMatch(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if _, ok := common.RequireAdmin(s, i); !ok {
		return
	}

	matchID := commandOptions(i)["match"].StringValue()

	ctx := context.Background()
	uow := f.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		log.Errorf("Error beginning transaction: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}
	defer uow.Rollback()

	refunded, err := f.matchService(uow).DeleteMatch(ctx, matchID)
	if err != nil {
		respondMatchError(s, i, err)
		return
	}

	if err := uow.Commit(); err != nil {
		log.Errorf("Error committing match deletion: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	common.RespondWithContent(s, i, fmt.Sprintf("🗑️ Match deleted, %d pending bet(s) refunded.", refunded))
}

func (f *Feature) handleClearMatches(s *discordgo.Session, i *discordgo.InteractionCreate) {
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

	deleted, refunded, err := f.matchService(uow).ClearUpcoming(ctx)
	if err != nil {
		log.Errorf("Error clearing matches: %v", err)
		common.RespondWithError(s, i, "Unable to clear matches. Please try again.")
		return
	}

	if err := uow.Commit(); err != nil {
		log.Errorf("Error committing match purge: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	common.RespondWithContent(s, i, fmt.Sprintf("🗑️ Cleared %d open match(es), refunded %d bet(s).", deleted, refunded))
}

// announceResult posts a finished-match embed to the results channel
// when one is configured
func (f *Feature) announceResult(embed *discordgo.MessageEmbed) {
	if f.resultsChannelID == "" {
		return
	}
	if _, err := f.session.ChannelMessageSendEmbed(f.resultsChannelID, embed); err != nil {
		log.WithError(err).WithField("channel_id", f.resultsChannelID).Error("Failed to announce match result")
	}
}
