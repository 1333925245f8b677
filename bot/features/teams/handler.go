package teams

import (
	"context"
	"fmt"
	"strings"
	"time"

	"ligabet/bot/common"
	"ligabet/domain/entities"

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

// loadTeams reads the full standings in a read-only unit of work
func (f *Feature) loadTeams(ctx context.Context) ([]*entities.Team, error) {
	uow := f.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	teams, err := uow.TeamRepository().GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}
	return teams, nil
}

func (f *Feature) handleTeam(s *discordgo.Session, i *discordgo.InteractionCreate) {
	opts := commandOptions(i)
	query := opts["name"].StringValue()

	var league entities.League
	if opt, ok := opts["league"]; ok {
		league = entities.League(opt.StringValue())
	}

	ctx := context.Background()
	teams, err := f.loadTeams(ctx)
	if err != nil {
		log.Errorf("Error loading teams: %v", err)
		common.RespondWithError(s, i, "Unable to load the standings. Please try again.")
		return
	}

	team := f.lookup.FindTeam(teams, query, league)
	if team == nil {
		suggestions := f.lookup.Suggestions(teams, query, 3, league)
		if len(suggestions) == 0 {
			common.RespondWithError(s, i, fmt.Sprintf("No team matches %q.", query))
			return
		}
		var names []string
		for _, sg := range suggestions {
			names = append(names, sg.Team.FullName())
		}
		common.RespondWithError(s, i, fmt.Sprintf("No team matches %q. Did you mean: %s?", query, strings.Join(names, ", ")))
		return
	}

	common.RespondWithEmbed(s, i, teamEmbed(team))
}

func (f *Feature) handleCompare(s *discordgo.Session, i *discordgo.InteractionCreate) {
	opts := commandOptions(i)
	firstQuery := opts["first"].StringValue()
	secondQuery := opts["second"].StringValue()

	ctx := context.Background()
	teams, err := f.loadTeams(ctx)
	if err != nil {
		log.Errorf("Error loading teams: %v", err)
		common.RespondWithError(s, i, "Unable to load the standings. Please try again.")
		return
	}

	first := f.lookup.FindTeam(teams, firstQuery, "")
	if first == nil {
		common.RespondWithError(s, i, fmt.Sprintf("No team matches %q.", firstQuery))
		return
	}
	second := f.lookup.FindTeam(teams, secondQuery, "")
	if second == nil {
		common.RespondWithError(s, i, fmt.Sprintf("No team matches %q.", secondQuery))
		return
	}
	if first.FullName() == second.FullName() {
		common.RespondWithError(s, i, "Pick two different teams to compare.")
		return
	}

	common.RespondWithEmbed(s, i, compareEmbed(first, second))
}

func (f *Feature) handleUpdateTeam(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if _, ok := common.RequireAdmin(s, i); !ok {
		return
	}

	opts := commandOptions(i)
	team := &entities.Team{
		Name:      strings.TrimSpace(opts["name"].StringValue()),
		League:    entities.League(opts["league"].StringValue()),
		Position:  int(opts["position"].IntValue()),
		UpdatedAt: time.Now().UTC(),
	}
	team.Tournament = entities.Tournament(strings.ToLower(string(team.League)))

	if team.Name == "" {
		common.RespondWithError(s, i, "Team name cannot be empty.")
		return
	}

	if opt, ok := opts["form"]; ok {
		form := strings.ToUpper(strings.TrimSpace(opt.StringValue()))
		if len(form) > 5 || strings.Trim(form, "WDL") != "" {
			common.RespondWithError(s, i, "Form must be up to five letters out of W, D and L, newest first.")
			return
		}
		team.Form = form
	}

	intOpt := func(name string, dst *int) {
		if opt, ok := opts[name]; ok {
			*dst = int(opt.IntValue())
		}
	}
	intOpt("wins", &team.Wins)
	intOpt("draws", &team.Draws)
	intOpt("losses", &team.Losses)
	intOpt("goals_for", &team.GoalsFor)
	intOpt("goals_against", &team.GoalsAgainst)

	ctx := context.Background()
	uow := f.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		log.Errorf("Error beginning transaction: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}
	defer uow.Rollback()

	if err := uow.TeamRepository().Upsert(ctx, team); err != nil {
		log.Errorf("Error upserting team %s: %v", team.FullName(), err)
		common.RespondWithError(s, i, "Unable to save the team. Please try again.")
		return
	}

	if err := uow.Commit(); err != nil {
		log.Errorf("Error committing team update: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	common.RespondWithContent(s, i, fmt.Sprintf("✅ Saved **%s**, position %d.", team.FullName(), team.Position))
}
