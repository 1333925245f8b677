package bot

import (
	"fmt"

	"ligabet/domain/entities"

	"github.com/bwmarrin/discordgo"
)

func tournamentChoices() []*discordgo.ApplicationCommandOptionChoice {
	tournaments := []entities.Tournament{
		entities.TournamentD1, entities.TournamentD2, entities.TournamentD3,
		entities.TournamentMaradei, entities.TournamentCV,
		entities.TournamentCD2, entities.TournamentCD3,
		entities.TournamentIzoro, entities.TournamentIzplata,
	}
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(tournaments))
	for _, t := range tournaments {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  t.DisplayName(),
			Value: string(t),
		})
	}
	return choices
}

func leagueChoices() []*discordgo.ApplicationCommandOptionChoice {
	return []*discordgo.ApplicationCommandOptionChoice{
		{Name: "D1", Value: string(entities.LeagueD1)},
		{Name: "D2", Value: string(entities.LeagueD2)},
		{Name: "D3", Value: string(entities.LeagueD3)},
	}
}

// registerCommands registers all slash commands with Discord, scoped to
// the configured guild so updates apply instantly
func (b *Bot) registerCommands() error {
	matchOption := &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "match",
		Description: "Match ID from /matches",
		Required:    true,
	}
	amountOption := &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionInteger,
		Name:        "amount",
		Description: "Stake in coins",
		Required:    true,
	}

	commands := []*discordgo.ApplicationCommand{
		{
			Name:        "balance",
			Description: "Check your balance and betting record",
		},
		{
			Name:        "leaderboard",
			Description: "Show the richest players",
		},
		{
			Name:        "bet",
			Description: "Bet on the result of a match",
			Options: []*discordgo.ApplicationCommandOption{
				matchOption,
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "pick",
					Description: "Your pick",
					Required:    true,
					Choices: []*discordgo.ApplicationCommandOptionChoice{
						{Name: "Home win", Value: string(entities.ResultHome)},
						{Name: "Draw", Value: string(entities.ResultDraw)},
						{Name: "Away win", Value: string(entities.ResultAway)},
					},
				},
				amountOption,
			},
		},
		{
			Name:        "betexact",
			Description: "Bet on the exact final score",
			Options: []*discordgo.ApplicationCommandOption{
				matchOption,
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "home",
					Description: "Home goals",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "away",
					Description: "Away goals",
					Required:    true,
				},
				amountOption,
			},
		},
		{
			Name:        "betspecial",
			Description: "Bet on a special market",
			Options: []*discordgo.ApplicationCommandOption{
				matchOption,
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "market",
					Description: "Market key, see /markets",
					Required:    true,
				},
				amountOption,
			},
		},
		{
			Name:        "betcombo",
			Description: "Combine special markets into one bet",
			Options: []*discordgo.ApplicationCommandOption{
				matchOption,
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "markets",
					Description: "Comma-separated market keys, see /markets",
					Required:    true,
				},
				amountOption,
			},
		},
		{
			Name:        "mybets",
			Description: "Show your recent bets",
		},
		{
			Name:        "markets",
			Description: "List the special markets and their keys",
		},
		{
			Name:        "matches",
			Description: "List matches open for betting",
		},
		{
			Name:        "creatematch",
			Description: "Open a match for betting (admin)",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "home",
					Description: "Home team name",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "away",
					Description: "Away team name",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "tournament",
					Description: "Competition (defaults to the home team's league)",
					Required:    false,
					Choices:     tournamentChoices(),
				},
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "in_minutes",
					Description: "Schedule kick-off this many minutes from now",
					Required:    false,
				},
			},
		},
		{
			Name:        "generatematch",
			Description: "Generate a random match between two teams (admin)",
		},
		{
			Name:        "setodds",
			Description: "Override the three-way odds of an open match (admin)",
			Options: []*discordgo.ApplicationCommandOption{
				matchOption,
				{
					Type:        discordgo.ApplicationCommandOptionNumber,
					Name:        "home",
					Description: "Home win odds",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionNumber,
					Name:        "draw",
					Description: "Draw odds",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionNumber,
					Name:        "away",
					Description: "Away win odds",
					Required:    true,
				},
			},
		},
		{
			Name:        "setresult",
			Description: "Enter a final result and settle all bets (admin)",
			Options: []*discordgo.ApplicationCommandOption{
				matchOption,
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "home_goals",
					Description: "Home goals",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "away_goals",
					Description: "Away goals",
					Required:    true,
				},
				{Type: discordgo.ApplicationCommandOptionInteger, Name: "corners", Description: "Total corners"},
				{Type: discordgo.ApplicationCommandOptionInteger, Name: "yellow_home", Description: "Home yellow cards"},
				{Type: discordgo.ApplicationCommandOptionInteger, Name: "yellow_away", Description: "Away yellow cards"},
				{Type: discordgo.ApplicationCommandOptionBoolean, Name: "red_home", Description: "Home side saw a red card"},
				{Type: discordgo.ApplicationCommandOptionBoolean, Name: "red_away", Description: "Away side saw a red card"},
				{Type: discordgo.ApplicationCommandOptionBoolean, Name: "corner_goal", Description: "A corner kick goal was scored"},
				{Type: discordgo.ApplicationCommandOptionBoolean, Name: "free_kick_goal", Description: "A free kick goal was scored"},
				{Type: discordgo.ApplicationCommandOptionBoolean, Name: "bicycle_kick_goal", Description: "A bicycle kick goal was scored"},
				{Type: discordgo.ApplicationCommandOptionBoolean, Name: "header_goal", Description: "A header goal was scored"},
				{Type: discordgo.ApplicationCommandOptionBoolean, Name: "striker_goal", Description: "A striker scored"},
				{Type: discordgo.ApplicationCommandOptionBoolean, Name: "midfielder_goal", Description: "A midfielder scored"},
				{Type: discordgo.ApplicationCommandOptionBoolean, Name: "defender_goal", Description: "A defender scored"},
				{Type: discordgo.ApplicationCommandOptionBoolean, Name: "goalkeeper_goal", Description: "The goalkeeper scored"},
			},
		},
		{
			Name:        "simulate",
			Description: "Simulate an open match and settle all bets (admin)",
			Options:     []*discordgo.ApplicationCommandOption{matchOption},
		},
		{
			Name:        "deletematch",
			Description: "Delete an open match and refund pending bets (admin)",
			Options:     []*discordgo.ApplicationCommandOption{matchOption},
		},
		{
			Name:        "clearmatches",
			Description: "Delete every open match and refund all pending bets (admin)",
		},
		{
			Name:        "team",
			Description: "Show a team's standing and form",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "name",
					Description: "Team name, fuzzy matching allowed",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "league",
					Description: "Narrow the search to one league",
					Required:    false,
					Choices:     leagueChoices(),
				},
			},
		},
		{
			Name:        "compare",
			Description: "Compare two teams",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "first",
					Description: "First team name",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "second",
					Description: "Second team name",
					Required:    true,
				},
			},
		},
		{
			Name:        "updateteam",
			Description: "Create or update a team in the standings (admin)",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "name",
					Description: "Team name",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "league",
					Description: "League the team plays in",
					Required:    true,
					Choices:     leagueChoices(),
				},
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "position",
					Description: "Table position",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "form",
					Description: "Last five results, newest first (e.g. WWDLL)",
					Required:    false,
				},
				{Type: discordgo.ApplicationCommandOptionInteger, Name: "wins", Description: "Season wins"},
				{Type: discordgo.ApplicationCommandOptionInteger, Name: "draws", Description: "Season draws"},
				{Type: discordgo.ApplicationCommandOptionInteger, Name: "losses", Description: "Season losses"},
				{Type: discordgo.ApplicationCommandOptionInteger, Name: "goals_for", Description: "Goals scored"},
				{Type: discordgo.ApplicationCommandOptionInteger, Name: "goals_against", Description: "Goals conceded"},
			},
		},
		{
			Name:        "transfer",
			Description: "Transfer coins to another player",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "amount",
					Description: "Amount to transfer in coins",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "user",
					Description: "User to transfer to",
					Required:    true,
				},
			},
		},
		{
			Name:        "grant",
			Description: "Grant coins to a player (admin)",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "amount",
					Description: "Amount to grant in coins",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "user",
					Description: "User to grant coins to",
					Required:    true,
				},
			},
		},
		{
			Name:        "pause",
			Description: "Pause all betting (admin)",
		},
		{
			Name:        "resume",
			Description: "Resume betting (admin)",
		},
	}

	for _, cmd := range commands {
		_, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, b.config.GuildID, cmd)
		if err != nil {
			return fmt.Errorf("cannot create '%s' command: %w", cmd.Name, err)
		}
	}

	return nil
}
