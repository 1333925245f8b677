package matches

import (
	"fmt"
	"strings"

	"ligabet/bot/common"
	"ligabet/domain/entities"

	"github.com/bwmarrin/discordgo"
)

func matchCreatedEmbed(match *entities.Match) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("⚽ %s vs %s", match.HomeTeam, match.AwayTeam),
		Description: fmt.Sprintf("%s • open for betting", match.Tournament.DisplayName()),
		Color:       0x2ECC71,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "1", Value: common.FormatOdds(match.Odds.Home), Inline: true},
			{Name: "X", Value: common.FormatOdds(match.Odds.Draw), Inline: true},
			{Name: "2", Value: common.FormatOdds(match.Odds.Away), Inline: true},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("match %s", match.ID),
		},
	}
	if match.ScheduledAt != nil {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "Kick-off",
			Value: common.FormatDiscordTimestamp(*match.ScheduledAt, "R"),
		})
	}
	return embed
}

func matchListEmbed(matches []*entities.Match) *discordgo.MessageEmbed {
	var b strings.Builder
	for _, m := range matches {
		fmt.Fprintf(&b, "**%s vs %s** (%s)\n%s / %s / %s",
			m.HomeTeam, m.AwayTeam, m.Tournament.DisplayName(),
			common.FormatOdds(m.Odds.Home), common.FormatOdds(m.Odds.Draw), common.FormatOdds(m.Odds.Away))
		if m.ScheduledAt != nil {
			fmt.Fprintf(&b, " • plays %s", common.FormatDiscordTimestamp(*m.ScheduledAt, "R"))
		}
		fmt.Fprintf(&b, "\n`%s`\n\n", m.ID)
	}

	return &discordgo.MessageEmbed{
		Title:       "⚽ Open matches",
		Description: b.String(),
		Color:       0x3498DB,
	}
}

// matchResultEmbed renders a finished match with its notable stats
func matchResultEmbed(match *entities.Match, outcome *entities.MatchOutcome) *discordgo.MessageEmbed {
	title := fmt.Sprintf("🏁 %s %d - %d %s", match.HomeTeam, outcome.HomeGoals, outcome.AwayGoals, match.AwayTeam)

	var notes []string
	if outcome.Stats.TotalCorners > 0 {
		notes = append(notes, fmt.Sprintf("%d corners", outcome.Stats.TotalCorners))
	}
	if outcome.Stats.TotalYellowCards > 0 {
		notes = append(notes, fmt.Sprintf("%d yellow cards", outcome.Stats.TotalYellowCards))
	}
	if outcome.Stats.TotalRedCards > 0 {
		notes = append(notes, fmt.Sprintf("%d red cards", outcome.Stats.TotalRedCards))
	}
	if outcome.Stats.HeaderGoal {
		notes = append(notes, "header goal")
	}
	if outcome.Stats.FreeKickGoal {
		notes = append(notes, "free kick goal")
	}
	if outcome.Stats.CornerGoal {
		notes = append(notes, "corner kick goal")
	}
	if outcome.Stats.BicycleKickGoal {
		notes = append(notes, "bicycle kick goal")
	}
	if outcome.Stats.GoalkeeperGoal {
		notes = append(notes, "goalkeeper goal")
	}

	description := match.Tournament.DisplayName()
	if outcome.Manual {
		description += " • result entered manually"
	}
	if len(notes) > 0 {
		description += "\n" + strings.Join(notes, ", ")
	}

	return &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       0xE67E22,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("match %s", match.ID),
		},
	}
}
