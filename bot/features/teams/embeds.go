package teams

import (
	"fmt"

	"ligabet/bot/common"
	"ligabet/domain/entities"

	"github.com/bwmarrin/discordgo"
)

// formPoints scores the recorded form, three points per win
func formPoints(team *entities.Team) int {
	points := 0
	for _, r := range team.EffectiveForm() {
		switch r {
		case 'W':
			points += 3
		case 'D':
			points++
		}
	}
	return points
}

func playedMatches(team *entities.Team) int {
	return team.Wins + team.Draws + team.Losses
}

func winPercentage(team *entities.Team) float64 {
	played := playedMatches(team)
	if played == 0 {
		return 0
	}
	return float64(team.Wins) / float64(played) * 100
}

func teamEmbed(team *entities.Team) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("📊 %s", team.FullName()),
		Description: team.Tournament.DisplayName(),
		Color:       0x9B59B6,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Position", Value: fmt.Sprintf("#%d", team.EffectivePosition()), Inline: true},
			{Name: "Form (newest first)", Value: team.EffectiveForm(), Inline: true},
			{Name: "Form points", Value: fmt.Sprintf("%d / 15", formPoints(team)), Inline: true},
			{Name: "Record", Value: fmt.Sprintf("%dW %dD %dL", team.Wins, team.Draws, team.Losses), Inline: true},
			{Name: "Goals", Value: fmt.Sprintf("%d : %d", team.GoalsFor, team.GoalsAgainst), Inline: true},
			{Name: "Win rate", Value: common.FormatWinRate(winPercentage(team)), Inline: true},
		},
	}
}

func compareEmbed(first, second *entities.Team) *discordgo.MessageEmbed {
	line := func(team *entities.Team) string {
		return fmt.Sprintf("#%d • %s • %dW %dD %dL • %d:%d goals • %s wins",
			team.EffectivePosition(), team.EffectiveForm(),
			team.Wins, team.Draws, team.Losses,
			team.GoalsFor, team.GoalsAgainst,
			common.FormatWinRate(winPercentage(team)))
	}

	verdict := "Evenly matched on recent form."
	firstPoints, secondPoints := formPoints(first), formPoints(second)
	if firstPoints > secondPoints {
		verdict = fmt.Sprintf("**%s** has the better recent form (%d vs %d points).", first.Name, firstPoints, secondPoints)
	} else if secondPoints > firstPoints {
		verdict = fmt.Sprintf("**%s** has the better recent form (%d vs %d points).", second.Name, secondPoints, firstPoints)
	}

	return &discordgo.MessageEmbed{
		Title: fmt.Sprintf("⚖️ %s vs %s", first.FullName(), second.FullName()),
		Color: 0x9B59B6,
		Fields: []*discordgo.MessageEmbedField{
			{Name: first.FullName(), Value: line(first)},
			{Name: second.FullName(), Value: line(second)},
			{Name: "Verdict", Value: verdict},
		},
	}
}
