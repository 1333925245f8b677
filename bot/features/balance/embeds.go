package balance

import (
	"fmt"
	"strings"

	"ligabet/bot/common"
	"ligabet/domain/entities"

	"github.com/bwmarrin/discordgo"
)

func balanceEmbed(user *entities.User) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: fmt.Sprintf("💰 %s", user.Username),
		Color: 0xF1C40F,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "Balance",
				Value:  fmt.Sprintf("**%s coins**", common.FormatBalance(user.Balance)),
				Inline: true,
			},
			{
				Name:   "Bets",
				Value:  fmt.Sprintf("%d placed, %d won, %d lost", user.TotalBets, user.BetsWon, user.BetsLost),
				Inline: true,
			},
			{
				Name:   "Win rate",
				Value:  common.FormatWinRate(user.WinRate()),
				Inline: true,
			},
			{
				Name:   "Total winnings",
				Value:  fmt.Sprintf("%s coins", common.FormatBalance(user.TotalWinnings)),
				Inline: true,
			},
		},
	}
}

var medals = []string{"🥇", "🥈", "🥉"}

func leaderboardEmbed(users []*entities.User) *discordgo.MessageEmbed {
	var b strings.Builder
	for idx, user := range users {
		rank := fmt.Sprintf("%d.", idx+1)
		if idx < len(medals) {
			rank = medals[idx]
		}
		fmt.Fprintf(&b, "%s **%s** — %s coins\n", rank, user.Username, common.FormatBalance(user.Balance))
	}

	return &discordgo.MessageEmbed{
		Title:       "🏆 Leaderboard",
		Description: b.String(),
		Color:       0xF1C40F,
	}
}
