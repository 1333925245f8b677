package betting

import (
	"fmt"
	"strings"

	"ligabet/bot/common"
	"ligabet/domain/entities"

	"github.com/bwmarrin/discordgo"
)

func betPlacedEmbed(username string, bet *entities.Bet) *discordgo.MessageEmbed {
	payout := bet.Payout()
	return &discordgo.MessageEmbed{
		Title:       "🎟️ Bet placed",
		Description: bet.Description,
		Color:       0x2ECC71,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Stake", Value: fmt.Sprintf("%s coins", common.FormatBalance(bet.Amount)), Inline: true},
			{Name: "Odds", Value: common.FormatOdds(bet.Odds), Inline: true},
			{Name: "Potential payout", Value: fmt.Sprintf("%s coins", common.FormatBalance(payout)), Inline: true},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("%s • bet %s", username, bet.ID),
		},
	}
}

func statusIcon(status entities.BetStatus) string {
	switch status {
	case entities.BetStatusWon:
		return "✅"
	case entities.BetStatusLost:
		return "❌"
	default:
		return "⏳"
	}
}

func myBetsEmbed(username string, bets []*entities.Bet) *discordgo.MessageEmbed {
	var b strings.Builder
	for _, bet := range bets {
		fmt.Fprintf(&b, "%s **%s** — %s coins @ %s",
			statusIcon(bet.Status), bet.Description,
			common.FormatBalance(bet.Amount), common.FormatOdds(bet.Odds))
		if bet.Status == entities.BetStatusWon {
			fmt.Fprintf(&b, " → paid %s", common.FormatBalance(bet.Payout()))
		}
		b.WriteString("\n")
	}

	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("🎟️ Bets of %s", username),
		Description: b.String(),
		Color:       0x3498DB,
	}
}

func marketsEmbed() *discordgo.MessageEmbed {
	var b strings.Builder
	for _, market := range entities.AllMarkets() {
		spec, _ := market.Spec()
		label := strings.ReplaceAll(spec.Label, "%s", "(team)")
		fmt.Fprintf(&b, "`%s` — %s (base %s)\n", market, label, common.FormatOdds(spec.BaseOdds))
	}

	return &discordgo.MessageEmbed{
		Title:       "📋 Special markets",
		Description: b.String(),
		Color:       0x95A5A6,
		Footer: &discordgo.MessageEmbedFooter{
			Text: "Use the key with /betspecial, or comma-separate keys for /betcombo",
		},
	}
}
