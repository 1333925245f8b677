package common

import (
	"fmt"
	"strings"
	"time"
)

// FormatBalance formats a coin amount with thousand separators
func FormatBalance(balance int64) string {
	str := fmt.Sprintf("%d", balance)
	if balance < 0 {
		str = str[1:]
	}

	n := len(str)
	if n > 3 {
		var result strings.Builder
		for i, digit := range str {
			if i > 0 && (n-i)%3 == 0 {
				result.WriteRune(',')
			}
			result.WriteRune(digit)
		}
		str = result.String()
	}

	if balance < 0 {
		return "-" + str
	}
	return str
}

// FormatOdds formats decimal odds the way bookmakers print them
func FormatOdds(odds float64) string {
	return fmt.Sprintf("%.2f", odds)
}

// FormatBetResult formats the outcome line of a settled bet
func FormatBetResult(won bool, betAmount, winAmount, newBalance int64) string {
	if won {
		return fmt.Sprintf("🎉 **You won!** You gained **%s coins**. New balance: **%s coins**",
			FormatBalance(winAmount), FormatBalance(newBalance))
	}
	return fmt.Sprintf("😔 **You lost!** You lost **%s coins**. New balance: **%s coins**",
		FormatBalance(betAmount), FormatBalance(newBalance))
}

// FormatTransferResult formats the result of a transfer
func FormatTransferResult(amount int64, recipientID string) string {
	return fmt.Sprintf("✅ Transferred **%s coins** to <@%s>",
		FormatBalance(amount), recipientID)
}

// FormatDiscordTimestamp formats a time as a Discord timestamp that renders
// in the viewer's timezone. Format types: "t" short time, "f" short
// date/time, "R" relative.
func FormatDiscordTimestamp(t time.Time, format string) string {
	return fmt.Sprintf("<t:%d:%s>", t.Unix(), format)
}

// FormatWinRate formats a win percentage
func FormatWinRate(rate float64) string {
	return fmt.Sprintf("%.1f%%", rate)
}
