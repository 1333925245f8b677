package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatBalance(t *testing.T) {
	tests := []struct {
		balance  int64
		expected string
	}{
		{0, "0"},
		{100, "100"},
		{1000, "1,000"},
		{12345, "12,345"},
		{1234567, "1,234,567"},
		{-1500, "-1,500"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatBalance(tt.balance))
	}
}

func TestFormatOdds(t *testing.T) {
	assert.Equal(t, "1.85", FormatOdds(1.85))
	assert.Equal(t, "2.00", FormatOdds(2.0))
	assert.Equal(t, "12.50", FormatOdds(12.5))
}

func TestFormatBetResult(t *testing.T) {
	won := FormatBetResult(true, 100, 85, 1085)
	assert.Contains(t, won, "You won!")
	assert.Contains(t, won, "85 coins")
	assert.Contains(t, won, "1,085 coins")

	lost := FormatBetResult(false, 100, 0, 900)
	assert.Contains(t, lost, "You lost!")
	assert.Contains(t, lost, "100 coins")
}

func TestFormatDiscordTimestamp(t *testing.T) {
	ts := time.Unix(1700000000, 0)
	assert.Equal(t, "<t:1700000000:R>", FormatDiscordTimestamp(ts, "R"))
}

func TestFormatWinRate(t *testing.T) {
	assert.Equal(t, "66.7%", FormatWinRate(66.666))
	assert.Equal(t, "0.0%", FormatWinRate(0))
}
