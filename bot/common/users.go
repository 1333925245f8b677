package common

import (
	"fmt"
	"strconv"

	"ligabet/config"

	"github.com/bwmarrin/discordgo"
)

// InteractionUser returns the user behind an interaction, whether it
// came from a guild or a DM
func InteractionUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil {
		return i.Member.User
	}
	return i.User
}

// InteractionUserID parses the Discord ID of the interaction user
func InteractionUserID(i *discordgo.InteractionCreate) (int64, error) {
	user := InteractionUser(i)
	if user == nil {
		return 0, fmt.Errorf("interaction carries no user")
	}
	id, err := strconv.ParseInt(user.ID, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse Discord ID %s: %w", user.ID, err)
	}
	return id, nil
}

// RequireAdmin resolves the interaction user and checks the admin list.
// On failure it responds to the interaction and returns ok = false.
func RequireAdmin(s *discordgo.Session, i *discordgo.InteractionCreate) (int64, bool) {
	discordID, err := InteractionUserID(i)
	if err != nil {
		RespondWithError(s, i, "Unable to process request. Please try again.")
		return 0, false
	}
	if !config.Get().IsAdmin(discordID) {
		RespondWithError(s, i, "This command is restricted to administrators.")
		return 0, false
	}
	return discordID, true
}
