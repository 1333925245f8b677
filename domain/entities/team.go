package entities

import (
	"fmt"
	"strings"
	"time"
)

// League identifies the division a team plays in
type League string

const (
	LeagueD1     League = "D1"
	LeagueD2     League = "D2"
	LeagueD3     League = "D3"
	LeagueCustom League = "CUSTOM"
)

// Tournament identifies the competition a match belongs to
type Tournament string

const (
	TournamentD1      Tournament = "d1"
	TournamentD2      Tournament = "d2"
	TournamentD3      Tournament = "d3"
	TournamentMaradei Tournament = "maradei"
	TournamentCV      Tournament = "cv"
	TournamentCD2     Tournament = "cd2"
	TournamentCD3     Tournament = "cd3"
	TournamentIzoro   Tournament = "izoro"
	TournamentIzplata Tournament = "izplata"
	TournamentCustom  Tournament = "custom"
)

// IsKnockout returns true for cup competitions priced with the knockout model.
// Copa Maradei runs a group stage, so it is priced like a league.
func (t Tournament) IsKnockout() bool {
	switch t {
	case TournamentCV, TournamentIzoro, TournamentIzplata, TournamentCD2, TournamentCD3:
		return true
	}
	return false
}

// DisplayName returns the full competition name
func (t Tournament) DisplayName() string {
	switch t {
	case TournamentD1:
		return "Liga D1"
	case TournamentD2:
		return "Liga D2"
	case TournamentD3:
		return "Liga D3"
	case TournamentMaradei:
		return "Copa Maradei"
	case TournamentCV:
		return "Copa ValencARc"
	case TournamentCD2:
		return "Copa D2"
	case TournamentCD3:
		return "Copa D3"
	case TournamentIzoro:
		return "Copa Intrazonal de Oro"
	case TournamentIzplata:
		return "Copa Intrazonal de Plata"
	default:
		return "Custom"
	}
}

// DefaultForm is the form string assigned to teams with no recorded matches.
// Form strings hold the last five results, newest first (W, D or L).
const DefaultForm = "DDDDD"

// Team represents a team in the standings
type Team struct {
	Name         string     `db:"name"`
	League       League     `db:"league"`
	Tournament   Tournament `db:"tournament"`
	Position     int        `db:"position"`
	Form         string     `db:"form"`
	Wins         int        `db:"wins"`
	Draws        int        `db:"draws"`
	Losses       int        `db:"losses"`
	GoalsFor     int        `db:"goals_for"`
	GoalsAgainst int        `db:"goals_against"`
	UpdatedAt    time.Time  `db:"updated_at"`
}

// FullName returns the display name including the league qualifier,
// e.g. "Aimstar (D1)". Team names are only unique within a league.
func (t *Team) FullName() string {
	return fmt.Sprintf("%s (%s)", t.Name, t.League)
}

// EffectivePosition returns the table position, defaulting to mid-table
// when none has been recorded.
func (t *Team) EffectivePosition() int {
	if t.Position <= 0 {
		return 10
	}
	return t.Position
}

// EffectiveForm returns the form string, defaulting when none is recorded
func (t *Team) EffectiveForm() string {
	if t.Form == "" {
		return DefaultForm
	}
	return t.Form
}

// FormWins counts wins in the recorded form
func (t *Team) FormWins() int {
	return strings.Count(t.EffectiveForm(), "W")
}

// FormLosses counts losses in the recorded form
func (t *Team) FormLosses() int {
	return strings.Count(t.EffectiveForm(), "L")
}

// RecordResult pushes a result letter onto the front of the form string,
// keeping the five most recent results.
func (t *Team) RecordResult(result byte) {
	form := string(result) + t.EffectiveForm()
	if len(form) > 5 {
		form = form[:5]
	}
	t.Form = form
}

// ParseFullName splits a display name like "Aimstar (D1)" into the plain
// name and league. Returns the input unchanged with an empty league when
// there is no qualifier.
func ParseFullName(fullName string) (name string, league League) {
	open := strings.LastIndex(fullName, " (")
	if open == -1 || !strings.HasSuffix(fullName, ")") {
		return fullName, ""
	}
	return fullName[:open], League(fullName[open+2 : len(fullName)-1])
}
