package services

import (
	"testing"

	"ligabet/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupFixture() []*entities.Team {
	return []*entities.Team{
		testTeam("Aimstar", entities.LeagueD1, 1, "WWWWW"),
		testTeam("Deportivo Magallanes", entities.LeagueD1, 5, "WDWDD"),
		testTeam("Aimstar", entities.LeagueD2, 3, "DDWDD"),
		testTeam("Atletico Nacional", entities.LeagueD2, 8, "LDLDD"),
		testTeam("Racing Club", entities.LeagueD3, 2, "WWDDL"),
	}
}

func TestTeamLookupService_FindTeam_ExactFullName(t *testing.T) {
	svc := NewTeamLookupService()
	teams := lookupFixture()

	found := svc.FindTeam(teams, "Aimstar (D2)", "")
	require.NotNil(t, found)
	assert.Equal(t, entities.LeagueD2, found.League)
}

func TestTeamLookupService_FindTeam_PlainNamePrefersFirstCandidate(t *testing.T) {
	svc := NewTeamLookupService()
	teams := lookupFixture()

	// Without a league qualifier the first standings entry wins
	found := svc.FindTeam(teams, "aimstar", "")
	require.NotNil(t, found)
	assert.Equal(t, entities.LeagueD1, found.League)
}

func TestTeamLookupService_FindTeam_LeagueFilter(t *testing.T) {
	svc := NewTeamLookupService()
	teams := lookupFixture()

	found := svc.FindTeam(teams, "aimstar", entities.LeagueD2)
	require.NotNil(t, found)
	assert.Equal(t, entities.LeagueD2, found.League)

	assert.Nil(t, svc.FindTeam(teams, "racing", entities.LeagueD1))
}

func TestTeamLookupService_FindTeam_Substring(t *testing.T) {
	svc := NewTeamLookupService()
	teams := lookupFixture()

	found := svc.FindTeam(teams, "magallanes", "")
	require.NotNil(t, found)
	assert.Equal(t, "Deportivo Magallanes", found.Name)
}

func TestTeamLookupService_FindTeam_FuzzyTypo(t *testing.T) {
	svc := NewTeamLookupService()
	teams := lookupFixture()

	// One dropped letter still resolves through word similarity
	found := svc.FindTeam(teams, "aimstr", "")
	require.NotNil(t, found)
	assert.Equal(t, "Aimstar", found.Name)

	found = svc.FindTeam(teams, "atletico nacionl", "")
	require.NotNil(t, found)
	assert.Equal(t, "Atletico Nacional", found.Name)
}

func TestTeamLookupService_FindTeam_NoMatch(t *testing.T) {
	svc := NewTeamLookupService()
	teams := lookupFixture()

	assert.Nil(t, svc.FindTeam(teams, "zzzzzz", ""))
	assert.Nil(t, svc.FindTeam(teams, "", ""))
	assert.Nil(t, svc.FindTeam(teams, "   ", ""))
}

func TestTeamLookupService_Suggestions(t *testing.T) {
	svc := NewTeamLookupService()
	teams := lookupFixture()

	suggestions := svc.Suggestions(teams, "aimstart", 3, "")
	require.NotEmpty(t, suggestions)
	assert.Equal(t, "Aimstar", suggestions[0].Team.Name)
	assert.LessOrEqual(t, len(suggestions), 3)

	// Best first
	for i := 1; i < len(suggestions); i++ {
		assert.GreaterOrEqual(t, suggestions[i-1].Score, suggestions[i].Score)
	}
}

func TestTeamLookupService_Suggestions_EmptyQuery(t *testing.T) {
	svc := NewTeamLookupService()

	assert.Nil(t, svc.Suggestions(lookupFixture(), "", 5, ""))
}

func TestWordSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, wordSimilarity("aimstar", "aimstar"))
	assert.Greater(t, wordSimilarity("aimstar", "aimstr"), 0.8)
	assert.Less(t, wordSimilarity("aimstar", "racing"), 0.5)
}

func TestEditDistance(t *testing.T) {
	assert.Equal(t, 0, editDistance("abc", "abc"))
	assert.Equal(t, 1, editDistance("abc", "abd"))
	assert.Equal(t, 3, editDistance("abc", ""))
	assert.Equal(t, 1, editDistance("aimstar", "aimstr"))
}
