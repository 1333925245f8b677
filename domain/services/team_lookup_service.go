package services

import (
	"sort"
	"strings"

	"ligabet/domain/entities"
)

// TeamLookupService resolves free-text team queries against the
// standings. Matching is tiered: exact full name, exact plain name,
// substring either way, then word-level fuzzy matching.
type TeamLookupService struct{}

// NewTeamLookupService creates a new team lookup service
func NewTeamLookupService() *TeamLookupService {
	return &TeamLookupService{}
}

// FindTeam resolves a query like "aimstar" or "Aimstar (D1)" to a team.
// A non-empty league narrows the candidate set. Returns nil when
// nothing matches.
func (s *TeamLookupService) FindTeam(teams []*entities.Team, query string, league entities.League) *entities.Team {
	search := strings.ToLower(strings.TrimSpace(query))
	if search == "" {
		return nil
	}

	candidates := filterByLeague(teams, league)

	for _, t := range candidates {
		if strings.ToLower(t.FullName()) == search {
			return t
		}
	}
	for _, t := range candidates {
		if strings.ToLower(t.Name) == search {
			return t
		}
	}
	for _, t := range candidates {
		name := strings.ToLower(t.Name)
		if strings.Contains(name, search) || strings.Contains(search, name) {
			return t
		}
	}

	searchWords := longWords(search)
	if len(searchWords) == 0 {
		return nil
	}
	needed := (len(searchWords)*7 + 9) / 10 // ceil(70%)
	for _, t := range candidates {
		nameWords := strings.Fields(strings.ToLower(t.Name))
		matching := 0
		for _, sw := range searchWords {
			for _, nw := range nameWords {
				if strings.Contains(nw, sw) || strings.Contains(sw, nw) || wordSimilarity(sw, nw) > 0.8 {
					matching++
					break
				}
			}
		}
		if matching >= needed {
			return t
		}
	}
	return nil
}

// Suggestion is a scored near-match for a failed lookup
type Suggestion struct {
	Team  *entities.Team
	Score float64
}

// Suggestions returns up to limit near-matches for a query, best first
func (s *TeamLookupService) Suggestions(teams []*entities.Team, query string, limit int, league entities.League) []Suggestion {
	search := strings.ToLower(strings.TrimSpace(query))
	if search == "" {
		return nil
	}

	var out []Suggestion
	for _, t := range filterByLeague(teams, league) {
		score := charOverlap(search, strings.ToLower(t.Name))
		if score > 0.3 {
			out = append(out, Suggestion{Team: t, Score: score})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func filterByLeague(teams []*entities.Team, league entities.League) []*entities.Team {
	if league == "" {
		return teams
	}
	var out []*entities.Team
	for _, t := range teams {
		if t.League == league {
			out = append(out, t)
		}
	}
	return out
}

func longWords(s string) []string {
	var out []string
	for _, w := range strings.Fields(s) {
		if len(w) > 2 {
			out = append(out, w)
		}
	}
	return out
}

// wordSimilarity is a normalized edit-distance similarity in [0, 1]
func wordSimilarity(a, b string) float64 {
	longer, shorter := a, b
	if len(b) > len(a) {
		longer, shorter = b, a
	}
	if len(longer) == 0 {
		return 1.0
	}
	return float64(len(longer)-editDistance(longer, shorter)) / float64(len(longer))
}

func editDistance(a, b string) int {
	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(b); i++ {
		curr[0] = i
		for j := 1; j <= len(a); j++ {
			if b[i-1] == a[j-1] {
				curr[j] = prev[j-1]
			} else {
				curr[j] = min3(prev[j-1], curr[j-1], prev[j]) + 1
			}
		}
		prev, curr = curr, prev
	}
	return prev[len(a)]
}

// charOverlap is the loose character-overlap score used for suggestions
func charOverlap(a, b string) float64 {
	longer, shorter := a, b
	if len(b) > len(a) {
		longer, shorter = b, a
	}
	if len(longer) == 0 {
		return 1.0
	}
	matches := 0
	for i := 0; i < len(shorter); i++ {
		if strings.ContainsRune(longer, rune(shorter[i])) {
			matches++
		}
	}
	return float64(matches) / float64(len(longer))
}

func min3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
