package match

import (
	"sort"
)

// DefaultThreshold is the minimum NameSimilarity for a suggestion.
const DefaultThreshold = 0.6

// Candidate is a known name scored against the requested one.
type Candidate struct {
	Name  string
	Score float64
}

// Rank scores every known name against target, best first. Ties are broken
// by name for determinism.
func Rank(target string, known []string) []Candidate {
	candidates := make([]Candidate, 0, len(known))
	for _, name := range known {
		candidates = append(candidates, Candidate{Name: name, Score: NameSimilarity(target, name)})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score > candidates[j].Score
		}

		return candidates[i].Name < candidates[j].Name
	})

	return candidates
}

// Suggest returns up to limit known names whose similarity to target is at
// least DefaultThreshold.
func Suggest(target string, known []string, limit int) []string {
	var out []string

	for _, c := range Rank(target, known) {
		if c.Score < DefaultThreshold || len(out) >= limit {
			break
		}

		out = append(out, c.Name)
	}

	return out
}
