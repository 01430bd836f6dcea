// internal/match/fuzzy.go
package match

import (
	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

// DefaultThreshold is the minimum WRatio score for a correction to apply.
const DefaultThreshold = 70

// Matcher corrects free-text tokens against a fixed vocabulary.
type Matcher struct {
	vocabulary []string
	threshold  int
}

func NewMatcher(vocabulary []string) *Matcher {
	return &Matcher{vocabulary: vocabulary, threshold: DefaultThreshold}
}

// Best returns the vocabulary entry closest to the candidate, or the
// candidate unchanged when nothing scores at or above the threshold. An
// empty candidate is returned as-is without scoring.
func (m *Matcher) Best(candidate string) string {
	if candidate == "" {
		return candidate
	}

	best := ""
	bestScore := 0
	for _, entry := range m.vocabulary {
		score := fuzzy.WRatio(candidate, entry)
		if score > bestScore {
			best = entry
			bestScore = score
		}
	}

	if bestScore >= m.threshold {
		return best
	}
	return candidate
}
