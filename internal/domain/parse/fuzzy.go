package parse

import (
	"strings"
	"sync"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/joshua0006/moneybee/internal/domain/catalog"
)

// FuzzyMatcher catches misspelled merchant names ("starbuks", "macdonalds")
// that the exact-substring engine misses. Candidate tokens and adjacent
// token pairs are scored against every pattern; the best score above the
// threshold wins.
type FuzzyMatcher struct {
	patterns []fuzzyPattern
	mu       sync.RWMutex
}

type fuzzyPattern struct {
	normalized string
	merchant   catalog.Merchant
}

// NewFuzzyMatcher builds a matcher from the merchant table.
func NewFuzzyMatcher(merchants []catalog.Merchant) *FuzzyMatcher {
	fm := &FuzzyMatcher{}
	fm.Build(merchants)
	return fm
}

// Build reconstructs the pattern list. Called again when the catalog reloads.
func (fm *FuzzyMatcher) Build(merchants []catalog.Merchant) {
	fm.mu.Lock()
	defer fm.mu.Unlock()

	fm.patterns = make([]fuzzyPattern, 0, len(merchants))
	for _, m := range merchants {
		normalized := strings.ToLower(strings.TrimSpace(m.Pattern))
		if normalized == "" {
			continue
		}
		fm.patterns = append(fm.patterns, fuzzyPattern{normalized: normalized, merchant: m})
	}
}

// Match returns the best-scoring merchant above threshold (0-100 scale), or
// nil. Earlier table entries win score ties.
func (fm *FuzzyMatcher) Match(text string, threshold int) *catalog.Merchant {
	fm.mu.RLock()
	defer fm.mu.RUnlock()

	if len(fm.patterns) == 0 {
		return nil
	}

	candidates := candidateTokens(strings.ToLower(text))
	if len(candidates) == 0 {
		return nil
	}

	var best *catalog.Merchant
	bestScore := threshold - 1

	for i := range fm.patterns {
		p := &fm.patterns[i]
		for _, token := range candidates {
			if score := fuzzyScore(token, p.normalized); score > bestScore {
				bestScore = score
				best = &p.merchant
			}
		}
	}
	return best
}

// candidateTokens returns the alphabetic tokens and adjacent token pairs of
// the text. Pairs let multi-word patterns like "cold storage" match.
func candidateTokens(text string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return !(r >= 'a' && r <= 'z')
	})

	tokens := make([]string, 0, len(fields)*2)
	for i, f := range fields {
		if len(f) < 3 {
			continue
		}
		tokens = append(tokens, f)
		if i+1 < len(fields) {
			tokens = append(tokens, f+" "+fields[i+1])
		}
	}
	return tokens
}

// fuzzyScore blends containment, Levenshtein distance and subsequence rank
// into a 0-100 similarity score.
func fuzzyScore(s1, s2 string) int {
	if s1 == s2 {
		return 100
	}

	// Containment is a strong signal for merchant variants.
	if strings.Contains(s1, s2) {
		return 75 + (25 * len(s2) / len(s1))
	}
	if strings.Contains(s2, s1) {
		return 75 + (25 * len(s1) / len(s2))
	}

	maxLen := max(len(s1), len(s2))
	if maxLen == 0 {
		return 0
	}
	levenshteinScore := 100 * (maxLen - levenshteinDistance(s1, s2)) / maxLen

	// Subsequence rank rewards matches that start early in the token.
	rankScore := 0
	if rank := fuzzy.RankMatch(s2, s1); rank >= 0 && rank < len(s1) {
		rankScore = 60 - (rank * 40 / len(s1))
	}

	return max(levenshteinScore, rankScore)
}

// levenshteinDistance computes edit distance using two rolling rows.
func levenshteinDistance(s1, s2 string) int {
	if len(s1) == 0 {
		return len(s2)
	}
	if len(s2) == 0 {
		return len(s1)
	}

	r1 := []rune(s1)
	r2 := []rune(s2)

	prev := make([]int, len(r2)+1)
	curr := make([]int, len(r2)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(r1); i++ {
		curr[0] = i
		for j := 1; j <= len(r2); j++ {
			cost := 1
			if r1[i-1] == r2[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(r2)]
}
