package parse

import (
	"strings"
	"sync"

	"github.com/cloudflare/ahocorasick"

	"github.com/joshua0006/moneybee/internal/domain/catalog"
)

// Engine matches the merchant table against free text in a single pass using
// the Aho-Corasick algorithm. Table order is priority: the first table entry
// whose pattern occurs anywhere in the text wins, so operators can shadow
// broad patterns ("grab") with more specific ones ("grabfood") by ordering.
type Engine struct {
	matcher   *ahocorasick.Matcher
	merchants []catalog.Merchant // same order as the matcher's patterns
	mu        sync.RWMutex       // protects rebuilds on catalog reload
}

// NewEngine builds an engine from the merchant table.
func NewEngine(merchants []catalog.Merchant) *Engine {
	e := &Engine{}
	e.Build(merchants)
	return e
}

// Build reconstructs the matcher. Called again when the catalog reloads.
func (e *Engine) Build(merchants []catalog.Merchant) {
	e.mu.Lock()
	defer e.mu.Unlock()

	seen := make(map[string]struct{}, len(merchants))
	kept := make([]catalog.Merchant, 0, len(merchants))
	patterns := make([][]byte, 0, len(merchants))

	for _, m := range merchants {
		pattern := strings.ToLower(strings.TrimSpace(m.Pattern))
		if pattern == "" {
			continue
		}
		if _, dup := seen[pattern]; dup {
			continue // first entry wins
		}
		seen[pattern] = struct{}{}
		m.Pattern = pattern
		kept = append(kept, m)
		patterns = append(patterns, []byte(pattern))
	}

	e.merchants = kept
	if len(patterns) == 0 {
		e.matcher = nil
		return
	}
	e.matcher = ahocorasick.NewMatcher(patterns)
}

// Match returns the first merchant (in table order) whose pattern occurs in
// the text, or nil. Input is normalized to lowercase before matching.
func (e *Engine) Match(text string) *catalog.Merchant {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.matcher == nil {
		return nil
	}

	hits := e.matcher.Match([]byte(strings.ToLower(text)))
	if len(hits) == 0 {
		return nil
	}

	best := -1
	for _, idx := range hits {
		if idx < 0 || idx >= len(e.merchants) {
			continue
		}
		if best == -1 || idx < best {
			best = idx
		}
	}
	if best == -1 {
		return nil
	}

	m := e.merchants[best]
	return &m
}

// PatternCount returns the number of patterns loaded.
func (e *Engine) PatternCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.merchants)
}
