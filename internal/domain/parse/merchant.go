package parse

import (
	"regexp"
	"strings"

	"github.com/joshua0006/moneybee/internal/domain/catalog"
)

// Fuzzy threshold for the misspelled-merchant fallback (0-100).
const merchantFuzzyThreshold = 85

var capitalizedWordRe = regexp.MustCompile(`\b[A-Z][a-z]{2,}\b`)

// extractMerchant is a best-effort business-name lookup: exact table match
// first, then the fuzzy matcher for misspellings, then the first capitalized
// word of the original-cased text. Absence is a valid result.
func (p *Parser) extractMerchant(cat *catalog.Catalog, original, lower string) string {
	if m := p.engine.Match(lower); m != nil {
		return m.CleanName
	}

	if m := p.fuzzy.Match(lower, merchantFuzzyThreshold); m != nil {
		return m.CleanName
	}

	for _, word := range capitalizedWordRe.FindAllString(original, -1) {
		if cat.IsNoiseWord(strings.ToLower(word)) {
			continue
		}
		return word
	}
	return ""
}
