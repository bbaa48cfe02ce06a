package parse

import (
	"fmt"
	"strings"

	"github.com/joshua0006/moneybee/internal/domain/catalog"
)

const (
	confCategoryIncome   = 0.80
	confCategoryMerchant = 0.95
	confCategoryFloor    = 0.30
	confCategoryCeiling  = 0.90
)

// suggestCategory maps the text plus the already-decided transaction type to
// one member of the closed category set. Merchant hits are checked before
// generic keywords: brand names are unambiguous, single words like "coffee"
// are not.
func (p *Parser) suggestCategory(cat *catalog.Catalog, lower string, txType TransactionType) (string, float64, string) {
	if txType == TypeIncome {
		income := cat.Income()
		return income, confCategoryIncome, fmt.Sprintf("category %s (income type)", income)
	}

	if m := p.engine.Match(lower); m != nil && m.Category != "" {
		return cat.Canonical(m.Category), confCategoryMerchant,
			fmt.Sprintf("category %s via merchant %s", m.Category, m.CleanName)
	}

	bestCategory := ""
	bestScore := 0
	var bestHits []string
	for _, name := range cat.Categories() {
		score, hits := keywordScore(lower, cat.CategoryKeywords()[name])
		if score > bestScore {
			bestCategory = name
			bestScore = score
			bestHits = hits
		}
	}

	if bestScore == 0 {
		return catalog.FallbackCategory, confCategoryFloor, "category Other (no keyword matches)"
	}

	// Confidence scales with match density: ~20 chars of keyword evidence
	// reaches the ceiling.
	confidence := confCategoryFloor + (confCategoryCeiling-confCategoryFloor)*float64(bestScore)/20.0
	if confidence > confCategoryCeiling {
		confidence = confCategoryCeiling
	}

	reason := fmt.Sprintf("category %s via keywords %s", bestCategory, strings.Join(bestHits, ", "))
	return bestCategory, confidence, reason
}
