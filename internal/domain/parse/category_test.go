package parse

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/joshua0006/moneybee/internal/domain/catalog"
)

func testParser(t *testing.T) (*Parser, *catalog.Catalog) {
	t.Helper()
	cat := catalog.Default()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewParser(cat, logger), cat
}

func TestSuggestCategory(t *testing.T) {
	p, cat := testParser(t)

	tests := []struct {
		name           string
		input          string
		txType         TransactionType
		wantCategory   string
		wantConfidence float64
	}{
		{"income short-circuits", "salary deposit 2500", TypeIncome, "Income", confCategoryIncome},
		{"merchant beats keywords", "coffee 5 bucks starbucks", TypeExpense, "Food & Dining", confCategoryMerchant},
		{"merchant grab", "grab to changi airport 18.30", TypeExpense, "Transportation", confCategoryMerchant},
		{"no evidence falls back", "mysterious thing 12", TypeExpense, catalog.FallbackCategory, confCategoryFloor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			category, confidence, reason := p.suggestCategory(cat, tt.input, tt.txType)
			assert.Equal(t, tt.wantCategory, category)
			assert.Equal(t, tt.wantConfidence, confidence)
			assert.NotEmpty(t, reason)
		})
	}
}

func TestSuggestCategoryKeywords(t *testing.T) {
	p, cat := testParser(t)

	tests := []struct {
		name         string
		input        string
		wantCategory string
	}{
		{"transport keyword", "mrt top up 20", "Transportation"},
		{"food keyword", "chicken rice for lunch 4.50", "Food & Dining"},
		{"healthcare keyword", "dentist appointment 120", "Healthcare"},
		{"entertainment keyword", "movie tickets 24", "Entertainment"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			category, confidence, _ := p.suggestCategory(cat, tt.input, TypeExpense)
			assert.Equal(t, tt.wantCategory, category)
			assert.Greater(t, confidence, confCategoryFloor)
			assert.LessOrEqual(t, confidence, confCategoryCeiling)
		})
	}
}

func TestSuggestCategoryAlwaysInClosedSet(t *testing.T) {
	p, cat := testParser(t)

	inputs := []string{
		"asdf qwerty",
		"paid 12 for things",
		"starbucks latte",
		"salary 3000",
		"",
	}
	for _, input := range inputs {
		for _, txType := range []TransactionType{TypeExpense, TypeIncome} {
			category, _, _ := p.suggestCategory(cat, input, txType)
			assert.True(t, cat.IsCategory(category), "category %q for input %q", category, input)
		}
	}
}

func TestSuggestCategoryDeterministic(t *testing.T) {
	p, cat := testParser(t)

	first, conf1, _ := p.suggestCategory(cat, "kopi and laksa at the hawker centre 8.50", TypeExpense)
	for range 10 {
		again, conf2, _ := p.suggestCategory(cat, "kopi and laksa at the hawker centre 8.50", TypeExpense)
		assert.Equal(t, first, again)
		assert.Equal(t, conf1, conf2)
	}
}
