package parse

import (
	"fmt"
	"strings"

	"github.com/joshua0006/moneybee/internal/domain/catalog"
)

// TransactionType labels a parsed entry as money out or money in.
type TransactionType string

const (
	TypeExpense TransactionType = "expense"
	TypeIncome  TransactionType = "income"
)

// Confidence for the winning label is capped: keyword evidence is never
// conclusive.
const maxTypeConfidence = 0.95

// classifyType scores the text against the income and expense keyword lists.
// Longer (more specific) keywords contribute more weight. With no evidence
// at all the classifier defaults to expense, the statistically dominant case
// for quick capture.
func classifyType(cat *catalog.Catalog, lower string) (TransactionType, float64, string) {
	incomeScore, incomeHits := keywordScore(lower, cat.IncomeKeywords())
	expenseScore, expenseHits := keywordScore(lower, cat.ExpenseKeywords())

	if incomeScore == 0 && expenseScore == 0 {
		return TypeExpense, 0.5, "type expense by default (no keywords)"
	}

	winner, loser := TypeExpense, incomeScore
	winning, hits := expenseScore, expenseHits
	if incomeScore > expenseScore {
		winner, loser = TypeIncome, expenseScore
		winning, hits = incomeScore, incomeHits
	}

	confidence := float64(winning) / float64(winning+loser)
	if confidence > maxTypeConfidence {
		confidence = maxTypeConfidence
	}

	reason := fmt.Sprintf("type %s via keywords %s", winner, strings.Join(hits, ", "))
	return winner, confidence, reason
}

// keywordScore sums length weights for every keyword found in the text and
// returns the matched keywords for the reasoning trace.
func keywordScore(lower string, keywords []string) (int, []string) {
	score := 0
	var hits []string
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			score += len(kw)
			hits = append(hits, kw)
		}
	}
	return score, hits
}
