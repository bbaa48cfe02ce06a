package parse

import (
	"strings"
	"unicode/utf8"

	"github.com/joshua0006/moneybee/internal/domain/catalog"
)

// Placeholder labels when nothing survives cleaning.
const (
	placeholderExpense = "Expense"
	placeholderGeneric = "Transaction"
)

const (
	confDescriptionEmpty   = 0.20
	confDescriptionCeiling = 0.90
)

// cleanDescription produces a short human-readable label: the amount
// substrings are cut out, transactional noise words dropped, and the first
// letter capitalized. Confidence grows with how much content survives; an
// empty result substitutes a placeholder at low confidence.
func cleanDescription(cat *catalog.Catalog, original string, amountSubstrings []string, txType TransactionType) (string, float64) {
	text := original
	for _, sub := range amountSubstrings {
		text = removeFold(text, sub)
	}

	var kept []string
	for _, token := range strings.Fields(text) {
		stripped := strings.ToLower(strings.Trim(token, ".,!?;:()[]\"'"))
		if stripped == "" || cat.IsNoiseWord(stripped) {
			continue
		}
		kept = append(kept, token)
	}

	cleaned := strings.Join(kept, " ")
	if cleaned == "" {
		if txType == TypeExpense {
			return placeholderExpense, confDescriptionEmpty
		}
		return placeholderGeneric, confDescriptionEmpty
	}

	first, size := utf8.DecodeRuneInString(cleaned)
	cleaned = strings.ToUpper(string(first)) + cleaned[size:]

	confidence := 0.5 + float64(len(cleaned))/40.0
	if confidence > confDescriptionCeiling {
		confidence = confDescriptionCeiling
	}
	return cleaned, confidence
}

// removeFold removes every case-insensitive occurrence of sub from text.
// The scan stays on rune boundaries of text itself, so case mappings that
// change byte length (Ⱥ, İ and friends) cannot skew the cut points.
func removeFold(text, sub string) string {
	lowerSub := strings.ToLower(sub)
	if lowerSub == "" {
		return text
	}

	var b strings.Builder
	for i := 0; i < len(text); {
		if n := foldPrefixLen(text[i:], lowerSub); n > 0 {
			i += n
			continue
		}
		_, size := utf8.DecodeRuneInString(text[i:])
		b.WriteString(text[i : i+size])
		i += size
	}
	return b.String()
}

// foldPrefixLen returns the byte length of the prefix of text whose
// lowercase form equals lowerSub, or 0 when text does not start with one.
func foldPrefixLen(text, lowerSub string) int {
	i := 0
	for len(lowerSub) > 0 {
		if i >= len(text) {
			return 0
		}
		r, size := utf8.DecodeRuneInString(text[i:])
		low := strings.ToLower(string(r))
		if !strings.HasPrefix(lowerSub, low) {
			return 0
		}
		lowerSub = lowerSub[len(low):]
		i += size
	}
	return i
}
