package parse

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Pattern families tried in strict priority order. Confidence reflects how
// unambiguous the family is: an adjacent currency symbol is near-certain, a
// bare standalone number is a last resort.
const (
	confSymbol     = 0.95
	confWord       = 0.90
	confMultiplier = 0.85
	confApprox     = 0.75
	confBare       = 0.60
)

// Amounts at or above one million major units are treated as implausible for
// a quick-capture expense (phone numbers, years, account references).
var maxPlausibleAmount = decimal.NewFromInt(1_000_000)

var (
	symbolPrefixRe = regexp.MustCompile(`(s\$|us\$|[$€£¥])\s?(\d+(?:[.,]\d{1,2})?)`)
	symbolSuffixRe = regexp.MustCompile(`(\d+(?:[.,]\d{1,2})?)\s?(s\$|[$€£¥])`)
	currencyWordRe = regexp.MustCompile(`(\d+(?:[.,]\d{1,2})?)\s?(dollars?|bucks?|usd|sgd|eur|euros?|gbp|pounds?|quid)\b`)
	multiplierRe   = regexp.MustCompile(`\b(\d+(?:\.\d+)?)\s?(k|m|mil|million)\b`)
	approxRe       = regexp.MustCompile(`(?:around|about|approx(?:imately)?|roughly|~)\s*[$€£¥]?\s?(\d+(?:[.,]\d{1,2})?)`)
	bareNumberRe   = regexp.MustCompile(`\b(\d+(?:\.\d{1,2})?)\b`)
)

// amountMatch is the amount extractor's result for one input.
type amountMatch struct {
	value      decimal.Decimal
	currency   string
	confidence float64
	family     string
	matched    []string // raw substrings the description cleaner strips
}

type amountCandidate struct {
	value    decimal.Decimal
	currency string
	raw      string
}

// extractAmount returns the most plausible positive amount in the lowercased
// text. Families are tried in descending confidence order; within a family
// the largest value wins (totals normally exceed line items). A false return
// means "unparsed": amount zero, confidence zero.
func extractAmount(lower, defaultCurrency string) (amountMatch, bool) {
	families := []struct {
		name       string
		confidence float64
		collect    func(string, string) []amountCandidate
	}{
		{"currency-symbol", confSymbol, collectSymbol},
		{"currency-word", confWord, collectCurrencyWord},
		{"multiplier-suffix", confMultiplier, collectMultiplier},
		{"approximate-phrase", confApprox, collectApprox},
		{"bare-number", confBare, collectBare},
	}

	for _, family := range families {
		candidates := family.collect(lower, defaultCurrency)
		if len(candidates) == 0 {
			continue
		}

		best := -1
		matched := make([]string, 0, len(candidates))
		for i, c := range candidates {
			matched = append(matched, c.raw)
			if best == -1 || c.value.GreaterThan(candidates[best].value) {
				best = i
			}
		}

		return amountMatch{
			value:      candidates[best].value,
			currency:   candidates[best].currency,
			confidence: family.confidence,
			family:     family.name,
			matched:    matched,
		}, true
	}

	return amountMatch{value: decimal.Zero, currency: defaultCurrency}, false
}

func collectSymbol(lower, def string) []amountCandidate {
	var out []amountCandidate
	for _, m := range symbolPrefixRe.FindAllStringSubmatch(lower, -1) {
		if v, ok := parsePlausible(m[2]); ok {
			out = append(out, amountCandidate{v, currencyForSymbol(m[1], def), m[0]})
		}
	}
	for _, m := range symbolSuffixRe.FindAllStringSubmatch(lower, -1) {
		if v, ok := parsePlausible(m[1]); ok {
			out = append(out, amountCandidate{v, currencyForSymbol(m[2], def), m[0]})
		}
	}
	return out
}

func collectCurrencyWord(lower, def string) []amountCandidate {
	var out []amountCandidate
	for _, m := range currencyWordRe.FindAllStringSubmatch(lower, -1) {
		if v, ok := parsePlausible(m[1]); ok {
			out = append(out, amountCandidate{v, currencyForWord(m[2], def), m[0]})
		}
	}
	return out
}

func collectMultiplier(lower, def string) []amountCandidate {
	var out []amountCandidate
	for _, m := range multiplierRe.FindAllStringSubmatch(lower, -1) {
		v, err := decimal.NewFromString(m[1])
		if err != nil {
			continue
		}
		switch m[2] {
		case "k":
			v = v.Mul(decimal.NewFromInt(1_000))
		default:
			v = v.Mul(decimal.NewFromInt(1_000_000))
		}
		if plausible(v) {
			out = append(out, amountCandidate{v, def, m[0]})
		}
	}
	return out
}

func collectApprox(lower, def string) []amountCandidate {
	var out []amountCandidate
	for _, m := range approxRe.FindAllStringSubmatch(lower, -1) {
		if v, ok := parsePlausible(m[1]); ok {
			out = append(out, amountCandidate{v, def, m[0]})
		}
	}
	return out
}

func collectBare(lower, def string) []amountCandidate {
	var out []amountCandidate
	for _, m := range bareNumberRe.FindAllStringSubmatch(lower, -1) {
		if v, ok := parsePlausible(m[1]); ok {
			out = append(out, amountCandidate{v, def, m[0]})
		}
	}
	return out
}

// parsePlausible parses a numeric string (comma accepted as the decimal
// separator) and applies the positivity and upper-bound checks. Unparseable
// values are skipped silently so the caller falls through.
func parsePlausible(s string) (decimal.Decimal, bool) {
	s = strings.Replace(s, ",", ".", 1)
	v, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	if !plausible(v) {
		return decimal.Zero, false
	}
	return v, true
}

func plausible(v decimal.Decimal) bool {
	return v.IsPositive() && v.LessThan(maxPlausibleAmount)
}

func currencyForSymbol(symbol, def string) string {
	switch symbol {
	case "s$":
		return "SGD"
	case "us$":
		return "USD"
	case "€":
		return "EUR"
	case "£":
		return "GBP"
	case "¥":
		return "JPY"
	default: // "$"
		return def
	}
}

func currencyForWord(word, def string) string {
	switch word {
	case "usd":
		return "USD"
	case "sgd":
		return "SGD"
	case "eur", "euro", "euros":
		return "EUR"
	case "gbp", "pound", "pounds", "quid":
		return "GBP"
	default: // dollars, bucks
		return def
	}
}
