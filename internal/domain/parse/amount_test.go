package parse

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractAmount(t *testing.T) {
	tests := []struct {
		name           string
		input          string
		wantValue      string
		wantCurrency   string
		wantConfidence float64
		wantFamily     string
	}{
		{"dollar prefix", "$42.50 lunch", "42.5", "USD", confSymbol, "currency-symbol"},
		{"dollar prefix with space", "$ 18 taxi", "18", "USD", confSymbol, "currency-symbol"},
		{"euro prefix", "€9.99 coffee", "9.99", "EUR", confSymbol, "currency-symbol"},
		{"comma decimal separator", "€9,99 coffee", "9.99", "EUR", confSymbol, "currency-symbol"},
		{"pound prefix", "£12 pub", "12", "GBP", confSymbol, "currency-symbol"},
		{"singapore prefix", "s$6.80 kopi", "6.8", "SGD", confSymbol, "currency-symbol"},
		{"symbol suffix", "lunch 15$", "15", "USD", confSymbol, "currency-symbol"},
		{"currency word bucks", "coffee 5 bucks", "5", "USD", confWord, "currency-word"},
		{"currency word sgd", "7.50 sgd chicken rice", "7.5", "SGD", confWord, "currency-word"},
		{"currency word pounds", "20 quid taxi", "20", "GBP", confWord, "currency-word"},
		{"multiplier k", "bonus 2k", "2000", "USD", confMultiplier, "multiplier-suffix"},
		{"approximate phrase", "around 30 for groceries", "30", "USD", confApprox, "approximate-phrase"},
		{"bare number", "lunch 12.50", "12.5", "USD", confBare, "bare-number"},
		{"symbol beats approximate", "about $15 for a movie", "15", "USD", confSymbol, "currency-symbol"},
		{"largest bare number wins", "lunch 12.50 and coffee 4.50", "12.5", "USD", confBare, "bare-number"},
		{"largest symbol amount wins", "$8 starter and $22 main", "22", "USD", confSymbol, "currency-symbol"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := extractAmount(tt.input, "USD")
			require.True(t, found)
			assert.True(t, got.value.Equal(decimal.RequireFromString(tt.wantValue)),
				"value = %s, want %s", got.value, tt.wantValue)
			assert.Equal(t, tt.wantCurrency, got.currency)
			assert.Equal(t, tt.wantConfidence, got.confidence)
			assert.Equal(t, tt.wantFamily, got.family)
		})
	}
}

func TestExtractAmountNotFound(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"no numerics", "coffee with friends"},
		{"implausibly large", "paid 1500000 for a flat"},
		{"zero", "paid 0 dollars"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := extractAmount(tt.input, "USD")
			assert.False(t, found)
			assert.True(t, got.value.IsZero())
			assert.Zero(t, got.confidence)
			assert.Equal(t, "USD", got.currency)
		})
	}
}

func TestExtractAmountImplausibleMultiplierFallsThrough(t *testing.T) {
	// 2.5m exceeds the plausibility bound, so the multiplier family yields
	// nothing and the bare-number family picks up the leading digits.
	got, found := extractAmount("won 2.5m jackpot", "USD")
	require.True(t, found)
	assert.Equal(t, "bare-number", got.family)
}

func TestExtractAmountDefaultCurrency(t *testing.T) {
	got, found := extractAmount("$10 lunch", "SGD")
	require.True(t, found)
	assert.Equal(t, "SGD", got.currency, "bare $ takes the configured default")
}

func TestExtractAmountMatchedSubstrings(t *testing.T) {
	got, found := extractAmount("$8 starter and $22 main", "USD")
	require.True(t, found)
	assert.ElementsMatch(t, []string{"$8", "$22"}, got.matched)
}
