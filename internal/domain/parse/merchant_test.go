package parse

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractMerchant(t *testing.T) {
	p, cat := testParser(t)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"exact table match", "coffee 5 bucks starbucks", "Starbucks"},
		{"specific pattern beats broad one", "grabfood order 23.40", "GrabFood"},
		{"broad pattern still matches alone", "grab to changi airport 18.30", "Grab"},
		{"misspelling via fuzzy", "latte at starbuks 6.50", "Starbucks"},
		{"capitalized word fallback", "paid Alice for dinner 30", "Alice"},
		{"noise capital skipped", "Spent 20 at Decathlon", "Decathlon"},
		{"no merchant at all", "lunch 12.50", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.extractMerchant(cat, tt.input, strings.ToLower(tt.input))
			assert.Equal(t, tt.want, got)
		})
	}
}
