package catalog

import (
	"fmt"

	"github.com/brianvoe/gofakeit/v6"
)

// PhraseGenerator produces realistic quick-capture phrases for tests and
// benchmarks. Seeded generators are reproducible.
type PhraseGenerator struct {
	faker *gofakeit.Faker
	cat   *Catalog
}

// NewPhraseGenerator creates a generator with a specific seed.
func NewPhraseGenerator(seed int64, cat *Catalog) *PhraseGenerator {
	return &PhraseGenerator{
		faker: gofakeit.New(seed),
		cat:   cat,
	}
}

// ExpensePhrase generates a plausible expense line like
// "paid 12.50 for lunch at Starbucks".
func (g *PhraseGenerator) ExpensePhrase() string {
	merchants := g.cat.Merchants()
	merchant := merchants[g.faker.IntRange(0, len(merchants)-1)]
	amount := float64(g.faker.IntRange(100, 20000)) / 100

	switch g.faker.IntRange(0, 3) {
	case 0:
		return fmt.Sprintf("$%.2f at %s", amount, merchant.CleanName)
	case 1:
		return fmt.Sprintf("paid %.2f for %s", amount, merchant.CleanName)
	case 2:
		return fmt.Sprintf("%s %.2f", merchant.CleanName, amount)
	default:
		return fmt.Sprintf("spent about %.0f on %s", amount, merchant.CleanName)
	}
}

// IncomePhrase generates a plausible income line like "salary deposit 2500".
func (g *PhraseGenerator) IncomePhrase() string {
	kw := defaultIncomeKeywords[g.faker.IntRange(0, len(defaultIncomeKeywords)-1)]
	amount := g.faker.IntRange(50, 5000)
	return fmt.Sprintf("%s %d", kw, amount)
}
