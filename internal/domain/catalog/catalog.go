// Package catalog holds the closed category set, keyword tables and the
// merchant table consumed by the expense parser. Tables are immutable after
// construction and shared by reference; the parser never mutates them.
package catalog

import (
	"fmt"
	"strings"
)

// FallbackCategory is the closed set's unknown/low-confidence bucket.
const FallbackCategory = "Other"

// IncomeCategory is assigned when the type classifier decides income.
const IncomeCategory = "Income"

// DefaultCategories is the closed category set shipped with the service.
// FallbackCategory and IncomeCategory are members of the set, not sentinels
// outside it.
var DefaultCategories = []string{
	"Food & Dining",
	"Groceries",
	"Transportation",
	"Shopping",
	"Entertainment",
	"Bills & Utilities",
	"Healthcare",
	"Education",
	"Travel",
	"Personal Care",
	IncomeCategory,
	FallbackCategory,
}

// Catalog is the injected configuration for the parsing pipeline.
type Catalog struct {
	categories []string
	canonical  map[string]string // UPPER(name) -> canonical spelling

	merchants []Merchant

	categoryKeywords map[string][]string
	incomeKeywords   []string
	expenseKeywords  []string
	noiseWords       map[string]struct{}
}

// New builds a catalog from an explicit category set and tables. The category
// set must be non-empty and contain FallbackCategory; merchants referencing a
// category outside the set are rejected.
func New(categories []string, merchants []Merchant, categoryKeywords map[string][]string) (*Catalog, error) {
	if len(categories) == 0 {
		return nil, fmt.Errorf("catalog: category set is empty")
	}

	c := &Catalog{
		categories:       make([]string, len(categories)),
		canonical:        make(map[string]string, len(categories)),
		categoryKeywords: categoryKeywords,
		incomeKeywords:   defaultIncomeKeywords,
		expenseKeywords:  defaultExpenseKeywords,
		noiseWords:       defaultNoiseWords(),
	}
	copy(c.categories, categories)

	for _, name := range categories {
		c.canonical[strings.ToUpper(strings.TrimSpace(name))] = name
	}
	if !c.IsCategory(FallbackCategory) {
		return nil, fmt.Errorf("catalog: category set must include %q", FallbackCategory)
	}

	for _, m := range merchants {
		if m.Category != "" && !c.IsCategory(m.Category) {
			return nil, fmt.Errorf("catalog: merchant %q references unknown category %q", m.CleanName, m.Category)
		}
	}
	c.merchants = merchants

	for cat := range categoryKeywords {
		if !c.IsCategory(cat) {
			return nil, fmt.Errorf("catalog: keyword table references unknown category %q", cat)
		}
	}

	return c, nil
}

// Default returns the catalog with the builtin tables.
func Default() *Catalog {
	c, err := New(DefaultCategories, defaultMerchants(), defaultCategoryKeywords())
	if err != nil {
		// Builtin tables are validated by tests; a failure here is a
		// programming error.
		panic(err)
	}
	return c
}

// Categories returns a copy of the closed category set.
func (c *Catalog) Categories() []string {
	out := make([]string, len(c.categories))
	copy(out, c.categories)
	return out
}

// IsCategory reports whether name is a member of the closed set
// (case-insensitive).
func (c *Catalog) IsCategory(name string) bool {
	_, ok := c.canonical[strings.ToUpper(strings.TrimSpace(name))]
	return ok
}

// Canonical maps name onto its canonical spelling in the closed set. Values
// outside the set coerce to FallbackCategory.
func (c *Catalog) Canonical(name string) string {
	if canon, ok := c.canonical[strings.ToUpper(strings.TrimSpace(name))]; ok {
		return canon
	}
	return FallbackCategory
}

// Income returns the category assigned to income transactions: "Income" when
// the active set carries it, FallbackCategory otherwise.
func (c *Catalog) Income() string {
	if c.IsCategory(IncomeCategory) {
		return c.Canonical(IncomeCategory)
	}
	return FallbackCategory
}

// Merchants returns the merchant table.
func (c *Catalog) Merchants() []Merchant {
	return c.merchants
}

// CategoryKeywords returns the category keyword table.
func (c *Catalog) CategoryKeywords() map[string][]string {
	return c.categoryKeywords
}

// IncomeKeywords returns income-signal keywords for the type classifier.
func (c *Catalog) IncomeKeywords() []string { return c.incomeKeywords }

// ExpenseKeywords returns expense-signal keywords for the type classifier.
func (c *Catalog) ExpenseKeywords() []string { return c.expenseKeywords }

// IsNoiseWord reports whether a lowercased token is transactional filler
// that the description cleaner drops.
func (c *Catalog) IsNoiseWord(token string) bool {
	_, ok := c.noiseWords[token]
	return ok
}
