// Package parse implements the local heuristic expense-text parser: amount
// extraction, transaction-type classification, category suggestion,
// description cleaning and merchant lookup, combined into one weighted
// confidence score. The pipeline is pure and deterministic; identical input
// always yields identical output.
package parse

import (
	"log/slog"
	"strings"
	"sync/atomic"

	"github.com/shopspring/decimal"

	"github.com/joshua0006/moneybee/internal/domain/catalog"
)

// Method records which path produced a result.
type Method string

const (
	MethodLocal          Method = "local"
	MethodAIEnhanced     Method = "ai_enhanced"
	MethodManualFallback Method = "manual_fallback"
)

// Fixed weights for the composite confidence. Amount and category carry the
// most weight because they are the decision-critical fields.
const (
	weightAmount      = 0.4
	weightDescription = 0.2
	weightCategory    = 0.3
	weightType        = 0.1
)

// Confidence carries per-field certainty plus the weighted composite, all in
// [0,1]. These are heuristic certainties, not statistical probabilities.
type Confidence struct {
	Amount      float64 `json:"amount"`
	Description float64 `json:"description"`
	Category    float64 `json:"category"`
	Type        float64 `json:"type"`
	Overall     float64 `json:"overall"`
}

// Weighted returns the fixed-weight linear combination of the four field
// confidences.
func (c Confidence) Weighted() float64 {
	return c.Amount*weightAmount +
		c.Description*weightDescription +
		c.Category*weightCategory +
		c.Type*weightType
}

// withOverall returns a copy with Overall recomputed from the field values.
func (c Confidence) withOverall() Confidence {
	c.Overall = c.Weighted()
	return c
}

// ParsedExpense is the transient parse result. It is constructed fresh per
// input, never mutated after construction, and consumed immediately by the
// caller.
type ParsedExpense struct {
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Type        TransactionType `json:"type"`
	Confidence  Confidence      `json:"confidence"`
	Merchant    string          `json:"merchant,omitempty"`
	Reasoning   string          `json:"reasoning,omitempty"`
	Method      Method          `json:"parsing_method"`
	RawText     string          `json:"raw_text"`
}

// Parser runs the local heuristics against the injected catalog tables.
// Safe for concurrent use; Reload may swap the tables at any time.
type Parser struct {
	catalog         atomic.Pointer[catalog.Catalog]
	engine          *Engine
	fuzzy           *FuzzyMatcher
	defaultCurrency string
	logger          *slog.Logger
}

// NewParser creates a parser over the given catalog.
func NewParser(cat *catalog.Catalog, logger *slog.Logger) *Parser {
	p := &Parser{
		engine:          NewEngine(cat.Merchants()),
		fuzzy:           NewFuzzyMatcher(cat.Merchants()),
		defaultCurrency: "USD",
		logger:          logger,
	}
	p.catalog.Store(cat)
	return p
}

// WithDefaultCurrency sets the currency assumed when the text carries no
// symbol or currency word.
func (p *Parser) WithDefaultCurrency(code string) *Parser {
	if code != "" {
		p.defaultCurrency = strings.ToUpper(code)
	}
	return p
}

// Reload swaps in a freshly loaded catalog and rebuilds the matchers.
func (p *Parser) Reload(cat *catalog.Catalog) {
	p.engine.Build(cat.Merchants())
	p.fuzzy.Build(cat.Merchants())
	p.catalog.Store(cat)
	p.logger.Info("parser tables reloaded",
		slog.Int("merchants", len(cat.Merchants())),
		slog.Int("categories", len(cat.Categories())),
	)
}

// Catalog returns the active catalog.
func (p *Parser) Catalog() *catalog.Catalog {
	return p.catalog.Load()
}

// Parse runs the full local pipeline. It never fails: unparseable fields
// come back as low-confidence values for the caller to flag, not as errors.
func (p *Parser) Parse(text string) ParsedExpense {
	cat := p.catalog.Load()

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return ParsedExpense{
			Amount:      decimal.Zero,
			Currency:    p.defaultCurrency,
			Description: placeholderGeneric,
			Category:    catalog.FallbackCategory,
			Type:        TypeExpense,
			Confidence:  Confidence{}.withOverall(),
			Reasoning:   "empty input",
			Method:      MethodManualFallback,
			RawText:     text,
		}
	}

	lower := strings.ToLower(trimmed)
	reasons := make([]string, 0, 4)

	amount, amountFound := extractAmount(lower, p.defaultCurrency)
	if amountFound {
		reasons = append(reasons, "amount "+amount.value.String()+" via "+amount.family+" pattern")
	} else {
		reasons = append(reasons, "no amount found")
	}

	txType, typeConf, typeReason := classifyType(cat, lower)
	reasons = append(reasons, typeReason)

	category, categoryConf, categoryReason := p.suggestCategory(cat, lower, txType)
	reasons = append(reasons, categoryReason)

	description, descriptionConf := cleanDescription(cat, trimmed, amount.matched, txType)

	merchant := p.extractMerchant(cat, trimmed, lower)
	if merchant != "" {
		reasons = append(reasons, "merchant "+merchant)
	}

	amountConf := 0.0
	if amountFound {
		amountConf = amount.confidence
	}

	return ParsedExpense{
		Amount:      amount.value,
		Currency:    amount.currency,
		Description: description,
		Category:    category,
		Type:        txType,
		Confidence: Confidence{
			Amount:      amountConf,
			Description: descriptionConf,
			Category:    categoryConf,
			Type:        typeConf,
		}.withOverall(),
		Merchant:  merchant,
		Reasoning: strings.Join(reasons, "; "),
		Method:    MethodLocal,
		RawText:   text,
	}
}
