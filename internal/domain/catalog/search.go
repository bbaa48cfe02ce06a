package catalog

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/keyword"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/simple"
	"github.com/blevesearch/bleve/v2/mapping"
)

// searchDocument is the indexed shape of a merchant entry.
type searchDocument struct {
	Pattern   string `json:"pattern"`
	CleanName string `json:"clean_name"`
	Category  string `json:"category"`
}

// SearchResult is a merchant lookup hit with its relevance score.
type SearchResult struct {
	Merchant Merchant `json:"merchant"`
	Score    float64  `json:"score"`
}

// SearchIndex provides full-text lookup over the merchant table so clients
// can offer autocomplete when a user corrects a low-confidence parse. The
// index is in-memory and rebuilt whenever the catalog reloads.
type SearchIndex struct {
	index bleve.Index
	mu    sync.RWMutex
}

// NewSearchIndex creates an in-memory index over the catalog's merchants.
func NewSearchIndex(cat *Catalog) (*SearchIndex, error) {
	si := &SearchIndex{}
	if err := si.Rebuild(cat); err != nil {
		return nil, err
	}
	return si, nil
}

func buildIndexMapping() mapping.IndexMapping {
	textField := bleve.NewTextFieldMapping()
	textField.Analyzer = simple.Name

	keywordField := bleve.NewTextFieldMapping()
	keywordField.Analyzer = keyword.Name

	docMapping := bleve.NewDocumentMapping()
	docMapping.AddFieldMappingsAt("pattern", keywordField)
	docMapping.AddFieldMappingsAt("clean_name", textField)
	docMapping.AddFieldMappingsAt("category", keywordField)

	indexMapping := bleve.NewIndexMapping()
	indexMapping.DefaultMapping = docMapping
	return indexMapping
}

// Rebuild replaces the index contents with the given catalog's merchants.
func (si *SearchIndex) Rebuild(cat *Catalog) error {
	index, err := bleve.NewMemOnly(buildIndexMapping())
	if err != nil {
		return fmt.Errorf("create merchant index: %w", err)
	}

	batch := index.NewBatch()
	for i, m := range cat.Merchants() {
		doc := searchDocument{
			Pattern:   m.Pattern,
			CleanName: m.CleanName,
			Category:  m.Category,
		}
		if err := batch.Index(strconv.Itoa(i), doc); err != nil {
			return fmt.Errorf("index merchant %q: %w", m.CleanName, err)
		}
	}
	if err := index.Batch(batch); err != nil {
		return fmt.Errorf("commit merchant index: %w", err)
	}

	si.mu.Lock()
	old := si.index
	si.index = index
	si.mu.Unlock()

	if old != nil {
		_ = old.Close()
	}
	return nil
}

// Search returns up to limit merchants matching the query, best first.
// Prefix and fuzzy matches are combined so partial brand names still hit.
func (si *SearchIndex) Search(queryText string, limit int) ([]SearchResult, error) {
	si.mu.RLock()
	defer si.mu.RUnlock()

	if limit <= 0 {
		limit = 10
	}

	prefix := bleve.NewPrefixQuery(queryText)
	prefix.SetField("clean_name")

	match := bleve.NewMatchQuery(queryText)
	match.SetField("clean_name")
	match.Fuzziness = 1

	combined := bleve.NewDisjunctionQuery(prefix, match)
	req := bleve.NewSearchRequestOptions(combined, limit, 0, false)
	req.Fields = []string{"pattern", "clean_name", "category"}

	res, err := si.index.Search(req)
	if err != nil {
		return nil, fmt.Errorf("merchant search: %w", err)
	}

	results := make([]SearchResult, 0, len(res.Hits))
	for _, hit := range res.Hits {
		m := Merchant{}
		if v, ok := hit.Fields["pattern"].(string); ok {
			m.Pattern = v
		}
		if v, ok := hit.Fields["clean_name"].(string); ok {
			m.CleanName = v
		}
		if v, ok := hit.Fields["category"].(string); ok {
			m.Category = v
		}
		results = append(results, SearchResult{Merchant: m, Score: hit.Score})
	}
	return results, nil
}

// Close releases the underlying index.
func (si *SearchIndex) Close() error {
	si.mu.Lock()
	defer si.mu.Unlock()
	if si.index == nil {
		return nil
	}
	err := si.index.Close()
	si.index = nil
	return err
}
