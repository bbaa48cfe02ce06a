package catalog

import (
	"fmt"
	"os"
	"strings"

	"github.com/gocarina/gocsv"
)

// keywordRow is the CSV shape for keyword overrides.
type keywordRow struct {
	Category string `csv:"category"`
	Keyword  string `csv:"keyword"`
}

// LoadMerchantsCSV reads merchant rows from a CSV file with a
// pattern,clean_name,category header. Rows are appended ahead of the builtin
// table so operator overrides win on table-order priority.
func LoadMerchantsCSV(path string) ([]Merchant, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open merchants csv: %w", err)
	}
	defer f.Close()

	var rows []Merchant
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, fmt.Errorf("parse merchants csv: %w", err)
	}

	out := rows[:0]
	for _, m := range rows {
		m.Pattern = strings.ToLower(strings.TrimSpace(m.Pattern))
		m.CleanName = strings.TrimSpace(m.CleanName)
		if m.Pattern == "" || m.CleanName == "" {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

// LoadKeywordsCSV reads category,keyword rows and returns them grouped by
// category.
func LoadKeywordsCSV(path string) (map[string][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open keywords csv: %w", err)
	}
	defer f.Close()

	var rows []keywordRow
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, fmt.Errorf("parse keywords csv: %w", err)
	}

	grouped := make(map[string][]string)
	for _, row := range rows {
		kw := strings.ToLower(strings.TrimSpace(row.Keyword))
		cat := strings.TrimSpace(row.Category)
		if kw == "" || cat == "" {
			continue
		}
		grouped[cat] = append(grouped[cat], kw)
	}
	return grouped, nil
}

// LoadWithOverrides builds a catalog from the builtin tables plus optional
// CSV override files. Empty paths are skipped.
func LoadWithOverrides(merchantsPath, keywordsPath string) (*Catalog, error) {
	merchants := defaultMerchants()
	keywords := defaultCategoryKeywords()

	if merchantsPath != "" {
		extra, err := LoadMerchantsCSV(merchantsPath)
		if err != nil {
			return nil, err
		}
		merchants = append(extra, merchants...)
	}

	if keywordsPath != "" {
		extra, err := LoadKeywordsCSV(keywordsPath)
		if err != nil {
			return nil, err
		}
		for cat, kws := range extra {
			keywords[cat] = append(kws, keywords[cat]...)
		}
	}

	return New(DefaultCategories, merchants, keywords)
}
