package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempCSV(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadMerchantsCSV(t *testing.T) {
	path := writeTempCSV(t, "merchants.csv",
		"pattern,clean_name,category\n"+
			"acme,Acme Corp,Shopping\n"+
			"  SPACED  ,Spaced Out,Other\n"+
			",Missing Pattern,Other\n")

	got, err := LoadMerchantsCSV(path)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, Merchant{Pattern: "acme", CleanName: "Acme Corp", Category: "Shopping"}, got[0])
	assert.Equal(t, "spaced", got[1].Pattern, "patterns are lowercased and trimmed")
	assert.Equal(t, "Spaced Out", got[1].CleanName)
}

func TestLoadMerchantsCSVMissingFile(t *testing.T) {
	_, err := LoadMerchantsCSV(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open merchants csv")
}

func TestLoadKeywordsCSV(t *testing.T) {
	path := writeTempCSV(t, "keywords.csv",
		"category,keyword\n"+
			"Shopping,widget\n"+
			"Shopping,GADGET\n"+
			"Travel,cruise\n"+
			",orphan\n")

	got, err := LoadKeywordsCSV(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"widget", "gadget"}, got["Shopping"])
	assert.Equal(t, []string{"cruise"}, got["Travel"])
	assert.NotContains(t, got, "")
}

func TestLoadWithOverrides(t *testing.T) {
	merchantsPath := writeTempCSV(t, "merchants.csv",
		"pattern,clean_name,category\n"+
			"starbucks,My Local Roaster,Food & Dining\n")
	keywordsPath := writeTempCSV(t, "keywords.csv",
		"category,keyword\n"+
			"Travel,staycation\n")

	cat, err := LoadWithOverrides(merchantsPath, keywordsPath)
	require.NoError(t, err)

	// Override rows sit ahead of the builtin table, so the duplicate
	// starbucks pattern resolves to the override.
	assert.Equal(t, "My Local Roaster", cat.Merchants()[0].CleanName)
	assert.Contains(t, cat.CategoryKeywords()["Travel"], "staycation")
	assert.Contains(t, cat.CategoryKeywords()["Travel"], "flight")
}

func TestLoadWithOverridesUnknownCategory(t *testing.T) {
	merchantsPath := writeTempCSV(t, "merchants.csv",
		"pattern,clean_name,category\n"+
			"acme,Acme Corp,Not A Category\n")

	_, err := LoadWithOverrides(merchantsPath, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown category")
}

func TestLoadWithOverridesEmptyPaths(t *testing.T) {
	cat, err := LoadWithOverrides("", "")
	require.NoError(t, err)
	assert.Len(t, cat.Merchants(), len(defaultMerchants()))
}
