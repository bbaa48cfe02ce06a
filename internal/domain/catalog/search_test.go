package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestIndex(t *testing.T) *SearchIndex {
	t.Helper()
	si, err := NewSearchIndex(Default())
	require.NoError(t, err)
	t.Cleanup(func() { _ = si.Close() })
	return si
}

func TestSearchPrefix(t *testing.T) {
	si := newTestIndex(t)

	hits, err := si.Search("star", 5)
	require.NoError(t, err)
	require.NotEmpty(t, hits)

	names := make([]string, 0, len(hits))
	for _, h := range hits {
		names = append(names, h.Merchant.CleanName)
	}
	assert.Contains(t, names, "Starbucks")
}

func TestSearchFuzzy(t *testing.T) {
	si := newTestIndex(t)

	hits, err := si.Search("starbuks", 5)
	require.NoError(t, err)
	require.NotEmpty(t, hits)
	assert.Equal(t, "Starbucks", hits[0].Merchant.CleanName)
}

func TestSearchLimit(t *testing.T) {
	si := newTestIndex(t)

	hits, err := si.Search("s", 3)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(hits), 3)

	// Non-positive limits fall back to the default.
	hits, err = si.Search("grab", 0)
	require.NoError(t, err)
	assert.NotEmpty(t, hits)
}

func TestSearchNoResults(t *testing.T) {
	si := newTestIndex(t)

	hits, err := si.Search("zzzzqqqq", 5)
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestSearchRebuild(t *testing.T) {
	si := newTestIndex(t)

	custom, err := New(
		DefaultCategories,
		[]Merchant{{Pattern: "acme", CleanName: "Acme Corp", Category: "Shopping"}},
		nil,
	)
	require.NoError(t, err)
	require.NoError(t, si.Rebuild(custom))

	hits, err := si.Search("acme", 5)
	require.NoError(t, err)
	require.NotEmpty(t, hits)
	assert.Equal(t, "Acme Corp", hits[0].Merchant.CleanName)

	gone, err := si.Search("starbucks", 5)
	require.NoError(t, err)
	assert.Empty(t, gone)
}

func TestSearchResultsCarryScores(t *testing.T) {
	si := newTestIndex(t)

	hits, err := si.Search("netflix", 5)
	require.NoError(t, err)
	require.NotEmpty(t, hits)
	for _, h := range hits {
		assert.Greater(t, h.Score, 0.0)
	}
}
