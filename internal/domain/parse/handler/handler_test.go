package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshua0006/moneybee/internal/domain/catalog"
	"github.com/joshua0006/moneybee/internal/domain/enrich"
	"github.com/joshua0006/moneybee/internal/domain/parse"
)

func newTestRouter(t *testing.T) *mux.Router {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cat := catalog.Default()
	parser := parse.NewParser(cat, logger)
	svc := enrich.NewService(parser, nil, logger)

	index, err := catalog.NewSearchIndex(cat)
	require.NoError(t, err)
	t.Cleanup(func() { _ = index.Close() })

	r := mux.NewRouter()
	NewParseHandler(svc, parser, index, logger).RegisterRoutes(r)
	return r
}

func doJSON(t *testing.T, router *mux.Router, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestParseEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/v1/parse", `{"text":"$42.50 lunch"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		RequestID     string  `json:"request_id"`
		Amount        string  `json:"amount"`
		Currency      string  `json:"currency"`
		Description   string  `json:"description"`
		Category      string  `json:"category"`
		Type          string  `json:"type"`
		Method        string  `json:"parsing_method"`
		AmountDisplay string  `json:"amount_display"`
		Confidence    struct {
			Overall float64 `json:"overall"`
		} `json:"confidence"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.NotEmpty(t, resp.RequestID)
	assert.Equal(t, "42.5", resp.Amount)
	assert.Equal(t, "USD", resp.Currency)
	assert.Equal(t, "Lunch", resp.Description)
	assert.Equal(t, "Food & Dining", resp.Category)
	assert.Equal(t, "expense", resp.Type)
	assert.Equal(t, "local", resp.Method)
	assert.Equal(t, "$42.50", resp.AmountDisplay)
	assert.Greater(t, resp.Confidence.Overall, 0.0)
}

func TestParseEndpointValidation(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name string
		body string
	}{
		{"missing text", `{}`},
		{"blank text", `{"text":""}`},
		{"whitespace-only text", `{"text":"   \t\n"}`},
		{"invalid json", `{not json`},
		{"threshold too high", `{"text":"lunch 5","confidence_threshold":1.5}`},
		{"threshold negative", `{"text":"lunch 5","confidence_threshold":-0.2}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, router, http.MethodPost, "/v1/parse", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var resp struct {
				RequestID string `json:"request_id"`
				Error     string `json:"error"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp.RequestID)
			assert.NotEmpty(t, resp.Error)
		})
	}
}

func TestCategoriesEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/v1/categories", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Categories []string `json:"categories"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, catalog.DefaultCategories, resp.Categories)
}

func TestSearchMerchantsEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/v1/merchants/search?q=starbucks", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		RequestID string `json:"request_id"`
		Merchants []struct {
			Merchant struct {
				CleanName string `json:"clean_name"`
				Category  string `json:"category"`
			} `json:"merchant"`
			Score float64 `json:"score"`
		} `json:"merchants"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Merchants)
	assert.Equal(t, "Starbucks", resp.Merchants[0].Merchant.CleanName)
	assert.Equal(t, "Food & Dining", resp.Merchants[0].Merchant.Category)
}

func TestSearchMerchantsValidation(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/v1/merchants/search", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/v1/merchants/search?q=grab&limit=0", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/v1/merchants/search?q=grab&limit=abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestParseEndpointMethodNotAllowed(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/v1/parse", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
