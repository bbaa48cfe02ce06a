// Package handler exposes the parsing pipeline over HTTP.
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/joshua0006/moneybee/internal/domain/catalog"
	"github.com/joshua0006/moneybee/internal/domain/enrich"
	"github.com/joshua0006/moneybee/internal/domain/parse"
	"github.com/joshua0006/moneybee/pkg/money"
)

const defaultSearchLimit = 10

// ParseHandler implements the parsing HTTP endpoints.
type ParseHandler struct {
	svc    *enrich.Service
	parser *parse.Parser
	search *catalog.SearchIndex
	logger *slog.Logger
}

// NewParseHandler creates a new parse handler.
func NewParseHandler(svc *enrich.Service, parser *parse.Parser, search *catalog.SearchIndex, logger *slog.Logger) *ParseHandler {
	return &ParseHandler{svc: svc, parser: parser, search: search, logger: logger}
}

// RegisterRoutes attaches the endpoints to the router.
func (h *ParseHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/v1/parse", h.Parse).Methods(http.MethodPost)
	r.HandleFunc("/v1/categories", h.Categories).Methods(http.MethodGet)
	r.HandleFunc("/v1/merchants/search", h.SearchMerchants).Methods(http.MethodGet)
}

type parseRequest struct {
	Text                string  `json:"text"`
	UseAIFallback       bool    `json:"use_ai_fallback"`
	ConfidenceThreshold float64 `json:"confidence_threshold"`
}

type parseResponse struct {
	RequestID string `json:"request_id"`
	parse.ParsedExpense
	AmountDisplay string `json:"amount_display"`
}

type errorResponse struct {
	RequestID string `json:"request_id"`
	Error     string `json:"error"`
}

// Parse handles POST /v1/parse.
func (h *ParseHandler) Parse(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.NewString()

	var req parseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, requestID, http.StatusBadRequest, errors.New("invalid JSON body"))
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		h.writeError(w, requestID, http.StatusBadRequest, errors.New("text is required"))
		return
	}
	if req.ConfidenceThreshold < 0 || req.ConfidenceThreshold > 1 {
		h.writeError(w, requestID, http.StatusBadRequest, errors.New("confidence_threshold must be between 0 and 1"))
		return
	}

	result := h.svc.ParseExpenseText(r.Context(), req.Text, enrich.Options{
		UseAIFallback:       req.UseAIFallback,
		ConfidenceThreshold: req.ConfidenceThreshold,
	})

	h.logger.Info("parse request handled",
		slog.String("request_id", requestID),
		slog.String("method", string(result.Method)),
		slog.Float64("confidence", result.Confidence.Overall),
	)

	display := money.NewFromDecimal(result.Amount, result.Currency).Display()
	h.writeJSON(w, http.StatusOK, parseResponse{
		RequestID:     requestID,
		ParsedExpense: result,
		AmountDisplay: display,
	})
}

// Categories handles GET /v1/categories.
func (h *ParseHandler) Categories(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string][]string{
		"categories": h.parser.Catalog().Categories(),
	})
}

// SearchMerchants handles GET /v1/merchants/search?q=...&limit=...
func (h *ParseHandler) SearchMerchants(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.NewString()

	query := r.URL.Query().Get("q")
	if query == "" {
		h.writeError(w, requestID, http.StatusBadRequest, errors.New("q is required"))
		return
	}

	limit := defaultSearchLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			h.writeError(w, requestID, http.StatusBadRequest, errors.New("limit must be a positive integer"))
			return
		}
		limit = parsed
	}

	hits, err := h.search.Search(query, limit)
	if err != nil {
		h.logger.Error("merchant search failed",
			slog.String("request_id", requestID),
			slog.Any("error", err),
		)
		h.writeError(w, requestID, http.StatusInternalServerError, errors.New("search failed"))
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"request_id": requestID,
		"merchants":  hits,
	})
}

func (h *ParseHandler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("failed to encode response", slog.Any("error", err))
	}
}

func (h *ParseHandler) writeError(w http.ResponseWriter, requestID string, status int, err error) {
	h.writeJSON(w, status, errorResponse{RequestID: requestID, Error: err.Error()})
}
