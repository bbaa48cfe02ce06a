// Package enrich implements the two-stage parse pipeline: the local
// heuristic result, optionally refined by a remote text-understanding
// service when local confidence is low. Remote failures always degrade to
// the local result; they never surface to the caller.
package enrich

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/joshua0006/moneybee/internal/domain/catalog"
	"github.com/joshua0006/moneybee/internal/domain/parse"
	"github.com/joshua0006/moneybee/pkg/metrics"
)

// DefaultAIFallbackThreshold triggers the remote call when the local overall
// confidence falls below it. Tunable, not load-bearing precision.
const DefaultAIFallbackThreshold = 0.5

// DefaultRemoteTimeout bounds the single remote call; the caller is usually
// blocking an interactive form.
const DefaultRemoteTimeout = 8 * time.Second

// RemoteParser is the contract for the remote structured-extraction service.
// Implementations receive the raw text plus the closed category list and
// return a candidate result with per-field confidences.
type RemoteParser interface {
	Parse(ctx context.Context, text string, categories []string) (*RemoteResult, error)
}

// RemoteResult is the wire shape expected from the remote service. Pointer
// fields distinguish "absent" from zero values during validation.
type RemoteResult struct {
	Amount      *float64          `json:"amount"`
	Description *string           `json:"description"`
	Category    *string           `json:"category"`
	Type        *string           `json:"type"`
	Merchant    string            `json:"merchant,omitempty"`
	Reasoning   string            `json:"reasoning,omitempty"`
	Confidence  *RemoteConfidence `json:"confidence"`
}

// RemoteConfidence mirrors the per-field confidence block.
type RemoteConfidence struct {
	Amount      *float64 `json:"amount"`
	Description *float64 `json:"description"`
	Category    *float64 `json:"category"`
	Type        *float64 `json:"type"`
}

// ValidationError reports a structurally invalid remote response.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid remote response: field %s: %s", e.Field, e.Reason)
}

// Options mirror the entry point's per-call knobs.
type Options struct {
	UseAIFallback bool
	// ConfidenceThreshold overrides the service default when > 0.
	ConfidenceThreshold float64
}

// Service is the primary entry point combining the local parser with the
// optional remote augmentation stage.
type Service struct {
	parser    *parse.Parser
	remote    RemoteParser // nil disables augmentation entirely
	threshold float64
	timeout   time.Duration
	logger    *slog.Logger
	metrics   *metrics.Metrics
	tracer    trace.Tracer
}

// NewService creates the pipeline service. remote may be nil, in which case
// every result is local-only regardless of options.
func NewService(parser *parse.Parser, remote RemoteParser, logger *slog.Logger) *Service {
	return &Service{
		parser:    parser,
		remote:    remote,
		threshold: DefaultAIFallbackThreshold,
		timeout:   DefaultRemoteTimeout,
		logger:    logger,
		tracer:    otel.Tracer("moneybee/enrich"),
	}
}

// WithThreshold overrides the AI-fallback confidence threshold.
func (s *Service) WithThreshold(threshold float64) *Service {
	if threshold > 0 {
		s.threshold = threshold
	}
	return s
}

// WithTimeout overrides the remote call timeout.
func (s *Service) WithTimeout(timeout time.Duration) *Service {
	if timeout > 0 {
		s.timeout = timeout
	}
	return s
}

// WithMetrics attaches Prometheus instrumentation.
func (s *Service) WithMetrics(m *metrics.Metrics) *Service {
	s.metrics = m
	return s
}

// ParseExpenseText parses a quick-capture line. The local stage always runs;
// the remote stage runs only when the caller opted in and local confidence
// is below the threshold. This method never fails: every remote error path
// returns the local result.
func (s *Service) ParseExpenseText(ctx context.Context, text string, opts Options) parse.ParsedExpense {
	ctx, span := s.tracer.Start(ctx, "parser.ParseExpenseText")
	defer span.End()

	local := s.parser.Parse(text)

	threshold := s.threshold
	if opts.ConfidenceThreshold > 0 {
		threshold = opts.ConfidenceThreshold
	}

	if !opts.UseAIFallback || s.remote == nil || local.Confidence.Overall >= threshold {
		s.metrics.ObserveParse(string(local.Method), local.Confidence.Overall)
		return local
	}

	merged, err := s.enhance(ctx, text, local)
	if err != nil {
		s.logger.Warn("remote augmentation failed, returning local result",
			slog.Float64("local_confidence", local.Confidence.Overall),
			slog.Any("error", err),
		)
		s.metrics.ObserveParse(string(local.Method), local.Confidence.Overall)
		return local
	}

	s.metrics.ObserveParse(string(merged.Method), merged.Confidence.Overall)
	return merged
}

// enhance performs the bounded remote call, validates the response and
// merges it field-by-field with the local result.
func (s *Service) enhance(ctx context.Context, text string, local parse.ParsedExpense) (parse.ParsedExpense, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	ctx, span := s.tracer.Start(ctx, "parser.remoteParse")
	defer span.End()

	cat := s.parser.Catalog()

	start := time.Now()
	res, err := s.remote.Parse(ctx, text, cat.Categories())
	elapsed := time.Since(start)
	if err != nil {
		s.metrics.ObserveRemote("error", elapsed)
		return local, fmt.Errorf("remote parse: %w", err)
	}

	validated, err := validateRemote(res, cat)
	if err != nil {
		s.metrics.ObserveRemote("invalid", elapsed)
		return local, err
	}

	s.metrics.ObserveRemote("success", elapsed)
	return merge(local, validated), nil
}

// remoteFields is a validated remote response, normalized into local types.
type remoteFields struct {
	amount      float64
	description string
	category    string
	txType      parse.TransactionType
	merchant    string
	reasoning   string
	confidence  parse.Confidence
}

// validateRemote enforces the structural contract before any merge: numeric
// non-negative amount, string description, a valid type enum, and numeric
// confidence subfields. Out-of-set categories are not an error; they coerce
// to the fallback so the closed-set invariant holds even on the remote path.
func validateRemote(res *RemoteResult, cat *catalog.Catalog) (remoteFields, error) {
	var out remoteFields

	if res == nil {
		return out, &ValidationError{Field: "body", Reason: "missing"}
	}
	if res.Amount == nil || math.IsNaN(*res.Amount) || math.IsInf(*res.Amount, 0) {
		return out, &ValidationError{Field: "amount", Reason: "missing or not finite"}
	}
	if *res.Amount < 0 {
		return out, &ValidationError{Field: "amount", Reason: "negative"}
	}
	if res.Description == nil {
		return out, &ValidationError{Field: "description", Reason: "missing"}
	}
	if res.Category == nil {
		return out, &ValidationError{Field: "category", Reason: "missing"}
	}
	if res.Type == nil {
		return out, &ValidationError{Field: "type", Reason: "missing"}
	}
	switch parse.TransactionType(*res.Type) {
	case parse.TypeExpense, parse.TypeIncome:
	default:
		return out, &ValidationError{Field: "type", Reason: fmt.Sprintf("unknown value %q", *res.Type)}
	}
	if res.Confidence == nil {
		return out, &ValidationError{Field: "confidence", Reason: "missing"}
	}
	for field, v := range map[string]*float64{
		"confidence.amount":      res.Confidence.Amount,
		"confidence.description": res.Confidence.Description,
		"confidence.category":    res.Confidence.Category,
		"confidence.type":        res.Confidence.Type,
	} {
		if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
			return out, &ValidationError{Field: field, Reason: "missing or not finite"}
		}
	}

	out.amount = *res.Amount
	out.description = *res.Description
	out.category = cat.Canonical(*res.Category)
	out.txType = parse.TransactionType(*res.Type)
	out.merchant = res.Merchant
	out.reasoning = res.Reasoning
	out.confidence = parse.Confidence{
		Amount:      clamp01(*res.Confidence.Amount),
		Description: clamp01(*res.Confidence.Description),
		Category:    clamp01(*res.Confidence.Category),
		Type:        clamp01(*res.Confidence.Type),
	}
	return out, nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
