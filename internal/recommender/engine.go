package recommender

import (
	"context"
	"log/slog"
	"math"
	"time"

	"trini/internal/ambiguity"
	"trini/internal/extraction"
	"trini/internal/filters"
	"trini/internal/genre"
	"trini/internal/logging"
	"trini/internal/profile"
	"trini/internal/recommendation"
	"trini/internal/services"
	"trini/internal/validation"
)

// fallbackConfidenceCeiling caps confidence when the model answer could not
// be used and filters come from deterministic extraction.
const fallbackConfidenceCeiling = 0.4

// TextGenerator produces a completion for a prompt.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// Searcher runs the retrieval cascade.
type Searcher interface {
	Search(ctx context.Context, f filters.ExtractedFilters, limit int) []recommendation.MovieRecommendation
}

// ExtractionSource records where the filters of a Response came from.
type ExtractionSource string

const (
	ExtractionAI            ExtractionSource = "ai"
	ExtractionFallback      ExtractionSource = "fallback"
	ExtractionDeterministic ExtractionSource = "deterministic"
)

// Response is the outcome of Ask. Exactly one of Clarification and
// Recommendations is set.
type Response struct {
	RequestID       string                               `json:"request_id,omitempty"`
	Query           string                               `json:"query"`
	Filters         filters.ExtractedFilters             `json:"filters"`
	Source          ExtractionSource                     `json:"extraction_source"`
	Decision        string                               `json:"decision"`
	Clarification   string                               `json:"clarification,omitempty"`
	Recommendations []recommendation.MovieRecommendation `json:"recommendations,omitempty"`
}

// NeedsClarification reports whether the user should refine the query.
func (r Response) NeedsClarification() bool {
	return r.Clarification != ""
}

// Options configures an Engine.
type Options struct {
	Genres         *genre.Table
	Extractor      *extraction.Extractor
	Search         Searcher
	// LLM is optional; without it Ask extracts deterministically.
	LLM            TextGenerator
	AITimeout      time.Duration
	// MaxQueryLength bounds sanitized queries; 0 means 500 runes.
	MaxQueryLength int
	// Limit is the result count Ask requests; 0 defers to the cascade.
	Limit          int
	Logger         *slog.Logger
}

// Engine answers movie queries.
type Engine struct {
	genres    *genre.Table
	extractor *extraction.Extractor
	validator *validation.Validator
	search    Searcher
	llm       TextGenerator
	aiTimeout time.Duration
	maxQuery  int
	limit     int
	logger    *slog.Logger
}

// New builds an Engine. Search is required.
func New(opts Options) *Engine {
	table := opts.Genres
	if table == nil {
		table = genre.Default()
	}
	extractor := opts.Extractor
	if extractor == nil {
		extractor = extraction.New(table, extraction.WithMaxQueryLength(opts.MaxQueryLength))
	}
	return &Engine{
		genres:    table,
		extractor: extractor,
		validator: validation.New(table),
		search:    opts.Search,
		llm:       opts.LLM,
		aiTimeout: opts.AITimeout,
		maxQuery:  opts.MaxQueryLength,
		limit:     opts.Limit,
		logger:    logging.NewComponentLogger(opts.Logger, "recommender"),
	}
}

// Genres returns the shared genre table.
func (e *Engine) Genres() *genre.Table {
	return e.genres
}

// Extract derives filters from query without remote calls.
func (e *Engine) Extract(query string) filters.ExtractedFilters {
	return e.extractor.Extract(query)
}

// ValidateAndExtract validates a model answer and calibrates it. When raw is
// unusable the filters are extracted from query instead, with confidence
// capped at 0.4. Ids from user are merged into the exclusion list.
func (e *Engine) ValidateAndExtract(raw any, query string, user *profile.UserContext) filters.ExtractedFilters {
	f, _ := e.validateAndExtract(raw, query)
	return f.WithExclusions(user.ExcludeList())
}

func (e *Engine) validateAndExtract(raw any, query string) (filters.ExtractedFilters, bool) {
	f, err := e.validator.Validate(raw)
	if err == nil {
		return ambiguity.Calibrate(f), true
	}
	e.logger.Debug("model answer rejected; extracting deterministically",
		logging.Args(append(logging.DecisionAttrs("filter_source", string(ExtractionFallback), "payload failed validation"),
			logging.Error(err))...)...)
	f = e.extractor.Extract(query)
	f = f.WithConfidence(math.Min(f.Confidence, fallbackConfidenceCeiling))
	f.Calibrated = true
	return f, false
}

// IsAmbiguous reports whether f needs clarification before searching.
func (e *Engine) IsAmbiguous(f filters.ExtractedFilters, query string) bool {
	return ambiguity.IsAmbiguous(f, query)
}

// Search runs the retrieval cascade. The result is never empty.
func (e *Engine) Search(ctx context.Context, f filters.ExtractedFilters, limit int) []recommendation.MovieRecommendation {
	ctx = services.WithStage(ctx, "search")
	return e.search.Search(ctx, f, limit)
}

// AskOption adjusts a single Ask call.
type AskOption func(*askSettings)

type askSettings struct {
	limit int
}

// WithLimit requests up to limit recommendations.
func WithLimit(limit int) AskOption {
	return func(s *askSettings) {
		s.limit = limit
	}
}

// Ask runs the full query flow. Only an unusable query is an error.
func (e *Engine) Ask(ctx context.Context, query string, user *profile.UserContext, opts ...AskOption) (Response, error) {
	settings := askSettings{limit: e.limit}
	for _, opt := range opts {
		opt(&settings)
	}
	clean, err := extraction.Sanitize(query, e.maxQuery)
	if err != nil {
		return Response{}, err
	}

	resp := Response{Query: clean}
	if id, ok := services.RequestIDFromContext(ctx); ok {
		resp.RequestID = id
	}
	logger := logging.WithContext(ctx, e.logger)

	resp.Filters, resp.Source = e.extractFilters(services.WithStage(ctx, "extraction"), query, clean, user)
	resp.Filters = resp.Filters.WithExclusions(user.ExcludeList())

	decision := ambiguity.Classify(resp.Filters, clean)
	resp.Decision = decision.String()
	if !decision.Proceed() {
		resp.Clarification = ambiguity.ClarificationMessage(resp.Filters)
		logger.Info("query needs clarification",
			logging.Args(logging.DecisionAttrsWithScore("ambiguity", resp.Decision, string(decision.Clarify.Reason), decision.Clarify.Score)...)...)
		return resp, nil
	}

	resp.Recommendations = e.Search(ctx, resp.Filters, settings.limit)
	attrs := []logging.Attr{
		logging.String("extraction_source", string(resp.Source)),
		logging.Int("results", len(resp.Recommendations)),
	}
	if len(resp.Recommendations) > 0 {
		attrs = append(attrs, logging.String("top_source", string(resp.Recommendations[0].Source)))
	}
	logger.Info("query answered", logging.Args(attrs...)...)
	return resp, nil
}

func (e *Engine) extractFilters(ctx context.Context, query, clean string, user *profile.UserContext) (filters.ExtractedFilters, ExtractionSource) {
	if e.llm == nil {
		return ambiguity.Calibrate(e.extractor.Extract(clean)), ExtractionDeterministic
	}
	logger := logging.WithContext(ctx, e.logger)

	prompt, err := e.extractor.Prompt(query, user)
	if err != nil {
		return ambiguity.Calibrate(e.extractor.Extract(clean)), ExtractionDeterministic
	}
	callCtx, cancel := e.withAITimeout(ctx)
	defer cancel()

	start := time.Now()
	text, err := e.llm.GenerateText(callCtx, prompt)
	if err != nil {
		logging.WarnWithContext(logger, "filter extraction model call failed; extracting deterministically", "llm_extraction_failed",
			logging.Error(err),
			logging.Duration("elapsed", time.Since(start)),
			logging.String(logging.FieldErrorHint, services.Hint(err)),
			logging.String(logging.FieldImpact, "filters come from keyword rules with reduced confidence"))
		f, _ := e.validateAndExtract(nil, clean)
		return f, ExtractionFallback
	}

	f, ok := e.validateAndExtract(text, clean)
	if !ok {
		return f, ExtractionFallback
	}
	logger.Debug("model filters accepted",
		logging.Duration("elapsed", time.Since(start)),
		logging.Float64("confidence", f.Confidence))
	return f, ExtractionAI
}

func (e *Engine) withAITimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if e.aiTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, e.aiTimeout)
}
