// Package scoring implements the deterministic offer scoring pipeline:
// seven factor scores, a weighted total, risk classification, profitability
// estimation, and a final recommendation.
package scoring

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/offerscope/offerscope/internal/model"
)

// AnalysisUnavailable is the narrative placeholder used whenever the
// collaborator is missing, errors, or times out. Substituting it never
// changes the computed score, risk, profitability, or recommendation.
const AnalysisUnavailable = "AI analysis unavailable"

// Analyst produces a short narrative analysis of a product and its factor
// scores. Implementations are expected to do network I/O and may fail.
type Analyst interface {
	GenerateAnalysis(ctx context.Context, product model.Product, factors model.FactorScores) (string, error)
}

// Engine scores affiliate offers. It is safe for concurrent use: the weight
// and keyword tables are read-only after construction and per-product
// scoring shares no other state.
type Engine struct {
	analyst  Analyst
	logger   *slog.Logger
	keywords Keywords
	weights  Weights
	config   Config
}

// Config holds configuration options for the scoring engine.
type Config struct {
	// OnProgress, when set, is invoked after each record in a batch
	// completes. Calls may arrive from multiple goroutines.
	OnProgress       func(completed, total int)
	Weights          Weights
	Keywords         Keywords
	Concurrency      int
	NarrativeTimeout time.Duration
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() Config {
	return Config{
		Weights:          DefaultWeights(),
		Keywords:         DefaultKeywords(),
		Concurrency:      4,
		NarrativeTimeout: 30 * time.Second,
	}
}

// New creates a scoring engine with default configuration. The analyst may
// be nil, in which case every result carries the placeholder narrative.
func New(analyst Analyst, logger *slog.Logger) (*Engine, error) {
	return NewWithConfig(analyst, logger, DefaultConfig())
}

// NewWithConfig creates a scoring engine with custom configuration.
func NewWithConfig(analyst Analyst, logger *slog.Logger, config Config) (*Engine, error) {
	if err := config.Weights.Validate(); err != nil {
		return nil, fmt.Errorf("invalid score weights: %w", err)
	}
	if config.Concurrency <= 0 {
		config.Concurrency = 4
	}
	if config.NarrativeTimeout <= 0 {
		config.NarrativeTimeout = 30 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Engine{
		analyst:  analyst,
		logger:   logger,
		keywords: config.Keywords,
		weights:  config.Weights,
		config:   config,
	}, nil
}

// ScoreProduct runs the full pipeline for a single product. The
// deterministic stages cannot fail for bad data; missing fields score
// through the arithmetic as zero values.
func (e *Engine) ScoreProduct(ctx context.Context, product model.Product) (*model.ScoredProduct, error) {
	factors := e.scoreFactors(&product)
	total := e.weights.total(factors)
	risk := assessRisk(factors)
	profitability := estimateProfitability(&product, factors)
	analysis := e.generateAnalysis(ctx, product, factors)
	recommendation := recommend(total, risk.Level, profitability.EstimatedROI)

	return &model.ScoredProduct{
		Product:        product,
		TotalScore:     total,
		Grade:          model.Grade(total),
		Factors:        factors,
		Risk:           risk,
		Profitability:  profitability,
		Analysis:       analysis,
		Recommendation: recommendation,
	}, nil
}

// ScoreBatch scores each product independently and returns the successful
// subset sorted by total score descending. Products with equal scores keep
// their input order. A single product's failure is logged and skipped; it
// never aborts the batch. Narrative calls fan out across a bounded worker
// pool.
func (e *Engine) ScoreBatch(ctx context.Context, products []model.Product) []*model.ScoredProduct {
	results := make([]*model.ScoredProduct, len(products))

	var wg sync.WaitGroup
	var mu sync.Mutex
	done := 0
	sem := make(chan struct{}, e.config.Concurrency)

	for i, product := range products {
		wg.Add(1)
		go func(idx int, p model.Product) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			defer func() {
				if r := recover(); r != nil {
					e.logger.Error("Panic while scoring product",
						"product_id", p.ID,
						"product_name", p.Name,
						"panic", r)
				}
				if e.config.OnProgress != nil {
					mu.Lock()
					done++
					e.config.OnProgress(done, len(products))
					mu.Unlock()
				}
			}()

			scored, err := e.ScoreProduct(ctx, p)
			if err != nil {
				e.logger.Error("Failed to score product",
					"product_id", p.ID,
					"product_name", p.Name,
					"error", err)
				return
			}
			results[idx] = scored
		}(i, product)
	}

	wg.Wait()

	// Compact in input order, then stable-sort on the unrounded score so
	// equal scores keep their original ordering.
	scored := make([]*model.ScoredProduct, 0, len(results))
	for _, r := range results {
		if r != nil {
			scored = append(scored, r)
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].TotalScore > scored[j].TotalScore
	})

	return scored
}

// generateAnalysis asks the collaborator for a narrative. Any failure,
// timeout, or missing analyst yields the placeholder; this call cannot fail
// the overall score.
func (e *Engine) generateAnalysis(ctx context.Context, product model.Product, factors model.FactorScores) string {
	if e.analyst == nil {
		return AnalysisUnavailable
	}

	ctx, cancel := context.WithTimeout(ctx, e.config.NarrativeTimeout)
	defer cancel()

	analysis, err := e.analyst.GenerateAnalysis(ctx, product, factors)
	if err != nil {
		e.logger.Warn("Narrative analysis unavailable",
			"product_id", product.ID,
			"product_name", product.Name,
			"error", err)
		return AnalysisUnavailable
	}
	if analysis == "" {
		return AnalysisUnavailable
	}

	return analysis
}
