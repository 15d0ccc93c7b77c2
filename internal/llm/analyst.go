package llm

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/offerscope/offerscope/internal/common"
	"github.com/offerscope/offerscope/internal/model"
	"github.com/offerscope/offerscope/internal/service"
)

const analystSystemPrompt = "You are an affiliate marketing strategist. Be direct and actionable."

// Analyst implements the scoring engine's narrative collaborator using LLM
// APIs. It adds rate limiting and retries on top of the raw client.
type Analyst struct {
	client      Client
	logger      *slog.Logger
	rateLimiter *rateLimiter
	retryOpts   service.RetryOptions
}

// NewAnalyst creates a new LLM-backed analyst.
func NewAnalyst(cfg Config, logger *slog.Logger) (*Analyst, error) {
	client, err := NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	retryOpts := service.RetryOptions{
		MaxAttempts:  cfg.MaxRetries,
		InitialDelay: cfg.RetryDelay,
		MaxDelay:     30 * time.Second,
		Multiplier:   2.0,
	}

	if retryOpts.MaxAttempts == 0 {
		retryOpts.MaxAttempts = 3
	}
	if retryOpts.InitialDelay == 0 {
		retryOpts.InitialDelay = time.Second
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Analyst{
		client:      client,
		logger:      logger,
		retryOpts:   retryOpts,
		rateLimiter: newRateLimiter(cfg.RateLimit),
	}, nil
}

// NewAnalystWithClient creates an analyst around an existing client.
// Used by tests to substitute a stub.
func NewAnalystWithClient(client Client, logger *slog.Logger) *Analyst {
	if logger == nil {
		logger = slog.Default()
	}
	return &Analyst{
		client:      client,
		logger:      logger,
		retryOpts:   service.RetryOptions{MaxAttempts: 1},
		rateLimiter: newRateLimiter(0),
	}
}

// GenerateAnalysis asks the LLM for a short strategic analysis of the
// product given its factor scores. Callers treat any error as non-fatal.
func (a *Analyst) GenerateAnalysis(ctx context.Context, product model.Product, factors model.FactorScores) (string, error) {
	if err := a.rateLimiter.wait(ctx); err != nil {
		return "", err
	}

	prompt := buildAnalysisPrompt(product, factors)

	var analysis string
	err := common.WithRetry(ctx, func() error {
		result, completeErr := a.client.Complete(ctx, analystSystemPrompt, prompt)
		if completeErr != nil {
			return completeErr
		}
		analysis = result
		return nil
	}, a.retryOpts)
	if err != nil {
		a.logger.Debug("analysis generation failed",
			"product_id", product.ID,
			"error", err)
		return "", fmt.Errorf("failed to generate analysis: %w", err)
	}

	return analysis, nil
}

// Close releases the analyst's rate limiter resources.
func (a *Analyst) Close() {
	a.rateLimiter.Close()
}

// buildAnalysisPrompt assembles the product summary the collaborator sees.
func buildAnalysisPrompt(p model.Product, f model.FactorScores) string {
	return fmt.Sprintf(`Analyze this affiliate product and provide strategic insights:

Product: %s
Category: %s / %s
Price: $%.2f
Commission: %.0f%%
Rating: %.1f/5 (%d reviews)

Scores:
- Market Demand: %.0f/100
- Competition: %.0f/100
- Conversion Potential: %.0f/100
- Commission Value: %.0f/100
- Vendor Reputation: %.0f/100
- Refund Risk: %.0f/100
- Traffic Cost: %.0f/100

Provide a 2-3 sentence analysis covering:
1. Why this product would or wouldn't be profitable
2. The biggest opportunity or risk
3. A specific strategy recommendation

Be direct and actionable.`,
		p.Name,
		p.Category, p.Niche,
		p.Price,
		p.CommissionRate,
		p.Rating, p.Reviews,
		f.MarketDemand,
		f.Competition,
		f.ConversionPotential,
		f.CommissionValue,
		f.VendorReputation,
		f.RefundRisk,
		f.TrafficCost,
	)
}
