// Package llm provides clients for text-generation providers used to
// produce narrative offer analyses.
package llm

import (
	"context"
	"time"
)

// Client defines the interface for text-generation providers.
type Client interface {
	// Complete sends a prompt and returns the raw response text.
	Complete(ctx context.Context, systemPrompt, prompt string) (string, error)
}

// Config holds configuration for LLM clients.
type Config struct {
	Provider    string
	APIKey      string
	Model       string
	MaxRetries  int
	RetryDelay  time.Duration
	RateLimit   int // Requests per minute
	Temperature float64
	MaxTokens   int
}
