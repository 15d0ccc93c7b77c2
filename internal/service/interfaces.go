// Package service defines the interfaces for all application services.
package service

import (
	"context"
	"time"

	"github.com/offerscope/offerscope/internal/model"
)

// ProductFilter defines filtering options for product queries.
type ProductFilter struct {
	Niche    string
	Platform string
	Limit    int
	Offset   int
}

// Storage defines the contract for the persistence layer.
type Storage interface {
	// Product operations
	SaveProducts(ctx context.Context, products []model.Product) error
	GetProductByID(ctx context.Context, id string) (*model.Product, error)
	GetProducts(ctx context.Context, filter ProductFilter) ([]model.Product, error)

	// Score operations
	SaveScore(ctx context.Context, scored *model.ScoredProduct) error
	GetLatestScore(ctx context.Context, productID string) (*model.ScoredProduct, error)
	GetTopOffers(ctx context.Context, limit int) ([]model.ScoredProduct, error)

	// Schema management
	Migrate(ctx context.Context) error
	Close() error
}

// RetryOptions configures retry behavior for transient failures.
type RetryOptions struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}
