package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/offerscope/offerscope/internal/common"
	"github.com/offerscope/offerscope/internal/model"
	"github.com/offerscope/offerscope/internal/service"
)

func newTestStorage(t *testing.T) *SQLiteStorage {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	storage, err := NewSQLiteStorage(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = storage.Close() })

	require.NoError(t, storage.Migrate(context.Background()))
	return storage
}

func sampleProduct(id string) model.Product {
	return model.Product{
		ID:             id,
		Name:           "Personal Finance Mastery Course",
		Description:    "A course",
		Category:       "Education",
		Niche:          "Personal Finance",
		Platform:       "ClickBank",
		Price:          197,
		CommissionRate: 50,
		Rating:         4.8,
		Reviews:        342,
	}
}

func sampleScored(productID string, total float64) *model.ScoredProduct {
	return &model.ScoredProduct{
		Product:    sampleProduct(productID),
		TotalScore: total,
		Grade:      model.Grade(total),
		Factors: model.FactorScores{
			MarketDemand:        95,
			Competition:         70,
			ConversionPotential: 85,
			CommissionValue:     95,
			VendorReputation:    80,
			RefundRisk:          90,
			TrafficCost:         35,
		},
		Risk: model.RiskAssessment{
			Level:   model.RiskMedium,
			Factors: []string{"High traffic cost - low profit margins"},
		},
		Profitability: model.Profitability{
			CommissionPerSale:       98.5,
			EstimatedCPC:            1.15,
			EstimatedConversionRate: 4.25,
			EstimatedCostPerSale:    27.06,
			EstimatedProfitPerSale:  71.44,
			EstimatedROI:            264.0,
			Level:                   model.ProfitabilityExcellent,
		},
		Analysis: "Strong offer with proven demand.",
		Recommendation: model.Recommendation{
			Action:     model.ActionPromote,
			Confidence: model.ConfidenceMedium,
			Reason:     "Good overall scores, manageable risk",
			Priority:   10,
		},
	}
}

func TestNewSQLiteStorageRequiresPath(t *testing.T) {
	_, err := NewSQLiteStorage("")
	require.Error(t, err)
}

func TestMigrateIsIdempotent(t *testing.T) {
	storage := newTestStorage(t)
	require.NoError(t, storage.Migrate(context.Background()))

	var version int
	row := storage.db.QueryRow(`SELECT MAX(version) FROM schema_versions`)
	require.NoError(t, row.Scan(&version))
	assert.Equal(t, ExpectedSchemaVersion, version)
}

func TestSaveAndGetProduct(t *testing.T) {
	storage := newTestStorage(t)
	ctx := context.Background()

	product := sampleProduct("fin-001")
	require.NoError(t, storage.SaveProducts(ctx, []model.Product{product}))

	got, err := storage.GetProductByID(ctx, "fin-001")
	require.NoError(t, err)
	assert.Equal(t, product, *got)
}

func TestSaveProductsUpsert(t *testing.T) {
	storage := newTestStorage(t)
	ctx := context.Background()

	product := sampleProduct("fin-001")
	require.NoError(t, storage.SaveProducts(ctx, []model.Product{product}))

	product.Price = 247
	product.Reviews = 400
	require.NoError(t, storage.SaveProducts(ctx, []model.Product{product}))

	got, err := storage.GetProductByID(ctx, "fin-001")
	require.NoError(t, err)
	assert.InDelta(t, 247.0, got.Price, 0.0001)
	assert.Equal(t, 400, got.Reviews)
}

func TestSaveProductsRejectsEmptyID(t *testing.T) {
	storage := newTestStorage(t)

	err := storage.SaveProducts(context.Background(), []model.Product{{Name: "No ID"}})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrInvalidConfig)
}

func TestSaveProductsEmptyBatch(t *testing.T) {
	storage := newTestStorage(t)
	require.NoError(t, storage.SaveProducts(context.Background(), nil))
}

func TestGetProductByIDNotFound(t *testing.T) {
	storage := newTestStorage(t)

	_, err := storage.GetProductByID(context.Background(), "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestGetProductsFilter(t *testing.T) {
	storage := newTestStorage(t)
	ctx := context.Background()

	a := sampleProduct("fin-001")
	b := sampleProduct("fit-001")
	b.Niche = "Fitness"
	b.Platform = "Impact"
	require.NoError(t, storage.SaveProducts(ctx, []model.Product{a, b}))

	byNiche, err := storage.GetProducts(ctx, service.ProductFilter{Niche: "fitness"})
	require.NoError(t, err)
	require.Len(t, byNiche, 1)
	assert.Equal(t, "fit-001", byNiche[0].ID)

	byPlatform, err := storage.GetProducts(ctx, service.ProductFilter{Platform: "clickbank"})
	require.NoError(t, err)
	require.Len(t, byPlatform, 1)
	assert.Equal(t, "fin-001", byPlatform[0].ID)

	all, err := storage.GetProducts(ctx, service.ProductFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	limited, err := storage.GetProducts(ctx, service.ProductFilter{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestSaveAndGetLatestScore(t *testing.T) {
	storage := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, storage.SaveProducts(ctx, []model.Product{sampleProduct("fin-001")}))

	first := sampleScored("fin-001", 80)
	second := sampleScored("fin-001", 83.75)
	require.NoError(t, storage.SaveScore(ctx, first))
	require.NoError(t, storage.SaveScore(ctx, second))

	got, err := storage.GetLatestScore(ctx, "fin-001")
	require.NoError(t, err)

	// Same-timestamp snapshots resolve by insertion order.
	assert.InDelta(t, 83.75, got.TotalScore, 0.0001)
	assert.Equal(t, second.Grade, got.Grade)
	assert.Equal(t, second.Factors, got.Factors)
	assert.Equal(t, second.Risk, got.Risk)
	assert.Equal(t, second.Profitability, got.Profitability)
	assert.Equal(t, second.Analysis, got.Analysis)
	assert.Equal(t, second.Recommendation, got.Recommendation)
}

func TestSaveScoreNil(t *testing.T) {
	storage := newTestStorage(t)
	require.Error(t, storage.SaveScore(context.Background(), nil))
}

func TestSaveScoreMissingProductID(t *testing.T) {
	storage := newTestStorage(t)

	scored := sampleScored("", 50)
	err := storage.SaveScore(context.Background(), scored)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrInvalidConfig)
}

func TestGetLatestScoreNotFound(t *testing.T) {
	storage := newTestStorage(t)

	_, err := storage.GetLatestScore(context.Background(), "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestGetLatestScoreMultipleRiskFactors(t *testing.T) {
	storage := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, storage.SaveProducts(ctx, []model.Product{sampleProduct("fin-001")}))

	scored := sampleScored("fin-001", 40)
	scored.Risk.Level = model.RiskHigh
	scored.Risk.Factors = []string{
		"Low market demand - product may not sell well",
		"High refund risk - unstable income",
		"High traffic cost - low profit margins",
	}
	require.NoError(t, storage.SaveScore(ctx, scored))

	got, err := storage.GetLatestScore(ctx, "fin-001")
	require.NoError(t, err)
	assert.Equal(t, scored.Risk.Factors, got.Risk.Factors)
}

func TestGetTopOffers(t *testing.T) {
	storage := newTestStorage(t)
	ctx := context.Background()

	products := []model.Product{
		sampleProduct("low"), sampleProduct("high"), sampleProduct("mid"),
	}
	require.NoError(t, storage.SaveProducts(ctx, products))

	require.NoError(t, storage.SaveScore(ctx, sampleScored("low", 30)))
	require.NoError(t, storage.SaveScore(ctx, sampleScored("high", 90)))
	require.NoError(t, storage.SaveScore(ctx, sampleScored("mid", 60)))

	offers, err := storage.GetTopOffers(ctx, 10)
	require.NoError(t, err)
	require.Len(t, offers, 3)
	assert.Equal(t, "high", offers[0].Product.ID)
	assert.Equal(t, "mid", offers[1].Product.ID)
	assert.Equal(t, "low", offers[2].Product.ID)
}

func TestGetTopOffersUsesLatestSnapshot(t *testing.T) {
	storage := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, storage.SaveProducts(ctx, []model.Product{
		sampleProduct("a"), sampleProduct("b"),
	}))

	// Product a was rescored lower; the ranking must honor the rescore.
	require.NoError(t, storage.SaveScore(ctx, sampleScored("a", 90)))
	require.NoError(t, storage.SaveScore(ctx, sampleScored("b", 70)))
	require.NoError(t, storage.SaveScore(ctx, sampleScored("a", 50)))

	offers, err := storage.GetTopOffers(ctx, 10)
	require.NoError(t, err)
	require.Len(t, offers, 2)
	assert.Equal(t, "b", offers[0].Product.ID)
	assert.InDelta(t, 70.0, offers[0].TotalScore, 0.0001)
	assert.Equal(t, "a", offers[1].Product.ID)
	assert.InDelta(t, 50.0, offers[1].TotalScore, 0.0001)
}

func TestGetTopOffersLimit(t *testing.T) {
	storage := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, storage.SaveProducts(ctx, []model.Product{
		sampleProduct("a"), sampleProduct("b"), sampleProduct("c"),
	}))
	require.NoError(t, storage.SaveScore(ctx, sampleScored("a", 90)))
	require.NoError(t, storage.SaveScore(ctx, sampleScored("b", 80)))
	require.NoError(t, storage.SaveScore(ctx, sampleScored("c", 70)))

	offers, err := storage.GetTopOffers(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, offers, 2)
}
