package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/offerscope/offerscope/internal/common"
	"github.com/offerscope/offerscope/internal/model"
)

// riskFactorSeparator joins the risk factor list into a single column.
// Factor strings never contain newlines.
const riskFactorSeparator = "\n"

const scoreColumns = `s.total_score, s.grade,
	s.market_demand, s.competition, s.conversion_potential, s.commission_value,
	s.vendor_reputation, s.refund_risk, s.traffic_cost,
	s.risk_level, s.risk_factors,
	s.commission_per_sale, s.estimated_cpc, s.estimated_conversion_rate,
	s.estimated_cost_per_sale, s.estimated_profit_per_sale, s.estimated_roi,
	s.profitability_level, s.analysis, s.action, s.confidence, s.reason, s.priority`

// SaveScore persists a score snapshot. The product must already exist.
func (s *SQLiteStorage) SaveScore(ctx context.Context, scored *model.ScoredProduct) error {
	if scored == nil {
		return fmt.Errorf("scored product cannot be nil")
	}
	if scored.Product.ID == "" {
		return fmt.Errorf("scored product missing product ID: %w", common.ErrInvalidConfig)
	}

	_, err := s.db.ExecContext(ctx, `INSERT INTO scores
		(product_id, total_score, grade,
		market_demand, competition, conversion_potential, commission_value,
		vendor_reputation, refund_risk, traffic_cost,
		risk_level, risk_factors,
		commission_per_sale, estimated_cpc, estimated_conversion_rate,
		estimated_cost_per_sale, estimated_profit_per_sale, estimated_roi,
		profitability_level, analysis, action, confidence, reason, priority)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		scored.Product.ID, scored.TotalScore, scored.Grade,
		scored.Factors.MarketDemand, scored.Factors.Competition,
		scored.Factors.ConversionPotential, scored.Factors.CommissionValue,
		scored.Factors.VendorReputation, scored.Factors.RefundRisk,
		scored.Factors.TrafficCost,
		string(scored.Risk.Level), strings.Join(scored.Risk.Factors, riskFactorSeparator),
		scored.Profitability.CommissionPerSale, scored.Profitability.EstimatedCPC,
		scored.Profitability.EstimatedConversionRate, scored.Profitability.EstimatedCostPerSale,
		scored.Profitability.EstimatedProfitPerSale, scored.Profitability.EstimatedROI,
		string(scored.Profitability.Level), scored.Analysis,
		string(scored.Recommendation.Action), string(scored.Recommendation.Confidence),
		scored.Recommendation.Reason, scored.Recommendation.Priority)
	if err != nil {
		return fmt.Errorf("failed to save score for product %s: %w", scored.Product.ID, err)
	}

	return nil
}

// GetLatestScore returns the most recent score snapshot for a product.
func (s *SQLiteStorage) GetLatestScore(ctx context.Context, productID string) (*model.ScoredProduct, error) {
	query := fmt.Sprintf(`SELECT p.id, p.name, p.description, p.category, p.niche, p.platform,
		p.price, p.commission_rate, p.rating, p.reviews, %s
		FROM scores s
		JOIN products p ON p.id = s.product_id
		WHERE s.product_id = ?
		ORDER BY s.scored_at DESC, s.id DESC
		LIMIT 1`, scoreColumns)

	row := s.db.QueryRowContext(ctx, query, productID)
	scored, err := scanScoredProduct(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("score for product %s: %w", productID, common.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get latest score: %w", err)
	}

	return scored, nil
}

// GetTopOffers returns the highest-scoring products using each product's
// most recent snapshot, ordered by total score descending.
func (s *SQLiteStorage) GetTopOffers(ctx context.Context, limit int) ([]model.ScoredProduct, error) {
	if limit <= 0 {
		limit = 10
	}

	query := fmt.Sprintf(`SELECT p.id, p.name, p.description, p.category, p.niche, p.platform,
		p.price, p.commission_rate, p.rating, p.reviews, %s
		FROM scores s
		JOIN products p ON p.id = s.product_id
		WHERE s.id IN (SELECT MAX(id) FROM scores GROUP BY product_id)
		ORDER BY s.total_score DESC
		LIMIT ?`, scoreColumns)

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query top offers: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var offers []model.ScoredProduct
	for rows.Next() {
		scored, err := scanScoredProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan offer: %w", err)
		}
		offers = append(offers, *scored)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate offers: %w", err)
	}

	return offers, nil
}

// rowScanner abstracts *sql.Row and *sql.Rows for shared scanning.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanScoredProduct(row rowScanner) (*model.ScoredProduct, error) {
	var scored model.ScoredProduct
	var riskLevel, profitabilityLevel, action, confidence string
	var riskFactors string

	err := row.Scan(
		&scored.Product.ID, &scored.Product.Name, &scored.Product.Description,
		&scored.Product.Category, &scored.Product.Niche, &scored.Product.Platform,
		&scored.Product.Price, &scored.Product.CommissionRate,
		&scored.Product.Rating, &scored.Product.Reviews,
		&scored.TotalScore, &scored.Grade,
		&scored.Factors.MarketDemand, &scored.Factors.Competition,
		&scored.Factors.ConversionPotential, &scored.Factors.CommissionValue,
		&scored.Factors.VendorReputation, &scored.Factors.RefundRisk,
		&scored.Factors.TrafficCost,
		&riskLevel, &riskFactors,
		&scored.Profitability.CommissionPerSale, &scored.Profitability.EstimatedCPC,
		&scored.Profitability.EstimatedConversionRate, &scored.Profitability.EstimatedCostPerSale,
		&scored.Profitability.EstimatedProfitPerSale, &scored.Profitability.EstimatedROI,
		&profitabilityLevel, &scored.Analysis,
		&action, &confidence, &scored.Recommendation.Reason,
		&scored.Recommendation.Priority)
	if err != nil {
		return nil, err
	}

	scored.Risk.Level = model.RiskLevel(riskLevel)
	scored.Risk.Factors = strings.Split(riskFactors, riskFactorSeparator)
	scored.Profitability.Level = model.ProfitabilityLevel(profitabilityLevel)
	scored.Recommendation.Action = model.Action(action)
	scored.Recommendation.Confidence = model.Confidence(confidence)

	return &scored, nil
}
