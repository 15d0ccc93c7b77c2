package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/offerscope/offerscope/internal/common"
	"github.com/offerscope/offerscope/internal/model"
	"github.com/offerscope/offerscope/internal/service"
)

// SaveProducts upserts a batch of products in a single transaction.
func (s *SQLiteStorage) SaveProducts(ctx context.Context, products []model.Product) error {
	if len(products) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO products
		(id, name, description, category, niche, platform, price, commission_rate, rating, reviews)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			description = excluded.description,
			category = excluded.category,
			niche = excluded.niche,
			platform = excluded.platform,
			price = excluded.price,
			commission_rate = excluded.commission_rate,
			rating = excluded.rating,
			reviews = excluded.reviews`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, p := range products {
		if p.ID == "" {
			return fmt.Errorf("product %q: %w", p.Name, common.ErrInvalidConfig)
		}
		if _, err := stmt.ExecContext(ctx,
			p.ID, p.Name, p.Description, p.Category, p.Niche, p.Platform,
			p.Price, p.CommissionRate, p.Rating, p.Reviews); err != nil {
			return fmt.Errorf("failed to save product %s: %w", p.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetProductByID retrieves a single product.
func (s *SQLiteStorage) GetProductByID(ctx context.Context, id string) (*model.Product, error) {
	row := s.db.QueryRowContext(ctx, `SELECT id, name, description, category, niche, platform,
		price, commission_rate, rating, reviews FROM products WHERE id = ?`, id)

	var p model.Product
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Category, &p.Niche, &p.Platform,
		&p.Price, &p.CommissionRate, &p.Rating, &p.Reviews)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("product %s: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	return &p, nil
}

// GetProducts retrieves products matching the filter, most recent first.
func (s *SQLiteStorage) GetProducts(ctx context.Context, filter service.ProductFilter) ([]model.Product, error) {
	query := `SELECT id, name, description, category, niche, platform,
		price, commission_rate, rating, reviews FROM products`

	var conds []string
	var args []any
	if filter.Niche != "" {
		conds = append(conds, "LOWER(niche) LIKE ?")
		args = append(args, "%"+strings.ToLower(filter.Niche)+"%")
	}
	if filter.Platform != "" {
		conds = append(conds, "LOWER(platform) LIKE ?")
		args = append(args, "%"+strings.ToLower(filter.Platform)+"%")
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}

	query += " ORDER BY created_at DESC"
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
		if filter.Offset > 0 {
			query += " OFFSET ?"
			args = append(args, filter.Offset)
		}
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var products []model.Product
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Category, &p.Niche, &p.Platform,
			&p.Price, &p.CommissionRate, &p.Rating, &p.Reviews); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate products: %w", err)
	}

	return products, nil
}
