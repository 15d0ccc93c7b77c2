package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/offerscope/offerscope/internal/ingest"
	"github.com/offerscope/offerscope/internal/model"
	"github.com/offerscope/offerscope/internal/report"
	"github.com/offerscope/offerscope/internal/service"
	"github.com/offerscope/offerscope/internal/storage"
)

func productsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "products",
		Short: "Manage the product database",
	}

	cmd.AddCommand(productsImportCmd())
	cmd.AddCommand(productsListCmd())
	cmd.AddCommand(productsTopCmd())

	return cmd
}

func productsImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import product records into the database",
		RunE: func(cmd *cobra.Command, _ []string) error {
			input, _ := cmd.Flags().GetString("input")

			products, err := ingest.ReadProducts(input)
			if err != nil {
				return err
			}

			store, err := openStorage(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.SaveProducts(cmd.Context(), products); err != nil {
				return fmt.Errorf("failed to import products: %w", err)
			}

			cmd.Printf("Imported %d products\n", len(products))
			return nil
		},
	}

	cmd.Flags().StringP("input", "i", "", "JSON file of product records (required)")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func productsListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored products",
		RunE: func(cmd *cobra.Command, _ []string) error {
			niche, _ := cmd.Flags().GetString("niche")
			platform, _ := cmd.Flags().GetString("platform")
			limit, _ := cmd.Flags().GetInt("limit")

			store, err := openStorage(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			products, err := store.GetProducts(cmd.Context(), service.ProductFilter{
				Niche:    niche,
				Platform: platform,
				Limit:    limit,
			})
			if err != nil {
				return err
			}

			if len(products) == 0 {
				cmd.Println("No products stored")
				return nil
			}

			for _, p := range products {
				cmd.Printf("%-24s %-36s $%-8.2f %4.1f★ %6d reviews  %s\n",
					p.ID, truncate(p.Name, 36), p.Price, p.Rating, p.Reviews, p.Niche)
			}
			return nil
		},
	}

	cmd.Flags().String("niche", "", "filter by niche substring")
	cmd.Flags().String("platform", "", "filter by platform substring")
	cmd.Flags().IntP("limit", "n", 50, "maximum products to list")

	return cmd
}

func productsTopCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "top",
		Short: "Show the highest-scoring stored offers",
		RunE: func(cmd *cobra.Command, _ []string) error {
			limit, _ := cmd.Flags().GetInt("limit")

			store, err := openStorage(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			offers, err := store.GetTopOffers(cmd.Context(), limit)
			if err != nil {
				return err
			}

			if len(offers) == 0 {
				cmd.Println("No scored offers stored; run 'offerscope rank --save' first")
				return nil
			}

			scored := make([]*model.ScoredProduct, len(offers))
			for i := range offers {
				scored[i] = &offers[i]
			}

			formatter := report.NewCLIFormatter()
			cmd.Println(formatter.FormatRanking(scored))
			return nil
		},
	}

	cmd.Flags().IntP("limit", "n", 10, "maximum offers to show")

	return cmd
}

// openStorage opens the configured SQLite database and applies migrations.
func openStorage(ctx context.Context) (*storage.SQLiteStorage, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".local", "share", "offerscope", "offerscope.db")
	}

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// persistScores saves the batch inputs and their score snapshots.
func persistScores(ctx context.Context, products []model.Product, scored []*model.ScoredProduct) error {
	store, err := openStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	if err := store.SaveProducts(ctx, products); err != nil {
		return fmt.Errorf("failed to save products: %w", err)
	}

	for _, sp := range scored {
		if err := store.SaveScore(ctx, sp); err != nil {
			return fmt.Errorf("failed to save score: %w", err)
		}
	}

	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
