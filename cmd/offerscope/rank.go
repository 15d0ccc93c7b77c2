package main

import (
	"encoding/json"
	"fmt"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/offerscope/offerscope/internal/ingest"
	"github.com/offerscope/offerscope/internal/report"
)

func rankCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Score and rank a batch of products",
		Long: `Rank reads product records from a JSON file, scores them concurrently,
and prints them sorted by total score. With --save, products and score
snapshots are persisted to the local database.`,
		RunE: runRank,
	}

	cmd.Flags().StringP("input", "i", "", "JSON file of product records (required)")
	cmd.Flags().StringP("output", "o", "table", "output format (table, json)")
	cmd.Flags().IntP("limit", "n", 0, "show only the top N offers (0 = all)")
	cmd.Flags().Bool("save", false, "persist products and scores to the database")
	cmd.Flags().Bool("no-analysis", false, "skip narrative analysis even if an LLM is configured")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func runRank(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	input, _ := cmd.Flags().GetString("input")
	output, _ := cmd.Flags().GetString("output")
	limit, _ := cmd.Flags().GetInt("limit")
	save, _ := cmd.Flags().GetBool("save")
	noAnalysis, _ := cmd.Flags().GetBool("no-analysis")

	products, err := ingest.ReadProducts(input)
	if err != nil {
		return err
	}
	if len(products) == 0 {
		return fmt.Errorf("no products found in %s", input)
	}

	bar := progressbar.NewOptions(len(products),
		progressbar.OptionSetDescription("Scoring offers"),
		progressbar.OptionSetWriter(cmd.ErrOrStderr()),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)

	engine, err := buildEngine(noAnalysis, func(_, _ int) {
		_ = bar.Add(1)
	})
	if err != nil {
		return err
	}

	scored := engine.ScoreBatch(ctx, products)
	_ = bar.Finish()

	if len(scored) < len(products) {
		cmd.PrintErrf("warning: %d of %d products failed to score\n",
			len(products)-len(scored), len(products))
	}

	if save {
		if err := persistScores(ctx, products, scored); err != nil {
			return err
		}
	}

	if limit > 0 && limit < len(scored) {
		scored = scored[:limit]
	}

	switch output {
	case "json":
		out := make([]report.ScoredProductJSON, 0, len(scored))
		for _, sp := range scored {
			out = append(out, report.ToJSON(sp))
		}
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(out)
	default:
		formatter := report.NewCLIFormatter()
		cmd.Println(formatter.FormatRanking(scored))
	}

	return nil
}
