package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/offerscope/offerscope/internal/ingest"
	"github.com/offerscope/offerscope/internal/report"
	"github.com/offerscope/offerscope/internal/scoring"
)

func scoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score products from a JSON file",
		Long: `Score reads product records from a JSON file, runs each through the
scoring pipeline, and prints a score card per product.`,
		RunE: runScore,
	}

	cmd.Flags().StringP("input", "i", "", "JSON file of product records (required)")
	cmd.Flags().StringP("output", "o", "text", "output format (text, json)")
	cmd.Flags().Bool("no-analysis", false, "skip narrative analysis even if an LLM is configured")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func runScore(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	input, _ := cmd.Flags().GetString("input")
	output, _ := cmd.Flags().GetString("output")
	noAnalysis, _ := cmd.Flags().GetBool("no-analysis")

	products, err := ingest.ReadProducts(input)
	if err != nil {
		return err
	}
	if len(products) == 0 {
		return fmt.Errorf("no products found in %s", input)
	}

	engine, err := buildEngine(noAnalysis, nil)
	if err != nil {
		return err
	}

	scored := engine.ScoreBatch(ctx, products)

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
		for _, sp := range scored {
			cmd.Println(formatter.FormatScoreCard(sp))
			cmd.Println()
		}
	}

	return nil
}

// buildEngine wires the scoring engine from configuration. The progress
// callback is optional.
func buildEngine(noAnalysis bool, onProgress func(completed, total int)) (*scoring.Engine, error) {
	var analyst scoring.Analyst
	if !noAnalysis {
		var err error
		analyst, err = createAnalyst()
		if err != nil {
			return nil, err
		}
	}

	config := scoring.DefaultConfig()
	config.OnProgress = onProgress
	if c := viper.GetInt("scoring.concurrency"); c > 0 {
		config.Concurrency = c
	}
	if t := viper.GetDuration("scoring.narrative_timeout"); t > 0 {
		config.NarrativeTimeout = t
	}

	engine, err := scoring.NewWithConfig(analyst, nil, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create scoring engine: %w", err)
	}

	return engine, nil
}
