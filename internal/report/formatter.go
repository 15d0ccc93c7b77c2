// Package report renders scored offers for terminal display and export.
package report

import (
	"fmt"
	"strings"

	"github.com/offerscope/offerscope/internal/model"
)

// CLIFormatter renders scored products for terminal display.
type CLIFormatter struct {
	styles *Styles
}

// NewCLIFormatter creates a new CLI formatter with default styles.
func NewCLIFormatter() *CLIFormatter {
	return &CLIFormatter{
		styles: NewStyles(),
	}
}

// FormatScoreCard creates a full score card for a single product.
func (f *CLIFormatter) FormatScoreCard(scored *model.ScoredProduct) string {
	if scored == nil {
		return f.styles.Error.Render("No score available")
	}

	var sections []string

	sections = append(sections, f.formatHeader(scored))
	sections = append(sections, f.formatFactors(scored.Factors))
	sections = append(sections, f.formatRisk(scored.Risk))
	sections = append(sections, f.formatProfitability(scored.Profitability))
	sections = append(sections, f.formatRecommendation(scored.Recommendation))

	if scored.Analysis != "" {
		sections = append(sections, f.styles.Subtitle.Render("Analysis")+"\n"+
			f.styles.Normal.Render(scored.Analysis))
	}

	return f.styles.Box.Render(strings.Join(sections, "\n\n"))
}

// FormatRanking creates a compact ranking table for a batch.
func (f *CLIFormatter) FormatRanking(scored []*model.ScoredProduct) string {
	if len(scored) == 0 {
		return f.styles.Error.Render("No offers scored")
	}

	var b strings.Builder
	b.WriteString(f.styles.Title.Render("Offer Ranking"))
	b.WriteString("\n")

	header := fmt.Sprintf("%-4s %-36s %-6s %-5s %-8s %-8s %-3s",
		"#", "Product", "Score", "Grade", "Risk", "Action", "Pri")
	b.WriteString(f.styles.Subtitle.Render(header))
	b.WriteString("\n")

	for i, sp := range scored {
		name := sp.Product.Name
		if len(name) > 36 {
			name = name[:33] + "..."
		}
		line := fmt.Sprintf("%-4d %-36s %-6.1f %-5s %-8s %-8s %-3d",
			i+1,
			name,
			sp.RoundedScore(),
			sp.Grade,
			sp.Risk.Level,
			sp.Recommendation.Action,
			sp.Recommendation.Priority)
		b.WriteString(f.styles.actionStyle(string(sp.Recommendation.Action)).Render(line))
		b.WriteString("\n")
	}

	return b.String()
}

func (f *CLIFormatter) formatHeader(scored *model.ScoredProduct) string {
	title := f.styles.Title.Render(scored.Product.Name)
	score := f.styles.Score.Render(fmt.Sprintf("%.1f/100 (%s)", scored.RoundedScore(), scored.Grade))
	meta := f.styles.Subtle.Render(fmt.Sprintf("%s / %s on %s · $%.2f · %.0f%% commission",
		scored.Product.Category, scored.Product.Niche, scored.Product.Platform,
		scored.Product.Price, scored.Product.CommissionRate))
	return title + "  " + score + "\n" + meta
}

func (f *CLIFormatter) formatFactors(factors model.FactorScores) string {
	rows := []struct {
		name  string
		value float64
	}{
		{"Market Demand", factors.MarketDemand},
		{"Competition", factors.Competition},
		{"Conversion Potential", factors.ConversionPotential},
		{"Commission Value", factors.CommissionValue},
		{"Vendor Reputation", factors.VendorReputation},
		{"Refund Risk", factors.RefundRisk},
		{"Traffic Cost", factors.TrafficCost},
	}

	var b strings.Builder
	b.WriteString(f.styles.Subtitle.Render("Factor Scores"))
	for _, row := range rows {
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("  %-22s %5.1f  %s", row.name, row.value, f.renderBar(row.value)))
	}
	return b.String()
}

// renderBar draws a 20-cell progress bar for a [0,100] score.
func (f *CLIFormatter) renderBar(score float64) string {
	filled := int(score / 5)
	if filled > 20 {
		filled = 20
	}
	if filled < 0 {
		filled = 0
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", 20-filled)

	style := f.styles.Error
	switch {
	case score >= 70:
		style = f.styles.Success
	case score >= 40:
		style = f.styles.Warning
	}
	return style.Render(bar)
}

func (f *CLIFormatter) formatRisk(risk model.RiskAssessment) string {
	var b strings.Builder
	b.WriteString(f.styles.Subtitle.Render("Risk"))
	b.WriteString("  ")
	b.WriteString(f.styles.riskStyle(string(risk.Level)).Render(string(risk.Level)))
	for _, factor := range risk.Factors {
		b.WriteString("\n  • ")
		b.WriteString(f.styles.Normal.Render(factor))
	}
	return b.String()
}

func (f *CLIFormatter) formatProfitability(p model.Profitability) string {
	var b strings.Builder
	b.WriteString(f.styles.Subtitle.Render("Profitability"))
	b.WriteString("  ")
	b.WriteString(f.styles.Score.Render(string(p.Level)))
	b.WriteString(fmt.Sprintf("\n  Commission/sale: $%.2f  CPC: $%.2f  Conv: %.2f%%",
		p.CommissionPerSale, p.EstimatedCPC, p.EstimatedConversionRate))
	b.WriteString(fmt.Sprintf("\n  Cost/sale: $%.2f  Profit/sale: $%.2f  ROI: %.1f%%",
		p.EstimatedCostPerSale, p.EstimatedProfitPerSale, p.EstimatedROI))
	return b.String()
}

func (f *CLIFormatter) formatRecommendation(rec model.Recommendation) string {
	action := f.styles.actionStyle(string(rec.Action)).Render(string(rec.Action))
	return fmt.Sprintf("%s  %s (confidence: %s, priority: %d/10)\n  %s",
		f.styles.Subtitle.Render("Recommendation"),
		action, rec.Confidence, rec.Priority,
		f.styles.Normal.Render(rec.Reason))
}
