package report

import "github.com/charmbracelet/lipgloss"

// Theme colors.
var (
	primaryColor = lipgloss.Color("#F4A261") // Amber
	successColor = lipgloss.Color("#4ECDC4") // Teal
	warningColor = lipgloss.Color("#FFE66D") // Yellow
	errorColor   = lipgloss.Color("#FF6B6B") // Red
	subtleColor  = lipgloss.Color("#666666") // Gray
)

// Styles contains all styling definitions for report formatting.
type Styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Success  lipgloss.Style
	Warning  lipgloss.Style
	Error    lipgloss.Style
	Subtle   lipgloss.Style
	Normal   lipgloss.Style
	Score    lipgloss.Style
	Box      lipgloss.Style
}

// NewStyles creates a new Styles instance with default styling.
func NewStyles() *Styles {
	s := &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor),
		Subtitle: lipgloss.NewStyle().
			Foreground(subtleColor).
			Italic(true),
		Success: lipgloss.NewStyle().Foreground(successColor),
		Warning: lipgloss.NewStyle().Foreground(warningColor),
		Error:   lipgloss.NewStyle().Foreground(errorColor),
		Subtle:  lipgloss.NewStyle().Foreground(subtleColor),
		Normal:  lipgloss.NewStyle(),
	}

	s.Score = lipgloss.NewStyle().
		Bold(true).
		Foreground(primaryColor)

	s.Box = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(subtleColor).
		Padding(0, 1)

	return s
}

// actionStyle picks a style for a recommendation action.
func (s *Styles) actionStyle(action string) lipgloss.Style {
	switch action {
	case "PROMOTE":
		return s.Success
	case "TEST":
		return s.Warning
	default:
		return s.Error
	}
}

// riskStyle picks a style for a risk level.
func (s *Styles) riskStyle(level string) lipgloss.Style {
	switch level {
	case "LOW":
		return s.Success
	case "MEDIUM":
		return s.Warning
	default:
		return s.Error
	}
}
