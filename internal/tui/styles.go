package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/footprint/internal/engine"
)

// Colour palette. Greens follow the chart palette.
const (
	ColorHeader    = lipgloss.Color("#059669")
	ColorLabel     = lipgloss.Color("#9ca3af")
	ColorValue     = lipgloss.Color("#f9fafb")
	ColorMuted     = lipgloss.Color("#6b7280")
	ColorBorder    = lipgloss.Color("#374151")
	ColorHighlight = lipgloss.Color("#34d399")
	ColorOK        = lipgloss.Color("#10b981")
	ColorWarning   = lipgloss.Color("#f59e0b")
	ColorCritical  = lipgloss.Color("#dc2626")
	ColorSpinner   = lipgloss.Color("#a7f3d0")
)

// Shared styles.
var (
	HeaderStyle   = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	LabelStyle    = lipgloss.NewStyle().Foreground(ColorLabel)
	ValueStyle    = lipgloss.NewStyle().Foreground(ColorValue).Bold(true)
	InfoStyle     = lipgloss.NewStyle().Foreground(ColorMuted).Italic(true)
	WarningStyle  = lipgloss.NewStyle().Foreground(ColorWarning)
	CriticalStyle = lipgloss.NewStyle().Foreground(ColorCritical).Bold(true)
	SelectedStyle = lipgloss.NewStyle().Foreground(ColorHighlight).Bold(true)
	BoxStyle      = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)
)

// RatingBadge renders the tier label on the tier colour.
func RatingBadge(tier engine.RatingTier) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("#ffffff")).
		Background(lipgloss.Color(tier.Color())).
		Bold(true).
		Padding(0, 1).
		Render(tier.Label())
}

// ratingColor returns the tier colour for foreground use.
func ratingColor(tier engine.RatingTier) lipgloss.Color {
	return lipgloss.Color(tier.Color())
}
