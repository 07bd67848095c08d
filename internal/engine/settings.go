package engine

import "fmt"

// Defaults for Settings.
const (
	// DefaultLifespanYears is the assumed usage horizon for powered products.
	DefaultLifespanYears = 3

	// DefaultReferenceBudget is the monthly reference footprint in kg CO2e.
	DefaultReferenceBudget = 200.0
)

// DefaultPalette returns the chart palette, cycled by line-item index.
func DefaultPalette() []string {
	return []string{
		"#059669",
		"#065f46",
		"#047857",
		"#10b981",
		"#a7f3d0",
		"#34d399",
		"#059669",
	}
}

// Settings holds the constants shared by the calculator, the aggregator and
// the recommendation selector.
type Settings struct {
	// LifespanYears multiplies the annual usage factor of a product.
	LifespanYears int `json:"lifespan_years"`

	// ReferenceBudget is the monthly reference total R used for ratings and
	// for gating recommendations.
	ReferenceBudget float64 `json:"reference_budget"`

	// Palette holds hex colours for chart series entries.
	Palette []string `json:"palette"`
}

// DefaultSettings returns {lifespanYears: 3, referenceBudget: 200, palette of 7}.
func DefaultSettings() Settings {
	return Settings{
		LifespanYears:   DefaultLifespanYears,
		ReferenceBudget: DefaultReferenceBudget,
		Palette:         DefaultPalette(),
	}
}

// PaletteSize returns the number of palette entries.
func (s Settings) PaletteSize() int {
	return len(s.Palette)
}

// ColorAt returns the palette colour for the i-th chart entry.
func (s Settings) ColorAt(i int) string {
	if len(s.Palette) == 0 || i < 0 {
		return ""
	}
	return s.Palette[i%len(s.Palette)]
}

// Validate checks that the settings can drive a calculation.
func (s Settings) Validate() error {
	if s.LifespanYears < 0 {
		return fmt.Errorf("%w: lifespan_years must be >= 0, got %d", ErrInvalidSettings, s.LifespanYears)
	}
	if s.ReferenceBudget <= 0 {
		return fmt.Errorf("%w: reference_budget must be > 0, got %.2f", ErrInvalidSettings, s.ReferenceBudget)
	}
	if len(s.Palette) == 0 {
		return fmt.Errorf("%w: palette must not be empty", ErrInvalidSettings)
	}
	return nil
}
