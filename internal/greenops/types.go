// Package greenops turns kilograms of CO2e into figures people can relate to:
// metric tons, months of an average person's emissions, and miles driven.
// It also normalizes carbon units and formats numbers for display.
package greenops

import "fmt"

// EquivalencyType represents a category of carbon emission equivalency.
type EquivalencyType int

const (
	// EquivalencyMetricTons expresses CO2e in metric tons.
	EquivalencyMetricTons EquivalencyType = iota

	// EquivalencyMonthsOfEmissions expresses CO2e as months of an average
	// person's consumption footprint.
	EquivalencyMonthsOfEmissions

	// EquivalencyMilesDriven converts CO2e to miles driven in an average passenger vehicle.
	EquivalencyMilesDriven
)

// String returns a human-readable representation of the EquivalencyType.
func (e EquivalencyType) String() string {
	switch e {
	case EquivalencyMetricTons:
		return "MetricTons"
	case EquivalencyMonthsOfEmissions:
		return "MonthsOfEmissions"
	case EquivalencyMilesDriven:
		return "MilesDriven"
	default:
		return fmt.Sprintf("EquivalencyType(%d)", e)
	}
}

// CarbonInput is a carbon amount in any recognized unit.
type CarbonInput struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// EquivalencyResult represents a single calculated equivalency.
type EquivalencyResult struct {
	Type           EquivalencyType `json:"type"`
	Value          float64         `json:"value"`
	FormattedValue string          `json:"formatted_value"`
	Label          string          `json:"label"`
}

// EquivalencyOutput contains all equivalency results for display.
type EquivalencyOutput struct {
	// InputKg is the normalized input value in kilograms CO2e.
	InputKg float64 `json:"input_kg"`

	// Results are in display order: tons, months, miles.
	Results []EquivalencyResult `json:"results"`

	// DisplayText is the prose form, e.g.
	// "0.39 metric tons, about 84.6 months of average emissions or 2,025 miles driven".
	DisplayText string `json:"display_text"`

	// CompactText is the short form, e.g. "(0.39 t, 84.6 months)".
	CompactText string `json:"compact_text"`

	IsEmpty bool `json:"is_empty"`
}

// Result returns the result of the given type, if present.
func (o EquivalencyOutput) Result(typ EquivalencyType) (EquivalencyResult, bool) {
	for _, r := range o.Results {
		if r.Type == typ {
			return r, true
		}
	}
	return EquivalencyResult{}, false
}
