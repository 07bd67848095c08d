// Package engine turns product selections into costed line items, keeps the
// ordered line-item list of a session, and derives the footprint summary
// (total, rating, chart series) and recommendations from it.
package engine

import "fmt"

// LineItem is one costed addition to the product list. It is only created by
// Calculator.Compute and never modified afterwards.
type LineItem struct {
	Category     string `json:"category"`
	ProductKey   string `json:"product"`
	Quantity     int    `json:"quantity"`
	DisplayLabel string `json:"label"`
	Unit         string `json:"unit"`

	// ProductionEmissions is factor x quantity.
	ProductionEmissions float64 `json:"production_kg"`

	// UsageEmissions is the annual usage factor x lifespan years.
	UsageEmissions float64 `json:"usage_kg"`

	// TotalEmissions is ProductionEmissions + UsageEmissions.
	TotalEmissions float64 `json:"total_kg"`
}

// ChartPoint is one entry of the chart series handed to a chart renderer.
type ChartPoint struct {
	Label      string  `json:"label"`
	Value      float64 `json:"value"`
	ColorIndex int     `json:"color_index"`
	Color      string  `json:"color"`
}

// FootprintSummary is derived from a line-item list. It is recomputed on
// every call to Aggregator.Summarize and must not be cached across edits.
type FootprintSummary struct {
	TotalEmissions float64      `json:"total_kg"`
	Rating         RatingTier   `json:"rating"`
	ChartSeries    []ChartPoint `json:"chart_series"`
	ItemCount      int          `json:"item_count"`

	// BudgetUtilization is TotalEmissions as a percentage of the reference
	// budget. It is not capped at 100.
	BudgetUtilization float64 `json:"budget_utilization"`
}

// AdvisoryItem is a single recommendation line.
type AdvisoryItem struct {
	Icon string `json:"icon"`
	Text string `json:"text"`
}

// RatingTier buckets a total into a qualitative judgment. Tiers are ordered
// from best to worst.
type RatingTier int

const (
	// RatingVeryGood is below 1x the reference budget.
	RatingVeryGood RatingTier = iota
	// RatingGood is from 1x up to, but excluding, 2x the reference budget.
	RatingGood
	// RatingOkay is from 2x up to, but excluding, 3x the reference budget.
	RatingOkay
	// RatingBad is 3x the reference budget or more.
	RatingBad
)

// String returns the identifier form of the tier.
func (r RatingTier) String() string {
	switch r {
	case RatingVeryGood:
		return "VeryGood"
	case RatingGood:
		return "Good"
	case RatingOkay:
		return "Okay"
	case RatingBad:
		return "Bad"
	default:
		return fmt.Sprintf("RatingTier(%d)", int(r))
	}
}

// Label returns the user-facing text for the tier.
func (r RatingTier) Label() string {
	switch r {
	case RatingVeryGood:
		return "Very Good"
	case RatingGood:
		return "Good"
	case RatingOkay:
		return "Okay"
	case RatingBad:
		return "Bad"
	default:
		return "Unknown"
	}
}

// Color returns the hex colour of the tier's badge.
func (r RatingTier) Color() string {
	switch r {
	case RatingVeryGood:
		return "#059669"
	case RatingGood:
		return "#10b981"
	case RatingOkay:
		return "#f59e0b"
	case RatingBad:
		return "#dc2626"
	default:
		return "#6b7280"
	}
}

// MarshalText encodes the tier by name so JSON output stays readable.
func (r RatingTier) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText decodes a tier name produced by MarshalText.
func (r *RatingTier) UnmarshalText(text []byte) error {
	for _, tier := range []RatingTier{RatingVeryGood, RatingGood, RatingOkay, RatingBad} {
		if tier.String() == string(text) {
			*r = tier
			return nil
		}
	}
	return fmt.Errorf("unknown rating tier %q", string(text))
}
