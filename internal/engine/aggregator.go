package engine

// Rating thresholds as multiples of the reference budget.
const (
	goodThresholdMultiple = 1.0
	okayThresholdMultiple = 2.0
	badThresholdMultiple  = 3.0

	percentMultiplier = 100.0
)

// Aggregator reduces a line-item list into a FootprintSummary.
type Aggregator struct {
	settings Settings
}

// NewAggregator returns an Aggregator using settings for the reference budget
// and palette.
func NewAggregator(settings Settings) *Aggregator {
	return &Aggregator{settings: settings}
}

// Summarize derives the summary of items. It has no side effects and always
// recomputes from scratch.
func (a *Aggregator) Summarize(items []LineItem) FootprintSummary {
	total := 0.0
	series := make([]ChartPoint, 0, len(items))
	paletteSize := a.settings.PaletteSize()

	for i, item := range items {
		total += item.TotalEmissions

		colorIndex := 0
		if paletteSize > 0 {
			colorIndex = i % paletteSize
		}
		series = append(series, ChartPoint{
			Label:      item.DisplayLabel,
			Value:      item.TotalEmissions,
			ColorIndex: colorIndex,
			Color:      a.settings.ColorAt(i),
		})
	}

	utilization := 0.0
	if a.settings.ReferenceBudget > 0 {
		utilization = total / a.settings.ReferenceBudget * percentMultiplier
	}

	return FootprintSummary{
		TotalEmissions:    total,
		Rating:            RateEmissions(total, a.settings.ReferenceBudget),
		ChartSeries:       series,
		ItemCount:         len(items),
		BudgetUtilization: utilization,
	}
}

// RateEmissions places total on the rating ladder relative to the reference
// budget. Each boundary belongs to the worse tier: total == budget is Good.
func RateEmissions(total, referenceBudget float64) RatingTier {
	switch {
	case total < goodThresholdMultiple*referenceBudget:
		return RatingVeryGood
	case total < okayThresholdMultiple*referenceBudget:
		return RatingGood
	case total < badThresholdMultiple*referenceBudget:
		return RatingOkay
	default:
		return RatingBad
	}
}
