package greenops

import (
	"fmt"
	"math"
)

// Calculate computes the equivalencies of kg kilograms of CO2e.
//
// Values below MinDisplayThresholdKg yield an empty output and no error.
// Negative values return ErrNegativeValue; Inf or NaN return
// ErrCalculationOverflow.
func Calculate(kg float64) (EquivalencyOutput, error) {
	if math.IsInf(kg, 0) || math.IsNaN(kg) {
		return EquivalencyOutput{IsEmpty: true}, ErrCalculationOverflow
	}
	if kg < 0 {
		return EquivalencyOutput{IsEmpty: true}, ErrNegativeValue
	}
	if kg < MinDisplayThresholdKg {
		return EquivalencyOutput{InputKg: kg, IsEmpty: true}, nil
	}

	tons := kg / KgPerMetricTon
	months := kg / MonthlyAverageKg
	miles := kg / EPAMilesDrivenFactor

	tonsText := FormatFloat(tons, tonsPrecision)
	monthsText := FormatFloat(months, monthsPrecision)
	milesText := formatEquivalencyValue(miles)

	return EquivalencyOutput{
		InputKg: kg,
		Results: []EquivalencyResult{
			{Type: EquivalencyMetricTons, Value: tons, FormattedValue: tonsText, Label: "metric tons"},
			{Type: EquivalencyMonthsOfEmissions, Value: months, FormattedValue: monthsText, Label: "months of emissions"},
			{Type: EquivalencyMilesDriven, Value: miles, FormattedValue: milesText, Label: "miles driven"},
		},
		DisplayText: fmt.Sprintf("%s metric tons, about %s months of average emissions or %s miles driven",
			tonsText, monthsText, milesText),
		CompactText: fmt.Sprintf("(%s t, %s months)", tonsText, monthsText),
	}, nil
}

// CalculateFromInput normalizes input to kilograms and calls Calculate.
func CalculateFromInput(input CarbonInput) (EquivalencyOutput, error) {
	kg, err := NormalizeToKg(input.Value, input.Unit)
	if err != nil {
		return EquivalencyOutput{IsEmpty: true}, err
	}
	return Calculate(kg)
}

// formatEquivalencyValue rounds to an integer with separators, or scales to
// million/billion notation for very large values.
func formatEquivalencyValue(v float64) string {
	if v >= LargeNumberThreshold {
		return FormatLarge(v)
	}
	return FormatNumber(int64(math.Round(v)))
}
