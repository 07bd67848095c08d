package greenops

// Equivalency divisors: equivalency = kg_CO2e / factor.
const (
	// KgPerMetricTon converts kilograms to metric tons.
	KgPerMetricTon = 1000.0

	// MonthlyAverageKg is kg CO2e of an average person's consumption per month.
	MonthlyAverageKg = 4.6

	// EPAMilesDrivenFactor is kg CO2e per mile for an average passenger vehicle.
	// Source: EPA GHG Equivalencies Calculator (2024 edition).
	EPAMilesDrivenFactor = 0.192
)

// Unit conversion constants for normalizing carbon values to kilograms.
const (
	GramsToKg  = 0.001
	KgToKg     = 1.0
	TonsToKg   = 1000.0
	PoundsToKg = 0.453592
)

// Display thresholds.
const (
	// MinDisplayThresholdKg is the smallest kg CO2e worth reporting.
	MinDisplayThresholdKg = 0.001

	// LargeNumberThreshold switches to "~X.X million" formatting.
	LargeNumberThreshold = 1_000_000

	// BillionThreshold switches to "~X.X billion" formatting.
	BillionThreshold = 1_000_000_000
)

// Display precision.
const (
	tonsPrecision   = 2
	monthsPrecision = 1
)
