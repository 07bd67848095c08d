// Package factors holds the static emission factor reference data: per-unit
// production factors keyed by category and product, and a sparse table of
// annual usage factors keyed by product.
package factors

// EmissionFactor is the production emission factor for one product.
type EmissionFactor struct {
	// FactorPerUnit is kg CO2e per unit (item, kg, mile, ...). Never negative.
	FactorPerUnit float64 `json:"factor" yaml:"factor"`

	// DisplayLabel is the human-readable product name.
	DisplayLabel string `json:"label" yaml:"label"`

	// Unit describes what one unit of quantity means (e.g. "per item").
	Unit string `json:"unit" yaml:"unit"`
}

// Product pairs a product key with its factor, for enumeration.
type Product struct {
	Key    string         `json:"key"`
	Factor EmissionFactor `json:"factor"`
	Usage  float64        `json:"annual_usage"`
}
