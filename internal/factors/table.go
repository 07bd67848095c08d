package factors

import (
	"fmt"
	"maps"
	"math"
	"slices"
)

// Table is an immutable category -> product -> EmissionFactor mapping plus
// the product -> annual usage factor lookup. It is safe for concurrent reads.
type Table struct {
	factors       map[string]map[string]EmissionFactor
	usage         map[string]float64
	source        string
	schemaVersion string
}

// NewTable copies the given maps into a Table. Negative or non-finite
// factors are rejected with ErrNegativeFactor; a nil usage map is allowed.
func NewTable(factors map[string]map[string]EmissionFactor, usage map[string]float64) (*Table, error) {
	if len(factors) == 0 {
		return nil, ErrEmptyDataset
	}

	t := &Table{
		factors: make(map[string]map[string]EmissionFactor, len(factors)),
		usage:   make(map[string]float64, len(usage)),
	}

	for category, products := range factors {
		inner := make(map[string]EmissionFactor, len(products))
		for key, f := range products {
			if !validFactor(f.FactorPerUnit) {
				return nil, fmt.Errorf("%w: %s/%s = %v", ErrNegativeFactor, category, key, f.FactorPerUnit)
			}
			if f.DisplayLabel == "" {
				f.DisplayLabel = key
			}
			inner[key] = f
		}
		t.factors[category] = inner
	}

	for key, v := range usage {
		if !validFactor(v) {
			return nil, fmt.Errorf("%w: usage %s = %v", ErrNegativeFactor, key, v)
		}
		t.usage[key] = v
	}

	return t, nil
}

func validFactor(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

// Lookup returns the factor for (category, product).
func (t *Table) Lookup(category, product string) (EmissionFactor, error) {
	products, ok := t.factors[category]
	if !ok {
		return EmissionFactor{}, fmt.Errorf("%w: %q", ErrCategoryNotFound, category)
	}
	f, ok := products[product]
	if !ok {
		return EmissionFactor{}, fmt.Errorf("%w: %q in category %q", ErrProductNotFound, product, category)
	}
	return f, nil
}

// LookupUsage returns the annual usage factor for product, or 0 when the
// product has no ongoing usage emissions.
func (t *Table) LookupUsage(product string) float64 {
	return t.usage[product]
}

// Categories returns the category keys in sorted order.
func (t *Table) Categories() []string {
	return slices.Sorted(maps.Keys(t.factors))
}

// Products returns the products of category sorted by key.
func (t *Table) Products(category string) ([]Product, error) {
	products, ok := t.factors[category]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrCategoryNotFound, category)
	}

	out := make([]Product, 0, len(products))
	for _, key := range slices.Sorted(maps.Keys(products)) {
		out = append(out, Product{Key: key, Factor: products[key], Usage: t.usage[key]})
	}
	return out, nil
}

// Source returns the dataset attribution, if the table was loaded from one.
func (t *Table) Source() string { return t.source }

// SchemaVersion returns the dataset schema version, if loaded from a dataset.
func (t *Table) SchemaVersion() string { return t.schemaVersion }
