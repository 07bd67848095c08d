package engine

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/rshade/footprint/internal/factors"
	"github.com/rshade/footprint/internal/logging"
)

// FactorSource resolves emission factors. *factors.Table implements it.
type FactorSource interface {
	Lookup(category, product string) (factors.EmissionFactor, error)
	LookupUsage(product string) float64
}

// Calculator turns a (category, product, quantity) selection into a LineItem.
type Calculator struct {
	source   FactorSource
	settings Settings
}

// NewCalculator returns a Calculator reading factors from source.
func NewCalculator(source FactorSource, settings Settings) *Calculator {
	return &Calculator{source: source, settings: settings}
}

// Compute costs one selection.
//
// Production emissions are factor x quantity. Usage emissions are the annual
// usage factor x LifespanYears and do not scale with quantity. A quantity
// below 1 is clamped to 1. Unknown category or product keys return an error
// wrapping factors.ErrCategoryNotFound or factors.ErrProductNotFound and no
// line item.
func (c *Calculator) Compute(ctx context.Context, category, product string, quantity int) (LineItem, error) {
	logger := logging.FromContext(ctx).With().
		Str("component", "engine").
		Str("operation", "Compute").
		Logger()

	factor, err := c.source.Lookup(category, product)
	if err != nil {
		logger.Debug().Err(err).
			Str("category", category).
			Str("product", product).
			Msg("selection rejected")
		return LineItem{}, err
	}

	if quantity < 1 {
		logger.Debug().Int("quantity", quantity).Msg("quantity clamped to 1")
		quantity = 1
	}

	production := factor.FactorPerUnit * float64(quantity)
	usage := c.source.LookupUsage(product) * float64(c.settings.LifespanYears)

	item := LineItem{
		Category:            category,
		ProductKey:          product,
		Quantity:            quantity,
		DisplayLabel:        factor.DisplayLabel,
		Unit:                factor.Unit,
		ProductionEmissions: production,
		UsageEmissions:      usage,
		TotalEmissions:      production + usage,
	}

	logger.Debug().
		Str("category", category).
		Str("product", product).
		Int("quantity", quantity).
		Float64("total_kg", item.TotalEmissions).
		Msg("line item computed")

	return item, nil
}

// ParseQuantity parses user input into a quantity. Empty, non-numeric or
// non-positive input yields 1 together with ErrInvalidQuantity; the returned
// quantity is always usable.
func ParseQuantity(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 1, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 1, fmt.Errorf("%w: %q is not a number", ErrInvalidQuantity, raw)
	}
	if n < 1 {
		return 1, fmt.Errorf("%w: %d is below 1", ErrInvalidQuantity, n)
	}
	return n, nil
}
