package engine

import (
	"context"
	"fmt"
	"slices"

	"github.com/rshade/footprint/internal/logging"
)

// Session owns the ordered line-item list of one user. It is not safe for
// concurrent use.
type Session struct {
	calc  *Calculator
	agg   *Aggregator
	items []LineItem
}

// NewSession returns an empty session.
func NewSession(calc *Calculator, agg *Aggregator) *Session {
	return &Session{calc: calc, agg: agg}
}

// Add computes a line item and appends it. On error the list is unchanged.
func (s *Session) Add(ctx context.Context, category, product string, quantity int) (LineItem, error) {
	item, err := s.calc.Compute(ctx, category, product, quantity)
	if err != nil {
		return LineItem{}, err
	}
	s.items = append(s.items, item)

	logging.FromContext(ctx).Debug().
		Str("component", "engine").
		Int("items", len(s.items)).
		Msg("line item added")
	return item, nil
}

// Remove deletes the item at index and returns it.
func (s *Session) Remove(index int) (LineItem, error) {
	if index < 0 || index >= len(s.items) {
		return LineItem{}, fmt.Errorf("%w: %d (have %d)", ErrIndexOutOfRange, index, len(s.items))
	}
	removed := s.items[index]
	s.items = slices.Delete(s.items, index, index+1)
	return removed, nil
}

// Items returns a copy of the list in insertion order.
func (s *Session) Items() []LineItem {
	return slices.Clone(s.items)
}

// Len returns the number of line items.
func (s *Session) Len() int {
	return len(s.items)
}

// Clear empties the list.
func (s *Session) Clear() {
	s.items = nil
}

// Summary recomputes the footprint summary of the current list.
func (s *Session) Summary() FootprintSummary {
	return s.agg.Summarize(s.items)
}

// Recommendations returns the advisory list for the current total.
func (s *Session) Recommendations() []AdvisoryItem {
	return SelectRecommendations(s.Summary().TotalEmissions, s.agg.settings)
}
