package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rshade/footprint/internal/engine"
	"github.com/rshade/footprint/internal/logging"
)

// ErrInvalidItemSpec reports an --item value that is not category/product[=qty].
var ErrInvalidItemSpec = errors.New("invalid item")

// ItemSpec is one parsed --item flag.
type ItemSpec struct {
	Category string
	Product  string
	Quantity int

	// QuantityErr is set when the quantity was clamped to 1.
	QuantityErr error
}

// String returns the item in --item flag form.
func (s ItemSpec) String() string {
	return fmt.Sprintf("%s/%s=%d", s.Category, s.Product, s.Quantity)
}

// ParseItemSpec parses "category/product" or "category/product=qty". An
// unusable quantity is clamped to 1 and reported through QuantityErr rather
// than failing the whole item.
func ParseItemSpec(raw string) (ItemSpec, error) {
	selection, qty, _ := strings.Cut(strings.TrimSpace(raw), "=")
	category, product, ok := strings.Cut(selection, "/")
	category = strings.TrimSpace(category)
	product = strings.TrimSpace(product)
	if !ok || category == "" || product == "" {
		return ItemSpec{}, fmt.Errorf("%w %q: expected category/product[=quantity]", ErrInvalidItemSpec, raw)
	}

	quantity, qtyErr := engine.ParseQuantity(qty)
	return ItemSpec{
		Category:    category,
		Product:     product,
		Quantity:    quantity,
		QuantityErr: qtyErr,
	}, nil
}

// addItems parses raw and adds every usable entry to session. Selections the
// factor table does not know are reported on warn and skipped; the skipped
// raw values are returned. A malformed --item fails the command.
func addItems(ctx context.Context, session *engine.Session, raw []string, warn io.Writer) ([]string, error) {
	log := logging.FromContext(ctx).With().
		Str("component", "cli").
		Str("operation", "addItems").
		Logger()

	var skipped []string
	for _, r := range raw {
		spec, err := ParseItemSpec(r)
		if err != nil {
			return nil, err
		}
		if spec.QuantityErr != nil {
			_, _ = fmt.Fprintf(warn, "Warning: %v, using quantity 1 for %s/%s\n",
				spec.QuantityErr, spec.Category, spec.Product)
		}

		if _, err = session.Add(ctx, spec.Category, spec.Product, spec.Quantity); err != nil {
			log.Debug().Ctx(ctx).Err(err).Str("item", r).Msg("item skipped")
			_, _ = fmt.Fprintf(warn, "Warning: skipping %s: %v\n", r, err)
			skipped = append(skipped, r)
		}
	}
	return skipped, nil
}
