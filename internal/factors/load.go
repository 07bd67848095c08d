package factors

import (
	"bytes"
	"errors"
	_ "embed"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/Masterminds/semver/v3"
	"golang.org/x/text/encoding/charmap"
	"gopkg.in/yaml.v3"

	"github.com/rshade/footprint/internal/greenops"
)

// SupportedSchemaConstraint is the range of dataset schema versions Load accepts.
const SupportedSchemaConstraint = "^1.0.0"

//go:embed data/items.yaml
var defaultDataset []byte

// dataset is the on-disk YAML shape.
type dataset struct {
	SchemaVersion string                               `yaml:"schema_version"`
	Source        string                               `yaml:"source"`
	FactorUnit    string                               `yaml:"factor_unit"`
	Categories    map[string]map[string]EmissionFactor `yaml:"categories"`
	Usage         map[string]float64                   `yaml:"usage"`
}

// Load parses a YAML dataset and builds a Table from it.
func Load(r io.Reader) (*Table, error) {
	var ds dataset
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&ds); err != nil {
		return nil, fmt.Errorf("parsing emission factor dataset: %w", err)
	}

	if err := checkSchemaVersion(ds.SchemaVersion); err != nil {
		return nil, err
	}

	if err := ds.normalize(); err != nil {
		return nil, err
	}

	t, err := NewTable(ds.Categories, ds.Usage)
	if err != nil {
		return nil, err
	}
	t.source = ds.Source
	t.schemaVersion = ds.SchemaVersion

	if err = t.checkReportText(); err != nil {
		return nil, err
	}
	return t, nil
}

// checkReportText rejects labels and the source line that the report's core
// PDF fonts would garble.
func (t *Table) checkReportText() error {
	if err := checkWindows1252(t.source); err != nil {
		return fmt.Errorf("source: %w", err)
	}
	for _, category := range t.Categories() {
		for key, f := range t.factors[category] {
			if err := checkWindows1252(f.DisplayLabel); err != nil {
				return fmt.Errorf("%s/%s label: %w", category, key, err)
			}
		}
	}
	return nil
}

func checkWindows1252(s string) error {
	if _, err := charmap.Windows1252.NewEncoder().String(s); err != nil {
		return fmt.Errorf("%w: %q", ErrUnsupportedLabel, s)
	}
	return nil
}

// LoadFile reads and parses the dataset at path.
func LoadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dataset %s: %w", path, err)
	}
	defer f.Close()

	t, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

//nolint:gochecknoglobals // Parsed once; the embedded dataset never changes.
var loadDefault = sync.OnceValues(func() (*Table, error) {
	return Load(bytes.NewReader(defaultDataset))
})

// Default returns the table built from the embedded dataset.
func Default() (*Table, error) {
	return loadDefault()
}

func checkSchemaVersion(raw string) error {
	if raw == "" {
		return fmt.Errorf("%w: schema_version is required", ErrUnsupportedSchema)
	}
	v, err := semver.NewVersion(raw)
	if err != nil {
		return fmt.Errorf("%w: %q: %w", ErrUnsupportedSchema, raw, err)
	}
	c, err := semver.NewConstraint(SupportedSchemaConstraint)
	if err != nil {
		return fmt.Errorf("invalid schema constraint %q: %w", SupportedSchemaConstraint, err)
	}
	if !c.Check(v) {
		return fmt.Errorf("%w: %s does not satisfy %s", ErrUnsupportedSchema, raw, SupportedSchemaConstraint)
	}
	return nil
}

// normalize rewrites every factor into kg CO2e when the dataset declares a
// different factor_unit (g, t, lb and their CO2e forms).
func (ds *dataset) normalize() error {
	if !greenops.IsRecognizedUnit(ds.FactorUnit) {
		return fmt.Errorf("factor_unit %q: %w", ds.FactorUnit, greenops.ErrInvalidUnit)
	}

	for category, products := range ds.Categories {
		for key, f := range products {
			kg, err := greenops.NormalizeToKg(f.FactorPerUnit, ds.FactorUnit)
			if err != nil {
				return normalizeErr(category+"/"+key, err)
			}
			f.FactorPerUnit = kg
			products[key] = f
		}
	}
	for key, v := range ds.Usage {
		kg, err := greenops.NormalizeToKg(v, ds.FactorUnit)
		if err != nil {
			return normalizeErr("usage "+key, err)
		}
		ds.Usage[key] = kg
	}
	return nil
}

func normalizeErr(what string, err error) error {
	if errors.Is(err, greenops.ErrNegativeValue) {
		return fmt.Errorf("%w: %s", ErrNegativeFactor, what)
	}
	return fmt.Errorf("%s: %w", what, err)
}
