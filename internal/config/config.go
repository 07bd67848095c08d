// Package config loads, validates and writes footprint's YAML configuration
// and converts it into the settings used by the engine, the report renderer
// and the logger.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/rshade/footprint/internal/engine"
	"github.com/rshade/footprint/internal/report"
)

// Output formats accepted by the CLI.
const (
	FormatTable = "table"
	FormatJSON  = "json"
)

// Page sizes accepted by ReportConfig.PageSize.
const (
	PageSizeA4     = "A4"
	PageSizeLetter = "Letter"

	letterWidthMM  = 215.9
	letterHeightMM = 279.4
)

const outputTypeFile = "file"

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

var hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Config is the complete footprint configuration.
type Config struct {
	Footprint FootprintConfig `yaml:"footprint" json:"footprint"`
	Report    ReportConfig    `yaml:"report"    json:"report"`
	Output    OutputConfig    `yaml:"output"    json:"output"`
	Logging   LoggingConfig   `yaml:"logging"   json:"logging"`
}

// FootprintConfig holds the calculation constants.
type FootprintConfig struct {
	LifespanYears   int      `yaml:"lifespan_years"   json:"lifespan_years"`
	ReferenceBudget float64  `yaml:"reference_budget" json:"reference_budget"`
	Palette         []string `yaml:"palette"          json:"palette"`

	// Dataset is an optional emission factor file replacing the built-in one.
	Dataset string `yaml:"dataset,omitempty" json:"dataset,omitempty"`
}

// ReportConfig controls PDF export.
type ReportConfig struct {
	OutDir   string `yaml:"out_dir"   json:"out_dir"`
	Title    string `yaml:"title"     json:"title"`
	PageSize string `yaml:"page_size" json:"page_size"`

	// Margin and LineHeight are in mm. 0 selects the default (20 and 8).
	Margin     float64 `yaml:"margin"      json:"margin"`
	LineHeight float64 `yaml:"line_height" json:"line_height"`
}

// OutputConfig controls CLI output.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format" json:"default_format"`
}

// LoggingConfig controls the logger.
type LoggingConfig struct {
	Level  string `yaml:"level"          json:"level"`
	Format string `yaml:"format"         json:"format"`
	File   string `yaml:"file,omitempty" json:"file,omitempty"`
}

// New returns the default configuration.
func New() *Config {
	settings := engine.DefaultSettings()
	return &Config{
		Footprint: FootprintConfig{
			LifespanYears:   settings.LifespanYears,
			ReferenceBudget: settings.ReferenceBudget,
			Palette:         settings.Palette,
		},
		Report: ReportConfig{
			OutDir:     ".",
			Title:      report.DefaultTitle,
			PageSize:   PageSizeA4,
			Margin:     report.DefaultMargin,
			LineHeight: report.DefaultLineHeight,
		},
		Output: OutputConfig{
			DefaultFormat: FormatTable,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads the YAML file at path over the defaults. A missing file is not
// an error and yields the defaults. Unknown keys are rejected.
func Load(path string) (*Config, error) {
	cfg := New()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err = dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes c as YAML to path, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err = os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}
	return nil
}

// Validate checks every section and joins all problems found.
func (c *Config) Validate() error {
	return errors.Join(
		c.Footprint.Validate(),
		c.Report.Validate(),
		c.Output.Validate(),
		c.Logging.Validate(),
	)
}

// Validate checks the calculation constants.
func (f FootprintConfig) Validate() error {
	var errs []error
	if f.LifespanYears < 0 {
		errs = append(errs, fmt.Errorf("%w: footprint.lifespan_years must be >= 0, got %d",
			ErrInvalidConfig, f.LifespanYears))
	}
	if f.ReferenceBudget <= 0 {
		errs = append(errs, fmt.Errorf("%w: footprint.reference_budget must be > 0, got %g",
			ErrInvalidConfig, f.ReferenceBudget))
	}
	if len(f.Palette) == 0 {
		errs = append(errs, fmt.Errorf("%w: footprint.palette must not be empty", ErrInvalidConfig))
	}
	for i, c := range f.Palette {
		if !hexColorPattern.MatchString(c) {
			errs = append(errs, fmt.Errorf("%w: footprint.palette[%d] %q is not a #rrggbb colour",
				ErrInvalidConfig, i, c))
		}
	}
	return errors.Join(errs...)
}

// Validate checks the report settings.
func (r ReportConfig) Validate() error {
	var errs []error
	if r.PageSize != "" && r.PageSize != PageSizeA4 && r.PageSize != PageSizeLetter {
		errs = append(errs, fmt.Errorf("%w: report.page_size must be %s or %s, got %q",
			ErrInvalidConfig, PageSizeA4, PageSizeLetter, r.PageSize))
	}
	if r.Margin < 0 {
		errs = append(errs, fmt.Errorf("%w: report.margin must be >= 0", ErrInvalidConfig))
	}
	if r.LineHeight < 0 {
		errs = append(errs, fmt.Errorf("%w: report.line_height must be >= 0", ErrInvalidConfig))
	}
	if g := r.Geometry(); r.Margin > 0 && 2*r.Margin >= g.PageHeight {
		errs = append(errs, fmt.Errorf("%w: report.margin %g leaves no room on the page",
			ErrInvalidConfig, r.Margin))
	}
	return errors.Join(errs...)
}

// Geometry converts the report settings into page geometry. Zero values are
// filled by the renderer.
func (r ReportConfig) Geometry() report.Geometry {
	g := report.DefaultGeometry()
	if r.PageSize == PageSizeLetter {
		g.PageWidth, g.PageHeight = letterWidthMM, letterHeightMM
	}
	if r.Margin > 0 {
		g.Margin = r.Margin
	}
	if r.LineHeight > 0 {
		g.LineHeight = r.LineHeight
	}
	return g
}

// Validate checks the output settings.
func (o OutputConfig) Validate() error {
	if o.DefaultFormat != FormatTable && o.DefaultFormat != FormatJSON {
		return fmt.Errorf("%w: output.default_format must be %s or %s, got %q",
			ErrInvalidConfig, FormatTable, FormatJSON, o.DefaultFormat)
	}
	return nil
}

// Validate checks the logging settings.
func (lc LoggingConfig) Validate() error {
	var errs []error
	if lc.Level != "" {
		if _, err := zerolog.ParseLevel(strings.ToLower(lc.Level)); err != nil {
			errs = append(errs, fmt.Errorf("%w: logging.level %q", ErrInvalidConfig, lc.Level))
		}
	}
	if lc.Format != "" && !slices.Contains([]string{"json", "console"}, lc.Format) {
		errs = append(errs, fmt.Errorf("%w: logging.format must be json or console, got %q",
			ErrInvalidConfig, lc.Format))
	}
	return errors.Join(errs...)
}

// ToSettings returns the engine settings described by the footprint section.
func (c *Config) ToSettings() engine.Settings {
	return engine.Settings{
		LifespanYears:   c.Footprint.LifespanYears,
		ReferenceBudget: c.Footprint.ReferenceBudget,
		Palette:         slices.Clone(c.Footprint.Palette),
	}
}
