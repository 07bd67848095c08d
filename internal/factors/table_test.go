package factors

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTable(t *testing.T) *Table {
	t.Helper()
	table, err := NewTable(
		map[string]map[string]EmissionFactor{
			"electronics": {
				"laptop": {FactorPerUnit: 85.0, DisplayLabel: "Laptop", Unit: "per item"},
				"phone":  {FactorPerUnit: 55.0, DisplayLabel: "Phone", Unit: "per item"},
			},
			"transport": {
				"car_mile": {FactorPerUnit: 0.404, DisplayLabel: "Car Travel", Unit: "per mile"},
			},
		},
		map[string]float64{"laptop": 0.5},
	)
	require.NoError(t, err)
	return table
}

func TestTable_Lookup(t *testing.T) {
	table := testTable(t)

	tests := []struct {
		name     string
		category string
		product  string
		want     EmissionFactor
		wantErr  error
	}{
		{
			name:     "found",
			category: "electronics",
			product:  "laptop",
			want:     EmissionFactor{FactorPerUnit: 85.0, DisplayLabel: "Laptop", Unit: "per item"},
		},
		{name: "missing category", category: "food", product: "laptop", wantErr: ErrCategoryNotFound},
		{name: "missing product", category: "electronics", product: "fridge", wantErr: ErrProductNotFound},
		{name: "product in other category", category: "transport", product: "laptop", wantErr: ErrProductNotFound},
		{name: "empty keys", category: "", product: "", wantErr: ErrCategoryNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := table.Lookup(tt.category, tt.product)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, EmissionFactor{}, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTable_LookupUsage(t *testing.T) {
	table := testTable(t)
	assert.InDelta(t, 0.5, table.LookupUsage("laptop"), 1e-9)
	assert.Zero(t, table.LookupUsage("car_mile"))
	assert.Zero(t, table.LookupUsage("unknown"))
}

func TestTable_Enumeration(t *testing.T) {
	table := testTable(t)
	assert.Equal(t, []string{"electronics", "transport"}, table.Categories())

	products, err := table.Products("electronics")
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "laptop", products[0].Key)
	assert.InDelta(t, 0.5, products[0].Usage, 1e-9)
	assert.Equal(t, "phone", products[1].Key)

	_, err = table.Products("food")
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestNewTable_Validation(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		_, err := NewTable(nil, nil)
		assert.ErrorIs(t, err, ErrEmptyDataset)
	})

	t.Run("negative production factor", func(t *testing.T) {
		_, err := NewTable(map[string]map[string]EmissionFactor{
			"food": {"beef": {FactorPerUnit: -1}},
		}, nil)
		assert.ErrorIs(t, err, ErrNegativeFactor)
	})

	t.Run("NaN usage factor", func(t *testing.T) {
		_, err := NewTable(map[string]map[string]EmissionFactor{
			"food": {"beef": {FactorPerUnit: 1}},
		}, map[string]float64{"beef": math.NaN()})
		assert.ErrorIs(t, err, ErrNegativeFactor)
	})

	t.Run("label defaults to key", func(t *testing.T) {
		table, err := NewTable(map[string]map[string]EmissionFactor{
			"food": {"beef": {FactorPerUnit: 60}},
		}, nil)
		require.NoError(t, err)
		f, err := table.Lookup("food", "beef")
		require.NoError(t, err)
		assert.Equal(t, "beef", f.DisplayLabel)
	})

	t.Run("input maps are copied", func(t *testing.T) {
		src := map[string]map[string]EmissionFactor{"food": {"beef": {FactorPerUnit: 60}}}
		table, err := NewTable(src, nil)
		require.NoError(t, err)

		src["food"]["beef"] = EmissionFactor{FactorPerUnit: 1}
		f, err := table.Lookup("food", "beef")
		require.NoError(t, err)
		assert.InDelta(t, 60.0, f.FactorPerUnit, 1e-9)
	})
}

func TestLoad(t *testing.T) {
	const valid = `
schema_version: "1.2.0"
source: "test"
categories:
  clothing:
    jeans: { factor: 33.4, label: "Jeans", unit: "per item" }
usage: {}
`

	tests := []struct {
		name    string
		input   string
		wantErr error
		errText string
	}{
		{name: "valid", input: valid},
		{
			name:    "missing schema version",
			input:   "categories:\n  a:\n    b: { factor: 1 }\n",
			wantErr: ErrUnsupportedSchema,
		},
		{
			name:    "major version too new",
			input:   strings.Replace(valid, "1.2.0", "2.0.0", 1),
			wantErr: ErrUnsupportedSchema,
		},
		{
			name:    "malformed version",
			input:   strings.Replace(valid, "1.2.0", "one", 1),
			wantErr: ErrUnsupportedSchema,
		},
		{
			name:    "negative factor",
			input:   strings.Replace(valid, "33.4", "-3", 1),
			wantErr: ErrNegativeFactor,
		},
		{
			name:    "unknown factor unit",
			input:   valid + "factor_unit: oz\n",
			errText: "invalid carbon unit",
		},
		{
			name:    "label outside Windows-1252",
			input:   strings.Replace(valid, `"Jeans"`, `"Jeans 👖"`, 1),
			wantErr: ErrUnsupportedLabel,
		},
		{
			name:    "source outside Windows-1252",
			input:   strings.Replace(valid, `"test"`, `"EPA → DEFRA"`, 1),
			wantErr: ErrUnsupportedLabel,
		},
		{
			name:    "unknown field",
			input:   valid + "extra: true\n",
			errText: "parsing emission factor dataset",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := Load(strings.NewReader(tt.input))
			switch {
			case tt.wantErr != nil:
				require.ErrorIs(t, err, tt.wantErr)
			case tt.errText != "":
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errText)
			default:
				require.NoError(t, err)
				assert.Equal(t, "test", table.Source())
				assert.Equal(t, "1.2.0", table.SchemaVersion())
				f, lookupErr := table.Lookup("clothing", "jeans")
				require.NoError(t, lookupErr)
				assert.InDelta(t, 33.4, f.FactorPerUnit, 1e-9)
			}
		})
	}
}

func TestLoad_Windows1252Labels(t *testing.T) {
	const accented = `
schema_version: "1.0.0"
source: "Agence de l'Environnement – données 2024"
categories:
  food:
    creme: { factor: 8.0, label: "Crème fraîche", unit: "per kg" }
`
	table, err := Load(strings.NewReader(accented))
	require.NoError(t, err)

	f, err := table.Lookup("food", "creme")
	require.NoError(t, err)
	assert.Equal(t, "Crème fraîche", f.DisplayLabel)
}

func TestLoad_FactorUnit(t *testing.T) {
	const grams = `
schema_version: "1.0.0"
factor_unit: gCO2e
categories:
  household:
    led_bulb: { factor: 5500, label: "LED Bulb", unit: "per item" }
usage:
  led_bulb: 500
`
	table, err := Load(strings.NewReader(grams))
	require.NoError(t, err)

	f, err := table.Lookup("household", "led_bulb")
	require.NoError(t, err)
	assert.InDelta(t, 5.5, f.FactorPerUnit, 1e-9)
	assert.InDelta(t, 0.5, table.LookupUsage("led_bulb"), 1e-9)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.yaml")
	require.NoError(t, os.WriteFile(path, defaultDataset, 0o600))

	table, err := LoadFile(path)
	require.NoError(t, err)
	assert.NotEmpty(t, table.Categories())

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDefault(t *testing.T) {
	table, err := Default()
	require.NoError(t, err)

	assert.Equal(t,
		[]string{"clothing", "electronics", "food", "household", "transport"},
		table.Categories())

	laptop, err := table.Lookup("electronics", "laptop")
	require.NoError(t, err)
	assert.Equal(t, "Laptop", laptop.DisplayLabel)
	assert.Positive(t, table.LookupUsage("laptop"))

	for _, category := range []string{"clothing", "food", "transport"} {
		products, prodErr := table.Products(category)
		require.NoError(t, prodErr)
		for _, p := range products {
			assert.Zero(t, p.Usage, "%s/%s should have no usage emissions", category, p.Key)
		}
	}

	again, err := Default()
	require.NoError(t, err)
	assert.Same(t, table, again)
}
