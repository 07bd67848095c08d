package greenops

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeToKg(t *testing.T) {
	tests := []struct {
		name    string
		value   float64
		unit    string
		wantKg  float64
		wantErr error
	}{
		{name: "grams", value: 1500, unit: "g", wantKg: 1.5},
		{name: "kilograms", value: 86.5, unit: "kg", wantKg: 86.5},
		{name: "empty unit is kg", value: 38.9, unit: "", wantKg: 38.9},
		{name: "metric tons", value: 0.2, unit: "t", wantKg: 200},
		{name: "pounds", value: 100, unit: "lb", wantKg: 45.3592},
		{name: "CO2e suffix", value: 2000, unit: "gCO2e", wantKg: 2},
		{name: "case insensitive", value: 1, unit: "TCO2E", wantKg: 1000},
		{name: "surrounding spaces", value: 3, unit: " kg ", wantKg: 3},
		{name: "zero", value: 0, unit: "kg", wantKg: 0},
		{name: "unknown unit", value: 1, unit: "oz", wantErr: ErrInvalidUnit},
		{name: "negative", value: -1, unit: "kg", wantErr: ErrNegativeValue},
		{name: "infinity", value: math.Inf(1), unit: "kg", wantErr: ErrCalculationOverflow},
		{name: "NaN", value: math.NaN(), unit: "kg", wantErr: ErrCalculationOverflow},
		{name: "overflow after conversion", value: math.MaxFloat64 / 10, unit: "t", wantErr: ErrCalculationOverflow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeToKg(tt.value, tt.unit)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.wantKg, got, 1e-9)
		})
	}
}

func TestIsRecognizedUnit(t *testing.T) {
	for _, unit := range []string{"g", "kg", "t", "lb", "kgCO2e", "LBCO2E", ""} {
		assert.True(t, IsRecognizedUnit(unit), unit)
	}
	for _, unit := range []string{"ton", "oz", "kilogram"} {
		assert.False(t, IsRecognizedUnit(unit), unit)
	}
}
