package consumption

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeToMilliliters(t *testing.T) {
	tests := []struct {
		name    string
		value   float64
		unit    VolumeUnit
		want    float64
		wantErr error
	}{
		{name: "milliliters identity", value: 330, unit: UnitMilliliters, want: 330},
		{name: "liters", value: 0.33, unit: UnitLiters, want: 330},
		{name: "one liter", value: 1, unit: UnitLiters, want: 1000},
		{name: "fluid ounces", value: 12, unit: UnitFluidOunces, want: 354.882},
		{name: "zero", value: 0, unit: UnitFluidOunces, want: 0},
		{name: "negative", value: -1, unit: UnitMilliliters, wantErr: ErrInvalidInput},
		{name: "NaN", value: math.NaN(), unit: UnitMilliliters, wantErr: ErrInvalidInput},
		{name: "unknown unit", value: 1, unit: VolumeUnit("gallon"), wantErr: ErrUnknownUnit},
		{name: "overflow", value: math.MaxFloat64, unit: UnitLiters, wantErr: ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeToMilliliters(tt.value, tt.unit)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 0.001)
		})
	}
}

func TestParseVolumeUnit(t *testing.T) {
	tests := []struct {
		in      string
		want    VolumeUnit
		wantErr bool
	}{
		{in: "mL", want: UnitMilliliters},
		{in: "ml", want: UnitMilliliters},
		{in: " ML ", want: UnitMilliliters},
		{in: "L", want: UnitLiters},
		{in: "liters", want: UnitLiters},
		{in: "Litres", want: UnitLiters},
		{in: "oz", want: UnitFluidOunces},
		{in: "fl oz", want: UnitFluidOunces},
		{in: "floz", want: UnitFluidOunces},
		{in: "", wantErr: true},
		{in: "cups", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseVolumeUnit(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownUnit)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVolumeUnit_DefaultVolume(t *testing.T) {
	assert.InDelta(t, 330.0, UnitMilliliters.DefaultVolume(), 1e-9)
	assert.InDelta(t, 0.33, UnitLiters.DefaultVolume(), 1e-9)
	assert.InDelta(t, 12.0, UnitFluidOunces.DefaultVolume(), 1e-9)

	for _, u := range VolumeUnits() {
		_, ok := u.Factor()
		assert.True(t, ok, "unit %q has a factor", u)
	}
}
