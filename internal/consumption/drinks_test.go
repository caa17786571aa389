package consumption

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeStandardDrinks(t *testing.T) {
	tests := []struct {
		name        string
		volumeML    float64
		abv         float64
		quantity    int
		wantPerUnit float64
		wantTotal   float64
		wantErr     bool
	}{
		{
			name:        "beer 330mL at 5%",
			volumeML:    330,
			abv:         0.05,
			quantity:    1,
			wantPerUnit: 0.9677, // 330 * 0.05 / 17.05
			wantTotal:   0.9677,
		},
		{
			name:        "wine 150mL at 12%",
			volumeML:    150,
			abv:         0.12,
			quantity:    1,
			wantPerUnit: 1.0557,
			wantTotal:   1.0557,
		},
		{
			name:        "spirits 45mL at 40%",
			volumeML:    45,
			abv:         0.40,
			quantity:    1,
			wantPerUnit: 1.0557,
			wantTotal:   1.0557,
		},
		{
			name:        "six beers",
			volumeML:    330,
			abv:         0.05,
			quantity:    6,
			wantPerUnit: 0.9677,
			wantTotal:   5.8065,
		},
		{
			name:     "zero volume",
			volumeML: 0,
			abv:      0.4,
			quantity: 3,
		},
		{
			name:     "zero abv",
			volumeML: 500,
			abv:      0,
			quantity: 1,
		},
		{
			name:        "pure alcohol upper bound",
			volumeML:    17.05,
			abv:         1,
			quantity:    1,
			wantPerUnit: 1,
			wantTotal:   1,
		},
		{name: "negative volume", volumeML: -1, abv: 0.05, quantity: 1, wantErr: true},
		{name: "abv above one", volumeML: 330, abv: 1.01, quantity: 1, wantErr: true},
		{name: "negative abv", volumeML: 330, abv: -0.01, quantity: 1, wantErr: true},
		{name: "zero quantity", volumeML: 330, abv: 0.05, quantity: 0, wantErr: true},
		{name: "negative quantity", volumeML: 330, abv: 0.05, quantity: -2, wantErr: true},
		{name: "NaN volume", volumeML: math.NaN(), abv: 0.05, quantity: 1, wantErr: true},
		{name: "infinite volume", volumeML: math.Inf(1), abv: 0.05, quantity: 1, wantErr: true},
		{name: "NaN abv", volumeML: 330, abv: math.NaN(), quantity: 1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeStandardDrinks(tt.volumeML, tt.abv, tt.quantity)

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidInput)
				assert.Equal(t, DrinkResult{}, got)
				return
			}

			require.NoError(t, err)
			assert.InDelta(t, tt.wantPerUnit, got.StandardDrinksPerUnit, 0.001)
			assert.InDelta(t, tt.wantTotal, got.TotalStandardDrinks, 0.001)
			assert.GreaterOrEqual(t, got.TotalStandardDrinks, 0.0)
			assert.Equal(t, tt.quantity, got.Input.Quantity)
		})
	}
}

func TestComputeStandardDrinks_FormulaIdentity(t *testing.T) {
	volumes := []float64{0, 1, 30, 45, 150, 330, 500, 750, 1000, 4000}
	abvs := []float64{0, 0.005, 0.05, 0.12, 0.15, 0.4, 0.96, 1}
	quantities := []int{1, 2, 3, 10, 24}

	for _, v := range volumes {
		for _, a := range abvs {
			for _, q := range quantities {
				got, err := ComputeStandardDrinks(v, a, q)
				require.NoError(t, err)

				want := (v * a / 17.05) * float64(q)
				assert.Equal(t, want, got.TotalStandardDrinks, "v=%g abv=%g q=%d", v, a, q)
				assert.GreaterOrEqual(t, got.TotalStandardDrinks, 0.0)
			}
		}
	}
}

func TestComputeStandardDrinks_Linearity(t *testing.T) {
	t.Run("doubling quantity doubles total", func(t *testing.T) {
		one, err := ComputeStandardDrinks(330, 0.05, 3)
		require.NoError(t, err)
		two, err := ComputeStandardDrinks(330, 0.05, 6)
		require.NoError(t, err)

		assert.Equal(t, one.TotalStandardDrinks*2, two.TotalStandardDrinks)
	})

	t.Run("doubling abv doubles per unit", func(t *testing.T) {
		one, err := ComputeStandardDrinks(150, 0.12, 1)
		require.NoError(t, err)
		two, err := ComputeStandardDrinks(150, 0.24, 1)
		require.NoError(t, err)

		assert.Equal(t, one.StandardDrinksPerUnit*2, two.StandardDrinksPerUnit)
	})

	t.Run("doubling volume doubles per unit", func(t *testing.T) {
		one, err := ComputeStandardDrinks(250, 0.05, 1)
		require.NoError(t, err)
		two, err := ComputeStandardDrinks(500, 0.05, 1)
		require.NoError(t, err)

		assert.Equal(t, one.StandardDrinksPerUnit*2, two.StandardDrinksPerUnit)
	})
}

func TestComputeStandardDrinks_LiterIdempotence(t *testing.T) {
	ml, err := NormalizeToMilliliters(1, UnitLiters)
	require.NoError(t, err)
	require.Equal(t, 1000.0, ml)

	viaLiters, err := ComputeStandardDrinks(ml, 0.05, 2)
	require.NoError(t, err)
	direct, err := ComputeStandardDrinks(1000, 0.05, 2)
	require.NoError(t, err)

	assert.Equal(t, direct, viaLiters)
}
