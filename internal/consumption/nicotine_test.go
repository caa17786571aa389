package consumption

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeNicotineConsumption(t *testing.T) {
	tests := []struct {
		name      string
		percent   float64
		capacity  float64
		days      float64
		wantMgMl  float64
		wantTotal float64
		wantDaily float64
		wantPPD   float64
		wantErr   bool
	}{
		{
			name:      "defaults 5% 18mL over 7 days",
			percent:   5,
			capacity:  18,
			days:      7,
			wantMgMl:  50,
			wantTotal: 900,
			wantDaily: 128.571,
			wantPPD:   6.122,
		},
		{
			name:      "3% at 2mL per day",
			percent:   3,
			capacity:  2,
			days:      1,
			wantMgMl:  30,
			wantTotal: 60,
			wantDaily: 60,
			wantPPD:   2.857,
		},
		{
			name:      "zero strength",
			percent:   0,
			capacity:  10,
			days:      2,
			wantMgMl:  0,
			wantTotal: 0,
			wantDaily: 0,
			wantPPD:   0,
		},
		{
			name:      "maximum strength",
			percent:   50,
			capacity:  1,
			days:      1,
			wantMgMl:  500,
			wantTotal: 500,
			wantDaily: 500,
			wantPPD:   23.810,
		},
		{
			name:      "tiny positive days stays finite",
			percent:   5,
			capacity:  18,
			days:      0.1,
			wantMgMl:  50,
			wantTotal: 900,
			wantDaily: 9000,
			wantPPD:   428.571,
		},
		{name: "zero days", percent: 5, capacity: 18, days: 0, wantErr: true},
		{name: "negative days", percent: 5, capacity: 18, days: -1, wantErr: true},
		{name: "NaN days", percent: 5, capacity: 18, days: math.NaN(), wantErr: true},
		{name: "infinite days", percent: 5, capacity: 18, days: math.Inf(1), wantErr: true},
		{name: "percent above 50", percent: 50.1, capacity: 18, days: 7, wantErr: true},
		{name: "negative percent", percent: -1, capacity: 18, days: 7, wantErr: true},
		{name: "negative capacity", percent: 5, capacity: -18, days: 7, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeNicotineConsumption(tt.percent, tt.capacity, tt.days)

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidInput)
				assert.Equal(t, NicotineResult{}, got)
				return
			}

			require.NoError(t, err)
			assert.InDelta(t, tt.wantMgMl, got.MgPerMilliliter, 0.001)
			assert.InDelta(t, tt.wantTotal, got.TotalNicotineMilligrams, 0.001)
			assert.InDelta(t, tt.wantDaily, got.DailyNicotineMilligrams, 0.001)
			assert.InDelta(t, tt.wantPPD, got.PacksPerDayEquivalent, 0.001)
			assert.False(t, math.IsInf(got.DailyNicotineMilligrams, 0))
			assert.False(t, math.IsNaN(got.PacksPerDayEquivalent))
		})
	}
}

func TestComputeNicotineConsumption_FormulaIdentity(t *testing.T) {
	for _, pct := range []float64{0, 0.5, 3, 5, 6, 20, 50} {
		for _, capacity := range []float64{0, 1, 2, 10, 18, 60} {
			for _, days := range []float64{0.1, 0.5, 1, 3.5, 7, 30} {
				got, err := ComputeNicotineConsumption(pct, capacity, days)
				require.NoError(t, err)

				wantDaily := pct * 10 * capacity / days
				assert.Equal(t, wantDaily, got.DailyNicotineMilligrams)
				assert.Equal(t, got.DailyNicotineMilligrams/21, got.PacksPerDayEquivalent)
				assert.GreaterOrEqual(t, got.PacksPerDayEquivalent, 0.0)
			}
		}
	}
}

func TestNicotineResult_ShortUsagePeriod(t *testing.T) {
	short, err := ComputeNicotineConsumption(5, 18, 0.5)
	require.NoError(t, err)
	assert.True(t, short.ShortUsagePeriod())

	day, err := ComputeNicotineConsumption(5, 18, 1)
	require.NoError(t, err)
	assert.False(t, day.ShortUsagePeriod())
}
