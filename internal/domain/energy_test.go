package domain

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeEnergy(t *testing.T) {
	t.Run("chelyabinsk-like body", func(t *testing.T) {
		e, err := ComputeEnergy(20, 19, 3300)
		require.NoError(t, err)
		assert.InDelta(t, 596.3, e.Kilotons, 0.5)
		assert.InDelta(t, e.Kilotons*JoulesPerKiloton, e.Joules, 1)
	})

	t.Run("unit consistency", func(t *testing.T) {
		for _, d := range []float64{1, 20, 150, 1000, 10000} {
			e, err := ComputeEnergy(d, 20, DefaultDensityKgPerM3)
			require.NoError(t, err)
			assert.InEpsilon(t, e.Kilotons, e.Megatons*1000, 1e-12)
			assert.InEpsilon(t, e.Kilotons/HiroshimaKilotons, e.HiroshimasEquivalent, 1e-12)
			assert.InEpsilon(t, e.Joules/1e12, e.Terajoules, 1e-12)
		}
	})

	t.Run("monotonic in diameter", func(t *testing.T) {
		prev := 0.0
		for _, d := range []float64{1, 5, 10, 50, 100, 500} {
			e, err := ComputeEnergy(d, 17, 2500)
			require.NoError(t, err)
			assert.Greater(t, e.Kilotons, prev)
			prev = e.Kilotons
		}
	})

	t.Run("monotonic in velocity", func(t *testing.T) {
		prev := 0.0
		for _, v := range []float64{11, 20, 35, 50, 70} {
			e, err := ComputeEnergy(50, v, 2500)
			require.NoError(t, err)
			assert.Greater(t, e.Kilotons, prev)
			prev = e.Kilotons
		}
	})
}

func TestComputeEnergy_InvalidParameters(t *testing.T) {
	tests := []struct {
		name     string
		d, v, rh float64
		field    string
	}{
		{"zero diameter", 0, 20, 2500, "diameter_m"},
		{"negative diameter", -1, 20, 2500, "diameter_m"},
		{"NaN diameter", math.NaN(), 20, 2500, "diameter_m"},
		{"zero velocity", 10, 0, 2500, "velocity_km_s"},
		{"infinite velocity", 10, math.Inf(1), 2500, "velocity_km_s"},
		{"negative density", 10, 20, -5, "density"},
		{"overflow", 1e120, 70, 2500, "diameter_m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ComputeEnergy(tt.d, tt.v, tt.rh)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidParameter))

			var pe *ParameterError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, tt.field, pe.Field)
		})
	}
}

func TestConvertEnergy(t *testing.T) {
	e := ConvertEnergy(15000)
	assert.Equal(t, 15000.0, e.Kilotons)
	assert.Equal(t, 15.0, e.Megatons)
	assert.Equal(t, 1000.0, e.HiroshimasEquivalent)
	assert.InEpsilon(t, 6.276e16, e.Joules, 1e-9)
	assert.InEpsilon(t, 62760.0, e.Terajoules, 1e-9)

	assert.Equal(t, EnergyResult{}, ConvertEnergy(-3))
	assert.Equal(t, EnergyResult{}, ConvertEnergy(math.NaN()))
}

func TestComputeDamageRadii(t *testing.T) {
	r := ComputeDamageRadii(1000)
	assert.InDelta(t, 5.0, r.Total, 1e-9)
	assert.InDelta(t, 10.0, r.Severe, 1e-9)
	assert.InDelta(t, 15.0, r.Moderate, 1e-9)
	assert.InDelta(t, 30.0, r.Light, 1e-9)
	assert.InDelta(t, 25.0, r.Thermal, 1e-9)
	assert.InDelta(t, 8.0, r.Fireball, 1e-9)
}

func TestComputeDamageRadii_Ordering(t *testing.T) {
	for _, kt := range []float64{1e-6, 0.3, 1, 596, 15000, 1e8} {
		r := ComputeDamageRadii(kt)
		assert.Less(t, r.Total, r.Severe)
		assert.Less(t, r.Severe, r.Moderate)
		assert.Less(t, r.Moderate, r.Light)
	}
}

func TestComputeDamageRadii_ZeroAndNegative(t *testing.T) {
	assert.Equal(t, DamageRadii{}, ComputeDamageRadii(0))
	assert.Equal(t, DamageRadii{}, ComputeDamageRadii(-1000))
	assert.Equal(t, DamageRadii{}, ComputeDamageRadii(math.Inf(-1)))
}
