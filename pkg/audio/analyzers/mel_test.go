package analyzers

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMelHzRoundTrip(t *testing.T) {
	for _, hz := range []float64{0, 100, 440, 1000, 4000, 8000, 22050} {
		assert.InDelta(t, hz, MelToHz(HzToMel(hz)), 1e-6, "%v Hz", hz)
	}

	// Known anchor: 1000 Hz is ~999.99 mel under the 2595 formulation
	assert.InDelta(t, 1000.0, HzToMel(1000.0), 1.0)
}

func TestMelFilterbankOutputShape(t *testing.T) {
	mf := NewMelFilterbank(26, 44100)
	spectrum := make([]float64, 1024)
	for i := range spectrum {
		spectrum[i] = 1.0
	}

	energies := mf.Apply(spectrum)
	require.Len(t, energies, 26)

	// A flat unit spectrum puts energy into every filter
	for i, e := range energies {
		assert.Greater(t, e, math.Log(logFloor), "filter %d collected nothing", i)
	}
}

func TestMelFilterbankEmptySpectrum(t *testing.T) {
	mf := NewMelFilterbank(26, 44100)
	energies := mf.Apply(nil)
	require.Len(t, energies, 26)
	for _, e := range energies {
		assert.Equal(t, math.Log(logFloor), e)
	}
}

func TestMelFilterbankZeroSpectrumHitsFloor(t *testing.T) {
	mf := NewMelFilterbank(26, 44100)
	energies := mf.Apply(make([]float64, 1024))
	for i, e := range energies {
		assert.InDelta(t, math.Log(logFloor), e, 1e-9, "filter %d", i)
		assert.False(t, math.IsNaN(e) || math.IsInf(e, 0), "filter %d not finite", i)
	}
}

// Raising one spectral bin must not decrease any filter energy: triangular
// weights are non-negative and the log compression is monotonic.
func TestMelFilterbankMonotonicity(t *testing.T) {
	mf := NewMelFilterbank(26, 44100)

	spectrum := make([]float64, 1024)
	for i := range spectrum {
		spectrum[i] = 1.0 + 0.5*math.Sin(float64(i)/20.0)
	}
	baseline := mf.Apply(spectrum)

	for _, bin := range []int{5, 100, 300, 512, 900} {
		bumped := make([]float64, len(spectrum))
		copy(bumped, spectrum)
		bumped[bin] += 10.0

		energies := mf.Apply(bumped)
		for i := range energies {
			assert.GreaterOrEqual(t, energies[i], baseline[i]-1e-12,
				"filter %d decreased after raising bin %d", i, bin)
		}
	}
}

func TestMelFilterbankDefaultFilterCount(t *testing.T) {
	mf := NewMelFilterbank(0, 44100)
	assert.Equal(t, DefaultMelFilters, mf.NumFilters())
}
