package analyzers

import (
	"math"

	"github.com/synthguard/synthguard/pkg/audio/dsp"
)

// DefaultMelFilters is the number of triangular filters in the filterbank
const DefaultMelFilters = 26

// logFloor keeps the log compression defined when a filter collects no energy
const logFloor = 1e-10

// MelFilterbank maps linear-frequency magnitude spectra onto triangular
// mel-scale filters and log-compresses the band energies
type MelFilterbank struct {
	numFilters int
	sampleRate int
}

// NewMelFilterbank creates a filterbank with numFilters bands. Filter edges
// span 0 Hz to Nyquist, evenly spaced in mel.
func NewMelFilterbank(numFilters, sampleRate int) *MelFilterbank {
	if numFilters <= 0 {
		numFilters = DefaultMelFilters
	}
	return &MelFilterbank{
		numFilters: numFilters,
		sampleRate: sampleRate,
	}
}

// HzToMel converts frequency in Hz to mel scale
func HzToMel(hz float64) float64 {
	return 2595.0 * math.Log10(1.0+hz/700.0)
}

// MelToHz converts mel scale to frequency in Hz
func MelToHz(mel float64) float64 {
	return 700.0 * (math.Pow(10.0, mel/2595.0) - 1.0)
}

// NumFilters returns the number of mel bands produced per spectrum
func (mf *MelFilterbank) NumFilters() int {
	return mf.numFilters
}

// edges returns numFilters+2 filter edge frequencies in Hz, evenly spaced in
// mel space between 0 Hz and Nyquist
func (mf *MelFilterbank) edges() []float64 {
	nyquist := float64(mf.sampleRate) / 2.0
	highMel := HzToMel(nyquist)
	step := highMel / float64(mf.numFilters+1)

	points := make([]float64, mf.numFilters+2)
	for i := range points {
		points[i] = MelToHz(float64(i) * step)
	}
	return points
}

// Apply computes one log mel energy per filter from a magnitude spectrum.
// Each filter weight rises linearly from 0 at the left edge to 1 at the
// center, then falls back to 0 at the right edge (triangular, unit peak).
func (mf *MelFilterbank) Apply(spectrum []float64) []float64 {
	energies := make([]float64, mf.numFilters)
	if len(spectrum) == 0 {
		for i := range energies {
			energies[i] = math.Log(logFloor)
		}
		return energies
	}

	edges := mf.edges()
	freqs := dsp.FrequencyBins(mf.sampleRate, len(spectrum))

	for m := 0; m < mf.numFilters; m++ {
		left := edges[m]
		center := edges[m+1]
		right := edges[m+2]

		sum := 0.0
		for bin, mag := range spectrum {
			freq := freqs[bin]
			var weight float64
			switch {
			case freq >= left && freq <= center && center > left:
				weight = (freq - left) / (center - left)
			case freq > center && freq <= right && right > center:
				weight = (right - freq) / (right - center)
			}
			sum += mag * weight
		}

		// Magnitudes and weights are non-negative, so the sum cannot go
		// below zero; clamp at the floor anyway instead of letting the
		// log blow up.
		if sum < logFloor {
			sum = 0
		}
		energies[m] = math.Log(sum + logFloor)
	}

	return energies
}
