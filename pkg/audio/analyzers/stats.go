package analyzers

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/synthguard/synthguard/pkg/audio/dsp"
)

// SpectralCentroid computes the magnitude-weighted mean frequency of a
// magnitude spectrum, a proxy for perceived brightness. Returns 0 when the
// spectrum carries no energy.
func SpectralCentroid(spectrum []float64, sampleRate int) float64 {
	if len(spectrum) == 0 {
		return 0
	}

	total := floats.Sum(spectrum)
	if total == 0 {
		return 0
	}

	weighted := 0.0
	for i, mag := range spectrum {
		weighted += dsp.BinFrequency(i, sampleRate, len(spectrum)) * mag
	}
	return weighted / total
}

// ZeroCrossingRate counts sign changes between consecutive samples across the
// whole signal, normalized by sample count. The result is always in [0, 1].
func ZeroCrossingRate(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}

	crossings := 0
	for i := 1; i < len(signal); i++ {
		if (signal[i-1] >= 0) != (signal[i] >= 0) {
			crossings++
		}
	}
	return float64(crossings) / float64(len(signal))
}

// Variance computes population variance (mean of squared deviations)
func Variance(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return stat.PopVariance(values, nil)
}

// Mean computes the arithmetic mean, 0 for empty input
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return stat.Mean(values, nil)
}

// RMSEnergy computes root-mean-square energy of a frame
func RMSEnergy(frame []float64) float64 {
	if len(frame) == 0 {
		return 0
	}
	sum := 0.0
	for _, s := range frame {
		sum += s * s
	}
	return math.Sqrt(sum / float64(len(frame)))
}
