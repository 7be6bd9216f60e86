package analyzers

import "math"

const (
	// DefaultMFCCCoefficients is the number of cepstral coefficients kept per frame
	DefaultMFCCCoefficients = 13

	// LegacyMFCCCap truncates the flattened cross-frame coefficient sequence.
	// This is a deliberately simplistic summarization carried over from the
	// original feature record, not a proper fixed-length embedding; the
	// per-frame matrix is the primary output and this cap only shapes the
	// serialized legacy view.
	LegacyMFCCCap = 40

	// legacyMFCCFrames bounds how many frames feed the legacy summary
	legacyMFCCFrames = 10
)

// CepstralAnalyzer computes mel-frequency cepstral coefficients from log mel
// energies via a Type-II DCT
type CepstralAnalyzer struct {
	numCoefficients int
}

// NewCepstralAnalyzer creates an analyzer producing numCoefficients per frame
func NewCepstralAnalyzer(numCoefficients int) *CepstralAnalyzer {
	if numCoefficients <= 0 {
		numCoefficients = DefaultMFCCCoefficients
	}
	return &CepstralAnalyzer{numCoefficients: numCoefficients}
}

// NumCoefficients returns the per-frame coefficient count
func (ca *CepstralAnalyzer) NumCoefficients() int {
	return ca.numCoefficients
}

// Compute applies an unnormalized Type-II DCT to the log mel energies:
//
//	mfcc[k] = sum_n mel[n] * cos(pi*k*(n+0.5)/N)
//
// No orthonormal scaling factor is applied; adding one would change output
// magnitude and break comparisons against existing feature records.
func (ca *CepstralAnalyzer) Compute(melSpectrum []float64) []float64 {
	n := len(melSpectrum)
	coeffs := make([]float64, ca.numCoefficients)
	if n == 0 {
		return coeffs
	}

	for k := 0; k < ca.numCoefficients; k++ {
		sum := 0.0
		for i, mel := range melSpectrum {
			sum += mel * math.Cos(math.Pi*float64(k)*(float64(i)+0.5)/float64(n))
		}
		coeffs[k] = sum
	}
	return coeffs
}

// FlattenLegacy concatenates per-frame coefficients from at most
// legacyMFCCFrames frames and truncates the result to LegacyMFCCCap values
func FlattenLegacy(frames [][]float64) []float64 {
	flat := make([]float64, 0, LegacyMFCCCap)
	for f, coeffs := range frames {
		if f >= legacyMFCCFrames {
			break
		}
		for _, c := range coeffs {
			if len(flat) >= LegacyMFCCCap {
				return flat
			}
			flat = append(flat, c)
		}
	}
	return flat
}
