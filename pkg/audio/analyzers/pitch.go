package analyzers

// Fundamental frequency search range for speech, in Hz
const (
	pitchMinHz = 50.0
	pitchMaxHz = 500.0
)

// PitchEstimator detects fundamental frequency via unnormalized
// autocorrelation over a per-frame lag search.
//
// The raw (non length-adjusted) autocorrelation sum biases towards shorter
// lags when signal energy is non-stationary. That is acceptable for the
// heuristic scoring this feeds, but estimates from this detector are an
// approximation, not ground truth.
type PitchEstimator struct {
	sampleRate int
}

// NewPitchEstimator creates a pitch estimator for the given sample rate
func NewPitchEstimator(sampleRate int) *PitchEstimator {
	return &PitchEstimator{sampleRate: sampleRate}
}

// Estimate returns the fundamental frequency of a single frame in Hz, or 0
// when no positive-correlation lag exists in the search range. Lags
// corresponding to 50-500 Hz fundamentals are searched, clamped to half the
// frame length.
func (pe *PitchEstimator) Estimate(frame []float64) float64 {
	minLag := int(float64(pe.sampleRate) / pitchMaxHz)
	maxLag := int(float64(pe.sampleRate) / pitchMinHz)
	if maxLag > len(frame)/2 {
		maxLag = len(frame) / 2
	}
	if minLag < 1 {
		minLag = 1
	}

	bestLag := 0
	bestCorr := 0.0

	for lag := minLag; lag < maxLag; lag++ {
		corr := 0.0
		for i := 0; i+lag < len(frame); i++ {
			corr += frame[i] * frame[i+lag]
		}
		if corr > bestCorr {
			bestCorr = corr
			bestLag = lag
		}
	}

	if bestLag == 0 {
		return 0
	}
	return float64(pe.sampleRate) / float64(bestLag)
}

// Track estimates pitch for every frame and drops non-positive estimates, so
// the returned contour may be shorter than the frame count
func (pe *PitchEstimator) Track(frames [][]float64) []float64 {
	track := make([]float64, 0, len(frames))
	for _, frame := range frames {
		if pitch := pe.Estimate(frame); pitch > 0 {
			track = append(track, pitch)
		}
	}
	return track
}
