package detect

import (
	"math"

	"github.com/synthguard/synthguard/pkg/audio/analyzers"
	"github.com/synthguard/synthguard/pkg/audio/extractors"
)

// naturalnessThreshold splits synthetic from natural on the blended score
const naturalnessThreshold = 0.65

// Reference deviations that map contour variability onto [0, 1]. A pitch
// contour wandering by ~50 Hz or an energy contour by ~0.05 RMS saturates
// its prosody component.
const (
	prosodyPitchStdRef  = 50.0
	prosodyEnergyStdRef = 0.05
)

// NaturalnessScorer blends a prosody score against a spectral-artifact score:
//
//	naturalness = (1 - artifact)*0.6 + prosody*0.4
//	isSynthetic = naturalness < 0.65
//	confidence  = clamp(0.6, 0.95, |naturalness - 0.65|*3 + 0.6)
//
// Natural speech has variable pitch and energy contours (high prosody score)
// and irregularly spaced spectral peaks (low artifact score).
type NaturalnessScorer struct{}

// NewNaturalnessScorer creates the canonical scorer
func NewNaturalnessScorer() *NaturalnessScorer {
	return &NaturalnessScorer{}
}

func (s *NaturalnessScorer) Name() Strategy {
	return StrategyNaturalness
}

func (s *NaturalnessScorer) Score(features *extractors.FeatureBundle) *Verdict {
	prosody := ProsodyScore(features.PitchTrack, features.EnergyContour)
	artifact := SpectralArtifactScore(features.Formants)
	return ScoreComponents(prosody, artifact)
}

// ScoreComponents derives the verdict from already-computed prosody and
// artifact scores. Split out so the blend, threshold, and confidence formula
// are directly testable.
func ScoreComponents(prosodyScore, spectralArtifactScore float64) *Verdict {
	naturalness := (1.0-spectralArtifactScore)*0.6 + prosodyScore*0.4
	confidence := clamp(math.Abs(naturalness-naturalnessThreshold)*3.0+MinConfidence,
		MinConfidence, MaxConfidence)

	return &Verdict{
		IsSynthetic: naturalness < naturalnessThreshold,
		Confidence:  confidence,
		Breakdown: &Breakdown{
			ProsodyScore:          prosodyScore,
			SpectralArtifactScore: spectralArtifactScore,
			Naturalness:           naturalness,
		},
	}
}

// ProsodyScore maps pitch-contour and energy-contour variability onto [0, 1].
// Higher variance reads as more natural. Flat or empty contours score 0.
func ProsodyScore(pitchTrack, energyContour []float64) float64 {
	pitchStd := math.Sqrt(analyzers.Variance(pitchTrack))
	energyStd := math.Sqrt(analyzers.Variance(energyContour))

	pitchComponent := clamp01(pitchStd / prosodyPitchStdRef)
	energyComponent := clamp01(energyStd / prosodyEnergyStdRef)

	return pitchComponent*0.6 + energyComponent*0.4
}

// SpectralArtifactScore measures the regularity of spacing between spectral
// peaks. Vocoders tend to leave evenly spaced peaks, so a low coefficient of
// variation across peak-to-peak distances raises the score. Fewer than three
// peaks is treated as inconclusive (0.5).
func SpectralArtifactScore(peaks []float64) float64 {
	if len(peaks) < 3 {
		return 0.5
	}

	spacings := make([]float64, 0, len(peaks)-1)
	for i := 1; i < len(peaks); i++ {
		spacings = append(spacings, math.Abs(peaks[i-1]-peaks[i]))
	}

	mean := analyzers.Mean(spacings)
	if mean == 0 {
		return 0.5
	}
	cv := math.Sqrt(analyzers.Variance(spacings)) / mean

	return clamp01(1.0 - cv)
}
