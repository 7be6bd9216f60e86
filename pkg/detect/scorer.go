// Package detect implements heuristic synthetic-voice scoring over extracted
// acoustic features. Two strategies exist behind a common interface; the
// naturalness blend is the canonical default, the threshold accumulation
// variant is kept for comparison.
package detect

import (
	"fmt"

	"github.com/synthguard/synthguard/pkg/audio/extractors"
)

// Strategy names a scoring heuristic
type Strategy string

const (
	StrategyNaturalness Strategy = "naturalness"
	StrategyThreshold   Strategy = "threshold"
)

// Confidence bounds every verdict is clamped into
const (
	MinConfidence = 0.6
	MaxConfidence = 0.95
)

// Breakdown exposes the intermediate scores behind a verdict, each in [0, 1]
type Breakdown struct {
	ProsodyScore          float64 `json:"prosody_score"`
	SpectralArtifactScore float64 `json:"spectral_artifact_score"`
	Naturalness           float64 `json:"naturalness"`
}

// Verdict is the binary classification with confidence in
// [MinConfidence, MaxConfidence]
type Verdict struct {
	IsSynthetic bool       `json:"is_synthetic"`
	Confidence  float64    `json:"confidence"`
	Breakdown   *Breakdown `json:"breakdown,omitempty"`
}

// Scorer derives a verdict from a feature bundle. Implementations are pure
// and deterministic: identical features always produce identical verdicts.
type Scorer interface {
	Name() Strategy
	Score(features *extractors.FeatureBundle) *Verdict
}

// NewScorer returns the scorer for the named strategy
func NewScorer(strategy Strategy) (Scorer, error) {
	switch strategy {
	case StrategyNaturalness, "":
		return NewNaturalnessScorer(), nil
	case StrategyThreshold:
		return NewThresholdScorer(), nil
	default:
		return nil, fmt.Errorf("detect: unknown strategy %q", strategy)
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clamp01(v float64) float64 {
	return clamp(v, 0, 1)
}
