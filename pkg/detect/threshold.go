package detect

import (
	"github.com/synthguard/synthguard/pkg/audio/analyzers"
	"github.com/synthguard/synthguard/pkg/audio/extractors"
)

// Threshold accumulation weights. Each factor fires independently when its
// feature crosses into territory typical of synthesized speech.
const (
	weightFlatPitch    = 0.30 // pitch variance below flatPitchVariance
	weightAbnormalZCR  = 0.20 // ZCR outside the conversational band
	weightHighCentroid = 0.15 // centroid above brightCentroidHz
	weightFlatMFCC     = 0.25 // MFCC variance below flatMFCCVariance

	flatPitchVariance = 100.0
	zcrBandLow        = 0.05
	zcrBandHigh       = 0.15
	brightCentroidHz  = 4000.0
	flatMFCCVariance  = 10.0

	accumulationThreshold = 0.7
)

// totalAccumulationWeight normalizes the accumulated score into [0, 1]
const totalAccumulationWeight = weightFlatPitch + weightAbnormalZCR + weightHighCentroid + weightFlatMFCC

// ThresholdScorer accumulates fixed weights for independently-computed
// threshold features and normalizes by the total attainable weight. The
// original formulation blended in a random perturbation before thresholding;
// that term is gone, keeping only the deterministic combination structure.
type ThresholdScorer struct{}

// NewThresholdScorer creates the accumulation-variant scorer
func NewThresholdScorer() *ThresholdScorer {
	return &ThresholdScorer{}
}

func (s *ThresholdScorer) Name() Strategy {
	return StrategyThreshold
}

func (s *ThresholdScorer) Score(features *extractors.FeatureBundle) *Verdict {
	score := 0.0

	if analyzers.Variance(features.PitchTrack) < flatPitchVariance {
		score += weightFlatPitch
	}
	if features.ZeroCrossingRate < zcrBandLow || features.ZeroCrossingRate > zcrBandHigh {
		score += weightAbnormalZCR
	}
	if features.SpectralCentroid > brightCentroidHz {
		score += weightHighCentroid
	}
	if analyzers.Variance(features.MFCC) < flatMFCCVariance {
		score += weightFlatMFCC
	}

	normalized := score / totalAccumulationWeight
	confidence := clamp(MinConfidence+normalized*(MaxConfidence-MinConfidence),
		MinConfidence, MaxConfidence)

	return &Verdict{
		IsSynthetic: normalized >= accumulationThreshold,
		Confidence:  confidence,
	}
}
