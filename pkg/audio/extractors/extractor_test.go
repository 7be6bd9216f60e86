package extractors

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/synthguard/synthguard/pkg/audio/analyzers"
)

// ExtractorTestSuite runs the pipeline end to end over synthetic signals
type ExtractorTestSuite struct {
	suite.Suite
	extractor  *FeatureExtractor
	sampleRate int

	toneSignal  []float64 // 220 Hz pure sine, 1 second
	shortSignal []float64 // below one frame
}

func (s *ExtractorTestSuite) SetupSuite() {
	s.sampleRate = 44100
	s.extractor = NewFeatureExtractor(DefaultConfig(s.sampleRate))

	s.toneSignal = make([]float64, s.sampleRate)
	for i := range s.toneSignal {
		s.toneSignal[i] = math.Sin(2.0 * math.Pi * 220.0 * float64(i) / float64(s.sampleRate))
	}

	s.shortSignal = make([]float64, 100)
}

func (s *ExtractorTestSuite) TestPitchTrackOnPureTone() {
	track := s.extractor.ExtractPitchTrack(s.toneSignal)
	s.Require().NotEmpty(track)

	for _, pitch := range track {
		s.InDelta(220.0, pitch, 220.0*0.01)
	}
}

func (s *ExtractorTestSuite) TestFormantsStayInBand() {
	formants, err := s.extractor.ExtractFormants(s.toneSignal)
	s.Require().NoError(err)
	s.LessOrEqual(len(formants), analyzers.MaxFormants)

	for _, freq := range formants {
		s.Greater(freq, 200.0)
		s.Less(freq, 5000.0)
	}
}

func (s *ExtractorTestSuite) TestMFCCShape() {
	frames, err := s.extractor.ExtractMFCCFrames(s.toneSignal)
	s.Require().NoError(err)

	expectedFrames := (len(s.toneSignal) - 2048) / 512
	s.Len(frames, expectedFrames)
	for _, coeffs := range frames {
		s.Len(coeffs, analyzers.DefaultMFCCCoefficients)
	}

	flat := analyzers.FlattenLegacy(frames)
	s.LessOrEqual(len(flat), analyzers.LegacyMFCCCap)
}

func (s *ExtractorTestSuite) TestBundleOnPureTone() {
	bundle, err := s.extractor.Extract(context.Background(), s.toneSignal)
	s.Require().NoError(err)
	s.Require().NotNil(bundle)

	s.Equal(s.sampleRate, bundle.SampleRate)
	s.InDelta(1.0, bundle.DurationSeconds, 1e-9)

	// A 220 Hz tone is bright nowhere near Nyquist
	s.Greater(bundle.SpectralCentroid, 0.0)
	s.Less(bundle.SpectralCentroid, 22050.0)

	// 220 Hz crosses zero 440 times per second
	s.GreaterOrEqual(bundle.ZeroCrossingRate, 0.0)
	s.LessOrEqual(bundle.ZeroCrossingRate, 1.0)
	s.InDelta(440.0/float64(s.sampleRate), bundle.ZeroCrossingRate, 0.002)

	s.NotEmpty(bundle.PitchTrack)
	s.NotEmpty(bundle.EnergyContour)
	s.LessOrEqual(len(bundle.MFCC), analyzers.LegacyMFCCCap)
	s.Len(bundle.MFCCFrames, len(bundle.EnergyContour))
}

func (s *ExtractorTestSuite) TestShortSignalYieldsEmptyBundle() {
	bundle, err := s.extractor.Extract(context.Background(), s.shortSignal)
	s.Require().NoError(err)

	s.Empty(bundle.MFCCFrames)
	s.Empty(bundle.MFCC)
	s.Empty(bundle.PitchTrack)
	s.Empty(bundle.Formants)
	s.Empty(bundle.EnergyContour)
	s.Zero(bundle.SpectralCentroid)
}

func (s *ExtractorTestSuite) TestEmptySignal() {
	bundle, err := s.extractor.Extract(context.Background(), nil)
	s.Require().NoError(err)
	s.Zero(bundle.DurationSeconds)
	s.Zero(bundle.ZeroCrossingRate)
}

func TestExtractorTestSuite(t *testing.T) {
	suite.Run(t, new(ExtractorTestSuite))
}

func TestEnergyContourTracksAmplitude(t *testing.T) {
	const sampleRate = 44100
	extractor := NewFeatureExtractor(DefaultConfig(sampleRate))

	// First half loud, second half quiet
	signal := make([]float64, sampleRate)
	for i := range signal {
		amp := 1.0
		if i >= sampleRate/2 {
			amp = 0.1
		}
		signal[i] = amp * math.Sin(2.0*math.Pi*220.0*float64(i)/float64(sampleRate))
	}

	contour := extractor.ExtractEnergyContour(signal)
	require.NotEmpty(t, contour)
	assert.Greater(t, contour[0], contour[len(contour)-1])
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig(22050)
	assert.Equal(t, 22050, cfg.SampleRate)
	assert.Equal(t, 2048, cfg.FrameSize)
	assert.Equal(t, 512, cfg.HopSize)
	assert.Equal(t, analyzers.DefaultMelFilters, cfg.MelFilters)
	assert.Equal(t, analyzers.DefaultMFCCCoefficients, cfg.MFCCCoefficients)
}
