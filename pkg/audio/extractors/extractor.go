package extractors

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/synthguard/synthguard/pkg/audio/analyzers"
	"github.com/synthguard/synthguard/pkg/audio/dsp"
	"github.com/synthguard/synthguard/pkg/logging"
)

// Config holds feature extraction parameters
type Config struct {
	SampleRate       int    `json:"sample_rate" mapstructure:"sample_rate"`
	FrameSize        int    `json:"frame_size" mapstructure:"frame_size"`
	HopSize          int    `json:"hop_size" mapstructure:"hop_size"`
	MelFilters       int    `json:"mel_filters" mapstructure:"mel_filters"`
	MFCCCoefficients int    `json:"mfcc_coefficients" mapstructure:"mfcc_coefficients"`
	WindowFunction   string `json:"window_function" mapstructure:"window_function"`
}

// DefaultConfig returns extraction parameters matching the analysis defaults
func DefaultConfig(sampleRate int) *Config {
	return &Config{
		SampleRate:       sampleRate,
		FrameSize:        2048,
		HopSize:          512,
		MelFilters:       analyzers.DefaultMelFilters,
		MFCCCoefficients: analyzers.DefaultMFCCCoefficients,
		WindowFunction:   "hamming",
	}
}

// FeatureExtractor runs the frame pipeline (window, FFT, mel/cepstral or
// pitch analysis) over a mono PCM buffer and aggregates per-frame results.
// The input buffer is only ever read; all methods are safe to call
// concurrently on the same signal.
type FeatureExtractor struct {
	cfg        *Config
	framer     *dsp.Framer
	window     *dsp.WindowGenerator
	windowType dsp.WindowType
	fft        *dsp.FFT
	mel        *analyzers.MelFilterbank
	cepstral   *analyzers.CepstralAnalyzer
	pitch      *analyzers.PitchEstimator
	formants   *analyzers.FormantExtractor
	logger     logging.Logger
}

// NewFeatureExtractor creates an extractor for the given configuration
func NewFeatureExtractor(cfg *Config) *FeatureExtractor {
	if cfg == nil {
		cfg = DefaultConfig(44100)
	}
	return &FeatureExtractor{
		cfg:        cfg,
		framer:     dsp.NewFramer(cfg.FrameSize, cfg.HopSize),
		window:     dsp.NewWindowGenerator(),
		windowType: dsp.ParseWindowType(cfg.WindowFunction),
		fft:        dsp.NewFFT(),
		mel:        analyzers.NewMelFilterbank(cfg.MelFilters, cfg.SampleRate),
		cepstral:   analyzers.NewCepstralAnalyzer(cfg.MFCCCoefficients),
		pitch:      analyzers.NewPitchEstimator(cfg.SampleRate),
		formants:   analyzers.NewFormantExtractor(cfg.SampleRate),
		logger: logging.WithFields(logging.Fields{
			"component":   "feature_extractor",
			"sample_rate": cfg.SampleRate,
			"frame_size":  cfg.FrameSize,
		}),
	}
}

// frameSpectrum windows one frame and returns its magnitude spectrum
func (fe *FeatureExtractor) frameSpectrum(frame []float64) ([]float64, error) {
	windowed := fe.window.Apply(frame, fe.windowType)
	return fe.fft.MagnitudeSpectrum(windowed)
}

// ExtractMFCCFrames computes cepstral coefficients for every frame. A signal
// shorter than one frame yields an empty matrix, not an error.
func (fe *FeatureExtractor) ExtractMFCCFrames(signal []float64) ([][]float64, error) {
	frames := fe.framer.Frames(signal)
	coeffs := make([][]float64, 0, len(frames))

	for _, frame := range frames {
		spectrum, err := fe.frameSpectrum(frame)
		if err != nil {
			return nil, err
		}
		melEnergies := fe.mel.Apply(spectrum)
		coeffs = append(coeffs, fe.cepstral.Compute(melEnergies))
	}
	return coeffs, nil
}

// ExtractPitchTrack estimates fundamental frequency per frame, dropping
// frames with no detected pitch
func (fe *FeatureExtractor) ExtractPitchTrack(signal []float64) []float64 {
	return fe.pitch.Track(fe.framer.Frames(signal))
}

// ExtractFormants picks formant peaks from the spectrum of the first
// analysis frame, truncated to analyzers.MaxFormants entries
func (fe *FeatureExtractor) ExtractFormants(signal []float64) ([]float64, error) {
	if fe.framer.NumFrames(len(signal)) == 0 {
		return nil, nil
	}
	spectrum, err := fe.frameSpectrum(fe.framer.Frame(signal, 0))
	if err != nil {
		return nil, err
	}
	return analyzers.TruncateFormants(fe.formants.Extract(spectrum)), nil
}

// ExtractSpectralCentroid computes the centroid of the first analysis frame,
// 0 for signals shorter than one frame
func (fe *FeatureExtractor) ExtractSpectralCentroid(signal []float64) (float64, error) {
	if fe.framer.NumFrames(len(signal)) == 0 {
		return 0, nil
	}
	spectrum, err := fe.frameSpectrum(fe.framer.Frame(signal, 0))
	if err != nil {
		return 0, err
	}
	return analyzers.SpectralCentroid(spectrum, fe.cfg.SampleRate), nil
}

// ExtractEnergyContour computes RMS energy per frame
func (fe *FeatureExtractor) ExtractEnergyContour(signal []float64) []float64 {
	frames := fe.framer.Frames(signal)
	contour := make([]float64, len(frames))
	for i, frame := range frames {
		contour[i] = analyzers.RMSEnergy(frame)
	}
	return contour
}

// Extract runs every feature extractor and aggregates the results into a
// FeatureBundle. Feature families are independent per frame, so they fan out
// across goroutines; the signal itself is shared read-only.
func (fe *FeatureExtractor) Extract(ctx context.Context, signal []float64) (*FeatureBundle, error) {
	logger := fe.logger.WithFields(logging.Fields{
		"function": "Extract",
		"samples":  len(signal),
	})
	logger.Debug("Extracting feature bundle")

	bundle := &FeatureBundle{
		SampleRate: fe.cfg.SampleRate,
	}
	if fe.cfg.SampleRate > 0 {
		bundle.DurationSeconds = float64(len(signal)) / float64(fe.cfg.SampleRate)
	}

	g, _ := errgroup.WithContext(ctx)

	g.Go(func() error {
		frames, err := fe.ExtractMFCCFrames(signal)
		if err != nil {
			return err
		}
		bundle.MFCCFrames = frames
		bundle.MFCC = analyzers.FlattenLegacy(frames)
		return nil
	})

	g.Go(func() error {
		bundle.PitchTrack = fe.ExtractPitchTrack(signal)
		return nil
	})

	g.Go(func() error {
		formants, err := fe.ExtractFormants(signal)
		if err != nil {
			return err
		}
		bundle.Formants = formants
		return nil
	})

	g.Go(func() error {
		centroid, err := fe.ExtractSpectralCentroid(signal)
		if err != nil {
			return err
		}
		bundle.SpectralCentroid = centroid
		return nil
	})

	g.Go(func() error {
		bundle.ZeroCrossingRate = analyzers.ZeroCrossingRate(signal)
		bundle.EnergyContour = fe.ExtractEnergyContour(signal)
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error(err, "Feature extraction failed")
		return nil, err
	}

	logger.Debug("Feature extraction completed", logging.Fields{
		"mfcc_frames":   len(bundle.MFCCFrames),
		"voiced_frames": len(bundle.PitchTrack),
		"formants":      len(bundle.Formants),
	})
	return bundle, nil
}
