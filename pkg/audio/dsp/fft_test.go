package dsp

import (
	"math"
	"math/cmplx"
	"testing"

	dspfft "github.com/mjibson/go-dsp/fft"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sine generates n samples of a pure sinusoid
func sine(freq float64, sampleRate, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Sin(2.0 * math.Pi * freq * float64(i) / float64(sampleRate))
	}
	return out
}

func TestTransformRejectsNonPowerOfTwo(t *testing.T) {
	f := NewFFT()

	for _, n := range []int{0, 3, 500, 1000, 2047} {
		real := make([]float64, n)
		imag := make([]float64, n)
		err := f.Transform(real, imag)
		require.Error(t, err, "length %d", n)
		assert.ErrorIs(t, err, ErrInvalidFrameSize)
	}
}

func TestTransformRejectsLengthMismatch(t *testing.T) {
	f := NewFFT()
	err := f.Transform(make([]float64, 8), make([]float64, 4))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidFrameSize)
}

func TestMagnitudeSpectrumSinePeak(t *testing.T) {
	const (
		sampleRate = 44100
		frameSize  = 2048
		f0         = 1000.0
	)

	f := NewFFT()
	spectrum, err := f.MagnitudeSpectrum(sine(f0, sampleRate, frameSize))
	require.NoError(t, err)
	require.Len(t, spectrum, frameSize/2)

	peakBin := 0
	for i, mag := range spectrum {
		if mag > spectrum[peakBin] {
			peakBin = i
		}
	}

	expectedBin := int(math.Round(f0 * frameSize / sampleRate))
	assert.InDelta(t, expectedBin, peakBin, 1, "peak bin off by more than 1")
}

func TestMagnitudeSpectrumMatchesReference(t *testing.T) {
	const n = 256
	signal := make([]float64, n)
	for i := range signal {
		// Deterministic multi-tone content
		signal[i] = math.Sin(2.0*math.Pi*float64(i)/16.0) +
			0.5*math.Cos(2.0*math.Pi*float64(i)/5.0) +
			0.1*float64(i%7)
	}

	f := NewFFT()
	spectrum, err := f.MagnitudeSpectrum(signal)
	require.NoError(t, err)

	reference := dspfft.FFTReal(signal)
	require.GreaterOrEqual(t, len(reference), n/2)

	for i := 0; i < n/2; i++ {
		assert.InDelta(t, cmplx.Abs(reference[i]), spectrum[i], 1e-6, "bin %d", i)
	}
}

func TestBinFrequencyMapping(t *testing.T) {
	const (
		sampleRate     = 44100
		frameSize      = 2048
		spectrumLength = frameSize / 2
	)

	// The divisor is twice the half-spectrum length, i.e. the original
	// frame size.
	assert.Zero(t, BinFrequency(0, sampleRate, spectrumLength))
	assert.InDelta(t, float64(sampleRate)/frameSize, BinFrequency(1, sampleRate, spectrumLength), 1e-9)

	// Last bin sits just below Nyquist
	last := BinFrequency(spectrumLength-1, sampleRate, spectrumLength)
	assert.Less(t, last, float64(sampleRate)/2)
	assert.Greater(t, last, float64(sampleRate)/2-float64(sampleRate)/frameSize-1e-9)

	// Degenerate spectrum length resolves to the 0 sentinel
	assert.Zero(t, BinFrequency(10, sampleRate, 0))
}

func TestFrequencyBins(t *testing.T) {
	freqs := FrequencyBins(8000, 4)
	require.Len(t, freqs, 4)
	assert.Equal(t, []float64{0, 1000, 2000, 3000}, freqs)
}

func TestTransformKnownImpulse(t *testing.T) {
	// FFT of a unit impulse is flat with magnitude 1 in every bin
	f := NewFFT()
	real := make([]float64, 16)
	imag := make([]float64, 16)
	real[0] = 1.0

	require.NoError(t, f.Transform(real, imag))
	for i := range real {
		assert.InDelta(t, 1.0, real[i], 1e-12, "real bin %d", i)
		assert.InDelta(t, 0.0, imag[i], 1e-12, "imag bin %d", i)
	}
}
