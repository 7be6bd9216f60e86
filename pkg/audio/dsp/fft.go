package dsp

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidFrameSize is returned when the FFT is invoked on a frame whose
// length is not a power of two. The analysis pipeline only produces
// power-of-two frames (512, 1024, 2048), so hitting this indicates a
// programmer error rather than bad audio input.
var ErrInvalidFrameSize = errors.New("fft: frame length must be a power of two")

// FFT computes in-place radix-2 Cooley-Tukey transforms
type FFT struct{}

// NewFFT creates a new FFT transformer
func NewFFT() *FFT {
	return &FFT{}
}

// Transform performs an in-place radix-2 FFT over the real and imaginary
// arrays. Both slices must have the same power-of-two length. The twiddle
// factor for each butterfly stage is advanced by a complex recurrence so only
// O(log N) trigonometric calls are made.
func (f *FFT) Transform(real, imag []float64) error {
	n := len(real)
	if n != len(imag) {
		return fmt.Errorf("fft: real/imag length mismatch (%d vs %d)", n, len(imag))
	}
	if n == 0 || n&(n-1) != 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidFrameSize, n)
	}
	if n == 1 {
		return nil
	}

	// Bit-reversal permutation
	for i, j := 1, 0; i < n; i++ {
		bit := n >> 1
		for ; j&bit != 0; bit >>= 1 {
			j ^= bit
		}
		j ^= bit
		if i < j {
			real[i], real[j] = real[j], real[i]
			imag[i], imag[j] = imag[j], imag[i]
		}
	}

	// Iterative butterfly stages, block length doubling each pass
	for length := 2; length <= n; length <<= 1 {
		angle := -2.0 * math.Pi / float64(length)
		wStepReal := math.Cos(angle)
		wStepImag := math.Sin(angle)

		for start := 0; start < n; start += length {
			wReal := 1.0
			wImag := 0.0
			half := length / 2

			for k := 0; k < half; k++ {
				even := start + k
				odd := even + half

				tReal := real[odd]*wReal - imag[odd]*wImag
				tImag := real[odd]*wImag + imag[odd]*wReal

				real[odd] = real[even] - tReal
				imag[odd] = imag[even] - tImag
				real[even] += tReal
				imag[even] += tImag

				wReal, wImag = wReal*wStepReal-wImag*wStepImag, wReal*wStepImag+wImag*wStepReal
			}
		}
	}

	return nil
}

// MagnitudeSpectrum computes the magnitude spectrum of a real-valued frame.
// The result covers the first frameSize/2 bins; the mirrored upper half is
// discarded.
func (f *FFT) MagnitudeSpectrum(frame []float64) ([]float64, error) {
	n := len(frame)
	real := make([]float64, n)
	imag := make([]float64, n)
	copy(real, frame)

	if err := f.Transform(real, imag); err != nil {
		return nil, err
	}

	spectrum := make([]float64, n/2)
	for i := range spectrum {
		spectrum[i] = math.Sqrt(real[i]*real[i] + imag[i]*imag[i])
	}
	return spectrum, nil
}

// BinFrequency maps a spectrum bin index to its center frequency in Hz.
// spectrumLength is the half-spectrum length returned by MagnitudeSpectrum,
// so the divisor is 2*spectrumLength, i.e. the original frame size. Do not
// fold the factor of two into the numerator: bin*sampleRate/spectrumLength
// would double every frequency.
func BinFrequency(bin int, sampleRate int, spectrumLength int) float64 {
	if spectrumLength <= 0 {
		return 0
	}
	return float64(bin) * float64(sampleRate) / float64(2*spectrumLength)
}

// FrequencyBins returns the center frequency of every bin in a half spectrum
func FrequencyBins(sampleRate int, spectrumLength int) []float64 {
	freqs := make([]float64, spectrumLength)
	for i := range freqs {
		freqs[i] = BinFrequency(i, sampleRate, spectrumLength)
	}
	return freqs
}
