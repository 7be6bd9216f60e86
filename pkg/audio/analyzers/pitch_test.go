package analyzers

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sineFrame(freq float64, sampleRate, n int) []float64 {
	frame := make([]float64, n)
	for i := range frame {
		frame[i] = math.Sin(2.0 * math.Pi * freq * float64(i) / float64(sampleRate))
	}
	return frame
}

func TestPitchEstimate220Hz(t *testing.T) {
	const (
		sampleRate = 44100
		frameSize  = 2048
		f0         = 220.0
	)

	pe := NewPitchEstimator(sampleRate)
	pitch := pe.Estimate(sineFrame(f0, sampleRate, frameSize))

	// Best lag should land at round(44100/220) = 200 samples
	require.Greater(t, pitch, 0.0)
	assert.InDelta(t, f0, pitch, f0*0.01, "estimate outside 1%% of 220 Hz")
}

func TestPitchEstimateSpeechRange(t *testing.T) {
	const sampleRate = 44100

	pe := NewPitchEstimator(sampleRate)
	for _, f0 := range []float64{80.0, 120.0, 180.0, 300.0} {
		pitch := pe.Estimate(sineFrame(f0, sampleRate, 4096))
		assert.InDelta(t, f0, pitch, f0*0.02, "f0 %v", f0)
	}
}

func TestPitchEstimateSilence(t *testing.T) {
	pe := NewPitchEstimator(44100)
	assert.Zero(t, pe.Estimate(make([]float64, 2048)))
}

func TestPitchEstimateTinyFrame(t *testing.T) {
	// Frame too short for any lag in the search range
	pe := NewPitchEstimator(44100)
	assert.Zero(t, pe.Estimate(make([]float64, 16)))
}

func TestPitchTrackDropsUnvoiced(t *testing.T) {
	const sampleRate = 44100

	pe := NewPitchEstimator(sampleRate)
	frames := [][]float64{
		sineFrame(220, sampleRate, 2048),
		make([]float64, 2048), // silent frame drops out
		sineFrame(110, sampleRate, 2048),
	}

	track := pe.Track(frames)
	require.Len(t, track, 2)
	assert.InDelta(t, 220, track[0], 220*0.01)
	assert.InDelta(t, 110, track[1], 110*0.01)
}
