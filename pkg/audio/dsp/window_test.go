package dsp

import (
	"math"
	"testing"

	dspwindow "github.com/mjibson/go-dsp/window"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindowZeroInput(t *testing.T) {
	wg := NewWindowGenerator()
	frame := make([]float64, 512)

	for _, wt := range []WindowType{WindowHann, WindowHamming, WindowBlackman, WindowRectangular} {
		out := wg.Apply(frame, wt)
		require.Len(t, out, len(frame))
		for i, v := range out {
			assert.Zero(t, v, "window type %d, sample %d", wt, i)
		}
	}
}

func TestHammingCoefficients(t *testing.T) {
	wg := NewWindowGenerator()
	window := wg.Generate(WindowHamming, 512)

	// Endpoints of the symmetric Hamming window
	assert.InDelta(t, 0.08, window[0], 1e-12)
	assert.InDelta(t, 0.08, window[511], 1e-12)

	// Peak at the center
	mid := window[255]
	for _, v := range window {
		assert.LessOrEqual(t, v, window[256]+1e-12)
	}
	assert.Greater(t, mid, 0.99)

	// Cross-check against the go-dsp window tables
	reference := dspwindow.Hamming(512)
	require.Len(t, reference, 512)
	for i := range window {
		assert.InDelta(t, reference[i], window[i], 1e-9, "coefficient %d", i)
	}
}

func TestHannCoefficients(t *testing.T) {
	wg := NewWindowGenerator()
	window := wg.Generate(WindowHann, 256)

	n := float64(255)
	for i, v := range window {
		expected := 0.5 * (1.0 - math.Cos(2.0*math.Pi*float64(i)/n))
		assert.InDelta(t, expected, v, 1e-12, "coefficient %d", i)
	}
	assert.Zero(t, window[0])
	assert.InDelta(t, 0, window[255], 1e-12)
}

func TestWindowDoesNotMutateInput(t *testing.T) {
	wg := NewWindowGenerator()
	frame := []float64{1, 1, 1, 1, 1, 1, 1, 1}
	_ = wg.Apply(frame, WindowHann)

	for _, v := range frame {
		assert.Equal(t, 1.0, v)
	}
}

func TestWindowLengthOne(t *testing.T) {
	wg := NewWindowGenerator()
	window := wg.Generate(WindowHamming, 1)
	require.Len(t, window, 1)
	assert.Equal(t, 1.0, window[0])
}

func TestParseWindowType(t *testing.T) {
	assert.Equal(t, WindowHamming, ParseWindowType("hamming"))
	assert.Equal(t, WindowBlackman, ParseWindowType("blackman"))
	assert.Equal(t, WindowRectangular, ParseWindowType("rectangular"))
	assert.Equal(t, WindowHann, ParseWindowType("hann"))
	assert.Equal(t, WindowHann, ParseWindowType("anything-else"))
}
