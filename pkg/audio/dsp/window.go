package dsp

import "math"

// WindowType represents different window functions
type WindowType int

const (
	WindowHann WindowType = iota
	WindowHamming
	WindowBlackman
	WindowRectangular
)

// WindowGenerator creates and caches window function coefficient tables
type WindowGenerator struct {
	cache map[windowKey][]float64
}

type windowKey struct {
	windowType WindowType
	length     int
}

// NewWindowGenerator creates a new window generator
func NewWindowGenerator() *WindowGenerator {
	return &WindowGenerator{
		cache: make(map[windowKey][]float64),
	}
}

// Generate returns the coefficient table for the given window type and length.
// Length 1 degenerates to a single unit coefficient since the cosine divisor
// would be zero.
func (wg *WindowGenerator) Generate(windowType WindowType, length int) []float64 {
	if length <= 0 {
		return nil
	}

	key := windowKey{windowType: windowType, length: length}
	if cached, ok := wg.cache[key]; ok {
		return cached
	}

	window := make([]float64, length)
	if length == 1 {
		window[0] = 1.0
		wg.cache[key] = window
		return window
	}

	n := float64(length - 1)
	switch windowType {
	case WindowHamming:
		for i := range window {
			window[i] = 0.54 - 0.46*math.Cos(2.0*math.Pi*float64(i)/n)
		}
	case WindowBlackman:
		for i := range window {
			window[i] = 0.42 - 0.5*math.Cos(2.0*math.Pi*float64(i)/n) + 0.08*math.Cos(4.0*math.Pi*float64(i)/n)
		}
	case WindowRectangular:
		for i := range window {
			window[i] = 1.0
		}
	default: // WindowHann
		for i := range window {
			window[i] = 0.5 * (1.0 - math.Cos(2.0*math.Pi*float64(i)/n))
		}
	}

	wg.cache[key] = window
	return window
}

// Apply returns a new slice with the window applied to the frame. The input
// frame is never modified.
func (wg *WindowGenerator) Apply(frame []float64, windowType WindowType) []float64 {
	window := wg.Generate(windowType, len(frame))
	out := make([]float64, len(frame))
	for i, s := range frame {
		out[i] = s * window[i]
	}
	return out
}

// ApplyInPlace scales the frame by the window coefficients in place
func (wg *WindowGenerator) ApplyInPlace(frame []float64, windowType WindowType) {
	window := wg.Generate(windowType, len(frame))
	for i := range frame {
		frame[i] *= window[i]
	}
}

// ParseWindowType maps a config string to a WindowType, defaulting to Hann
func ParseWindowType(name string) WindowType {
	switch name {
	case "hamming":
		return WindowHamming
	case "blackman":
		return WindowBlackman
	case "rectangular":
		return WindowRectangular
	default:
		return WindowHann
	}
}
