package dsp

// Framer slices a signal into fixed-length frames advancing by a hop size.
// Frames overlap when hopSize < frameSize.
type Framer struct {
	frameSize int
	hopSize   int
}

// NewFramer creates a framer with the given frame and hop sizes
func NewFramer(frameSize, hopSize int) *Framer {
	return &Framer{frameSize: frameSize, hopSize: hopSize}
}

// FrameSize returns the configured frame length in samples
func (fr *Framer) FrameSize() int {
	return fr.frameSize
}

// HopSize returns the configured hop length in samples
func (fr *Framer) HopSize() int {
	return fr.hopSize
}

// NumFrames returns floor((N-F)/H) for a signal of N samples, and 0 whenever
// the signal is shorter than one frame. Short input is not an error; callers
// handle the empty case.
func (fr *Framer) NumFrames(numSamples int) int {
	if fr.frameSize <= 0 || fr.hopSize <= 0 {
		return 0
	}
	if numSamples < fr.frameSize {
		return 0
	}
	return (numSamples - fr.frameSize) / fr.hopSize
}

// Frame returns the idx-th frame as a subslice of the signal. The returned
// slice aliases the signal and must be treated as read-only.
func (fr *Framer) Frame(signal []float64, idx int) []float64 {
	start := idx * fr.hopSize
	return signal[start : start+fr.frameSize]
}

// Frames returns all frames as read-only subslices of the signal
func (fr *Framer) Frames(signal []float64) [][]float64 {
	n := fr.NumFrames(len(signal))
	frames := make([][]float64, n)
	for i := range frames {
		frames[i] = fr.Frame(signal, i)
	}
	return frames
}
