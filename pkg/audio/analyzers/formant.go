package analyzers

import (
	"sort"

	"github.com/synthguard/synthguard/pkg/audio/dsp"
)

// Plausible formant band for human speech, exclusive bounds in Hz
const (
	formantMinHz = 200.0
	formantMaxHz = 5000.0
)

// MaxFormants is how many peak frequencies callers keep from a FormantList
const MaxFormants = 5

// FormantExtractor picks local spectral maxima inside the formant band
type FormantExtractor struct {
	sampleRate int
}

// NewFormantExtractor creates a formant extractor for the given sample rate
func NewFormantExtractor(sampleRate int) *FormantExtractor {
	return &FormantExtractor{sampleRate: sampleRate}
}

// Extract returns the frequencies of all local maxima of the spectrum that
// fall strictly inside (200, 5000) Hz, sorted descending by frequency. The
// count is not limited here; callers truncate to MaxFormants.
//
// Sorting by frequency rather than magnitude means the kept peaks are the
// highest-frequency ones in band, not the strongest. That ordering is part of
// the published feature contract.
func (fe *FormantExtractor) Extract(spectrum []float64) []float64 {
	var formants []float64

	for i := 1; i+1 < len(spectrum); i++ {
		if spectrum[i] <= spectrum[i-1] || spectrum[i] <= spectrum[i+1] {
			continue
		}
		freq := dsp.BinFrequency(i, fe.sampleRate, len(spectrum))
		if freq > formantMinHz && freq < formantMaxHz {
			formants = append(formants, freq)
		}
	}

	sort.Sort(sort.Reverse(sort.Float64Slice(formants)))
	return formants
}

// TruncateFormants keeps at most MaxFormants entries
func TruncateFormants(formants []float64) []float64 {
	if len(formants) > MaxFormants {
		return formants[:MaxFormants]
	}
	return formants
}
