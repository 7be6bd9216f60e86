package extractors

// FeatureBundle is the aggregate feature record produced by one analysis
// pass over a signal. It is an output-only structure: the scoring and
// presentation layers consume it, the core never reads one back.
type FeatureBundle struct {
	// MFCC is the legacy flattened coefficient summary, truncated to
	// analyzers.LegacyMFCCCap values. MFCCFrames carries the full
	// per-frame matrix and is the primary cepstral output.
	MFCC       []float64   `json:"mfcc"`
	MFCCFrames [][]float64 `json:"mfcc_frames,omitempty"`

	// PitchTrack holds one fundamental-frequency estimate (Hz) per voiced
	// frame; undetected frames are dropped, not zero-filled.
	PitchTrack []float64 `json:"pitch_track"`

	// Formants holds up to five spectral peak frequencies (Hz) inside the
	// 200-5000 Hz band, sorted descending by frequency.
	Formants []float64 `json:"formants"`

	SpectralCentroid float64 `json:"spectral_centroid"`
	ZeroCrossingRate float64 `json:"zero_crossing_rate"`

	// EnergyContour is the per-frame RMS energy, consumed by prosody scoring
	EnergyContour []float64 `json:"energy_contour,omitempty"`

	// Signal metadata
	SampleRate      int     `json:"sample_rate"`
	DurationSeconds float64 `json:"duration_seconds"`
}
