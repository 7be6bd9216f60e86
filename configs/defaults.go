package configs

import (
	"github.com/spf13/viper"
)

// setDefaults sets default configuration values for all components
func setDefaults(v *viper.Viper) {
	// Audio pipeline defaults
	if !v.IsSet("audio.frame_size") {
		v.Set("audio.frame_size", 2048)
	}
	if !v.IsSet("audio.hop_size") {
		v.Set("audio.hop_size", 512)
	}
	if !v.IsSet("audio.window_function") {
		v.Set("audio.window_function", "hamming")
	}
	if !v.IsSet("audio.mel_filters") {
		v.Set("audio.mel_filters", 26)
	}
	if !v.IsSet("audio.mfcc_coefficients") {
		v.Set("audio.mfcc_coefficients", 13)
	}

	// Detection defaults
	if !v.IsSet("detection.strategy") {
		v.Set("detection.strategy", "naturalness")
	}
	if !v.IsSet("detection.include_breakdown") {
		v.Set("detection.include_breakdown", false)
	}

	// Output defaults
	if !v.IsSet("output.precision") {
		v.Set("output.precision", 3)
	}
	if !v.IsSet("output.include_metadata") {
		v.Set("output.include_metadata", true)
	}
	if !v.IsSet("output.timestamps") {
		v.Set("output.timestamps", false)
	}
}

// SetDefaults applies defaults to the global viper instance
func SetDefaults() {
	setDefaults(viper.GetViper())
}

// GetDefaultConfig returns a fully-populated default configuration
func GetDefaultConfig() *Config {
	return &Config{
		LogLevel:     "info",
		OutputFormat: "table",
		Audio:        GetDefaultAudioConfig(),
		Detection:    GetDefaultDetectionConfig(),
		Output:       GetDefaultOutputConfig(),
	}
}

// GetDefaultAudioConfig returns default audio pipeline settings
func GetDefaultAudioConfig() AudioConfig {
	return AudioConfig{
		FrameSize:        2048,
		HopSize:          512,
		WindowFunction:   "hamming",
		MelFilters:       26,
		MFCCCoefficients: 13,
	}
}

// GetDefaultDetectionConfig returns default detection settings
func GetDefaultDetectionConfig() DetectionConfig {
	return DetectionConfig{
		Strategy:         "naturalness",
		IncludeBreakdown: false,
	}
}

// GetDefaultOutputConfig returns default output settings
func GetDefaultOutputConfig() OutputConfig {
	return OutputConfig{
		Precision:       3,
		IncludeMetadata: true,
		Timestamps:      false,
	}
}

// FastAudioConfig returns settings tuned for quick scans of long recordings
func FastAudioConfig() AudioConfig {
	return AudioConfig{
		FrameSize:        1024,
		HopSize:          1024,
		WindowFunction:   "hamming",
		MelFilters:       26,
		MFCCCoefficients: 13,
	}
}

// HighResolutionAudioConfig returns settings tuned for detailed analysis
func HighResolutionAudioConfig() AudioConfig {
	return AudioConfig{
		FrameSize:        2048,
		HopSize:          256,
		WindowFunction:   "hann",
		MelFilters:       40,
		MFCCCoefficients: 13,
	}
}
