package configs

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	// Application settings
	Verbose      bool   `mapstructure:"verbose"`
	LogLevel     string `mapstructure:"log_level"`
	OutputFormat string `mapstructure:"output_format"`

	// Audio analysis configuration
	Audio AudioConfig `mapstructure:"audio"`

	// Detection configuration
	Detection DetectionConfig `mapstructure:"detection"`

	// Output configuration
	Output OutputConfig `mapstructure:"output"`
}

// AudioConfig contains the frame pipeline settings
type AudioConfig struct {
	FrameSize        int    `mapstructure:"frame_size"`
	HopSize          int    `mapstructure:"hop_size"`
	WindowFunction   string `mapstructure:"window_function"`
	MelFilters       int    `mapstructure:"mel_filters"`
	MFCCCoefficients int    `mapstructure:"mfcc_coefficients"`
}

// DetectionConfig contains scoring settings
type DetectionConfig struct {
	// Strategy selects the scoring heuristic: "naturalness" or "threshold"
	Strategy string `mapstructure:"strategy"`

	// IncludeBreakdown attaches the per-component score record to verdicts
	IncludeBreakdown bool `mapstructure:"include_breakdown"`
}

// OutputConfig contains output formatting settings
type OutputConfig struct {
	Precision       int  `mapstructure:"precision"`
	IncludeMetadata bool `mapstructure:"include_metadata"`
	Timestamps      bool `mapstructure:"timestamps"`
}

// LoadConfig loads configuration from viper
func LoadConfig() (*Config, error) {
	config := &Config{}

	if err := viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("unable to decode configuration: %w", err)
	}

	return config, nil
}

// ValidateConfig validates the configuration
func ValidateConfig(config *Config) error {
	if config.Audio.FrameSize <= 0 {
		return fmt.Errorf("audio frame size must be positive")
	}

	if config.Audio.FrameSize&(config.Audio.FrameSize-1) != 0 {
		return fmt.Errorf("audio frame size must be a power of two")
	}

	if config.Audio.HopSize <= 0 {
		return fmt.Errorf("audio hop size must be positive")
	}

	if config.Audio.MelFilters <= 0 {
		return fmt.Errorf("mel filter count must be positive")
	}

	if config.Audio.MFCCCoefficients <= 0 {
		return fmt.Errorf("MFCC coefficient count must be positive")
	}

	if config.Audio.MFCCCoefficients > config.Audio.MelFilters {
		return fmt.Errorf("MFCC coefficient count cannot exceed mel filter count")
	}

	switch config.Detection.Strategy {
	case "", "naturalness", "threshold":
	default:
		return fmt.Errorf("unknown detection strategy %q", config.Detection.Strategy)
	}

	return nil
}
