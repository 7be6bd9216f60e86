package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/synthguard/synthguard/configs"
	"github.com/synthguard/synthguard/internal/analysis"
	"github.com/synthguard/synthguard/pkg/audio/extractors"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Extract acoustic features from an audio file",
	Long: `Analyze decodes an audio file (WAV or MP3), mixes it down to mono,
and extracts the full feature bundle: MFCCs, pitch track, formant peaks,
spectral centroid, zero-crossing rate, and the per-frame energy contour.

Recordings shorter than one analysis frame produce an empty feature set
rather than an error.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().Int("frame-size", 0, "analysis frame size in samples (power of two)")
	analyzeCmd.Flags().Int("hop-size", 0, "hop size in samples between frames")
	analyzeCmd.Flags().String("window", "", "window function (hamming, hann, blackman, rectangular)")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := loadValidatedConfig(cmd)
	if err != nil {
		return err
	}

	engine, err := analysis.NewEngine(&analysis.EngineConfig{
		Extraction: extractionConfig(cfg),
	})
	if err != nil {
		return err
	}

	report, err := engine.AnalyzeFile(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	return renderReport(report, viper.GetString("output_format"), cfg.Output.Precision)
}

// loadValidatedConfig folds command flags into the viper config and validates it
func loadValidatedConfig(cmd *cobra.Command) (*configs.Config, error) {
	if v, _ := cmd.Flags().GetInt("frame-size"); v > 0 {
		viper.Set("audio.frame_size", v)
	}
	if v, _ := cmd.Flags().GetInt("hop-size"); v > 0 {
		viper.Set("audio.hop_size", v)
	}
	if v, _ := cmd.Flags().GetString("window"); v != "" {
		viper.Set("audio.window_function", v)
	}

	cfg, err := configs.LoadConfig()
	if err != nil {
		return nil, err
	}
	if err := configs.ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// extractionConfig maps application config onto extractor settings. The
// sample rate comes from the decoded file, not from configuration.
func extractionConfig(cfg *configs.Config) *extractors.Config {
	return &extractors.Config{
		FrameSize:        cfg.Audio.FrameSize,
		HopSize:          cfg.Audio.HopSize,
		MelFilters:       cfg.Audio.MelFilters,
		MFCCCoefficients: cfg.Audio.MFCCCoefficients,
		WindowFunction:   cfg.Audio.WindowFunction,
	}
}
