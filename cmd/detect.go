package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/synthguard/synthguard/internal/analysis"
	"github.com/synthguard/synthguard/pkg/detect"
)

var detectCmd = &cobra.Command{
	Use:   "detect <file>",
	Short: "Score an audio file for synthetic-voice likelihood",
	Long: `Detect runs the full analysis pipeline and applies the configured
scoring heuristic to decide whether the recording is machine-generated.

Two strategies are available:

  naturalness  blend of prosody variability and spectral-artifact regularity
               (default, fully deterministic)
  threshold    weighted accumulation of per-feature threshold checks

The verdict confidence is always within [0.60, 0.95].`,
	Args: cobra.ExactArgs(1),
	RunE: runDetect,
}

func init() {
	rootCmd.AddCommand(detectCmd)

	detectCmd.Flags().String("strategy", "", "scoring strategy (naturalness, threshold)")
	detectCmd.Flags().Bool("detailed", false, "include score breakdown and features in output")
	detectCmd.Flags().Int("frame-size", 0, "analysis frame size in samples (power of two)")
	detectCmd.Flags().Int("hop-size", 0, "hop size in samples between frames")
	detectCmd.Flags().String("window", "", "window function (hamming, hann, blackman, rectangular)")
}

func runDetect(cmd *cobra.Command, args []string) error {
	if v, _ := cmd.Flags().GetString("strategy"); v != "" {
		viper.Set("detection.strategy", v)
	}

	cfg, err := loadValidatedConfig(cmd)
	if err != nil {
		return err
	}

	detailed, _ := cmd.Flags().GetBool("detailed")

	engine, err := analysis.NewEngine(&analysis.EngineConfig{
		Extraction: extractionConfig(cfg),
		Strategy:   detect.Strategy(cfg.Detection.Strategy),
	})
	if err != nil {
		return err
	}

	report, err := engine.DetectFile(cmd.Context(), args[0], detailed)
	if err != nil {
		return err
	}

	if !detailed && !cfg.Detection.IncludeBreakdown && report.Verdict != nil {
		report.Verdict.Breakdown = nil
	}

	return renderReport(report, viper.GetString("output_format"), cfg.Output.Precision)
}
