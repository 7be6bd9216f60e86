package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/synthguard/synthguard/internal/analysis"
)

// renderReport writes a report in the requested format to stdout
func renderReport(report *analysis.Report, format string, precision int) error {
	switch strings.ToLower(format) {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case "yaml":
		out, err := yaml.Marshal(report)
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		_, err = os.Stdout.Write(out)
		return err
	case "table":
		renderTable(report, precision)
		return nil
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func renderTable(report *analysis.Report, precision int) {
	num := func(v float64) string {
		return fmt.Sprintf("%.*f", precision, v)
	}

	fmt.Printf("File:       %s\n", report.File)
	fmt.Printf("Elapsed:    %s ms\n", num(report.ElapsedMS))

	if f := report.Features; f != nil {
		fmt.Println()
		fmt.Println("Features")
		fmt.Println(strings.Repeat("-", 40))
		fmt.Printf("  Sample rate:        %d Hz\n", f.SampleRate)
		fmt.Printf("  Duration:           %s s\n", num(f.DurationSeconds))
		fmt.Printf("  Spectral centroid:  %s Hz\n", num(f.SpectralCentroid))
		fmt.Printf("  Zero-crossing rate: %s\n", num(f.ZeroCrossingRate))
		fmt.Printf("  Voiced frames:      %d\n", len(f.PitchTrack))
		if len(f.PitchTrack) > 0 {
			fmt.Printf("  Pitch range:        %s - %s Hz\n",
				num(minOf(f.PitchTrack)), num(maxOf(f.PitchTrack)))
		}
		fmt.Printf("  Formants (Hz):      %s\n", joinNums(f.Formants, precision))
		fmt.Printf("  MFCC values:        %d (from %d frames)\n",
			len(f.MFCC), len(f.MFCCFrames))
	}

	if v := report.Verdict; v != nil {
		fmt.Println()
		fmt.Println("Verdict")
		fmt.Println(strings.Repeat("-", 40))
		label := "natural speech"
		if v.IsSynthetic {
			label = "synthetic speech"
		}
		fmt.Printf("  Classification: %s\n", label)
		fmt.Printf("  Confidence:     %s\n", num(v.Confidence))
		fmt.Printf("  Strategy:       %s\n", report.Strategy)
		if b := v.Breakdown; b != nil {
			fmt.Printf("  Prosody:        %s\n", num(b.ProsodyScore))
			fmt.Printf("  Artifacts:      %s\n", num(b.SpectralArtifactScore))
			fmt.Printf("  Naturalness:    %s\n", num(b.Naturalness))
		}
	}
}

func joinNums(values []float64, precision int) string {
	if len(values) == 0 {
		return "none"
	}
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%.*f", precision, v)
	}
	return strings.Join(parts, ", ")
}

func minOf(values []float64) float64 {
	m := values[0]
	for _, v := range values[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

func maxOf(values []float64) float64 {
	m := values[0]
	for _, v := range values[1:] {
		if v > m {
			m = v
		}
	}
	return m
}
