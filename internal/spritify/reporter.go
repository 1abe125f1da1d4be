package spritify

import (
	"fmt"
	"io"
	"os"
)

// ReportFormat selects how a run is reported
type ReportFormat string

const (
	// ReportSummary prints a short human-readable summary
	ReportSummary ReportFormat = "summary"
	// ReportJSON exports the result as JSON (tooling integration)
	ReportJSON ReportFormat = "json"
	// ReportNone prints nothing
	ReportNone ReportFormat = "none"
)

// DetermineReportFormat selects the report format from flags
func DetermineReportFormat(formatFlag string, quiet bool) ReportFormat {
	// Explicit quiet flag wins (exit code only)
	if quiet {
		return ReportNone
	}

	switch formatFlag {
	case "json":
		return ReportJSON
	case "none":
		return ReportNone
	default:
		return ReportSummary
	}
}

// ShouldUseColors determines if colors should be enabled for f
func ShouldUseColors(force bool, f *os.File) bool {
	// Explicit flag wins
	if force {
		return true
	}

	// Check for FORCE_COLOR environment variable (GitHub Actions, etc.)
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}

	// GitHub Actions supports colors
	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}

	// Auto-detect TTY
	if f == nil {
		return false
	}
	fileInfo, err := f.Stat()
	return err == nil && (fileInfo.Mode()&os.ModeCharDevice) != 0
}

// Reporter prints run results
type Reporter struct {
	w         io.Writer
	useColors bool
}

// NewReporter creates a new reporter
func NewReporter(w io.Writer, useColors bool) *Reporter {
	return &Reporter{w: w, useColors: useColors}
}

// WriteReport writes result in the given format
func WriteReport(w io.Writer, result *Result, format ReportFormat, useColors bool) error {
	switch format {
	case ReportJSON:
		return WriteJSON(w, result)
	case ReportSummary:
		r := NewReporter(w, useColors)
		r.PrintSummary(result)
		r.PrintWarnings(result)
	}
	return nil
}

// PrintSummary outputs what was sprited and where it went
func (r *Reporter) PrintSummary(result *Result) {
	if len(result.Layout.Images) == 0 {
		fmt.Fprintf(r.w, "No sprites found in %s (%s parsed)\n",
			RenderStyle(StyleHeading, result.Input, r.useColors),
			pluralizeCount(result.RulesParsed, "rule", "rules"))
		return
	}

	fmt.Fprintf(r.w, "%s %s from %s into %s (%s)\n",
		RenderStyle(StyleSuccess, "Sprited", r.useColors),
		pluralizeCount(len(result.Layout.Images), "image", "images"),
		pluralizeCount(result.PropertiesRewritten, "property", "properties"),
		RenderStyle(StyleHeading, result.SpriteFile, r.useColors),
		result.Layout.Size())

	if result.Output != "" {
		fmt.Fprintf(r.w, "  Stylesheet: %s\n", RenderStyle(StyleHeading, result.Output, r.useColors))
	}
	fmt.Fprintf(r.w, "  Rules parsed: %d\n", result.RulesParsed)
}

// PrintWarnings lists non-fatal problems found while packing
func (r *Reporter) PrintWarnings(result *Result) {
	if len(result.Warnings) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleWarning, "Warnings", r.useColors))
	fmt.Fprintln(r.w, "-----------")

	for _, warning := range result.Warnings {
		fmt.Fprintf(r.w, "• %s\n", warning)
	}
}

// pluralizeCount returns a formatted string with count and singular/plural form
func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}
