// Package spritify packs the small PNG background images of a stylesheet
// into one vertical spritesheet and rewrites the stylesheet to use it.
//
// # Rewriting
//
// Every background property whose url() names a small enough PNG is replaced
// by a background-position inside the spritesheet:
//
//	.home { background: #fff url('../img/home.png') 4px 2px; }
//
// becomes
//
//	.home{background:url('../img/sprites.png?v=1c2d3e4f') top left no-repeat;}
//	.home{background-position:4px 2px;background-color:#fff;}
//
// A rule opts out with x-background-sprite: false. Images wider or taller
// than the configured maximum and backgrounds positioned center center are
// left as they are.
//
// # Usage
//
//	result, err := spritify.Run(spritify.Config{
//		Input:      "web/css/site.css",
//		Output:     "site.sprited.css",
//		SpritePath: "../img/sprites.png",
//		MaxWidth:   spritify.DefaultMaxWidth,
//		MaxHeight:  spritify.DefaultMaxHeight,
//		Padding:    spritify.DefaultPadding,
//	})
//
// # CLI Tool
//
// Install the command line tool with:
//
//	go install github.com/yacobolo/spritify/cmd/spritify@latest
package spritify

import (
	"io"
	"os"

	"github.com/yacobolo/spritify/internal/css"
	"github.com/yacobolo/spritify/internal/spritify"
)

// Config holds a single run's configuration
type Config = spritify.Config

// Result contains run statistics
type Result = spritify.Result

// CacheBuster returns the query suffix appended to the sprite URL
type CacheBuster = spritify.CacheBuster

// ReportFormat selects how a run is reported
type ReportFormat = spritify.ReportFormat

// Defaults used by the CLI
const (
	DefaultMaxWidth  = spritify.DefaultMaxWidth
	DefaultMaxHeight = spritify.DefaultMaxHeight
	DefaultPadding   = spritify.DefaultPadding
)

// Sentinel errors, for use with errors.Is
var (
	ErrMalformedInput      = css.ErrMalformedInput
	ErrMalformedProperty   = css.ErrMalformedProperty
	ErrNoRulesFound        = css.ErrNoRulesFound
	ErrRuleHasNoProperties = css.ErrRuleHasNoProperties

	ErrMissingImage      = spritify.ErrMissingImage
	ErrNotPNG            = spritify.ErrNotPNG
	ErrInvalidSizeSyntax = spritify.ErrInvalidSizeSyntax
	ErrInvalidConfig     = spritify.ErrInvalidConfig
	ErrInvalidPosition   = spritify.ErrInvalidPosition
)

// Run rewrites config.Input to use a spritesheet and writes both artifacts
func Run(config Config) (*Result, error) {
	return spritify.Run(config)
}

// BusterFor maps "hash", "random" or "none" to a CacheBuster
func BusterFor(mode string) (CacheBuster, error) {
	return spritify.BusterFor(mode)
}

// ParseMaxSize parses "<width>[px] <height>[px]"
func ParseMaxSize(s string) (width, height int, err error) {
	size, err := spritify.ParseSize(s)
	if err != nil {
		return 0, 0, err
	}
	return size.Width, size.Height, nil
}

// DetermineReportFormat selects the report format from flags
func DetermineReportFormat(formatFlag string, quiet bool) ReportFormat {
	return spritify.DetermineReportFormat(formatFlag, quiet)
}

// ShouldUseColors reports whether output written to w may be colored
func ShouldUseColors(force bool, w io.Writer) bool {
	f, _ := w.(*os.File)
	return spritify.ShouldUseColors(force, f)
}

// WriteReport writes result to w in the given format
func WriteReport(w io.Writer, result *Result, format ReportFormat, useColors bool) error {
	return spritify.WriteReport(w, result, format, useColors)
}

// FormatError renders a fatal error for the terminal
func FormatError(err error, useColors bool) string {
	return spritify.RenderStyle(spritify.StyleError, "Error: "+err.Error(), useColors)
}

// FormatHint renders a secondary line such as a usage hint
func FormatHint(text string, useColors bool) string {
	return spritify.RenderStyle(spritify.StyleMuted, text, useColors)
}
