// Package spritify finds small background images referenced by a stylesheet,
// packs them into one vertical spritesheet and rewrites the stylesheet to use it.
package spritify

import (
	"io"

	"github.com/charmbracelet/log"
)

// Defaults applied by the CLI and by Config.withDefaults
const (
	DefaultMaxWidth  = 32
	DefaultMaxHeight = 32
	DefaultPadding   = 200

	// SpriteDirective set to false on a rule opts its backgrounds out of spriting.
	// It is never written to the output.
	SpriteDirective = "x-background-sprite"

	// IgnoreFile next to the stylesheet lists image paths never to sprite (gitignore syntax)
	IgnoreFile = ".spritifyignore"
)

// Config holds a single run's configuration
type Config struct {
	Input      string   // "web/css/site.css"
	Output     string   // "site.min.css", relative to Input's directory; empty writes to Stdout
	SpritePath string   // "../img/sprites.png", relative to Input's directory
	MaxWidth   int      // Widest image considered a sprite (default: 32)
	MaxHeight  int      // Tallest image considered a sprite (default: 32)
	Padding    int      // Vertical gap between sprites (default: 200)
	Exclude    []string // Glob patterns of image URLs never sprited ("icons/large/**")
	Banner     bool     // Start the stylesheet with a "Generated by" comment

	CacheBuster CacheBuster    // Suffix for the sprite URL (default: HashBuster)
	Images      ImageInspector // Image dimensions (default: FileInspector)
	Stdout      io.Writer      // Stylesheet destination when Output is empty (default: os.Stdout)
	Logger      *log.Logger    // Diagnostics (default: log.Default())
}

// PackConfig holds the layout parameters shared by packing and composition
type PackConfig struct {
	MaxWidth  int
	MaxHeight int
	Padding   int
}

// Layout describes the composite image: one slot per distinct sprited image,
// stacked vertically in first-occurrence order.
type Layout struct {
	Images []string // Image URLs as written in the stylesheet, by slot index
	PackConfig
}

// SlotHeight is the vertical extent of one slot
func (l Layout) SlotHeight() int {
	return l.MaxHeight + l.Padding
}

// Offset returns the top edge of slot i inside the composite
func (l Layout) Offset(i int) int {
	return i * l.SlotHeight()
}

// Width of the composite image
func (l Layout) Width() int {
	return l.MaxWidth
}

// Height of the composite image
func (l Layout) Height() int {
	return len(l.Images) * l.SlotHeight()
}

// Size of the composite image
func (l Layout) Size() Size {
	return Size{Width: l.Width(), Height: l.Height()}
}

// Result contains run statistics
type Result struct {
	Input               string
	Output              string // Resolved stylesheet path, empty for stdout
	SpriteFile          string // Resolved sprite path, empty when nothing was sprited
	SpriteURL           string // URL written into the stylesheet, including cache buster
	RulesParsed         int
	PropertiesRewritten int
	SpritedSelectors    []string
	Layout              Layout
	Warnings            []string
}
