package spritify

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/yacobolo/spritify/internal/css"
)

var (
	// url('...') or url("...")
	urlPattern = regexp.MustCompile(`(?i)url\(['"]([^'"]+)['"]\)`)

	// Centered backgrounds cannot be expressed as a slot offset
	centerCenterPattern = regexp.MustCompile(`(?i)center\s+center`)

	// Leading color literal: "#123 url(...)" or "red url(...)"
	colorPattern = regexp.MustCompile(`(?i)^(#?[a-z0-9]+)\s+url`)
)

// PackOptions holds the collaborators of a packing pass
type PackOptions struct {
	PackConfig
	BaseDir string         // Directory image URLs are resolved against
	Images  ImageInspector // Required
	Exclude *Excluder      // Optional
	Logger  *log.Logger    // Optional
}

// PackResult describes what a packing pass changed
type PackResult struct {
	Layout              Layout
	SpritedSelectors    []string // One entry per rewritten property, duplicates kept
	PropertiesRewritten int
	Warnings            []string
}

// packerState maintains slot assignment while walking a stylesheet
type packerState struct {
	opts   PackOptions
	slots  map[string]int // URL -> slot index, in first-eligible-occurrence order
	result *PackResult
}

// Pack walks every background property in document order, assigns each
// distinct eligible image a slot and rewrites the property to a
// background-position inside the composite. The stylesheet is modified in place.
func Pack(sheet *css.Stylesheet, opts PackOptions) (*PackResult, error) {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	state := &packerState{
		opts:  opts,
		slots: make(map[string]int),
		result: &PackResult{
			Layout: Layout{PackConfig: opts.PackConfig},
		},
	}

	for _, rule := range sheet.Rules() {
		// Properties appended while packing (background-color) are not visited
		n := len(rule.Properties)
		for i := 0; i < n; i++ {
			if err := state.visit(rule, i); err != nil {
				return nil, err
			}
		}
	}

	return state.result, nil
}

// visit decides whether property i of rule is sprited and rewrites it if so
func (s *packerState) visit(rule *css.Rule, i int) error {
	prop := rule.Properties[i]
	if !strings.EqualFold(prop.Key, "background") {
		return nil
	}

	loc := urlPattern.FindStringSubmatchIndex(prop.Value)
	if loc == nil {
		return nil
	}
	url := prop.Value[loc[2]:loc[3]]

	// Only PNG: alpha is preserved and there are no animations to lose
	if !strings.EqualFold(path.Ext(url), ".png") {
		return nil
	}

	imagePath := resolveImage(s.opts.BaseDir, url)
	width, height, err := s.opts.Images.Dimensions(imagePath)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: rule %q: background image %q does not exist",
			ErrMissingImage, rule.Selector, imagePath)
	}
	if err != nil {
		return fmt.Errorf("rule %q: %w", rule.Selector, err)
	}

	logger := s.opts.Logger.With("selector", rule.Selector, "image", url)

	switch {
	case width > s.opts.MaxWidth || height > s.opts.MaxHeight:
		logger.Debug("Image too large to sprite", "width", width, "height", height)
		return nil
	case centerCenterPattern.MatchString(prop.Value):
		logger.Debug("Centered background left as is")
		return nil
	case rule.Has(SpriteDirective, "false"):
		logger.Debug("Spriting disabled by " + SpriteDirective)
		return nil
	case s.opts.Exclude.Match(url):
		logger.Debug("Image excluded")
		return nil
	}

	pos, err := parsePosition(prop.Value[loc[1]:])
	if err != nil {
		return fmt.Errorf("rule %q: %w", rule.Selector, err)
	}

	index := s.slot(url)
	x := 0
	y := -s.result.Layout.Offset(index)

	s.warnSubstituted(rule.Selector, pos.X, true)
	s.warnSubstituted(rule.Selector, pos.Y, false)
	x += pos.X.Pixels
	y += pos.Y.Pixels

	rule.Properties[i] = css.Property{
		Key:   "background-position",
		Value: formatOffset(x) + " " + formatOffset(y),
	}

	if m := colorPattern.FindStringSubmatch(prop.Value); m != nil {
		rule.Add("background-color", m[1])
	}

	s.result.SpritedSelectors = append(s.result.SpritedSelectors, rule.Selector)
	s.result.PropertiesRewritten++
	logger.Debug("Sprited", "slot", index, "position", rule.Properties[i].Value)

	return nil
}

// slot returns the index for url, assigning the next one on first sight
func (s *packerState) slot(url string) int {
	if index, ok := s.slots[url]; ok {
		return index
	}
	index := len(s.result.Layout.Images)
	s.slots[url] = index
	s.result.Layout.Images = append(s.result.Layout.Images, url)
	return index
}

func (s *packerState) warnSubstituted(selector string, o Offset, horizontal bool) {
	if o.Kind != OffsetSubstituted {
		return
	}
	assumed := o.assumed(horizontal)
	s.opts.Logger.Debug("Unsupported background position keyword",
		"selector", selector, "keyword", o.Keyword, "assuming", assumed)
	s.result.Warnings = append(s.result.Warnings, fmt.Sprintf(
		"Rule '%s' used unsupported background position keyword '%s': assuming '%s'",
		selector, o.Keyword, assumed))
}

// resolveImage maps a stylesheet-relative URL to a filesystem path.
// Root-relative URLs ("/img/a.png") are resolved against baseDir too.
func resolveImage(baseDir, url string) string {
	return filepath.Join(baseDir, filepath.FromSlash(url))
}
