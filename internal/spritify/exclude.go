package spritify

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// Excluder decides which image URLs are never sprited. A nil Excluder excludes nothing.
type Excluder struct {
	patterns []string
	ignore   *ignore.GitIgnore
}

// NewExcluder validates glob patterns and loads ignoreFile when it exists
func NewExcluder(patterns []string, ignoreFile string) (*Excluder, error) {
	e := &Excluder{}

	for _, p := range patterns {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("%w: exclude pattern %q", ErrInvalidConfig, p)
		}
		e.patterns = append(e.patterns, p)
	}

	if ignoreFile != "" {
		gi, err := ignore.CompileIgnoreFile(ignoreFile)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			// No ignore file is fine
		case err != nil:
			return nil, fmt.Errorf("load %s: %w", ignoreFile, err)
		default:
			e.ignore = gi
		}
	}

	return e, nil
}

// Match reports whether url is excluded
func (e *Excluder) Match(url string) bool {
	if e == nil {
		return false
	}

	name := path.Clean(strings.TrimPrefix(url, "./"))
	for _, p := range e.patterns {
		if ok, _ := doublestar.Match(p, name); ok {
			return true
		}
	}

	return e.ignore != nil && e.ignore.MatchesPath(name)
}
