package spritify

import (
	"fmt"
	"regexp"
	"strconv"
)

var sizePattern = regexp.MustCompile(`(?i)^\s*(\d+)(?:px)?\s+(\d+)(?:px)?\s*$`)

// Size is a width and height in pixels
type Size struct {
	Width  int
	Height int
}

// ParseSize parses "<width>[px] <height>[px]", e.g. "24px 32px"
func ParseSize(s string) (Size, error) {
	m := sizePattern.FindStringSubmatch(s)
	if m == nil {
		return Size{}, fmt.Errorf("%w: %q (want \"<width>[px] <height>[px]\")", ErrInvalidSizeSyntax, s)
	}

	w, err := strconv.Atoi(m[1])
	if err != nil {
		return Size{}, fmt.Errorf("%w: %q: %v", ErrInvalidSizeSyntax, s, err)
	}
	h, err := strconv.Atoi(m[2])
	if err != nil {
		return Size{}, fmt.Errorf("%w: %q: %v", ErrInvalidSizeSyntax, s, err)
	}

	return Size{Width: w, Height: h}, nil
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}
