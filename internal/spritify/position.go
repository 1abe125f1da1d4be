package spritify

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// OffsetKind classifies one component of an explicit background position
type OffsetKind int

const (
	// OffsetUnpositioned means no explicit position followed the url()
	OffsetUnpositioned OffsetKind = iota
	// OffsetLiteral is a pixel value, or top/left which mean 0
	OffsetLiteral
	// OffsetSubstituted is bottom, right or center, which are treated as top/left
	OffsetSubstituted
)

// Offset is one parsed position component
type Offset struct {
	Kind    OffsetKind
	Pixels  int    // Contribution to the slot offset
	Keyword string // Keyword as written (lower case), empty for numbers
}

// Position is the horizontal and vertical offset following a url()
type Position struct {
	X Offset
	Y Offset
}

const positionToken = `([+-]?\d+(?:px)?|top|bottom|left|right|center)`

// Two tokens directly after the url(). The second ends at whitespace,
// "!important", a layer separator or the end of the value.
var positionPattern = regexp.MustCompile(`(?i)^\s*` + positionToken + `\s+` + positionToken + `(?:[\s!,;]|$)`)

// parsePosition reads an explicit "<x> <y>" position from the text that
// follows a url() token. A pixel value that does not fit an int is an
// error rather than a zero offset.
func parsePosition(rest string) (Position, error) {
	m := positionPattern.FindStringSubmatch(rest)
	if m == nil {
		return Position{}, nil
	}

	x, err := parseOffset(m[1])
	if err != nil {
		return Position{}, err
	}
	y, err := parseOffset(m[2])
	if err != nil {
		return Position{}, err
	}
	return Position{X: x, Y: y}, nil
}

func parseOffset(token string) (Offset, error) {
	token = strings.ToLower(token)
	switch token {
	case "top", "left":
		return Offset{Kind: OffsetLiteral, Keyword: token}, nil
	case "bottom", "right", "center":
		return Offset{Kind: OffsetSubstituted, Keyword: token}, nil
	}

	n, err := strconv.Atoi(strings.TrimSuffix(token, "px"))
	if err != nil {
		return Offset{}, fmt.Errorf("%w: offset %q out of range", ErrInvalidPosition, token)
	}
	return Offset{Kind: OffsetLiteral, Pixels: n}, nil
}

// assumed names the keyword a substituted offset is treated as
func (o Offset) assumed(horizontal bool) string {
	switch o.Keyword {
	case "bottom":
		return "top"
	case "right":
		return "left"
	}
	if horizontal {
		return "left"
	}
	return "top"
}

// formatOffset renders 0 bare and everything else in px
func formatOffset(n int) string {
	if n == 0 {
		return "0"
	}
	return fmt.Sprintf("%dpx", n)
}
