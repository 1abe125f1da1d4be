package spritify

import "errors"

// Packing and configuration failures. Parse failures live in package css.
var (
	ErrMissingImage      = errors.New("missing image")
	ErrNotPNG            = errors.New("not a PNG image")
	ErrInvalidSizeSyntax = errors.New("invalid size syntax")
	ErrInvalidConfig     = errors.New("invalid configuration")
	ErrInvalidPosition   = errors.New("invalid background position")
)
