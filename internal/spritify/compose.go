package spritify

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/disintegration/imaging"
)

// Compose draws every image of layout onto a transparent canvas, one slot
// per image, and encodes the canvas as PNG with alpha.
func Compose(w io.Writer, layout Layout, baseDir string) error {
	if len(layout.Images) == 0 {
		return fmt.Errorf("%w: no images to compose", ErrInvalidConfig)
	}

	canvas := imaging.New(layout.Width(), layout.Height(), color.NRGBA{})

	for i, url := range layout.Images {
		src, err := imaging.Open(resolveImage(baseDir, url))
		if err != nil {
			return fmt.Errorf("open sprite %q: %w", url, err)
		}

		// Fit only ever shrinks; eligible images already fit
		fitted := imaging.Fit(src, layout.MaxWidth, layout.MaxHeight, imaging.Lanczos)
		canvas = imaging.Paste(canvas, fitted, image.Pt(0, layout.Offset(i)))
	}

	if err := imaging.Encode(w, canvas, imaging.PNG, imaging.PNGCompressionLevel(png.BestCompression)); err != nil {
		return fmt.Errorf("encode spritesheet: %w", err)
	}
	return nil
}
