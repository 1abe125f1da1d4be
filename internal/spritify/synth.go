package spritify

import (
	"fmt"
	"io"
	"strings"

	"github.com/yacobolo/spritify/internal/css"
)

// Synthesize prepends the rule that points every sprited selector at the
// composite image. Nothing is added when no selector was sprited.
func Synthesize(sheet *css.Stylesheet, selectors []string, spriteURL string) {
	if len(selectors) == 0 {
		return
	}

	sheet.Prepend(&css.Rule{
		Selector: strings.Join(selectors, ","),
		Properties: []css.Property{{
			Key:   "background",
			Value: fmt.Sprintf("url('%s') top left no-repeat", spriteURL),
		}},
	})
}

// WriteStylesheet serializes sheet, dropping the sprite directive
func WriteStylesheet(w io.Writer, sheet *css.Stylesheet, banner bool) error {
	return css.Serialize(w, sheet, css.SerializeOptions{
		Banner: banner,
		Omit:   []string{SpriteDirective},
	})
}
