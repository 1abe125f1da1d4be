package css

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	tcss "github.com/tdewolff/parse/v2/css"
)

// StripComments removes every /* ... */ comment from content.
// The CSS lexer is used so that comment-like text inside strings survives.
// A leading byte order mark is dropped as well.
func StripComments(content string) (string, error) {
	content = strings.TrimPrefix(content, "\ufeff")
	lexer := tcss.NewLexer(parse.NewInputString(content))

	var b strings.Builder
	b.Grow(len(content))

	for {
		tt, text := lexer.Next()
		if tt == tcss.ErrorToken {
			// ErrorToken at EOF is normal
			if err := lexer.Err(); err != nil && !errors.Is(err, io.EOF) {
				return "", fmt.Errorf("%w: %v", ErrMalformedInput, err)
			}
			break
		}

		if tt == tcss.CommentToken {
			continue
		}
		b.Write(text)
	}

	return b.String(), nil
}
