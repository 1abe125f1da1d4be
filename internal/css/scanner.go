package css

import (
	"fmt"
	"regexp"
	"strings"
)

var mediaIntroducer = regexp.MustCompile(`(?i)@media\b`)

// Parse turns comment-free stylesheet text into a structured Stylesheet.
// Media blocks become MediaOpen/MediaClose pairs around their parsed rules;
// everything else is handed to the rule parser span by span.
func Parse(content string) (*Stylesheet, error) {
	blocks, err := scanBlocks(content)
	if err != nil {
		return nil, err
	}
	return &Stylesheet{Blocks: blocks}, nil
}

// scanBlocks splits content on media blocks, recursing into each media body
func scanBlocks(content string) ([]Block, error) {
	var blocks []Block

	for {
		loc := mediaIntroducer.FindStringIndex(content)
		if loc == nil {
			break
		}

		// Unconditional span before the introducer
		rules, err := parseSpan(content[:loc[0]])
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, rules...)

		content = content[loc[0]:]
		open := strings.IndexByte(content, '{')
		if open < 0 {
			return nil, fmt.Errorf("%w: could not find an opening brace for media query: %q",
				ErrMalformedInput, excerpt(content))
		}
		query := normalizeSelector(content[:open])
		body := content[open+1:]

		end := matchingBrace(body)
		if end < 0 {
			return nil, fmt.Errorf("%w: media query %q is never closed", ErrMalformedInput, query)
		}

		inner, err := scanBlocks(body[:end])
		if err != nil {
			return nil, err
		}
		if len(inner) > 0 {
			blocks = append(blocks, &MediaOpen{Query: query})
			blocks = append(blocks, inner...)
			blocks = append(blocks, &MediaClose{})
		}

		content = body[end+1:]
	}

	rules, err := parseSpan(content)
	if err != nil {
		return nil, err
	}
	return append(blocks, rules...), nil
}

// matchingBrace returns the index of the brace closing a block whose opening
// brace has already been consumed, or -1 when the block never closes.
func matchingBrace(body string) int {
	depth := 1
	for i := 0; i < len(body); i++ {
		switch body[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// parseSpan parses a media-free span; blank spans yield nothing
func parseSpan(span string) ([]Block, error) {
	if strings.TrimSpace(span) == "" {
		return nil, nil
	}

	rules, err := ParseRules(span)
	if err != nil {
		return nil, err
	}

	blocks := make([]Block, len(rules))
	for i, r := range rules {
		blocks[i] = r
	}
	return blocks, nil
}
