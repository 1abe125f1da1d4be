package css

import "errors"

// Parse failures. All of them abort the run; use errors.Is to classify.
var (
	ErrMalformedInput      = errors.New("malformed input")
	ErrMalformedProperty   = errors.New("malformed property")
	ErrNoRulesFound        = errors.New("no rules found")
	ErrRuleHasNoProperties = errors.New("rule has no properties")
)

// excerptLen bounds how much source text is quoted in error messages
const excerptLen = 64

// excerpt returns at most excerptLen bytes of s for use in messages
func excerpt(s string) string {
	if len(s) <= excerptLen {
		return s
	}
	return s[:excerptLen]
}
