package css

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	// A declaration closed by } instead of ; ("color: red }")
	unterminatedProperty = regexp.MustCompile(`(?i)[a-z0-9\-_]+\s*:\s*[^;{}]+\}`)

	// head { body }
	rulePattern = regexp.MustCompile(`([^{}]+?)\s*\{([^{}]*)\}`)

	// key: value;
	propertyPattern = regexp.MustCompile(`(?i)([a-z0-9\-_]+)\s*:\s*([^;]+);`)

	whitespaceRun = regexp.MustCompile(`\s+`)
)

// ParseRules parses a span containing plain rules only (no media blocks).
func ParseRules(span string) ([]*Rule, error) {
	// Checked first: the rule pattern would otherwise swallow the missing ;
	if m := unterminatedProperty.FindString(span); m != "" {
		return nil, fmt.Errorf("%w: missing ; at end of property list: %q",
			ErrMalformedProperty, strings.TrimSpace(m))
	}

	matches := rulePattern.FindAllStringSubmatch(span, -1)
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: could not find any valid rules in %q",
			ErrNoRulesFound, excerpt(strings.TrimSpace(span)))
	}

	rules := make([]*Rule, 0, len(matches))
	for _, m := range matches {
		rule, err := parseRule(m[1], m[2])
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}

	return rules, nil
}

// parseRule builds a Rule from its raw head and body text
func parseRule(head, body string) (*Rule, error) {
	rule := &Rule{Selector: normalizeSelector(head)}

	for _, m := range propertyPattern.FindAllStringSubmatch(body, -1) {
		rule.Add(m[1], strings.TrimSpace(m[2]))
	}

	if len(rule.Properties) == 0 {
		return nil, fmt.Errorf("%w: rule %q", ErrRuleHasNoProperties, rule.Selector)
	}

	return rule, nil
}

// normalizeSelector collapses whitespace runs, drops the space after list
// commas and trims: ".a,\n  .b  > p" becomes ".a,.b > p".
func normalizeSelector(head string) string {
	head = whitespaceRun.ReplaceAllString(head, " ")
	head = strings.ReplaceAll(head, ", ", ",")
	return strings.TrimSpace(head)
}
