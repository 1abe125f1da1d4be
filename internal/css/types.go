// Package css holds the structural stylesheet model used by spritify: a flat,
// document-ordered sequence of rules and media block markers, plus the scanner,
// parser and serializer that convert between that model and text.
package css

import "strings"

// Block is one structural element of a stylesheet: *Rule, *MediaOpen or *MediaClose.
type Block interface {
	block()
}

// Property is a single declaration inside a rule.
// Keys are not unique within a rule; later declarations shadow earlier ones.
type Property struct {
	Key   string
	Value string
}

// Rule is a selector with its ordered declarations
type Rule struct {
	Selector   string     // ".a,.b:hover" (whitespace normalized)
	Properties []Property // Document order, duplicates kept
}

// MediaOpen starts a media-conditioned group of blocks
type MediaOpen struct {
	Query string // "@media (max-width:600px)"
}

// MediaClose ends the innermost open media group
type MediaClose struct{}

func (*Rule) block()       {}
func (*MediaOpen) block()  {}
func (*MediaClose) block() {}

// Stylesheet is the parsed document. Blocks are owned by a single run and
// mutated in place by the packing engine.
type Stylesheet struct {
	Blocks []Block
}

// Rules returns every rule in document order, including rules inside media blocks.
func (s *Stylesheet) Rules() []*Rule {
	rules := make([]*Rule, 0, len(s.Blocks))
	for _, b := range s.Blocks {
		if r, ok := b.(*Rule); ok {
			rules = append(rules, r)
		}
	}
	return rules
}

// Prepend inserts a block before all others
func (s *Stylesheet) Prepend(b Block) {
	s.Blocks = append([]Block{b}, s.Blocks...)
}

// Has reports whether any declaration matches key and value, ignoring case
// and surrounding whitespace.
func (r *Rule) Has(key, value string) bool {
	for _, p := range r.Properties {
		if strings.EqualFold(p.Key, key) && strings.EqualFold(strings.TrimSpace(p.Value), value) {
			return true
		}
	}
	return false
}

// Add appends a declaration to the end of the rule
func (r *Rule) Add(key, value string) {
	r.Properties = append(r.Properties, Property{Key: key, Value: value})
}
