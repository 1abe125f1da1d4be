package css

import (
	"io"
	"strings"
)

// Banner is written at the top of generated stylesheets
const Banner = "/* Generated by Spritify */\n"

// SerializeOptions controls stylesheet output
type SerializeOptions struct {
	Banner bool     // Prefix output with Banner
	Omit   []string // Property keys never written (case-insensitive)
}

// Serialize writes the stylesheet in compact form, one block per line:
//
//	selector{key:value;key:value;}
//	@media (query){
//	}
func Serialize(w io.Writer, sheet *Stylesheet, opts SerializeOptions) error {
	var b strings.Builder

	if opts.Banner {
		b.WriteString(Banner)
	}

	for _, block := range sheet.Blocks {
		switch blk := block.(type) {
		case *MediaOpen:
			b.WriteString(blk.Query)
			b.WriteString("{\n")
		case *MediaClose:
			b.WriteString("}\n")
		case *Rule:
			b.WriteString(blk.Selector)
			b.WriteByte('{')
			for _, p := range blk.Properties {
				if omitted(p.Key, opts.Omit) {
					continue
				}
				b.WriteString(p.Key)
				b.WriteByte(':')
				b.WriteString(p.Value)
				b.WriteByte(';')
			}
			b.WriteString("}\n")
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// String renders the stylesheet without banner or omissions
func (s *Stylesheet) String() string {
	var b strings.Builder
	_ = Serialize(&b, s, SerializeOptions{})
	return b.String()
}

func omitted(key string, omit []string) bool {
	for _, o := range omit {
		if strings.EqualFold(key, o) {
			return true
		}
	}
	return false
}
