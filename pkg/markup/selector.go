package markup

import (
	"regexp"
	"strings"
)

// selectorPart matches one selector token: an optional '#' or '.' followed
// by a name.
var selectorPart = regexp.MustCompile(`([.#])?([\w-]*)`)

// Selector is a parsed compact selector such as "a#home.nav.active".
type Selector struct {
	// Tag is the element name. It is never empty after parsing.
	Tag string

	// ID is the element id, or "" when absent.
	ID string

	// Classes holds the class tokens in first-seen order.
	Classes *ClassSet
}

// ParseSelector parses a selector string, falling back to DefaultTag when no
// bare tag token is present.
func ParseSelector(s string) *Selector {
	return ParseSelectorDefault(s, DefaultTag)
}

// ParseSelectorDefault parses a selector string with a custom fallback tag
// (for example "g" for SVG content).
//
// Tokens are scanned left to right. The first token without a prefix is the
// tag name, later '#' tokens overwrite earlier ones and '.' tokens accumulate
// into the class set. Empty tokens and unrecognised characters are skipped.
func ParseSelectorDefault(s, fallback string) *Selector {
	sel := &Selector{Classes: &ClassSet{}}
	s = strings.Join(strings.Fields(s), "")

	for _, m := range selectorPart.FindAllStringSubmatch(s, -1) {
		mod, name := m[1], m[2]
		if name == "" {
			continue
		}
		switch mod {
		case "#":
			sel.ID = name
		case ".":
			sel.Classes.Add(name)
		default:
			if sel.Tag == "" {
				sel.Tag = name
			}
		}
	}

	if sel.Tag == "" {
		sel.Tag = fallback
	}
	return sel
}

// String returns the normalised selector: tag, then "#id", then each class.
func (s *Selector) String() string {
	var b strings.Builder
	b.WriteString(s.Tag)
	if s.ID != "" {
		b.WriteByte('#')
		b.WriteString(s.ID)
	}
	if s.Classes != nil {
		b.WriteString(s.Classes.Selector())
	}
	return b.String()
}

// Clone returns an independent copy.
func (s *Selector) Clone() *Selector {
	c := &Selector{Tag: s.Tag, ID: s.ID, Classes: &ClassSet{}}
	if s.Classes != nil {
		c.Classes = s.Classes.Clone()
	}
	return c
}
