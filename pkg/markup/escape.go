package markup

import (
	"strconv"
	"strings"
)

// namedEntities are the characters encoded by name rather than by code point.
var namedEntities = map[rune]string{
	'"': "&quot;",
	'©': "&copy;",
	'®': "&reg;",
	'™': "&trade;",
}

// EncodeEntities escapes text for safe inclusion in markup text or in a
// double-quoted attribute value.
//
// Ampersands, angle brackets and the named characters above are replaced by
// their entities. Every other character outside the printable ASCII range
// (space, '!' and 0x23-0x7E) becomes a numeric character reference of its
// code point, so characters beyond the basic multilingual plane produce a
// single reference.
func EncodeEntities(s string) string {
	if isSafeASCII(s) {
		return s
	}

	var buf strings.Builder
	buf.Grow(len(s) + len(s)/4)

	for _, r := range s {
		switch {
		case r == '&':
			buf.WriteString("&amp;")
		case r == '<':
			buf.WriteString("&lt;")
		case r == '>':
			buf.WriteString("&gt;")
		case namedEntities[r] != "":
			buf.WriteString(namedEntities[r])
		case r == ' ' || r == '!' || (r >= 0x23 && r <= 0x7E):
			buf.WriteRune(r)
		default:
			buf.WriteString("&#")
			buf.WriteString(strconv.Itoa(int(r)))
			buf.WriteByte(';')
		}
	}

	return buf.String()
}

// EncodeText escapes a text node. Runs of whitespace collapse to a single
// space; when the text spans several lines each line is trimmed first and
// blank lines are dropped.
func EncodeText(s string) string {
	return EncodeEntities(CollapseWhitespace(s))
}

// CollapseWhitespace normalises whitespace the way text nodes are rendered
// outside whitespace-preserving elements.
func CollapseWhitespace(s string) string {
	if strings.ContainsAny(s, "\n\r") {
		lines := strings.FieldsFunc(s, func(r rune) bool { return r == '\n' || r == '\r' })
		kept := lines[:0]
		for _, line := range lines {
			if line = strings.TrimSpace(line); line != "" {
				kept = append(kept, line)
			}
		}
		s = strings.Join(kept, " ")
	}

	var buf strings.Builder
	buf.Grow(len(s))
	space := false
	for _, r := range s {
		if isSpace(r) {
			if !space {
				buf.WriteByte(' ')
			}
			space = true
			continue
		}
		space = false
		buf.WriteRune(r)
	}
	return buf.String()
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}

// isSafeASCII reports whether s contains nothing EncodeEntities would change.
func isSafeASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '&' || c == '<' || c == '>':
			return false
		case c == ' ' || c == '!' || (c >= 0x23 && c <= 0x7E):
		default:
			return false
		}
	}
	return true
}
