package markup

import (
	"fmt"
	"strings"
)

// Raw is content that is already valid markup and is written without
// entity encoding. Only use it with trusted input.
type Raw struct {
	text string
}

// NewRaw marks text as raw markup.
func NewRaw(text string) *Raw {
	return &Raw{text: text}
}

// Rawf is like NewRaw with the text given as a format string.
func Rawf(format string, args ...any) *Raw {
	return NewRaw(fmt.Sprintf(format, args...))
}

// Text returns the raw markup.
func (r *Raw) Text() string {
	if r == nil {
		return ""
	}
	return r.text
}

// String returns the raw markup.
func (r *Raw) String() string {
	return r.Text()
}

// Clone returns an independent copy with identical text.
func (r *Raw) Clone() *Raw {
	return NewRaw(r.Text())
}

// Dedent returns a copy with the common leading indentation of its
// non-blank lines removed. Useful for indented multi-line literals.
func (r *Raw) Dedent() *Raw {
	return NewRaw(dedent(r.Text()))
}

func dedent(s string) string {
	lines := strings.Split(s, "\n")
	indent := -1
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		n := len(line) - len(strings.TrimLeft(line, " \t"))
		if indent < 0 || n < indent {
			indent = n
		}
	}
	if indent <= 0 {
		return s
	}
	for i, line := range lines {
		n := len(line) - len(strings.TrimLeft(line, " \t"))
		if n > indent {
			n = indent
		}
		lines[i] = line[n:]
	}
	return strings.Join(lines, "\n")
}
