package markup

import (
	"fmt"
	"strings"
)

// Comment returns an HTML comment as raw content. Every '>' is removed from
// text so the comment cannot be closed early.
func Comment(text string) *Raw {
	return NewRaw("<!-- " + strings.ReplaceAll(text, ">", "") + " -->")
}

// Script wraps code in a script element without escaping it. Indented
// multi-line code is dedented first.
func Script(code string, attrs ...AttrSource) *Element {
	return Must(New("script", AttrList(flattenAttrs(attrs)), NewRaw(code).Dedent()))
}

// StyleSheet wraps css in a style element without escaping it. Indented
// multi-line css is dedented first.
func StyleSheet(css string, attrs ...AttrSource) *Element {
	return Must(New("style", AttrList(flattenAttrs(attrs)), NewRaw(css).Dedent()))
}

// Textf returns formatted text content.
func Textf(format string, args ...any) string {
	return fmt.Sprintf(format, args...)
}

// Loop calls fn for 0..n-1 and collects the results as children.
func Loop(n int, fn func(i int) any) []any {
	out := make([]any, 0, max(n, 0))
	for i := 0; i < n; i++ {
		out = append(out, fn(i))
	}
	return out
}

// Each maps items to children.
func Each[T any](items []T, fn func(item T, i int) any) []any {
	out := make([]any, 0, len(items))
	for i, item := range items {
		out = append(out, fn(item, i))
	}
	return out
}

// If returns content when cond is true and nil otherwise.
func If(cond bool, content any) any {
	if cond {
		return content
	}
	return nil
}

func flattenAttrs(srcs []AttrSource) []Attr {
	var out []Attr
	for _, src := range srcs {
		if src != nil {
			out = append(out, src.Pairs()...)
		}
	}
	return out
}
