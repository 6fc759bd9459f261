// Package whits builds HTML as Go values and renders it to well-formed,
// correctly escaped markup.
//
// The building blocks live in subpackages: pkg/markup holds the element
// model, pkg/tags one constructor per HTML element, pkg/template the
// document templates and pkg/content Markdown, highlighting and import
// helpers. This package re-exports the parts most programs need.
//
//	page := whits.NewRootTemplate[struct{}]([]any{
//		tags.Head(tags.Title("Hello")),
//		tags.Body(whits.Must(whits.New("main#content.wide", nil, "Hi"))),
//	})
//	out, err := page.RenderString(ctx, struct{}{})
package whits

import (
	"github.com/elevensolutions/whits/pkg/markup"
	"github.com/elevensolutions/whits/pkg/template"
)

type (
	Element    = markup.Element
	Compound   = markup.Compound
	Raw        = markup.Raw
	Node       = markup.Node
	Attr       = markup.Attr
	Attrs      = markup.Attrs
	AttrList   = markup.AttrList
	AttrSource = markup.AttrSource
	Factory    = markup.Factory
)

// New creates an element from a selector, attributes and children.
func New(selector string, attrs AttrSource, children ...any) (*Element, error) {
	return markup.New(selector, attrs, children...)
}

// Must returns e or panics if err is non-nil.
func Must(e *Element, err error) *Element {
	return markup.Must(e, err)
}

// NewCompound builds a chain of nested elements from two or more selectors.
func NewCompound(selectors []string, attrs AttrSource, children ...any) (*Compound, error) {
	return markup.NewCompound(selectors, attrs, children...)
}

// Build returns an element for one selector and a compound chain for
// several.
func Build(selectors []string, attrs AttrSource, children ...any) (Node, error) {
	return markup.Build(selectors, attrs, children...)
}

// Tag returns a reusable constructor for selector.
func Tag(selector string) Factory {
	return markup.NewFactory(selector)
}

// A creates a single attribute.
func A(name string, value any) Attr {
	return markup.A(name, value)
}

// NewRaw marks text as markup that is written without escaping.
func NewRaw(text string) *Raw {
	return markup.NewRaw(text)
}

// Comment returns an HTML comment.
func Comment(text string) *Raw {
	return markup.Comment(text)
}

// Script wraps code in an unescaped script element.
func Script(code string, attrs ...AttrSource) *Element {
	return markup.Script(code, attrs...)
}

// StyleSheet wraps css in an unescaped style element.
func StyleSheet(css string, attrs ...AttrSource) *Element {
	return markup.StyleSheet(css, attrs...)
}

// Loop collects fn(0) ... fn(n-1) as children.
func Loop(n int, fn func(i int) any) []any {
	return markup.Loop(n, fn)
}

// EncodeEntities escapes text for markup text or attribute values.
func EncodeEntities(s string) string {
	return markup.EncodeEntities(s)
}

// NewTemplate creates a template with static content.
func NewTemplate[P any](content any, opts ...template.Option) *template.Template[P] {
	return template.New[P](content, opts...)
}

// NewRootTemplate creates a document template with static content.
func NewRootTemplate[P any](content any, opts ...template.Option) *template.RootTemplate[P] {
	return template.NewRoot[P](content, opts...)
}
