package content

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/elevensolutions/whits/pkg/markup"
)

// DefaultStyle is the chroma style used when none is given.
const DefaultStyle = "github"

type highlightConfig struct {
	style       string
	inline      bool
	lineNumbers bool
}

// HighlightOption configures Highlight.
type HighlightOption func(*highlightConfig)

// WithStyle selects a chroma style by name. Unknown names fall back to
// chroma's default style.
func WithStyle(name string) HighlightOption {
	return func(c *highlightConfig) { c.style = name }
}

// WithInlineStyles writes style attributes instead of CSS classes, so no
// stylesheet is needed.
func WithInlineStyles() HighlightOption {
	return func(c *highlightConfig) { c.inline = true }
}

// WithLineNumbers adds line numbers.
func WithLineNumbers() HighlightOption {
	return func(c *highlightConfig) { c.lineNumbers = true }
}

func (c highlightConfig) formatter() *chromahtml.Formatter {
	return chromahtml.New(
		chromahtml.Standalone(false),
		chromahtml.WithClasses(!c.inline),
		chromahtml.WithLineNumbers(c.lineNumbers),
	)
}

// Highlight renders source as a highlighted <pre> block. lang names a chroma
// lexer; when it is empty or unknown the language is guessed from the
// source, falling back to plain text.
func Highlight(lang, source string, opts ...HighlightOption) (*markup.Raw, error) {
	c := highlightConfig{style: DefaultStyle}
	for _, opt := range opts {
		opt(&c)
	}

	source = markup.NewRaw(source).Dedent().Text()
	source = strings.Trim(source, "\n")

	lexer := lexers.Get(lang)
	if lexer == nil {
		lexer = lexers.Analyse(source)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	it, err := lexer.Tokenise(nil, source)
	if err != nil {
		return nil, fmt.Errorf("highlight %s: %w", lang, err)
	}

	var b strings.Builder
	if err := c.formatter().Format(&b, styles.Get(c.style), it); err != nil {
		return nil, fmt.Errorf("highlight %s: %w", lang, err)
	}
	return markup.NewRaw(b.String()), nil
}

// HighlightCSS returns the stylesheet for class-based highlighting with the
// named style.
func HighlightCSS(style string) (string, error) {
	if style == "" {
		style = DefaultStyle
	}
	var b strings.Builder
	if err := (highlightConfig{}).formatter().WriteCSS(&b, styles.Get(style)); err != nil {
		return "", fmt.Errorf("highlight css %s: %w", style, err)
	}
	return b.String(), nil
}

// HighlightStyleSheet wraps HighlightCSS in a <style> element.
func HighlightStyleSheet(style string) (*markup.Element, error) {
	css, err := HighlightCSS(style)
	if err != nil {
		return nil, err
	}
	return markup.StyleSheet(css), nil
}
