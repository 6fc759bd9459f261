package content

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/elevensolutions/whits/pkg/markup"
)

type markdownConfig struct {
	unsafe    bool
	hardWraps bool
	sanitize  bool
}

// MarkdownOption configures Markdown.
type MarkdownOption func(*markdownConfig)

// WithUnsafeHTML keeps raw HTML found in the source instead of replacing it
// with a placeholder comment. Combine with WithSanitize for untrusted input.
func WithUnsafeHTML() MarkdownOption {
	return func(c *markdownConfig) { c.unsafe = true }
}

// WithHardWraps renders soft line breaks as <br>.
func WithHardWraps() MarkdownOption {
	return func(c *markdownConfig) { c.hardWraps = true }
}

// WithSanitize passes the rendered HTML through Sanitize.
func WithSanitize() MarkdownOption {
	return func(c *markdownConfig) { c.sanitize = true }
}

var defaultMarkdown = newMarkdown(markdownConfig{})

func newMarkdown(c markdownConfig) goldmark.Markdown {
	var rendererOpts []goldmark.Option
	var htmlOpts []renderer.Option
	if c.unsafe {
		htmlOpts = append(htmlOpts, html.WithUnsafe())
	}
	if c.hardWraps {
		htmlOpts = append(htmlOpts, html.WithHardWraps())
	}
	if len(htmlOpts) > 0 {
		rendererOpts = append(rendererOpts, goldmark.WithRendererOptions(htmlOpts...))
	}

	return goldmark.New(append([]goldmark.Option{
		goldmark.WithExtensions(extension.GFM, extension.Footnote),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	}, rendererOpts...)...)
}

// Markdown renders CommonMark with GitHub extensions to raw markup. The
// source is dedented first, so indented multi-line literals are not read as
// code blocks.
func Markdown(source string, opts ...MarkdownOption) (*markup.Raw, error) {
	md := defaultMarkdown
	var c markdownConfig
	if len(opts) > 0 {
		for _, opt := range opts {
			opt(&c)
		}
		md = newMarkdown(c)
	}

	var buf bytes.Buffer
	if err := md.Convert([]byte(markup.NewRaw(source).Dedent().Text()), &buf); err != nil {
		return nil, fmt.Errorf("markdown: %w", err)
	}

	if c.sanitize {
		return Sanitize(buf.String()), nil
	}
	return markup.NewRaw(buf.String()), nil
}
